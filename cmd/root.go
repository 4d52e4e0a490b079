package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/utils"
)

const (
	envPrefix       = "RSU"
	configName      = ".rsu"
	systemConfigDir = "/etc/rsu"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rsu",
	Short: "Responsive units: scale layout values to a device viewport",
	Long: `rsu converts layout values to a device viewport the way a responsive UI
library does: wp/hp (pixel-rounded percentages), vw/vh (floored percentages),
rem (font size scaled to the device) and rf (font size capped at the maximum).

It also classifies widths into breakpoint tiers and reports the orientation.
The reference device, font sizes and breakpoint table come from .rsu.yaml and
RSU_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logLevel == "" {
			logLevel = viper.GetString("log_level")
		}
		logging.InitWithLevel(logLevel)

		logging.Debug("Logging initialized", "level", logLevel)
		if used := viper.ConfigFileUsed(); used != "" {
			logging.LoadFile(used)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.rsu.yaml, then $HOME/.rsu.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// RSU_BASE_FONT_SIZE, RSU_BASE_DEVICE_WIDTH, RSU_WIDTH, ...
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "info")
	config.SetDefaults(viper.GetViper())
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		for _, dir := range configSearchPaths() {
			viper.AddConfigPath(dir)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error occurred
			utils.WarnOnError(err, "reading config file")
		}
	}
}

// configSearchPaths lists the directories searched for .rsu.yaml, highest
// priority first
func configSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return append(paths, systemConfigDir)
}

// loadConfig builds the active configuration. An invalid configuration is
// reported as config.ErrInvalidConfig, which main maps to exit code 6.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// defaultConfigPath is where `config init` writes without an argument
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configName + ".yaml"
	}
	return filepath.Join(home, configName+".yaml")
}
