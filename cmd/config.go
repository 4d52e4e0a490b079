package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/filesystem"
	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/params"
	"github.com/jeeftor/responsive-units/internal/styles"
	"github.com/jeeftor/responsive-units/internal/ui"
	"github.com/jeeftor/responsive-units/internal/validation"
)

var (
	configInitForce bool
	configShowJSON  bool
)

// configFile is the on-disk layout of .rsu.yaml
type configFile struct {
	LogLevel string `yaml:"log_level" json:"log_level"`

	config.Config `yaml:",inline"`
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rsu configuration files and settings",
	Long: `Manage the configuration rsu derives every conversion from: the reference
device, the base font size, the font scale ceiling and the breakpoint table.

Configuration files are searched in this order:
1. ./.rsu.yaml (project config)
2. ~/.rsu.yaml (user config)
3. /etc/rsu/.rsu.yaml (system config)

Environment variables (RSU_*) override config file values.
An invalid configuration stops every command with exit code 6.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// configInitCmd creates a sample configuration file
var configInitCmd = &cobra.Command{
	Use:   "init [config-file]",
	Short: "Create a sample configuration file",
	Long: `Generate a configuration file holding the default values.

If no file is specified, creates ~/.rsu.yaml in the user's home directory.

Examples:
  rsu config init                  # Create ~/.rsu.yaml
  rsu config init .rsu.yaml        # Create a project config
  rsu config init .rsu.yaml -f     # Overwrite it`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := defaultConfigPath()
		if len(args) > 0 {
			configPath = args[0]
		}

		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return fmt.Errorf("could not resolve config path: %w", err)
		}

		if err := filesystem.ValidateOutputFile(absPath, "configuration file", configInitForce); err != nil {
			return err
		}

		content, err := generateSampleConfig()
		if err != nil {
			return err
		}
		if err := filesystem.WriteFileWithDirectory(absPath, content, 0644); err != nil {
			return err
		}

		logging.SaveFile(absPath, fmt.Sprintf("%d bytes", len(content)))
		ui.StatusMessage(cmd.OutOrStdout(), "Created configuration file: %s", absPath)
		ui.CommandExample(cmd.OutOrStdout(), "rsu config validate "+absPath, "check it after editing")
		return nil
	},
}

// configValidateCmd validates a configuration file
var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a configuration file",
	Long: `Check a configuration file against the rules every command enforces:
positive reference values, a scale factor of at least 1, and a breakpoint
table that starts at 0, has no gaps or overlaps, and is unbounded above.

If no file is specified, validates the active configuration (config file
plus RSU_* environment variables).

Examples:
  rsu config validate
  rsu config validate ~/.rsu.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		source := viper.ConfigFileUsed()

		if len(args) > 0 {
			source = args[0]
			if err := filesystem.CheckFileExists(source); err != nil {
				return err
			}
			v = viper.New()
			v.SetConfigFile(source)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("%w: failed to read %s: %w", config.ErrInvalidConfig, source, err)
			}
			config.SetDefaults(v)
		}
		if source == "" {
			source = "defaults and environment"
		}

		return validateConfig(cmd.OutOrStdout(), v, source)
	},
}

// configShowCmd displays current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration and where each value came from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return displayCurrentConfiguration(cmd.OutOrStdout())
	},
}

// configPathCmd shows configuration file search paths
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Display configuration file search paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		displayConfigPaths(cmd.OutOrStdout())
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "print the effective configuration as JSON")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

const sampleHeader = `# rsu configuration file
#
# Configuration priority (highest to lowest):
# 1. Command-line arguments and flags
# 2. Environment variables (RSU_*, e.g. RSU_BASE_FONT_SIZE)
# 3. This file
# 4. Built-in defaults
#
# base_device is the device the design was drawn for; rem scales against its
# width. Responsive fonts (rf) are capped at base_font_size * max_font_scale_factor.
#
# Breakpoints are closed [low, high] intervals over viewport width. The table
# must start at 0, must not overlap or leave gaps between whole widths, and the
# last tier must be unbounded (omit high, or write .inf).

`

// generateSampleConfig renders the default configuration as YAML
func generateSampleConfig() ([]byte, error) {
	body, err := yaml.Marshal(configFile{LogLevel: "info", Config: config.Default()})
	if err != nil {
		return nil, fmt.Errorf("render sample configuration: %w", err)
	}
	return append([]byte(sampleHeader), body...), nil
}

// validateConfig decodes v, prints every error and warning and returns an
// error wrapping config.ErrInvalidConfig when the configuration is unusable
func validateConfig(w io.Writer, v *viper.Viper, source string) error {
	fmt.Fprintln(w, styles.HeaderStyle.Render("🔍 Configuration Validation"))
	fmt.Fprintf(w, "Source: %s\n", ui.Code(source))

	cfg, err := config.Decode(v)
	if err != nil {
		ui.ValidationErrorMsg(w, "configuration", err.Error())
		return err
	}

	result := cfg.Check()
	for _, e := range result.Errors {
		ui.ValidationErrorMsg(w, e.Field, e.Message)
	}
	for _, warning := range result.Warnings {
		ui.ValidationWarningMsg(w, "warning", warning)
	}

	if err := result.Err(); err != nil {
		logging.Fail("config validate", fmt.Sprintf("%d error(s)", len(result.Errors)))
		return fmt.Errorf("%w: %s", config.ErrInvalidConfig, validationSummary(result))
	}

	ui.StatusMessage(w, "Configuration is valid: %d breakpoints, max font size %s",
		len(cfg.Breakpoints), ui.FormatNumber(cfg.MaxFontSize()))
	return nil
}

func validationSummary(result *validation.ValidationResult) string {
	if len(result.Errors) == 1 {
		return result.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors, first: %s", len(result.Errors), result.Errors[0].Error())
}

// displayCurrentConfiguration shows all current config values and sources
func displayCurrentConfiguration(w io.Writer) error {
	cfg, err := config.Decode(viper.GetViper())
	if err != nil {
		return err
	}
	file := configFile{LogLevel: viper.GetString("log_level"), Config: cfg}

	if configShowJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	}

	fmt.Fprintln(w, styles.HeaderStyle.Render("⚙️  Current Configuration"))
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(w, "📁 Active config file: %s\n", styles.SuccessStyle.Render(used))
	} else {
		fmt.Fprintf(w, "📁 Active config file: %s\n", styles.MutedStyle.Render("none"))
	}

	ui.SectionHeader(w, "Sources")
	keys := []string{
		"log_level",
		config.KeyBaseDeviceWidth,
		config.KeyBaseDeviceHeight,
		config.KeyBaseFontSize,
		config.KeyMaxFontScaleFactor,
		config.KeyBreakpoints,
		params.KeyWidth,
		params.KeyHeight,
		params.KeyDensity,
		params.KeyPlatform,
	}
	for _, key := range keys {
		value := "-"
		if viper.IsSet(key) {
			value = fmt.Sprintf("%v", viper.Get(key))
		}
		if key == config.KeyBreakpoints {
			value = fmt.Sprintf("%d tiers", len(cfg.Breakpoints))
		}
		fmt.Fprintf(w, "  %s: %s %s\n",
			styles.KeyStyle.Render(key),
			styles.ValueStyle.Render(value),
			styles.MutedStyle.Render(fmt.Sprintf("(%s)", getConfigSource(key))))
	}

	ui.SectionHeader(w, "Effective values")
	body, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(body))

	if result := cfg.Check(); !result.Valid {
		fmt.Fprintln(w, ui.Error("This configuration is invalid; run 'rsu config validate' for details"))
	}
	return nil
}

// getConfigSource determines where a configuration value came from
func getConfigSource(key string) string {
	if _, ok := os.LookupEnv(envName(key)); ok {
		return "environment"
	}
	if viper.InConfig(key) {
		return "config file"
	}
	if viper.IsSet(key) {
		return "default"
	}
	return "unset"
}

// displayConfigPaths shows configuration file search paths
func displayConfigPaths(w io.Writer) {
	fmt.Fprintln(w, styles.HeaderStyle.Render("📁 Configuration File Paths"))

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(w, "🟢 Active: %s\n", styles.SuccessStyle.Render(used))
	} else {
		fmt.Fprintf(w, "🔴 Active: %s\n", styles.MutedStyle.Render("none"))
	}

	ui.SectionHeader(w, "Search Paths (in priority order)")
	for i, dir := range configSearchPaths() {
		path := filepath.Join(dir, configName+".yaml")
		exists := styles.MutedStyle.Render("✗ not found")
		if err := filesystem.CheckFileExists(path); err == nil {
			exists = styles.SuccessStyle.Render("✓ exists")
		} else if !errors.Is(err, os.ErrNotExist) {
			exists = styles.ErrorStyle.Render(err.Error())
		}
		fmt.Fprintf(w, "  %d. %s  %s\n", i+1, path, exists)
	}

	ui.SectionHeader(w, "Tips")
	ui.BulletPoint(w, "Use 'rsu config init' to create a user configuration")
	ui.BulletPoint(w, "Use 'rsu config init .rsu.yaml' for project-specific settings")
	ui.BulletPoint(w, "Use '--config path/to/config.yaml' to specify a custom config file")
	ui.BulletPoint(w, "Environment variables (RSU_*) override config file values")
}
