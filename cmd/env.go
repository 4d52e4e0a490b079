package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/constants"
	"github.com/jeeftor/responsive-units/internal/params"
	"github.com/jeeftor/responsive-units/internal/styles"
	"github.com/jeeftor/responsive-units/internal/ui"
)

// EnvVar represents an environment variable with its metadata
type EnvVar struct {
	Name         string
	Description  string
	DefaultValue string
	Category     string
	CurrentValue string
	IsSet        bool
}

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display environment variable configuration",
	Long: `Display all RSU_* environment variables with their current values and descriptions.

Environment variables override config file values but are overridden by
command-line arguments and flags.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		displayEnvironmentVariables(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

// envName maps a viper key to its environment variable
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// getAllEnvVars returns all supported environment variables with metadata
func getAllEnvVars() []EnvVar {
	envVars := []EnvVar{
		{
			Name:         envName("log_level"),
			Description:  "Logging level (trace, debug, info, warn, error)",
			DefaultValue: "info",
			Category:     "Core",
		},
		{
			Name:         envName(config.KeyBaseDeviceWidth),
			Description:  "Width of the reference device the design was made for",
			DefaultValue: fmt.Sprint(config.DefaultBaseDeviceWidth),
			Category:     "Reference",
		},
		{
			Name:         envName(config.KeyBaseDeviceHeight),
			Description:  "Height of the reference device",
			DefaultValue: fmt.Sprint(config.DefaultBaseDeviceHeight),
			Category:     "Reference",
		},
		{
			Name:         envName(config.KeyBaseFontSize),
			Description:  "Base font size in dp",
			DefaultValue: fmt.Sprint(config.DefaultBaseFontSize),
			Category:     "Reference",
		},
		{
			Name:         envName(config.KeyMaxFontScaleFactor),
			Description:  "Responsive fonts are capped at base size times this factor",
			DefaultValue: fmt.Sprint(config.DefaultMaxFontScaleFactor),
			Category:     "Reference",
		},
		{
			Name:         envName(params.KeyWidth),
			Description:  "Viewport width when no argument is given",
			DefaultValue: "(reference device)",
			Category:     "Viewport",
		},
		{
			Name:         envName(params.KeyHeight),
			Description:  "Viewport height when no argument is given",
			DefaultValue: "(reference device)",
			Category:     "Viewport",
		},
		{
			Name:         envName(params.KeyDensity),
			Description:  "Device pixel ratio used by wp/hp rounding",
			DefaultValue: fmt.Sprint(constants.DefaultPixelRatio),
			Category:     "Viewport",
		},
		{
			Name:         envName(params.KeyPlatform),
			Description:  "Platform tag (ios, android, web, windows, macos)",
			DefaultValue: "unknown",
			Category:     "Viewport",
		},
		{
			Name:         envName(params.KeyCellWidth),
			Description:  "dp per terminal column (watch, --terminal)",
			DefaultValue: fmt.Sprint(constants.DefaultCellWidth),
			Category:     "Terminal",
		},
		{
			Name:         envName(params.KeyCellHeight),
			Description:  "dp per terminal row (watch, --terminal)",
			DefaultValue: fmt.Sprint(constants.DefaultCellHeight),
			Category:     "Terminal",
		},
	}

	for i := range envVars {
		envVar := &envVars[i]

		currentValue := os.Getenv(envVar.Name)
		envVar.CurrentValue = currentValue
		envVar.IsSet = currentValue != ""

		// Also check viper for values from the config file
		viperKey := strings.ToLower(strings.TrimPrefix(envVar.Name, envPrefix+"_"))
		if !envVar.IsSet && viper.InConfig(viperKey) {
			envVar.CurrentValue = fmt.Sprintf("%s (from config)", viper.GetString(viperKey))
		}
	}

	return envVars
}

// displayEnvironmentVariables shows all environment variables organized by category
func displayEnvironmentVariables(w io.Writer) {
	envVars := getAllEnvVars()

	categories := make(map[string][]EnvVar)
	for _, envVar := range envVars {
		categories[envVar.Category] = append(categories[envVar.Category], envVar)
	}

	categoryNames := make([]string, 0, len(categories))
	for category := range categories {
		categoryNames = append(categoryNames, category)
	}
	sort.Strings(categoryNames)

	fmt.Fprintln(w, styles.HeaderStyle.Render("🌍 RSU Environment Variables"))

	setCount := 0
	for _, envVar := range envVars {
		if envVar.IsSet {
			setCount++
		}
	}
	fmt.Fprintf(w, "%s %d/%d environment variables are currently set\n", ui.InfoIcon, setCount, len(envVars))

	for _, categoryName := range categoryNames {
		fmt.Fprintln(w, styles.SectionStyle.Render(fmt.Sprintf("📂 %s", categoryName)))
		for _, envVar := range categories[categoryName] {
			displayEnvVar(w, envVar)
		}
	}

	ui.SectionHeader(w, "Usage Examples")
	ui.EnvironmentVariableExample(w, envName(config.KeyBaseFontSize), "18")
	ui.EnvironmentVariableExample(w, envName(params.KeyDensity), "3")
	ui.CommandExample(w, "rsu state 768 1024", "tablet portrait")
	ui.CommandExample(w, "rsu convert wp 50 rem 16", "convert on the current viewport")
}

// displayEnvVar formats and displays a single environment variable
func displayEnvVar(w io.Writer, envVar EnvVar) {
	nameStyle := styles.KeyStyle
	statusIndicator := "○"
	if envVar.IsSet {
		nameStyle = styles.SuccessStyle
		statusIndicator = "●"
	}

	fmt.Fprintf(w, "  %s %s\n", nameStyle.Render(statusIndicator), nameStyle.Render(envVar.Name))
	fmt.Fprintf(w, "    %s\n", styles.ValueStyle.Render(envVar.Description))

	current := styles.MutedStyle.Render("(not set)")
	if envVar.CurrentValue != "" {
		current = styles.ValueStyle.Render(envVar.CurrentValue)
	}
	fmt.Fprintf(w, "    %s %s\n", styles.LabelStyle.Render("Current:"), current)
	fmt.Fprintf(w, "    %s %s\n", styles.LabelStyle.Render("Default:"), styles.MutedStyle.Render(envVar.DefaultValue))
}
