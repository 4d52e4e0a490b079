package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// These variables will be set during the build using ldflags
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildTime    = "unknown"
)

var (
	shortOutput bool
	versionJSON bool
)

// versionInfo is what `rsu version` reports
type versionInfo struct {
	Version string `json:"version"`
	Built   string `json:"built"`
	Commit  string `json:"commit"`
	OSArch  string `json:"os_arch"`
	Go      string `json:"go"`
	Binary  string `json:"binary"`
}

// GetFormattedBuildTime returns the build time in a readable format
func GetFormattedBuildTime() string {
	if buildTime == "unknown" {
		return buildTime
	}

	if t, err := time.Parse(time.RFC3339, buildTime); err == nil {
		return t.UTC().Format("2006-01-02 15:04:05 MST")
	}

	// Unix timestamp
	if unixTime, err := strconv.ParseInt(buildTime, 10, 64); err == nil {
		return time.Unix(unixTime, 0).UTC().Format("2006-01-02 15:04:05 MST")
	}

	return buildTime
}

// GetDisplayVersion returns a formatted version string. Development builds
// fall back to the module version recorded by `go install`.
func GetDisplayVersion() string {
	if buildVersion != "dev" {
		return buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return fmt.Sprintf("dev (%s)", info.Main.Version)
	}
	return "dev"
}

func currentVersionInfo() versionInfo {
	exePath := "Unknown"
	if exe, err := os.Executable(); err == nil {
		exePath, _ = filepath.Abs(exe)
	}
	return versionInfo{
		Version: GetDisplayVersion(),
		Built:   GetFormattedBuildTime(),
		Commit:  buildCommit,
		OSArch:  runtime.GOOS + "/" + runtime.GOARCH,
		Go:      runtime.Version(),
		Binary:  exePath,
	}
}

func printVersion(w io.Writer, info versionInfo) {
	label := color.New(color.FgWhite)
	rows := []struct {
		name  string
		value string
		color *color.Color
	}{
		{"Version:", info.Version, color.New(color.FgCyan, color.Bold)},
		{"Built:", info.Built, color.New(color.FgYellow)},
		{"Commit:", info.Commit, color.New(color.FgGreen)},
		{"OS/Arch:", info.OSArch, color.New(color.FgMagenta)},
		{"Go:", info.Go, color.New(color.FgRed)},
		{"Binary:", info.Binary, color.New(color.FgBlue)},
	}
	for _, row := range rows {
		label.Fprintf(w, "%-9s", row.name)
		row.color.Fprintf(w, "%s\n", row.value)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch {
		case shortOutput:
			// raw buildVersion for scripts
			fmt.Fprintln(out, buildVersion)
		case versionJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(currentVersionInfo())
		default:
			printVersion(out, currentVersionInfo())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&shortOutput, "short", "n", false, "Print only version number")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version information as JSON")
	rootCmd.AddCommand(versionCmd)
}
