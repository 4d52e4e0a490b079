package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeeftor/responsive-units/internal/ui"
	"github.com/jeeftor/responsive-units/internal/units"
)

var (
	breakpointsWidth  float64
	breakpointsJSON   bool
	breakpointsStrict bool
)

// breakpointsCmd lists the breakpoint table and classifies a width
var breakpointsCmd = &cobra.Command{
	Use:   "breakpoints",
	Short: "List the breakpoint table, optionally classifying a width",
	Long: `List the configured breakpoint tiers in table order.

With --width the matching tier is highlighted. Widths are classified on
closed intervals and the first matching tier wins; a width outside every
tier is reported as unclassified (with --strict this is an error).

Examples:
  rsu breakpoints
  rsu breakpoints --width 700
  rsu breakpoints --width 399.5 --strict`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		classify := cmd.Flags().Changed("width")

		highlight := ""
		if classify {
			bp, err := units.ClassifyStrict(breakpointsWidth, cfg.Breakpoints)
			switch {
			case err == nil:
				highlight = bp.Name
			case breakpointsStrict:
				return err
			}
		}

		if breakpointsJSON {
			payload := struct {
				Breakpoints any      `json:"breakpoints"`
				Width       *float64 `json:"width,omitempty"`
				Match       *string  `json:"match,omitempty"`
			}{Breakpoints: cfg.Breakpoints}
			if classify {
				payload.Width = &breakpointsWidth
				payload.Match = &highlight
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		fmt.Fprintln(out, ui.BreakpointTable(cfg.Breakpoints, highlight))
		if classify {
			if highlight == "" {
				fmt.Fprintf(out, "%s %s\n", ui.FormatNumber(breakpointsWidth), ui.Warning("is unclassified"))
			} else {
				fmt.Fprintf(out, "%s is in %s\n", ui.FormatNumber(breakpointsWidth), ui.Bold(highlight))
			}
		}
		return nil
	},
}

func init() {
	breakpointsCmd.Flags().Float64VarP(&breakpointsWidth, "width", "w", 0, "classify this width")
	breakpointsCmd.Flags().BoolVar(&breakpointsJSON, "json", false, "print the table as JSON")
	breakpointsCmd.Flags().BoolVar(&breakpointsStrict, "strict", false, "fail when --width is unclassified")
	rootCmd.AddCommand(breakpointsCmd)
}
