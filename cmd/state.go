package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeeftor/responsive-units/internal/ui"
)

var (
	stateFlags viewportFlags
	stateJSON  bool
)

// stateCmd prints the responsive state for one viewport
var stateCmd = &cobra.Command{
	Use:   "state [width] [height]",
	Short: "Show orientation, breakpoint and sample conversions for a viewport",
	Long: `Compute the responsive state for a viewport: orientation flags, platform
flags, breakpoint tier and font limits, plus a few sample conversions.

Width and height are resolved in this order:
  1. Arguments
  2. RSU_WIDTH / RSU_HEIGHT or width/height in the config file
  3. The terminal window (only with --terminal)
  4. The reference device (base_device)

Examples:
  rsu state                      # the reference device
  rsu state 768 1024 -d 2        # tablet portrait at 2x
  rsu state 812 375 -p ios       # phone landscape
  rsu state --terminal --json    # this terminal as a viewport, as JSON`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, info, err := resolveEngine(cmd, args, &stateFlags)
		if err != nil {
			return err
		}
		state := engine.State()
		out := cmd.OutOrStdout()

		if stateJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		}

		fmt.Fprintln(out, ui.StateView(state, engine.Config().Breakpoints))
		fmt.Fprintln(out, ui.Muted(fmt.Sprintf("width from %s, height from %s, density from %s",
			info.Width.Source, info.Height.Source, info.Density.Source)))
		ui.SectionHeader(out, "Sample conversions")
		fmt.Fprintln(out, strings.Join(ui.SampleConversions(engine), "\n"))
		return nil
	},
}

func init() {
	addViewportFlags(stateCmd, &stateFlags)
	stateCmd.Flags().BoolVar(&stateJSON, "json", false, "print the state as JSON")
	rootCmd.AddCommand(stateCmd)
}
