package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeeftor/responsive-units/internal/constants"
	"github.com/jeeftor/responsive-units/internal/filesystem"
	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/params"
	"github.com/jeeftor/responsive-units/internal/tui"
	"github.com/jeeftor/responsive-units/internal/viewport"
)

// debug output would draw over the alt screen, so it goes here instead
const watchDebugLog = "rsu-watch.log"

var watchFlags viewportFlags

// watchCmd runs the live view
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view: the terminal window stands in for a device viewport",
	Long: `Treat the terminal window as a device viewport and recompute the responsive
state on every resize. Each terminal cell counts as RSU_CELL_WIDTH x
RSU_CELL_HEIGHT dp (8x16 by default), so an 80x24 terminal is a 640x384 viewport.

Keys:
  d        cycle pixel ratio (1, 2, 3)
  p        cycle platform
  c        clear the event list
  h / ?    toggle help
  q / esc  quit

With --log-level debug, logs are written to rsu-watch.log while the view runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		resolver := params.NewParameterResolver(cfg)
		opts := watchFlags.options(cmd)
		opts.UseTerminal = true
		vp, info, err := resolver.ResolveViewport(nil, opts)
		if err != nil {
			return err
		}
		if info.Width.Source == params.SourceDefault && info.Height.Source == params.SourceDefault {
			// stdout is not a terminal; bubbletea still reports the real size once running
			vp.Width, vp.Height = resolver.CellsToViewport(constants.FallbackColumns, constants.FallbackRows)
		}

		if logging.DebugEnabled() {
			f, err := filesystem.CreateFileWithLogging(watchDebugLog, "watch debug log")
			if err != nil {
				return err
			}
			defer f.Close()
			logging.SetOutput(f)
			defer logging.SetOutput(os.Stderr)
		}

		store := viewport.NewStore(cfg, vp)
		model := tui.NewWatchModel(store, resolver.CellsToViewport)
		defer model.Close()

		logging.Debug("Starting watch", "width", vp.Width, "height", vp.Height)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		logging.Complete("watch")
		return nil
	},
}

func init() {
	addViewportFlags(watchCmd, &watchFlags)
	rootCmd.AddCommand(watchCmd)
}
