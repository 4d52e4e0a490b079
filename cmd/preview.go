package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeeftor/responsive-units/internal/filesystem"
	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/preview"
	"github.com/jeeftor/responsive-units/internal/ui"
)

var (
	previewFlags  viewportFlags
	previewOpts   = preview.DefaultOptions()
	previewOutput string
	previewForce  bool
)

// previewCmd writes a PPM picture of a viewport
var previewCmd = &cobra.Command{
	Use:   "preview [width] [height]",
	Short: "Render a viewport and a wp x hp box as a PPM image",
	Long: `Draw the viewport at device resolution (dp times pixel ratio) as a binary
PPM image. A band across the top, 5vh tall, is coloured by breakpoint tier
and a centred box shows an element sized with wp/hp.

Examples:
  rsu preview -o phone.ppm
  rsu preview 768 1024 -d 2 --wp 80 --hp 30 -o tablet.ppm`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := resolveEngine(cmd, args, &previewFlags)
		if err != nil {
			return err
		}

		if err := filesystem.ValidateOutputFile(previewOutput, "output file", previewForce); err != nil {
			return err
		}
		f, err := filesystem.CreateFileWithLogging(previewOutput, "preview")
		if err != nil {
			return err
		}

		layout, err := preview.Write(f, engine, previewOpts)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			logging.Fail("preview", err.Error())
			return err
		}

		logging.SaveFile(previewOutput, fmt.Sprintf("%dx%d px", layout.Canvas.Dx(), layout.Canvas.Dy()))
		ui.StatusMessage(cmd.OutOrStdout(), "Wrote %s (%dx%d px, box %dx%d px)",
			previewOutput, layout.Canvas.Dx(), layout.Canvas.Dy(), layout.Box.Dx(), layout.Box.Dy())
		return nil
	},
}

func init() {
	addViewportFlags(previewCmd, &previewFlags)
	previewCmd.Flags().Float64Var(&previewOpts.WidthPercent, "wp", previewOpts.WidthPercent, "box width in wp")
	previewCmd.Flags().Float64Var(&previewOpts.HeightPercent, "hp", previewOpts.HeightPercent, "box height in hp")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "preview.ppm", "output file")
	previewCmd.Flags().BoolVarP(&previewForce, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(previewCmd)
}
