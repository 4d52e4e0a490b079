package cmd

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/jeeftor/responsive-units/internal/args"
	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/ui"
)

var (
	convertFlags  viewportFlags
	convertWidth  string
	convertHeight string
	convertJSON   bool
	convertQuiet  bool
)

// conversionResult is one line of `convert --json`. Value is null when the
// input could not be parsed.
type conversionResult struct {
	Unit  string   `json:"unit"`
	Input string   `json:"input"`
	Value *float64 `json:"value"`
}

// convertCmd applies unit conversions on one viewport
var convertCmd = &cobra.Command{
	Use:   "convert <unit> <value> [value...] [<unit> <value>...]",
	Short: "Convert values with wp, hp, vw, vh, rem or rf",
	Long: `Convert one or more values on the resolved viewport.

Units:
  wp, hp   percentage of width/height, rounded to the nearest device pixel
  vw, vh   percentage of width/height, floored
  rem      font size scaled to the viewport (0.9x below the reference height)
  rf       font size capped at base_font_size * max_font_scale_factor

Values are read like CSS numbers: "50%", "12.5" and " 7px" all work, anything
without a leading number converts to NaN. rem and rf without a value convert 0.

Examples:
  rsu convert wp 50                     # 50% of the reference width
  rsu convert wp 50 25 hp 10 -d 3       # several values at 3x
  rsu convert 'wp(50)' rem:16 --width 768 --height 1024
  rsu convert rf 40 -q                  # print only the number`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		parser := args.NewConversionArgumentParser()
		parsed, err := parser.Parse(argv)
		if err != nil {
			args.FormatParseError(cmd.ErrOrStderr(), err, parser)
			return err
		}
		logging.Debug("Conversion arguments parsed", "source", parsed.Source)

		engine, _, err := resolveEngine(cmd, []string{convertWidth, convertHeight}, &convertFlags)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		results := make([]conversionResult, 0, len(parsed.Requests))
		for _, req := range parsed.Requests {
			value := engine.Convert(req.Unit, req.Value())
			if math.IsNaN(value) {
				logging.Warn("Input is not a number", "unit", string(req.Unit), "input", req.Raw)
			}

			switch {
			case convertJSON:
				r := conversionResult{Unit: string(req.Unit), Input: req.Raw}
				if !math.IsNaN(value) && !math.IsInf(value, 0) {
					r.Value = &value
				}
				results = append(results, r)
			case convertQuiet:
				fmt.Fprintln(out, ui.FormatNumber(value))
			default:
				fmt.Fprintln(out, ui.ConversionLine(req.Unit, req.Raw, value))
			}
		}

		if convertJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}
		return nil
	},
}

func init() {
	addViewportFlags(convertCmd, &convertFlags)
	convertCmd.Flags().StringVar(&convertWidth, "width", "", "viewport width (env: RSU_WIDTH)")
	convertCmd.Flags().StringVar(&convertHeight, "height", "", "viewport height (env: RSU_HEIGHT)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "print results as JSON")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "print only the converted numbers")
	rootCmd.AddCommand(convertCmd)
}
