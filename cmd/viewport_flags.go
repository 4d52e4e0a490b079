package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/params"
	"github.com/jeeftor/responsive-units/internal/units"
)

// viewportFlags are shared by every command that works on one viewport
type viewportFlags struct {
	density     float64
	platform    string
	useTerminal bool
}

func addViewportFlags(cmd *cobra.Command, f *viewportFlags) {
	cmd.Flags().Float64VarP(&f.density, "density", "d", 1, "device pixel ratio (env: RSU_DENSITY)")
	cmd.Flags().StringVarP(&f.platform, "platform", "p", "", "platform tag: ios, android, web, windows, macos (env: RSU_PLATFORM)")
	cmd.Flags().BoolVarP(&f.useTerminal, "terminal", "t", false, "use the terminal window size when width/height are not given")
}

func (f *viewportFlags) options(cmd *cobra.Command) params.ViewportOptions {
	return params.ViewportOptions{
		Density:     f.density,
		DensitySet:  cmd.Flags().Changed("density"),
		Platform:    f.platform,
		PlatformSet: cmd.Flags().Changed("platform"),
		UseTerminal: f.useTerminal,
	}
}

// resolveEngine loads the configuration and resolves the viewport from
// dimension args, flags, environment and config, in that order.
func resolveEngine(cmd *cobra.Command, dims []string, f *viewportFlags) (units.Engine, params.ViewportInfo, error) {
	cfg, err := loadConfig()
	if err != nil {
		return units.Engine{}, params.ViewportInfo{}, err
	}
	return resolveEngineWith(cmd, cfg, dims, f)
}

func resolveEngineWith(cmd *cobra.Command, cfg config.Config, dims []string, f *viewportFlags) (units.Engine, params.ViewportInfo, error) {
	vp, info, err := params.NewParameterResolver(cfg).ResolveViewport(dims, f.options(cmd))
	if err != nil {
		return units.Engine{}, info, err
	}

	logging.Debug("Viewport resolved",
		"width", vp.Width, "width_source", info.Width.Source,
		"height", vp.Height, "height_source", info.Height.Source,
		"density", vp.PixelRatio, "density_source", info.Density.Source,
		"platform", info.Platform)

	return units.New(cfg, vp), info, nil
}
