package params

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/constants"
	"github.com/jeeftor/responsive-units/internal/units"
)

// Viper keys for viewport parameters (RSU_WIDTH, RSU_HEIGHT, ...)
const (
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyDensity    = "density"
	KeyPlatform   = "platform"
	KeyCellWidth  = "cell_width"
	KeyCellHeight = "cell_height"
)

// Parameter sources
const (
	SourceArgument = "argument"
	SourceFlag     = "flag"
	SourceConfig   = "config"
	SourceTerminal = "terminal"
	SourceDefault  = "default"
)

// ParameterInfo provides information about where a parameter came from
type ParameterInfo struct {
	Value  float64
	Source string
}

// ViewportInfo records the source of every resolved viewport field
type ViewportInfo struct {
	Width    ParameterInfo
	Height   ParameterInfo
	Density  ParameterInfo
	Platform string
}

// ViewportOptions carries the flag values of the calling command.
// Density and Platform are only used when the matching *Set field is true,
// i.e. when the flag was given explicitly.
type ViewportOptions struct {
	Density     float64
	DensitySet  bool
	Platform    string
	PlatformSet bool
	UseTerminal bool
}

// TerminalSizeFunc reports the terminal size in cells
type TerminalSizeFunc func() (columns, rows int, err error)

// ParameterResolver handles resolution of viewport parameters from multiple sources
// Priority: CLI args > flags > env vars > config file > terminal (opt-in) > defaults
type ParameterResolver struct {
	v            *viper.Viper
	cfg          config.Config
	terminalSize TerminalSizeFunc
}

// NewParameterResolver creates a resolver reading the global viper instance
func NewParameterResolver(cfg config.Config) *ParameterResolver {
	return NewParameterResolverWith(viper.GetViper(), cfg, StdoutTerminalSize)
}

// NewParameterResolverWith creates a resolver over an explicit viper instance and terminal probe
func NewParameterResolverWith(v *viper.Viper, cfg config.Config, terminalSize TerminalSizeFunc) *ParameterResolver {
	return &ParameterResolver{v: v, cfg: cfg, terminalSize: terminalSize}
}

// StdoutTerminalSize detects the current terminal size from stdout
func StdoutTerminalSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ResolveViewport resolves a full viewport snapshot.
// args[0] is the width and args[1] the height, both optional.
func (r *ParameterResolver) ResolveViewport(args []string, opts ViewportOptions) (units.Viewport, ViewportInfo, error) {
	var info ViewportInfo
	var err error

	var termW, termH float64
	termOK := false
	if opts.UseTerminal {
		termW, termH, termOK = r.terminalViewport()
	}

	info.Width, err = r.resolveDimension(args, 0, KeyWidth, termW, termOK, r.cfg.BaseDevice.Width)
	if err != nil {
		return units.Viewport{}, info, err
	}
	info.Height, err = r.resolveDimension(args, 1, KeyHeight, termH, termOK, r.cfg.BaseDevice.Height)
	if err != nil {
		return units.Viewport{}, info, err
	}
	if err := constants.ValidateViewport(info.Width.Value, info.Height.Value); err != nil {
		return units.Viewport{}, info, err
	}

	info.Density, err = r.ResolveDensity(opts.Density, opts.DensitySet)
	if err != nil {
		return units.Viewport{}, info, err
	}

	platform := r.ResolvePlatform(opts.Platform, opts.PlatformSet)
	info.Platform = platform.String()

	return units.Viewport{
		Width:      info.Width.Value,
		Height:     info.Height.Value,
		PixelRatio: info.Density.Value,
		Platform:   platform,
	}, info, nil
}

func (r *ParameterResolver) resolveDimension(args []string, argIndex int, key string, termValue float64, termOK bool, fallback float64) (ParameterInfo, error) {
	// 1. Explicit argument (highest priority)
	if argIndex >= 0 && argIndex < len(args) && args[argIndex] != "" {
		v, err := cast.ToFloat64E(args[argIndex])
		if err != nil {
			return ParameterInfo{}, fmt.Errorf("invalid %s '%s': must be a number", key, args[argIndex])
		}
		return ParameterInfo{Value: v, Source: SourceArgument}, nil
	}

	// 2. Environment variable or config file
	if r.v.IsSet(key) {
		raw := r.v.GetString(key)
		if raw != "" {
			v, err := cast.ToFloat64E(raw)
			if err != nil {
				return ParameterInfo{}, fmt.Errorf("invalid RSU_%s '%s': must be a number", strings.ToUpper(key), raw)
			}
			return ParameterInfo{Value: v, Source: SourceConfig}, nil
		}
	}

	// 3. Terminal window, when requested
	if termOK {
		return ParameterInfo{Value: termValue, Source: SourceTerminal}, nil
	}

	// 4. Reference device
	return ParameterInfo{Value: fallback, Source: SourceDefault}, nil
}

// ResolveDensity resolves the pixel ratio
// Priority: explicit flag > RSU_DENSITY env var / config > default (1)
func (r *ParameterResolver) ResolveDensity(flagValue float64, flagSet bool) (ParameterInfo, error) {
	info := ParameterInfo{Value: constants.DefaultPixelRatio, Source: SourceDefault}

	if flagSet {
		info = ParameterInfo{Value: flagValue, Source: SourceFlag}
	} else if r.v.IsSet(KeyDensity) {
		v, err := cast.ToFloat64E(r.v.Get(KeyDensity))
		if err != nil {
			return ParameterInfo{}, fmt.Errorf("invalid RSU_DENSITY '%v': must be a number", r.v.Get(KeyDensity))
		}
		info = ParameterInfo{Value: v, Source: SourceConfig}
	}

	if err := constants.ValidatePixelRatio(info.Value); err != nil {
		return ParameterInfo{}, err
	}
	return info, nil
}

// ResolvePlatform resolves the platform tag
// Priority: explicit flag > RSU_PLATFORM env var / config > unknown
func (r *ParameterResolver) ResolvePlatform(flagValue string, flagSet bool) units.Platform {
	if flagSet {
		return units.ParsePlatform(flagValue)
	}
	if r.v.IsSet(KeyPlatform) {
		return units.ParsePlatform(r.v.GetString(KeyPlatform))
	}
	return units.PlatformUnknown
}

// ResolveCellSize resolves how many dp one terminal cell stands for
// Priority: RSU_CELL_WIDTH/RSU_CELL_HEIGHT env vars / config > defaults (8x16)
func (r *ParameterResolver) ResolveCellSize() (float64, float64) {
	w, h := float64(constants.DefaultCellWidth), float64(constants.DefaultCellHeight)
	if r.v.IsSet(KeyCellWidth) {
		if v, err := cast.ToFloat64E(r.v.Get(KeyCellWidth)); err == nil && v > 0 {
			w = v
		}
	}
	if r.v.IsSet(KeyCellHeight) {
		if v, err := cast.ToFloat64E(r.v.Get(KeyCellHeight)); err == nil && v > 0 {
			h = v
		}
	}
	return w, h
}

// CellsToViewport converts a terminal size in cells to dp
func (r *ParameterResolver) CellsToViewport(columns, rows int) (float64, float64) {
	cw, ch := r.ResolveCellSize()
	return float64(columns) * cw, float64(rows) * ch
}

func (r *ParameterResolver) terminalViewport() (float64, float64, bool) {
	if r.terminalSize == nil {
		return 0, 0, false
	}
	cols, rows, err := r.terminalSize()
	if err != nil || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	w, h := r.CellsToViewport(cols, rows)
	return w, h, true
}
