// Package units converts a viewport snapshot into proportionate layout and
// typography values.
//
// Everything here is a pure function of (config, viewport, input): there is
// no package state, nothing is cached between snapshots, and an Engine can
// be shared freely between goroutines. Callers must hand in a consistent
// width/height pair; mixing dimensions from two snapshots is not detectable
// here.
//
// Four unit families are provided:
//
//   - Wp/Hp: percentage of width/height, snapped to the physical pixel grid.
//   - Vw/Vh: percentage of width/height, floored like web viewport units.
//   - Rem: font size scaled against the reference device width.
//   - Rf: font size clamped to BaseFontSize * MaxFontScaleFactor.
//
// Malformed numeric input propagates as NaN instead of an error.
package units

import (
	"math"

	"github.com/jeeftor/responsive-units/internal/config"
)

// smallScreenDiscount shrinks rem output on screens whose longer side is
// shorter than the reference device height.
const smallScreenDiscount = 0.9

// Viewport is one snapshot of the host window.
type Viewport struct {
	Width  float64
	Height float64
	// PixelRatio is physical pixels per dp. Zero means unknown and is treated as 1.
	PixelRatio float64
	Platform   Platform
}

// Engine binds a configuration and a viewport snapshot. It is a value type;
// build a new one for every snapshot.
type Engine struct {
	cfg config.Config
	vp  Viewport
}

// New returns an Engine for vp under cfg.
func New(cfg config.Config, vp Viewport) Engine {
	return Engine{cfg: cfg, vp: vp}
}

// Config returns the configuration the engine was built with.
func (e Engine) Config() config.Config { return e.cfg }

// Viewport returns the snapshot the engine was built with.
func (e Engine) Viewport() Viewport { return e.vp }

// IsLandscape reports width > height.
func (e Engine) IsLandscape() bool { return IsLandscape(e.vp.Width, e.vp.Height) }

// IsPortrait reports width < height.
func (e Engine) IsPortrait() bool { return IsPortrait(e.vp.Width, e.vp.Height) }

// IsLandscape reports width > height. A square viewport is neither
// landscape nor portrait.
func IsLandscape(width, height float64) bool { return width > height }

// IsPortrait reports width < height.
func IsPortrait(width, height float64) bool { return width < height }

// Wp returns percent of the viewport width in dp, rounded to the nearest
// physical pixel. Percentages are not clamped.
func (e Engine) Wp(percent float64) float64 {
	return PercentToPixel(e.vp.Width, percent, e.vp.PixelRatio)
}

// Hp is Wp for the viewport height.
func (e Engine) Hp(percent float64) float64 {
	return PercentToPixel(e.vp.Height, percent, e.vp.PixelRatio)
}

// Vw returns percent of the viewport width floored to a whole dp. Unlike
// Wp it ignores pixel density.
func (e Engine) Vw(percent float64) float64 {
	return PercentToViewport(e.vp.Width, percent)
}

// Vh is Vw for the viewport height.
func (e Engine) Vh(percent float64) float64 {
	return PercentToViewport(e.vp.Height, percent)
}

// Rem scales size against the reference device width.
//
// The scaling axis is the viewport height in landscape and the width
// otherwise. Screens whose longer side is below the reference device height
// get a further 10% discount. The result is floored.
func (e Engine) Rem(size float64) float64 {
	w, h := e.vp.Width, e.vp.Height

	base := w
	if IsLandscape(w, h) {
		base = h
	}

	multiplier := 1.0
	if math.Max(w, h) < e.cfg.BaseDevice.Height {
		multiplier = smallScreenDiscount
	}

	return math.Floor(base / e.cfg.BaseDevice.Width * size * multiplier)
}

// Rf caps size at BaseFontSize * MaxFontScaleFactor. There is no lower
// bound and no viewport scaling.
func (e Engine) Rf(size float64) float64 {
	return math.Min(e.cfg.MaxFontSize(), size)
}

// Breakpoint classifies the viewport width against the configured table.
func (e Engine) Breakpoint() (config.Breakpoint, bool) {
	return Classify(e.vp.Width, e.cfg.Breakpoints)
}

// PercentToPixel is round_to_nearest_pixel(axis * percent / 100).
func PercentToPixel(axis, percent, pixelRatio float64) float64 {
	return RoundToNearestPixel(axis*percent/100, pixelRatio)
}

// PercentToViewport is floor(axis / 100 * percent).
func PercentToViewport(axis, percent float64) float64 {
	return math.Floor(axis / 100 * percent)
}

// RoundToNearestPixel snaps a dp value to the closest value that is a whole
// number of physical pixels at pixelRatio. Halves round up, toward +Inf.
// An unknown ratio (zero, negative, NaN or Inf) is treated as 1.
func RoundToNearestPixel(dp, pixelRatio float64) float64 {
	if !(pixelRatio > 0) || math.IsInf(pixelRatio, 0) {
		pixelRatio = 1
	}
	return roundHalfUp(dp*pixelRatio) / pixelRatio
}

func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}
