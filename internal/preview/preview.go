// Package preview rasterises a viewport as a PPM image: the canvas is the
// viewport, a band across the top carries the breakpoint colour and a
// centred box shows a wp x hp element.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/spakin/netpbm"

	"github.com/jeeftor/responsive-units/internal/constants"
	"github.com/jeeftor/responsive-units/internal/styles"
	"github.com/jeeftor/responsive-units/internal/ui"
	"github.com/jeeftor/responsive-units/internal/units"
)

// BandPercent is the height of the breakpoint band, in vh.
const BandPercent = 5

// Options controls the element drawn in the preview.
type Options struct {
	WidthPercent  float64 // wp of the box
	HeightPercent float64 // hp of the box
}

// DefaultOptions draws a box half the viewport in each direction.
func DefaultOptions() Options {
	return Options{WidthPercent: 50, HeightPercent: 50}
}

// Layout is the geometry of a preview in device pixels.
type Layout struct {
	Canvas image.Rectangle
	Band   image.Rectangle
	Box    image.Rectangle
}

// Compute lays the preview out for e. Sizes are dp multiplied by the pixel
// ratio (a ratio of 0 counts as 1) and clipped to the canvas.
func Compute(e units.Engine, opts Options) (Layout, error) {
	vp := e.Viewport()
	if err := constants.ValidateViewport(vp.Width, vp.Height); err != nil {
		return Layout{}, err
	}
	ratio := vp.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	// Anything past the per-side maximum is clamped just above it, so the
	// conversion to int stays defined for huge or infinite sizes.
	px := func(dp float64) int {
		if math.IsNaN(dp) || dp < 0 {
			return 0
		}
		v := math.Round(dp * ratio)
		if v > constants.MaxPreviewPixels {
			return constants.MaxPreviewPixels + 1
		}
		return int(v)
	}

	canvas := image.Rect(0, 0, px(vp.Width), px(vp.Height))
	if canvas.Dx() > constants.MaxPreviewPixels || canvas.Dy() > constants.MaxPreviewPixels {
		return Layout{}, fmt.Errorf("preview too large: %dx%d px (maximum %d per side)", canvas.Dx(), canvas.Dy(), constants.MaxPreviewPixels)
	}

	band := image.Rect(0, 0, canvas.Dx(), px(e.Vh(BandPercent))).Intersect(canvas)

	bw, bh := px(e.Wp(opts.WidthPercent)), px(e.Hp(opts.HeightPercent))
	x0 := (canvas.Dx() - bw) / 2
	y0 := (canvas.Dy() - bh) / 2
	box := image.Rect(x0, y0, x0+bw, y0+bh).Intersect(canvas)

	return Layout{Canvas: canvas, Band: band, Box: box}, nil
}

// Render draws the preview for e.
func Render(e units.Engine, opts Options) (*image.RGBA, error) {
	img, _, err := render(e, opts)
	return img, err
}

func render(e units.Engine, opts Options) (*image.RGBA, Layout, error) {
	layout, err := Compute(e, opts)
	if err != nil {
		return nil, Layout{}, err
	}

	bandColor := styles.TierColor(-1)
	if bp, ok := e.Breakpoint(); ok {
		bandColor = styles.TierColor(ui.BreakpointIndex(e.Config().Breakpoints, bp.Name))
	}

	img := image.NewRGBA(layout.Canvas)
	fill(img, layout.Canvas, styles.Background)
	fill(img, layout.Band, bandColor)
	fill(img, layout.Box, styles.Primary)
	return img, layout, nil
}

// Encode writes img as a binary PPM with the given header comments.
func Encode(w io.Writer, img image.Image, comments ...string) error {
	return netpbm.Encode(w, img, &netpbm.EncodeOptions{
		Format:   netpbm.PPM,
		MaxValue: 255,
		Comments: comments,
	})
}

// Write renders the preview for e and encodes it to w.
func Write(w io.Writer, e units.Engine, opts Options) (Layout, error) {
	img, layout, err := render(e, opts)
	if err != nil {
		return Layout{}, err
	}

	state := e.State()
	name := state.Breakpoint
	if !state.Classified {
		name = "unclassified"
	}
	comment := fmt.Sprintf("rsu preview %sx%s dp @%sx %s %s wp=%s hp=%s",
		ui.FormatNumber(state.Width), ui.FormatNumber(state.Height), ui.FormatNumber(state.PixelRatio),
		state.Orientation(), name, ui.FormatNumber(opts.WidthPercent), ui.FormatNumber(opts.HeightPercent))

	if err := Encode(w, img, comment); err != nil {
		return Layout{}, fmt.Errorf("encode preview: %w", err)
	}
	return layout, nil
}

func fill(img draw.Image, r image.Rectangle, hex string) {
	if r.Empty() {
		return
	}
	red, green, blue := styles.HexToRGB(hex)
	draw.Draw(img, r, &image.Uniform{C: color.RGBA{R: red, G: green, B: blue, A: 0xff}}, image.Point{}, draw.Src)
}
