package units

import (
	"errors"
	"fmt"

	"github.com/jeeftor/responsive-units/internal/config"
)

// ErrUnclassified is returned by ClassifyStrict when no breakpoint contains
// the width. With a validated table that only happens for fractional widths
// between two whole-unit tiers, or NaN.
var ErrUnclassified = errors.New("width matches no breakpoint")

// Classify returns the first breakpoint, in table order, whose closed
// interval contains width. The boolean is false when nothing matches; there
// is no fallback tier.
func Classify(width float64, breakpoints []config.Breakpoint) (config.Breakpoint, bool) {
	for _, bp := range breakpoints {
		if bp.Contains(width) {
			return bp, true
		}
	}
	return config.Breakpoint{}, false
}

// ClassifyStrict is Classify with the miss reported as ErrUnclassified.
func ClassifyStrict(width float64, breakpoints []config.Breakpoint) (config.Breakpoint, error) {
	bp, ok := Classify(width, breakpoints)
	if !ok {
		return config.Breakpoint{}, fmt.Errorf("%w: width %g", ErrUnclassified, width)
	}
	return bp, nil
}
