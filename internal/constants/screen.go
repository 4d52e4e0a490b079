package constants

import (
	"fmt"
	"math"
)

// Terminal cell size in dp, used when a terminal window stands in for a
// device viewport (rsu watch, rsu state --terminal)
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Fallback terminal size when it cannot be detected
const (
	FallbackColumns = 80
	FallbackRows    = 24
)

// Viewport limits
const (
	DefaultPixelRatio = 1

	// Maximum reasonable viewport dimension in dp
	MaxViewportDimension = 100000

	// Maximum preview image side in device pixels
	MaxPreviewPixels = 16384
)

// PixelRatios cycled through by the live view
var PixelRatios = []float64{1, 2, 3}

// ValidateViewport validates that viewport dimensions are usable
func ValidateViewport(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) {
		return fmt.Errorf("viewport dimensions must be numbers")
	}

	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport dimensions must be positive (got %gx%g)", width, height)
	}

	if width > MaxViewportDimension || height > MaxViewportDimension {
		return fmt.Errorf("viewport dimensions too large: maximum %dx%d", MaxViewportDimension, MaxViewportDimension)
	}

	return nil
}

// ValidatePixelRatio validates a device pixel density
func ValidatePixelRatio(ratio float64) error {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 0 {
		return fmt.Errorf("pixel ratio must be a finite non-negative number (got %g)", ratio)
	}
	return nil
}
