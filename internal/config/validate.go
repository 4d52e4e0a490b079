package config

import (
	"fmt"
	"math"
	"sort"

	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/validation"
)

// Validation rule names reported in validation.ValidationError.Rule.
const (
	RulePositive      = "positive"
	RuleMinScale      = "min_scale"
	RuleRequired      = "required"
	RuleUniqueName    = "unique_name"
	RuleOrderedBounds = "low_le_high"
	RuleNonNegative   = "non_negative"
	RuleStartsAtZero  = "starts_at_zero"
	RuleNoOverlap     = "no_overlap"
	RuleNoGap         = "no_gap"
	RuleUnbounded     = "unbounded"
)

// Validate checks the structural invariants and returns an error wrapping
// ErrInvalidConfig and the collected *validation.ValidationResult.
func (c Config) Validate() error {
	result := c.Check()
	if err := result.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Check runs every rule and returns the full result, warnings included.
func (c Config) Check() *validation.ValidationResult {
	result := validation.NewResult()

	checkPositive(result, "base_device.width", c.BaseDevice.Width)
	checkPositive(result, "base_device.height", c.BaseDevice.Height)
	checkPositive(result, "base_font_size", c.BaseFontSize)

	if !(c.MaxFontScaleFactor >= 1) || math.IsInf(c.MaxFontScaleFactor, 0) {
		result.AddError("max_font_scale_factor", c.MaxFontScaleFactor, RuleMinScale,
			"max font scale factor must be a finite number >= 1")
	}

	if c.BaseDevice.Width > c.BaseDevice.Height {
		result.AddWarning(fmt.Sprintf("base device %gx%g is landscape; reference devices are usually portrait",
			c.BaseDevice.Width, c.BaseDevice.Height))
	}

	checkBreakpoints(result, c.Breakpoints)

	logging.Debug("Configuration validation",
		"valid", result.Valid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))

	return result
}

func checkPositive(result *validation.ValidationResult, field string, v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		result.AddError(field, v, RulePositive, "must be a finite positive number")
	}
}

func checkBreakpoints(result *validation.ValidationResult, bps []Breakpoint) {
	if len(bps) == 0 {
		result.AddError("breakpoints", 0, RuleRequired, "at least one breakpoint is required")
		return
	}

	seen := make(map[string]int, len(bps))
	malformed := false
	for i, bp := range bps {
		field := fmt.Sprintf("breakpoints[%d]", i)
		if bp.Name == "" {
			result.AddError(field+".name", bp.Name, RuleRequired, "breakpoint name must not be empty")
		} else if prev, dup := seen[bp.Name]; dup {
			result.AddError(field+".name", bp.Name, RuleUniqueName,
				fmt.Sprintf("name already used by breakpoints[%d]", prev))
		} else {
			seen[bp.Name] = i
		}

		if math.IsNaN(bp.Low) || math.IsNaN(bp.High) || !(bp.Low <= bp.High) {
			result.AddError(field, bp.String(), RuleOrderedBounds, "low bound must not exceed high bound")
			malformed = true
		}
		if bp.Low < 0 {
			result.AddError(field+".low", bp.Low, RuleNonNegative, "low bound must not be negative")
			malformed = true
		}
	}
	if malformed {
		// Coverage checks are meaningless on malformed intervals.
		return
	}

	sorted := make([]Breakpoint, len(bps))
	copy(sorted, bps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Low < sorted[j].Low })

	if !sort.SliceIsSorted(bps, func(i, j int) bool { return bps[i].Low < bps[j].Low }) {
		result.AddWarning("breakpoints are not declared in ascending order; classification still scans them in declared order")
	}

	if sorted[0].Low != 0 {
		result.AddError("breakpoints", sorted[0].String(), RuleStartsAtZero,
			"the lowest breakpoint must start at 0")
	}

	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		switch {
		case next.Low <= prev.High:
			result.AddError("breakpoints", next.Name, RuleNoOverlap,
				fmt.Sprintf("%s overlaps %s", next, prev))
		case next.Low > prev.High+1:
			result.AddError("breakpoints", next.Name, RuleNoGap,
				fmt.Sprintf("widths between %g and %g are not covered (%s .. %s)", prev.High, next.Low, prev.Name, next.Name))
		}
	}

	if last := sorted[len(sorted)-1]; last.High < MaxRealisticWidth {
		result.AddError("breakpoints", last.String(), RuleUnbounded,
			fmt.Sprintf("the highest breakpoint must reach at least %d (or be unbounded)", MaxRealisticWidth))
	}
}
