package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationResult(t *testing.T) {
	result := NewResult()
	assert.True(t, result.Valid)
	assert.NoError(t, result.Err())
	assert.Empty(t, FormatValidationErrors(result))

	result.AddWarning("tiny base font")
	assert.True(t, result.Valid, "warnings must not invalidate")
	assert.Contains(t, FormatValidationErrors(result), "tiny base font")

	result.AddError("breakpoints[1]", 350.0, "no_overlap", "overlaps group1")
	require.Error(t, result.Err())
	assert.False(t, result.Valid)
	assert.True(t, result.HasRule("no_overlap"))
	assert.False(t, result.HasRule("no_gap"))
	assert.Contains(t, result.Error(), "breakpoints[1]")

	result.AddError("base_font_size", -1.0, "positive", "must be positive")
	assert.Contains(t, result.Error(), "2 validation errors")

	formatted := FormatValidationErrors(result)
	assert.Contains(t, formatted, "Configuration validation failed")
	assert.Contains(t, formatted, "must be positive")
	assert.Contains(t, formatted, "Warnings")
}

func TestValidationResultAsError(t *testing.T) {
	result := NewResult()
	result.AddError("base_device.width", 0.0, "positive", "must be positive")

	var err error = result
	var target *ValidationResult
	require.True(t, errors.As(err, &target))
	assert.Len(t, target.Errors, 1)
	assert.Equal(t, "positive", target.Errors[0].Rule)
}

func TestNilResultErr(t *testing.T) {
	var result *ValidationResult
	assert.NoError(t, result.Err())
}
