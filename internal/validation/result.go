package validation

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationResult holds the results of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []string
}

// NewResult returns an empty, valid result.
func NewResult() *ValidationResult {
	return &ValidationResult{Valid: true}
}

// AddError adds a validation error
func (vr *ValidationResult) AddError(field string, value interface{}, rule string, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	})
}

// AddWarning adds a validation warning
func (vr *ValidationResult) AddWarning(message string) {
	vr.Warnings = append(vr.Warnings, message)
}

// HasRule reports whether any collected error was raised by rule.
func (vr *ValidationResult) HasRule(rule string) bool {
	for _, e := range vr.Errors {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

// Error makes a failed result usable as an error value.
func (vr *ValidationResult) Error() string {
	switch len(vr.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return vr.Errors[0].Error()
	default:
		return fmt.Sprintf("%d validation errors: %v (and %d more)", len(vr.Errors), vr.Errors[0], len(vr.Errors)-1)
	}
}

// Err returns the result as an error, or nil when it is valid.
func (vr *ValidationResult) Err() error {
	if vr == nil || vr.Valid {
		return nil
	}
	return vr
}

// FormatValidationErrors formats validation errors for user display
func FormatValidationErrors(result *ValidationResult) string {
	if result.Valid && len(result.Warnings) == 0 {
		return ""
	}

	var sb strings.Builder
	if !result.Valid {
		sb.WriteString("Configuration validation failed:\n")
		for _, err := range result.Errors {
			sb.WriteString(fmt.Sprintf("  • %s\n", err.Error()))
		}
	}

	if len(result.Warnings) > 0 {
		if !result.Valid {
			sb.WriteString("\n")
		}
		sb.WriteString("Warnings:\n")
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warning))
		}
	}

	return sb.String()
}
