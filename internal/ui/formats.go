package ui

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/styles"
	"github.com/jeeftor/responsive-units/internal/units"
)

// Icons for consistent UI messaging
const (
	SuccessIcon = "✅"
	ErrorIcon   = "❌"
	InfoIcon    = "ℹ️"
	WarningIcon = "⚠️"
	ResultIcon  = "📊"
	HeaderIcon  = "🔸"
)

// Helper functions for styling specific types of content
func Success(text string) string {
	return styles.SuccessStyle.Render(text)
}

func Error(text string) string {
	return styles.ErrorStyle.Render(text)
}

func Warning(text string) string {
	return styles.WarningStyle.Render(text)
}

func Bold(text string) string {
	return styles.BoldStyle.Render(text)
}

func Muted(text string) string {
	return styles.MutedStyle.Render(text)
}

func Key(text string) string {
	return styles.KeyStyle.Render(text)
}

func Value(text string) string {
	return styles.ValueStyle.Render(text)
}

func Code(text string) string {
	return styles.CodeStyle.Render(text)
}

// FormatNumber renders a dp value without trailing zeros
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BreakpointIndex returns the table position of the named breakpoint, or -1
func BreakpointIndex(bps []config.Breakpoint, name string) int {
	for i, bp := range bps {
		if bp.Name == name {
			return i
		}
	}
	return -1
}

// BreakpointLabel renders a breakpoint name in its tier colour.
func BreakpointLabel(s units.State, bps []config.Breakpoint) string {
	if !s.Classified {
		return Muted("unclassified")
	}
	return styles.TierStyle(BreakpointIndex(bps, s.Breakpoint)).Render(s.Breakpoint)
}

// StateLines returns the key/value lines describing a responsive state
func StateLines(s units.State, bps []config.Breakpoint) []string {
	row := func(k, v string) string {
		return fmt.Sprintf("%s %s", Key(fmt.Sprintf("%-14s", k+":")), v)
	}
	return []string{
		row("Viewport", Value(fmt.Sprintf("%s x %s dp", FormatNumber(s.Width), FormatNumber(s.Height)))),
		row("Pixel ratio", Value(FormatNumber(s.PixelRatio))),
		row("Platform", Value(s.Platform.String())),
		row("Orientation", Bold(s.Orientation())),
		row("Breakpoint", BreakpointLabel(s, bps)),
		row("Font sizes", Value(fmt.Sprintf("base %s, max %s", FormatNumber(s.BaseFontSize), FormatNumber(s.MaxFontSize)))),
	}
}

// StateView renders a responsive state as a titled box
func StateView(s units.State, bps []config.Breakpoint) string {
	body := strings.Join(StateLines(s, bps), "\n")
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Responsive state"),
		styles.BoxStyle.Render(body))
}

// SampleConversions returns "unit(input) = result" lines for the common units
func SampleConversions(e units.Engine) []string {
	samples := []struct {
		unit  units.Unit
		input float64
	}{
		{units.UnitWp, 50},
		{units.UnitHp, 50},
		{units.UnitVw, 50},
		{units.UnitVh, 50},
		{units.UnitRem, e.Config().BaseFontSize},
		{units.UnitRf, e.Config().MaxFontSize() + 8},
	}

	lines := make([]string, 0, len(samples))
	for _, s := range samples {
		lines = append(lines, ConversionLine(s.unit, FormatNumber(s.input), e.Convert(s.unit, s.input)))
	}
	return lines
}

// ConversionLine formats one conversion result
func ConversionLine(u units.Unit, input string, result float64) string {
	return fmt.Sprintf("%s(%s) = %s", Code(string(u)), input, Bold(FormatNumber(result)))
}

// BreakpointTable renders the breakpoint table. The row named highlight, if
// any, is marked.
func BreakpointTable(bps []config.Breakpoint, highlight string) string {
	rows := make([][]string, 0, len(bps))
	for _, bp := range bps {
		mark := ""
		if bp.Name == highlight {
			mark = "◀"
		}
		rows = append(rows, []string{bp.Name, FormatNumber(bp.Low), FormatNumber(bp.High), mark})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Primary))).
		Headers("NAME", "LOW", "HIGH", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return cell.Inherit(styles.LabelStyle)
			case col == 0:
				return cell.Inherit(styles.TierStyle(row))
			case row < len(bps) && bps[row].Name == highlight:
				return cell.Inherit(styles.HighlightStyle)
			default:
				return cell.Inherit(styles.ValueStyle)
			}
		})

	return t.Render()
}

// StatusMessage formats a status message with consistent styling
func StatusMessage(w io.Writer, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "%s %s\n", SuccessIcon, message)
}

// EnvironmentVariableExample formats environment variable usage examples
func EnvironmentVariableExample(w io.Writer, varName, example string) {
	fmt.Fprintf(w, "export %s=%s\n", Key(varName), Value(example))
}

// CommandExample formats command usage examples
func CommandExample(w io.Writer, command, description string) {
	fmt.Fprintf(w, "%-40s # %s\n", Code(command), Muted(description))
}

// SectionHeader formats a section header with styling
func SectionHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s %s\n", HeaderIcon, Bold(title))
}

// BulletPoint formats a bullet point with consistent styling
func BulletPoint(w io.Writer, text string) {
	fmt.Fprintf(w, "• %s\n", text)
}

// ValidationErrorMsg formats validation error messages
func ValidationErrorMsg(w io.Writer, field, message string) {
	fmt.Fprintf(w, "%s Validation error for %s: %s\n", ErrorIcon, Bold(field), Error(message))
}

// ValidationWarningMsg formats validation warning messages
func ValidationWarningMsg(w io.Writer, field, message string) {
	fmt.Fprintf(w, "%s %s: %s\n", WarningIcon, Bold(field), Warning(message))
}
