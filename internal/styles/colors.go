// Package styles holds the rsu palette and the lipgloss styles built on it.
// The same hex colours are used for terminal output and for preview images.
package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	Primary     = "#7D56F4"
	PrimaryText = "#FAFAFA"

	Success = "#04B575"
	Warning = "#FFA500"
	Error   = "#FF6B6B"
	Info    = "#00CED1"

	Text      = "#FAFAFA"
	TextMuted = "#626262"
	TextBold  = "#90EE90"
	Accent    = "#CCCCCC"
	Highlight = "#FFFF00"

	// Background is the preview canvas
	Background = "#1E1E1E"
)

// TierColors colours breakpoint tiers by table position, smallest first.
// Tables longer than the palette wrap around.
var TierColors = []string{
	"#FF6B6B", // red
	"#FFA500", // orange
	"#FFFF99", // yellow
	"#90EE90", // green
	"#87CEEB", // blue
	"#DDA0DD", // magenta
}

func fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func strong(hex string) lipgloss.Style {
	return fg(hex).Bold(true)
}

var (
	TitleStyle = strong(PrimaryText).Background(lipgloss.Color(Primary)).Padding(0, 1)

	SuccessStyle   = strong(Success)
	ErrorStyle     = strong(Error)
	WarningStyle   = strong(Warning)
	BoldStyle      = strong(TextBold)
	KeyStyle       = strong(Info)
	LabelStyle     = strong(Accent)
	CodeStyle      = strong(Primary)
	HighlightStyle = strong(Highlight)
	ValueStyle     = fg(Text)
	MutedStyle     = fg(TextMuted).Italic(true)

	HeaderStyle  = strong(Primary).Padding(0, 1).Margin(0, 0, 1, 0)
	SectionStyle = strong(TextBold).Margin(1, 0, 0, 0)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Primary)).
			Padding(1, 1).
			Margin(0, 1)
)

// TierColor returns the palette entry for the breakpoint at index.
// A negative index (unclassified) gets the muted colour.
func TierColor(index int) string {
	if index < 0 {
		return TextMuted
	}
	return TierColors[index%len(TierColors)]
}

// TierStyle returns a bold foreground style for the breakpoint at index
func TierStyle(index int) lipgloss.Style {
	return strong(TierColor(index))
}

// HexToRGB parses a "#RRGGBB" colour. Malformed input yields black.
func HexToRGB(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
