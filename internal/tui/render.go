package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeeftor/responsive-units/internal/styles"
	"github.com/jeeftor/responsive-units/internal/units"
)

var (
	TitleStyle     = styles.TitleStyle
	MutedStyle     = styles.MutedStyle
	HighlightStyle = styles.HighlightStyle
)

// eventStyles colours the event history by kind
var eventStyles = map[EventKind]struct {
	style     lipgloss.Style
	indicator string
}{
	EventResize:     {lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Text)), "↔"},
	EventRotate:     {lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Success)), "⟳"},
	EventBreakpoint: {lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Warning)), "▮"},
	EventSetting:    {lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Info)), "•"},
}

// TUIRenderer lays out the live view for the current window width
type TUIRenderer struct {
	width int
}

func NewTUIRenderer(width int) *TUIRenderer {
	return &TUIRenderer{width: width}
}

func (r *TUIRenderer) SetWidth(width int) {
	r.width = width
}

// RenderTitle centres title across the window
func (r *TUIRenderer) RenderTitle(title string) string {
	if r.width <= 0 {
		return TitleStyle.Render(title)
	}
	return TitleStyle.Width(r.width).Align(lipgloss.Center).Render(title)
}

// RenderStatus summarises the state, how long the view has run and the
// newest event with its age
func (r *TUIRenderer) RenderStatus(state units.State, uptime time.Duration, last Event, hasLast bool) string {
	tier := state.Breakpoint
	if !state.Classified {
		tier = "unclassified"
	}
	parts := []string{
		fmt.Sprintf("%s, %s", state.Orientation(), tier),
		fmt.Sprintf("up %s", formatDuration(uptime)),
	}
	if hasLast {
		parts = append(parts, fmt.Sprintf("last: %s (%s ago)", last.Text, formatDuration(time.Since(last.At))))
	}
	return strings.Join(parts, " | ")
}

// RenderEvents renders the newest maxLines events, oldest first
func (r *TUIRenderer) RenderEvents(events []Event, maxLines int) []string {
	if maxLines <= 0 {
		maxLines = 10
	}
	if len(events) > maxLines {
		events = events[len(events)-maxLines:]
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		look, ok := eventStyles[e.Kind]
		if !ok {
			look = eventStyles[EventSetting]
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			MutedStyle.Render(e.At.Format("15:04:05")),
			look.style.Render(look.indicator),
			look.style.Render(e.Text)))
	}
	return lines
}

// RenderKeyHelp renders one binding per line in a box
func (r *TUIRenderer) RenderKeyHelp(bindings []key.Binding) string {
	lines := make([]string, 0, len(bindings)+2)
	lines = append(lines, styles.BoldStyle.Render("Keyboard Shortcuts"), "")
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%s %s", HighlightStyle.Render(fmt.Sprintf("%-6s", h.Key)), h.Desc))
	}
	return styles.BoxStyle.Render(strings.Join(lines, "\n"))
}

// RenderShortHelp renders the bindings on one line
func (r *TUIRenderer) RenderShortHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// RenderFooter puts left and right at the window edges
func (r *TUIRenderer) RenderFooter(left, right string) string {
	if r.width <= 0 {
		return left + " | " + right
	}
	gap := max(r.width-lipgloss.Width(left)-lipgloss.Width(right), 3)
	return MutedStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int((d % time.Hour).Minutes()))
	}
}
