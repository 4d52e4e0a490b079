package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/constants"
	"github.com/jeeftor/responsive-units/internal/ui"
	"github.com/jeeftor/responsive-units/internal/units"
	"github.com/jeeftor/responsive-units/internal/viewport"
)

const (
	watchListenerID = "watch"
	maxEvents       = 50
	visibleEvents   = 6
)

// CellConverter turns a terminal size in cells into a viewport size in dp
type CellConverter func(columns, rows int) (float64, float64)

// WatchModel is the live view behind `rsu watch`: the terminal window stands
// in for a device viewport and every resize is pushed through the store.
type WatchModel struct {
	*BaseTUIModel
	store       *viewport.Store
	breakpoints []config.Breakpoint
	toViewport  CellConverter
	keyHandler  *KeyHandler
	renderer    *TUIRenderer
	events      *EventLog
	showHelp    *bool
	unsubscribe func()
}

// NewWatchModel creates the live view over store. The model subscribes to
// the store immediately; call Close when the program exits.
func NewWatchModel(store *viewport.Store, toViewport CellConverter) WatchModel {
	m := WatchModel{
		BaseTUIModel: NewBaseTUIModel("Responsive Units - watch"),
		store:        store,
		breakpoints:  store.Engine().Config().Breakpoints,
		toViewport:   toViewport,
		keyHandler:   NewKeyHandler(),
		renderer:     NewTUIRenderer(80),
		events:       NewEventLog(maxEvents),
		showHelp:     new(bool),
	}

	events := m.events
	m.unsubscribe = store.Subscribe(watchListenerID, func(c viewport.Change) {
		events.Add(EventsFor(c, time.Now())...)
	})
	return m
}

// Close removes the model's store listener
func (m WatchModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Events returns the recorded store changes, oldest first
func (m WatchModel) Events() []Event {
	return m.events.All()
}

// Init initializes the model
func (m WatchModel) Init() tea.Cmd {
	return m.TickCmd()
}

// Update handles messages and updates the model
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetWidth(msg.Width)
		if m.HandleWindowResize(msg) {
			w, h := m.toViewport(msg.Width, msg.Height)
			m.store.Resize(w, h)
		}
		return m, nil

	case TickMsg:
		return m, m.TickCmd()

	case tea.KeyMsg:
		action, handled := m.keyHandler.HandleKeys(msg)
		if !handled {
			return m, nil
		}
		switch action {
		case KeyActionQuit:
			m.Quit()
			return m, tea.Quit
		case KeyActionHelp:
			*m.showHelp = !*m.showHelp
		case KeyActionDensity:
			m.store.Modify(func(vp *units.Viewport) { vp.PixelRatio = NextPixelRatio(vp.PixelRatio) })
		case KeyActionPlatform:
			m.store.Modify(func(vp *units.Viewport) { vp.Platform = vp.Platform.Next() })
		case KeyActionClear:
			m.events.Clear()
		}
		return m, nil
	}

	return m, nil
}

// View renders the TUI
func (m WatchModel) View() string {
	if m.IsQuitting() {
		return MutedStyle.Render("Stopped watching") + "\n"
	}

	state := m.store.Current()

	var s strings.Builder
	s.WriteString(m.renderer.RenderTitle(m.Term.Title) + "\n\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		ui.StateView(state, m.breakpoints),
		"",
		strings.Join(ui.SampleConversions(m.store.Engine()), "\n"))
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", ui.BreakpointTable(m.breakpoints, state.Breakpoint)))
	s.WriteString("\n\n")

	if *m.showHelp {
		s.WriteString(m.renderer.RenderKeyHelp(m.keyHandler.Bindings()) + "\n")
	}

	events := m.events.All()
	if len(events) == 0 {
		s.WriteString(MutedStyle.Render("Resize the terminal to see changes...") + "\n")
	}
	for _, line := range m.renderer.RenderEvents(events, visibleEvents) {
		s.WriteString(line + "\n")
	}
	s.WriteString("\n")

	last, hasLast := m.events.Last()
	status := m.renderer.RenderStatus(state, m.Uptime(), last, hasLast)
	s.WriteString(m.renderer.RenderFooter(status, m.renderer.RenderShortHelp(m.keyHandler.Bindings())))

	return s.String()
}

// NextPixelRatio cycles through constants.PixelRatios. A ratio outside the
// list restarts the cycle.
func NextPixelRatio(current float64) float64 {
	for i, r := range constants.PixelRatios {
		if r == current {
			return constants.PixelRatios[(i+1)%len(constants.PixelRatios)]
		}
	}
	return constants.PixelRatios[0]
}
