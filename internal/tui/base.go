package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeeftor/responsive-units/internal/ui"
	"github.com/jeeftor/responsive-units/internal/viewport"
)

// Terminal is the window the live view draws into, in cells
type Terminal struct {
	Title    string
	Columns  int
	Rows     int
	Quitting bool
	Started  time.Time
}

// BaseTUIModel carries the terminal bookkeeping shared by live views
type BaseTUIModel struct {
	Term *Terminal
}

// NewBaseTUIModel creates a base model sized like a default terminal
func NewBaseTUIModel(title string) *BaseTUIModel {
	return &BaseTUIModel{
		Term: &Terminal{
			Title:   title,
			Columns: 80,
			Rows:    24,
			Started: time.Now(),
		},
	}
}

// HandleWindowResize records the new window size. It reports whether the
// window is large enough to stand for a viewport.
func (b *BaseTUIModel) HandleWindowResize(msg tea.WindowSizeMsg) bool {
	b.Term.Columns = msg.Width
	b.Term.Rows = msg.Height
	return msg.Width > 0 && msg.Height > 0
}

func (b *BaseTUIModel) Quit() {
	b.Term.Quitting = true
}

func (b *BaseTUIModel) IsQuitting() bool {
	return b.Term.Quitting
}

// Uptime is the time since the view started
func (b *BaseTUIModel) Uptime() time.Duration {
	return time.Since(b.Term.Started)
}

// Cells returns the window size in columns and rows
func (b *BaseTUIModel) Cells() (int, int) {
	return b.Term.Columns, b.Term.Rows
}

// TickCmd refreshes the status line once a second
func (b *BaseTUIModel) TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TickMsg time.Time

// EventKind classifies one thing a store change did
type EventKind int

const (
	EventResize EventKind = iota
	EventRotate
	EventBreakpoint
	EventSetting
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventRotate:
		return "rotate"
	case EventBreakpoint:
		return "breakpoint"
	case EventSetting:
		return "setting"
	default:
		return "unknown"
	}
}

// Event is one line of the live view's history
type Event struct {
	At   time.Time
	Kind EventKind
	Text string
}

// EventsFor splits a store change into the events the live view shows.
// A change that only touched density or platform yields setting events.
func EventsFor(c viewport.Change, at time.Time) []Event {
	prev, cur := c.Previous, c.Current
	var events []Event
	add := func(kind EventKind, format string, args ...interface{}) {
		events = append(events, Event{At: at, Kind: kind, Text: fmt.Sprintf(format, args...)})
	}

	if prev.Width != cur.Width || prev.Height != cur.Height {
		add(EventResize, "%s x %s dp", ui.FormatNumber(cur.Width), ui.FormatNumber(cur.Height))
	}
	if c.OrientationChanged() {
		add(EventRotate, "rotated %s → %s", prev.Orientation(), cur.Orientation())
	}
	if c.BreakpointChanged() {
		name := cur.Breakpoint
		if !cur.Classified {
			name = "unclassified"
		}
		add(EventBreakpoint, "breakpoint → %s", name)
	}
	if prev.PixelRatio != cur.PixelRatio {
		add(EventSetting, "pixel ratio %sx → %sx", ui.FormatNumber(prev.PixelRatio), ui.FormatNumber(cur.PixelRatio))
	}
	if prev.Platform != cur.Platform {
		add(EventSetting, "platform %s → %s", prev.Platform, cur.Platform)
	}
	return events
}

// EventLog keeps the most recent events, dropping the oldest past capacity
type EventLog struct {
	events   []Event
	capacity int
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

func (l *EventLog) Add(events ...Event) {
	l.events = append(l.events, events...)
	if over := len(l.events) - l.capacity; over > 0 {
		l.events = l.events[over:]
	}
}

// All returns the events oldest first
func (l *EventLog) All() []Event {
	return l.events
}

// Last returns the newest event
func (l *EventLog) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[len(l.events)-1], true
}

func (l *EventLog) Clear() {
	l.events = l.events[:0]
}
