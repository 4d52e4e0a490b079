package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keyboard shortcuts of the watch view
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Density  key.Binding
	Platform key.Binding
	Clear    key.Binding
}

// DefaultKeyMap returns the default key mappings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Density: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cycle pixel ratio"),
		),
		Platform: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle platform"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "ctrl+l"),
			key.WithHelp("c", "clear events"),
		),
	}
}

// KeyAction represents keyboard actions
type KeyAction int

const (
	KeyActionNone KeyAction = iota
	KeyActionQuit
	KeyActionHelp
	KeyActionDensity
	KeyActionPlatform
	KeyActionClear
)

// String returns a string representation of the key action
func (ka KeyAction) String() string {
	switch ka {
	case KeyActionQuit:
		return "quit"
	case KeyActionHelp:
		return "help"
	case KeyActionDensity:
		return "density"
	case KeyActionPlatform:
		return "platform"
	case KeyActionClear:
		return "clear"
	default:
		return "none"
	}
}

// KeyHandler maps key presses to actions
type KeyHandler struct {
	keyMap KeyMap
}

// NewKeyHandler creates a new keyboard handler with default key mappings
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{keyMap: DefaultKeyMap()}
}

// HandleKeys returns the action bound to msg
func (kh *KeyHandler) HandleKeys(msg tea.KeyMsg) (KeyAction, bool) {
	switch {
	case key.Matches(msg, kh.keyMap.Quit):
		return KeyActionQuit, true
	case key.Matches(msg, kh.keyMap.Help):
		return KeyActionHelp, true
	case key.Matches(msg, kh.keyMap.Density):
		return KeyActionDensity, true
	case key.Matches(msg, kh.keyMap.Platform):
		return KeyActionPlatform, true
	case key.Matches(msg, kh.keyMap.Clear):
		return KeyActionClear, true
	}
	return KeyActionNone, false
}

// Bindings returns the bindings in display order
func (kh *KeyHandler) Bindings() []key.Binding {
	return []key.Binding{
		kh.keyMap.Density,
		kh.keyMap.Platform,
		kh.keyMap.Clear,
		kh.keyMap.Help,
		kh.keyMap.Quit,
	}
}
