package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/units"
	"github.com/jeeftor/responsive-units/internal/viewport"
)

func cells(columns, rows int) (float64, float64) {
	return float64(columns * 8), float64(rows * 16)
}

func newTestWatch(t *testing.T) (WatchModel, *viewport.Store) {
	t.Helper()
	store := viewport.NewStore(config.Default(), units.Viewport{Width: 375, Height: 812, PixelRatio: 1})
	m := NewWatchModel(store, cells)
	t.Cleanup(m.Close)
	return m, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m WatchModel, msg tea.Msg) (WatchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(WatchModel)
	require.True(t, ok)
	return wm, cmd
}

func TestWatchResizeUpdatesStore(t *testing.T) {
	m, store := newTestWatch(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	state := store.Current()
	assert.Equal(t, 800.0, state.Width)
	assert.Equal(t, 480.0, state.Height)
	assert.True(t, state.IsLandscape)
	assert.Equal(t, "group4", state.Breakpoint)

	w, h := m.Cells()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)

	events := m.Events()
	require.Len(t, events, 3)
	assert.Equal(t, EventResize, events[0].Kind)
	assert.Equal(t, "800 x 480 dp", events[0].Text)
	assert.Equal(t, "rotated portrait → landscape", events[1].Text)
	assert.Equal(t, "breakpoint → group4", events[2].Text)
}

func TestWatchIgnoresEmptyWindow(t *testing.T) {
	m, store := newTestWatch(t)

	update(t, m, tea.WindowSizeMsg{})
	assert.Equal(t, 375.0, store.Current().Width)
	assert.Empty(t, m.Events())
}

func TestWatchKeys(t *testing.T) {
	m, store := newTestWatch(t)

	m, _ = update(t, m, runes("d"))
	assert.Equal(t, 2.0, store.Viewport().PixelRatio)

	m, _ = update(t, m, runes("p"))
	assert.Equal(t, units.PlatformIOS, store.Viewport().Platform)
	assert.True(t, store.Current().IsIOS)

	events := m.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "pixel ratio 1x → 2x", events[0].Text)
	assert.Equal(t, "platform unknown → ios", events[1].Text)
	assert.Equal(t, EventSetting, events[1].Kind)

	m, _ = update(t, m, runes("c"))
	assert.Empty(t, m.Events())

	m, _ = update(t, m, runes("?"))
	assert.Contains(t, m.View(), "Keyboard Shortcuts")
	m, _ = update(t, m, runes("?"))
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")

	m, cmd := update(t, m, runes("x"))
	assert.Nil(t, cmd)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.IsQuitting())
	assert.Contains(t, m.View(), "Stopped watching")
}

func TestWatchView(t *testing.T) {
	m, _ := newTestWatch(t)

	view := m.View()
	assert.Contains(t, view, "Responsive Units - watch")
	assert.Contains(t, view, "group1")
	assert.Contains(t, view, "wp(50)")
	assert.Contains(t, view, "Resize the terminal")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	view = m.View()
	assert.Contains(t, view, "1280 x 800 dp")
	assert.Contains(t, view, "breakpoint → group6")
	assert.Contains(t, view, "landscape, group6")
}

func TestWatchCloseUnsubscribes(t *testing.T) {
	store := viewport.NewStore(config.Default(), units.Viewport{Width: 375, Height: 812, PixelRatio: 1})
	m := NewWatchModel(store, cells)
	assert.Equal(t, 1, store.Listeners())

	m.Close()
	m.Close()
	assert.Equal(t, 0, store.Listeners())

	store.Resize(500, 500)
	assert.Empty(t, m.Events())
}

func TestNextPixelRatio(t *testing.T) {
	assert.Equal(t, 2.0, NextPixelRatio(1))
	assert.Equal(t, 3.0, NextPixelRatio(2))
	assert.Equal(t, 1.0, NextPixelRatio(3))
	assert.Equal(t, 1.0, NextPixelRatio(2.625))
}
