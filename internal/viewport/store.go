// Package viewport owns the current viewport snapshot on behalf of UI code.
//
// The Store is the only mutable piece of the system. Every Update builds a
// fresh units.Engine from the new snapshot, so derived values are never
// carried over from a previous size. Subscribers are told about every size,
// density or platform change together with whether the orientation flipped.
package viewport

import (
	"slices"
	"sync"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/logging"
	"github.com/jeeftor/responsive-units/internal/units"
)

// Change describes one accepted update.
type Change struct {
	Previous units.State
	Current  units.State
}

// OrientationChanged reports whether the landscape/portrait/square reading differs.
func (c Change) OrientationChanged() bool {
	return c.Previous.Orientation() != c.Current.Orientation()
}

// BreakpointChanged reports whether the width moved into another tier.
func (c Change) BreakpointChanged() bool {
	return c.Previous.Breakpoint != c.Current.Breakpoint || c.Previous.Classified != c.Current.Classified
}

// Listener receives changes. It runs on the goroutine that called Update,
// outside the store lock, so it may read the store. Changes are delivered
// in the order they were applied; a listener must not update the store
// itself, since that update waits for the current delivery to finish.
type Listener func(Change)

type registration struct {
	token uint64
	fn    Listener
}

// Store holds the current snapshot and its derived state.
type Store struct {
	mu        sync.RWMutex
	cfg       config.Config
	vp        units.Viewport
	engine    units.Engine
	state     units.State
	listeners map[string]registration
	nextToken uint64
	applied   uint64 // changes applied, under mu

	deliverMu sync.Mutex
	delivered uint64 // changes whose listeners have run
	turn      *sync.Cond
}

// NewStore returns a store primed with the initial snapshot.
func NewStore(cfg config.Config, initial units.Viewport) *Store {
	engine := units.New(cfg, initial)
	s := &Store{
		cfg:       cfg,
		vp:        initial,
		engine:    engine,
		state:     engine.State(),
		listeners: make(map[string]registration),
	}
	s.turn = sync.NewCond(&s.deliverMu)
	return s
}

// Current returns the state for the current snapshot. Width and height in
// the returned value always come from the same snapshot.
func (s *Store) Current() units.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Engine returns the engine bound to the current snapshot, for one-off
// conversions (Wp, Rem, ...).
func (s *Store) Engine() units.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Viewport returns the current snapshot.
func (s *Store) Viewport() units.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vp
}

// Update replaces the snapshot. It returns false, and notifies nobody, when
// vp equals the current snapshot.
func (s *Store) Update(vp units.Viewport) bool {
	return s.Modify(func(cur *units.Viewport) { *cur = vp })
}

// Resize is Update keeping the current density and platform.
func (s *Store) Resize(width, height float64) bool {
	return s.Modify(func(vp *units.Viewport) { vp.Width, vp.Height = width, height })
}

// Modify edits a copy of the current snapshot and stores the result, all
// under the store lock, so concurrent edits of different fields are not lost.
func (s *Store) Modify(edit func(*units.Viewport)) bool {
	s.mu.Lock()
	vp := s.vp
	edit(&vp)
	if vp == s.vp {
		s.mu.Unlock()
		return false
	}

	engine := units.New(s.cfg, vp)
	change := Change{Previous: s.state, Current: engine.State()}
	s.vp = vp
	s.engine = engine
	s.state = change.Current
	s.applied++
	seq := s.applied
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	logging.Resize(vp.Width, vp.Height)
	if change.OrientationChanged() {
		logging.Rotate(change.Previous.Orientation(), change.Current.Orientation())
	}
	logging.Debug("Viewport updated",
		"breakpoint", change.Current.Breakpoint,
		"pixel_ratio", vp.PixelRatio,
		"platform", vp.Platform.String(),
		"listeners", len(listeners))

	s.deliver(seq, change, listeners)
	return true
}

// deliver runs listeners for change number seq once every earlier change
// has been delivered.
func (s *Store) deliver(seq uint64, change Change, listeners []Listener) {
	s.deliverMu.Lock()
	for s.delivered != seq-1 {
		s.turn.Wait()
	}
	s.deliverMu.Unlock()

	defer func() {
		s.deliverMu.Lock()
		s.delivered = seq
		s.turn.Broadcast()
		s.deliverMu.Unlock()
	}()
	for _, fn := range listeners {
		fn(change)
	}
}

// Subscribe registers fn under id and returns the matching unsubscribe.
//
// Subscribing an id that is already registered replaces the earlier
// listener, so a component that mounts repeatedly holds at most one
// registration. The returned function is idempotent and only removes the
// registration it created; calling a stale unsubscribe after a replacement
// leaves the newer listener in place.
func (s *Store) Subscribe(id string, fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextToken++
	token := s.nextToken
	_, replaced := s.listeners[id]
	s.listeners[id] = registration{token: token, fn: fn}
	s.mu.Unlock()

	if replaced {
		logging.Debug("Listener replaced", "id", id)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if reg, ok := s.listeners[id]; ok && reg.token == token {
				delete(s.listeners, id)
			}
		})
	}
}

// Listeners returns the number of registered listeners.
func (s *Store) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// snapshotListeners copies the listeners in id order. Callers hold s.mu.
func (s *Store) snapshotListeners() []Listener {
	ids := make([]string, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.listeners[id].fn)
	}
	return out
}
