package viewport

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/units"
)

func newTestStore() *Store {
	return NewStore(config.Default(), units.Viewport{Width: 375, Height: 812, PixelRatio: 3, Platform: units.PlatformIOS})
}

func TestStoreInitialState(t *testing.T) {
	s := newTestStore()

	state := s.Current()
	assert.True(t, state.IsPortrait)
	assert.Equal(t, "group1", state.Breakpoint)
	assert.True(t, state.IsIOS)
	assert.Equal(t, 16.0, s.Engine().Rem(16))
}

func TestStoreUpdateRecomputes(t *testing.T) {
	s := newTestStore()

	require.True(t, s.Resize(812, 375))
	state := s.Current()
	assert.True(t, state.IsLandscape)
	assert.False(t, state.IsPortrait)
	assert.Equal(t, "group4", state.Breakpoint)
	assert.Equal(t, 3.0, state.PixelRatio, "resize keeps density")
	assert.Equal(t, 406.0, s.Engine().Wp(50))

	assert.False(t, s.Resize(812, 375), "same snapshot is not a change")
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	s := newTestStore()

	var changes []Change
	unsubscribe := s.Subscribe("layout", func(c Change) { changes = append(changes, c) })
	defer unsubscribe()

	s.Resize(812, 375)
	s.Resize(812, 375)
	s.Resize(900, 375)

	require.Len(t, changes, 2)
	assert.True(t, changes[0].OrientationChanged())
	assert.True(t, changes[0].BreakpointChanged())
	assert.Equal(t, "portrait", changes[0].Previous.Orientation())
	assert.Equal(t, "landscape", changes[0].Current.Orientation())
	assert.False(t, changes[1].OrientationChanged())
	assert.False(t, changes[1].BreakpointChanged())
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := newTestStore()

	calls := 0
	unsubscribe := s.Subscribe("a", func(Change) { calls++ })
	s.Resize(400, 800)
	unsubscribe()
	unsubscribe()
	s.Resize(500, 800)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Listeners())
}

func TestResubscribeReplacesListener(t *testing.T) {
	s := newTestStore()

	first, second := 0, 0
	staleUnsubscribe := s.Subscribe("header", func(Change) { first++ })
	unsubscribe := s.Subscribe("header", func(Change) { second++ })
	assert.Equal(t, 1, s.Listeners(), "repeated mounts must not stack registrations")

	s.Resize(400, 800)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	staleUnsubscribe()
	assert.Equal(t, 1, s.Listeners(), "stale unsubscribe must not remove the newer listener")

	unsubscribe()
	assert.Equal(t, 0, s.Listeners())
}

func TestListenerMayReadStore(t *testing.T) {
	s := newTestStore()

	var seen units.State
	s.Subscribe("reader", func(c Change) { seen = s.Current() })
	s.Resize(1280, 720)

	assert.Equal(t, "group6", seen.Breakpoint)
}

func TestListenersRunInIDOrder(t *testing.T) {
	s := newTestStore()

	var order []string
	for _, id := range []string{"c", "a", "b"} {
		id := id
		s.Subscribe(id, func(Change) { order = append(order, id) })
	}
	s.Resize(600, 900)

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestConcurrentReadsSeeConsistentSnapshots(t *testing.T) {
	s := newTestStore()
	sizes := [][2]float64{{375, 812}, {812, 375}, {768, 1024}, {1024, 768}}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			sz := sizes[i%len(sizes)]
			s.Resize(sz[0], sz[1])
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				state := s.Current()
				pair := [2]float64{state.Width, state.Height}
				assert.Contains(t, sizes, pair)
				assert.Equal(t, state.Width > state.Height, state.IsLandscape)
			}
		}()
	}
	wg.Wait()
}

func TestConcurrentModifyKeepsEveryField(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Resize(float64(400+i), 900)
		}
	}()
	go func() {
		defer wg.Done()
		s.Modify(func(vp *units.Viewport) { vp.PixelRatio = 2 })
		s.Modify(func(vp *units.Viewport) { vp.Platform = units.PlatformAndroid })
	}()
	wg.Wait()

	vp := s.Viewport()
	assert.Equal(t, 599.0, vp.Width)
	assert.Equal(t, 2.0, vp.PixelRatio, "a concurrent resize must not undo the density change")
	assert.Equal(t, units.PlatformAndroid, vp.Platform)
}

func TestChangesAreDeliveredInOrder(t *testing.T) {
	s := newTestStore()

	var mu sync.Mutex
	var changes []Change
	s.Subscribe("recorder", func(c Change) {
		mu.Lock()
		changes = append(changes, c)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Resize(float64(300+g*1000+i), 900)
			}
		}(g)
	}
	wg.Wait()

	require.Len(t, changes, 400)
	for i := 1; i < len(changes); i++ {
		assert.Equal(t, changes[i-1].Current, changes[i].Previous, "change %d does not follow change %d", i, i-1)
	}
	assert.Equal(t, s.Current(), changes[len(changes)-1].Current)
}
