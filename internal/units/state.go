package units

// State is every derived value for one viewport snapshot. It is what the
// adapter hands to UI code as the "current responsive state".
type State struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	PixelRatio float64  `json:"pixel_ratio"`
	Platform   Platform `json:"platform"`

	IsLandscape bool `json:"is_landscape"`
	IsPortrait  bool `json:"is_portrait"`

	IsIOS     bool `json:"is_ios"`
	IsAndroid bool `json:"is_android"`
	IsWeb     bool `json:"is_web"`

	// Breakpoint is empty when Classified is false.
	Breakpoint string `json:"breakpoint"`
	Classified bool   `json:"classified"`

	BaseFontSize float64 `json:"base_font_size"`
	MaxFontSize  float64 `json:"max_font_size"`
}

// Orientation names the orientation for display: "landscape", "portrait"
// or "square".
func (s State) Orientation() string {
	return OrientationName(s.IsLandscape, s.IsPortrait)
}

// OrientationName renders the two orientation flags.
func OrientationName(landscape, portrait bool) string {
	switch {
	case landscape:
		return "landscape"
	case portrait:
		return "portrait"
	default:
		return "square"
	}
}

// State computes the bundle for the engine's snapshot.
func (e Engine) State() State {
	s := State{
		Width:        e.vp.Width,
		Height:       e.vp.Height,
		PixelRatio:   e.vp.PixelRatio,
		Platform:     e.vp.Platform,
		IsLandscape:  e.IsLandscape(),
		IsPortrait:   e.IsPortrait(),
		IsIOS:        e.vp.Platform == PlatformIOS,
		IsAndroid:    e.vp.Platform == PlatformAndroid,
		IsWeb:        e.vp.Platform == PlatformWeb,
		BaseFontSize: e.cfg.BaseFontSize,
		MaxFontSize:  e.cfg.MaxFontSize(),
	}
	if s.Platform == "" {
		s.Platform = PlatformUnknown
	}
	if bp, ok := e.Breakpoint(); ok {
		s.Breakpoint = bp.Name
		s.Classified = true
	}
	return s
}

// ByOrientation picks the landscape value in landscape and the portrait
// value otherwise, square included.
func ByOrientation[T any](s State, portrait, landscape T) T {
	if s.IsLandscape {
		return landscape
	}
	return portrait
}

// ByBreakpoint picks the value registered for the current breakpoint. ok is
// false when the state is unclassified or the tier has no entry; the caller
// decides what to do then.
func ByBreakpoint[T any](s State, values map[string]T) (v T, ok bool) {
	if !s.Classified {
		return v, false
	}
	v, ok = values[s.Breakpoint]
	return v, ok
}
