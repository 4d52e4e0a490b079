// Package config holds the process-wide constants the unit conversions are
// derived from: the reference device, the reference font size, the font
// scale ceiling and the breakpoint table.
//
// A Config is built once at startup (Default or Load) and is never mutated
// afterwards. Copies share the breakpoint slice, so callers must treat it as
// read-only.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/jeeftor/responsive-units/internal/logging"
)

// ErrInvalidConfig is returned when the configuration breaks a structural invariant.
var ErrInvalidConfig = errors.New("invalid configuration")

// MaxRealisticWidth is the smallest upper bound the last breakpoint may carry.
// No real device reports a width this large.
const MaxRealisticWidth = 10000

// Default reference values
const (
	DefaultBaseDeviceWidth    = 375
	DefaultBaseDeviceHeight   = 812
	DefaultBaseFontSize       = 16
	DefaultMaxFontScaleFactor = 2
)

// Viper keys
const (
	KeyBaseDeviceWidth    = "base_device.width"
	KeyBaseDeviceHeight   = "base_device.height"
	KeyBaseFontSize       = "base_font_size"
	KeyMaxFontScaleFactor = "max_font_scale_factor"
	KeyBreakpoints        = "breakpoints"
)

// Device is a width x height pair in device-independent units.
type Device struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Breakpoint is a named closed interval [Low, High] over viewport width.
type Breakpoint struct {
	Name string  `json:"name" yaml:"name"`
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Contains reports whether width lies in [Low, High].
func (b Breakpoint) Contains(width float64) bool {
	return b.Low <= width && width <= b.High
}

func (b Breakpoint) String() string {
	if math.IsInf(b.High, 1) {
		return fmt.Sprintf("%s [%g, ∞)", b.Name, b.Low)
	}
	return fmt.Sprintf("%s [%g, %g]", b.Name, b.Low, b.High)
}

// MarshalJSON writes an unbounded High as null; JSON has no infinity.
func (b Breakpoint) MarshalJSON() ([]byte, error) {
	out := struct {
		Name string   `json:"name"`
		Low  float64  `json:"low"`
		High *float64 `json:"high"`
	}{Name: b.Name, Low: b.Low}
	if !math.IsInf(b.High, 1) {
		high := b.High
		out.High = &high
	}
	return json.Marshal(out)
}

// Config is the immutable set of constants the engine is parameterized by.
type Config struct {
	BaseDevice         Device       `json:"base_device" yaml:"base_device"`
	BaseFontSize       float64      `json:"base_font_size" yaml:"base_font_size"`
	MaxFontScaleFactor float64      `json:"max_font_scale_factor" yaml:"max_font_scale_factor"`
	Breakpoints        []Breakpoint `json:"breakpoints" yaml:"breakpoints"`
}

// MaxFontSize is the ceiling applied by responsive font clamping.
func (c Config) MaxFontSize() float64 {
	return c.BaseFontSize * c.MaxFontScaleFactor
}

// DefaultBreakpoints returns the six standard width tiers.
func DefaultBreakpoints() []Breakpoint {
	return []Breakpoint{
		{Name: "group1", Low: 0, High: 399},
		{Name: "group2", Low: 400, High: 599},
		{Name: "group3", Low: 600, High: 767},
		{Name: "group4", Low: 768, High: 1007},
		{Name: "group5", Low: 1008, High: 1279},
		{Name: "group6", Low: 1280, High: math.Inf(1)},
	}
}

// Default returns the reference configuration (a 375x812 phone, 16dp text).
func Default() Config {
	return Config{
		BaseDevice:         Device{Width: DefaultBaseDeviceWidth, Height: DefaultBaseDeviceHeight},
		BaseFontSize:       DefaultBaseFontSize,
		MaxFontScaleFactor: DefaultMaxFontScaleFactor,
		Breakpoints:        DefaultBreakpoints(),
	}
}

// SetDefaults registers the default scalar values with v so that environment
// variables (RSU_BASE_FONT_SIZE, RSU_BASE_DEVICE_WIDTH, ...) are picked up.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseDeviceWidth, DefaultBaseDeviceWidth)
	v.SetDefault(KeyBaseDeviceHeight, DefaultBaseDeviceHeight)
	v.SetDefault(KeyBaseFontSize, DefaultBaseFontSize)
	v.SetDefault(KeyMaxFontScaleFactor, DefaultMaxFontScaleFactor)
}

// Load builds a Config from v on top of Default and validates it.
// A malformed configuration is reported as ErrInvalidConfig; the caller is
// expected to stop rather than run with an ambiguous breakpoint table.
func Load(v *viper.Viper) (Config, error) {
	cfg, err := Decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode reads v on top of Default without checking the invariants. Values
// that cannot be read as numbers still fail with ErrInvalidConfig.
func Decode(v *viper.Viper) (Config, error) {
	cfg := Default()

	var err error
	if cfg.BaseDevice.Width, err = floatKey(v, KeyBaseDeviceWidth, cfg.BaseDevice.Width); err != nil {
		return Config{}, err
	}
	if cfg.BaseDevice.Height, err = floatKey(v, KeyBaseDeviceHeight, cfg.BaseDevice.Height); err != nil {
		return Config{}, err
	}
	if cfg.BaseFontSize, err = floatKey(v, KeyBaseFontSize, cfg.BaseFontSize); err != nil {
		return Config{}, err
	}
	if cfg.MaxFontScaleFactor, err = floatKey(v, KeyMaxFontScaleFactor, cfg.MaxFontScaleFactor); err != nil {
		return Config{}, err
	}

	if v.IsSet(KeyBreakpoints) {
		bps, err := decodeBreakpoints(v.Get(KeyBreakpoints))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cfg.Breakpoints = bps
	}

	logging.Debug("Configuration loaded",
		"base_device", fmt.Sprintf("%gx%g", cfg.BaseDevice.Width, cfg.BaseDevice.Height),
		"base_font_size", cfg.BaseFontSize,
		"max_font_scale_factor", cfg.MaxFontScaleFactor,
		"breakpoints", len(cfg.Breakpoints))

	return cfg, nil
}

func floatKey(v *viper.Viper, key string, fallback float64) (float64, error) {
	if !v.IsSet(key) {
		return fallback, nil
	}
	f, err := cast.ToFloat64E(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return f, nil
}

// decodeBreakpoints accepts the YAML/JSON list form:
//
//	breakpoints:
//	  - {name: small, low: 0, high: 599}
//	  - {name: large, low: 600}
//
// An omitted high bound means unbounded.
func decodeBreakpoints(raw interface{}) ([]Breakpoint, error) {
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("breakpoints must be a list: %v", err)
	}

	out := make([]Breakpoint, 0, len(items))
	for i, item := range items {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, fmt.Errorf("breakpoints[%d] must be a mapping: %v", i, err)
		}

		bp := Breakpoint{Name: strings.TrimSpace(cast.ToString(m["name"])), High: math.Inf(1)}
		if bp.Low, err = boundValue(m["low"], 0); err != nil {
			return nil, fmt.Errorf("breakpoints[%d].low: %v", i, err)
		}
		if bp.High, err = boundValue(m["high"], math.Inf(1)); err != nil {
			return nil, fmt.Errorf("breakpoints[%d].high: %v", i, err)
		}
		out = append(out, bp)
	}
	return out, nil
}

func boundValue(raw interface{}, missing float64) (float64, error) {
	if raw == nil {
		return missing, nil
	}
	if s, ok := raw.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "inf", "+inf", ".inf", "infinity", "+infinity":
			return math.Inf(1), nil
		}
	}
	return cast.ToFloat64E(raw)
}
