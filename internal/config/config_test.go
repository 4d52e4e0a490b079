package config

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeeftor/responsive-units/internal/validation"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 375.0, cfg.BaseDevice.Width)
	assert.Equal(t, 812.0, cfg.BaseDevice.Height)
	assert.Equal(t, 16.0, cfg.BaseFontSize)
	assert.Equal(t, 2.0, cfg.MaxFontScaleFactor)
	assert.Equal(t, 32.0, cfg.MaxFontSize())

	names := make([]string, 0, len(cfg.Breakpoints))
	for _, bp := range cfg.Breakpoints {
		names = append(names, bp.Name)
	}
	assert.Equal(t, []string{"group1", "group2", "group3", "group4", "group5", "group6"}, names)
	assert.True(t, math.IsInf(cfg.Breakpoints[5].High, 1))
	assert.Empty(t, cfg.Check().Warnings)
}

func TestDefaultBreakpointsAreFresh(t *testing.T) {
	a := DefaultBreakpoints()
	a[0].Name = "mutated"
	assert.Equal(t, "group1", DefaultBreakpoints()[0].Name)
}

func TestBreakpointContains(t *testing.T) {
	bp := Breakpoint{Name: "group3", Low: 600, High: 767}
	assert.True(t, bp.Contains(600))
	assert.True(t, bp.Contains(767))
	assert.True(t, bp.Contains(700))
	assert.False(t, bp.Contains(599))
	assert.False(t, bp.Contains(768))
	assert.False(t, bp.Contains(math.NaN()))
}

func TestBreakpointJSON(t *testing.T) {
	data, err := json.Marshal(DefaultBreakpoints()[4:])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"group5","low":1008,"high":1279},{"name":"group6","low":1280,"high":null}]`, string(data))
}

func TestValidateRejectsMalformedConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		rule   string
	}{
		{
			name:   "zero base width",
			mutate: func(c *Config) { c.BaseDevice.Width = 0 },
			rule:   RulePositive,
		},
		{
			name:   "NaN base font size",
			mutate: func(c *Config) { c.BaseFontSize = math.NaN() },
			rule:   RulePositive,
		},
		{
			name:   "scale factor below one",
			mutate: func(c *Config) { c.MaxFontScaleFactor = 0.5 },
			rule:   RuleMinScale,
		},
		{
			name:   "empty table",
			mutate: func(c *Config) { c.Breakpoints = nil },
			rule:   RuleRequired,
		},
		{
			name: "overlapping intervals",
			mutate: func(c *Config) {
				c.Breakpoints[1].Low = 350
			},
			rule: RuleNoOverlap,
		},
		{
			name: "shared endpoint overlaps",
			mutate: func(c *Config) {
				c.Breakpoints[1].Low = 399
			},
			rule: RuleNoOverlap,
		},
		{
			name: "gap between intervals",
			mutate: func(c *Config) {
				c.Breakpoints[2].Low = 650
			},
			rule: RuleNoGap,
		},
		{
			name: "does not start at zero",
			mutate: func(c *Config) {
				c.Breakpoints[0].Low = 10
			},
			rule: RuleStartsAtZero,
		},
		{
			name: "bounded top tier",
			mutate: func(c *Config) {
				c.Breakpoints[5].High = 1920
			},
			rule: RuleUnbounded,
		},
		{
			name: "inverted interval",
			mutate: func(c *Config) {
				c.Breakpoints[3].Low, c.Breakpoints[3].High = 1007, 768
			},
			rule: RuleOrderedBounds,
		},
		{
			name: "duplicate name",
			mutate: func(c *Config) {
				c.Breakpoints[4].Name = "group1"
			},
			rule: RuleUniqueName,
		},
		{
			name: "negative low bound",
			mutate: func(c *Config) {
				c.Breakpoints[0].Low = -5
			},
			rule: RuleNonNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var result *validation.ValidationResult
			require.True(t, errors.As(err, &result))
			assert.True(t, result.HasRule(tt.rule), "expected rule %q in %v", tt.rule, result.Errors)
		})
	}
}

func TestCheckReportsTableErrorsAlongsideScalarErrors(t *testing.T) {
	cfg := Default()
	cfg.BaseFontSize = -1
	cfg.Breakpoints = []Breakpoint{
		{Name: "a", Low: 10, High: 399},
		{Name: "b", Low: 400, High: 500},
	}

	result := cfg.Check()
	assert.False(t, result.Valid)
	assert.True(t, result.HasRule(RulePositive))
	assert.True(t, result.HasRule(RuleStartsAtZero))
	assert.True(t, result.HasRule(RuleUnbounded))
}

func TestCheckSkipsCoverageOnMalformedInterval(t *testing.T) {
	cfg := Default()
	cfg.Breakpoints[0].Low = -5

	result := cfg.Check()
	assert.True(t, result.HasRule(RuleNonNegative))
	assert.False(t, result.HasRule(RuleStartsAtZero))
}

func TestValidateWarnsOnUnorderedTable(t *testing.T) {
	cfg := Default()
	cfg.Breakpoints[0], cfg.Breakpoints[5] = cfg.Breakpoints[5], cfg.Breakpoints[0]

	result := cfg.Check()
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "ascending")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("RSU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromYAML(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
base_device:
  width: 390
  height: 844
base_font_size: 14
max_font_scale_factor: 1.5
breakpoints:
  - name: phone
    low: 0
    high: 599
  - name: tablet
    low: 600
    high: 1023
  - name: desktop
    low: 1024
    high: .inf
`)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Device{Width: 390, Height: 844}, cfg.BaseDevice)
	assert.Equal(t, 14.0, cfg.BaseFontSize)
	assert.Equal(t, 21.0, cfg.MaxFontSize())
	require.Len(t, cfg.Breakpoints, 3)
	assert.Equal(t, "tablet", cfg.Breakpoints[1].Name)
	assert.Equal(t, 600.0, cfg.Breakpoints[1].Low)
	assert.True(t, math.IsInf(cfg.Breakpoints[2].High, 1))
}

func TestLoadOmittedHighIsUnbounded(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
breakpoints:
  - {name: narrow, low: 0, high: 699}
  - {name: wide, low: 700}
`)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, math.IsInf(cfg.Breakpoints[1].High, 1))
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RSU_BASE_FONT_SIZE", "18")
	t.Setenv("RSU_BASE_DEVICE_HEIGHT", "900")

	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, 18.0, cfg.BaseFontSize)
	assert.Equal(t, 900.0, cfg.BaseDevice.Height)
	assert.Equal(t, 375.0, cfg.BaseDevice.Width)
}

func TestLoadFailsFast(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "gap",
			yaml: `
breakpoints:
  - {name: a, low: 0, high: 399}
  - {name: b, low: 500}
`,
		},
		{
			name: "not a list",
			yaml: `breakpoints: wide`,
		},
		{
			name: "bad number",
			yaml: `base_font_size: large`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.SetConfigType("yaml")
			require.NoError(t, v.ReadConfig(strings.NewReader(tt.yaml)))

			_, err := Load(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDecodeSkipsValidation(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
breakpoints:
  - {name: a, low: 0, high: 399}
  - {name: b, low: 500}
`)))

	cfg, err := Decode(v)
	require.NoError(t, err)
	require.Len(t, cfg.Breakpoints, 2)

	result := cfg.Check()
	assert.False(t, result.Valid)
	assert.True(t, result.HasRule(RuleNoGap))
}
