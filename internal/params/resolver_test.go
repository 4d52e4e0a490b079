package params

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/units"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("RSU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fixedTerminal(cols, rows int) TerminalSizeFunc {
	return func() (int, int, error) { return cols, rows, nil }
}

func brokenTerminal() (int, int, error) {
	return 0, 0, errors.New("not a terminal")
}

func TestResolveViewportSources(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		env         map[string]string
		terminal    TerminalSizeFunc
		useTerminal bool
		wantW       float64
		wantH       float64
		wantWSource string
		wantHSource string
	}{
		{
			name:        "defaults to reference device",
			wantW:       375,
			wantH:       812,
			wantWSource: SourceDefault,
			wantHSource: SourceDefault,
		},
		{
			name:        "arguments win",
			args:        []string{"1024", "768"},
			env:         map[string]string{"RSU_WIDTH": "10", "RSU_HEIGHT": "20"},
			wantW:       1024,
			wantH:       768,
			wantWSource: SourceArgument,
			wantHSource: SourceArgument,
		},
		{
			name:        "environment fills missing height",
			args:        []string{"411.4"},
			env:         map[string]string{"RSU_HEIGHT": "891.4"},
			wantW:       411.4,
			wantH:       891.4,
			wantWSource: SourceArgument,
			wantHSource: SourceConfig,
		},
		{
			name:        "terminal when requested",
			terminal:    fixedTerminal(100, 30),
			useTerminal: true,
			wantW:       800,
			wantH:       480,
			wantWSource: SourceTerminal,
			wantHSource: SourceTerminal,
		},
		{
			name:        "terminal ignored unless requested",
			terminal:    fixedTerminal(100, 30),
			wantW:       375,
			wantH:       812,
			wantWSource: SourceDefault,
			wantHSource: SourceDefault,
		},
		{
			name:        "broken terminal falls back",
			terminal:    brokenTerminal,
			useTerminal: true,
			wantW:       375,
			wantH:       812,
			wantWSource: SourceDefault,
			wantHSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r := NewParameterResolverWith(newViper(), config.Default(), tt.terminal)

			vp, info, err := r.ResolveViewport(tt.args, ViewportOptions{UseTerminal: tt.useTerminal})
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, vp.Width)
			assert.Equal(t, tt.wantH, vp.Height)
			assert.Equal(t, tt.wantWSource, info.Width.Source)
			assert.Equal(t, tt.wantHSource, info.Height.Source)
		})
	}
}

func TestResolveViewportErrors(t *testing.T) {
	r := NewParameterResolverWith(newViper(), config.Default(), nil)

	_, _, err := r.ResolveViewport([]string{"wide"}, ViewportOptions{})
	assert.ErrorContains(t, err, "invalid width")

	_, _, err = r.ResolveViewport([]string{"0", "800"}, ViewportOptions{})
	assert.ErrorContains(t, err, "positive")

	_, _, err = r.ResolveViewport(nil, ViewportOptions{Density: -2, DensitySet: true})
	assert.ErrorContains(t, err, "pixel ratio")

	t.Setenv("RSU_HEIGHT", "tall")
	_, _, err = r.ResolveViewport([]string{"375"}, ViewportOptions{})
	assert.ErrorContains(t, err, "RSU_HEIGHT")
}

func TestResolveDensityAndPlatform(t *testing.T) {
	v := newViper()
	r := NewParameterResolverWith(v, config.Default(), nil)

	info, err := r.ResolveDensity(0, false)
	require.NoError(t, err)
	assert.Equal(t, ParameterInfo{Value: 1, Source: SourceDefault}, info)
	assert.Equal(t, units.PlatformUnknown, r.ResolvePlatform("", false))

	t.Setenv("RSU_DENSITY", "2.625")
	t.Setenv("RSU_PLATFORM", "Android")
	info, err = r.ResolveDensity(0, false)
	require.NoError(t, err)
	assert.Equal(t, ParameterInfo{Value: 2.625, Source: SourceConfig}, info)
	assert.Equal(t, units.PlatformAndroid, r.ResolvePlatform("", false))

	info, err = r.ResolveDensity(3, true)
	require.NoError(t, err)
	assert.Equal(t, ParameterInfo{Value: 3, Source: SourceFlag}, info)
	assert.Equal(t, units.PlatformIOS, r.ResolvePlatform("ios", true))

	vp, viewportInfo, err := r.ResolveViewport(nil, ViewportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2.625, vp.PixelRatio)
	assert.Equal(t, units.PlatformAndroid, vp.Platform)
	assert.Equal(t, "android", viewportInfo.Platform)
}

func TestCellSize(t *testing.T) {
	v := newViper()
	r := NewParameterResolverWith(v, config.Default(), nil)

	w, h := r.CellsToViewport(80, 24)
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 384.0, h)

	v.Set(KeyCellWidth, 10)
	v.Set(KeyCellHeight, "-1")
	cw, ch := r.ResolveCellSize()
	assert.Equal(t, 10.0, cw)
	assert.Equal(t, 16.0, ch, "non-positive cell size is ignored")
}
