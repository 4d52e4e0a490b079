package logging

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		InitWithLevel("info")
	})
	return buf
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureOutput(t)

	InitWithLevel("info")
	Debug("hidden", "k", 1)
	Info("shown", "width", 375.0, "portrait", true)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO shown width=375 portrait=true")
	assert.False(t, DebugEnabled())

	buf.Reset()
	InitWithLevel("debug")
	Debug("visible now")
	assert.Contains(t, buf.String(), "DEBUG visible now")
	assert.True(t, DebugEnabled())
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	logger := slog.New(NewColorTextHandler(buf)).With("store", "main").WithGroup("vp")

	logger.Info("update", "width", 800)
	assert.Contains(t, buf.String(), "update store=main vp.width=800")
}

func TestTemplates(t *testing.T) {
	buf := captureOutput(t)

	SaveFile("/tmp/out.ppm", "800x600")
	Fail("preview", "bad size")
	assert.Contains(t, buf.String(), "Saved: /tmp/out.ppm (800x600)")
	assert.Contains(t, buf.String(), "Failed: preview: bad size")

	assert.Equal(t, "📂 Loading: .rsu.yaml", LoadTemplate.Format(".rsu.yaml"))
	assert.Equal(t, "📐 Viewport: 375x812", ResizeTemplate.Format("375x812"))
}
