package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu sync.Mutex

	// Minimum level handled by the default logger
	minLevel = new(slog.LevelVar)

	// Where user-facing messages go; stderr keeps stdout clean for --json output
	userOut io.Writer = os.Stderr

	// Colors for different log levels
	infoColor    = color.New(color.FgGreen).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	debugColor   = color.New(color.FgCyan).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func init() {
	minLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(NewColorTextHandler(os.Stderr)))
}

// ColorTextHandler is a simple handler that adds colors to log output
type ColorTextHandler struct {
	w     io.Writer
	attrs []slog.Attr
	group string
}

// NewColorTextHandler creates a new ColorTextHandler
func NewColorTextHandler(w io.Writer) *ColorTextHandler {
	return &ColorTextHandler{w: w}
}

// Handle handles the log record
func (h *ColorTextHandler) Handle(ctx context.Context, r slog.Record) error {
	var levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelText = debugColor("DEBUG")
	case slog.LevelInfo:
		levelText = infoColor("INFO")
	case slog.LevelWarn:
		levelText = warnColor("WARN")
	case slog.LevelError:
		levelText = errorColor("ERROR")
	default:
		levelText = r.Level.String()
	}

	var attrs strings.Builder
	for _, a := range h.attrs {
		attrs.WriteString(" " + a.Key + "=" + formatAttrValue(a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "source" {
			return true
		}
		h.writeAttr(&attrs, a)
		return true
	})

	_, err := fmt.Fprintf(h.w, "\r%s %s%s\n", levelText, r.Message, attrs.String())
	return err
}

func (h *ColorTextHandler) writeAttr(sb *strings.Builder, a slog.Attr) {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	sb.WriteString(" " + key + "=" + formatAttrValue(a.Value))
}

// formatAttrValue formats a slog.Value as a string
func formatAttrValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return fmt.Sprintf("%d", v.Int64())
	case slog.KindUint64:
		return fmt.Sprintf("%d", v.Uint64())
	case slog.KindFloat64:
		return fmt.Sprintf("%g", v.Float64())
	case slog.KindBool:
		return fmt.Sprintf("%t", v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format("15:04:05")
	case slog.KindAny:
		return fmt.Sprintf("%v", v.Any())
	default:
		return v.String()
	}
}

// WithAttrs returns a new handler with the given attributes
func (h *ColorTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup returns a new handler with the given group
func (h *ColorTextHandler) WithGroup(name string) slog.Handler {
	next := *h
	if next.group != "" {
		name = next.group + "." + name
	}
	next.group = name
	return &next
}

// Enabled reports whether the handler handles records at the given level
func (h *ColorTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= minLevel.Level()
}

// ParseLevel maps trace/debug/info/warn/error onto slog levels.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitWithLevel initializes the logger with the named level
func InitWithLevel(level string) {
	minLevel.Set(ParseLevel(level))
	Debug("Debug logging enabled")
}

// DebugEnabled reports whether debug records are emitted.
func DebugEnabled() bool {
	return minLevel.Level() <= slog.LevelDebug
}

// SetOutput sets the output writer for the logger and the user messages
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	userOut = w
	slog.SetDefault(slog.New(NewColorTextHandler(w)))
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}

func userf(prefix, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(userOut, "\r%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// UserInfof prints an informational message for the user
func UserInfof(format string, args ...interface{}) {
	userf(infoColor("ℹ"), format, args...)
}

// UserWarnf prints a warning for the user
func UserWarnf(format string, args ...interface{}) {
	userf(warnColor("⚠"), format, args...)
}

// UserErrorf prints an error for the user
func UserErrorf(format string, args ...interface{}) {
	userf(errorColor("✗"), format, args...)
}

// Successf prints a success message for the user
func Successf(format string, args ...interface{}) {
	userf(successColor("✓"), format, args...)
}
