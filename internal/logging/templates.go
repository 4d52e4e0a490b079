package logging

import "fmt"

// LogTemplate is a user-facing log line with a fixed emoji and prefix
type LogTemplate struct {
	emoji  string
	prefix string
	level  LogLevel
}

// LogLevel picks the output a template is written to
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelSuccess
	LevelError
	LevelDebug
)

// Templates for file handling and viewport changes
var (
	LoadTemplate     = LogTemplate{emoji: "📂", prefix: "Loading", level: LevelInfo}
	SaveTemplate     = LogTemplate{emoji: "💾", prefix: "Saved", level: LevelSuccess}
	ResizeTemplate   = LogTemplate{emoji: "📐", prefix: "Viewport", level: LevelDebug}
	RotateTemplate   = LogTemplate{emoji: "🔄", prefix: "Orientation", level: LevelDebug}
	CompleteTemplate = LogTemplate{emoji: "✓", prefix: "Completed", level: LevelSuccess}
	FailTemplate     = LogTemplate{emoji: "✗", prefix: "Failed", level: LevelError}
)

// Format formats the template with the provided message
func (t LogTemplate) Format(message string) string {
	if t.prefix != "" {
		return fmt.Sprintf("%s %s: %s", t.emoji, t.prefix, message)
	}
	return fmt.Sprintf("%s %s", t.emoji, message)
}

// Log logs the message using the appropriate logging function based on level
func (t LogTemplate) Log(message string) {
	formatted := t.Format(message)
	switch t.level {
	case LevelInfo:
		UserInfof("%s", formatted)
	case LevelSuccess:
		Successf("%s", formatted)
	case LevelError:
		UserErrorf("%s", formatted)
	case LevelDebug:
		Debug(formatted)
	}
}

// Logf logs the message using printf-style formatting
func (t LogTemplate) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// SaveFile logs file save operation
func SaveFile(path string, details string) {
	if details != "" {
		SaveTemplate.Logf("%s (%s)", path, details)
	} else {
		SaveTemplate.Log(path)
	}
}

// LoadFile logs file load operation
func LoadFile(path string) {
	LoadTemplate.Log(path)
}

// Resize logs a viewport size change
func Resize(width, height float64) {
	ResizeTemplate.Logf("%gx%g", width, height)
}

// Rotate logs an orientation change
func Rotate(from, to string) {
	RotateTemplate.Logf("%s → %s", from, to)
}

// Complete logs successful completion
func Complete(operation string) {
	CompleteTemplate.Log(operation)
}

// Fail logs operation failure
func Fail(operation string, reason string) {
	if reason != "" {
		FailTemplate.Logf("%s: %s", operation, reason)
	} else {
		FailTemplate.Log(operation)
	}
}
