package utils

import (
	"errors"
	"os"

	"github.com/jeeftor/responsive-units/internal/config"
	"github.com/jeeftor/responsive-units/internal/logging"
)

// ErrorExitCode is the process exit status for a class of error
type ErrorExitCode int

const (
	ExitCodeGeneral    ErrorExitCode = 1
	ExitCodeFileSystem ErrorExitCode = 3
	ExitCodeConfig     ErrorExitCode = 6
)

// exit is swapped out in tests
var exit = os.Exit

// ExitCodeFor maps an error to the exit code the CLI reports for it
func ExitCodeFor(err error) ErrorExitCode {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitCodeConfig
	case errors.Is(err, os.ErrNotExist), errors.Is(err, os.ErrPermission), errors.Is(err, os.ErrExist):
		return ExitCodeFileSystem
	default:
		return ExitCodeGeneral
	}
}

// FatalError reports err for the user and exits with its mapped code
func FatalError(err error, context string) {
	logging.UserErrorf("%s: %v", context, err)
	exit(int(ExitCodeFor(err)))
}

// WarnOnError logs a warning for non-fatal errors
func WarnOnError(err error, context string) {
	if err != nil {
		logging.UserWarnf("%s: %v", context, err)
	}
}
