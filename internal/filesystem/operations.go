package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeeftor/responsive-units/internal/logging"
)

// EnsureDirectory creates a directory and all necessary parent directories
func EnsureDirectory(path string) error {
	if path == "." || path == "" {
		return nil // Current directory always exists
	}

	return os.MkdirAll(path, 0755)
}

// EnsureDirectoryForFile creates the parent directory for a given file path
func EnsureDirectoryForFile(filePath string) error {
	return EnsureDirectory(filepath.Dir(filePath))
}

// CheckFileExists verifies that a file exists and is readable
func CheckFileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file '%s' does not exist: %w", path, err)
		}
		return fmt.Errorf("cannot access file '%s': %w", path, err)
	}
	return nil
}

// WriteFileWithDirectory writes content to a file, creating directories as needed
func WriteFileWithDirectory(filePath string, content []byte, perm os.FileMode) error {
	if err := EnsureDirectoryForFile(filePath); err != nil {
		return fmt.Errorf("failed to create directory for file '%s': %w", filePath, err)
	}

	return os.WriteFile(filePath, content, perm)
}

// CreateFileWithLogging creates filePath (and its directory) and logs the
// outcome. The caller closes the returned file.
func CreateFileWithLogging(filePath string, context string) (*os.File, error) {
	if err := EnsureDirectoryForFile(filePath); err != nil {
		logging.Error("Failed to create directory", "path", filePath, "context", context, "error", err)
		return nil, err
	}

	start := time.Now()
	f, err := os.Create(filePath)
	if err != nil {
		logging.Error("Failed to create file", "path", filePath, "context", context, "error", err)
		return nil, err
	}
	logging.Debug("Created file", "path", filePath, "context", context, "duration", time.Since(start))
	return f, nil
}

// ValidateOutputFile validates that an output file path is valid and writable.
// An existing file is refused unless overwrite is set.
func ValidateOutputFile(outputFile string, paramName string, overwrite bool) error {
	if outputFile == "" {
		return fmt.Errorf("%s is required", paramName)
	}

	if err := EnsureDirectoryForFile(outputFile); err != nil {
		return fmt.Errorf("cannot create directory for %s '%s': %w", paramName, outputFile, err)
	}

	if _, err := os.Stat(outputFile); err == nil {
		if !overwrite {
			return fmt.Errorf("%s '%s' already exists (use --force to overwrite): %w", paramName, outputFile, os.ErrExist)
		}
		file, err := os.OpenFile(outputFile, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("%s '%s' exists but is not writable: %w", paramName, outputFile, err)
		}
		file.Close()
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access %s '%s': %w", paramName, outputFile, err)
	}

	return nil
}
