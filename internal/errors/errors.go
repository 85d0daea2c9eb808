package errors

import (
	"errors"
	"fmt"
)

// LogError is the structured error type for scriptlog.
// It carries enough context for CLI presentation and diagnostic logging.
type LogError struct {
	// Code is the unique error code (e.g., "ERR_202_WRITE_FAILED").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *LogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LogError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with LogError.
func (e *LogError) Is(target error) bool {
	if t, ok := target.(*LogError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *LogError) WithDetail(key, value string) *LogError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *LogError) WithSuggestion(suggestion string) *LogError {
	e.Suggestion = suggestion
	return e
}

// New creates a new LogError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *LogError {
	return &LogError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a LogError from an existing error.
// The error's message becomes the LogError message.
func Wrap(code string, err error) *LogError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *LogError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// DirCreateError reports a log directory that could not be created.
func DirCreateError(dir string, cause error) *LogError {
	return New(ErrCodeDirCreate, "failed to create log directory", cause).
		WithDetail("dir", dir).
		WithSuggestion("Check that the base directory exists and is writable, or pass --log-path")
}

// WriteError reports a failed append to a log file.
func WriteError(path string, cause error) *LogError {
	return New(ErrCodeWriteFailed, "failed to write log entry", cause).
		WithDetail("path", path)
}

// DeleteError reports a log file that retention could not remove.
func DeleteError(path string, cause error) *LogError {
	return New(ErrCodeDeleteFailed, "failed to delete old log file", cause).
		WithDetail("path", path)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *LogError {
	return New(ErrCodeInvalidInput, message, cause)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors abort the current operation.
func IsFatal(err error) bool {
	var le *LogError
	if errors.As(err, &le) {
		return le.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a LogError anywhere in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	var le *LogError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
