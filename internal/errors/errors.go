package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MetricUnavailableError reports that the operating system could not provide
// a metric. It is the only failure kind of a sampling pass and never aborts
// the pass: the affected fields degrade to a placeholder value.
type MetricUnavailableError struct {
	// Metric names the value that could not be read (e.g. "cpu", "hostname").
	Metric string
	// Cause is the underlying error reported by the metrics source.
	Cause error
}

// Error returns a formatted message naming the missing metric.
//
// Returns:
//   - string: The error message string.
func (e MetricUnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("metric %q unavailable", e.Metric)
	}
	return fmt.Sprintf("metric %q unavailable: %v", e.Metric, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the MetricUnavailableError.
func (e MetricUnavailableError) Unwrap() error { return e.Cause }

// NewMetricUnavailable wraps cause as a MetricUnavailableError for metric.
// It returns nil when cause is nil.
func NewMetricUnavailable(metric string, cause error) error {
	if cause == nil {
		return nil
	}
	return MetricUnavailableError{Metric: metric, Cause: cause}
}

// IsMetricUnavailable reports whether err carries a MetricUnavailableError
// anywhere in its chain.
func IsMetricUnavailable(err error) bool {
	var target MetricUnavailableError
	return errors.As(err, &target)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps a run error to a process exit code.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
