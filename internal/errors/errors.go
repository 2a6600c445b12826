// Package errors provides a lightweight structured error type (DocConfError)
// used to classify configurator failures and map them to CLI exit codes.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a configurator error.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build and processing errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryDoxygen    ErrorCategory = "doxygen"
	CategorySphinx     ErrorCategory = "sphinx"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ContextFields carries structured context for DocConfError
type ContextFields map[string]any

// DocConfError is a structured error with category, severity and context.
type DocConfError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// Error implements the error interface
func (e *DocConfError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *DocConfError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocConfError) WithContext(key string, value any) *DocConfError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocConfError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocConfError {
	return &DocConfError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocConfError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocConfError {
	return &DocConfError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first DocConfError in err's chain.
func As(err error) (*DocConfError, bool) {
	var dce *DocConfError
	if stdErrors.As(err, &dce) {
		return dce, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if dce, ok := As(err); ok {
		return dce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DocConfError
func GetCategory(err error) ErrorCategory {
	if dce, ok := As(err); ok {
		return dce.Category
	}
	return CategoryInternal
}
