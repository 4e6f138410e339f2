// Package errors provides comprehensive error types with actionable suggestions
// for the kgr application. Errors include contextual information to help users
// resolve issues quickly.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrAuth indicates an authentication or API key failure.
	ErrAuth = errors.New("authentication error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrCSV indicates a CSV file error.
	ErrCSV = errors.New("csv error")
	// ErrSearch indicates a Knowledge Graph search failure.
	ErrSearch = errors.New("search error")
	// ErrNetwork indicates a network-related error.
	ErrNetwork = errors.New("network error")
	// ErrRateLimit indicates the API quota was exhausted.
	ErrRateLimit = errors.New("rate limit error")
	// ErrTimeout indicates a timeout occurred.
	ErrTimeout = errors.New("timeout error")
	// ErrAborted indicates the user aborted an interactive run.
	ErrAborted = errors.New("aborted")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// KGRError is the base error type for kgr errors.
// It wraps an underlying error and provides additional context.
type KGRError struct {
	// Kind is the category of error (e.g., ErrAuth, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// DocLink is a URL to relevant documentation.
	DocLink string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, query).
	Details map[string]string
}

// Error implements the error interface.
func (e *KGRError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *KGRError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether any error in err's chain matches the target.
func (e *KGRError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with suggestions and doc links.
func (e *KGRError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for k, v := range e.Details {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	if e.DocLink != "" {
		sb.WriteString("\n📚 Documentation: ")
		sb.WriteString(e.DocLink)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *KGRError) WithDetails(key, value string) *KGRError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *KGRError) WithCause(cause error) *KGRError {
	e.Cause = cause
	return e
}

// New creates a new KGRError with the given kind and message.
func New(kind error, message string) *KGRError {
	return &KGRError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *KGRError {
	return &KGRError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *KGRError {
	return &KGRError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}
