// Package errors provides typed errors for officedesk. Errors carry the
// server-supplied message when one exists so screens can surface it
// verbatim, plus a kind that the UI branches on.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrAuth indicates rejected credentials at login or register.
	ErrAuth = errors.New("authentication error")
	// ErrValidation indicates the server rejected a mutation payload.
	ErrValidation = errors.New("validation error")
	// ErrNetwork indicates a transport failure or a non-2xx response
	// the UI makes no finer distinction about.
	ErrNetwork = errors.New("network error")
	// ErrNotFound indicates the server reported a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrSession indicates a problem with the persisted session.
	ErrSession = errors.New("session error")
)

// AppError is the base error type for officedesk errors.
// It wraps an underlying error and provides additional context.
type AppError struct {
	// Kind is the category of error (e.g., ErrAuth, ErrNetwork).
	Kind error
	// Message is the human-readable error message. For server
	// rejections this is the server's own message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., endpoint, status code).
	Details map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether any error in err's chain matches the target.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with suggestions.
func (e *AppError) Format() string {
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
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// UserMessage extracts the message a screen should show for err.
// AppErrors yield their message; anything else yields its Error string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
