// Package errors provides typed errors for officedesk.
// This file contains constructors for API and session failures.
package errors

import (
	"fmt"
	"net/http"
)

// GenericServerMessage is shown when the server returned a failure
// status without a usable message body.
const GenericServerMessage = "request failed"

// AuthFailed creates an error for rejected credentials.
func AuthFailed(serverMessage string) *AppError {
	if serverMessage == "" {
		serverMessage = "invalid username or password"
	}
	return &AppError{
		Kind:       ErrAuth,
		Message:    serverMessage,
		Suggestion: "Check the username and password and try again.",
	}
}

// RequestRejected creates an error for a non-2xx API response.
// The kind is chosen from the status code: 401/403 map to ErrAuth,
// 404 to ErrNotFound, 400/422 to ErrValidation, everything else to
// ErrNetwork.
func RequestRejected(method, endpoint string, status int, serverMessage string) *AppError {
	if serverMessage == "" {
		serverMessage = GenericServerMessage
	}

	kind := ErrNetwork
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrAuth
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = ErrValidation
	}

	return &AppError{
		Kind:    kind,
		Message: serverMessage,
		Details: map[string]string{
			"method":   method,
			"endpoint": endpoint,
			"status":   fmt.Sprintf("%d", status),
		},
	}
}

// InvalidField creates an error for a form field that failed the
// client-side presence or shape check. Everything deeper than that is
// the server's call.
func InvalidField(field, reason string) *AppError {
	return &AppError{
		Kind:    ErrValidation,
		Message: fmt.Sprintf("%s: %s", field, reason),
		Details: map[string]string{
			"field": field,
		},
	}
}

// RequestFailed creates an error for a transport-level failure
// (connection refused, DNS, timeout) where no response was received.
func RequestFailed(method, endpoint string, cause error) *AppError {
	return &AppError{
		Kind:    ErrNetwork,
		Message: "could not reach the server",
		Cause:   cause,
		Details: map[string]string{
			"method":   method,
			"endpoint": endpoint,
		},
		Suggestion: "Check the server base URL in config.yaml and your network connection.",
	}
}

// ResponseDecodeFailed creates an error for a 2xx response whose body
// could not be decoded.
func ResponseDecodeFailed(endpoint string, cause error) *AppError {
	return &AppError{
		Kind:    ErrNetwork,
		Message: "could not decode server response",
		Cause:   cause,
		Details: map[string]string{
			"endpoint": endpoint,
		},
	}
}

// SessionReadFailed creates an error for an unreadable session file.
func SessionReadFailed(path string, cause error) *AppError {
	return &AppError{
		Kind:    ErrSession,
		Message: "could not read the saved session",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Run 'officedesk logout' to discard the saved session and log in again.",
	}
}

// SessionWriteFailed creates an error for an unwritable session file.
func SessionWriteFailed(path string, cause error) *AppError {
	return &AppError{
		Kind:    ErrSession,
		Message: "could not save the session",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
	}
}

// ConfigLoadFailed creates an error for a broken configuration file.
func ConfigLoadFailed(path string, cause error) *AppError {
	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to load configuration: %s", path),
		Cause:   cause,
		Suggestion: `Check config.yaml for syntax errors, or regenerate it:
  officedesk init --force`,
	}
}
