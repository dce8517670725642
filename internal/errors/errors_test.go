package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorIs(t *testing.T) {
	err := AuthFailed("bad credentials")

	if !errors.Is(err, ErrAuth) {
		t.Error("AuthFailed should match ErrAuth")
	}
	if errors.Is(err, ErrNetwork) {
		t.Error("AuthFailed should not match ErrNetwork")
	}
}

func TestAppErrorUnwrapCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := RequestFailed(http.MethodGet, "/offices/", cause)

	if !errors.Is(err, cause) {
		t.Error("RequestFailed should unwrap to its cause")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("RequestFailed should match ErrNetwork")
	}
}

func TestRequestRejectedKinds(t *testing.T) {
	tests := []struct {
		status int
		kind   error
	}{
		{http.StatusUnauthorized, ErrAuth},
		{http.StatusForbidden, ErrAuth},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrNetwork},
		{http.StatusBadGateway, ErrNetwork},
	}

	for _, tt := range tests {
		err := RequestRejected(http.MethodPost, "/offices/", tt.status, "nope")
		if !errors.Is(err, tt.kind) {
			t.Errorf("status %d should map to %v", tt.status, tt.kind)
		}
	}
}

func TestRequestRejectedGenericMessage(t *testing.T) {
	err := RequestRejected(http.MethodDelete, "/bookings/3", 500, "")

	if err.Message != GenericServerMessage {
		t.Errorf("empty server message should fall back to generic, got %q", err.Message)
	}
}

func TestRequestRejectedKeepsServerMessage(t *testing.T) {
	err := RequestRejected(http.MethodPost, "/bookings/", 400, "office already booked for these dates")

	if err.Message != "office already booked for these dates" {
		t.Errorf("server message should be kept verbatim, got %q", err.Message)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(nil); got != "" {
		t.Errorf("nil error should yield empty message, got %q", got)
	}

	appErr := RequestRejected(http.MethodPut, "/requests/1", 400, "cannot skip a step")
	if got := UserMessage(appErr); got != "cannot skip a step" {
		t.Errorf("AppError should yield its message, got %q", got)
	}

	wrapped := fmt.Errorf("loading screen: %w", appErr)
	if got := UserMessage(wrapped); got != "cannot skip a step" {
		t.Errorf("wrapped AppError should still yield its message, got %q", got)
	}

	plain := errors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("plain error should yield Error(), got %q", got)
	}
}

func TestWithDetails(t *testing.T) {
	err := AuthFailed("").WithDetails("username", "+70000000000")

	if err.Details["username"] != "+70000000000" {
		t.Error("WithDetails should record the detail")
	}
}
