// Package tui implements the terminal user interface for officedesk.
package tui

import (
	"github.com/dbmrq/officedesk/internal/rbac"
	"github.com/dbmrq/officedesk/internal/session"
)

// SessionRehydratedMsg is sent once the persisted session check settles.
// Session is nil when no usable session was found.
type SessionRehydratedMsg struct {
	Session *session.Session
}

// LoginResultMsg is sent when a login attempt settles.
type LoginResultMsg struct {
	Session *session.Session
	Err     error
}

// RegisterResultMsg is sent when a registration attempt settles.
type RegisterResultMsg struct {
	Session *session.Session
	Err     error
}

// LogoutMsg asks the entry router to drop the session and return to the
// auth screen.
type LogoutMsg struct{}

// ListLoadedMsg is sent when a screen's collection load settles.
// Screen tags the result so stale responses for a screen the user has
// already navigated away from are discarded instead of applied.
type ListLoadedMsg struct {
	Screen rbac.Screen
	Result LoadResult
}

// MutationDoneMsg is sent when a create, update or delete settles.
type MutationDoneMsg struct {
	Screen rbac.Screen
	Err    error
}

// SweepDoneMsg is sent when the overdue-payment sweep settles.
// Message carries the server's result text on success.
type SweepDoneMsg struct {
	Screen  rbac.Screen
	Message string
	Err     error
}
