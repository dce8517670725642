// Package session holds the authenticated identity for the running
// client. Exactly one session is active at a time; its absence means
// "unauthenticated". The store is an explicit dependency handed to the
// components that need it, never ambient state.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dbmrq/officedesk/internal/crm"
)

// Session is the current credential and authenticated identity.
type Session struct {
	Token    string   `json:"token"`
	UserID   int      `json:"user_id"`
	Role     crm.Role `json:"role"`
	Username string   `json:"username"`
}

// Expired reports whether the session's token is a JWT whose expiry
// has already passed. Opaque or malformed tokens report false: the
// server remains the authority and will reject them with a 401.
// The claims are read without signature verification; the client holds
// no key and only needs the timestamp.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
