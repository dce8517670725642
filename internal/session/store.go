package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/errors"
	"github.com/dbmrq/officedesk/internal/logging"
)

// SessionFileName is the name of the persisted session file inside the
// app config directory.
const SessionFileName = "session.json"

// Authenticator exchanges credentials for sessions. The CRM client
// implements it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*crm.LoginResult, error)
	Register(ctx context.Context, profile crm.RegisterProfile) (*crm.RegisterResult, error)
}

// Store owns the active session and its persistence across runs.
// It is the only writer of the credential; everything else reads it
// through Current or the TokenSource interface.
type Store struct {
	path string

	mu      sync.RWMutex
	current *Session
	api     Authenticator
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// SetAuthenticator wires the API client used for login and register.
// Set once during startup, before any login attempt.
func (s *Store) SetAuthenticator(api Authenticator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = api
}

// Current returns the active session, or nil when unauthenticated.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token implements crm.TokenSource. It returns the active credential
// or the empty string when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Login exchanges credentials for a session, persists it, and makes it
// the active session. The returned error carries the server's message
// for the auth screen to show inline.
func (s *Store) Login(ctx context.Context, username, password string) (*Session, error) {
	s.mu.RLock()
	api := s.api
	s.mu.RUnlock()

	result, err := api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Token:    result.AccessToken,
		UserID:   result.UserID,
		Role:     result.UserRole,
		Username: username,
	}
	s.activate(sess)
	return sess, nil
}

// Register creates a new account and activates its implicit session.
func (s *Store) Register(ctx context.Context, profile crm.RegisterProfile) (*Session, error) {
	s.mu.RLock()
	api := s.api
	s.mu.RUnlock()

	result, err := api.Register(ctx, profile)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Token:    result.AccessToken,
		UserID:   result.User.ID,
		Role:     result.User.Role,
		Username: result.User.Username,
	}
	if sess.Username == "" {
		sess.Username = profile.Username
	}
	s.activate(sess)
	return sess, nil
}

// activate makes sess the active session and persists it. A persist
// failure is logged but does not undo the login: the session stays
// usable for this run and simply won't survive a restart.
func (s *Store) activate(sess *Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if err := s.persist(sess); err != nil {
		logging.Warn("session not persisted", zap.Error(err))
	}
}

// Logout clears the active session and the persisted file. It succeeds
// locally no matter what: no server round-trip, and a missing file is
// not an error.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logging.Warn("session file not removed", zap.String("path", s.path), zap.Error(err))
	}
}

// Rehydrate loads a previously persisted session, if any, and makes it
// active. A missing file, an unreadable file, or an expired token all
// resolve to "unauthenticated" rather than an error the caller must
// branch on; the entry router only needs to know whether a session
// exists once rehydration settles.
func (s *Store) Rehydrate() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("session file unreadable", zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logging.Warn("session file corrupt, discarding", zap.String("path", s.path), zap.Error(err))
		_ = os.Remove(s.path)
		return nil
	}
	if sess.Token == "" || !sess.Role.Valid() {
		logging.Warn("session file incomplete, discarding", zap.String("path", s.path))
		_ = os.Remove(s.path)
		return nil
	}
	if sess.Expired(time.Now()) {
		logging.Info("persisted session expired, discarding", zap.String("username", sess.Username))
		_ = os.Remove(s.path)
		return nil
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return &sess
}

// persist writes the session file with owner-only permissions.
func (s *Store) persist(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.SessionWriteFailed(s.path, err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errors.SessionWriteFailed(s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.SessionWriteFailed(s.path, err)
	}
	return nil
}
