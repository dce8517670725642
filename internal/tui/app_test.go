package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbmrq/officedesk/internal/config"
	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/session"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	cfg := config.New()
	client := crm.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout, store)
	store.SetAuthenticator(client)
	return Deps{Client: client, Store: store, Config: cfg}
}

func TestAppStartsRehydrating(t *testing.T) {
	m := New(testDeps(t))
	if m.state != stateRehydrating {
		t.Error("App should start in the rehydrating state")
	}
	if !strings.Contains(m.View(), "Restoring session") {
		t.Error("The splash should say what is happening")
	}
}

func TestAppNoSessionGoesToAuth(t *testing.T) {
	m := New(testDeps(t))

	model, _ := m.Update(SessionRehydratedMsg{Session: nil})
	m = model.(*Model)

	if m.state != stateAuth {
		t.Error("No persisted session should land on the auth screen")
	}
	if m.auth == nil {
		t.Fatal("Auth model should exist")
	}
}

func TestAppSessionGoesToShell(t *testing.T) {
	m := New(testDeps(t))

	sess := &session.Session{Token: "tok", UserID: 1, Role: crm.RoleAdmin, Username: "alice"}
	model, _ := m.Update(SessionRehydratedMsg{Session: sess})
	m = model.(*Model)

	if m.state != stateShell {
		t.Error("A persisted session should land in the workspace")
	}
	if m.shell == nil {
		t.Fatal("Shell model should exist")
	}
}

func TestAppLoginResultRouting(t *testing.T) {
	m := New(testDeps(t))
	model, _ := m.Update(SessionRehydratedMsg{Session: nil})
	m = model.(*Model)

	sess := &session.Session{Token: "tok", UserID: 2, Role: crm.RoleTenant, Username: "bob"}
	model, _ = m.Update(LoginResultMsg{Session: sess})
	m = model.(*Model)

	if m.state != stateShell {
		t.Error("A successful login should enter the workspace")
	}
}

func TestAppLogoutReturnsToAuth(t *testing.T) {
	m := New(testDeps(t))
	sess := &session.Session{Token: "tok", UserID: 1, Role: crm.RoleAdmin, Username: "alice"}
	model, _ := m.Update(SessionRehydratedMsg{Session: sess})
	m = model.(*Model)

	model, _ = m.Update(LogoutMsg{})
	m = model.(*Model)

	if m.state != stateAuth {
		t.Error("Logout should return to the auth screen")
	}
	if m.deps.Store.Current() != nil {
		t.Error("Logout should clear the session store")
	}
}

func TestAppFailedLoginStaysOnAuth(t *testing.T) {
	m := New(testDeps(t))
	model, _ := m.Update(SessionRehydratedMsg{Session: nil})
	m = model.(*Model)

	model, _ = m.Update(LoginResultMsg{Err: errTest})
	m = model.(*Model)

	if m.state != stateAuth {
		t.Error("A failed login should stay on the auth screen")
	}
}

var errTest = &testError{}

type testError struct{}

func (e *testError) Error() string { return "test error" }
