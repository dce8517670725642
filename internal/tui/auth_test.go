package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/session"
	"github.com/dbmrq/officedesk/internal/tui/components"
)

func testStore(t *testing.T, handler http.Handler) (*session.Store, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := crm.NewClient(server.URL, 0, store)
	store.SetAuthenticator(client)
	return store, server
}

func ctrlKey(s string) tea.KeyMsg {
	switch s {
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return keyMsg(s)
}

func TestAuthStartsInLoginMode(t *testing.T) {
	store, _ := testStore(t, http.NotFoundHandler())
	m := NewAuthModel(store)

	view := m.View()
	if !strings.Contains(view, "Sign in") {
		t.Error("Auth screen should start on the login form")
	}
}

func TestAuthModeToggle(t *testing.T) {
	store, _ := testStore(t, http.NotFoundHandler())
	m := NewAuthModel(store)
	m.Init()

	m, _ = m.Update(ctrlKey("ctrl+t"))
	if !strings.Contains(m.View(), "Create account") {
		t.Error("Ctrl+T should switch to the register form")
	}

	m, _ = m.Update(ctrlKey("ctrl+t"))
	if !strings.Contains(m.View(), "Sign in") {
		t.Error("Ctrl+T should switch back to login")
	}
}

func TestAuthLoginPresenceCheck(t *testing.T) {
	store, _ := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("No request should be sent with empty fields")
	}))
	m := NewAuthModel(store)
	m.Init()

	m, cmd := m.Update(components.FormSubmittedMsg{FormID: "login"})
	if cmd != nil {
		t.Error("Empty credentials should not produce a command")
	}
	if !strings.Contains(m.View(), "required") {
		t.Error("The presence failure should show inline")
	}
}

func TestAuthLoginSuccess(t *testing.T) {
	store, _ := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(crm.LoginResult{
			AccessToken: "tok", UserID: 1, UserRole: crm.RoleAdmin,
		})
	}))

	m := NewAuthModel(store)
	m.Init()
	m.form.GetField("username").(*components.TextInput).SetValue("alice")
	m.form.GetField("password").(*components.TextInput).SetValue("secret")

	m, cmd := m.Update(components.FormSubmittedMsg{FormID: "login"})
	if cmd == nil {
		t.Fatal("Submission should produce a command")
	}

	var result *LoginResultMsg
	collect(cmd(), func(msg tea.Msg) {
		if r, ok := msg.(LoginResultMsg); ok {
			result = &r
		}
	})
	if result == nil {
		t.Fatal("Submission should settle with LoginResultMsg")
	}
	if result.Err != nil {
		t.Fatalf("Login should succeed: %v", result.Err)
	}
	if result.Session == nil || result.Session.Role != crm.RoleAdmin {
		t.Errorf("Unexpected session %+v", result.Session)
	}
}

func TestAuthLoginFailureShowsServerMessage(t *testing.T) {
	store, _ := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid username or password"}`, http.StatusUnauthorized)
	}))

	m := NewAuthModel(store)
	m.Init()
	m.form.GetField("username").(*components.TextInput).SetValue("alice")
	m.form.GetField("password").(*components.TextInput).SetValue("wrong")

	m, cmd := m.Update(components.FormSubmittedMsg{FormID: "login"})

	var result *LoginResultMsg
	collect(cmd(), func(msg tea.Msg) {
		if r, ok := msg.(LoginResultMsg); ok {
			result = &r
		}
	})
	if result == nil || result.Err == nil {
		t.Fatal("Login should fail")
	}

	m, _ = m.Update(*result)
	if !strings.Contains(m.View(), "invalid username or password") {
		t.Error("The server's message should show inline on the form")
	}
	if m.busy {
		t.Error("A settled attempt should clear the busy state")
	}
}

func TestAuthRegisterPresenceCheck(t *testing.T) {
	store, _ := testStore(t, http.NotFoundHandler())
	m := NewAuthModel(store)
	m.Init()
	m, _ = m.Update(ctrlKey("ctrl+t"))

	m.form.GetField("username").(*components.TextInput).SetValue("bob")

	m, cmd := m.Update(components.FormSubmittedMsg{FormID: "register"})
	if cmd != nil {
		t.Error("Partial profile should not produce a command")
	}
	if !strings.Contains(m.View(), "required") {
		t.Error("The presence failure should show inline")
	}
}

// collect walks a possibly batched command result.
func collect(msg tea.Msg, visit func(tea.Msg)) {
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			if cmd != nil {
				collect(cmd(), visit)
			}
		}
		return
	}
	visit(msg)
}
