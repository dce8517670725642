package components

import (
	"strings"
	"testing"
)

func TestStatusBarIdentity(t *testing.T) {
	s := NewStatusBar()
	s.SetData(StatusBarData{Username: "alice", Role: "admin"})

	view := s.View()
	if !strings.Contains(view, "alice") {
		t.Error("View should show the username")
	}
	if !strings.Contains(view, "admin") {
		t.Error("View should show the role")
	}
}

func TestStatusBarMessage(t *testing.T) {
	s := NewStatusBar()
	s.SetMessage("2 payments marked overdue", false)

	if !strings.Contains(s.View(), "2 payments marked overdue") {
		t.Error("View should show the notice")
	}

	s.ClearMessage()
	if strings.Contains(s.View(), "overdue") {
		t.Error("Cleared notice should disappear")
	}
}

func TestStatusBarShortcuts(t *testing.T) {
	s := NewStatusBar()
	s.SetShortcuts([]Shortcut{
		{Key: "n", Desc: "new"},
		{Key: "q", Desc: "quit"},
	})

	view := s.View()
	if !strings.Contains(view, "new") || !strings.Contains(view, "quit") {
		t.Error("View should render the shortcut hints")
	}
}
