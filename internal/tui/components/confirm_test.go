package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewConfirmDialog(t *testing.T) {
	c := NewConfirmDialog()

	if c.IsVisible() {
		t.Error("ConfirmDialog should be hidden by default")
	}
}

func TestConfirmDialogShow(t *testing.T) {
	c := NewConfirmDialog()

	c.Show("Confirm deletion", "Delete office #3?", true)

	if !c.IsVisible() {
		t.Error("Show should make dialog visible")
	}
	if c.title != "Confirm deletion" {
		t.Errorf("Title should be 'Confirm deletion', got %s", c.title)
	}
	if !c.destructive {
		t.Error("Destructive should be true")
	}
}

func TestConfirmDialogYes(t *testing.T) {
	c := NewConfirmDialog()
	c.Show("Confirm", "Sure?", true)

	cmd := c.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("y should produce a command")
	}
	if _, ok := cmd().(ConfirmYesMsg); !ok {
		t.Error("y should emit ConfirmYesMsg")
	}
	if c.IsVisible() {
		t.Error("Dialog should hide after confirmation")
	}
}

func TestConfirmDialogNo(t *testing.T) {
	c := NewConfirmDialog()
	c.Show("Confirm", "Sure?", false)

	cmd := c.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(ConfirmNoMsg); !ok {
		t.Error("esc should emit ConfirmNoMsg")
	}
	if c.IsVisible() {
		t.Error("Dialog should hide after cancellation")
	}
}

func TestConfirmDialogIgnoresOtherKeys(t *testing.T) {
	c := NewConfirmDialog()
	c.Show("Confirm", "Sure?", true)

	if cmd := c.Update(keyMsg("x")); cmd != nil {
		t.Error("Unrelated keys should produce no command")
	}
	if !c.IsVisible() {
		t.Error("Dialog should stay open on unrelated keys")
	}
}

func TestConfirmDialogHiddenIgnoresInput(t *testing.T) {
	c := NewConfirmDialog()

	if cmd := c.Update(keyMsg("y")); cmd != nil {
		t.Error("Hidden dialog should ignore input")
	}
}

func TestConfirmDialogView(t *testing.T) {
	c := NewConfirmDialog()

	if c.View() != "" {
		t.Error("Hidden dialog should render nothing")
	}

	c.Show("Confirm deletion", "Delete booking #2?", true)
	view := c.View()
	if !strings.Contains(view, "Delete booking #2?") {
		t.Error("View should contain the message")
	}
	if !strings.Contains(view, "es") || !strings.Contains(view, "o") {
		t.Error("View should show the yes/no choices")
	}
}
