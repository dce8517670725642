// Package components provides reusable TUI components for officedesk.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Username  string
	Role      string
	Message   string // transient notice, e.g. the overdue sweep result
	IsError   bool   // render Message in the error color
	Shortcuts []Shortcut
}

// StatusBar displays the signed-in identity, key hints and transient
// notices at the bottom of the screen.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetMessage sets the transient notice.
func (s *StatusBar) SetMessage(message string, isError bool) {
	s.data.Message = message
	s.data.IsError = isError
}

// ClearMessage removes the transient notice.
func (s *StatusBar) ClearMessage() {
	s.data.Message = ""
	s.data.IsError = false
}

// SetShortcuts replaces the key hints.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	left := ""
	if s.data.Username != "" {
		userLabel := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Render("User: ")
		userValue := lipgloss.NewStyle().
			Foreground(styles.Foreground).
			Render(s.data.Username)
		roleValue := lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Render(fmt.Sprintf("(%s)", s.data.Role))
		left = userLabel + userValue + " " + roleValue
	}

	if s.data.Message != "" {
		msgStyle := styles.NoticeTextStyle
		if s.data.IsError {
			msgStyle = styles.ErrorTextStyle
		}
		if left != "" {
			left += sep
		}
		left += msgStyle.Render(s.data.Message)
	}

	right := s.renderShortcuts()

	containerStyle := styles.StatusBarStyle
	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)

		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(right)
		padding := s.width - leftWidth - rightWidth - 2
		if padding > 0 {
			return containerStyle.Render(left + strings.Repeat(" ", padding) + right)
		}
	}

	return containerStyle.Render(left + "  " + right)
}

// renderShortcuts renders the key hints.
func (s *StatusBar) renderShortcuts() string {
	if len(s.data.Shortcuts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s.data.Shortcuts))
	for _, sc := range s.data.Shortcuts {
		parts = append(parts,
			styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(": "+sc.Desc))
	}
	return strings.Join(parts, styles.HelpStyle.Render(" │ "))
}
