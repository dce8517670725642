// Package components provides reusable TUI components for officedesk.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// ButtonStyle represents the visual style of a button.
type ButtonStyle int

const (
	// ButtonStylePrimary is the default button style.
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleDanger is for destructive actions.
	ButtonStyleDanger
)

// Button is an activatable button component.
type Button struct {
	label   string
	focused bool
	id      string
	style   ButtonStyle
}

// NewButton creates a new Button component.
func NewButton(id, label string) *Button {
	return &Button{
		label: label,
		id:    id,
		style: ButtonStylePrimary,
	}
}

// ID returns the component's unique identifier.
func (b *Button) ID() string {
	return b.id
}

// Focus focuses the button.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus from the button.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused.
func (b *Button) Focused() bool {
	return b.focused
}

// SetStyle sets the button style.
func (b *Button) SetStyle(style ButtonStyle) {
	b.style = style
}

// SetLabel sets the button label.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// Update handles messages for the button.
// The third return value reports whether the button was activated.
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd, bool) {
	if !b.focused {
		return b, nil, false
	}

	activated := false
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			activated = true
		}
	}

	return b, nil, activated
}

// View renders the button.
func (b *Button) View() string {
	var buttonStyle lipgloss.Style

	if b.focused {
		switch b.style {
		case ButtonStyleDanger:
			buttonStyle = styles.ButtonDangerStyle
		default:
			buttonStyle = styles.ButtonPrimaryStyle
		}
	} else {
		buttonStyle = styles.ButtonSecondaryUnfocusedStyle
	}

	return buttonStyle.Render(b.label)
}
