// Package components provides reusable TUI components for officedesk.
package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// Option is one selectable entry in a SelectField.
type Option struct {
	// Label is what the user sees, e.g. "Main St 1 — 10000/mo".
	Label string
	// Value is what the form submits, e.g. the office ID.
	Value string
}

// SelectField is a form field cycling through a fixed option set with
// the left/right arrow keys. Used for foreign keys and status enums.
type SelectField struct {
	id       string
	label    string
	options  []Option
	selected int
	focused  bool
}

// NewSelectField creates a new SelectField component.
func NewSelectField(id, label string, options []Option) *SelectField {
	return &SelectField{
		id:      id,
		label:   label,
		options: options,
	}
}

// ID returns the component's unique identifier.
func (s *SelectField) ID() string {
	return s.id
}

// Focus focuses the field.
func (s *SelectField) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus from the field.
func (s *SelectField) Blur() {
	s.focused = false
}

// Focused returns whether the field is focused.
func (s *SelectField) Focused() bool {
	return s.focused
}

// Value returns the selected option's value, or "" with no options.
func (s *SelectField) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.selected].Value
}

// SetValue selects the option with the given value, if present.
func (s *SelectField) SetValue(value string) {
	for i, opt := range s.options {
		if opt.Value == value {
			s.selected = i
			return
		}
	}
}

// Update handles messages for the field.
func (s *SelectField) Update(msg tea.Msg) (*SelectField, tea.Cmd) {
	if !s.focused || len(s.options) == 0 {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			s.selected--
			if s.selected < 0 {
				s.selected = len(s.options) - 1
			}
		case "right", "l", " ":
			s.selected = (s.selected + 1) % len(s.options)
		}
	}
	return s, nil
}

// View renders the field.
func (s *SelectField) View() string {
	labelStyle := styles.FormLabelStyle
	if s.focused {
		labelStyle = styles.FormLabelFocusedStyle
	}

	current := styles.MutedTextStyle.Render("(none)")
	if len(s.options) > 0 {
		current = s.options[s.selected].Label
	}

	arrows := ""
	if s.focused && len(s.options) > 1 {
		arrows = styles.HelpStyle.Render(fmt.Sprintf(" ◂ %d/%d ▸", s.selected+1, len(s.options)))
	}

	return labelStyle.Render(s.label+": ") + current + arrows
}
