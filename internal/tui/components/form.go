// Package components provides reusable TUI components for officedesk.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// FormField is the interface that all form fields must implement.
type FormField interface {
	ID() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
}

// ValueField is a form field carrying a submittable value.
// TextInput and SelectField implement it; buttons do not.
type ValueField interface {
	FormField
	Value() string
}

// FormSubmittedMsg is sent when a form is submitted.
type FormSubmittedMsg struct {
	FormID string
}

// FormCanceledMsg is sent when a form is canceled.
type FormCanceledMsg struct {
	FormID string
}

// Form is a container for form fields with navigation support.
type Form struct {
	id         string
	title      string
	fields     []FormField
	focusIndex int
	width      int
	errMsg     string
	showHelp   bool
}

// NewForm creates a new Form container.
func NewForm(id, title string) *Form {
	return &Form{
		id:       id,
		title:    title,
		fields:   []FormField{},
		showHelp: true,
	}
}

// ID returns the form's unique identifier.
func (f *Form) ID() string {
	return f.id
}

// AddFields adds fields to the form.
func (f *Form) AddFields(fields ...FormField) {
	f.fields = append(f.fields, fields...)
}

// SetWidth sets the form width.
func (f *Form) SetWidth(width int) {
	f.width = width
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			ti.SetWidth(width - 6)
		}
	}
}

// SetError sets the inline error message shown under the fields.
// An empty string clears it.
func (f *Form) SetError(msg string) {
	f.errMsg = msg
}

// Error returns the current inline error message.
func (f *Form) Error() string {
	return f.errMsg
}

// GetField returns a field by ID, or nil.
func (f *Form) GetField(id string) FormField {
	for _, field := range f.fields {
		if field.ID() == id {
			return field
		}
	}
	return nil
}

// Values collects the current values of all value-carrying fields,
// keyed by field ID.
func (f *Form) Values() map[string]string {
	values := make(map[string]string)
	for _, field := range f.fields {
		if vf, ok := field.(ValueField); ok {
			values[vf.ID()] = vf.Value()
		}
	}
	return values
}

// Focus focuses the form (focuses first field).
func (f *Form) Focus() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.focusIndex = 0
	return f.fields[0].Focus()
}

// Blur blurs all fields in the form.
func (f *Form) Blur() {
	for _, field := range f.fields {
		field.Blur()
	}
}

// NextField moves focus to the next field, wrapping around.
func (f *Form) NextField() tea.Cmd {
	return f.moveFocus(1)
}

// PrevField moves focus to the previous field, wrapping around.
func (f *Form) PrevField() tea.Cmd {
	return f.moveFocus(-1)
}

func (f *Form) moveFocus(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if f.focusIndex >= 0 && f.focusIndex < len(f.fields) {
		f.fields[f.focusIndex].Blur()
	}
	f.focusIndex = (f.focusIndex + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focusIndex].Focus()
}

// Update handles messages for the form. Tab/Shift+Tab navigate, Esc
// cancels, Enter on the submit button (or Enter on any field when the
// form has no button) submits.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return f, f.NextField()

		case "shift+tab", "up":
			return f, f.PrevField()

		case "esc":
			return f, func() tea.Msg {
				return FormCanceledMsg{FormID: f.id}
			}
		}
	}

	if f.focusIndex >= 0 && f.focusIndex < len(f.fields) {
		field := f.fields[f.focusIndex]
		switch typedField := field.(type) {
		case *TextInput:
			if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
				// Enter on an input advances; on the last value field
				// with no button it submits.
				if f.focusIndex == len(f.fields)-1 {
					return f, f.submitCmd()
				}
				return f, f.NextField()
			}
			updatedField, cmd := typedField.Update(msg)
			f.fields[f.focusIndex] = updatedField
			cmds = append(cmds, cmd)
		case *SelectField:
			if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
				if f.focusIndex == len(f.fields)-1 {
					return f, f.submitCmd()
				}
				return f, f.NextField()
			}
			updatedField, cmd := typedField.Update(msg)
			f.fields[f.focusIndex] = updatedField
			cmds = append(cmds, cmd)
		case *Button:
			updatedField, cmd, activated := typedField.Update(msg)
			f.fields[f.focusIndex] = updatedField
			cmds = append(cmds, cmd)
			if activated {
				cmds = append(cmds, f.submitCmd())
			}
		}
	}

	return f, tea.Batch(cmds...)
}

func (f *Form) submitCmd() tea.Cmd {
	return func() tea.Msg {
		return FormSubmittedMsg{FormID: f.id}
	}
}

// View renders the form.
func (f *Form) View() string {
	var b strings.Builder

	if f.title != "" {
		b.WriteString(styles.FormTitleStyle.Render(f.title))
		b.WriteString("\n\n")
	}

	for i, field := range f.fields {
		b.WriteString("  ")
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}

	if f.errMsg != "" {
		b.WriteString("\n\n  ")
		b.WriteString(styles.ErrorTextStyle.Render(f.errMsg))
	}

	if f.showHelp {
		b.WriteString("\n\n  ")
		help := styles.KeyStyle.Render("Tab") + styles.HelpStyle.Render(": next") +
			styles.HelpStyle.Render(" │ ") +
			styles.KeyStyle.Render("Enter") + styles.HelpStyle.Render(": submit") +
			styles.HelpStyle.Render(" │ ") +
			styles.KeyStyle.Render("Esc") + styles.HelpStyle.Render(": cancel")
		b.WriteString(help)
	}

	return b.String()
}
