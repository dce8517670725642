// Package styles provides Lip Gloss styles for the officedesk TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#4F46E5") // Indigo
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header and title styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)
)

// Menu styles.
var (
	// MenuItemStyle is for unselected menu items.
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// MenuItemSelectedStyle is for the selected menu item.
	MenuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Primary).
				Bold(true).
				Padding(0, 1)

	// MenuBoxStyle frames the collapsed menu overlay.
	MenuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
)

// Table styles.
var (
	// TableHeaderStyle is for the table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// TableRowStyle is for unselected table rows.
	TableRowStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// TableRowSelectedStyle is for the selected table row.
	TableRowSelectedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Background).
				Bold(true)

	// TableEmptyStyle is for the empty-collection placeholder.
	TableEmptyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(1, 2)
)

// Record status styles.
var (
	// StatusGood marks vacant offices, paid payments, done requests
	// and active contracts.
	StatusGood = lipgloss.NewStyle().Foreground(Success)

	// StatusBad marks occupied offices, overdue payments and
	// terminated contracts.
	StatusBad = lipgloss.NewStyle().Foreground(Error)

	// StatusNeutral marks unpaid payments, new requests and
	// completed contracts.
	StatusNeutral = lipgloss.NewStyle().Foreground(Warning)
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// ModalBoxStyle frames the create/edit modal.
	ModalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
			Foreground(Success)

	// NoticeTextStyle is for transient notices such as the sweep result.
	NoticeTextStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Background(Background).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Form styles.
var (
	// FormTitleStyle is for form titles.
	FormTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Padding(0, 1)

	// FormLabelStyle is for form field labels.
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FormLabelFocusedStyle is for focused form field labels.
	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// ButtonPrimaryStyle is for primary buttons (focused).
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	// ButtonSecondaryUnfocusedStyle is for secondary buttons (unfocused).
	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(MutedLight).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Muted).
					Padding(0, 1)

	// ButtonDangerStyle is for danger buttons (focused).
	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Bold(true).
				Padding(0, 2)
)
