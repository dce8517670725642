// Package tui implements the terminal user interface for officedesk.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/dbmrq/officedesk/internal/config"
	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/logging"
	"github.com/dbmrq/officedesk/internal/session"
	"github.com/dbmrq/officedesk/internal/tui/components"
)

// appState is the entry router's top-level state.
type appState int

const (
	stateRehydrating appState = iota
	stateAuth
	stateShell
)

// Deps carries the wired application dependencies into the TUI.
type Deps struct {
	Client *crm.Client
	Store  *session.Store
	Config *config.Config
}

// Model is the Bubble Tea model for the officedesk TUI. It routes
// between the rehydration splash, the auth screen and the workspace.
type Model struct {
	deps Deps

	state   appState
	auth    *AuthModel
	shell   *ShellModel
	spinner *components.Spinner

	width  int
	height int
}

// New creates the entry model.
func New(deps Deps) *Model {
	spinner := components.NewSpinner()
	spinner.SetStatusText("Restoring session…")
	spinner.SetShowTime(false)
	return &Model{
		deps:    deps,
		state:   stateRehydrating,
		spinner: spinner,
	}
}

// Init kicks off the persisted-session check alongside the spinner.
func (m *Model) Init() tea.Cmd {
	store := m.deps.Store
	return tea.Batch(m.spinner.Init(), func() tea.Msg {
		return SessionRehydratedMsg{Session: store.Rehydrate()}
	})
}

// Update routes messages by top-level state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Fall through to the active child so it resizes too.

	case SessionRehydratedMsg:
		if msg.Session != nil {
			logging.Info("session restored",
				zap.String("username", msg.Session.Username),
				zap.String("role", string(msg.Session.Role)))
			return m, m.enterShell(msg.Session)
		}
		return m, m.enterAuth()

	case LoginResultMsg:
		if msg.Err == nil && msg.Session != nil {
			return m, m.enterShell(msg.Session)
		}

	case RegisterResultMsg:
		if msg.Err == nil && msg.Session != nil {
			return m, m.enterShell(msg.Session)
		}

	case LogoutMsg:
		m.deps.Store.Logout()
		logging.Info("logged out")
		return m, m.enterAuth()
	}

	switch m.state {
	case stateAuth:
		var cmd tea.Cmd
		m.auth, cmd = m.auth.Update(msg)
		return m, cmd

	case stateShell:
		var cmd tea.Cmd
		m.shell, cmd = m.shell.Update(msg)
		return m, cmd

	default:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// enterAuth switches to the auth screen.
func (m *Model) enterAuth() tea.Cmd {
	m.state = stateAuth
	m.auth = NewAuthModel(m.deps.Store)
	m.shell = nil
	if m.width > 0 {
		m.auth.SetSize(m.width, m.height)
	}
	return m.auth.Init()
}

// enterShell switches to the authenticated workspace.
func (m *Model) enterShell(sess *session.Session) tea.Cmd {
	m.state = stateShell
	m.shell = NewShellModel(m.deps.Client, m.deps.Config, sess)
	m.auth = nil
	if m.width > 0 {
		m.shell.SetSize(m.width, m.height)
	}
	return m.shell.Init()
}

// View renders the active screen.
func (m *Model) View() string {
	switch m.state {
	case stateAuth:
		return m.auth.View()
	case stateShell:
		return m.shell.View()
	default:
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height,
				lipgloss.Center, lipgloss.Center, m.spinner.View())
		}
		return m.spinner.View()
	}
}

// Run starts the TUI and blocks until it exits.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
