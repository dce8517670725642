package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/errors"
	"github.com/dbmrq/officedesk/internal/session"
	"github.com/dbmrq/officedesk/internal/tui/components"
	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// authMode selects between the login and register forms.
type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

// AuthModel is the unauthenticated entry screen. It owns the login and
// register forms and talks to the session store; the entry router only
// hears about a settled, successful exchange.
type AuthModel struct {
	store *session.Store

	mode    authMode
	form    *components.Form
	spinner *components.Spinner
	busy    bool

	width  int
	height int
}

// NewAuthModel creates the auth screen in login mode.
func NewAuthModel(store *session.Store) *AuthModel {
	m := &AuthModel{
		store:   store,
		spinner: components.NewSpinner(),
	}
	m.setMode(modeLogin)
	return m
}

// Init focuses the first field.
func (m *AuthModel) Init() tea.Cmd {
	return m.form.Focus()
}

// SetSize applies the terminal dimensions.
func (m *AuthModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form.SetWidth(min(width-8, 56))
	m.spinner.SetWidth(width)
}

// setMode rebuilds the form for the given mode. Any inline error and
// typed input is dropped on switch.
func (m *AuthModel) setMode(mode authMode) {
	m.mode = mode

	switch mode {
	case modeRegister:
		form := components.NewForm("register", "Create account")
		username := components.NewTextInput("username", "Username")
		password := components.NewTextInput("password", "Password")
		password.SetEchoPassword()
		company := components.NewTextInput("company_name", "Company")
		contact := components.NewTextInput("contact_person", "Contact person")
		form.AddFields(username, password, company, contact,
			components.NewButton("submit", "Register"))
		m.form = form
	default:
		form := components.NewForm("login", "Sign in")
		username := components.NewTextInput("username", "Username")
		password := components.NewTextInput("password", "Password")
		password.SetEchoPassword()
		form.AddFields(username, password,
			components.NewButton("submit", "Log in"))
		m.form = form
	}

	if m.width > 0 {
		m.form.SetWidth(min(m.width-8, 56))
	}
}

// Update handles messages for the auth screen.
func (m *AuthModel) Update(msg tea.Msg) (*AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case LoginResultMsg:
		m.busy = false
		if msg.Err != nil {
			m.form.SetError(errors.UserMessage(msg.Err))
		}
		return m, nil

	case RegisterResultMsg:
		m.busy = false
		if msg.Err != nil {
			m.form.SetError(errors.UserMessage(msg.Err))
		}
		return m, nil

	case components.FormSubmittedMsg:
		if m.busy {
			return m, nil
		}
		switch msg.FormID {
		case "login":
			return m, m.submitLogin()
		case "register":
			return m, m.submitRegister()
		}
		return m, nil

	case components.FormCanceledMsg:
		// Esc on the auth screen quits; there is nothing to go back to.
		return m, tea.Quit
	}

	if m.busy {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			if m.mode == modeLogin {
				m.setMode(modeRegister)
			} else {
				m.setMode(modeLogin)
			}
			return m, m.form.Focus()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// submitLogin validates presence and issues the credential exchange.
func (m *AuthModel) submitLogin() tea.Cmd {
	values := m.form.Values()
	if strings.TrimSpace(values["username"]) == "" || values["password"] == "" {
		m.form.SetError("username and password are required")
		return nil
	}
	m.form.SetError("")
	m.busy = true
	m.spinner.Start()
	m.spinner.SetStatusText("Signing in…")

	store := m.store
	return tea.Batch(m.spinner.Init(), func() tea.Msg {
		sess, err := store.Login(context.Background(), values["username"], values["password"])
		return LoginResultMsg{Session: sess, Err: err}
	})
}

// submitRegister validates presence and issues account creation.
func (m *AuthModel) submitRegister() tea.Cmd {
	values := m.form.Values()
	for _, id := range []string{"username", "password", "company_name", "contact_person"} {
		if strings.TrimSpace(values[id]) == "" {
			m.form.SetError("all fields are required")
			return nil
		}
	}
	m.form.SetError("")
	m.busy = true
	m.spinner.Start()
	m.spinner.SetStatusText("Creating account…")

	store := m.store
	profile := crm.RegisterProfile{
		Username:      values["username"],
		Password:      values["password"],
		CompanyName:   values["company_name"],
		ContactPerson: values["contact_person"],
	}
	return tea.Batch(m.spinner.Init(), func() tea.Msg {
		sess, err := store.Register(context.Background(), profile)
		return RegisterResultMsg{Session: sess, Err: err}
	})
}

// View renders the auth screen.
func (m *AuthModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("OFFICEDESK"))
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(m.spinner.View())
	} else {
		b.WriteString(m.form.View())
		b.WriteString("\n\n")
		hint := "register"
		if m.mode == modeRegister {
			hint = "back to login"
		}
		b.WriteString(styles.KeyStyle.Render("Ctrl+T") + styles.HelpStyle.Render(": "+hint))
	}

	content := styles.BoxStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
