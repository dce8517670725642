package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/officedesk/internal/config"
	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/rbac"
	"github.com/dbmrq/officedesk/internal/session"
	"github.com/dbmrq/officedesk/internal/tui/components"
)

// ShellModel is the authenticated workspace: the navigation menu, one
// mounted resource screen at a time, and the status bar. Only the
// mounted screen holds data; switching away discards it and switching
// back reloads fresh.
type ShellModel struct {
	client *crm.Client
	cfg    *config.Config
	sess   *session.Session

	header    *components.Header
	menu      *components.Menu
	statusBar *components.StatusBar
	specs     map[rbac.Screen]ScreenSpec
	current   *ScreenModel

	width  int
	height int
}

// NewShellModel creates the workspace for an authenticated session.
func NewShellModel(client *crm.Client, cfg *config.Config, sess *session.Session) *ShellModel {
	specs := Screens()

	visible := rbac.VisibleScreens(sess.Role)
	items := make([]components.MenuItem, len(visible))
	for i, screen := range visible {
		items[i] = components.MenuItem{Screen: screen, Label: specs[screen].Title}
	}

	header := components.NewHeader()
	header.SetServerURL(cfg.Server.BaseURL)

	m := &ShellModel{
		client:    client,
		cfg:       cfg,
		sess:      sess,
		header:    header,
		menu:      components.NewMenu(items),
		statusBar: components.NewStatusBar(),
		specs:     specs,
	}
	if len(visible) > 0 {
		m.mount(visible[0])
	}
	return m
}

// Init starts the mounted screen's initial load.
func (m *ShellModel) Init() tea.Cmd {
	if m.current == nil {
		return nil
	}
	return m.current.Init()
}

// mount makes screen the active screen with a fresh controller.
func (m *ShellModel) mount(screen rbac.Screen) {
	spec, ok := m.specs[screen]
	if !ok {
		return
	}
	m.current = NewScreenModel(spec, m.client, m.sess.Role)
	m.menu.SetActive(screen)
	m.header.SetScreenTitle(spec.Title)
	m.applySizes()
}

// switchTo mounts screen and starts its load.
func (m *ShellModel) switchTo(screen rbac.Screen) tea.Cmd {
	if m.current != nil && m.current.ID() == screen {
		return nil
	}
	m.mount(screen)
	return m.current.Init()
}

// SetSize applies the terminal dimensions.
func (m *ShellModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.menu.SetCompact(width < m.cfg.UI.CompactWidth)
	m.applySizes()
}

func (m *ShellModel) applySizes() {
	m.header.SetWidth(m.width)
	m.menu.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	if m.current != nil {
		contentHeight := m.height - 5
		if contentHeight < 5 {
			contentHeight = 5
		}
		m.current.SetSize(m.width, contentHeight)
	}
}

// Update handles messages for the shell.
func (m *ShellModel) Update(msg tea.Msg) (*ShellModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case components.MenuSelectedMsg:
		return m, m.switchTo(msg.Screen)

	case ListLoadedMsg, MutationDoneMsg, SweepDoneMsg:
		// Screen-tagged messages reach only the mounted screen; the
		// controller itself drops a mismatched tag.
		if m.current == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(msg)
		return m, cmd
	}

	// The open menu overlay captures keys before anything else.
	if m.menu.IsVisible() {
		return m, m.menu.Update(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		overlayOpen := m.current != nil && m.current.HasOverlay()
		if !overlayOpen {
			switch key.String() {
			case "q", "ctrl+c":
				return m, tea.Quit

			case "l":
				return m, func() tea.Msg { return LogoutMsg{} }

			case "m":
				if m.menu.Compact() {
					m.menu.Toggle()
					return m, nil
				}

			default:
				if screen, ok := m.screenForDigit(key.String()); ok {
					return m, m.switchTo(screen)
				}
			}
		}
	}

	if m.current == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

// screenForDigit maps number keys to visible menu entries.
func (m *ShellModel) screenForDigit(key string) (rbac.Screen, bool) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return "", false
	}
	return m.menu.Select(n - 1)
}

// View renders the workspace.
func (m *ShellModel) View() string {
	var b strings.Builder

	b.WriteString(m.header.View())
	b.WriteString("\n")

	if m.menu.IsVisible() {
		// The overlay replaces the nav strip and screen content.
		b.WriteString("\n")
		b.WriteString(lipgloss.Place(m.width, m.contentHeight(),
			lipgloss.Center, lipgloss.Center, m.menu.View()))
	} else if m.current != nil {
		b.WriteString(m.menu.View())
		b.WriteString("\n\n")
		content := m.current.View()
		if m.current.HasOverlay() {
			content = lipgloss.Place(m.width, m.contentHeight(),
				lipgloss.Center, lipgloss.Center, content)
		}
		b.WriteString(content)
	}

	b.WriteString("\n\n")
	b.WriteString(m.statusBarView())
	return b.String()
}

func (m *ShellModel) contentHeight() int {
	h := m.height - 5
	if h < 5 {
		h = 5
	}
	return h
}

// statusBarView assembles the status bar from the session and the
// mounted screen's state.
func (m *ShellModel) statusBarView() string {
	data := components.StatusBarData{
		Username: m.sess.Username,
		Role:     string(m.sess.Role),
	}
	if m.current != nil {
		data.Message, data.IsError = m.current.Notice()
		data.Shortcuts = m.current.Shortcuts()
	}
	data.Shortcuts = append(data.Shortcuts,
		components.Shortcut{Key: "l", Desc: "logout"},
		components.Shortcut{Key: "q", Desc: "quit"},
	)
	m.statusBar.SetData(data)
	return m.statusBar.View()
}
