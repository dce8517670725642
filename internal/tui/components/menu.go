// Package components provides reusable TUI components for officedesk.
package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/officedesk/internal/rbac"
	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// MenuItem is one navigable screen entry.
type MenuItem struct {
	Screen rbac.Screen
	Label  string
}

// MenuSelectedMsg is sent when a menu entry is chosen.
type MenuSelectedMsg struct {
	Screen rbac.Screen
}

// Menu is the screen navigation strip. In wide terminals it renders as
// a horizontal bar; below the compact width it collapses into a boxed
// overlay opened on demand.
type Menu struct {
	items    []MenuItem
	active   int
	width    int
	compact  bool
	expanded bool
	cursor   int
}

// NewMenu creates a new Menu with the given entries.
func NewMenu(items []MenuItem) *Menu {
	return &Menu{items: items}
}

// Items returns the menu entries.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// SetWidth sets the available width.
func (m *Menu) SetWidth(width int) {
	m.width = width
}

// SetCompact switches between the horizontal bar and the overlay mode.
func (m *Menu) SetCompact(compact bool) {
	m.compact = compact
	if !compact {
		m.expanded = false
	}
}

// Compact reports whether the menu is in overlay mode.
func (m *Menu) Compact() bool {
	return m.compact
}

// Toggle opens or closes the compact overlay.
func (m *Menu) Toggle() {
	if !m.compact {
		return
	}
	m.expanded = !m.expanded
	m.cursor = m.active
}

// IsVisible reports whether the overlay is open and capturing keys.
func (m *Menu) IsVisible() bool {
	return m.compact && m.expanded
}

// Active returns the active screen.
func (m *Menu) Active() rbac.Screen {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.active].Screen
}

// SetActive marks the entry for the given screen as active.
func (m *Menu) SetActive(screen rbac.Screen) {
	for i, item := range m.items {
		if item.Screen == screen {
			m.active = i
			return
		}
	}
}

// Select activates the entry at the given index and reports the screen.
func (m *Menu) Select(index int) (rbac.Screen, bool) {
	if index < 0 || index >= len(m.items) {
		return "", false
	}
	m.active = index
	m.expanded = false
	return m.items[index].Screen, true
}

// Update handles keys while the overlay is open.
func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	if !m.IsVisible() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			if screen, ok := m.Select(m.cursor); ok {
				return func() tea.Msg {
					return MenuSelectedMsg{Screen: screen}
				}
			}
		case "esc", "m":
			m.expanded = false
		}
	}
	return nil
}

// View renders the horizontal bar, or the overlay when expanded.
func (m *Menu) View() string {
	if m.IsVisible() {
		return m.viewOverlay()
	}
	if m.compact {
		return m.viewCollapsed()
	}
	return m.viewBar()
}

// viewBar renders the wide horizontal navigation strip.
func (m *Menu) viewBar() string {
	var parts []string
	for i, item := range m.items {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		if i == m.active {
			parts = append(parts, styles.MenuItemSelectedStyle.Render(label))
		} else {
			parts = append(parts, styles.MenuItemStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// viewCollapsed renders the one-line hint shown in narrow terminals.
func (m *Menu) viewCollapsed() string {
	active := ""
	if m.active >= 0 && m.active < len(m.items) {
		active = m.items[m.active].Label
	}
	return styles.MenuItemSelectedStyle.Render(active) +
		styles.HelpStyle.Render("  m: menu")
}

// viewOverlay renders the boxed vertical menu.
func (m *Menu) viewOverlay() string {
	var b strings.Builder
	b.WriteString(styles.FormTitleStyle.Render("Go to"))
	b.WriteString("\n\n")
	for i, item := range m.items {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		line := styles.MenuItemStyle.Render(label)
		if i == m.cursor {
			line = styles.MenuItemSelectedStyle.Render(label)
		}
		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.KeyStyle.Render("Enter") + styles.HelpStyle.Render(": open"))
	b.WriteString(styles.HelpStyle.Render(" │ "))
	b.WriteString(styles.KeyStyle.Render("Esc") + styles.HelpStyle.Render(": close"))
	return styles.MenuBoxStyle.Render(b.String())
}
