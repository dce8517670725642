// Package components provides reusable TUI components for officedesk.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	ScreenTitle string
	ServerURL   string
}

// Header displays the application title bar with the active screen
// and the server the client is talking to.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			ScreenTitle: "-",
			ServerURL:   "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetScreenTitle sets the active screen title.
func (h *Header) SetScreenTitle(title string) {
	h.data.ScreenTitle = title
}

// SetServerURL sets the server address shown in the header.
func (h *Header) SetServerURL(url string) {
	h.data.ServerURL = url
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("OFFICEDESK")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	screenLabel := styles.HeaderLabelStyle.Render("Screen: ")
	screenValue := styles.HeaderValueStyle.Render(h.data.ScreenTitle)

	serverLabel := styles.HeaderLabelStyle.Render("Server: ")
	serverValue := styles.HeaderValueStyle.Render(h.data.ServerURL)

	content := fmt.Sprintf("%s%s%s%s%s%s%s",
		title, sep,
		screenLabel, screenValue, sep,
		serverLabel, serverValue,
	)

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
