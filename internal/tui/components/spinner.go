package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// Spinner displays an animated spinner with optional status text while
// a request is in flight.
type Spinner struct {
	spinner    spinner.Model
	statusText string
	startTime  time.Time
	width      int
	showTime   bool
}

// NewSpinner creates a new Spinner component with default styling.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{
		spinner:  s,
		showTime: true,
	}
}

// SetStatusText sets the status text to display next to the spinner.
func (s *Spinner) SetStatusText(text string) {
	s.statusText = text
}

// SetShowTime controls whether elapsed time is shown.
func (s *Spinner) SetShowTime(show bool) {
	s.showTime = show
}

// SetWidth sets the width of the spinner component.
func (s *Spinner) SetWidth(width int) {
	s.width = width
}

// Start marks the start time for elapsed time tracking.
func (s *Spinner) Start() {
	s.startTime = time.Now()
}

// Init returns the initial command for the spinner animation.
func (s *Spinner) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update handles spinner tick messages.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner with status text and optional timing info.
func (s *Spinner) View() string {
	spinnerView := s.spinner.View()
	statusStyle := lipgloss.NewStyle().Foreground(styles.Foreground)
	line := fmt.Sprintf("%s %s", spinnerView, statusStyle.Render(s.statusText))

	if s.showTime && !s.startTime.IsZero() {
		elapsed := time.Since(s.startTime).Round(time.Second)
		timeStyle := lipgloss.NewStyle().Foreground(styles.MutedLight)
		line = fmt.Sprintf("%s %s", line, timeStyle.Render(fmt.Sprintf("(%ds)", int(elapsed.Seconds()))))
	}

	if s.width > 0 {
		containerStyle := lipgloss.NewStyle().
			Width(s.width).
			Padding(0, 1)
		return containerStyle.Render(line)
	}

	return line
}
