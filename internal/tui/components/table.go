// Package components provides reusable TUI components for officedesk.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// TableRow is one record row. Cells are pre-rendered strings aligned
// with the column set; ID carries the record's server identifier.
type TableRow struct {
	ID    int
	Cells []string
}

// Table is a scrollable record table with single-row selection.
type Table struct {
	columns     []Column
	rows        []TableRow
	selected    int
	height      int
	width       int
	scrollStart int
	focused     bool
	emptyText   string
}

// NewTable creates a new Table component.
func NewTable(columns []Column) *Table {
	return &Table{
		columns:   columns,
		rows:      []TableRow{},
		height:    10,
		focused:   true,
		emptyText: "No records",
	}
}

// SetColumns replaces the column set.
func (t *Table) SetColumns(columns []Column) {
	t.columns = columns
}

// SetEmptyText sets the placeholder shown when the table has no rows.
func (t *Table) SetEmptyText(text string) {
	t.emptyText = text
}

// SetRows replaces the rows, clamping the selection.
func (t *Table) SetRows(rows []TableRow) {
	t.rows = rows
	if t.selected >= len(rows) {
		t.selected = len(rows) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
	t.updateScroll()
}

// Rows returns the current rows.
func (t *Table) Rows() []TableRow {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// SetSize sets both width and height of the row viewport.
func (t *Table) SetSize(width, height int) {
	t.width = width
	t.height = height
	if t.height < 1 {
		t.height = 1
	}
	t.updateScroll()
}

// SetFocused sets whether the table is focused.
func (t *Table) SetFocused(focused bool) {
	t.focused = focused
}

// Selected returns the currently selected row index.
func (t *Table) Selected() int {
	return t.selected
}

// SelectedRow returns the currently selected row, or nil if empty.
func (t *Table) SelectedRow() *TableRow {
	if len(t.rows) == 0 || t.selected < 0 || t.selected >= len(t.rows) {
		return nil
	}
	return &t.rows[t.selected]
}

// MoveUp moves selection up.
func (t *Table) MoveUp() {
	if t.selected > 0 {
		t.selected--
		t.updateScroll()
	}
}

// MoveDown moves selection down.
func (t *Table) MoveDown() {
	if t.selected < len(t.rows)-1 {
		t.selected++
		t.updateScroll()
	}
}

// GoToTop moves selection to the first row.
func (t *Table) GoToTop() {
	t.selected = 0
	t.updateScroll()
}

// GoToBottom moves selection to the last row.
func (t *Table) GoToBottom() {
	if len(t.rows) > 0 {
		t.selected = len(t.rows) - 1
		t.updateScroll()
	}
}

// updateScroll ensures the selected row is visible.
func (t *Table) updateScroll() {
	if t.selected < t.scrollStart {
		t.scrollStart = t.selected
	}
	if t.selected >= t.scrollStart+t.height {
		t.scrollStart = t.selected - t.height + 1
	}
	if t.scrollStart < 0 {
		t.scrollStart = 0
	}
}

// Update handles keyboard events for navigation.
func (t *Table) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			t.MoveUp()
		case "down", "j":
			t.MoveDown()
		case "home", "g":
			t.GoToTop()
		case "end", "G":
			t.GoToBottom()
		}
	}
	return nil
}

// View renders the table with a header row.
func (t *Table) View() string {
	header := t.renderHeader()

	if len(t.rows) == 0 {
		return header + "\n" + styles.TableEmptyStyle.Render(t.emptyText)
	}

	var lines []string
	endIndex := t.scrollStart + t.height
	if endIndex > len(t.rows) {
		endIndex = len(t.rows)
	}

	for i := t.scrollStart; i < endIndex; i++ {
		lines = append(lines, t.renderRow(t.rows[i], i == t.selected))
	}

	content := strings.Join(lines, "\n")

	if t.scrollStart > 0 {
		content = styles.HelpStyle.Render("  ↑ more above") + "\n" + content
	}
	if endIndex < len(t.rows) {
		content = content + "\n" + styles.HelpStyle.Render("  ↓ more below")
	}

	return header + "\n" + content
}

// renderHeader renders the column title row.
func (t *Table) renderHeader() string {
	var cells []string
	for _, col := range t.columns {
		cells = append(cells, padCell(col.Title, col.Width))
	}
	return styles.TableHeaderStyle.Render("  " + strings.Join(cells, " "))
}

// renderRow renders a single record row.
func (t *Table) renderRow(row TableRow, isSelected bool) string {
	var cells []string
	for i, col := range t.columns {
		cell := ""
		if i < len(row.Cells) {
			cell = row.Cells[i]
		}
		cells = append(cells, padCell(cell, col.Width))
	}

	indicator := "  "
	if isSelected && t.focused {
		indicator = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Bold(true).
			Render("▶ ")
	}

	line := indicator + strings.Join(cells, " ")

	lineStyle := styles.TableRowStyle
	if isSelected && t.focused {
		lineStyle = styles.TableRowSelectedStyle
	}
	if t.width > 0 {
		lineStyle = lineStyle.Width(t.width)
	}
	return lineStyle.Render(line)
}

// padCell truncates or pads a cell value to the column width.
func padCell(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
