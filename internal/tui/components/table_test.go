package components

import (
	"strings"
	"testing"
)

func sampleColumns() []Column {
	return []Column{
		{Title: "ID", Width: 4},
		{Title: "Address", Width: 16},
	}
}

func sampleRows(n int) []TableRow {
	rows := make([]TableRow, n)
	for i := range rows {
		rows[i] = TableRow{ID: i + 1, Cells: []string{string(rune('0' + i + 1)), "Row"}}
	}
	return rows
}

func TestTableEmpty(t *testing.T) {
	tbl := NewTable(sampleColumns())
	tbl.SetEmptyText("No offices yet")

	if tbl.SelectedRow() != nil {
		t.Error("Empty table should have no selected row")
	}
	if !strings.Contains(tbl.View(), "No offices yet") {
		t.Error("Empty table should render the placeholder")
	}
	if !strings.Contains(tbl.View(), "Address") {
		t.Error("Header should render even when empty")
	}
}

func TestTableSelection(t *testing.T) {
	tbl := NewTable(sampleColumns())
	tbl.SetRows(sampleRows(3))

	if tbl.Selected() != 0 {
		t.Errorf("Initial selection should be 0, got %d", tbl.Selected())
	}

	tbl.MoveDown()
	tbl.MoveDown()
	if tbl.Selected() != 2 {
		t.Errorf("Selection should be 2, got %d", tbl.Selected())
	}

	// Does not run past the end.
	tbl.MoveDown()
	if tbl.Selected() != 2 {
		t.Errorf("Selection should stay at 2, got %d", tbl.Selected())
	}

	tbl.MoveUp()
	if tbl.Selected() != 1 {
		t.Errorf("Selection should be 1, got %d", tbl.Selected())
	}

	row := tbl.SelectedRow()
	if row == nil || row.ID != 2 {
		t.Errorf("Selected row should have ID 2, got %+v", row)
	}
}

func TestTableSelectionClampedOnShrink(t *testing.T) {
	tbl := NewTable(sampleColumns())
	tbl.SetRows(sampleRows(5))
	tbl.GoToBottom()

	tbl.SetRows(sampleRows(2))
	if tbl.Selected() != 1 {
		t.Errorf("Selection should clamp to 1, got %d", tbl.Selected())
	}

	tbl.SetRows(nil)
	if tbl.SelectedRow() != nil {
		t.Error("Cleared table should have no selected row")
	}
}

func TestTableKeyboardNavigation(t *testing.T) {
	tbl := NewTable(sampleColumns())
	tbl.SetRows(sampleRows(4))

	tbl.Update(keyMsg("j"))
	tbl.Update(keyMsg("j"))
	if tbl.Selected() != 2 {
		t.Errorf("j should move down, got %d", tbl.Selected())
	}

	tbl.Update(keyMsg("k"))
	if tbl.Selected() != 1 {
		t.Errorf("k should move up, got %d", tbl.Selected())
	}

	tbl.Update(keyMsg("G"))
	if tbl.Selected() != 3 {
		t.Errorf("G should jump to bottom, got %d", tbl.Selected())
	}

	tbl.Update(keyMsg("g"))
	if tbl.Selected() != 0 {
		t.Errorf("g should jump to top, got %d", tbl.Selected())
	}
}

func TestTableUnfocusedIgnoresKeys(t *testing.T) {
	tbl := NewTable(sampleColumns())
	tbl.SetRows(sampleRows(3))
	tbl.SetFocused(false)

	tbl.Update(keyMsg("j"))
	if tbl.Selected() != 0 {
		t.Error("Unfocused table should ignore navigation")
	}
}

func TestTableScrolling(t *testing.T) {
	tbl := NewTable(sampleColumns())
	tbl.SetRows(sampleRows(9))
	tbl.SetSize(40, 3)

	tbl.GoToBottom()
	view := tbl.View()
	if !strings.Contains(view, "more above") {
		t.Error("Scrolled-down view should indicate rows above")
	}

	tbl.GoToTop()
	view = tbl.View()
	if !strings.Contains(view, "more below") {
		t.Error("Scrolled-up view should indicate rows below")
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("ab", 4); got != "ab  " {
		t.Errorf("Short value should be padded, got %q", got)
	}
	if got := padCell("abcdef", 4); got != "abc…" {
		t.Errorf("Long value should be truncated with ellipsis, got %q", got)
	}
	if got := padCell("abc", 0); got != "abc" {
		t.Errorf("Zero width should pass through, got %q", got)
	}
}
