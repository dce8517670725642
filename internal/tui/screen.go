package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/errors"
	"github.com/dbmrq/officedesk/internal/logging"
	"github.com/dbmrq/officedesk/internal/rbac"
	"github.com/dbmrq/officedesk/internal/tui/components"
	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// Row is one display row of a resource collection. Cells align with the
// screen's column set; ID is the record's server identifier.
type Row struct {
	ID    int
	Cells []string
	// Ref keeps the source record for actions that need more than the
	// rendered cells, e.g. pre-filling the edit form.
	Ref any
}

// LoadResult is what a screen's Load function produces: the rows to
// show, the option sets for foreign-key form fields, and the error if
// the load failed.
type LoadResult struct {
	Rows    []Row
	Options map[string][]components.Option
	Err     error
}

// FormMode distinguishes the create and edit modals.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// ScreenSpec declares one resource screen: its columns, how to load its
// collection, and the mutations it supports. Nil function fields mean
// the screen does not support that operation; the controller also gates
// every operation through the role capability table, so a spec field
// being set is necessary but not sufficient.
type ScreenSpec struct {
	ID        rbac.Screen
	Title     string
	Columns   []components.Column
	EmptyText string

	// Load fetches the collection and any foreign-key option sets.
	Load func(ctx context.Context, client *crm.Client) LoadResult

	// FormFields builds the modal form fields. For FormEdit the row
	// being edited is passed for pre-filling.
	FormFields func(mode FormMode, row *Row, options map[string][]components.Option) []components.FormField

	// Required lists the form field IDs that must be non-empty before
	// submission. Deeper validation is the server's job.
	Required []string

	// Submit sends the create or update. id is meaningful for FormEdit.
	Submit func(ctx context.Context, client *crm.Client, mode FormMode, id int, values map[string]string) error

	// Delete removes the selected record.
	Delete func(ctx context.Context, client *crm.Client, id int) error

	// ConfirmDelete renders the confirmation prompt for a row.
	ConfirmDelete func(row Row) string

	// Advance moves the selected record one step forward in its
	// workflow. CanAdvance reports whether the row has a step left.
	Advance    func(ctx context.Context, client *crm.Client, row Row) error
	CanAdvance func(row Row) bool

	// Sweep triggers the server-side bulk recheck and returns its
	// result message.
	Sweep func(ctx context.Context, client *crm.Client) (string, error)
}

// ScreenModel is the generic controller driving one resource screen.
// All six screens share it; behavior differences live in the spec.
type ScreenModel struct {
	spec   ScreenSpec
	client *crm.Client
	role   crm.Role

	table   *components.Table
	spinner *components.Spinner
	form    *components.Form
	confirm *components.ConfirmDialog

	rows    []Row
	options map[string][]components.Option

	loading   bool
	loadErr   error
	notice    string
	noticeErr bool

	mode          FormMode
	editingID     int
	pendingDelete int

	width  int
	height int
}

// NewScreenModel creates the controller for one screen spec.
func NewScreenModel(spec ScreenSpec, client *crm.Client, role crm.Role) *ScreenModel {
	table := components.NewTable(spec.Columns)
	if spec.EmptyText != "" {
		table.SetEmptyText(spec.EmptyText)
	}
	return &ScreenModel{
		spec:    spec,
		client:  client,
		role:    role,
		table:   table,
		spinner: components.NewSpinner(),
		confirm: components.NewConfirmDialog(),
		loading: true,
	}
}

// ID returns the screen identifier.
func (m *ScreenModel) ID() rbac.Screen {
	return m.spec.ID
}

// Title returns the screen title.
func (m *ScreenModel) Title() string {
	return m.spec.Title
}

// HasOverlay reports whether a modal or confirmation is capturing keys.
func (m *ScreenModel) HasOverlay() bool {
	return m.form != nil || m.confirm.IsVisible()
}

// Init starts the spinner and the initial collection load.
func (m *ScreenModel) Init() tea.Cmd {
	m.spinner.Start()
	return tea.Batch(m.spinner.Init(), m.loadCmd())
}

// Reload re-fetches the collection.
func (m *ScreenModel) Reload() tea.Cmd {
	m.loading = true
	m.loadErr = nil
	m.spinner.Start()
	return tea.Batch(m.spinner.Init(), m.loadCmd())
}

// loadCmd issues the collection load off the UI goroutine.
func (m *ScreenModel) loadCmd() tea.Cmd {
	spec := m.spec
	client := m.client
	return func() tea.Msg {
		return ListLoadedMsg{
			Screen: spec.ID,
			Result: spec.Load(context.Background(), client),
		}
	}
}

// SetSize sets the available content area.
func (m *ScreenModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	tableHeight := height - 4
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetSize(width, tableHeight)
	if m.form != nil {
		m.form.SetWidth(min(width-8, 64))
	}
	m.confirm.SetSize(min(width-8, 56))
	m.spinner.SetWidth(width)
}

// Shortcuts returns the key hints for the status bar, filtered by what
// the current role may do here.
func (m *ScreenModel) Shortcuts() []components.Shortcut {
	shortcuts := []components.Shortcut{
		{Key: "j/k", Desc: "move"},
		{Key: "r", Desc: "reload"},
	}
	if m.spec.Submit != nil && rbac.Allowed(m.role, m.spec.ID, rbac.ActionCreate) {
		shortcuts = append(shortcuts, components.Shortcut{Key: "n", Desc: "new"})
	}
	if m.spec.Submit != nil && rbac.Allowed(m.role, m.spec.ID, rbac.ActionEdit) {
		shortcuts = append(shortcuts, components.Shortcut{Key: "e", Desc: "edit"})
	}
	if m.spec.Delete != nil && rbac.Allowed(m.role, m.spec.ID, rbac.ActionDelete) {
		shortcuts = append(shortcuts, components.Shortcut{Key: "d", Desc: "delete"})
	}
	if m.spec.Advance != nil && rbac.Allowed(m.role, m.spec.ID, rbac.ActionAdvance) {
		shortcuts = append(shortcuts, components.Shortcut{Key: "a", Desc: "advance"})
	}
	if m.spec.Sweep != nil && rbac.Allowed(m.role, m.spec.ID, rbac.ActionSweep) {
		shortcuts = append(shortcuts, components.Shortcut{Key: "o", Desc: "check overdue"})
	}
	return shortcuts
}

// Notice returns the transient notice and whether it is an error.
func (m *ScreenModel) Notice() (string, bool) {
	return m.notice, m.noticeErr
}

// Update handles messages for the screen.
func (m *ScreenModel) Update(msg tea.Msg) (*ScreenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ListLoadedMsg:
		if msg.Screen != m.spec.ID {
			return m, nil
		}
		return m.applyLoad(msg.Result)

	case MutationDoneMsg:
		if msg.Screen != m.spec.ID {
			return m, nil
		}
		return m.applyMutation(msg.Err)

	case SweepDoneMsg:
		if msg.Screen != m.spec.ID {
			return m, nil
		}
		if msg.Err != nil {
			m.notice = errors.UserMessage(msg.Err)
			m.noticeErr = true
			return m, nil
		}
		m.notice = msg.Message
		m.noticeErr = false
		return m, m.Reload()

	case components.FormSubmittedMsg:
		if m.form == nil || msg.FormID != string(m.spec.ID) {
			return m, nil
		}
		return m, m.submitForm()

	case components.FormCanceledMsg:
		if m.form == nil || msg.FormID != string(m.spec.ID) {
			return m, nil
		}
		m.form = nil
		return m, nil

	case components.ConfirmYesMsg:
		if m.pendingDelete == 0 {
			return m, nil
		}
		id := m.pendingDelete
		m.pendingDelete = 0
		return m, m.deleteCmd(id)

	case components.ConfirmNoMsg:
		m.pendingDelete = 0
		return m, nil
	}

	// Overlays capture input first.
	if m.confirm.IsVisible() {
		return m, m.confirm.Update(msg)
	}
	if m.form != nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

// handleKey handles list-mode keys.
func (m *ScreenModel) handleKey(msg tea.KeyMsg) (*ScreenModel, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m, m.Reload()

	case "n":
		if m.spec.Submit != nil && rbac.Allowed(m.role, m.spec.ID, rbac.ActionCreate) {
			return m, m.openForm(FormCreate, nil)
		}
		return m, nil

	case "e":
		if m.spec.Submit == nil || !rbac.Allowed(m.role, m.spec.ID, rbac.ActionEdit) {
			return m, nil
		}
		if row := m.selectedRow(); row != nil {
			return m, m.openForm(FormEdit, row)
		}
		return m, nil

	case "d":
		if m.spec.Delete == nil || !rbac.Allowed(m.role, m.spec.ID, rbac.ActionDelete) {
			return m, nil
		}
		if row := m.selectedRow(); row != nil {
			m.pendingDelete = row.ID
			prompt := fmt.Sprintf("Delete record #%d?", row.ID)
			if m.spec.ConfirmDelete != nil {
				prompt = m.spec.ConfirmDelete(*row)
			}
			m.confirm.Show("Confirm deletion", prompt, true)
		}
		return m, nil

	case "a":
		if m.spec.Advance == nil || !rbac.Allowed(m.role, m.spec.ID, rbac.ActionAdvance) {
			return m, nil
		}
		row := m.selectedRow()
		if row == nil {
			return m, nil
		}
		if m.spec.CanAdvance != nil && !m.spec.CanAdvance(*row) {
			m.notice = "already at the final status"
			m.noticeErr = false
			return m, nil
		}
		return m, m.advanceCmd(*row)

	case "o":
		if m.spec.Sweep == nil || !rbac.Allowed(m.role, m.spec.ID, rbac.ActionSweep) {
			return m, nil
		}
		return m, m.sweepCmd()
	}

	return m, m.table.Update(msg)
}

// selectedRow returns the row under the cursor, or nil.
func (m *ScreenModel) selectedRow() *Row {
	sel := m.table.SelectedRow()
	if sel == nil {
		return nil
	}
	for i := range m.rows {
		if m.rows[i].ID == sel.ID {
			return &m.rows[i]
		}
	}
	return nil
}

// applyLoad installs a settled collection load.
func (m *ScreenModel) applyLoad(result LoadResult) (*ScreenModel, tea.Cmd) {
	m.loading = false
	if result.Err != nil {
		m.loadErr = result.Err
		logging.Warn("screen load failed",
			zap.String("screen", string(m.spec.ID)),
			zap.Error(result.Err))
		return m, nil
	}
	m.loadErr = nil
	m.rows = result.Rows
	m.options = result.Options

	tableRows := make([]components.TableRow, len(result.Rows))
	for i, row := range result.Rows {
		tableRows[i] = components.TableRow{ID: row.ID, Cells: row.Cells}
	}
	m.table.SetRows(tableRows)
	return m, nil
}

// applyMutation handles a settled create, update or delete. Success
// closes the modal and reloads; failure keeps the modal open with the
// server's message inline so the input survives for correction.
func (m *ScreenModel) applyMutation(err error) (*ScreenModel, tea.Cmd) {
	if err != nil {
		if m.form != nil {
			m.form.SetError(errors.UserMessage(err))
			return m, nil
		}
		m.notice = errors.UserMessage(err)
		m.noticeErr = true
		return m, nil
	}
	m.form = nil
	m.notice = ""
	m.noticeErr = false
	return m, m.Reload()
}

// openForm opens the create or edit modal.
func (m *ScreenModel) openForm(mode FormMode, row *Row) tea.Cmd {
	m.mode = mode
	m.editingID = 0
	if row != nil {
		m.editingID = row.ID
	}

	title := "New " + strings.TrimSuffix(m.spec.Title, "s")
	if mode == FormEdit {
		title = fmt.Sprintf("Edit %s #%d", strings.TrimSuffix(m.spec.Title, "s"), m.editingID)
	}

	form := components.NewForm(string(m.spec.ID), title)
	form.AddFields(m.spec.FormFields(mode, row, m.options)...)
	form.AddFields(components.NewButton("submit", "Save"))
	form.SetWidth(min(m.width-8, 64))
	m.form = form
	return form.Focus()
}

// submitForm runs the local presence check and issues the mutation.
func (m *ScreenModel) submitForm() tea.Cmd {
	values := m.form.Values()
	for _, id := range m.spec.Required {
		if strings.TrimSpace(values[id]) == "" {
			field := id
			if f, ok := m.form.GetField(id).(*components.TextInput); ok {
				field = f.Label()
			}
			m.form.SetError(field + " is required")
			return nil
		}
	}
	m.form.SetError("")

	spec := m.spec
	client := m.client
	mode := m.mode
	id := m.editingID
	return func() tea.Msg {
		return MutationDoneMsg{
			Screen: spec.ID,
			Err:    spec.Submit(context.Background(), client, mode, id, values),
		}
	}
}

// deleteCmd issues the confirmed deletion.
func (m *ScreenModel) deleteCmd(id int) tea.Cmd {
	spec := m.spec
	client := m.client
	return func() tea.Msg {
		return MutationDoneMsg{
			Screen: spec.ID,
			Err:    spec.Delete(context.Background(), client, id),
		}
	}
}

// advanceCmd issues the one-step workflow advance.
func (m *ScreenModel) advanceCmd(row Row) tea.Cmd {
	spec := m.spec
	client := m.client
	return func() tea.Msg {
		return MutationDoneMsg{
			Screen: spec.ID,
			Err:    spec.Advance(context.Background(), client, row),
		}
	}
}

// sweepCmd issues the server-side bulk recheck.
func (m *ScreenModel) sweepCmd() tea.Cmd {
	spec := m.spec
	client := m.client
	return func() tea.Msg {
		message, err := spec.Sweep(context.Background(), client)
		return SweepDoneMsg{Screen: spec.ID, Message: message, Err: err}
	}
}

// View renders the screen content.
func (m *ScreenModel) View() string {
	if m.confirm.IsVisible() {
		return m.confirm.View()
	}
	if m.form != nil {
		return styles.ModalBoxStyle.Render(m.form.View())
	}

	if m.loading {
		m.spinner.SetStatusText("Loading " + strings.ToLower(m.spec.Title) + "…")
		return m.spinner.View()
	}

	if m.loadErr != nil {
		var b strings.Builder
		b.WriteString(styles.ErrorTextStyle.Render("Could not load " + strings.ToLower(m.spec.Title) + ": " + errors.UserMessage(m.loadErr)))
		b.WriteString("\n\n")
		b.WriteString(styles.KeyStyle.Render("r") + styles.HelpStyle.Render(": retry"))
		return b.String()
	}

	return m.table.View()
}
