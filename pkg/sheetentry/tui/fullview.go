package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/form"
)

// closeFullViewMsg tells the app to return to the entry form.
type closeFullViewMsg struct{}

// fullViewModel shows every column and row of a sheet and edits one row at
// a time.
type fullViewModel struct {
	ctrl  *form.Controller
	table table.Model

	// editor state; editing is -1 while no row is open
	editing int
	inputs  []textinput.Model
	focus   int
}

func newFullViewModel(ctrl *form.Controller) *fullViewModel {
	columns := ctrl.Schema().Columns
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c, Width: max(len(c), 14)}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	t.SetStyles(table.DefaultStyles())

	v := &fullViewModel{
		ctrl:    ctrl,
		table:   t,
		editing: -1,
	}
	v.syncRows()
	return v
}

// syncRows copies the controller's records into the table. Values past the
// last column are not shown.
func (v *fullViewModel) syncRows() {
	width := len(v.ctrl.Schema().Columns)
	records := v.ctrl.Records()
	rows := make([]table.Row, len(records))
	for i, r := range records {
		row := make(table.Row, width)
		copy(row, r.Values)
		rows[i] = row
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) && len(rows) > 0 {
		v.table.SetCursor(len(rows) - 1)
	}
}

func (v *fullViewModel) refresh() tea.Cmd {
	if err := v.ctrl.Load(); err != nil {
		return failure("load data", err)
	}
	v.syncRows()
	return notify(levelInfo, "Success", "Data refreshed!")
}

// openEditor starts editing the selected row.
func (v *fullViewModel) openEditor() tea.Cmd {
	records := v.ctrl.Records()
	pos := v.table.Cursor()
	if len(records) == 0 || pos < 0 || pos >= len(records) {
		return notify(levelWarning, "Warning", "Please select a row to update!")
	}

	values := records[pos].Values
	columns := v.ctrl.Schema().Columns
	v.inputs = make([]textinput.Model, len(columns))
	for i := range columns {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 40
		if i < len(values) {
			ti.SetValue(values[i])
		}
		v.inputs[i] = ti
	}
	v.editing = pos
	v.focus = 0
	v.table.Blur()
	return v.inputs[0].Focus()
}

func (v *fullViewModel) closeEditor() {
	v.editing = -1
	v.inputs = nil
	v.table.Focus()
}

func (v *fullViewModel) save() tea.Cmd {
	values := make([]string, len(v.inputs))
	for i, in := range v.inputs {
		values[i] = in.Value()
	}
	if err := v.ctrl.Update(v.editing, values); err != nil {
		return failure("update", err)
	}
	v.closeEditor()
	v.syncRows()
	return notify(levelInfo, "Success", "Data updated successfully!")
}

func (v *fullViewModel) Update(msg tea.Msg) tea.Cmd {
	if v.editing >= 0 {
		return v.updateEditor(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Close):
			return func() tea.Msg { return closeFullViewMsg{} }
		case key.Matches(keyMsg, keys.Edit):
			return v.openEditor()
		case key.Matches(keyMsg, keys.Refresh):
			return v.refresh()
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

func (v *fullViewModel) updateEditor(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Close):
			v.closeEditor()
			return nil
		case key.Matches(keyMsg, keys.Submit):
			return v.save()
		case key.Matches(keyMsg, keys.Next), key.Matches(keyMsg, keys.Prev):
			delta := 1
			if key.Matches(keyMsg, keys.Prev) {
				delta = -1
			}
			v.inputs[v.focus].Blur()
			v.focus = (v.focus + delta + len(v.inputs)) % len(v.inputs)
			return v.inputs[v.focus].Focus()
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return cmd
}

func (v *fullViewModel) View() string {
	title := titleStyle.Render("Full Data Display - " + v.ctrl.SheetName())

	if v.editing < 0 {
		count := infoStyle.Render(fmt.Sprintf("%d record(s)", len(v.ctrl.Records())))
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", v.table.View(), count))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Update Data - " + v.ctrl.SheetName()))
	b.WriteString("\n\n")
	for i, c := range v.ctrl.Schema().Columns {
		b.WriteString(labelStyle.Render(c + ":"))
		b.WriteString(v.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, enabledButton.Render("Save"), " ", buttonStyle.Render("Cancel")))
	return panelStyle.Render(b.String())
}
