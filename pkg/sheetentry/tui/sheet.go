package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/form"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
)

// noticeLevel picks the colour of a modal message.
type noticeLevel int

const (
	levelInfo noticeLevel = iota
	levelWarning
	levelError
)

// noticeMsg asks the app to show a modal message.
type noticeMsg struct {
	level noticeLevel
	title string
	text  string
}

func notify(level noticeLevel, title, text string) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{level: level, title: title, text: text}
	}
}

// failure turns an operation error into a modal message.
func failure(action string, err error) tea.Cmd {
	switch {
	case errors.Is(err, models.ErrEmptyField):
		return notify(levelWarning, "Warning", "Please fill in all fields!")
	case errors.Is(err, models.ErrFileLocked):
		return notify(levelError, "Error", "File is open in another program. Please close it and try again.")
	case errors.Is(err, models.ErrFileNotFound):
		return notify(levelError, "Error", fmt.Sprintf("Workbook not found: %v", err))
	default:
		return notify(levelError, "Error", fmt.Sprintf("Failed to %s: %v", action, err))
	}
}

// openFullViewMsg asks the app to open the full view of a sheet.
type openFullViewMsg struct {
	ctrl *form.Controller
}

// sheetModel is the entry form and preview of one sheet.
type sheetModel struct {
	ctrl    *form.Controller
	inputs  []textinput.Model
	focus   int
	preview table.Model
}

func newSheetModel(ctrl *form.Controller) *sheetModel {
	fields := ctrl.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.Prompt = ""
		ti.Width = 40
		inputs[i] = ti
	}

	display := ctrl.Schema().DisplayColumns
	columns := make([]table.Column, len(display))
	for i, c := range display {
		columns[i] = table.Column{Title: c, Width: max(len(c), 12)}
	}
	preview := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
	)
	preview.SetStyles(table.DefaultStyles())

	s := &sheetModel{
		ctrl:    ctrl,
		inputs:  inputs,
		preview: preview,
	}
	if len(inputs) > 0 {
		s.inputs[0].Focus()
		ctrl.Focus(fields[0].Label)
	}
	return s
}

// load reads the sheet and refreshes the preview table.
func (s *sheetModel) load() error {
	if err := s.ctrl.Load(); err != nil {
		return err
	}
	s.syncPreview()
	return nil
}

func (s *sheetModel) syncPreview() {
	preview := s.ctrl.Preview()
	rows := make([]table.Row, len(preview))
	for i, values := range preview {
		rows[i] = table.Row(values)
	}
	s.preview.SetRows(rows)
}

func (s *sheetModel) column(i int) string {
	return s.ctrl.Fields()[i].Label
}

// moveFocus shifts focus by delta fields, wrapping around.
func (s *sheetModel) moveFocus(delta int) tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	s.inputs[s.focus].Blur()
	s.ctrl.Blur(s.column(s.focus))

	s.focus = (s.focus + delta + len(s.inputs)) % len(s.inputs)

	s.ctrl.Focus(s.column(s.focus))
	return s.inputs[s.focus].Focus()
}

// clear empties the inputs and the controller's fields.
func (s *sheetModel) clear() {
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	s.ctrl.Clear()
	if len(s.inputs) > 0 {
		s.ctrl.Focus(s.column(s.focus))
	}
}

func (s *sheetModel) submit() tea.Cmd {
	err := s.ctrl.Submit()
	switch {
	case errors.Is(err, models.ErrReloadFailed):
		// the record is written; only the preview is stale
		s.clear()
		s.syncPreview()
		return notify(levelWarning, "Warning",
			fmt.Sprintf("Data submitted to '%s', but the preview could not be refreshed.\n%v", s.ctrl.SheetName(), err))
	case err != nil:
		return failure("submit data", err)
	}
	s.clear()
	s.syncPreview()
	return notify(levelInfo, "Success", fmt.Sprintf("Data submitted to '%s'!", s.ctrl.SheetName()))
}

func (s *sheetModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if len(s.inputs) == 0 {
			return nil
		}
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, keys.Next):
		return s.moveFocus(1)
	case key.Matches(keyMsg, keys.Prev):
		return s.moveFocus(-1)
	case key.Matches(keyMsg, keys.Submit):
		return s.submit()
	case key.Matches(keyMsg, keys.Clear):
		s.clear()
		return nil
	case key.Matches(keyMsg, keys.FullView):
		ctrl := s.ctrl
		return func() tea.Msg { return openFullViewMsg{ctrl: ctrl} }
	}

	if len(s.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.ctrl.SetValue(s.column(s.focus), s.inputs[s.focus].Value())
	return cmd
}

func (s *sheetModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Data Entry - " + s.ctrl.SheetName()))
	b.WriteString("\n\n")
	for i, f := range s.ctrl.Fields() {
		b.WriteString(labelStyle.Render(f.Label + ":"))
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	submit := disabledButton.Render("Submit")
	if s.ctrl.CanSubmit() {
		submit = enabledButton.Render("Submit")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, submit, " ", buttonStyle.Render("Clear")))

	entry := panelStyle.Render(b.String())

	previewTitle := titleStyle.Render("Preview - " + s.ctrl.SheetName())
	hint := infoStyle.Render(fmt.Sprintf("%d record(s) · ctrl+f full view", len(s.ctrl.Records())))
	preview := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, previewTitle, "", s.preview.View(), hint))

	return lipgloss.JoinHorizontal(lipgloss.Top, entry, " ", preview)
}
