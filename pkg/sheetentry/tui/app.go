// Package tui renders the sheet forms as a terminal UI: one tab per sheet
// with an entry form, a preview of the display columns and a full view that
// edits individual rows.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/form"
)

// App is the root model.
type App struct {
	bookPath string
	sheets   []*sheetModel
	active   int
	full     *fullViewModel
	notice   *noticeMsg
	help     help.Model
	width    int
	height   int
}

// NewApp builds the UI for the given controllers and loads their records.
// A sheet that fails to load starts empty and the failure is shown once the
// program runs.
func NewApp(bookPath string, controllers []*form.Controller) *App {
	a := &App{
		bookPath: bookPath,
		help:     help.New(),
	}
	for _, ctrl := range controllers {
		s := newSheetModel(ctrl)
		if err := s.load(); err != nil && a.notice == nil {
			msg := failure("load data", err)().(noticeMsg)
			a.notice = &msg
		}
		a.sheets = append(a.sheets, s)
	}
	return a
}

// Run starts the program and blocks until the user quits.
func Run(bookPath string, controllers []*form.Controller) error {
	_, err := tea.NewProgram(NewApp(bookPath, controllers), tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil

	case noticeMsg:
		a.notice = &msg
		return a, nil

	case openFullViewMsg:
		a.full = newFullViewModel(msg.ctrl)
		return a, nil

	case closeFullViewMsg:
		a.full = nil
		// the full view may have changed rows shown in the preview
		a.sheets[a.active].syncPreview()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}
		if a.notice != nil {
			// any key dismisses the message
			a.notice = nil
			return a, nil
		}
		if a.full == nil && len(a.sheets) > 1 {
			switch {
			case key.Matches(msg, keys.NextTab):
				a.active = (a.active + 1) % len(a.sheets)
				return a, nil
			case key.Matches(msg, keys.PrevTab):
				a.active = (a.active - 1 + len(a.sheets)) % len(a.sheets)
				return a, nil
			}
		}
	}

	if len(a.sheets) == 0 {
		return a, nil
	}
	if a.full != nil {
		return a, a.full.Update(msg)
	}
	return a, a.sheets[a.active].Update(msg)
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Workbook: " + a.bookPath))
	b.WriteString(infoStyle.Render(fmt.Sprintf("   Total sheets: %d", len(a.sheets))))
	b.WriteString("\n\n")

	if len(a.sheets) > 1 {
		tabs := make([]string, len(a.sheets))
		for i, s := range a.sheets {
			style := tabStyle
			if i == a.active {
				style = activeTabStyle
			}
			tabs[i] = style.Render(s.ctrl.SheetName())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n")
	}

	var body string
	var helpView string
	switch {
	case len(a.sheets) == 0:
		body = infoStyle.Render("No sheets configured.")
	case a.full != nil && a.full.editing >= 0:
		body = a.full.View()
		helpView = a.help.View(editorKeys{keys})
	case a.full != nil:
		body = a.full.View()
		helpView = a.help.View(fullViewKeys{keys})
	default:
		body = a.sheets[a.active].View()
		helpView = a.help.View(formKeys{keys})
	}

	if a.notice != nil {
		body = a.noticeView()
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(helpView)
	return b.String()
}

func (a *App) noticeView() string {
	color := successColor
	switch a.notice.level {
	case levelWarning:
		color = warningColor
	case levelError:
		color = errorColor
	}
	title := modalTitleStyle.Foreground(color).Render(a.notice.title)
	text := lipgloss.JoinVertical(lipgloss.Left, title, "", a.notice.text, "", infoStyle.Render("press any key"))
	box := modalStyle.BorderForeground(color).Render(text)
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height-4, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
