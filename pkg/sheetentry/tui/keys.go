package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Submit   key.Binding
	Clear    key.Binding
	FullView key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Edit     key.Binding
	Refresh  key.Binding
	Close    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit/save")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	FullView: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "full view")),
	NextTab:  key.NewBinding(key.WithKeys("ctrl+right", "ctrl+n"), key.WithHelp("ctrl+→", "next sheet")),
	PrevTab:  key.NewBinding(key.WithKeys("ctrl+left", "ctrl+p"), key.WithHelp("ctrl+←", "prev sheet")),
	Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "update row")),
	Refresh:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// formKeys is the help shown under the entry form.
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Clear, k.FullView, k.NextTab, k.Quit}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// fullViewKeys is the help shown in the full view.
type fullViewKeys struct{ keyMap }

func (k fullViewKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Refresh, k.Close, k.Quit}
}

func (k fullViewKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// editorKeys is the help shown in the update editor.
type editorKeys struct{ keyMap }

func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Close}
}

func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
