package tui

import "github.com/charmbracelet/bubbles/key"

// panelKeyMap holds the settings panel bindings
type panelKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Style     key.Binding
	Save      key.Binding
	Copy      key.Binding
	Preview   key.Binding
	Quit      key.Binding
}

func defaultPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Add:       key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Style:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "design")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy html")),
		Preview:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Style, k.Save, k.Quit}
}

func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFocus, k.PrevFocus},
		{k.Add, k.Edit, k.Delete, k.Style},
		{k.Save, k.Copy, k.Preview, k.Quit},
	}
}

// editorKeyMap holds the record editor overlay bindings
type editorKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Lower  key.Binding
	Raise  key.Binding
	Select key.Binding
	Close  key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Lower:  key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "fewer stars")),
		Raise:  key.NewBinding(key.WithKeys("right", "+"), key.WithHelp("→/+", "more stars")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Select, k.Close}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Lower, k.Raise}, {k.Select, k.Close}}
}
