package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the host bindings. The editor commands are translated into
// input keys; Help and Quit are handled by the host itself.
type keyMap struct {
	AddNode key.Binding
	Undo    key.Binding
	Redo    key.Binding
	Copy    key.Binding
	Paste   key.Binding
	Delete  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		AddNode: key.NewBinding(key.WithKeys("A", "shift+a"), key.WithHelp("A", "add node")),
		Undo:    key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("^z", "undo")),
		Redo:    key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("^y", "redo")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "copy")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^v", "paste")),
		Delete:  key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "delete")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddNode, k.Undo, k.Redo, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddNode, k.Delete},
		{k.Undo, k.Redo},
		{k.Copy, k.Paste},
		{k.Help, k.Quit},
	}
}
