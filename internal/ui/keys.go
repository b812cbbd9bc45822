package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"cleanlist/internal/config"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Toggle  key.Binding
	Rename  key.Binding
	Delete  key.Binding
	View    key.Binding
	Edit    key.Binding
	Theme   key.Binding
	Export  key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:    key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Add:     key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Toggle:  key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(keyLabel(k.Toggle), "toggle")),
		Rename:  key.NewBinding(key.WithKeys(k.Rename), key.WithHelp(k.Rename, "rename")),
		Delete:  key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		View:    key.NewBinding(key.WithKeys(k.View), key.WithHelp(k.View, "view list")),
		Edit:    key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(k.Edit, "edit list")),
		Theme:   key.NewBinding(key.WithKeys(k.Theme), key.WithHelp(k.Theme, "theme")),
		Export:  key.NewBinding(key.WithKeys(k.Export), key.WithHelp(k.Export, "export pdf")),
		Quit:    key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
		Confirm: key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "save")),
		Cancel:  key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
	}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// helpKeys is the set of bindings shown in the help line for one frame.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
