package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the help line. Dispatch happens in the
// input modes; these only describe it.
type keyMap struct {
	Search  key.Binding
	Rerun   key.Binding
	Region  key.Binding
	Limit   key.Binding
	Move    key.Binding
	Page    key.Binding
	Details key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Rerun:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "re-run")),
		Region:  key.NewBinding(key.WithKeys("g", "R"), key.WithHelp("g/R", "region")),
		Limit:   key.NewBinding(key.WithKeys("l", "L"), key.WithHelp("l/L", "page size")),
		Move:    key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move")),
		Page:    key.NewBinding(key.WithKeys("left", "right", "h", "p", "n"), key.WithHelp("←/→", "page")),
		Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Region, k.Limit, k.Page, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Rerun},
		{k.Region, k.Limit},
		{k.Move, k.Page, k.Details},
		{k.Help, k.Quit},
	}
}
