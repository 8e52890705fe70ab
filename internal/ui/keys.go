package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	ChipPrev key.Binding
	ChipNext key.Binding
	Jump     key.Binding
	Select   key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		ChipPrev: key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "chips")),
		ChipNext: key.NewBinding(key.WithKeys("]")),
		Jump:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "focus")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "section")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ChipPrev, k.Jump, k.NextTab, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.ChipPrev, k.ChipNext},
		{k.Jump, k.Select, k.NextTab, k.PrevTab, k.Quit},
	}
}
