package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SwitchFocus  key.Binding
	ToggleTag    key.Binding
	MoveTag      key.Binding
	ToggleTheme  key.Binding
	ClearFilters key.Binding
	Scroll       key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "search/tags"),
		),
		ToggleTag: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle tag"),
		),
		MoveTag: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←→", "move"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.ToggleTag, k.ToggleTheme, k.ClearFilters, k.Scroll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchFocus, k.ToggleTag, k.MoveTag},
		{k.ToggleTheme, k.ClearFilters, k.Scroll, k.Quit},
	}
}
