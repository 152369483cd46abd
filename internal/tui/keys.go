package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	StepDown   key.Binding
	StepUp     key.Binding
	Edit       key.Binding
	Cancel     key.Binding
	Reset      key.Binding
	Preset     key.Binding
	Theme      key.Binding
	Write      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Decrease:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		StepDown:   key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "-10")),
		StepUp:     key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "+10")),
		Edit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Preset:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Write:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write snippet")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll snippet")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll snippet")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Edit, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.StepDown, k.StepUp},
		{k.Edit, k.Cancel, k.ScrollUp, k.ScrollDown},
		{k.Reset, k.Preset, k.Theme, k.Write, k.Help, k.Quit},
	}
}
