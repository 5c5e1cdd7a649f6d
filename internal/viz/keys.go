package viz

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	Edit     key.Binding
	Cancel   key.Binding
	Preset   key.Binding
	Theme    key.Binding
	Reset    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev field")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Dec:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "step down")),
		Inc:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "step up")),
		Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "type value")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Preset:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "defaults")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "K"), key.WithHelp("pgup", "scroll table")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "J"), key.WithHelp("pgdn", "scroll table")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dec, k.Inc, k.Edit, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc},
		{k.Edit, k.Cancel, k.Reset},
		{k.Preset, k.Theme, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}
