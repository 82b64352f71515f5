package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection / editing
	Edit key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Record actions
	Add    key.Binding
	Export key.Binding
	Reset  key.Binding

	// Filtering
	Search        key.Binding
	FilterStatus  key.Binding
	FilterPaid    key.Binding
	FilterOverdue key.Binding
	FilterOwner   key.Binding

	// Tabs
	TabCustom    key.Binding
	TabRepair    key.Binding
	TabAnalytics key.Binding

	// Help toggle
	Help key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit job"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add job"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export csv"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset demo data"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		FilterStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filter"),
		),
		FilterPaid: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle paid filter"),
		),
		FilterOverdue: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cycle overdue filter"),
		),
		FilterOwner: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle owner filter"),
		),
		TabCustom: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "custom jobs"),
		),
		TabRepair: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "repair jobs"),
		),
		TabAnalytics: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "analytics"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Edit, k.Add,
		k.Search, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Back, k.Quit},
		{k.Add, k.Export, k.Reset},
		{k.Search, k.FilterStatus, k.FilterPaid, k.FilterOverdue, k.FilterOwner},
		{k.TabCustom, k.TabRepair, k.TabAnalytics, k.Help},
	}
}
