package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding

	// Movies
	FetchMovies key.Binding
	FetchRating key.Binding
	AddMovie    key.Binding
	Compact     key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Leave     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Activity log"),
		),

		FetchMovies: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Fetch movies"),
		),
		FetchRating: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Fetch rating"),
		),
		AddMovie: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add movie"),
		),
		Compact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Compact list"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Add movie"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave form"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FetchMovies, k.AddMovie, k.FetchRating, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FetchMovies, k.FetchRating, k.AddMovie, k.Compact},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.NextField, k.PrevField, k.Submit, k.Leave},
		{k.Logs, k.CycleTheme, k.Help, k.Quit},
	}
}

// formHelp lists the bindings shown while the form has focus.
func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Leave}
}
