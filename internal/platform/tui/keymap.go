package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-rover/internal/rover"
)

// KeyMap defines the key bindings for the rover screen.
type KeyMap struct {
	North  key.Binding
	East   key.Binding
	South  key.Binding
	West   key.Binding
	Prompt key.Binding
	Submit key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.East, k.South, k.West, k.Prompt, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.East, k.South, k.West},
		{k.Prompt, k.Submit, k.Cancel},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// Arrow keys, vim keys and the compass letters all step the rover.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("up", "k", "n"),
			key.WithHelp("↑/k/n", "north"),
		),
		East: key.NewBinding(
			key.WithKeys("right", "l", "e"),
			key.WithHelp("→/l/e", "east"),
		),
		South: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j/s", "south"),
		),
		West: key.NewBinding(
			key.WithKeys("left", "h", "w"),
			key.WithHelp("←/h/w", "west"),
		),
		Prompt: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction translates a key message to a single rover step.
func (k KeyMap) Direction(msg tea.KeyMsg) (rover.Direction, bool) {
	switch {
	case key.Matches(msg, k.North):
		return rover.North, true
	case key.Matches(msg, k.East):
		return rover.East, true
	case key.Matches(msg, k.South):
		return rover.South, true
	case key.Matches(msg, k.West):
		return rover.West, true
	}
	return 0, false
}
