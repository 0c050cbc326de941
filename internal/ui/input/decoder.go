// Package input translates raw terminal events into abstract intents.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap declares the session key bindings
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Delete  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Confirm, k.Cancel, k.Delete},
	}
}

// Decoder maps raw bubbletea messages to intents
type Decoder struct {
	keys KeyMap
}

// NewDecoder creates a decoder with the default key map
func NewDecoder() *Decoder {
	return &Decoder{keys: DefaultKeyMap()}
}

// Keys returns the decoder's key map, for help rendering
func (d *Decoder) Keys() KeyMap {
	return d.keys
}

// Decode translates one raw event into intents. Unrecognized events decode
// to a single Ignore so the session loop never terminates on odd input. A
// pasted string produces one InsertChar per rune.
func (d *Decoder) Decode(msg tea.Msg) []Intent {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return []Intent{Resize{Width: msg.Width, Height: msg.Height}}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, d.keys.Up):
			return []Intent{MoveUp{}}
		case key.Matches(msg, d.keys.Down):
			return []Intent{MoveDown{}}
		case key.Matches(msg, d.keys.Confirm):
			return []Intent{Confirm{}}
		case key.Matches(msg, d.keys.Cancel):
			return []Intent{Cancel{}}
		case key.Matches(msg, d.keys.Delete):
			return []Intent{DeleteBack{}}
		}

		switch msg.Type {
		case tea.KeySpace:
			return []Intent{InsertChar{Rune: ' '}}
		case tea.KeyRunes:
			if msg.Alt {
				return []Intent{Ignore{}}
			}
			intents := make([]Intent, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				intents = append(intents, InsertChar{Rune: r})
			}
			if len(intents) == 0 {
				return []Intent{Ignore{}}
			}
			return intents
		}
	}

	return []Intent{Ignore{}}
}
