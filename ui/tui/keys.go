// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keypad/core/keyboard"
)

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Exit    key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Confirm, km.Exit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down, km.Left, km.Right}, {km.Confirm, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var BaseKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "press key"),
	),
	Exit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "cancel"),
	),
}

// event decodes a key message into a keyboard event.
func (km KeyMap) event(msg tea.KeyMsg) keyboard.Event {
	switch {
	case key.Matches(msg, km.Up):
		return keyboard.Key(keyboard.Up)
	case key.Matches(msg, km.Down):
		return keyboard.Key(keyboard.Down)
	case key.Matches(msg, km.Left):
		return keyboard.Key(keyboard.Left)
	case key.Matches(msg, km.Right):
		return keyboard.Key(keyboard.Right)
	case key.Matches(msg, km.Confirm):
		return keyboard.Key(keyboard.Confirm)
	case key.Matches(msg, km.Exit):
		return keyboard.Key(keyboard.Interrupt)
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return keyboard.OtherKey(int(msg.Runes[0]))
	}
	return keyboard.OtherKey(int(msg.Type))
}
