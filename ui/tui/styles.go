// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keypad/core/keyboard"
)

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle  = lipgloss.Color("240") // Muted gray
	colorSpecial = lipgloss.Color("208") // Orange, used for an active CAPS key
)

var (
	plainStyle = lipgloss.NewStyle()

	// Key under the cursor
	emphasisStyle = lipgloss.NewStyle().Reverse(true)

	// CAPS while caps is on
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSpecial)

	activeEmphasisStyle = activeStyle.Reverse(true)

	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)
)

func styleFor(deco keyboard.Decoration) lipgloss.Style {
	switch {
	case deco&keyboard.Emphasis != 0 && deco&keyboard.Active != 0:
		return activeEmphasisStyle
	case deco&keyboard.Emphasis != 0:
		return emphasisStyle
	case deco&keyboard.Active != 0:
		return activeStyle
	default:
		return plainStyle
	}
}
