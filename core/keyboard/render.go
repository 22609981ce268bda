// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

import (
	"strings"
	"unicode/utf8"

	"github.com/toeirei/keypad/core/layout"
)

// Decoration flags passed to Surface.DrawText.
type Decoration uint8

const (
	// Emphasis marks the key under the cursor.
	Emphasis Decoration = 1 << iota
	// Active marks the CAPS key while caps is on.
	Active

	Plain Decoration = 0
)

// Screen positions, in cells.
const (
	promptRow = 1
	maskRow   = 3
	gridTop   = 5
	gridLeft  = 5
)

// Surface is the drawing half of the terminal collaborator.
type Surface interface {
	Clear()
	// Size returns the current (height, width). It may change between frames.
	Size() (int, int)
	DrawText(row, col int, text string, deco Decoration)
	Present()
}

// Text holds the user-visible strings of the loop, already localized.
type Text struct {
	Prompt string
	Mask   rune
	Saved  func(dest string) string
	Failed func(err error) string
}

// DefaultText returns the built-in English strings.
func DefaultText() Text {
	return Text{
		Prompt: "Please enter your password:",
		Mask:   '*',
		Saved:  func(dest string) string { return "Password saved to " + dest + ". Exiting." },
		Failed: func(err error) string { return "An error occurred: " + err.Error() },
	}
}

// Render draws one frame: prompt, masked buffer and the key grid.
func Render(sf Surface, l *layout.Layout, s *LoopState, txt Text) {
	sf.Clear()
	c := newClip(sf)

	c.centered(promptRow, txt.Prompt)
	mask := txt.Mask
	if mask == 0 {
		mask = '*'
	}
	c.centered(maskRow, strings.Repeat(string(mask), s.Buffer.Len()))

	for i := 0; i < l.RowCount(); i++ {
		x := gridLeft
		for j, k := range l.Row(i) {
			label := k.Display(s.Caps)
			var deco Decoration
			if k.Kind == layout.ToggleCase && s.Caps {
				deco |= Active
			}
			var cell string
			if s.Cursor.Row == i && s.Cursor.Col == j {
				deco |= Emphasis
				cell = " *" + label + "* "
			} else {
				cell = " " + label + " "
			}
			c.draw(gridTop+i, x, cell, deco)
			x += utf8.RuneCountInString(cell)
		}
	}
	sf.Present()
}

// RenderStatus clears the surface and shows msg centered at mid-height.
func RenderStatus(sf Surface, msg string) {
	sf.Clear()
	c := newClip(sf)
	c.centered(c.h/2, msg)
	sf.Present()
}

// clip drops text that falls outside the measured surface so backends never
// see out-of-range coordinates.
type clip struct {
	sf   Surface
	h, w int
}

func newClip(sf Surface) clip {
	h, w := sf.Size()
	return clip{sf: sf, h: max(0, h), w: max(0, w)}
}

func (c clip) centered(row int, text string) {
	c.draw(row, c.w/2-utf8.RuneCountInString(text)/2, text, Plain)
}

func (c clip) draw(row, col int, text string, deco Decoration) {
	if row < 0 || row >= c.h || text == "" {
		return
	}
	runes := []rune(text)
	if col < 0 {
		if -col >= len(runes) {
			return
		}
		runes = runes[-col:]
		col = 0
	}
	if col >= c.w {
		return
	}
	if col+len(runes) > c.w {
		runes = runes[:c.w-col]
	}
	c.sf.DrawText(row, col, string(runes), deco)
}
