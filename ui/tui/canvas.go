// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/toeirei/keypad/core/keyboard"
)

type cell struct {
	r    rune
	deco keyboard.Decoration
}

// Canvas is an in-memory keyboard.Surface. keyboard.Render draws into it and
// String turns the cells into a styled frame for View.
type Canvas struct {
	height, width int
	cells         [][]cell
}

// NewCanvas returns a blank canvas. Negative sizes are treated as zero.
func NewCanvas(height, width int) *Canvas {
	c := &Canvas{height: max(0, height), width: max(0, width)}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	c.cells = make([][]cell, c.height)
	for i := range c.cells {
		row := make([]cell, c.width)
		for j := range row {
			row[j] = cell{r: ' '}
		}
		c.cells[i] = row
	}
}

func (c *Canvas) Size() (int, int) { return c.height, c.width }

func (c *Canvas) DrawText(row, col int, text string, deco keyboard.Decoration) {
	if row < 0 || row >= c.height {
		return
	}
	x := col
	for _, r := range text {
		if x >= 0 && x < c.width {
			c.cells[row][x] = cell{r: r, deco: deco}
		}
		x++
	}
}

// Present is a no-op; Bubble Tea flushes whatever View returns.
func (c *Canvas) Present() {}

// Plain returns the canvas text without styling, trailing blanks trimmed.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for i, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// String renders each run of equally decorated cells with its lipgloss style.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for i, row := range c.cells {
		var b, run strings.Builder
		var deco keyboard.Decoration
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if deco == keyboard.Plain {
				b.WriteString(run.String())
			} else {
				b.WriteString(styleFor(deco).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.deco != deco {
				flush()
				deco = cl.deco
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
