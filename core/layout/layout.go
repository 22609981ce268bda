// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package layout defines the static key grid shown by the on-screen keyboard.
// A Layout is built once and never mutated; every token is resolved into a
// tagged Key when the layout is constructed.
package layout // import "github.com/toeirei/keypad/core/layout"

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrEmptyLayout is returned when a layout has no rows.
	ErrEmptyLayout = errors.New("layout has no rows")
	// ErrEmptyRow is returned when a row has no tokens.
	ErrEmptyRow = errors.New("layout row has no keys")
	// ErrUnknownToken is returned for multi-character tokens that are not a
	// known named action.
	ErrUnknownToken = errors.New("unknown key token")
)

// Cursor is a (row, column) position in a layout.
type Cursor struct {
	Row int
	Col int
}

// Layout is an immutable grid of keys. Rows may differ in length.
type Layout struct {
	rows [][]Key
}

// defaultRows is a GRUB-style QWERTY grid.
var defaultRows = [][]string{
	{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "DEL", "ESC"},
	{"TAB", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", "\\", "CAPS"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'", "ENTER"},
	{"z", "x", "c", "v", "b", "n", "m", ",", ".", "/"},
	{"CTRL", "ALT", "SPACE", "BACK"},
}

// New builds a layout from token text. Each row must hold at least one token.
func New(rows [][]string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}
	l := &Layout{rows: make([][]Key, len(rows))}
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrEmptyRow)
		}
		keys := make([]Key, len(row))
		for j, token := range row {
			k, err := ParseKey(token)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			keys[j] = k
		}
		l.rows[i] = keys
	}
	return l, nil
}

// Default returns the built-in QWERTY layout.
func Default() *Layout {
	l, err := New(defaultRows)
	if err != nil {
		// defaultRows is static data; a failure here is a programming error.
		panic(err)
	}
	return l
}

// RowCount returns the number of rows.
func (l *Layout) RowCount() int { return len(l.rows) }

// ColumnCount returns the number of keys in row i.
func (l *Layout) ColumnCount(i int) int { return len(l.rows[i]) }

// Row returns a copy of the keys in row i.
func (l *Layout) Row(i int) []Key {
	out := make([]Key, len(l.rows[i]))
	copy(out, l.rows[i])
	return out
}

// At returns the key under the cursor. The cursor must be in range.
func (l *Layout) At(c Cursor) Key { return l.rows[c.Row][c.Col] }

// Width returns the widest rendered row in cells, assuming one key is drawn
// with the cursor decoration (two extra cells).
func (l *Layout) Width() int {
	widest := 0
	for _, row := range l.rows {
		w := 0
		for _, k := range row {
			w += utf8.RuneCountInString(k.Label) + 3
		}
		if w+2 > widest {
			widest = w + 2
		}
	}
	return widest
}
