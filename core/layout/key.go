// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package layout

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies what activating a key does.
type Kind int

const (
	// Character appends its rune to the buffer.
	Character Kind = iota
	// Delete removes the last buffer element.
	Delete
	// Commit ends editing.
	Commit
	// ToggleCase flips the caps state.
	ToggleCase
	// Space appends a space.
	Space
	// Reserved keys are shown but do nothing when activated.
	Reserved
)

func (k Kind) String() string {
	switch k {
	case Character:
		return "character"
	case Delete:
		return "delete"
	case Commit:
		return "commit"
	case ToggleCase:
		return "toggle-case"
	case Space:
		return "space"
	case Reserved:
		return "reserved"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Named action tokens.
const (
	TokenDelete = "DEL"
	TokenEnter  = "ENTER"
	TokenCaps   = "CAPS"
	TokenSpace  = "SPACE"
	TokenTab    = "TAB"
	TokenEsc    = "ESC"
	TokenCtrl   = "CTRL"
	TokenAlt    = "ALT"
	TokenBack   = "BACK"
)

var namedKinds = map[string]Kind{
	TokenDelete: Delete,
	TokenEnter:  Commit,
	TokenCaps:   ToggleCase,
	TokenSpace:  Space,
	// BACK is a no-op, not a DEL alias.
	TokenBack: Reserved,
	TokenTab:  Reserved,
	TokenEsc:  Reserved,
	TokenCtrl: Reserved,
	TokenAlt:  Reserved,
}

// Key is one cell of the layout.
type Key struct {
	Kind  Kind
	Label string
	Rune  rune // set for Character keys only
}

// ParseKey resolves token text into a Key.
func ParseKey(token string) (Key, error) {
	if kind, ok := namedKinds[token]; ok {
		return Key{Kind: kind, Label: token}, nil
	}
	if utf8.RuneCountInString(token) != 1 {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	r, _ := utf8.DecodeRuneInString(token)
	if !unicode.IsPrint(r) {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return Key{Kind: Character, Label: token, Rune: r}, nil
}

// IsLetter reports whether the key is a single alphabetic character.
func (k Key) IsLetter() bool {
	return k.Kind == Character && unicode.IsLetter(k.Rune)
}

// Display returns the label as it should be drawn for the given caps state.
func (k Key) Display(caps bool) string {
	if caps && k.IsLetter() {
		return strings.ToUpper(k.Label)
	}
	return k.Label
}

// Char returns the rune appended to the buffer when the key is activated.
func (k Key) Char(caps bool) rune {
	if caps && k.IsLetter() {
		return unicode.ToUpper(k.Rune)
	}
	return k.Rune
}
