// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"fmt"
	"io"
	"unicode/utf8"
)

const redacted = "[SECRET]"

// Secret is a thin wrapper around a UTF-8 byte slice intended to hold
// sensitive input (passwords, passphrases). It implements redaction helpers
// so accidental formatting does not reveal data.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter to ensure `%v`, `%#v` and friends are redacted.
func (s Secret) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, redacted)
}

// Len returns the number of characters (runes) held.
func (s Secret) Len() int { return utf8.RuneCount(s) }

// minCap is the smallest backing array Append allocates.
const minCap = 64

// Append adds one character to the end of the secret. When the backing array
// has to grow, the old one is zeroed so no stale prefix stays in memory.
func (s *Secret) Append(r rune) {
	need := len(*s) + utf8.UTFMax
	if need > cap(*s) {
		grown := make([]byte, len(*s), max(minCap, 2*cap(*s), need))
		copy(grown, *s)
		old := (*s)[:cap(*s)]
		for i := range old {
			old[i] = 0
		}
		*s = grown
	}
	*s = utf8.AppendRune(*s, r)
}

// TrimLast removes the last character. It reports false if the secret was
// already empty. The removed bytes are zeroed before the slice shrinks.
func (s *Secret) TrimLast() bool {
	if s == nil || len(*s) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(*s)
	n := len(*s) - size
	for i := n; i < len(*s); i++ {
		(*s)[i] = 0
	}
	*s = (*s)[:n]
	return true
}

// Reveal returns the plain text. Only persistence code should call it.
func (s Secret) Reveal() string { return string(s) }

// Zero overwrites the underlying byte slice with zeros and empties it.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = 0
	}
	*s = (*s)[:0]
}

// Redacted returns a short human-readable placeholder useful for logs.
func (s Secret) Redacted() string { return redacted }
