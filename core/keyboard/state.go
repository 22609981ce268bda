// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

import (
	"github.com/toeirei/keypad/core/layout"
	"github.com/toeirei/keypad/core/security"
)

// Phase is the loop's state machine position.
type Phase int

const (
	// Editing accepts navigation and edits.
	Editing Phase = iota
	// Committed is terminal; the buffer is ready to persist.
	Committed
)

func (p Phase) String() string {
	if p == Committed {
		return "committed"
	}
	return "editing"
}

// LoopState is everything the interaction loop mutates.
type LoopState struct {
	Cursor layout.Cursor
	Buffer security.Secret
	Caps   bool
	Phase  Phase
}

// NewState returns the initial state: cursor at (0,0), empty buffer, caps off.
func NewState() *LoopState {
	return &LoopState{}
}

// Apply performs the transition for one event. Events received after commit
// are ignored.
func (s *LoopState) Apply(l *layout.Layout, ev Event) {
	if s.Phase != Editing {
		return
	}
	switch ev.Kind {
	case Up:
		s.moveRow(l, s.Cursor.Row-1)
	case Down:
		s.moveRow(l, s.Cursor.Row+1)
	case Left:
		s.Cursor.Col = max(0, s.Cursor.Col-1)
	case Right:
		s.Cursor.Col = min(l.ColumnCount(s.Cursor.Row)-1, s.Cursor.Col+1)
	case Confirm:
		s.activate(l.At(s.Cursor))
	}
}

// moveRow clamps the row into the layout, then clamps the column into the
// new row. Columns are not remapped proportionally.
func (s *LoopState) moveRow(l *layout.Layout, row int) {
	s.Cursor.Row = min(l.RowCount()-1, max(0, row))
	s.Cursor.Col = min(l.ColumnCount(s.Cursor.Row)-1, s.Cursor.Col)
}

func (s *LoopState) activate(k layout.Key) {
	switch k.Kind {
	case layout.Commit:
		s.Phase = Committed
	case layout.Delete:
		s.Buffer.TrimLast()
	case layout.ToggleCase:
		s.Caps = !s.Caps
	case layout.Space:
		s.Buffer.Append(' ')
	case layout.Reserved:
	case layout.Character:
		s.Buffer.Append(k.Char(s.Caps))
	}
}
