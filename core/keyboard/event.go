// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

import "fmt"

// EventKind identifies a decoded input event.
type EventKind int

const (
	// Other is any key the loop does not react to.
	Other EventKind = iota
	Up
	Down
	Left
	Right
	// Confirm activates the key under the cursor.
	Confirm
	// Interrupt abandons the session without persisting (Ctrl-C, or the
	// backend shutting down).
	Interrupt
)

func (k EventKind) String() string {
	switch k {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Confirm:
		return "confirm"
	case Interrupt:
		return "interrupt"
	default:
		return "other"
	}
}

// Event is one decoded key press. Code carries the backend's raw key code
// for Other events and is informational only.
type Event struct {
	Kind EventKind
	Code int
}

// Key builds an event of the given kind.
func Key(kind EventKind) Event { return Event{Kind: kind} }

// OtherKey builds an event for an unrecognized key code.
func OtherKey(code int) Event { return Event{Kind: Other, Code: code} }

func (e Event) String() string {
	if e.Kind == Other {
		return fmt.Sprintf("other(%d)", e.Code)
	}
	return e.Kind.String()
}
