// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/keypad/core/keyboard"
	"github.com/toeirei/keypad/core/layout"
	"github.com/toeirei/keypad/internal/testutil"
)

func script(parts ...[]keyboard.Event) []keyboard.Event {
	var out []keyboard.Event
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func one(kind keyboard.EventKind) []keyboard.Event {
	return []keyboard.Event{keyboard.Key(kind)}
}

func TestRun_EndToEndSingleCharacter(t *testing.T) {
	// (0,0) -> right -> (0,1) -> down x2 -> (2,1) "s" -> confirm,
	// then right x10 to ENTER at (2,11), confirm, and one acknowledgement key.
	events := script(
		one(keyboard.Right),
		testutil.Repeat(keyboard.Key(keyboard.Down), 2),
		one(keyboard.Confirm),
		testutil.Repeat(keyboard.Key(keyboard.Right), 10),
		one(keyboard.Confirm),
		[]keyboard.Event{keyboard.OtherKey('x')},
	)
	term := testutil.NewFakeTerminal(events...)
	sink := &testutil.RecordingSink{Dest: "out.txt"}

	out := keyboard.Run(term, layout.Default(), sink, keyboard.DefaultText())

	if len(sink.Writes) != 1 || sink.Writes[0] != "s" {
		t.Fatalf("expected exactly one write of %q, got %q", "s", sink.Writes)
	}
	if !out.Saved || out.Err != nil || out.Length != 1 || out.Destination != "out.txt" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if term.CursorVisible || term.CursorCalls != 1 {
		t.Fatalf("expected cursor hidden once, got visible=%t calls=%d", term.CursorVisible, term.CursorCalls)
	}
	if len(term.Events) != 0 {
		t.Fatalf("expected all events consumed, %d left", len(term.Events))
	}
	status := testutil.FrameText(term.LastFrame())
	if !strings.Contains(status, "Password saved to out.txt. Exiting.") {
		t.Fatalf("expected success status, got %q", status)
	}
}

func TestRun_PersistFailureIsShownAndNotFatal(t *testing.T) {
	l := layout.Default()
	// ENTER is at (2,11): down twice, right eleven times.
	events := script(
		testutil.Repeat(keyboard.Key(keyboard.Down), 2),
		testutil.Repeat(keyboard.Key(keyboard.Right), 11),
		one(keyboard.Confirm),
		one(keyboard.Confirm),
	)
	term := testutil.NewFakeTerminal(events...)
	sink := &testutil.RecordingSink{Err: errors.New("disk full")}

	out := keyboard.Run(term, l, sink, keyboard.DefaultText())

	if out.Saved || out.Err == nil {
		t.Fatalf("expected failed outcome, got %+v", out)
	}
	if len(sink.Writes) != 1 || sink.Writes[0] != "" {
		t.Fatalf("expected one empty write, got %q", sink.Writes)
	}
	status := testutil.FrameText(term.LastFrame())
	if !strings.Contains(status, "An error occurred: disk full") {
		t.Fatalf("expected error status, got %q", status)
	}
}

func TestRun_SurvivesResize(t *testing.T) {
	events := script(
		testutil.Repeat(keyboard.Key(keyboard.Right), 3),
		testutil.Repeat(keyboard.Key(keyboard.Down), 2),
		testutil.Repeat(keyboard.Key(keyboard.Right), 20),
		one(keyboard.Confirm),
		one(keyboard.Confirm),
	)
	term := testutil.NewFakeTerminal(events...)
	term.Sizes = [][2]int{{24, 80}, {3, 10}, {0, 0}, {1, 1}, {-1, -5}, {100, 300}}
	sink := &testutil.RecordingSink{}

	out := keyboard.Run(term, layout.Default(), sink, keyboard.DefaultText())
	if !out.Saved {
		t.Fatalf("expected commit after resize sequence, got %+v", out)
	}
}

func TestCommit_RequiresCommittedPhase(t *testing.T) {
	s := keyboard.NewState()
	sink := &testutil.RecordingSink{}
	out := keyboard.Commit(s, sink)
	if out.Err == nil || len(sink.Writes) != 0 {
		t.Fatalf("expected refusal without write, got %+v writes=%q", out, sink.Writes)
	}
}

func TestCommit_ZeroesBuffer(t *testing.T) {
	s := keyboard.NewState()
	s.Buffer.Append('p')
	s.Phase = keyboard.Committed
	sink := &testutil.RecordingSink{}
	out := keyboard.Commit(s, sink)
	if !out.Saved || sink.Writes[0] != "p" {
		t.Fatalf("unexpected commit result %+v %q", out, sink.Writes)
	}
	if s.Buffer.Len() != 0 {
		t.Fatalf("expected buffer wiped after commit")
	}
}

func TestStatusMessage_FallsBackToDefaults(t *testing.T) {
	msg := keyboard.StatusMessage(keyboard.Outcome{Saved: true, Destination: "f"}, keyboard.Text{})
	if msg != "Password saved to f. Exiting." {
		t.Fatalf("unexpected message %q", msg)
	}
	msg = keyboard.StatusMessage(keyboard.Outcome{Err: errors.New("x")}, keyboard.Text{})
	if msg != "An error occurred: x" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCheckSurface(t *testing.T) {
	l := layout.Default()
	h, w := keyboard.MinSize(l)
	term := testutil.NewFakeTerminal()
	term.Height, term.Width = h, w
	if err := keyboard.CheckSurface(term, l); err != nil {
		t.Fatalf("expected exact minimum to fit: %v", err)
	}
	term.Width = w - 1
	if err := keyboard.CheckSurface(term, l); !errors.Is(err, keyboard.ErrSurfaceTooSmall) {
		t.Fatalf("expected ErrSurfaceTooSmall, got %v", err)
	}
}

func TestRun_InterruptWritesNothing(t *testing.T) {
	events := script(
		testutil.Repeat(keyboard.Key(keyboard.Confirm), 3),
		one(keyboard.Interrupt),
	)
	term := testutil.NewFakeTerminal(events...)
	sink := &testutil.RecordingSink{}

	out := keyboard.Run(term, layout.Default(), sink, keyboard.DefaultText())
	if !out.Interrupted || !errors.Is(out.Err, keyboard.ErrInterrupted) {
		t.Fatalf("expected interrupted outcome, got %+v", out)
	}
	if len(sink.Writes) != 0 {
		t.Fatalf("expected no writes, got %q", sink.Writes)
	}
}
