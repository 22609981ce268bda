// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil provides scripted test doubles for the keyboard's
// terminal and sink collaborators.
package testutil

import (
	"fmt"
	"strings"

	"github.com/toeirei/keypad/core/keyboard"
)

// Draw is one recorded DrawText call.
type Draw struct {
	Row, Col int
	Text     string
	Deco     keyboard.Decoration
}

// FakeTerminal replays a fixed list of events and records every frame.
// ReadKey panics once the script is exhausted so a missing ENTER fails the
// test instead of hanging it.
type FakeTerminal struct {
	Height, Width int
	// Sizes, if set, is consumed one entry per Size call before falling back
	// to Height and Width. Entries are {height, width}.
	Sizes  [][2]int
	Events []keyboard.Event

	Frames        [][]Draw
	Clears        int
	Reads         int
	CursorVisible bool
	CursorCalls   int

	current []Draw
}

// NewFakeTerminal returns an 80x24 terminal that will replay events.
func NewFakeTerminal(events ...keyboard.Event) *FakeTerminal {
	return &FakeTerminal{Height: 24, Width: 80, Events: events, CursorVisible: true}
}

func (f *FakeTerminal) Clear() {
	f.Clears++
	f.current = nil
}

func (f *FakeTerminal) Size() (int, int) {
	if len(f.Sizes) > 0 {
		s := f.Sizes[0]
		f.Sizes = f.Sizes[1:]
		f.Height, f.Width = s[0], s[1]
	}
	return f.Height, f.Width
}

func (f *FakeTerminal) DrawText(row, col int, text string, deco keyboard.Decoration) {
	f.current = append(f.current, Draw{Row: row, Col: col, Text: text, Deco: deco})
}

func (f *FakeTerminal) Present() {
	f.Frames = append(f.Frames, f.current)
	f.current = nil
}

func (f *FakeTerminal) ReadKey() keyboard.Event {
	if len(f.Events) == 0 {
		panic(fmt.Sprintf("testutil: event script exhausted after %d reads", f.Reads))
	}
	ev := f.Events[0]
	f.Events = f.Events[1:]
	f.Reads++
	return ev
}

func (f *FakeTerminal) SetCursorVisible(visible bool) {
	f.CursorCalls++
	f.CursorVisible = visible
}

// LastFrame returns the most recently presented frame.
func (f *FakeTerminal) LastFrame() []Draw {
	if len(f.Frames) == 0 {
		return nil
	}
	return f.Frames[len(f.Frames)-1]
}

// FrameText joins the text of every draw in frame, in order.
func FrameText(frame []Draw) string {
	var b strings.Builder
	for _, d := range frame {
		b.WriteString(d.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Repeat returns n copies of ev.
func Repeat(ev keyboard.Event, n int) []keyboard.Event {
	out := make([]keyboard.Event, n)
	for i := range out {
		out[i] = ev
	}
	return out
}
