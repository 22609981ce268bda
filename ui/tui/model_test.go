// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keypad/core/keyboard"
	"github.com/toeirei/keypad/core/layout"
	"github.com/toeirei/keypad/internal/testutil"
)

func press(t *testing.T, m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var mi tea.Model
		mi, cmd = m.Update(msg)
		if mi.(*Model) != m {
			t.Fatalf("Update must return the same model")
		}
	}
	return cmd
}

func keys(kt tea.KeyType, n int) []tea.KeyMsg {
	out := make([]tea.KeyMsg, n)
	for i := range out {
		out[i] = tea.KeyMsg{Type: kt}
	}
	return out
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_CommitWritesOnceAndQuitsAfterAck(t *testing.T) {
	sink := &testutil.RecordingSink{Dest: "pw.txt"}
	m := New(layout.Default(), sink, keyboard.DefaultText())

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	press(t, m, keys(tea.KeyDown, 2)...)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, keys(tea.KeyRight, 10)...)
	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter}); isQuit(cmd) {
		t.Fatalf("must wait for acknowledgement before quitting")
	}

	if len(sink.Writes) != 1 || sink.Writes[0] != "s" {
		t.Fatalf("expected one write of %q, got %q", "s", sink.Writes)
	}
	if !strings.Contains(m.View(), "Password saved to pw.txt. Exiting.") {
		t.Fatalf("expected status in view, got:\n%s", m.View())
	}

	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}); !isQuit(cmd) {
		t.Fatalf("expected quit after acknowledgement")
	}
	if len(sink.Writes) != 1 {
		t.Fatalf("acknowledgement must not write again, got %q", sink.Writes)
	}
	if !m.Outcome().Saved {
		t.Fatalf("expected saved outcome, got %+v", m.Outcome())
	}
}

func TestModel_CtrlCCancels(t *testing.T) {
	sink := &testutil.RecordingSink{}
	m := New(layout.Default(), sink, keyboard.DefaultText())
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatalf("expected quit on ctrl+c")
	}
	if len(sink.Writes) != 0 || !m.Outcome().Interrupted {
		t.Fatalf("expected interrupted outcome without writes, got %+v %q", m.Outcome(), sink.Writes)
	}
}

func TestModel_ViewShowsMaskAndGrid(t *testing.T) {
	m := New(layout.Default(), &testutil.RecordingSink{}, keyboard.DefaultText())
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})

	c := NewCanvas(m.height-1, m.width)
	keyboard.Render(c, m.layout, m.state, m.text)
	lines := strings.Split(c.Plain(), "\n")
	if strings.TrimSpace(lines[3]) != "**" {
		t.Fatalf("expected two mask characters, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[5], "      *`*  1  2") {
		t.Fatalf("unexpected first grid row %q", lines[5])
	}
}

func TestModel_ShrinkAfterStartIsTolerated(t *testing.T) {
	m := New(layout.Default(), &testutil.RecordingSink{}, keyboard.DefaultText())
	for _, sz := range []tea.WindowSizeMsg{{Width: 200, Height: 60}, {Width: 5, Height: 2}, {Width: 0, Height: 0}} {
		if _, cmd := m.Update(sz); isQuit(cmd) {
			t.Fatalf("resize to %+v after startup must not quit", sz)
		}
		_ = m.View()
	}
	if m.Err() != nil {
		t.Fatalf("unexpected startup error %v", m.Err())
	}
}

func TestModel_TooSmallAtStartupFails(t *testing.T) {
	sink := &testutil.RecordingSink{}
	m := New(layout.Default(), sink, keyboard.DefaultText())

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 10, Height: 3})
	if !isQuit(cmd) {
		t.Fatalf("expected quit on a surface smaller than the layout")
	}
	if !errors.Is(m.Err(), keyboard.ErrSurfaceTooSmall) {
		t.Fatalf("expected ErrSurfaceTooSmall, got %v", m.Err())
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state.Buffer.Len() != 0 || m.state.Phase != keyboard.Editing || len(sink.Writes) != 0 {
		t.Fatalf("editing loop must not run, got len=%d phase=%s writes=%q",
			m.state.Buffer.Len(), m.state.Phase, sink.Writes)
	}
}

func TestModel_ExactMinimumSizeStarts(t *testing.T) {
	l := layout.Default()
	m := New(l, &testutil.RecordingSink{}, keyboard.DefaultText())
	h, w := keyboard.MinSize(l)
	// One extra line for the help view.
	if _, cmd := m.Update(tea.WindowSizeMsg{Width: w, Height: h + 1}); isQuit(cmd) {
		t.Fatalf("minimum size must be accepted, got %v", m.Err())
	}
}

func TestModel_UnknownKeysAreIgnored(t *testing.T) {
	m := New(layout.Default(), &testutil.RecordingSink{}, keyboard.DefaultText())
	press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, tea.KeyMsg{Type: tea.KeyTab})
	if m.state.Buffer.Len() != 0 || m.state.Cursor != (layout.Cursor{}) {
		t.Fatalf("expected no change, got %+v", m.state.Cursor)
	}
}

func TestCanvas_ClipsAndStyles(t *testing.T) {
	c := NewCanvas(2, 4)
	c.DrawText(0, -1, "abcdef", keyboard.Emphasis)
	c.DrawText(5, 0, "zz", keyboard.Plain)
	if got := c.Plain(); got != "bcde\n" {
		t.Fatalf("unexpected canvas %q", got)
	}
	if h, w := NewCanvas(-3, -1).Size(); h != 0 || w != 0 {
		t.Fatalf("expected empty canvas, got %dx%d", w, h)
	}
}
