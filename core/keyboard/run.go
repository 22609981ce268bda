// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package keyboard

import (
	"errors"
	"fmt"

	"github.com/toeirei/keypad/core/layout"
	"github.com/toeirei/keypad/internal/logging"
)

// ErrSurfaceTooSmall is returned by CheckSurface when the layout cannot be
// drawn on the terminal at startup.
var ErrSurfaceTooSmall = errors.New("terminal too small for keyboard layout")

// ErrInterrupted is reported in Outcome.Err when the session was abandoned
// before commit. Nothing is written in that case.
var ErrInterrupted = errors.New("input interrupted")

// Terminal is the full terminal collaborator used by Run.
type Terminal interface {
	Surface
	// ReadKey blocks until one key event is available.
	ReadKey() Event
	SetCursorVisible(visible bool)
}

// Sink persists the committed buffer. Write overwrites any previous content.
type Sink interface {
	Write(text string) error
	Destination() string
}

// Outcome reports how a session ended.
type Outcome struct {
	Saved       bool
	Interrupted bool
	Err         error
	Length      int
	Destination string
}

// MinSize returns the smallest (height, width) that fits the prompt, mask
// and grid of l.
func MinSize(l *layout.Layout) (int, int) {
	return gridTop + l.RowCount(), gridLeft + l.Width()
}

// CheckSurface fails when sf is smaller than MinSize(l).
func CheckSurface(sf Surface, l *layout.Layout) error {
	h, w := sf.Size()
	needH, needW := MinSize(l)
	if h < needH || w < needW {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrSurfaceTooSmall, w, h, needW, needH)
	}
	return nil
}

// Run drives the render, read, transition cycle until the ENTER key is
// activated, then persists the buffer once and waits for a final key.
func Run(term Terminal, l *layout.Layout, sink Sink, txt Text) Outcome {
	term.SetCursorVisible(false)
	s := NewState()
	for s.Phase == Editing {
		Render(term, l, s, txt)
		ev := term.ReadKey()
		if ev.Kind == Interrupt {
			s.Buffer.Zero()
			logging.Infof("session interrupted before commit")
			return Outcome{Interrupted: true, Err: ErrInterrupted, Destination: sink.Destination()}
		}
		s.Apply(l, ev)
		logging.Debugf("event %s: cursor=%d,%d caps=%t buffer=%s len=%d phase=%s",
			ev, s.Cursor.Row, s.Cursor.Col, s.Caps, s.Buffer.Redacted(), s.Buffer.Len(), s.Phase)
	}
	out := Commit(s, sink)
	RenderStatus(term, StatusMessage(out, txt))
	term.ReadKey()
	return out
}

// Commit writes the buffer to sink exactly once and wipes it afterwards.
// It must only be called in the Committed phase.
func Commit(s *LoopState, sink Sink) Outcome {
	out := Outcome{Length: s.Buffer.Len(), Destination: sink.Destination()}
	if s.Phase != Committed {
		out.Err = errors.New("commit outside committed phase")
		return out
	}
	out.Err = sink.Write(s.Buffer.Reveal())
	out.Saved = out.Err == nil
	s.Buffer.Zero()
	if out.Err != nil {
		logging.Warnf("persisting input to %s failed: %v", out.Destination, out.Err)
	} else {
		logging.Infof("persisted %d characters to %s", out.Length, out.Destination)
	}
	return out
}

// StatusMessage picks the success or failure text for out.
func StatusMessage(out Outcome, txt Text) string {
	def := DefaultText()
	if out.Err != nil {
		if txt.Failed == nil {
			return def.Failed(out.Err)
		}
		return txt.Failed(out.Err)
	}
	if txt.Saved == nil {
		return def.Saved(out.Destination)
	}
	return txt.Saved(out.Destination)
}
