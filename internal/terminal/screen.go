// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package terminal adapts a tcell screen to the keyboard's Terminal
// collaborator. The screen is owned exclusively by one Screen value and must
// be released with Close on every exit path.
package terminal // import "github.com/toeirei/keypad/internal/terminal"

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/toeirei/keypad/core/keyboard"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin or stdout is not a TTY.
var ErrNotTerminal = errors.New("not running in a terminal")

// ResizeCode is the Other event code reported after the terminal is resized.
// The loop treats it as a no-op and simply redraws.
const ResizeCode = -1

// Screen implements keyboard.Terminal on top of tcell.
type Screen struct {
	screen tcell.Screen
	once   sync.Once
}

// Open initializes the controlling terminal.
func Open() (*Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return OpenWith(sc)
}

// OpenWith initializes an existing tcell screen, e.g. a simulation screen.
func OpenWith(sc tcell.Screen) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &Screen{screen: sc}, nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.once.Do(s.screen.Fini)
}

func (s *Screen) Clear() { s.screen.Clear() }

// Size returns (height, width); tcell reports them the other way round.
func (s *Screen) Size() (int, int) {
	w, h := s.screen.Size()
	return h, w
}

func (s *Screen) DrawText(row, col int, text string, deco keyboard.Decoration) {
	style := styleFor(deco)
	x := col
	for _, r := range text {
		s.screen.SetContent(x, row, r, nil, style)
		x++
	}
}

func (s *Screen) Present() { s.screen.Show() }

func (s *Screen) SetCursorVisible(visible bool) {
	if !visible {
		s.screen.HideCursor()
	}
}

// ReadKey blocks for the next key press. Resizes resync the screen and are
// reported as Other(ResizeCode) so the caller redraws.
func (s *Screen) ReadKey() keyboard.Event {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// PollEvent returns nil once the screen has been finalized.
			return keyboard.Key(keyboard.Interrupt)
		case *tcell.EventResize:
			s.screen.Sync()
			return keyboard.OtherKey(ResizeCode)
		case *tcell.EventKey:
			return translate(ev)
		}
	}
}

func translate(ev *tcell.EventKey) keyboard.Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return keyboard.Key(keyboard.Up)
	case tcell.KeyDown:
		return keyboard.Key(keyboard.Down)
	case tcell.KeyLeft:
		return keyboard.Key(keyboard.Left)
	case tcell.KeyRight:
		return keyboard.Key(keyboard.Right)
	case tcell.KeyEnter, tcell.KeyLF:
		return keyboard.Key(keyboard.Confirm)
	case tcell.KeyCtrlC:
		return keyboard.Key(keyboard.Interrupt)
	case tcell.KeyRune:
		return keyboard.OtherKey(int(ev.Rune()))
	default:
		return keyboard.OtherKey(int(ev.Key()))
	}
}

func styleFor(deco keyboard.Decoration) tcell.Style {
	style := tcell.StyleDefault
	if deco&keyboard.Emphasis != 0 {
		style = style.Reverse(true)
	}
	if deco&keyboard.Active != 0 {
		style = style.Bold(true).Foreground(tcell.ColorOrange)
	}
	return style
}
