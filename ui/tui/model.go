// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keypad/core/keyboard"
	"github.com/toeirei/keypad/core/layout"
	"github.com/toeirei/keypad/internal/logging"
)

const title = "keypad"

// Model adapts the keyboard loop to Bubble Tea. Update is the transition,
// View the render step; the single blocking read is Bubble Tea's own.
type Model struct {
	layout *layout.Layout
	state  *keyboard.LoopState
	sink   keyboard.Sink
	text   keyboard.Text
	keys   KeyMap
	help   help.Model

	width, height int

	status  string // non-empty once committed; waits for one more key
	outcome keyboard.Outcome
	done    bool

	sized bool  // first WindowSizeMsg seen
	err   error // startup failure, e.g. keyboard.ErrSurfaceTooSmall
}

// New returns a model in the Editing phase.
func New(l *layout.Layout, sink keyboard.Sink, txt keyboard.Text) *Model {
	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	return &Model{
		layout: l,
		state:  keyboard.NewState(),
		sink:   sink,
		text:   txt,
		keys:   BaseKeyMap,
		help:   h,
		width:  80,
		height: 24,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(title)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if !m.sized {
			m.sized = true
			// The last line is reserved for help.
			if err := keyboard.CheckSurface(NewCanvas(m.height-1, m.width), m.layout); err != nil {
				m.err = err
				m.done = true
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
		if m.status != "" {
			// Acknowledgement after the status message.
			m.done = true
			return m, tea.Quit
		}
		ev := m.keys.event(msg)
		if ev.Kind == keyboard.Interrupt {
			m.state.Buffer.Zero()
			m.outcome = keyboard.Outcome{Interrupted: true, Err: keyboard.ErrInterrupted, Destination: m.sink.Destination()}
			m.done = true
			return m, tea.Quit
		}
		m.state.Apply(m.layout, ev)
		logging.Debugf("event %s: cursor=%d,%d caps=%t buffer=%s len=%d phase=%s",
			ev, m.state.Cursor.Row, m.state.Cursor.Col, m.state.Caps, m.state.Buffer.Redacted(), m.state.Buffer.Len(), m.state.Phase)
		if m.state.Phase == keyboard.Committed {
			m.outcome = keyboard.Commit(m.state, m.sink)
			m.status = keyboard.StatusMessage(m.outcome, m.text)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.done {
		return ""
	}
	c := NewCanvas(m.height-1, m.width)
	if m.status != "" {
		keyboard.RenderStatus(c, m.status)
		return c.String()
	}
	keyboard.Render(c, m.layout, m.state, m.text)
	return c.String() + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Outcome reports how the session ended. Valid after the program exits.
func (m *Model) Outcome() keyboard.Outcome { return m.outcome }

// Err reports a startup failure; the editing loop never ran when it is set.
func (m *Model) Err() error { return m.err }

// Run starts the program on the alternate screen and blocks until the user
// acknowledges the status message or cancels.
func Run(l *layout.Layout, sink keyboard.Sink, txt keyboard.Text, opts ...tea.ProgramOption) (keyboard.Outcome, error) {
	m := New(l, sink, txt)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return keyboard.Outcome{}, err
	}
	if m.err != nil {
		return keyboard.Outcome{}, m.err
	}
	return m.Outcome(), nil
}
