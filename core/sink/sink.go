// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sink persists the text committed on the on-screen keyboard. Every
// sink performs a single overwrite-or-create write; there is no read path.
package sink // import "github.com/toeirei/keypad/core/sink"

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultPath is where the file sink writes when no path is configured.
const DefaultPath = "temp_password.txt"

// Sink kinds accepted by New.
const (
	KindFile      = "file"
	KindClipboard = "clipboard"
)

// ErrUnknownSink is returned by New for unsupported kinds.
var ErrUnknownSink = errors.New("unknown sink")

// Sink is implemented by every persistence target.
type Sink interface {
	Write(text string) error
	Destination() string
}

// New returns the sink for kind. path is only used by the file sink and
// falls back to DefaultPath when empty.
func New(kind, path string) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindFile:
		if path == "" {
			path = DefaultPath
		}
		return &FileSink{Path: path, Mode: 0o600}, nil
	case KindClipboard:
		return &ClipboardSink{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, kind)
	}
}

// FileSink writes the text to Path, truncating any existing content.
type FileSink struct {
	Path string
	Mode os.FileMode
}

func (s *FileSink) Write(text string) error {
	mode := s.Mode
	if mode == 0 {
		mode = 0o600
	}
	if err := os.WriteFile(s.Path, []byte(text), mode); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileSink) Destination() string { return s.Path }

// ErrNoClipboard is returned when no clipboard utility is available.
var ErrNoClipboard = errors.New("no clipboard utility available")

// clipboardWrite is swapped in tests; CI machines rarely have a clipboard.
var clipboardWrite = func(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

// ClipboardSink copies the text to the system clipboard.
type ClipboardSink struct{}

func (ClipboardSink) Write(text string) error {
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

func (ClipboardSink) Destination() string { return KindClipboard }
