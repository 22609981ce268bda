// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package testutil

// RecordingSink captures every write instead of touching disk.
type RecordingSink struct {
	Writes []string
	Err    error
	Dest   string
}

func (s *RecordingSink) Write(text string) error {
	s.Writes = append(s.Writes, text)
	return s.Err
}

func (s *RecordingSink) Destination() string {
	if s.Dest == "" {
		return "memory"
	}
	return s.Dest
}
