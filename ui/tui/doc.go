// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui is the Bubble Tea frontend for the on-screen keyboard. It
// drives the same keyboard.LoopState as the tcell backend; presentation and
// key decoding live here, every transition is delegated to core/keyboard.
package tui
