// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package keyboard implements the on-screen keyboard interaction loop: a
// single-threaded state machine that renders a key layout and a masked
// buffer through a Terminal, blocks for one key event at a time and applies
// it as cursor movement or buffer mutation until the ENTER key commits.
//
// The loop owns no globals. LoopState is created by Run and passed by
// pointer through Render and Apply.
package keyboard
