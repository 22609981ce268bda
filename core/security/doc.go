// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package security provides a small wrapper for text typed on the on-screen
// keyboard. It keeps the bytes out of logs and formatted output and lets the
// owner wipe them once they have been persisted.
package security
