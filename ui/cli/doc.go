// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Keypad using Cobra.
// It wires configuration, logging and i18n, then hands control to the
// keyboard loop on the configured terminal backend. CLI code stays thin and
// delegates all input handling to `core/keyboard`.
package cli
