// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keypad.
//
// Usage:
//
//	go run . [flags]
//	./keypad [flags]
//
// This launches the on-screen keyboard. See --help for options.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/keypad/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		code := cli.ExitCode(err)
		if code != 130 {
			fmt.Fprintln(os.Stderr, cli.ErrorMessage(err))
		}
		os.Exit(code)
	}
}
