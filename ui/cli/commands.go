// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/keypad/internal/config"
	"github.com/toeirei/keypad/internal/i18n"
	"github.com/toeirei/keypad/internal/logging"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, env and flags",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- KEYPAD DEBUG ---")

			b, err := json.MarshalIndent(appConfig, "", "  ")
			if err != nil {
				logging.Errorf("could not marshal config: %v", err)
			} else {
				fmt.Fprintln(out, "-- effective config --")
				fmt.Fprintln(out, string(b))
			}
			fmt.Fprintf(out, "language in use: %s (available: %s)\n", i18n.Lang(), strings.Join(i18n.Available(), ", "))

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (KEYPAD_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "KEYPAD_") {
					fmt.Fprintln(out, e)
				}
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the keypad configuration file",
	}
	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to keypad.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return fmt.Errorf("could not write config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")
	cmd.AddCommand(initCmd)
	return cmd
}
