// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads keypad settings from defaults, an optional YAML file,
// KEYPAD_* environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full set of user-tunable settings. Every field has a default
// so keypad runs without any file or flag.
type Config struct {
	Language string       `mapstructure:"language" yaml:"language"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
	UI       UIConfig     `mapstructure:"ui" yaml:"ui"`
	Log      LogConfig    `mapstructure:"log" yaml:"log"`
}

// OutputConfig selects where the committed text goes.
type OutputConfig struct {
	Sink string `mapstructure:"sink" yaml:"sink"`
	Path string `mapstructure:"path" yaml:"path"`
}

// UIConfig selects the terminal backend and mask rune.
type UIConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Mask    string `mapstructure:"mask" yaml:"mask"`
}

// LogConfig controls diagnostics. Logs never go to the terminal while the
// keyboard owns it.
type LogConfig struct {
	File    string `mapstructure:"file" yaml:"file"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// Defaults returns the viper defaults map.
func Defaults() map[string]any {
	return map[string]any{
		"language":    "en",
		"output.sink": "file",
		"output.path": "temp_password.txt",
		"ui.backend":  "tcell",
		"ui.mask":     "*",
		"log.file":    "",
		"log.verbose": false,
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keypad")
		default: // Linux, macOS, etc.
			configDir = "/etc/keypad"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keypad")
	}

	return filepath.Join(configDir, "keypad.yaml"), nil
}

// LoadConfig layers defaults, the first keypad.yaml found, KEYPAD_* env and
// the flags of cmd into a T. A missing config file is reported as
// viper.ConfigFileNotFoundError alongside a fully populated value.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("keypad")
	v.SetConfigType("yaml")

	// 3. An explicit --config path has the highest precedence for files.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 4. Read in the primary config file. Not finding one is fine.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if used := v.ConfigFileUsed(); used != "" {
		if info, statErr := os.Stat(used); statErr == nil && info.Size() == 0 {
			// An empty candidate behaves like no file at all.
			notFound = viper.ConfigFileNotFoundError{}
		}
	}

	// 5. Environment variables
	v.SetEnvPrefix("keypad")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 6. Flags
	if cmd != nil {
		if err := bindFlags(v, cmd); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"language": "language",
	"output":   "output.path",
	"sink":     "output.sink",
	"backend":  "ui.backend",
	"mask":     "ui.mask",
	"log-file": "log.file",
	"verbose":  "log.verbose",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// WriteConfigFile writes c to the user (or system) config path, creating the
// directory if needed.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
