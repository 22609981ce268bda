// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Keypad using the
// Cobra library. It defines the root command, which runs the on-screen
// keyboard, its flags and the small set of helper subcommands.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keypad/buildvars"
	"github.com/toeirei/keypad/core/keyboard"
	"github.com/toeirei/keypad/core/layout"
	"github.com/toeirei/keypad/core/sink"
	"github.com/toeirei/keypad/internal/config"
	"github.com/toeirei/keypad/internal/i18n"
	"github.com/toeirei/keypad/internal/logging"
	"github.com/toeirei/keypad/internal/terminal"
	"github.com/toeirei/keypad/ui/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var showVersionFlag bool

var appConfig config.Config

// logCloser is the open log file, if any.
var logCloser io.Closer

// Backend names accepted by --backend.
const (
	backendTcell     = "tcell"
	backendBubbletea = "bubbletea"
)

// ErrInterrupted is returned when the user cancels before committing.
var ErrInterrupted = errors.New("cancelled")

// errVersionPrinted stops the command chain after -V; Execute reports success.
var errVersionPrinted = errors.New("version printed")

// ErrUnknownBackend is returned for an unsupported --backend value.
var ErrUnknownBackend = errors.New("unknown backend")

// initError carries the localized startup message while keeping the cause
// available to errors.Is.
type initError struct {
	msg string
	err error
}

func (e initError) Error() string { return e.msg }
func (e initError) Unwrap() error { return e.err }

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

// runSession is swapped in tests so the root command can run without a TTY.
var runSession = runKeyboard

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A "file not found" error is expected; keypad runs on defaults.
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(appConfig.Language)

	logging.SetDebug(appConfig.Log.Verbose)
	if appConfig.Log.File != "" {
		c, err := logging.OpenFile(appConfig.Log.File)
		if err != nil {
			return err
		}
		logCloser = c
	} else {
		// The keyboard owns the terminal; stray log lines would corrupt it.
		logging.SetOutput(io.Discard)
	}
	logging.Debugf("config loaded: sink=%s backend=%s lang=%s", appConfig.Output.Sink, appConfig.UI.Backend, i18n.Lang())
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	}()
	err := NewRootCmd().Execute()
	if errors.Is(err, errVersionPrinted) {
		return nil
	}
	return err
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInterrupted):
		return 130
	default:
		return 1
	}
}

// ErrorMessage renders err for the user. Startup failures already carry a
// localized message; anything else is wrapped in the generic one.
func ErrorMessage(err error) string {
	var ie initError
	if errors.As(err, &ie) {
		return ie.Error()
	}
	return i18n.T("error.unexpected", err)
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keypad",
		Short: "On-screen keyboard for masked terminal input",
		Long: `Keypad shows a keyboard inside the terminal. Move between keys with
the arrow keys and press Enter to type the highlighted key. Typed text is
shown masked. Activating ENTER on the keyboard writes the text to the
configured sink (a file by default) and exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				return errVersionPrinted
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, appConfig)
		},
	}

	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging (to --log-file)")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	cmd.Flags().StringP("output", "o", sink.DefaultPath, "File the entered text is written to")
	cmd.Flags().String("sink", sink.KindFile, `Where to put the entered text ("file", "clipboard")`)
	cmd.Flags().String("backend", backendTcell, `Terminal backend ("tcell", "bubbletea")`)
	cmd.Flags().String("mask", "*", "Character shown for each typed character")

	cmd.AddCommand(newVersionCmd(), newDebugCmd(), newConfigCmd())
	return cmd
}

// runKeyboard runs one keyboard session with the loaded configuration.
func runKeyboard(cmd *cobra.Command, c config.Config) error {
	l := layout.Default()
	s, err := sink.New(c.Output.Sink, c.Output.Path)
	if err != nil {
		return err
	}
	txt := localizedText(c)

	var out keyboard.Outcome
	switch c.UI.Backend {
	case "", backendTcell:
		out, err = runTcell(l, s, txt)
	case backendBubbletea:
		out, err = tui.Run(l, s, txt)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.UI.Backend)
	}
	if err != nil {
		logging.Errorf("terminal failure: %v", err)
		return initError{msg: i18n.T("error.init_terminal", err), err: err}
	}
	return reportOutcome(cmd.ErrOrStderr(), out)
}

func runTcell(l *layout.Layout, s keyboard.Sink, txt keyboard.Text) (keyboard.Outcome, error) {
	scr, err := terminal.Open()
	if err != nil {
		return keyboard.Outcome{}, err
	}
	defer func() {
		// Restore the terminal before a panic message is printed.
		if r := recover(); r != nil {
			scr.Close()
			panic(r)
		}
		scr.Close()
	}()
	if err := keyboard.CheckSurface(scr, l); err != nil {
		return keyboard.Outcome{}, err
	}
	return keyboard.Run(scr, l, s, txt), nil
}

func reportOutcome(w io.Writer, out keyboard.Outcome) error {
	switch {
	case out.Interrupted:
		fmt.Fprintln(w, noticeStyle.Render(i18n.T("status.interrupted")))
		return ErrInterrupted
	case out.Err != nil:
		// Already shown on screen; a failed write is not a failed run.
		logging.Warnf("entry not saved: %v", out.Err)
	default:
		logging.Infof("entry saved to %s", out.Destination)
	}
	return nil
}

func localizedText(c config.Config) keyboard.Text {
	mask, _ := utf8.DecodeRuneInString(c.UI.Mask)
	if mask == utf8.RuneError {
		mask = '*'
	}
	return keyboard.Text{
		Prompt: i18n.T("prompt"),
		Mask:   mask,
		Saved:  func(dest string) string { return i18n.T("status.saved", dest) },
		Failed: func(err error) string { return i18n.T("status.failed", err) },
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/keypad" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
