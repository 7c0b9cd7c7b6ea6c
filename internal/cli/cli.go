// Package cli wires the qotd command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/qotd/internal/platform/config"
	"github.com/Makepad-fr/qotd/internal/platform/logging"
	"github.com/Makepad-fr/qotd/internal/share"
	"github.com/Makepad-fr/qotd/internal/store/quotestore"
	"github.com/Makepad-fr/qotd/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options inject process collaborators; zero values use the real ones.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
	Rand   *rand.Rand
	Sharer share.Sharer
	// TUI replaces the interactive program; used by tests.
	TUI func(ctx context.Context, a *App) error
	// Version is shown by --version.
	Version string
}

// App is the state shared by every subcommand once config is loaded.
type App struct {
	opt    Options
	Config *config.Config
	Logger *log.Logger
	Store  *quotestore.Store

	closeLog io.Closer

	// persistent flags
	configPath string
	theme      string
	logLevel   string
}

// usageError marks errors caused by bad invocation (exit 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

// Run executes the command line and returns an exit code.
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.TUI == nil {
		opt.TUI = runTUI
	}

	app := &App{opt: opt}
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.ExecuteContext(ctx)
	if app.closeLog != nil {
		_ = app.closeLog.Close()
	}
	if err == nil {
		return ExitOK
	}

	ui.Fail(opt.Stderr, err.Error())
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: run `qotd --help` for usage"))
		return ExitUsage
	}
	return ExitError
}

func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "qotd",
		Short: "Quote of the Day: a daily quote, favorites and sharing",
		Long: `qotd shows an inspirational quote of the day.

Run without a subcommand to open the interactive view: refresh for a random
quote, mark favorites, and share a quote to the clipboard.`,
		Version:           app.opt.Version,
		Args:              usageArgs(cobra.NoArgs),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.opt.TUI(cmd.Context(), app)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&app.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&app.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&app.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newTodayCommand(app),
		newRandomCommand(app),
		newListCommand(app),
		newShareCommand(app),
	)
	return root
}

// setup loads config, applies the theme and builds the logger and store.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	overrides := map[string]any{}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		overrides["ui.theme"] = a.theme
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		overrides["log.level"] = a.logLevel
	}

	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return usageError{err: err}
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err: err}
	}
	a.Config = cfg
	ui.SetTheme(cfg.UI.Theme)

	// The TUI owns the terminal; without a log file its log is dropped.
	var fallback io.Writer = a.opt.Stderr
	if cmd == cmd.Root() {
		fallback = io.Discard
	}
	a.Logger, a.closeLog = logging.Open(logging.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}, fallback)

	storeOpts := []quotestore.Option{quotestore.WithClock(a.opt.Now)}
	if a.opt.Rand != nil {
		storeOpts = append(storeOpts, quotestore.WithRand(a.opt.Rand))
	}
	a.Store = quotestore.Default(storeOpts...)
	a.Logger.Debug("config loaded", "theme", cfg.UI.Theme, "share", cfg.Share.Target)
	return nil
}

// sharer resolves the configured share target, honoring an injected one.
func (a *App) sharer(target string) (share.Sharer, error) {
	if a.opt.Sharer != nil {
		return a.opt.Sharer, nil
	}
	s, err := share.New(target, a.opt.Stdout)
	if err != nil {
		return nil, usageError{err: err}
	}
	return s, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, usagef("invalid --date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}
