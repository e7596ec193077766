// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface: the interactive catalog
// by default, and scriptable catalog commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/cli/handlers"
	"github.com/janderssonse/appcatalog/internal/config"
	"github.com/janderssonse/appcatalog/internal/console"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/logging"
	"github.com/janderssonse/appcatalog/internal/platform"
	"github.com/janderssonse/appcatalog/internal/session"
	"github.com/janderssonse/appcatalog/internal/tui"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess        = 0  // Operation completed successfully
	ExitGeneralError   = 1  // Generic failure (catch-all)
	ExitUsageError     = 2  // Invalid command line usage
	ExitConfigError    = 3  // Configuration or catalog file error
	ExitNotFoundError  = 5  // Requested app not found
	ExitSystemError    = 12 // Lock or filesystem failure
	ExitInterruptError = 14 // User interrupted (Ctrl+C)
)

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Launcher starts the interactive catalog.
type Launcher func(ctx context.Context, opts tui.Options) error

// CLI is the command tree plus the state its Before hook resolves.
type CLI struct {
	app *cli.Command

	verbose     bool
	json        bool
	plain       bool
	color       string
	configPath  string
	catalogPath string
	lockPath    string
	version     string

	stdout io.Writer
	stderr io.Writer

	out     *console.OutputState
	cfg     config.Config
	confirm handlers.ConfirmFunc
	launch  Launcher
}

// Option configures a CLI.
type Option func(*CLI)

// WithOutput redirects results and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(app *CLI) {
		app.stdout = stdout
		app.stderr = stderr
	}
}

// WithConfirm replaces the interactive request confirmation.
func WithConfirm(confirm handlers.ConfirmFunc) Option {
	return func(app *CLI) {
		app.confirm = confirm
	}
}

// WithLauncher replaces the TUI entry point.
func WithLauncher(launch Launcher) Option {
	return func(app *CLI) {
		app.launch = launch
	}
}

// WithLockFile replaces the single-instance lock used by the TUI.
func WithLockFile(path string) Option {
	return func(app *CLI) {
		app.lockPath = path
	}
}

// NewCLI creates the command tree.
func NewCLI(version string, opts ...Option) *CLI {
	app := &CLI{
		version:  version,
		lockPath: platform.LockFile(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		confirm:  confirmRequest,
		launch:   tui.Launch,
	}

	for _, opt := range opts {
		opt(app)
	}

	app.app = &cli.Command{
		Name:  platform.AppName,
		Usage: "Browse the employee app catalog and request access",
		Description: `Browse internal applications, filter them by department and rating,
and raise simulated access requests.

Run without arguments to open the interactive catalog.

EXAMPLES:
  appcatalog list --category engineering --popular
  appcatalog show figma
  appcatalog request --yes figma
  appcatalog dashboard --role engineering --json`,
		Suggest:   true,
		Writer:    app.stdout,
		ErrWriter: app.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to the config file",
				Value:       "",
				Destination: &app.configPath,
			},
			&cli.StringFlag{
				Name:        "catalog",
				Usage:       "TOML catalog file replacing the built-in catalog",
				Destination: &app.catalogPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages and logs on stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output tab-separated text for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       colorAuto,
				Destination: &app.color,
			},
		},
		Before:   app.initConfig,
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig validates global flags and loads the config file.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	switch app.color {
	case colorAuto:
	case colorNever:
		_ = os.Setenv("NO_COLOR", "1")
	case colorAlways:
		_ = os.Unsetenv("NO_COLOR")
	default:
		return ctx, domain.NewExitError(ExitUsageError, "invalid --color value: must be auto, always, or never", nil)
	}

	app.out = &console.OutputState{
		Verbose: app.verbose,
		JSON:    app.json,
		Plain:   app.plain,
		Out:     app.stdout,
		Err:     app.stderr,
	}

	cfg, err := config.Load(app.configPath)
	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, "Failed to load configuration", err)
	}

	if app.catalogPath != "" {
		cfg.Catalog.File = platform.ExpandPath(app.catalogPath)
	}

	app.cfg = cfg

	return ctx, nil
}

// defaultAction opens the interactive catalog when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitUsageError,
			fmt.Sprintf("'%s' is not a command. See '%s --help'.", cmd.Args().First(), platform.AppName), nil)
	}

	return app.runTUI(ctx)
}

func (app *CLI) runTUI(ctx context.Context) error {
	unlock, err := app.lockInstance()
	if err != nil {
		return err
	}

	defer unlock()

	log, closeLog, err := logging.New(app.cfg.Logging())
	if err != nil {
		return domain.NewExitError(ExitConfigError, "Failed to open log file", err)
	}

	defer func() { _ = closeLog() }()

	seed, err := app.loadSeed()
	if err != nil {
		return err
	}

	log.WithField("catalog", app.cfg.Catalog.File).Info("starting interactive session")

	err = app.launch(ctx, tui.Options{
		Seed:          seed,
		Sort:          app.cfg.SortKey(),
		TechnicalApps: app.cfg.Catalog.TechnicalApps,
		Logger:        log,
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, tui.ErrNoTerminal):
		return domain.NewExitError(ExitGeneralError, "Failed to launch interactive interface (terminal required)", nil)
	case errors.Is(err, context.Canceled):
		return domain.NewExitError(ExitInterruptError, "Interrupted", nil)
	default:
		log.WithError(err).Error("interactive session failed")

		return domain.NewExitError(ExitGeneralError, "Failed to launch TUI", err)
	}
}

// lockInstance holds the single-instance lock so interactive sessions don't
// share a log file. Scriptable commands run without it.
func (app *CLI) lockInstance() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(app.lockPath), 0o750); err != nil {
		return nil, domain.NewExitError(ExitSystemError, "Failed to create state directory", err)
	}

	lock := flock.New(app.lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, domain.NewExitError(ExitSystemError, "Failed to acquire process lock", err)
	}

	if !locked {
		return nil, domain.NewExitError(ExitGeneralError,
			fmt.Sprintf("Another %s instance is already running", platform.AppName), nil)
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			_, _ = fmt.Fprintf(app.stderr, "Warning: failed to release process lock: %v\n", err)
		}
	}, nil
}

// logger returns the logger for non-interactive commands: stderr when
// verbose, otherwise discarded.
func (app *CLI) logger() *logrus.Logger {
	if !app.verbose {
		return logging.Discard()
	}

	return logging.NewWithWriter(app.stderr, logrus.DebugLevel)
}

func (app *CLI) loadSeed() (catalog.Seed, error) {
	seed, err := catalog.Resolve(app.cfg.Catalog.File)
	if err != nil {
		return catalog.Seed{}, domain.NewExitError(ExitConfigError, domain.FormatErrorMessage(err, app.verbose), err)
	}

	return seed, nil
}

// newHandler builds a fresh session and the handler that drives it.
func (app *CLI) newHandler() (*handlers.CatalogHandler, error) {
	seed, err := app.loadSeed()
	if err != nil {
		return nil, err
	}

	state := session.New(seed,
		session.WithTechnicalApps(app.cfg.Catalog.TechnicalApps),
		session.WithLogger(app.logger()),
		session.WithNotifier(app.out),
	)

	base := handlers.NewBaseHandler(app.verbose, app.json, app.plain, app.out.Adapter())

	return handlers.NewCatalogHandler(base, state), nil
}

// exitError maps domain errors to exit codes with a user-facing message.
func (app *CLI) exitError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	message := domain.FormatErrorMessage(err, app.verbose)

	switch {
	case errors.Is(err, domain.ErrUnknownApp):
		return domain.NewExitError(ExitNotFoundError, message, err)
	case errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrUnknownSort),
		errors.Is(err, domain.ErrUnknownRole):
		return domain.NewExitError(ExitUsageError, message, err)
	case errors.Is(err, domain.ErrInvalidCatalog):
		return domain.NewExitError(ExitConfigError, message, err)
	case errors.Is(err, ErrConfirmationRequired):
		return domain.NewExitError(ExitUsageError, err.Error(), nil)
	default:
		return domain.NewExitError(ExitGeneralError, message, err)
	}
}
