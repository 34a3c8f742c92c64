package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/zergmon/internal/config"
	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/logging"
	"github.com/agbru/zergmon/internal/sysmon"
	"github.com/agbru/zergmon/internal/ui"
)

// Application represents the zergmon application instance.
type Application struct {
	Config    config.AppConfig
	Provider  sysmon.Provider
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithProvider sets the metrics source. The default reads the host through gopsutil.
func WithProvider(p sysmon.Provider) AppOption {
	return func(a *Application) { a.Provider = p }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "zergmon"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level, _ := logging.ParseLevel(a.Config.LogLevel)
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	logger, closeLog, err := a.newLogger(level)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error opening log file: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer closeLog()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	sampler := sysmon.NewSampler(a.Provider, sysmon.WithLogger(logger))

	switch {
	case a.Config.Once:
		return a.runOnce(ctx, out, sampler, logger)
	case a.Config.Headless:
		return a.runHeadless(ctx, sampler, logger)
	default:
		return a.runTUI(ctx, sampler, logger)
	}
}

// newLogger picks the log destination: the log file when set, nothing while
// the dashboard owns the terminal, stderr otherwise.
func (a *Application) newLogger(level zerolog.Level) (logging.Logger, func(), error) {
	if a.Config.LogFile != "" {
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return logging.NewLogger(f, "zergmon").WithLevel(level), func() { _ = f.Close() }, nil
	}
	if a.dashboardMode() {
		return logging.NewNopLogger(), func() {}, nil
	}
	return logging.NewLogger(a.ErrWriter, "zergmon").WithLevel(level), func() {}, nil
}

func (a *Application) dashboardMode() bool {
	return !a.Config.Once && !a.Config.Headless
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
