package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/logging"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "ZERGMON_"

// Defaults and bounds.
const (
	DefaultInterval = time.Second
	MinInterval     = 100 * time.Millisecond
	DefaultHistory  = 120
	MaxHistory      = 3600
	DefaultLogLevel = "info"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Interval is the refresh cadence of the sampler.
	Interval time.Duration
	// Once prints a single report and exits instead of starting the dashboard.
	Once bool
	// JSON switches the one-shot report to JSON.
	JSON bool
	// Headless runs the sampler loop and exporter without the dashboard.
	Headless bool
	// MetricsAddr is the listen address of the Prometheus exporter; empty disables it.
	MetricsAddr string
	// NoColor disables colored output.
	NoColor bool
	// LogLevel is one of debug, info, warn, error, off.
	LogLevel string
	// LogFile receives log output; empty means stderr outside the dashboard
	// and nowhere while the dashboard is running.
	LogFile string
	// HideCores hides the per-core rows of the CPU panel.
	HideCores bool
	// RefreshIdentity re-queries host identity on every tick.
	RefreshIdentity bool
	// History is the number of samples kept for the history chart.
	History int
}

// Default returns the configuration used when no flag or variable is set.
func Default() AppConfig {
	return AppConfig{
		Interval: DefaultInterval,
		LogLevel: DefaultLogLevel,
		History:  DefaultHistory,
	}
}

// ParseConfig parses command-line arguments, applies ZERGMON_ environment
// overrides for flags that were not set explicitly, and validates the result.
// Priority: CLI flags > environment variables > defaults.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := Default()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Refresh interval (e.g. 500ms, 2s).")
	fs.BoolVar(&cfg.Once, "once", cfg.Once, "Print one report and exit.")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Print the one-shot report as JSON (implies -once).")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without the dashboard (requires -metrics-addr).")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address (e.g. :9105).")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error, off.")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file.")
	fs.BoolVar(&cfg.HideCores, "no-cores", cfg.HideCores, "Hide per-core CPU rows.")
	fs.BoolVar(&cfg.RefreshIdentity, "refresh-identity", cfg.RefreshIdentity, "Re-query host identity on every refresh.")
	fs.IntVar(&cfg.History, "history", cfg.History, "Number of samples kept for the history chart.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if cfg.JSON {
		cfg.Once = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistent or out-of-range values.
func (c AppConfig) Validate() error {
	if c.Interval < MinInterval {
		return apperrors.NewConfigError("interval %s is below the minimum of %s", c.Interval, MinInterval)
	}
	if c.History < 1 || c.History > MaxHistory {
		return apperrors.NewConfigError("history must be between 1 and %d, got %d", MaxHistory, c.History)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	if c.Headless && c.MetricsAddr == "" {
		return apperrors.NewConfigError("-headless requires -metrics-addr")
	}
	if c.Headless && c.Once {
		return apperrors.NewConfigError("-headless and -once are mutually exclusive")
	}
	return nil
}
