package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/zergmon/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("zergmon", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Interval != time.Second {
		t.Errorf("Interval = %s, want 1s", cfg.Interval)
	}
	if cfg.History != DefaultHistory {
		t.Errorf("History = %d, want %d", cfg.History, DefaultHistory)
	}
	if cfg.Once || cfg.JSON || cfg.Headless || cfg.MetricsAddr != "" {
		t.Errorf("unexpected non-default mode: %+v", cfg)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{"-interval", "250ms", "-no-cores", "-metrics-addr", ":9105", "-history", "60", "-log-level", "debug"}
	cfg, err := ParseConfig("zergmon", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Interval != 250*time.Millisecond {
		t.Errorf("Interval = %s, want 250ms", cfg.Interval)
	}
	if !cfg.HideCores {
		t.Error("expected HideCores")
	}
	if cfg.MetricsAddr != ":9105" {
		t.Errorf("MetricsAddr = %q", cfg.MetricsAddr)
	}
	if cfg.History != 60 {
		t.Errorf("History = %d, want 60", cfg.History)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestParseConfig_JSONImpliesOnce(t *testing.T) {
	cfg, err := ParseConfig("zergmon", []string{"-json"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if !cfg.Once {
		t.Error("-json should imply -once")
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("zergmon", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"interval too small", []string{"-interval", "10ms"}},
		{"history zero", []string{"-history", "0"}},
		{"history too large", []string{"-history", "100000"}},
		{"bad log level", []string{"-log-level", "chatty"}},
		{"headless without exporter", []string{"-headless"}},
		{"headless with once", []string{"-headless", "-once", "-metrics-addr", ":9105"}},
		{"positional argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("zergmon", tt.args, io.Discard)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestParseConfig_UnknownFlag(t *testing.T) {
	_, err := ParseConfig("zergmon", []string{"-bogus"}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("unknown flag should map to the config exit code, got %v", err)
	}
}

func TestParseConfig_UnexpectedArgumentReported(t *testing.T) {
	var buf bytes.Buffer
	if _, err := ParseConfig("zergmon", []string{"extra"}, &buf); err == nil {
		t.Fatal("expected an error for a positional argument")
	}
	if !strings.Contains(buf.String(), "unexpected arguments") {
		t.Errorf("expected the error to be reported, got %q", buf.String())
	}
}
