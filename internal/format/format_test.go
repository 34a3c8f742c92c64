package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{2*time.Second + 500*time.Millisecond, "2s"},
		{3*time.Minute + 7*time.Second + 300*time.Millisecond, "3m7s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{25, "25.00%"},
		{0, "0.00%"},
		{33.3333, "33.33%"},
		{100, "100.00%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMB(t *testing.T) {
	if got := FormatMB(2048); got != "2048 MB" {
		t.Errorf("FormatMB(2048) = %q", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.42, 0.42}, {1, 1}, {1.7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
