package e2e

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/zergmon into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "zergmon"
	if runtime.GOOS == "windows" {
		binName = "zergmon.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs from the package directory (test/e2e).
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/zergmon")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build zergmon: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		wantOut  []string // substrings, case-insensitive
		wantCode int
	}{
		{
			name:     "One-shot report",
			args:     []string{"-once", "-interval", "200ms"},
			wantOut:  []string{"Zerg Monitor", "Overall CPU Usage:", "Total Memory Usage:", "System host name:"},
			wantCode: 0,
		},
		{
			name:     "One-shot without cores",
			args:     []string{"-once", "-no-cores", "-interval", "200ms"},
			wantOut:  []string{"Used Memory Usage:"},
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  []string{"usage", "-interval"},
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  []string{"zergmon"},
			wantCode: 0,
		},
		{
			name:     "Interval below minimum",
			args:     []string{"-once", "-interval", "1ms"},
			wantOut:  []string{"interval"},
			wantCode: 4,
		},
		{
			name:     "Headless without address",
			args:     []string{"-headless"},
			wantOut:  []string{"-metrics-addr"},
			wantCode: 4,
		},
		{
			name:     "Unexpected argument",
			args:     []string{"-once", "extra"},
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(want)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", want, outStr)
				}
			}
		})
	}
}

// TestCLI_E2E_JSON checks the -json document shape.
func TestCLI_E2E_JSON(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	binPath := buildBinary(t)

	cmd := exec.Command(binPath, "-json", "-interval", "200ms")
	cmd.Stderr = nil
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("zergmon -json: %v", err)
	}

	var doc struct {
		Identity map[string]*string `json:"identity"`
		Snapshot struct {
			Overall float64   `json:"cpu_overall_percent"`
			PerCore []float64 `json:"cpu_per_core_percent"`
		} `json:"snapshot"`
		TotalMiB uint64 `json:"memory_total_mib"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"system_name", "kernel_version", "host_name", "os_version"} {
		if _, ok := doc.Identity[key]; !ok {
			t.Errorf("identity missing %q", key)
		}
	}
	if doc.Snapshot.Overall < 0 || doc.Snapshot.Overall > 100 {
		t.Errorf("overall CPU out of range: %f", doc.Snapshot.Overall)
	}
}
