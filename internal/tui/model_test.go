package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/zergmon/internal/config"
	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/metrics"
	"github.com/agbru/zergmon/internal/sysmon"
)

// stubProvider returns fixed readings.
type stubProvider struct {
	perCore []float64
	cpuErr  error
	mem     sysmon.MemoryStat
}

func (s stubProvider) CPUPercents(context.Context) ([]float64, error) { return s.perCore, s.cpuErr }
func (s stubProvider) Memory(context.Context) (sysmon.MemoryStat, error) {
	return s.mem, nil
}
func (stubProvider) SystemName(context.Context) (string, error) { return "Ubuntu", nil }
func (stubProvider) KernelVersion(context.Context) (string, error) {
	return "", errors.New("no kernel")
}
func (stubProvider) HostName(context.Context) (string, error)  { return "zerg-01", nil }
func (stubProvider) OSVersion(context.Context) (string, error) { return "24.04", nil }

func newTestModel(t *testing.T, p sysmon.Provider, exp *metrics.Exporter) Model {
	t.Helper()
	cfg := config.Default()
	m := NewModel(context.Background(), sysmon.NewSampler(p), exp, cfg, "v1.0.0")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func defaultStub() stubProvider {
	return stubProvider{
		perCore: []float64{10, 20, 30, 40},
		mem:     sysmon.MemoryStat{Total: 4096 * sysmon.BytesPerMiB, Used: 1024 * sysmon.BytesPerMiB},
	}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func TestModel_View_BeforeSize(t *testing.T) {
	m := NewModel(context.Background(), sysmon.NewSampler(defaultStub()), nil, config.Default(), "dev")
	if m.View() != "Initializing..." {
		t.Errorf("unexpected view before size: %q", m.View())
	}
}

func TestModel_SnapshotAndIdentity(t *testing.T) {
	m := newTestModel(t, defaultStub(), nil)

	m = run(t, m, sampleCmd(m.ctx, m.sampler))
	m = run(t, m, identityCmd(m.ctx, m.sampler))

	if m.inFlight {
		t.Error("expected no sample in flight after SnapshotMsg")
	}

	view := m.View()
	for _, want := range []string{
		AppTitle,
		"Overall CPU Usage: 25.00%",
		"Total Memory Usage: 4096 MB",
		"Used Memory Usage: 1024 MB",
		"System name: Ubuntu",
		"System kernel version: unknown",
		"System host name: zerg-01",
		"System OS version: 24.04",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected dashboard to contain %q", want)
		}
	}
	if m.chart.cpuHistory.Len() != 1 {
		t.Errorf("expected one history sample, got %d", m.chart.cpuHistory.Len())
	}
	if m.chart.memHistory.Last() != 25 {
		t.Errorf("expected memory history 25%%, got %f", m.chart.memHistory.Last())
	}
}

func TestModel_DegradedSnapshot(t *testing.T) {
	p := defaultStub()
	p.cpuErr = errors.New("boom")
	m := newTestModel(t, p, nil)

	m = run(t, m, sampleCmd(m.ctx, m.sampler))

	view := m.View()
	if !strings.Contains(view, "Overall CPU Usage: 0.00%") {
		t.Error("expected CPU to degrade to 0.00%")
	}
	if !strings.Contains(view, "Total Memory Usage: 4096 MB") {
		t.Error("memory should still be shown when CPU fails")
	}
	if !strings.Contains(view, "unavailable: cpu") {
		t.Error("expected the footer to list the unavailable metric")
	}
}

func TestModel_PublishesToExporter(t *testing.T) {
	exp := metrics.NewExporter()
	m := newTestModel(t, defaultStub(), exp)

	m = run(t, m, sampleCmd(m.ctx, m.sampler))
	_ = run(t, m, identityCmd(m.ctx, m.sampler))

	snap, id, ok := exp.Latest()
	if !ok {
		t.Fatal("expected exporter to have a snapshot")
	}
	if snap.Overall != 25 {
		t.Errorf("exported overall = %f, want 25", snap.Overall)
	}
	if got, _ := id.HostName.Get(); got != "zerg-01" {
		t.Errorf("exported host name = %q", got)
	}
}

func TestModel_Tick(t *testing.T) {
	m := newTestModel(t, defaultStub(), nil)

	t.Run("skips sampling while a sample is in flight", func(t *testing.T) {
		updated, cmd := m.Update(TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick must always reschedule")
		}
		if !updated.(Model).inFlight {
			t.Error("expected sample to remain in flight")
		}
	})

	t.Run("starts a sample when idle", func(t *testing.T) {
		idle := run(t, m, sampleCmd(m.ctx, m.sampler))
		updated, _ := idle.Update(TickMsg(time.Now()))
		if !updated.(Model).inFlight {
			t.Error("expected a new sample to be in flight")
		}
	})

	t.Run("paused does not sample", func(t *testing.T) {
		idle := run(t, m, sampleCmd(m.ctx, m.sampler))
		idle.paused = true
		updated, cmd := idle.Update(TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("paused tick must still reschedule")
		}
		if updated.(Model).inFlight {
			t.Error("paused dashboard should not sample")
		}
	})
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel(t, defaultStub(), nil)
	m = run(t, m, sampleCmd(m.ctx, m.sampler))

	t.Run("pause toggles", func(t *testing.T) {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
		um := updated.(Model)
		if !um.paused {
			t.Error("expected paused after 'p'")
		}
		updated, _ = um.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
		if updated.(Model).paused {
			t.Error("expected resumed after second 'p'")
		}
	})

	t.Run("reset clears history", func(t *testing.T) {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
		if updated.(Model).chart.cpuHistory.Len() != 0 {
			t.Error("expected empty history after 'r'")
		}
	})

	t.Run("quit", func(t *testing.T) {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})
}

func TestModel_ContextCancelled(t *testing.T) {
	m := newTestModel(t, defaultStub(), nil)

	updated, cmd := m.Update(ContextCancelledMsg{Err: context.Canceled})
	if updated.(Model).exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", updated.(Model).exitCode, apperrors.ExitErrorCanceled)
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}

func TestWatchContextCmd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := watchContextCmd(ctx)()
	cc, ok := msg.(ContextCancelledMsg)
	if !ok {
		t.Fatalf("expected ContextCancelledMsg, got %T", msg)
	}
	if !errors.Is(cc.Err, context.Canceled) {
		t.Errorf("unexpected error %v", cc.Err)
	}
}

func TestLayoutManager(t *testing.T) {
	l := LayoutManager{width: 100, height: 40}
	if l.identityWidth()+l.memoryWidth() != 100 {
		t.Error("top row panels should span the full width")
	}
	if got := l.chartHeight(100); got != minChartHeight {
		t.Errorf("chartHeight = %d, want minimum %d", got, minChartHeight)
	}
}
