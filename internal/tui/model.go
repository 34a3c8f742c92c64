package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/zergmon/internal/config"
	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/metrics"
	"github.com/agbru/zergmon/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight              = 1
	footerHeight              = 1
	topRowHeight              = 7 // heading + four identity lines + borders
	minChartHeight            = 4
	IdentityPanelWidthPercent = 55
)

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// identityWidth returns the width allocated to the identity panel.
func (l LayoutManager) identityWidth() int {
	return l.width * IdentityPanelWidthPercent / 100
}

// memoryWidth returns the width allocated to the memory panel.
func (l LayoutManager) memoryWidth() int {
	return l.width - l.identityWidth()
}

// chartHeight returns the height left for the history chart once the fixed
// rows and the CPU panel are placed.
func (l LayoutManager) chartHeight(cpuHeight int) int {
	return max(l.height-headerHeight-footerHeight-topRowHeight-cpuHeight, minChartHeight)
}

// SamplingState tracks the sampler side of the dashboard.
type SamplingState struct {
	ctx      context.Context
	sampler  *sysmon.Sampler
	exporter *metrics.Exporter
	inFlight bool
	paused   bool
	exitCode int
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	header   HeaderModel
	identity IdentityModel
	cpu      CPUModel
	memory   MemoryModel
	chart    ChartModel
	footer   FooterModel

	keymap KeyMap

	SamplingState
	LayoutManager

	config config.AppConfig
}

// NewModel creates a dashboard model. exporter may be nil.
func NewModel(ctx context.Context, sampler *sysmon.Sampler, exporter *metrics.Exporter, cfg config.AppConfig, version string) Model {
	km := DefaultKeyMap()
	return Model{
		header:   NewHeaderModel(version, cfg.Interval),
		identity: NewIdentityModel(),
		cpu:      NewCPUModel(cfg.HideCores),
		memory:   NewMemoryModel(),
		chart:    NewChartModel(cfg.History),
		footer:   NewFooterModel(km),
		keymap:   km,
		SamplingState: SamplingState{
			ctx:      ctx,
			sampler:  sampler,
			exporter: exporter,
			inFlight: true,
			exitCode: apperrors.ExitSuccess,
		},
		config: cfg,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		identityCmd(m.ctx, m.sampler),
		sampleCmd(m.ctx, m.sampler),
		tickCmd(m.config.Interval),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case TickMsg:
		cmds := []tea.Cmd{tickCmd(m.config.Interval)}
		if m.paused {
			return m, tea.Batch(cmds...)
		}
		if !m.inFlight {
			m.inFlight = true
			cmds = append(cmds, sampleCmd(m.ctx, m.sampler))
		}
		if m.config.RefreshIdentity {
			cmds = append(cmds, identityCmd(m.ctx, m.sampler))
		}
		return m, tea.Batch(cmds...)

	case SnapshotMsg:
		m.inFlight = false
		m.applySnapshot(msg.Snapshot)
		return m, nil

	case IdentityMsg:
		m.identity.SetIdentity(msg.Identity)
		if m.exporter != nil {
			m.exporter.SetIdentity(msg.Identity)
		}
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

// applySnapshot fans a snapshot out to the panels and the exporter.
func (m *Model) applySnapshot(snap sysmon.Snapshot) {
	m.cpu.Update(snap.Overall, snap.PerCore)
	m.memory.Update(snap)
	m.chart.AddSample(snap.Overall, snap.MemoryFraction()*100)
	m.footer.SetUnavailable(snap.Unavailable)
	if m.exporter != nil {
		m.exporter.Observe(snap)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.chart.Reset()
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.identity.View(), m.memory.View())
	cpu := m.cpu.View()

	chart := m.chart
	chart.SetSize(m.width, m.chartHeight(lipgloss.Height(cpu)))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(), top, cpu, chart.View(), m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.identity.SetSize(m.identityWidth(), topRowHeight)
	m.memory.SetSize(m.memoryWidth(), topRowHeight)
	m.cpu.SetWidth(m.width)
}

// Run is the public entry point for the dashboard mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, sampler *sysmon.Sampler, exporter *metrics.Exporter, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, sampler, exporter, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a TickMsg after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleCmd refreshes the sampler off the UI goroutine.
func sampleCmd(ctx context.Context, s *sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		return SnapshotMsg{Snapshot: s.Refresh(ctx)}
	}
}

// identityCmd queries the host identity off the UI goroutine.
func identityCmd(ctx context.Context, s *sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		return IdentityMsg{Identity: s.Identity(ctx)}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
