package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/zergmon/internal/ui"
)

// Style variables for the dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle          lipgloss.Style
	headerStyle         lipgloss.Style
	titleStyle          lipgloss.Style
	versionStyle        lipgloss.Style
	elapsedStyle        lipgloss.Style
	sectionStyle        lipgloss.Style
	labelStyle          lipgloss.Style
	valueStyle          lipgloss.Style
	unknownStyle        lipgloss.Style
	coreLabelStyle      lipgloss.Style
	chartLineStyle      lipgloss.Style
	statusLiveStyle     lipgloss.Style
	statusPausedStyle   lipgloss.Style
	statusDegradedStyle lipgloss.Style
	cpuSparklineStyle   lipgloss.Style
	memSparklineStyle   lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Title).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Title)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Label)

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Section)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Label)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	unknownStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Italic(true)

	coreLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	chartLineStyle = lipgloss.NewStyle().
		Foreground(t.Title)

	statusLiveStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusPausedStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	statusDegradedStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	cpuSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Title)

	memSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Section)
}
