package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/zergmon/internal/format"
)

// Per-core grid geometry.
const (
	coreBarWidth  = 10
	coreCellWidth = 28 // "cpu12 100.00% " + bar + gutter
)

// CPUModel shows overall CPU usage with a bar and an optional per-core grid.
type CPUModel struct {
	overall   float64
	perCore   []float64
	hideCores bool
	bar       progress.Model
	width     int
}

// NewCPUModel creates a CPU panel.
func NewCPUModel(hideCores bool) CPUModel {
	return CPUModel{
		hideCores: hideCores,
		bar:       newBar(cpuBarColor),
	}
}

// Update stores the latest readings.
func (m *CPUModel) Update(overall float64, perCore []float64) {
	m.overall = overall
	m.perCore = perCore
}

// SetWidth updates the available width.
func (m *CPUModel) SetWidth(w int) {
	m.width = w
}

// innerWidth is the content width inside the panel border.
func (m CPUModel) innerWidth() int {
	return max(m.width-2, 1)
}

// View renders the CPU panel.
func (m CPUModel) View() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("CPU Usage"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Overall CPU Usage:"))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(format.FormatPercent(m.overall)))
	b.WriteString("\n")
	b.WriteString(renderBar(m.bar, m.innerWidth(), m.overall/100))

	if !m.hideCores && len(m.perCore) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderCores())
	}

	return panelStyle.Width(m.innerWidth()).Render(b.String())
}

// renderCores lays out one cell per core, as many per row as fit.
func (m CPUModel) renderCores() string {
	cols := max(m.innerWidth()/coreCellWidth, 1)
	var rows []string
	for start := 0; start < len(m.perCore); start += cols {
		end := min(start+cols, len(m.perCore))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCore(i, m.perCore[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m CPUModel) renderCore(i int, pct float64) string {
	cell := coreLabelStyle.Render(fmt.Sprintf("%-5s", fmt.Sprintf("cpu%d", i))) +
		" " + valueStyle.Render(fmt.Sprintf("%7s", format.FormatPercent(pct))) +
		" " + renderBar(m.bar, coreBarWidth, pct/100)
	if w := lipgloss.Width(cell); w < coreCellWidth {
		cell += spaces(coreCellWidth - w)
	}
	return cell
}
