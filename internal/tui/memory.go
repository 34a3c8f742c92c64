package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/agbru/zergmon/internal/format"
	"github.com/agbru/zergmon/internal/sysmon"
)

// memPercentWidth reserves room for " 100.00%" after the bar.
const memPercentWidth = 8

// MemoryModel shows total and used memory in MB with a used/total bar.
type MemoryModel struct {
	snap   sysmon.Snapshot
	bar    progress.Model
	width  int
	height int
}

// NewMemoryModel creates a memory panel.
func NewMemoryModel() MemoryModel {
	return MemoryModel{bar: newBar(memBarColor)}
}

// Update stores the latest snapshot.
func (m *MemoryModel) Update(snap sysmon.Snapshot) {
	m.snap = snap
}

// SetSize updates dimensions.
func (m *MemoryModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the memory panel.
func (m MemoryModel) View() string {
	inner := max(m.width-2, 1)
	frac := m.snap.MemoryFraction()

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Memory Usage"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Total Memory Usage:"))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(format.FormatMB(m.snap.TotalMiB())))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Used Memory Usage:"))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(format.FormatMB(m.snap.UsedMiB())))
	b.WriteString("\n")
	b.WriteString(renderBar(m.bar, inner-memPercentWidth, frac))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(format.FormatPercent(frac * 100)))

	return panelStyle.
		Width(inner).
		Height(max(m.height-2, 0)).
		Render(b.String())
}
