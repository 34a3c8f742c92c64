package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkLabelWidth is the room taken by "CPU " on the left and " 100.0%"
// on the right of a sparkline row, plus the panel border.
const sparkLabelWidth = 15

// minBrailleHeight is the panel height from which the braille CPU chart is
// drawn above the sparklines.
const minBrailleHeight = 7

// ChartModel keeps the CPU and memory history and renders it.
type ChartModel struct {
	cpuHistory *RingBuffer
	memHistory *RingBuffer
	width      int
	height     int
}

// NewChartModel creates a chart keeping capacity samples per series.
func NewChartModel(capacity int) ChartModel {
	return ChartModel{
		cpuHistory: NewRingBuffer(capacity),
		memHistory: NewRingBuffer(capacity),
	}
}

// AddSample appends one CPU and one memory-used percentage.
func (c *ChartModel) AddSample(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// Reset clears both series.
func (c *ChartModel) Reset() {
	c.cpuHistory.Reset()
	c.memHistory.Reset()
}

// SetSize updates dimensions.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
}

// View renders the history panel.
func (c ChartModel) View() string {
	inner := max(c.width-2, 1)
	sparkWidth := max(c.width-sparkLabelWidth, 1)

	var b strings.Builder
	b.WriteString(sectionStyle.Render("History"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d samples, peak CPU %.1f%%", c.cpuHistory.Len(), c.cpuHistory.Max())))

	if c.height >= minBrailleHeight && c.cpuHistory.Len() > 0 {
		// border, title and the two sparkline rows take five lines
		for _, line := range RenderBrailleChart(c.cpuHistory.Tail(inner*2), inner, c.height-5) {
			b.WriteString("\n")
			b.WriteString(chartLineStyle.Render(line))
		}
	}

	b.WriteString("\n")
	b.WriteString(c.sparkRow("CPU", c.cpuHistory, sparkWidth, cpuSparklineStyle))
	b.WriteString("\n")
	b.WriteString(c.sparkRow("MEM", c.memHistory, sparkWidth, memSparklineStyle))

	style := panelStyle.Width(inner)
	if c.height > 2 {
		style = style.Height(c.height - 2)
	}
	return style.Render(b.String())
}

func (c ChartModel) sparkRow(label string, rb *RingBuffer, width int, style lipgloss.Style) string {
	line := RenderSparkline(rb.Tail(width))
	pad := width - lipgloss.Width(line)
	return labelStyle.Render(label+" ") +
		spaces(pad) + style.Render(line) +
		valueStyle.Render(fmt.Sprintf(" %6.1f%%", rb.Last()))
}
