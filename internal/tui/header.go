package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/zergmon/internal/format"
)

// AppTitle is shown at the left of the header bar.
const AppTitle = "Zerg Monitor"

// HeaderModel renders the top bar: title, version, uptime and refresh interval.
type HeaderModel struct {
	startTime time.Time
	version   string
	interval  time.Duration
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string, interval time.Duration) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		interval:  interval,
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := AppTitle
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := versionStyle.Render(" | ")
	uptime := elapsedStyle.Render("Up: " + format.FormatExecutionDuration(time.Since(h.startTime)))
	leftPart := title + pipe + uptime

	rightPart := versionStyle.Render("every " + h.interval.String())

	innerWidth := max(h.width-2, 0)
	gap := max(innerWidth-lipgloss.Width(leftPart)-lipgloss.Width(rightPart), 1)

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap) + rightPart)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
