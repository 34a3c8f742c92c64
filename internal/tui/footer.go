package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders key help on the left and the sampler status on the right.
type FooterModel struct {
	help        help.Model
	keymap      KeyMap
	paused      bool
	unavailable []string
	width       int
}

// NewFooterModel creates a footer for the given bindings.
func NewFooterModel(km KeyMap) FooterModel {
	h := help.New()
	h.ShortSeparator = "  "
	return FooterModel{help: h, keymap: km}
}

// SetPaused toggles the paused indicator.
func (f *FooterModel) SetPaused(paused bool) {
	f.paused = paused
}

// SetUnavailable records which metrics failed on the last refresh.
func (f *FooterModel) SetUnavailable(metrics []string) {
	f.unavailable = metrics
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// View renders the footer.
func (f FooterModel) View() string {
	left := " " + f.help.View(f.keymap)

	var status string
	switch {
	case f.paused:
		status = statusPausedStyle.Render("PAUSED")
	default:
		status = statusLiveStyle.Render("LIVE")
	}
	if len(f.unavailable) > 0 {
		status = statusDegradedStyle.Render("unavailable: "+strings.Join(f.unavailable, ", ")) + "  " + status
	}
	status += " "

	gap := max(f.width-lipgloss.Width(left)-lipgloss.Width(status), 1)
	return left + spaces(gap) + status
}
