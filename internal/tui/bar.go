package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"

	"github.com/agbru/zergmon/internal/format"
	"github.com/agbru/zergmon/internal/ui"
)

// Fill colors for the usage bars under the dark theme.
const (
	cpuBarColor = "#9370DB"
	memBarColor = "#FFA500"
)

// newBar creates a static usage bar. Bars are rendered with ViewAs, so the
// spring animation of the progress bubble is never used.
func newBar(color string) progress.Model {
	opts := []progress.Option{progress.WithoutPercentage()}
	if ui.GetCurrentTheme().Name == ui.NoColorTheme.Name {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	} else {
		opts = append(opts, progress.WithSolidFill(color))
	}
	return progress.New(opts...)
}

// renderBar draws bar at the given width for a 0..1 fraction.
func renderBar(bar progress.Model, width int, fraction float64) string {
	if width <= 0 {
		return ""
	}
	bar.Width = width
	return bar.ViewAs(format.Clamp01(fraction))
}
