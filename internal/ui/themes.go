package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for plain terminal output (the one-shot report).
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Title colors the application title.
	Title string
	// Section colors section headings ("CPU Usage", "Memory Usage").
	Section string
	// Label colors identity labels and secondary text.
	Label string
	// Success indicates healthy values.
	Success string
	// Warning is used for degraded or high values.
	Warning string
	// Error indicates failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme mirrors the dashboard palette for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Title:   "\033[38;2;147;112;219m", // Medium purple
		Section: "\033[38;2;255;165;0m",   // Orange
		Label:   "\033[38;2;200;200;200m", // Light grey
		Success: "\033[38;5;82m",          // Bright green
		Warning: "\033[38;5;220m",         // Yellow
		Error:   "\033[38;5;196m",         // Red
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Title:   "\033[38;5;54m",  // Dark purple
		Section: "\033[38;5;130m", // Dark orange
		Label:   "\033[38;5;240m", // Dark grey
		Success: "\033[38;5;28m",  // Dark green
		Warning: "\033[38;5;136m", // Dark yellow
		Error:   "\033[38;5;124m", // Dark red
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or -no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines lipgloss-compatible colors for the dashboard.
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	PanelBg lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Label   lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Title   lipgloss.TerminalColor
	Section lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme: purple title, orange section headings, grey labels on
	// charcoal panels.
	DarkTUITheme = TUITheme{
		Bg:      lipgloss.Color("#1E1E1E"),
		PanelBg: lipgloss.Color("#282828"),
		Text:    lipgloss.Color("#E0E0E0"),
		Label:   lipgloss.Color("#C8C8C8"),
		Border:  lipgloss.Color("#5A5A5A"),
		Title:   lipgloss.Color("#9370DB"),
		Section: lipgloss.Color("#FFA500"),
		Success: lipgloss.Color("#9ECE6A"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTUITheme disables all TUI colors.
	// lipgloss.NoColor{} renders text with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Bg:      lipgloss.NoColor{},
		PanelBg: lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Label:   lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Title:   lipgloss.NoColor{},
		Section: lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI theme matching the currently active theme.
// When NoColorTheme is active, returns NoColorTUITheme; otherwise DarkTUITheme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names default to dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any non-empty value disables colors (per no-color.org spec)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}

// Colorize wraps s in color and reset codes of the current theme.
// With NoColorTheme active it returns s unchanged.
func Colorize(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + GetCurrentTheme().Reset
}
