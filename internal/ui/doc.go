// Package ui provides theme and color support for zergmon's output.
// It defines the color schemes shared by the dashboard (lipgloss colors) and
// the one-shot report (ANSI escape codes).
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between sampling logic and presentation.
package ui
