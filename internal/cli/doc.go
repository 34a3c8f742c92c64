// Package cli implements the one-shot mode: it measures CPU usage over one
// interval, then prints a single report as text or JSON.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayReport], [DisplayJSON].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatReport].
package cli
