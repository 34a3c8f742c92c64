// Package logging provides a unified logging interface for zergmon.
// It wraps zerolog behind a small Logger interface so the sampler, the
// dashboard and the exporter log structured fields the same way.
package logging
