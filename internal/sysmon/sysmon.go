// Package sysmon samples host CPU and memory usage and the static identity
// of the machine (system name, kernel, host name, OS version).
//
// A Sampler owns a Provider (the OS metrics source) and turns each refresh
// pass into an immutable Snapshot. Failures never abort a pass: the affected
// fields degrade to zero or to the "unknown" placeholder.
package sysmon

import "slices"

// BytesPerMiB is the number of bytes in one mebibyte, the display unit for memory.
const BytesPerMiB = 1 << 20

// Metric names reported in Snapshot.Unavailable and in log entries.
const (
	MetricCPU           = "cpu"
	MetricMemory        = "memory"
	MetricSystemName    = "system_name"
	MetricKernelVersion = "kernel_version"
	MetricHostName      = "host_name"
	MetricOSVersion     = "os_version"
)

// Snapshot holds one synchronous sample of CPU and memory state.
// All fields come from the same refresh pass.
type Snapshot struct {
	Overall     float64   `json:"cpu_overall_percent"` // mean of PerCore, 0.0 .. 100.0
	PerCore     []float64 `json:"cpu_per_core_percent"`
	TotalMemory uint64    `json:"memory_total_bytes"`
	UsedMemory  uint64    `json:"memory_used_bytes"`
	// Unavailable lists the metrics that could not be read during the pass.
	Unavailable []string `json:"unavailable,omitempty"`
}

// TotalMiB returns total memory in mebibytes, truncated.
func (s Snapshot) TotalMiB() uint64 { return BytesToMiB(s.TotalMemory) }

// UsedMiB returns used memory in mebibytes, truncated.
func (s Snapshot) UsedMiB() uint64 { return BytesToMiB(s.UsedMemory) }

// MemoryFraction returns UsedMemory/TotalMemory in 0..1, or 0 when the
// total is unknown.
func (s Snapshot) MemoryFraction() float64 {
	if s.TotalMemory == 0 {
		return 0
	}
	return float64(s.UsedMemory) / float64(s.TotalMemory)
}

// Cores returns the number of per-core readings in the snapshot.
func (s Snapshot) Cores() int { return len(s.PerCore) }

// IsDegraded reports whether any metric was unavailable.
func (s Snapshot) IsDegraded() bool { return len(s.Unavailable) > 0 }

// Equal reports whether two snapshots carry the same readings.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Overall == o.Overall &&
		s.TotalMemory == o.TotalMemory &&
		s.UsedMemory == o.UsedMemory &&
		slices.Equal(s.PerCore, o.PerCore) &&
		slices.Equal(s.Unavailable, o.Unavailable)
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// BytesToMiB converts bytes to mebibytes by integer division (truncating).
func BytesToMiB(b uint64) uint64 {
	return b / BytesPerMiB
}
