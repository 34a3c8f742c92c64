//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

package sysmon

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// MemoryStat is the physical memory reading of one pass, in bytes.
type MemoryStat struct {
	Total uint64
	Used  uint64
}

// Provider is the operating system metrics source. Every method may fail
// independently; a failure means the metric is unavailable on this host.
type Provider interface {
	// CPUPercents returns per-core utilization (0..100) indexed by core number.
	CPUPercents(ctx context.Context) ([]float64, error)
	// Memory returns total and used physical memory.
	Memory(ctx context.Context) (MemoryStat, error)
	// SystemName returns the OS or distribution name.
	SystemName(ctx context.Context) (string, error)
	// KernelVersion returns the running kernel release.
	KernelVersion(ctx context.Context) (string, error)
	// HostName returns the network host name.
	HostName(ctx context.Context) (string, error)
	// OSVersion returns the OS or distribution version.
	OSVersion(ctx context.Context) (string, error)
}

// GopsutilProvider reads host metrics through gopsutil.
type GopsutilProvider struct{}

// NewGopsutilProvider creates a provider backed by gopsutil.
func NewGopsutilProvider() *GopsutilProvider {
	return &GopsutilProvider{}
}

// CPUPercents uses interval=0, so each call reports the delta since the
// previous call (or since package init for the first one).
func (p *GopsutilProvider) CPUPercents(ctx context.Context) ([]float64, error) {
	return cpu.PercentWithContext(ctx, 0, true)
}

// Memory reads virtual memory totals.
func (p *GopsutilProvider) Memory(ctx context.Context) (MemoryStat, error) {
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{Total: vmem.Total, Used: vmem.Used}, nil
}

// SystemName returns the platform reported by gopsutil (e.g. "ubuntu", "darwin").
func (p *GopsutilProvider) SystemName(ctx context.Context) (string, error) {
	platform, _, _, err := host.PlatformInformationWithContext(ctx)
	return platform, err
}

// KernelVersion falls back to uname(2) where gopsutil cannot answer.
func (p *GopsutilProvider) KernelVersion(ctx context.Context) (string, error) {
	v, err := host.KernelVersionWithContext(ctx)
	if err == nil && v != "" {
		return v, nil
	}
	if fallback, uerr := unameRelease(); uerr == nil && fallback != "" {
		return fallback, nil
	}
	return v, err
}

// HostName returns os.Hostname.
func (p *GopsutilProvider) HostName(_ context.Context) (string, error) {
	return os.Hostname()
}

// OSVersion returns the platform version reported by gopsutil.
func (p *GopsutilProvider) OSVersion(ctx context.Context) (string, error) {
	_, _, version, err := host.PlatformInformationWithContext(ctx)
	return version, err
}
