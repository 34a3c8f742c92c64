package sysmon

import (
	"context"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/logging"
)

const tracerName = "github.com/agbru/zergmon/internal/sysmon"

// Sampler turns Provider readings into Snapshots and Identities.
// It keeps no history; each call is an independent pass.
type Sampler struct {
	provider Provider
	logger   logging.Logger
}

// SamplerOption configures a Sampler during construction.
type SamplerOption func(*Sampler)

// WithLogger sets the logger used to report unavailable metrics.
func WithLogger(l logging.Logger) SamplerOption {
	return func(s *Sampler) { s.logger = l }
}

// NewSampler creates a Sampler reading from provider.
// A nil provider selects the gopsutil implementation.
func NewSampler(provider Provider, opts ...SamplerOption) *Sampler {
	if provider == nil {
		provider = NewGopsutilProvider()
	}
	s := &Sampler{provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	return s
}

// Prime takes and discards one CPU reading so that the next delta-based
// reading covers a full window.
func (s *Sampler) Prime(ctx context.Context) {
	_, _ = s.provider.CPUPercents(ctx)
}

// Refresh re-reads CPU and memory and returns a new Snapshot.
// Overall is the mean of the per-core readings (0 if there are none).
func (s *Sampler) Refresh(ctx context.Context) Snapshot {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sysmon.Refresh")
	defer span.End()

	var snap Snapshot

	perCore, err := s.provider.CPUPercents(ctx)
	if err != nil {
		s.degrade(MetricCPU, err)
		span.RecordError(err)
		snap.Unavailable = append(snap.Unavailable, MetricCPU)
	} else {
		snap.PerCore = slices.Clone(perCore)
		snap.Overall = Mean(snap.PerCore)
	}

	memStat, err := s.provider.Memory(ctx)
	if err != nil {
		s.degrade(MetricMemory, err)
		span.RecordError(err)
		snap.Unavailable = append(snap.Unavailable, MetricMemory)
	} else {
		snap.TotalMemory = memStat.Total
		snap.UsedMemory = memStat.Used
	}

	span.SetAttributes(
		attribute.Int("sysmon.cores", len(snap.PerCore)),
		attribute.Float64("sysmon.cpu.overall", snap.Overall),
		attribute.Int64("sysmon.memory.used_mib", int64(snap.UsedMiB())),
	)
	return snap
}

// Identity queries the four host identity strings. Each query is
// independent: a failing or empty one yields an unknown Value.
func (s *Sampler) Identity(ctx context.Context) Identity {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sysmon.Identity")
	defer span.End()

	return Identity{
		Name:          s.query(ctx, MetricSystemName, s.provider.SystemName),
		KernelVersion: s.query(ctx, MetricKernelVersion, s.provider.KernelVersion),
		HostName:      s.query(ctx, MetricHostName, s.provider.HostName),
		OSVersion:     s.query(ctx, MetricOSVersion, s.provider.OSVersion),
	}
}

func (s *Sampler) query(ctx context.Context, metric string, fn func(context.Context) (string, error)) Value {
	v, err := fn(ctx)
	if err != nil {
		s.degrade(metric, err)
		return Unknown()
	}
	v = strings.TrimSpace(v)
	if v == "" {
		s.logger.Debug("identity value empty", logging.String("metric", metric))
		return Unknown()
	}
	return Known(v)
}

func (s *Sampler) degrade(metric string, err error) {
	s.logger.Warn("metric unavailable",
		logging.String("metric", metric),
		logging.Err(apperrors.NewMetricUnavailable(metric, err)))
}
