package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/logging"
	"github.com/agbru/zergmon/internal/metrics"
	"github.com/agbru/zergmon/internal/server"
	"github.com/agbru/zergmon/internal/sysmon"
	"github.com/agbru/zergmon/internal/tui"
)

// runHeadless runs the sampler loop and the exporter until ctx is done.
func (a *Application) runHeadless(ctx context.Context, sampler *sysmon.Sampler, logger logging.Logger) int {
	exporter := metrics.NewExporter()
	srv := server.New(a.Config.MetricsAddr, exporter, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.ListenAndServe(gctx) })
	g.Go(func() error {
		a.poll(gctx, sampler, exporter, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("exporter failed", err, logging.String("addr", a.Config.MetricsAddr))
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// poll publishes one refresh per interval to exporter until ctx is done.
// The identity is published once, or on every tick with -refresh-identity.
func (a *Application) poll(ctx context.Context, sampler *sysmon.Sampler, exporter *metrics.Exporter, logger logging.Logger) {
	exporter.SetIdentity(sampler.Identity(ctx))
	exporter.Observe(sampler.Refresh(ctx))

	ticker := time.NewTicker(a.Config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("sampler loop stopped")
			return
		case <-ticker.C:
			if a.Config.RefreshIdentity {
				exporter.SetIdentity(sampler.Identity(ctx))
			}
			snap := sampler.Refresh(ctx)
			exporter.Observe(snap)
			logger.Debug("refreshed",
				logging.Float64("cpu_overall", snap.Overall),
				logging.Uint64("memory_used_mib", snap.UsedMiB()))
		}
	}
}

// runTUI launches the dashboard, with the exporter alongside when
// -metrics-addr is set.
func (a *Application) runTUI(ctx context.Context, sampler *sysmon.Sampler, logger logging.Logger) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var exporter *metrics.Exporter
	if a.Config.MetricsAddr != "" {
		exporter = metrics.NewExporter()
		srv := server.New(a.Config.MetricsAddr, exporter, logger)
		g.Go(func() error { return srv.ListenAndServe(gctx) })
	}

	code := tui.Run(gctx, sampler, exporter, a.Config, Version)
	cancel()

	if err := g.Wait(); err != nil {
		logger.Error("exporter failed", err, logging.String("addr", a.Config.MetricsAddr))
		fmt.Fprintf(a.ErrWriter, "Exporter error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return code
}
