package app

import (
	"context"
	"io"

	"github.com/agbru/zergmon/internal/cli"
	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/logging"
	"github.com/agbru/zergmon/internal/sysmon"
)

// runOnce collects a single reading and prints it as text or JSON.
func (a *Application) runOnce(ctx context.Context, out io.Writer, sampler *sysmon.Sampler, logger logging.Logger) int {
	reading, err := cli.Collect(ctx, sampler, a.Config.Interval, a.ErrWriter)
	if err != nil {
		logger.Error("one-shot collection aborted", err)
		return apperrors.ExitCodeFor(err)
	}
	logger.Debug("reading collected",
		logging.Float64("cpu_overall", reading.Snapshot.Overall),
		logging.Uint64("memory_used_mib", reading.UsedMiB))

	if a.Config.JSON {
		if err := cli.DisplayJSON(out, reading); err != nil {
			logger.Error("writing report", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}
	cli.DisplayReport(out, reading, cli.ReportOptions{HideCores: a.Config.HideCores})
	return apperrors.ExitSuccess
}
