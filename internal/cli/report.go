package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/zergmon/internal/errors"
	"github.com/agbru/zergmon/internal/format"
	"github.com/agbru/zergmon/internal/sysmon"
	"github.com/agbru/zergmon/internal/ui"
)

// ReportTitle heads the text report.
const ReportTitle = "Zerg Monitor"

// ReportOptions controls the text report.
type ReportOptions struct {
	// HideCores omits the per-core lines.
	HideCores bool
}

// Collect primes the sampler, waits one interval while a spinner runs on
// progressOut, then refreshes and queries the identity. It returns the
// context error if ctx is done before the interval elapses.
func Collect(ctx context.Context, s *sysmon.Sampler, interval time.Duration, progressOut io.Writer) (sysmon.Reading, error) {
	s.Prime(ctx)

	sp := newSpinner(progressOut)
	sp.UpdateSuffix(fmt.Sprintf(" Measuring CPU usage over %s...", interval))
	sp.Start()

	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		sp.Stop()
		return sysmon.Reading{}, apperrors.WrapError(ctx.Err(), "collecting sample")
	case <-timer.C:
	}

	snap := s.Refresh(ctx)
	id := s.Identity(ctx)
	sp.Stop()

	return sysmon.NewReading(id, snap), nil
}

// FormatReport renders r with the labels of the dashboard, colored per the
// current theme.
func FormatReport(r sysmon.Reading, opts ReportOptions) string {
	t := ui.GetCurrentTheme()
	var b strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", ui.Colorize(t.Label, label+":"), ui.Colorize(t.Bold, value))
	}

	b.WriteString(ui.Colorize(t.Title, ReportTitle) + "\n\n")

	for _, f := range r.Identity.Fields() {
		line(f.Label, f.Value.String())
	}

	b.WriteString("\n" + ui.Colorize(t.Section, "CPU Usage") + "\n")
	line("Overall CPU Usage", format.FormatPercent(r.Snapshot.Overall))
	if !opts.HideCores {
		for i, pct := range r.Snapshot.PerCore {
			fmt.Fprintf(&b, "  %-6s %7s\n", fmt.Sprintf("cpu%d", i), format.FormatPercent(pct))
		}
	}

	b.WriteString("\n" + ui.Colorize(t.Section, "Memory Usage") + "\n")
	line("Total Memory Usage", format.FormatMB(r.TotalMiB))
	line("Used Memory Usage", format.FormatMB(r.UsedMiB))

	if r.Snapshot.IsDegraded() {
		fmt.Fprintf(&b, "\n%s\n", ui.Colorize(t.Warning, "unavailable: "+strings.Join(r.Snapshot.Unavailable, ", ")))
	}
	return b.String()
}

// DisplayReport writes the text report to out.
func DisplayReport(out io.Writer, r sysmon.Reading, opts ReportOptions) {
	fmt.Fprint(out, FormatReport(r, opts))
}

// DisplayJSON writes r as an indented JSON document to out.
func DisplayJSON(out io.Writer, r sysmon.Reading) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return apperrors.WrapError(err, "encoding report")
	}
	return nil
}
