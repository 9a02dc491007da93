package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nreyesp/cityride/internal/domain"
)

// computeCmd loads the selected city and computes the filtered report.
// Runs inside bubbletea's command goroutine; the UI keeps animating.
func (m model) computeCmd(city string, f domain.Filter) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx := context.Background()

		ds, err := deps.LoadCity.Execute(ctx, deps.DataDir, city)
		if err != nil {
			deps.Logger.Error("tui.load_failed", "city", city, "err", err)
			return errMsg{err: err}
		}

		report, reportID, err := deps.ComputeStats.Execute(ctx, ds, f)
		if err != nil {
			deps.Logger.Error("tui.compute_failed", "city", city, "err", err)
			return errMsg{err: err}
		}

		deps.Logger.Info("tui.report_ready",
			"city", city, "filter", f.String(), "rows", report.Rows, "report_id", reportID)
		return statsMsg{dataset: ds.Filter(f), report: report}
	}
}
