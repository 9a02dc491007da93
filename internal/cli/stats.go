package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nreyesp/cityride/internal/domain"
	"github.com/nreyesp/cityride/internal/usecase"
)

func statsCmd() *cobra.Command {
	var workspace string
	var city string
	var month string
	var day string
	var format string
	var raw int
	var noSave bool

	c := &cobra.Command{
		Use:   "stats",
		Short: "Compute trip statistics for a city without the TUI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			f, err := parseFilterFlags(month, day)
			if err != nil {
				return err
			}

			ds, err := ws.loadCity.Execute(cmd.Context(), ws.dataDir(), city)
			if err != nil {
				return err
			}

			compute := ws.computeStats
			if noSave {
				compute = usecase.NewComputeStats(nil)
			}

			report, reportID, err := compute.Execute(cmd.Context(), ds, f)
			if err != nil {
				return err
			}

			if err := printReport(os.Stdout, report, reportID, ds.SkippedRows, format); err != nil {
				return err
			}

			if raw > 0 {
				printRawRows(os.Stdout, ds.Filter(f), raw)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&city, "city", "c", "", "City name (required; see `cityride cities list`)")
	c.Flags().StringVarP(&month, "month", "m", domain.All, "Month filter (january–june) or 'all'")
	c.Flags().StringVarP(&day, "day", "d", domain.All, "Day-of-week filter or 'all'")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().IntVar(&raw, "raw", 0, "Also print the first N raw rows of the filtered table")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a report artifact under reports/")

	_ = c.MarkFlagRequired("city")
	return c
}

func parseFilterFlags(month, day string) (domain.Filter, error) {
	m, err := domain.ParseMonth(month)
	if err != nil {
		return domain.Filter{}, err
	}
	d, err := domain.ParseDay(day)
	if err != nil {
		return domain.Filter{}, err
	}
	return domain.Filter{Month: m, Day: d}, nil
}

func printReport(w io.Writer, report domain.Report, reportID string, skipped int, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include reportID (optional) as a wrapper to avoid changing domain model.
		payload := map[string]any{
			"report_id": reportID,
			"report":    report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, report, reportID, skipped)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.Report, reportID string, skipped int) {
	fmt.Fprintf(w, "City:   %s\n", domain.TitleWords(report.City))
	fmt.Fprintf(w, "Filter: month=%s day=%s\n", report.Month.Title(), report.Day.Title())
	fmt.Fprintf(w, "Rows:   %d", report.Rows)
	if skipped > 0 {
		fmt.Fprintf(w, " (%d malformed rows skipped at load)", skipped)
	}
	fmt.Fprintln(w)
	if reportID != "" {
		fmt.Fprintf(w, "Report: %s\n", reportID)
	}
	fmt.Fprintln(w)

	if report.Empty {
		fmt.Fprintln(w, "No data available for the selected filters.")
		return
	}

	fmt.Fprintln(w, "Most Frequent Travel Times")
	fmt.Fprintf(w, "  Month: %s (%d trips)\n", domain.TitleWords(report.Time.MostCommonMonth.Value), report.Time.MostCommonMonth.Count)
	fmt.Fprintf(w, "  Day:   %s (%d trips)\n", domain.TitleWords(report.Time.MostCommonDay.Value), report.Time.MostCommonDay.Count)
	fmt.Fprintf(w, "  Hour:  %s:00 (%d trips)\n", report.Time.MostCommonHour.Value, report.Time.MostCommonHour.Count)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Popular Stations & Trip")
	fmt.Fprintf(w, "  Start: %s (%d trips)\n", report.Stations.MostCommonStart.Value, report.Stations.MostCommonStart.Count)
	fmt.Fprintf(w, "  End:   %s (%d trips)\n", report.Stations.MostCommonEnd.Value, report.Stations.MostCommonEnd.Count)
	fmt.Fprintf(w, "  Trip:  %s (%d trips)\n", report.Stations.MostCommonTrip.Value, report.Stations.MostCommonTrip.Count)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Trip Duration")
	fmt.Fprintf(w, "  Total: %.0f seconds\n", report.Duration.TotalSeconds)
	fmt.Fprintf(w, "  Mean:  %.2f seconds\n", report.Duration.MeanSeconds)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "User Stats")
	for _, item := range report.Users.Types {
		fmt.Fprintf(w, "  %-12s %d\n", item.Value, item.Count)
	}
	if len(report.Users.Genders) > 0 {
		fmt.Fprintln(w, "  Gender:")
		for _, item := range report.Users.Genders {
			fmt.Fprintf(w, "    %-10s %d\n", item.Value, item.Count)
		}
	} else {
		fmt.Fprintln(w, "  Gender data not available.")
	}
	if by := report.Users.BirthYears; by != nil {
		fmt.Fprintf(w, "  Birth year: earliest %d, most recent %d, most common %s\n",
			by.Earliest, by.MostRecent, by.MostCommon.Value)
	} else {
		fmt.Fprintln(w, "  Birth year data not available.")
	}

	fmt.Fprintf(w, "\nCompleted in %dms.\n", report.ElapsedMS)
}

func printRawRows(w io.Writer, ds domain.Dataset, n int) {
	if n > ds.Len() {
		n = ds.Len()
	}

	fmt.Fprintf(w, "\nRaw data (%d of %d rows):\n", n, ds.Len())
	for _, t := range ds.Trips[:n] {
		fmt.Fprintf(w, "  %s  %6.0fs  %s → %s  %s\n",
			t.StartTime.Format("2006-01-02 15:04"),
			t.DurationSeconds,
			t.StartStation,
			t.EndStation,
			t.UserType,
		)
	}
	if n < ds.Len() {
		fmt.Fprintf(w, "  … %d more rows\n", ds.Len()-n)
	}
}
