package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/nreyesp/cityride/internal/domain"
	"github.com/nreyesp/cityride/internal/ports"
	"github.com/nreyesp/cityride/internal/usecase/aggregate"
)

// ComputeStats filters a loaded dataset and aggregates the four
// statistics sections. An optional store persists the report.
type ComputeStats struct {
	store ports.ReportStore
	now   func() time.Time
}

type ComputeOption func(*ComputeStats)

// WithNow is useful for tests.
func WithNow(now func() time.Time) ComputeOption {
	return func(uc *ComputeStats) { uc.now = now }
}

// NewComputeStats builds the use case. store may be nil to skip saving.
func NewComputeStats(store ports.ReportStore, opts ...ComputeOption) *ComputeStats {
	uc := &ComputeStats{store: store, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the report and, when a store is configured, the saved
// artifact id.
func (uc *ComputeStats) Execute(ctx context.Context, ds domain.Dataset, f domain.Filter) (domain.Report, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, "", err
	}

	started := uc.now()
	sub := ds.Filter(f)

	report := domain.Report{
		City:       ds.City.Name,
		Month:      f.Month,
		Day:        f.Day,
		Rows:       sub.Len(),
		Empty:      sub.Len() == 0,
		ComputedAt: started,
	}

	if !report.Empty {
		report.Time = timeStats(sub)
		report.Stations = stationStats(sub)
		report.Duration = durationStats(sub)
		report.Users = userStats(sub)
	}
	report.ElapsedMS = uc.now().Sub(started).Milliseconds()

	if err := ctx.Err(); err != nil {
		return domain.Report{}, "", err
	}

	if uc.store == nil {
		return report, "", nil
	}
	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	return report, id, nil
}

func timeStats(ds domain.Dataset) domain.TimeStats {
	months := make([]string, ds.Len())
	days := make([]string, ds.Len())
	hours := make([]int, ds.Len())
	for i, t := range ds.Trips {
		months[i] = strings.ToLower(t.Month().String())
		days[i] = strings.ToLower(t.Weekday().String())
		hours[i] = t.Hour()
	}

	month, _ := aggregate.ModeRanked(months, monthRank)
	day, _ := aggregate.ModeRanked(days, dayRank)
	hour, _ := aggregate.ModeInt(hours)

	return domain.TimeStats{
		MostCommonMonth: month,
		MostCommonDay:   day,
		MostCommonHour:  hour,
	}
}

func stationStats(ds domain.Dataset) domain.StationStats {
	starts := make([]string, ds.Len())
	ends := make([]string, ds.Len())
	pairs := make([]string, ds.Len())
	for i, t := range ds.Trips {
		starts[i] = t.StartStation
		ends[i] = t.EndStation
		pairs[i] = t.StationPair()
	}

	start, _ := aggregate.Mode(starts)
	end, _ := aggregate.Mode(ends)
	pair, _ := aggregate.Mode(pairs)

	return domain.StationStats{
		MostCommonStart: start,
		MostCommonEnd:   end,
		MostCommonTrip:  pair,
	}
}

func durationStats(ds domain.Dataset) domain.DurationStats {
	durations := make([]float64, ds.Len())
	for i, t := range ds.Trips {
		durations[i] = t.DurationSeconds
	}

	mean, _ := aggregate.Mean(durations)
	return domain.DurationStats{
		TotalSeconds: aggregate.Sum(durations),
		MeanSeconds:  mean,
	}
}

func userStats(ds domain.Dataset) domain.UserStats {
	types := make([]string, 0, ds.Len())
	for _, t := range ds.Trips {
		if t.UserType != "" {
			types = append(types, t.UserType)
		}
	}
	out := domain.UserStats{Types: aggregate.CountBy(types)}

	if ds.HasGender {
		genders := make([]string, 0, ds.Len())
		for _, t := range ds.Trips {
			if t.Gender != "" {
				genders = append(genders, t.Gender)
			}
		}
		out.Genders = aggregate.CountBy(genders)
	}

	if ds.HasBirthYear {
		years := make([]int, 0, ds.Len())
		for _, t := range ds.Trips {
			if t.BirthYear != 0 {
				years = append(years, t.BirthYear)
			}
		}
		if min, max, ok := aggregate.MinMaxInt(years); ok {
			mode, _ := aggregate.ModeInt(years)
			out.BirthYears = &domain.BirthYearStats{
				Earliest:   min,
				MostRecent: max,
				MostCommon: mode,
			}
		}
	}

	return out
}

func monthRank(name string) int {
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == name {
			return int(m)
		}
	}
	return 13
}

func dayRank(name string) int {
	// Week starts on Monday, matching the filter prompt order.
	order := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for i, d := range order {
		if d == name {
			return i
		}
	}
	return len(order)
}
