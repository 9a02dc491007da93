// Package gotacsv loads city trip CSV files into domain datasets using
// a gota dataframe for parsing.
package gotacsv

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/nreyesp/cityride/internal/domain"
	"github.com/nreyesp/cityride/internal/ports"
)

// timeLayout matches the published city files ("2017-01-01 00:00:36").
const timeLayout = "2006-01-02 15:04:05"

var requiredColumns = []string{
	domain.ColStartTime,
	domain.ColEndTime,
	domain.ColTripDuration,
	domain.ColStartStation,
	domain.ColEndStation,
	domain.ColUserType,
}

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.TripSource = (*Loader)(nil)

func (l *Loader) Load(city domain.CityRef) (domain.Dataset, error) {
	f, err := os.Open(city.Path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return domain.Dataset{}, &domain.OpError{
			Op:   "gotacsv.load",
			Kind: kind,
			Path: city.Path,
			Err:  err,
		}
	}
	defer f.Close()

	// Everything is read as string; times and numbers are parsed per
	// row so one bad cell drops one row, not the whole file.
	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		// A header with no data rows is a valid, empty dataset.
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			return domain.Dataset{City: city}, nil
		}
		return domain.Dataset{}, &domain.OpError{
			Op:   "gotacsv.load",
			Kind: domain.KindBadData,
			Path: city.Path,
			Err:  df.Err,
		}
	}

	names := make(map[string]bool, len(df.Names()))
	for _, n := range df.Names() {
		names[n] = true
	}
	for _, col := range requiredColumns {
		if !names[col] {
			return domain.Dataset{}, &domain.OpError{
				Op:   "gotacsv.load",
				Kind: domain.KindBadData,
				Path: city.Path,
				Err:  fmt.Errorf("missing required column %q", col),
			}
		}
	}

	ds := domain.Dataset{
		City:         city,
		HasGender:    names[domain.ColGender],
		HasBirthYear: names[domain.ColBirthYear],
	}

	n := df.Nrow()
	if n == 0 {
		return ds, nil
	}

	startTimes := df.Col(domain.ColStartTime).Records()
	endTimes := df.Col(domain.ColEndTime).Records()
	durations := df.Col(domain.ColTripDuration).Records()
	startStations := df.Col(domain.ColStartStation).Records()
	endStations := df.Col(domain.ColEndStation).Records()
	userTypes := df.Col(domain.ColUserType).Records()

	var genders, birthYears []string
	if ds.HasGender {
		genders = df.Col(domain.ColGender).Records()
	}
	if ds.HasBirthYear {
		birthYears = df.Col(domain.ColBirthYear).Records()
	}

	ds.Trips = make([]domain.Trip, 0, n)
	for i := 0; i < n; i++ {
		start, err := time.Parse(timeLayout, strings.TrimSpace(startTimes[i]))
		if err != nil {
			ds.SkippedRows++
			continue
		}
		duration, err := strconv.ParseFloat(strings.TrimSpace(durations[i]), 64)
		if err != nil {
			ds.SkippedRows++
			continue
		}

		trip := domain.Trip{
			StartTime:       start,
			DurationSeconds: duration,
			StartStation:    strings.TrimSpace(startStations[i]),
			EndStation:      strings.TrimSpace(endStations[i]),
			UserType:        strings.TrimSpace(userTypes[i]),
		}

		// End time is display-only; a bad value does not drop the row.
		if end, err := time.Parse(timeLayout, strings.TrimSpace(endTimes[i])); err == nil {
			trip.EndTime = end
		}

		if ds.HasGender {
			trip.Gender = strings.TrimSpace(genders[i])
		}
		if ds.HasBirthYear {
			// Birth years are exported as floats ("1992.0").
			if y, err := strconv.ParseFloat(strings.TrimSpace(birthYears[i]), 64); err == nil {
				trip.BirthYear = int(y)
			}
		}

		ds.Trips = append(ds.Trips, trip)
	}

	return ds, nil
}
