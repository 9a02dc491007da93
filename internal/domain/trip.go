package domain

import "time"

// Column names as they appear in the published city CSV files.
// Washington files carry no Gender or Birth Year column.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Trip is a single bike rental event.
type Trip struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64
	StartStation    string
	EndStation      string
	UserType        string

	// Optional demographics; zero values mean "not in this city's file".
	Gender    string
	BirthYear int
}

// Month returns the calendar month the trip started in.
func (t Trip) Month() time.Month { return t.StartTime.Month() }

// Weekday returns the day of week the trip started on.
func (t Trip) Weekday() time.Weekday { return t.StartTime.Weekday() }

// Hour returns the hour of day (0-23) the trip started at.
func (t Trip) Hour() int { return t.StartTime.Hour() }

// StationPair renders the start→end combination used for the
// "most frequent trip" statistic.
func (t Trip) StationPair() string {
	return t.StartStation + " → " + t.EndStation
}

// CityRef is a lightweight reference to a city's CSV file on disk.
type CityRef struct {
	Name string
	Path string
}
