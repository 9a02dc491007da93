package domain

import "time"

// CountItem is a value with its occurrence count, ordered by the caller.
type CountItem struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TimeStats describes the most frequent times of travel.
type TimeStats struct {
	MostCommonMonth CountItem `json:"most_common_month"`
	MostCommonDay   CountItem `json:"most_common_day"`
	MostCommonHour  CountItem `json:"most_common_hour"`
}

// StationStats describes the most popular stations and trip.
type StationStats struct {
	MostCommonStart CountItem `json:"most_common_start"`
	MostCommonEnd   CountItem `json:"most_common_end"`
	MostCommonTrip  CountItem `json:"most_common_trip"`
}

// DurationStats describes total and average trip duration in seconds.
type DurationStats struct {
	TotalSeconds float64 `json:"total_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
}

// BirthYearStats describes rider birth years when the column exists.
type BirthYearStats struct {
	Earliest   int       `json:"earliest"`
	MostRecent int       `json:"most_recent"`
	MostCommon CountItem `json:"most_common"`
}

// UserStats describes rider demographics. Genders and BirthYears are
// nil when the city's file lacks the column.
type UserStats struct {
	Types      []CountItem     `json:"types"`
	Genders    []CountItem     `json:"genders,omitempty"`
	BirthYears *BirthYearStats `json:"birth_years,omitempty"`
}

// Report is the computed statistics for one (city, filter) selection.
type Report struct {
	City       string    `json:"city"`
	Month      Month     `json:"month"`
	Day        Day       `json:"day"`
	Rows       int       `json:"rows"`
	Empty      bool      `json:"empty"`
	ComputedAt time.Time `json:"computed_at"`
	ElapsedMS  int64     `json:"elapsed_ms"`

	Time     TimeStats     `json:"time"`
	Stations StationStats  `json:"stations"`
	Duration DurationStats `json:"duration"`
	Users    UserStats     `json:"users"`
}
