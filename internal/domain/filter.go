package domain

import (
	"fmt"
	"strings"
	"time"
)

// Month is a lowercase month name filter value, or All.
type Month string

// Day is a lowercase day-of-week filter value, or All.
type Day string

// All disables a filter dimension.
const All = "all"

const (
	MonthAll Month = All
	DayAll   Day   = All
)

// ValidMonths lists the accepted month filter values. The published
// datasets cover January through June only.
var ValidMonths = []Month{
	"january", "february", "march", "april", "may", "june", MonthAll,
}

// ValidDays lists the accepted day filter values.
var ValidDays = []Day{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", DayAll,
}

// ParseMonth validates and normalizes a month filter value.
func ParseMonth(s string) (Month, error) {
	in := Month(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range ValidMonths {
		if in == m {
			return m, nil
		}
	}
	return "", &OpError{
		Op:   "filter.parsemonth",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("unknown month %q (expected one of: %s)", s, joinMonths(ValidMonths)),
	}
}

// ParseDay validates and normalizes a day filter value.
func ParseDay(s string) (Day, error) {
	in := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range ValidDays {
		if in == d {
			return d, nil
		}
	}
	return "", &OpError{
		Op:   "filter.parseday",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("unknown day %q (expected one of: %s)", s, joinDays(ValidDays)),
	}
}

// Matches reports whether a calendar month satisfies this filter value.
func (m Month) Matches(cm time.Month) bool {
	return m == MonthAll || string(m) == strings.ToLower(cm.String())
}

// Matches reports whether a weekday satisfies this filter value.
func (d Day) Matches(wd time.Weekday) bool {
	return d == DayAll || string(d) == strings.ToLower(wd.String())
}

// Title renders the value for display ("january" → "January").
func (m Month) Title() string { return TitleWords(string(m)) }

// Title renders the value for display ("monday" → "Monday").
func (d Day) Title() string { return TitleWords(string(d)) }

// Filter restricts a dataset by start-time month and/or day of week.
type Filter struct {
	Month Month
	Day   Day
}

// NoFilter keeps every trip.
var NoFilter = Filter{Month: MonthAll, Day: DayAll}

// IsAll reports whether the filter keeps every trip.
func (f Filter) IsAll() bool { return f.Month == MonthAll && f.Day == DayAll }

// Matches reports whether a trip satisfies both constraints.
func (f Filter) Matches(t Trip) bool {
	return f.Month.Matches(t.Month()) && f.Day.Matches(t.Weekday())
}

func (f Filter) String() string {
	return fmt.Sprintf("month=%s day=%s", f.Month, f.Day)
}

// TitleWords capitalizes each space-separated word for display
// ("new york city" → "New York City").
func TitleWords(s string) string {
	out := []rune(s)
	upper := true
	for i, r := range out {
		if upper && r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
		upper = r == ' '
	}
	return string(out)
}

func joinMonths(ms []Month) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

func joinDays(ds []Day) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}
