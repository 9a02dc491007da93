package domain

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	cases := []struct {
		input   string
		want    Month
		wantErr bool
	}{
		{"january", "january", false},
		{"June", "june", false},
		{"  ALL  ", MonthAll, false},
		{"july", "", true},
		{"", "", true},
		{"mon", "", true},
	}
	for _, c := range cases {
		got, err := ParseMonth(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseMonth(%q): expected error", c.input)
			} else if !IsKind(err, KindInvalidInput) {
				t.Errorf("ParseMonth(%q): expected KindInvalidInput, got %v", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMonth(%q): unexpected error %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMonth(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		input   string
		want    Day
		wantErr bool
	}{
		{"monday", "monday", false},
		{"Sunday", "sunday", false},
		{"all", DayAll, false},
		{"funday", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseDay(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseDay(%q): expected error", c.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDay(%q): unexpected error %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDay(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	// Monday 2017-01-02 09:30 and Tuesday 2017-01-03 18:00.
	monday := Trip{StartTime: time.Date(2017, time.January, 2, 9, 30, 0, 0, time.UTC)}
	tuesday := Trip{StartTime: time.Date(2017, time.January, 3, 18, 0, 0, 0, time.UTC)}

	f := Filter{Month: "january", Day: DayAll}
	if !f.Matches(monday) || !f.Matches(tuesday) {
		t.Fatalf("january/all should match both trips")
	}

	f = Filter{Month: "january", Day: "monday"}
	if !f.Matches(monday) {
		t.Fatalf("january/monday should match the Monday trip")
	}
	if f.Matches(tuesday) {
		t.Fatalf("january/monday should not match the Tuesday trip")
	}

	f = Filter{Month: "february", Day: DayAll}
	if f.Matches(monday) {
		t.Fatalf("february filter should not match a January trip")
	}
}

func TestFilterIsAll(t *testing.T) {
	if !NoFilter.IsAll() {
		t.Fatalf("NoFilter should report IsAll")
	}
	if (Filter{Month: "may", Day: DayAll}).IsAll() {
		t.Fatalf("month-restricted filter should not report IsAll")
	}
}

func TestMonthTitle(t *testing.T) {
	if got := Month("january").Title(); got != "January" {
		t.Errorf("Title() = %q, want January", got)
	}
	if got := Day("monday").Title(); got != "Monday" {
		t.Errorf("Title() = %q, want Monday", got)
	}
}

func TestTitleWords(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"chicago", "Chicago"},
		{"new york city", "New York City"},
		{"all", "All"},
		{"", ""},
	}
	for _, c := range cases {
		if got := TitleWords(c.input); got != c.want {
			t.Errorf("TitleWords(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
