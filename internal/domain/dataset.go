package domain

// Dataset is one city's trips, loaded fresh each run.
type Dataset struct {
	City  CityRef
	Trips []Trip

	// Column availability; Washington files have neither.
	HasGender    bool
	HasBirthYear bool

	// Rows dropped at load time (unparseable start time or duration).
	SkippedRows int
}

// Len returns the number of loaded trips.
func (d Dataset) Len() int { return len(d.Trips) }

// Filter returns the subset of trips matching f. Pure: the receiver is
// unchanged and same inputs always yield the same subset.
func (d Dataset) Filter(f Filter) Dataset {
	if f.IsAll() {
		return d
	}

	out := d
	out.Trips = make([]Trip, 0, len(d.Trips))
	for _, t := range d.Trips {
		if f.Matches(t) {
			out.Trips = append(out.Trips, t)
		}
	}
	return out
}
