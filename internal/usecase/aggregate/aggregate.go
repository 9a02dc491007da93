// Package aggregate provides the pure aggregation primitives behind the
// statistics report: mode, per-value counts, sum, and mean.
package aggregate

import (
	"sort"
	"strconv"

	"github.com/nreyesp/cityride/internal/domain"
)

// CountBy counts occurrences of each value. The result is ordered by
// count descending, then value ascending, so output is deterministic.
func CountBy(values []string) []domain.CountItem {
	if len(values) == 0 {
		return nil
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	items := make([]domain.CountItem, 0, len(counts))
	for v, n := range counts {
		items = append(items, domain.CountItem{Value: v, Count: n})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Value < items[j].Value
	})
	return items
}

// Mode returns the most frequent value. Ties break on ascending value.
// ok is false for empty input.
func Mode(values []string) (item domain.CountItem, ok bool) {
	items := CountBy(values)
	if len(items) == 0 {
		return domain.CountItem{}, false
	}
	return items[0], true
}

// ModeRanked is Mode with an explicit tie order: among equally frequent
// values the one with the smallest rank wins. Used for calendar values,
// where "april" sorting before "january" would be wrong.
func ModeRanked(values []string, rank func(string) int) (item domain.CountItem, ok bool) {
	if len(values) == 0 {
		return domain.CountItem{}, false
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	for v, n := range counts {
		if !ok ||
			n > item.Count ||
			(n == item.Count && rank(v) < rank(item.Value)) {
			item = domain.CountItem{Value: v, Count: n}
			ok = true
		}
	}
	return item, ok
}

// ModeInt returns the most frequent integer. Ties break on the smaller value.
func ModeInt(values []int) (item domain.CountItem, ok bool) {
	if len(values) == 0 {
		return domain.CountItem{}, false
	}

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := 0, 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	return domain.CountItem{Value: strconv.Itoa(best), Count: bestCount}, true
}

// Sum totals the values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Mean averages the values. ok is false for empty input.
func Mean(values []float64) (mean float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	return Sum(values) / float64(len(values)), true
}

// MinMaxInt returns the smallest and largest value. ok is false for empty input.
func MinMaxInt(values []int) (min, max int, ok bool) {
	for i, v := range values {
		if i == 0 {
			min, max, ok = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}
