package benchmark

import (
	"fmt"
	"sort"

	"algolab/internal/algorithms"
)

// Entry is one algorithm's timing within a row.
type Entry struct {
	Kind algorithms.Kind
	Ms   float64
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %.3f ms", e.Kind.Label(), e.Ms)
}

// Rank orders the row's timings from fastest to slowest. Equal timings keep
// the canonical kind order.
func Rank(row ResultRow) []Entry {
	entries := make([]Entry, 0, 3)
	for _, k := range algorithms.Kinds() {
		entries = append(entries, Entry{Kind: k, Ms: row.Timing(k)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Ms < entries[j].Ms
	})
	return entries
}

// Fastest returns the first kind, in canonical order, with the row's
// minimum timing.
func Fastest(row ResultRow) algorithms.Kind {
	return Rank(row)[0].Kind
}

// IsFastest reports whether kind ties for the row's minimum timing. Used to
// highlight every winning cell in a table.
func IsFastest(row ResultRow, kind algorithms.Kind) bool {
	min := row.Iterative
	if row.Recursive < min {
		min = row.Recursive
	}
	if row.Sort < min {
		min = row.Sort
	}
	return row.Timing(kind) == min
}

// MaxTiming returns the largest timing across rows, for chart scaling.
// Only the given kinds are considered; none means all of them.
func MaxTiming(rows []ResultRow, kinds ...algorithms.Kind) float64 {
	if len(kinds) == 0 {
		kinds = algorithms.Kinds()
	}
	var max float64
	for _, r := range rows {
		for _, k := range kinds {
			if v := r.Timing(k); v > max {
				max = v
			}
		}
	}
	return max
}
