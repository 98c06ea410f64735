package insight

import (
	"fmt"
	"strings"

	"algolab/internal/algorithms"
	"algolab/internal/benchmark"
)

// Severity classifies an insight for display.
type Severity string

const (
	Success Severity = "success"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// LargeDatasetThreshold separates small and large datasets. Rows at or
// above it feed the sort slowdown check; rows strictly above it trigger the
// recursion caveat.
const LargeDatasetThreshold = 5000

// Insight is a short observation about a set of benchmark rows.
type Insight struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Analyze derives insights from rows in a fixed order: fastest overall,
// sort slowdown, linear growth, recursion caveat. Checks whose condition is
// not met are skipped. Empty input yields no insights.
func Analyze(rows []benchmark.ResultRow) []Insight {
	insights := []Insight{}
	if len(rows) == 0 {
		return insights
	}

	insights = append(insights, fastestOverall(rows))

	if in, ok := sortSlowdown(rows); ok {
		insights = append(insights, in)
	}
	if in, ok := linearGrowth(rows); ok {
		insights = append(insights, in)
	}
	if in, ok := recursionCaveat(rows); ok {
		insights = append(insights, in)
	}
	return insights
}

func fastestOverall(rows []benchmark.ResultRow) Insight {
	totals := make(map[algorithms.Kind]float64, 3)
	for _, r := range rows {
		for _, k := range algorithms.Kinds() {
			totals[k] += r.Timing(k)
		}
	}

	fastest := algorithms.Iterative
	for _, k := range algorithms.Kinds()[1:] {
		if totals[k] < totals[fastest] {
			fastest = k
		}
	}

	label := fastest.Label()
	return Insight{
		Title: fmt.Sprintf("%s is the fastest overall", label),
		Description: fmt.Sprintf("Based on total runtime across every dataset size, the %s algorithm performed best.",
			strings.ToLower(label)),
		Severity: Success,
	}
}

func sortSlowdown(rows []benchmark.ResultRow) (Insight, bool) {
	var iterSum, sortSum float64
	var count int
	for _, r := range rows {
		if r.DataSize >= LargeDatasetThreshold {
			iterSum += r.Iterative
			sortSum += r.Sort
			count++
		}
	}
	if count == 0 {
		return Insight{}, false
	}

	avgIter := iterSum / float64(count)
	avgSort := sortSum / float64(count)
	if avgSort <= avgIter*2 {
		return Insight{}, false
	}

	return Insight{
		Title: "Native sort slows down on large datasets",
		Description: fmt.Sprintf("The built-in sort's runtime grows markedly once n >= %d, consistent with O(n log n) "+
			"against O(n) for the iterative sum.", LargeDatasetThreshold),
		Severity: Warning,
	}, true
}

func linearGrowth(rows []benchmark.ResultRow) (Insight, bool) {
	first, last := rows[0], rows[len(rows)-1]

	// A zero first timing yields +Inf or NaN; both fail the comparison.
	growth := last.Iterative / first.Iterative
	expected := float64(last.DataSize) / float64(first.DataSize)
	if !(growth <= expected*1.5) {
		return Insight{}, false
	}

	return Insight{
		Title: "Iterative algorithm shows linear growth",
		Description: fmt.Sprintf("The runtime growth ratio (%.1fx) tracks the data growth ratio (%.1fx), "+
			"confirming O(n) complexity.", growth, expected),
		Severity: Info,
	}, true
}

func recursionCaveat(rows []benchmark.ResultRow) (Insight, bool) {
	for _, r := range rows {
		if r.RecursiveEstimated || r.DataSize > benchmark.DefaultRecursionLimit {
			return Insight{
				Title: "Recursion is limited by the call stack",
				Description: fmt.Sprintf("For datasets above %d elements the recursive approach risks exhausting the stack. "+
					"Its runtime there is an estimate projected from a smaller sample, not a direct measurement.",
					benchmark.DefaultRecursionLimit),
				Severity: Warning,
			}, true
		}
	}
	return Insight{}, false
}
