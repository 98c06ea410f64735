package benchmark

import (
	"time"

	"algolab/internal/algorithms"

	"github.com/google/uuid"
)

// ResultRow holds the mean timings, in milliseconds, for one dataset size.
type ResultRow struct {
	DataSize  int     `json:"data_size"`
	Iterative float64 `json:"iterative_ms"`
	Recursive float64 `json:"recursive_ms"`
	Sort      float64 `json:"sort_ms"`
	// RecursiveEstimated is set when Recursive was extrapolated from a
	// truncated sample instead of measured directly.
	RecursiveEstimated bool `json:"recursive_estimated,omitempty"`
}

// Timing returns the timing recorded for kind.
func (r ResultRow) Timing(kind algorithms.Kind) float64 {
	switch kind {
	case algorithms.Iterative:
		return r.Iterative
	case algorithms.Recursive:
		return r.Recursive
	case algorithms.Sort:
		return r.Sort
	}
	return 0
}

// Run represents the rows produced by a single full benchmark.
type Run struct {
	ID         string      `json:"id"`
	Timestamp  time.Time   `json:"timestamp"`
	Iterations int         `json:"iterations"`
	Rows       []ResultRow `json:"rows"`
}

// NewRun wraps rows in a Run stamped with a fresh ID and the current time.
func NewRun(iterations int, rows []ResultRow) Run {
	return Run{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Iterations: iterations,
		Rows:       rows,
	}
}

// Estimated reports whether any row carries an extrapolated recursive time.
func (r Run) Estimated() bool {
	for _, row := range r.Rows {
		if row.RecursiveEstimated {
			return true
		}
	}
	return false
}
