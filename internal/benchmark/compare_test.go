package benchmark

import (
	"testing"

	"algolab/internal/algorithms"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	row := ResultRow{DataSize: 1000, Iterative: 0.5, Recursive: 1.2, Sort: 0.1}

	entries := Rank(row)

	assert.Len(t, entries, 3)
	assert.Equal(t, algorithms.Sort, entries[0].Kind)
	assert.Equal(t, algorithms.Iterative, entries[1].Kind)
	assert.Equal(t, algorithms.Recursive, entries[2].Kind)
	assert.Equal(t, "Native Sort: 0.100 ms", entries[0].String())
}

func TestFastest_TieBreak(t *testing.T) {
	row := ResultRow{Iterative: 1, Recursive: 1, Sort: 1}
	assert.Equal(t, algorithms.Iterative, Fastest(row))

	row = ResultRow{Iterative: 2, Recursive: 1, Sort: 1}
	assert.Equal(t, algorithms.Recursive, Fastest(row))
}

func TestIsFastest(t *testing.T) {
	row := ResultRow{Iterative: 0.2, Recursive: 0.2, Sort: 0.9}
	assert.True(t, IsFastest(row, algorithms.Iterative))
	assert.True(t, IsFastest(row, algorithms.Recursive))
	assert.False(t, IsFastest(row, algorithms.Sort))
}

func TestMaxTiming(t *testing.T) {
	assert.Zero(t, MaxTiming(nil))
	rows := []ResultRow{
		{Iterative: 0.1, Recursive: 3.5, Sort: 0.2},
		{Iterative: 0.4, Recursive: 1.0, Sort: 2.0},
	}
	assert.Equal(t, 3.5, MaxTiming(rows))
	assert.Equal(t, 2.0, MaxTiming(rows, algorithms.Iterative, algorithms.Sort))
	assert.Equal(t, 0.4, MaxTiming(rows, algorithms.Iterative))
}
