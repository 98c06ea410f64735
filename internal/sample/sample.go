package sample

import (
	"math/rand"
	"sync"
	"time"
)

// MaxValue is the exclusive upper bound of generated values.
const MaxValue = 10000

// Generator produces random integer samples from an injectable source.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator seeded with seed. Two generators built with the
// same seed produce the same samples.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom returns a generator seeded from the wall clock.
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

// Generate returns length values drawn uniformly from [0, MaxValue).
// A negative length yields an empty sample.
func (g *Generator) Generate(length int) []int {
	if length <= 0 {
		return []int{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]int, length)
	for i := range out {
		out[i] = g.rng.Intn(MaxValue)
	}
	return out
}

var shared = NewRandom()

// Generate draws a sample from the process-wide generator.
func Generate(length int) []int {
	return shared.Generate(length)
}

// Truncate returns at most n leading elements of s as a new slice.
func Truncate(s []int, n int) []int {
	if n < 0 {
		n = 0
	}
	if len(s) < n {
		n = len(s)
	}
	out := make([]int, n)
	copy(out, s[:n])
	return out
}
