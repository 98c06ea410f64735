package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_LengthAndRange(t *testing.T) {
	g := New(42)
	for _, n := range []int{0, 1, 10, 1000} {
		s := g.Generate(n)
		assert.Len(t, s, n)
		for _, v := range s {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, MaxValue)
		}
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	s := New(1).Generate(-5)
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := New(7).Generate(50)
	b := New(7).Generate(50)
	assert.Equal(t, a, b)

	c := New(8).Generate(50)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Shared(t *testing.T) {
	assert.Len(t, Generate(25), 25)
}

func TestTruncate(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}

	out := Truncate(src, 3)
	assert.Equal(t, []int{1, 2, 3}, out)

	// The copy must not alias the source.
	out[0] = 99
	assert.Equal(t, 1, src[0])

	assert.Equal(t, src, Truncate(src, 10))
	assert.Empty(t, Truncate(src, -1))
}
