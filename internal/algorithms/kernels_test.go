package algorithms

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSample(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(10000)
	}
	return out
}

func TestSums_Agree(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 1000, 5000} {
		s := randomSample(int64(n), n)

		want := 0
		for _, v := range s {
			want += v
		}

		assert.Equal(t, want, IterativeSum(s), "iterative n=%d", n)
		assert.Equal(t, want, RecursiveSum(s, 0), "recursive n=%d", n)
	}
}

func TestRecursiveSum_FromIndex(t *testing.T) {
	s := []int{1, 2, 3, 4}
	assert.Equal(t, 7, RecursiveSum(s, 2))
	assert.Equal(t, 0, RecursiveSum(s, 4))
	assert.Equal(t, 0, RecursiveSum(s, 10))
}

func TestNativeSort_Properties(t *testing.T) {
	in := randomSample(3, 500)
	orig := slices.Clone(in)

	out := NativeSort(in)

	assert.Equal(t, orig, in, "input must not be mutated")
	require.Len(t, out, len(in))
	assert.True(t, sort.IntsAreSorted(out))

	// Same multiset of values.
	counts := map[int]int{}
	for _, v := range in {
		counts[v]++
	}
	for _, v := range out {
		counts[v]--
	}
	for v, c := range counts {
		assert.Zero(t, c, "value %d", v)
	}
}

func TestNativeSort_Idempotent(t *testing.T) {
	in := randomSample(9, 200)
	once := NativeSort(in)
	twice := NativeSort(once)
	assert.Equal(t, once, twice)
}

func TestNativeSort_Empty(t *testing.T) {
	assert.Equal(t, []int{}, NativeSort(nil))
}

func TestSortWith_InjectedSort(t *testing.T) {
	called := false
	fn := func(s []int) {
		called = true
		sort.Ints(s)
	}

	out := SortWith([]int{3, 1, 2}, fn)
	assert.True(t, called)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestKind_ParseAndString(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKind(" Recursive ")
	require.NoError(t, err)
	assert.Equal(t, Recursive, k)

	_, err = ParseKind("bogus")
	assert.Error(t, err)
}

func TestKind_Complexity(t *testing.T) {
	assert.Equal(t, "O(n)", Iterative.Complexity())
	assert.Equal(t, "O(n)", Recursive.Complexity())
	assert.Equal(t, "O(n log n)", Sort.Complexity())
}
