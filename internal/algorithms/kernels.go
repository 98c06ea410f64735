package algorithms

import "slices"

// IterativeSum adds every element in a single pass.
func IterativeSum(sample []int) int {
	sum := 0
	for i := 0; i < len(sample); i++ {
		sum += sample[i]
	}
	return sum
}

// RecursiveSum returns sample[index] + RecursiveSum(sample, index+1).
// Stack depth grows linearly with len(sample); callers bound the input.
func RecursiveSum(sample []int, index int) int {
	if index >= len(sample) {
		return 0
	}
	return sample[index] + RecursiveSum(sample, index+1)
}

// SortFunc sorts a slice in place in ascending order.
type SortFunc func([]int)

// DefaultSort is the runtime's general purpose comparison sort.
var DefaultSort SortFunc = func(s []int) { slices.Sort(s) }

// NativeSort returns an ascending copy of sample using DefaultSort.
func NativeSort(sample []int) []int {
	return SortWith(sample, DefaultSort)
}

// SortWith returns an ascending copy of sample using fn. The input is never
// modified.
func SortWith(sample []int, fn SortFunc) []int {
	if fn == nil {
		fn = DefaultSort
	}
	out := slices.Clone(sample)
	if out == nil {
		out = []int{}
	}
	fn(out)
	return out
}
