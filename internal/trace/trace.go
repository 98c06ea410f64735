// Package trace builds the illustrative step sequences replayed by the
// algorithm visualizer. Traces are derived from a small prefix of a sample
// and are unrelated to timing.
package trace

import (
	"fmt"
	"slices"

	"algolab/internal/algorithms"
	"algolab/internal/sample"
)

// Display caps per algorithm.
const (
	IterativeDisplayLimit = 10
	RecursiveDisplayLimit = 6
	SortDisplayLimit      = 8
)

// NoCursor marks a step with no active element.
const NoCursor = -1

// Step is one frame of an algorithm walkthrough.
type Step struct {
	Kind        algorithms.Kind `json:"kind"`
	Index       int             `json:"step"`
	Description string          `json:"description"`
	Sample      []int           `json:"sample,omitempty"`
	// Cursor is only meaningful when HasCursor is set.
	Cursor    int      `json:"cursor"`
	HasCursor bool     `json:"has_cursor"`
	CallStack []string `json:"call_stack,omitempty"`
}

// Active reports whether i is the highlighted element of the step.
func (s Step) Active(i int) bool {
	return s.HasCursor && s.Cursor == i
}

// Generate dispatches to the trace builder for kind.
func Generate(kind algorithms.Kind, arr []int) ([]Step, error) {
	switch kind {
	case algorithms.Iterative:
		return IterativeSteps(arr), nil
	case algorithms.Recursive:
		return RecursiveSteps(arr), nil
	case algorithms.Sort:
		return SortSteps(arr), nil
	}
	return nil, fmt.Errorf("no trace for %s", kind)
}

// IterativeSteps walks the first IterativeDisplayLimit elements: a start
// step, one step per element read, and a completion step.
func IterativeSteps(arr []int) []Step {
	display := sample.Truncate(arr, IterativeDisplayLimit)
	steps := make([]Step, 0, len(display)+2)

	steps = append(steps, Step{
		Kind:        algorithms.Iterative,
		Index:       0,
		Description: "Start iterating from index 0",
		Sample:      slices.Clone(display),
		Cursor:      0,
		HasCursor:   true,
	})

	for i, v := range display {
		steps = append(steps, Step{
			Kind:        algorithms.Iterative,
			Index:       i + 1,
			Description: fmt.Sprintf("Read element at index %d, value = %d", i, v),
			Sample:      slices.Clone(display),
			Cursor:      i,
			HasCursor:   true,
		})
	}

	steps = append(steps, Step{
		Kind:        algorithms.Iterative,
		Index:       len(display) + 1,
		Description: "Iteration finished - every element has been processed",
		Sample:      slices.Clone(display),
		Cursor:      NoCursor,
		HasCursor:   true,
	})
	return steps
}

// RecursiveSteps models sum(arr, i) over the first RecursiveDisplayLimit
// elements: one push per call, one pop per return, then an empty stack.
func RecursiveSteps(arr []int) []Step {
	display := sample.Truncate(arr, RecursiveDisplayLimit)
	n := len(display)
	steps := make([]Step, 0, 2*n+2)

	steps = append(steps, Step{
		Kind:        algorithms.Recursive,
		Index:       0,
		Description: "Call the recursive function with index 0",
		Sample:      slices.Clone(display),
		Cursor:      0,
		HasCursor:   true,
		CallStack:   []string{},
	})

	var stack []string
	for i := 0; i < n; i++ {
		frame := fmt.Sprintf("sum(arr, %d)", i)
		stack = append(stack, frame)
		steps = append(steps, Step{
			Kind:        algorithms.Recursive,
			Index:       len(steps),
			Description: "Push onto call stack: " + frame,
			Sample:      slices.Clone(display),
			Cursor:      i,
			HasCursor:   true,
			CallStack:   slices.Clone(stack),
		})
	}

	for i := n - 1; i >= 0; i-- {
		steps = append(steps, Step{
			Kind:        algorithms.Recursive,
			Index:       len(steps),
			Description: fmt.Sprintf("Pop from call stack: return %d", display[i]),
			Sample:      slices.Clone(display),
			Cursor:      i,
			HasCursor:   true,
			CallStack:   slices.Clone(stack),
		})
		stack = stack[:i]
	}

	steps = append(steps, Step{
		Kind:        algorithms.Recursive,
		Index:       len(steps),
		Description: "Recursion finished - call stack is empty",
		Sample:      slices.Clone(display),
		Cursor:      NoCursor,
		HasCursor:   true,
		CallStack:   []string{},
	})
	return steps
}

// SortSteps is always three frames: before, the sort call, after.
func SortSteps(arr []int) []Step {
	display := sample.Truncate(arr, SortDisplayLimit)
	return []Step{
		{
			Kind:        algorithms.Sort,
			Index:       0,
			Description: "Array before sorting",
			Sample:      slices.Clone(display),
		},
		{
			Kind:        algorithms.Sort,
			Index:       1,
			Description: "Calling the native comparison sort",
			Sample:      slices.Clone(display),
		},
		{
			Kind:        algorithms.Sort,
			Index:       2,
			Description: "Array after sorting (O(n log n))",
			Sample:      algorithms.NativeSort(display),
		},
	}
}
