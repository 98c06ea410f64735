package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"algolab/internal/algorithms"
	"algolab/internal/sample"
)

// DefaultRecursionLimit is the largest sample the recursive kernel is run
// on. Larger sizes are measured on a prefix of this length and scaled.
const DefaultRecursionLimit = 5000

// ProgressFunc receives the completed percentage (0-100) after each row.
type ProgressFunc func(percent float64)

// Runner defines the interface for running benchmarks.
type Runner interface {
	Run(ctx context.Context, sizes []int, iterations int, progress ProgressFunc) ([]ResultRow, error)
}

// Observer is notified of measurements as they are taken.
type Observer interface {
	ObserveKernel(kind algorithms.Kind, dataSize int, ms float64)
	RowCompleted(row ResultRow, percent float64)
	RunFailed(err error)
}

// KernelError reports a kernel that failed while being timed.
type KernelError struct {
	Kind     algorithms.Kind
	DataSize int
	Err      error
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("%s kernel failed at n=%d: %v", e.Kind, e.DataSize, e.Err)
}

func (e *KernelError) Unwrap() error { return e.Err }

// Lab implements Runner by timing the three kernels in process.
type Lab struct {
	gen            *sample.Generator
	harness        *Harness
	sortFn         algorithms.SortFunc
	recursionLimit int
	observer       Observer
}

// Option configures a Lab.
type Option func(*Lab)

// WithGenerator sets the sample generator.
func WithGenerator(g *sample.Generator) Option {
	return func(l *Lab) { l.gen = g }
}

// WithClock sets the clock read by the timing harness.
func WithClock(c Clock) Option {
	return func(l *Lab) { l.harness = NewHarness(c) }
}

// WithSort replaces the comparison sort under test.
func WithSort(fn algorithms.SortFunc) Option {
	return func(l *Lab) { l.sortFn = fn }
}

// WithRecursionLimit overrides DefaultRecursionLimit. Rows extrapolated
// under a custom limit still carry RecursiveEstimated.
func WithRecursionLimit(n int) Option {
	return func(l *Lab) {
		if n > 0 {
			l.recursionLimit = n
		}
	}
}

// WithObserver attaches an observer.
func WithObserver(o Observer) Option {
	return func(l *Lab) { l.observer = o }
}

// NewLab builds a Lab. Without options it uses a randomly seeded generator,
// the system clock and the default sort.
func NewLab(opts ...Option) *Lab {
	l := &Lab{
		harness:        NewHarness(nil),
		sortFn:         algorithms.DefaultSort,
		recursionLimit: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.gen == nil {
		l.gen = sample.NewRandom()
	}
	return l
}

// RecursionLimit reports the largest directly measured recursive size.
func (l *Lab) RecursionLimit() int {
	return l.recursionLimit
}

// sink keeps kernel results observable so the work is not optimised away.
var sink int

// RunSize benchmarks all kernels on a fresh sample of dataSize elements.
func (l *Lab) RunSize(ctx context.Context, dataSize, iterations int) (ResultRow, error) {
	if dataSize <= 0 {
		return ResultRow{}, fmt.Errorf("%w: %d", ErrInvalidSize, dataSize)
	}
	if iterations <= 0 {
		return ResultRow{}, ErrInvalidIterations
	}

	arr := l.gen.Generate(dataSize)

	iterative, err := l.measure(algorithms.Iterative, dataSize, iterations, func() {
		sink = algorithms.IterativeSum(arr)
	})
	if err != nil {
		return ResultRow{}, err
	}
	l.observe(algorithms.Iterative, dataSize, iterative)

	safe := min(dataSize, l.recursionLimit)
	recursiveArr := arr[:safe]
	recursive, err := l.measure(algorithms.Recursive, dataSize, iterations, func() {
		sink = algorithms.RecursiveSum(recursiveArr, 0)
	})
	if err != nil {
		return ResultRow{}, err
	}
	estimated := dataSize > safe
	if estimated {
		recursive *= float64(dataSize) / float64(safe)
	}
	l.observe(algorithms.Recursive, dataSize, recursive)

	sorted, err := l.measure(algorithms.Sort, dataSize, iterations, func() {
		out := algorithms.SortWith(arr, l.sortFn)
		if len(out) > 0 {
			sink = out[0]
		}
	})
	if err != nil {
		return ResultRow{}, err
	}
	l.observe(algorithms.Sort, dataSize, sorted)

	row := ResultRow{
		DataSize:           dataSize,
		Iterative:          roundMs(iterative),
		Recursive:          roundMs(recursive),
		Sort:               roundMs(sorted),
		RecursiveEstimated: estimated,
	}

	slog.DebugContext(ctx, "benchmark row complete",
		"size", dataSize,
		"iterations", iterations,
		"iterative_ms", row.Iterative,
		"recursive_ms", row.Recursive,
		"sort_ms", row.Sort,
		"recursive_estimated", estimated,
	)
	return row, nil
}

// Run benchmarks every size in order. progress, when non-nil, is called
// after each row. The first failure aborts the run and no rows are
// returned.
func (l *Lab) Run(ctx context.Context, sizes []int, iterations int, progress ProgressFunc) ([]ResultRow, error) {
	rows := make([]ResultRow, 0, len(sizes))
	for i, size := range sizes {
		if err := ctx.Err(); err != nil {
			l.failed(err)
			return nil, err
		}

		row, err := l.RunSize(ctx, size, iterations)
		if err != nil {
			l.failed(err)
			return nil, fmt.Errorf("benchmark n=%d: %w", size, err)
		}
		rows = append(rows, row)

		percent := float64(i+1) / float64(len(sizes)) * 100
		if l.observer != nil {
			l.observer.RowCompleted(row, percent)
		}
		if progress != nil {
			progress(percent)
		}
	}
	return rows, nil
}

func (l *Lab) measure(kind algorithms.Kind, dataSize, iterations int, op func()) (float64, error) {
	ms, err := l.harness.Measure(guard(op), iterations)
	if err != nil {
		return 0, &KernelError{Kind: kind, DataSize: dataSize, Err: err}
	}
	return ms, nil
}

// observe reports a kernel timing as it appears in the row, so estimated
// recursive timings are reported scaled.
func (l *Lab) observe(kind algorithms.Kind, dataSize int, ms float64) {
	if l.observer != nil {
		l.observer.ObserveKernel(kind, dataSize, ms)
	}
}

func (l *Lab) failed(err error) {
	if l.observer != nil {
		l.observer.RunFailed(err)
	}
}

// guard converts a panicking kernel into an error.
func guard(op func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		op()
		return nil
	}
}

func roundMs(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Round(v*1e4) / 1e4
}
