package benchmark

import (
	"errors"
	"time"
)

// ErrInvalidIterations is returned when an iteration count is not positive.
var ErrInvalidIterations = errors.New("iterations must be positive")

// Clock supplies timestamps to the harness. time.Now carries a monotonic
// reading, so differences between two calls are immune to wall clock jumps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Harness times repeated executions of an operation.
type Harness struct {
	clock Clock
}

// NewHarness returns a harness reading from clock, or from the system clock
// when clock is nil.
func NewHarness(clock Clock) *Harness {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Harness{clock: clock}
}

// Measure runs op iterations times and returns the mean elapsed time per
// execution in fractional milliseconds. The first error returned by op
// aborts the measurement.
func (h *Harness) Measure(op func() error, iterations int) (float64, error) {
	if iterations <= 0 {
		return 0, ErrInvalidIterations
	}

	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := h.clock.Now()
		err := op()
		end := h.clock.Now()
		if err != nil {
			return 0, err
		}
		total += end.Sub(start)
	}

	mean := float64(total) / float64(iterations) / float64(time.Millisecond)
	if mean < 0 {
		mean = 0
	}
	return mean, nil
}
