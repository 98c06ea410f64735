package benchmark

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned for dataset sizes that are not positive.
var ErrInvalidSize = errors.New("dataset size must be positive")

// Bounds of the configurable maximum dataset size.
const (
	MinDataSize  = 100
	MaxDataSize  = 20000
	DataSizeStep = 100
)

var sizeLadder = []int{100, 500, 1000, 2000, 3000, 5000, 7500, 10000, 15000, 20000}

// DataSizes returns the ladder entries not exceeding max, followed by max
// itself when it is not already the last entry.
func DataSizes(max int) []int {
	var sizes []int
	for _, s := range sizeLadder {
		if s <= max {
			sizes = append(sizes, s)
		}
	}
	if max > MinDataSize && (len(sizes) == 0 || sizes[len(sizes)-1] != max) {
		sizes = append(sizes, max)
	}
	return sizes
}

// ParseSizes parses a comma separated list of positive sizes, keeping the
// given order.
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid dataset size %q: %w", field, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no dataset sizes given")
	}
	return sizes, nil
}
