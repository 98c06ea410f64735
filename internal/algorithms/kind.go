package algorithms

import (
	"fmt"
	"strings"
)

// Kind identifies one of the benchmarked algorithms.
type Kind int

const (
	Iterative Kind = iota
	Recursive
	Sort
)

// Kinds returns every kind in its canonical order. Ties between kinds are
// always broken in this order.
func Kinds() []Kind {
	return []Kind{Iterative, Recursive, Sort}
}

func (k Kind) String() string {
	switch k {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	case Sort:
		return "sort"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label is the human-facing name used in tables and charts.
func (k Kind) Label() string {
	switch k {
	case Iterative:
		return "Iterative"
	case Recursive:
		return "Recursive"
	case Sort:
		return "Native Sort"
	default:
		return k.String()
	}
}

// Complexity is the asymptotic running time shown in chart legends.
func (k Kind) Complexity() string {
	if k == Sort {
		return "O(n log n)"
	}
	return "O(n)"
}

// ParseKind accepts the String form of a kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iterative", "iter":
		return Iterative, nil
	case "recursive", "rec":
		return Recursive, nil
	case "sort":
		return Sort, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (want iterative, recursive or sort)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
