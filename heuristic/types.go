package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/rollingdie/statespace"
)

// Sentinel errors.
var (
	// ErrUnknownHeuristic indicates a name outside the supported set.
	ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")
	// ErrNilGrid indicates an estimator was requested without a board.
	ErrNilGrid = errors.New("heuristic: grid is nil")
)

// Kind selects one of the supported estimators.
type Kind int

const (
	// Manhattan is the taxicab distance to the goal.
	Manhattan Kind = iota
	// Euclidean is the straight-line distance to the goal.
	Euclidean
	// Diagonal is the octile distance to the goal.
	Diagonal
	// FancyManhattan rewards states whose straight roll-out shows 1 on arrival.
	FancyManhattan
	// ForecastManhattan penalises states with a single way out.
	ForecastManhattan
)

var names = [...]string{
	Manhattan:         "manhattan",
	Euclidean:         "euclidean",
	Diagonal:          "diagonal",
	FancyManhattan:    "fancy_manhattan",
	ForecastManhattan: "forecast_manhattan",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Manhattan, Euclidean, Diagonal, FancyManhattan, ForecastManhattan}
}

// ParseKind maps a name to its Kind. Matching ignores case and surrounding
// whitespace; anything else is ErrUnknownHeuristic.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range names {
		if s == n {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownHeuristic, name, strings.Join(names[:], ", "))
}

// String returns the configuration name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("heuristic(%d)", int(k))
	}

	return names[k]
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(names)
}

// Admissible reports whether k never overestimates the remaining cost.
func (k Kind) Admissible() bool {
	switch k {
	case Manhattan, Euclidean, Diagonal:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(k))
	}

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

// Func estimates the remaining number of rolls from a state to the goal.
type Func func(s statespace.State) float64
