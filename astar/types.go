package astar

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/heuristic"
	"github.com/katalvlaran/rollingdie/statespace"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures a single search run.
//
// Heuristic  – estimator used for f = g + h. Default: manhattan.
// StartDice  – orientation on the start cell. Default: 1 top, 3 east, 2 north.
// Logger     – receives run start/finish at debug level. Default: the global
//
//	zerolog logger tagged module=astar, capped at info so runs are quiet.
//
// OnExpand   – called for every node right before its successors are generated.
// OnGoal     – called once with the terminal node when the goal is reached.
type Options struct {
	Heuristic heuristic.Kind
	StartDice dice.Dice
	Logger    zerolog.Logger
	OnExpand  func(n *statespace.Node)
	OnGoal    func(n *statespace.Node)

	// err records the first invalid option.
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the configuration used when no option is given.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Manhattan,
		StartDice: dice.Default(),
		Logger:    log.Logger.Level(zerolog.InfoLevel).With().Str("module", "astar").Logger(),
		OnExpand:  func(*statespace.Node) {},
		OnGoal:    func(*statespace.Node) {},
	}
}

// WithHeuristic selects the estimator. Unknown kinds are rejected with
// ErrOptionViolation when Search runs.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) {
		if !k.Valid() {
			o.setErr(fmt.Errorf("%w: %w: %d", ErrOptionViolation, heuristic.ErrUnknownHeuristic, int(k)))
			return
		}
		o.Heuristic = k
	}
}

// WithStartDice overrides the starting orientation.
func WithStartDice(d dice.Dice) Option {
	return func(o *Options) {
		if !d.Valid() {
			o.setErr(fmt.Errorf("%w: %w: %v", ErrOptionViolation, dice.ErrInvalidDice, d))
			return
		}
		o.StartDice = d
	}
}

// WithLogger sets the logger used for run-level events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnExpand registers a callback invoked for each expanded node.
func WithOnExpand(fn func(n *statespace.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGoal registers a callback invoked with the terminal node.
func WithOnGoal(fn func(n *statespace.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result is the outcome of one search run.
//
// Path lists the states from start to goal inclusive, so Moves == len(Path)-1
// when Found. Generated counts frontier insertions, Popped frontier
// extractions and Visited the size of the closed set (the terminal node
// included). States counts every materialised node, the goal placeholder
// included.
type Result struct {
	RunID     uuid.UUID
	Heuristic heuristic.Kind
	Found     bool
	Terminal  *statespace.Node
	Path      []statespace.State
	Moves     int
	Generated int
	Popped    int
	Visited   int
	States    int
	Elapsed   time.Duration
}
