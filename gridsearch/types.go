// Package gridsearch defines core types, options, and sentinel errors
// for the stepwise grid search engine of github.com/katalvlaran/gridsearch.
package gridsearch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for gridsearch operations.
var (
	// ErrInvalidIndex indicates a coordinate outside [0, columns) × [0, rows).
	ErrInvalidIndex = errors.New("gridsearch: cell index out of range")
	// ErrInvalidPlacement indicates start/goal placed on a wall or onto the other marker.
	ErrInvalidPlacement = errors.New("gridsearch: invalid start/goal placement")
	// ErrNoStrategySelected indicates a step command issued before SelectStrategy.
	ErrNoStrategySelected = errors.New("gridsearch: no search strategy selected")
	// ErrUnknownStrategy indicates a StrategyKind outside {CostFirst, HeuristicFirst}.
	ErrUnknownStrategy = errors.New("gridsearch: unknown search strategy")
	// ErrBadDimensions indicates grid dimensions outside [1, MaxDimension].
	ErrBadDimensions = errors.New("gridsearch: grid dimensions out of range")
)

const (
	// MaxDimension bounds both the number of columns and rows.
	MaxDimension = 20

	// OrthogonalCost is the movement cost between two cells sharing a row or column.
	OrthogonalCost uint = 10
	// DiagonalCost approximates OrthogonalCost·√2 in integers.
	DiagonalCost uint = 14

	// InfCost is the sentinel g/f cost of a node not reached in the current run.
	// A simple path visits each cell once, so no real cost can reach it.
	InfCost = MaxDimension * MaxDimension * DiagonalCost

	noNode = -1
)

// Coord addresses a cell by column I and row J.
type Coord struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
}

// String renders the coordinate as "(i,j)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// Point is a position on the caller's canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StrategyKind tags one of the two search strategies.
type StrategyKind int

const (
	// CostFirst expands the open node with the smallest g+h (A*).
	CostFirst StrategyKind = iota + 1
	// HeuristicFirst expands the open node with the smallest heuristic (greedy best-first).
	HeuristicFirst
)

// String returns the scenario/CLI spelling of the strategy.
func (k StrategyKind) String() string {
	switch k {
	case CostFirst:
		return "cost-first"
	case HeuristicFirst:
		return "heuristic-first"
	default:
		return fmt.Sprintf("strategy(%d)", int(k))
	}
}

// ParseStrategyKind maps "cost-first"/"astar" and "heuristic-first"/"greedy"
// to a StrategyKind. Anything else yields ErrUnknownStrategy.
func ParseStrategyKind(s string) (StrategyKind, error) {
	switch s {
	case "cost-first", "costfirst", "astar", "a*":
		return CostFirst, nil
	case "heuristic-first", "heuristicfirst", "greedy":
		return HeuristicFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Outcome is the terminal state of the last replay.
type Outcome int

const (
	// Idle: no strategy selected, or nothing has run yet.
	Idle Outcome = iota
	// Expanding: the step budget ran out with frontier nodes left.
	Expanding
	// Converged: the goal was dequeued.
	Converged
	// Exhausted: the open set emptied before the goal was reached.
	Exhausted
)

// String returns a lower-case label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Expanding:
		return "expanding"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText lets outcomes appear as strings in JSON snapshots.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Options configures cell geometry and diagnostics of a Grid.
//
// CellWidth, CellHeight – size of one cell on the caller's canvas (must be > 0).
// OriginX, OriginY      – canvas position of the grid's top-left corner.
// Logger                – receives Debug records for rebuilds and replays.
type Options struct {
	CellWidth  float64
	CellHeight float64
	OriginX    float64
	OriginY    float64
	Logger     *slog.Logger
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithCellSize sets the canvas size of a single cell.
// Non-positive values panic.
func WithCellSize(w, h float64) Option {
	return func(o *Options) {
		if w <= 0 || h <= 0 {
			panic("gridsearch: cell size must be positive")
		}
		o.CellWidth, o.CellHeight = w, h
	}
}

// WithOrigin sets the canvas position of the grid's top-left corner.
func WithOrigin(x, y float64) Option {
	return func(o *Options) {
		o.OriginX, o.OriginY = x, y
	}
}

// WithLogger routes engine diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns 40×40 cells at the origin and a discarding logger.
func DefaultOptions() Options {
	return Options{
		CellWidth:  40,
		CellHeight: 40,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
