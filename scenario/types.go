// Package scenario defines the YAML scenario model, the command vocabulary
// shared by scenario files and interactive sessions, and sentinel errors.
package scenario

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/gridsearch"
)

// Sentinel errors for scenario operations.
var (
	// ErrBadCommand indicates a command line that does not parse.
	ErrBadCommand = errors.New("scenario: malformed command")
	// ErrBadCoord indicates a cell that is not a pair of integers.
	ErrBadCoord = errors.New("scenario: cell must be [i, j]")
)

// Reference configuration used for omitted scenario fields.
const (
	DefaultColumns  = 15
	DefaultRows     = 15
	DefaultStrategy = "cost-first"
)

var (
	// DefaultStart is the start cell of the reference configuration.
	DefaultStart = Cell{I: 3, J: 3}
	// DefaultGoal is the goal cell of the reference configuration.
	DefaultGoal = Cell{I: 8, J: 8}
)

// Cell is a grid position written as a flow sequence "[i, j]" or a mapping
// "{i: 1, j: 2}" in YAML.
type Cell struct {
	I, J int
}

// Coord converts the cell to an engine coordinate.
func (c Cell) Coord() gridsearch.Coord {
	return gridsearch.Coord{I: c.I, J: c.J}
}

// UnmarshalYAML accepts both the sequence and the mapping form.
func (c *Cell) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := value.Decode(&pair); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadCoord, value.Line, err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: line %d: got %d values", ErrBadCoord, value.Line, len(pair))
		}
		c.I, c.J = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			I *int `yaml:"i"`
			J *int `yaml:"j"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadCoord, value.Line, err)
		}
		if m.I == nil || m.J == nil {
			return fmt.Errorf("%w: line %d: both i and j are required", ErrBadCoord, value.Line)
		}
		c.I, c.J = *m.I, *m.J
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrBadCoord, value.Line)
	}
}

// Scenario describes a grid layout and the commands to run on it.
type Scenario struct {
	// Columns and Rows fix the grid size (default 15×15).
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	// Start and Goal place the markers (default (3,3) and (8,8)).
	Start *Cell `yaml:"start"`
	Goal  *Cell `yaml:"goal"`
	// Strategy names the search to select: "cost-first" or "heuristic-first".
	Strategy string `yaml:"strategy"`
	// Walls are painted before any command runs.
	Walls []Cell `yaml:"walls"`
	// Commands run in order after setup, using the ParseCommand vocabulary.
	Commands []string `yaml:"commands"`
}

// withDefaults fills omitted fields from the reference configuration.
func (s Scenario) withDefaults() Scenario {
	if s.Columns == 0 {
		s.Columns = DefaultColumns
	}
	if s.Rows == 0 {
		s.Rows = DefaultRows
	}
	if s.Start == nil {
		st := DefaultStart
		s.Start = &st
	}
	if s.Goal == nil {
		gl := DefaultGoal
		s.Goal = &gl
	}
	if s.Strategy == "" {
		s.Strategy = DefaultStrategy
	}
	return s
}
