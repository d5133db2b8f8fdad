package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsearch/gridsearch"
)

// Op names an engine command.
type Op int

// Engine operations, one per Grid command.
const (
	OpStepForward Op = iota + 1
	OpStepBackward
	OpToStart
	OpToEnd
	OpWall
	OpStart
	OpGoal
	OpStrategy
	OpClearWalls
)

var opNames = map[Op]string{
	OpStepForward:  "step-forward",
	OpStepBackward: "step-backward",
	OpToStart:      "to-start",
	OpToEnd:        "to-end",
	OpWall:         "wall",
	OpStart:        "start",
	OpGoal:         "goal",
	OpStrategy:     "strategy",
	OpClearWalls:   "clear-walls",
}

// aliases maps accepted spellings to operations.
var aliases = map[string]Op{
	"step-forward":  OpStepForward,
	"step":          OpStepForward,
	"forward":       OpStepForward,
	"step-backward": OpStepBackward,
	"back":          OpStepBackward,
	"backward":      OpStepBackward,
	"to-start":      OpToStart,
	"rewind":        OpToStart,
	"to-end":        OpToEnd,
	"end":           OpToEnd,
	"wall":          OpWall,
	"unwall":        OpWall,
	"start":         OpStart,
	"goal":          OpGoal,
	"strategy":      OpStrategy,
	"clear-walls":   OpClearWalls,
	"clear":         OpClearWalls,
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Command is one parsed engine command.
type Command struct {
	Op Op
	// Cell is the target of wall/start/goal.
	Cell Cell
	// Wall is the flag written by OpWall.
	Wall bool
	// Count repeats step-forward/step-backward (≥ 1).
	Count int
	// Strategy is the target of OpStrategy.
	Strategy gridsearch.StrategyKind
}

// ParseCommand parses one command line:
//
//	step-forward [n] | step [n]       one or n forward steps
//	step-backward [n] | back [n]      one or n backward steps
//	to-start | to-end
//	wall i j [on|off] | unwall i j
//	start i j | goal i j
//	strategy cost-first|heuristic-first
//	clear-walls
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrBadCommand)
	}
	op, ok := aliases[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrBadCommand, fields[0])
	}
	cmd := Command{Op: op, Count: 1}
	args := fields[1:]

	switch op {
	case OpStepForward, OpStepBackward:
		if len(args) > 1 {
			return Command{}, fmt.Errorf("%w: %s takes at most one count", ErrBadCommand, op)
		}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return Command{}, fmt.Errorf("%w: bad count %q", ErrBadCommand, args[0])
			}
			cmd.Count = n
		}
	case OpToStart, OpToEnd, OpClearWalls:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadCommand, op)
		}
	case OpWall:
		cmd.Wall = fields[0] != "unwall"
		if len(args) == 3 && fields[0] == "wall" {
			switch args[2] {
			case "on", "true", "1":
				cmd.Wall = true
			case "off", "false", "0":
				cmd.Wall = false
			default:
				return Command{}, fmt.Errorf("%w: wall flag must be on or off, got %q", ErrBadCommand, args[2])
			}
			args = args[:2]
		}
		fallthrough
	case OpStart, OpGoal:
		cell, err := parseCell(args)
		if err != nil {
			return Command{}, err
		}
		cmd.Cell = cell
	case OpStrategy:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: strategy takes one name", ErrBadCommand)
		}
		kind, err := gridsearch.ParseStrategyKind(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.Strategy = kind
	}
	return cmd, nil
}

func parseCell(args []string) (Cell, error) {
	if len(args) != 2 {
		return Cell{}, fmt.Errorf("%w: got %d values", ErrBadCoord, len(args))
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCoord, args[0])
	}
	j, err := strconv.Atoi(args[1])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCoord, args[1])
	}
	return Cell{I: i, J: j}, nil
}

// Apply runs the command against g.
func (c Command) Apply(g *gridsearch.Grid) error {
	switch c.Op {
	case OpStepForward:
		return repeat(c.Count, g.StepForward)
	case OpStepBackward:
		return repeat(c.Count, g.StepBackward)
	case OpToStart:
		return g.ToStart()
	case OpToEnd:
		return g.ToEnd()
	case OpWall:
		return g.ToggleWall(c.Cell.I, c.Cell.J, c.Wall)
	case OpStart:
		return g.MoveStart(c.Cell.I, c.Cell.J)
	case OpGoal:
		return g.MoveGoal(c.Cell.I, c.Cell.J)
	case OpStrategy:
		return g.SelectStrategy(c.Strategy)
	case OpClearWalls:
		g.ClearWalls()
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrBadCommand, c.Op)
	}
}

func repeat(n int, step func() error) error {
	for k := 0; k < n; k++ {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
