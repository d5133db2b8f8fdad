package scenario

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/gridsearch/gridsearch"
)

// Snapshot is the read-only engine state a UI needs after a command.
type Snapshot struct {
	Columns   int                `json:"columns"`
	Rows      int                `json:"rows"`
	Start     gridsearch.Coord   `json:"start"`
	Goal      gridsearch.Coord   `json:"goal"`
	Strategy  string             `json:"strategy,omitempty"`
	Requested uint               `json:"requestedSteps"`
	Executed  uint               `json:"executedSteps"`
	Outcome   gridsearch.Outcome `json:"outcome"`
	Current   *gridsearch.Coord  `json:"current,omitempty"`
	Open      []gridsearch.Coord `json:"open"`
	Closed    []gridsearch.Coord `json:"closed"`
	Walls     []gridsearch.Coord `json:"walls"`
	Path      []gridsearch.Coord `json:"path,omitempty"`
	PathCost  *uint              `json:"pathCost,omitempty"`
	Cells     []CellState        `json:"cells,omitempty"`
}

// CellState is the per-cell label data: heuristic, costs and back-pointer.
type CellState struct {
	I         int               `json:"i"`
	J         int               `json:"j"`
	Wall      bool              `json:"wall,omitempty"`
	Heuristic uint              `json:"h"`
	G         uint              `json:"g"`
	F         uint              `json:"f"`
	CameFrom  *gridsearch.Coord `json:"cameFrom,omitempty"`
	Center    gridsearch.Point  `json:"center"`
}

// Capture reads the current state of g. Per-cell records are included only
// when withCells is set.
func Capture(g *gridsearch.Grid, withCells bool) Snapshot {
	s := Snapshot{
		Columns:   g.Columns(),
		Rows:      g.Rows(),
		Start:     g.Start(),
		Goal:      g.Goal(),
		Requested: g.RequestedSteps(),
		Executed:  g.ExecutedSteps(),
		Outcome:   g.Outcome(),
		Open:      nonNil(g.OpenSet()),
		Closed:    nonNil(g.ClosedSet()),
		Walls:     nonNil(g.Walls()),
	}
	if kind, ok := g.Strategy(); ok {
		s.Strategy = kind.String()
	}
	if cur, ok := g.Current(); ok {
		s.Current = &cur
	}
	if path, ok := g.Path(); ok {
		s.Path = path
		cost, _ := g.PathCost()
		s.PathCost = &cost
	}
	if !withCells {
		return s
	}
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Columns(); i++ {
			n, err := g.Node(i, j)
			if err != nil {
				continue
			}
			cs := CellState{
				I:         i,
				J:         j,
				Wall:      n.IsWall(),
				Heuristic: n.Heuristic(),
				G:         n.GCost(),
				F:         n.FCost(),
			}
			if from, ok, _ := g.CameFrom(i, j); ok {
				cs.CameFrom = &from
			}
			cs.Center, _ = g.Center(i, j)
			s.Cells = append(s.Cells, cs)
		}
	}
	return s
}

// Write encodes s as indented JSON followed by a newline.
func (s Snapshot) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func nonNil(cs []gridsearch.Coord) []gridsearch.Coord {
	if cs == nil {
		return []gridsearch.Coord{}
	}
	return cs
}
