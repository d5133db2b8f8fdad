package gridsearch

import "fmt"

// expander is the part of a strategy that differs between CostFirst and
// HeuristicFirst: how open nodes are ranked and how a discovered neighbour
// is updated. Everything else is the shared stepping loop in search.
type expander interface {
	kind() StrategyKind
	// rank orders open nodes; the smallest rank is expanded next.
	rank(n *Node) uint
	// discover updates neighbour nb reached from the expanded node cur.
	discover(g *Grid, cur, nb int)
}

func newExpander(kind StrategyKind) (expander, error) {
	switch kind {
	case CostFirst:
		return costFirst{}, nil
	case HeuristicFirst:
		return heuristicFirst{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, kind)
	}
}

// search is the run state of the active strategy. It stores no history:
// every step command replays the run from an empty frontier.
type search struct {
	exp       expander
	open      []bool
	closed    []bool
	openCount int
	requested uint
	executed  uint
	current   int
	outcome   Outcome
}

func newSearch(exp expander, size int) *search {
	return &search{
		exp:     exp,
		open:    make([]bool, size),
		closed:  make([]bool, size),
		current: noNode,
	}
}

// reset empties the frontier and closed set and forgets the executed count.
// The requested step count is kept.
func (s *search) reset() {
	clear(s.open)
	clear(s.closed)
	s.openCount = 0
	s.executed = 0
	s.current = noNode
	s.outcome = Idle
}

func (s *search) push(idx int) {
	if !s.open[idx] {
		s.open[idx] = true
		s.openCount++
	}
}

// pick returns the open node with the smallest rank. Ties go to the
// lexicographically smallest (i, j): columns are scanned outer, rows inner,
// and only a strictly smaller rank replaces the best so far.
func (s *search) pick(g *Grid) int {
	best := noNode
	var bestRank uint
	for i := 0; i < g.columns; i++ {
		for j := 0; j < g.rows; j++ {
			idx := g.index(i, j)
			if !s.open[idx] {
				continue
			}
			r := s.exp.rank(&g.nodes[idx])
			if best == noNode || r < bestRank {
				best, bestRank = idx, r
			}
		}
	}
	return best
}

// run expands nodes until the goal is selected, the frontier empties, or
// (unless unbounded) the requested step count is consumed. Selecting the
// goal costs no step, so a budget that ends right before it still converges.
func (s *search) run(g *Grid, unbounded bool) {
	st := &g.nodes[g.start]
	st.gCost = 0
	st.fCost = st.heuristic
	s.push(g.start)
	s.outcome = Expanding

	for s.openCount > 0 {
		cur := s.pick(g)
		if cur == g.goal {
			s.current = cur
			s.outcome = Converged
			break
		}
		if !unbounded && s.executed >= s.requested {
			break
		}
		s.current = cur
		s.open[cur] = false
		s.openCount--
		s.closed[cur] = true

		for _, nb := range g.nodes[cur].neighbours {
			if s.closed[nb] {
				continue
			}
			s.push(nb)
			s.exp.discover(g, cur, nb)
		}
		s.executed++
	}
	if s.openCount == 0 {
		s.outcome = Exhausted
	}
	if unbounded {
		s.requested = s.executed
	}
}

// replay resets node scratch state and the run, then runs again.
func (g *Grid) replay(unbounded bool) {
	g.resetNodes()
	if g.search == nil {
		return
	}
	g.search.reset()
	g.search.run(g, unbounded)
	g.log.Debug("gridsearch: replay",
		"strategy", g.search.exp.kind().String(),
		"requested", g.search.requested,
		"executed", g.search.executed,
		"outcome", g.search.outcome.String(),
	)
}

//----------------------------------------------------------------------------//
// Stepping commands
//----------------------------------------------------------------------------//

func (g *Grid) active() (*search, error) {
	if g.search == nil {
		return nil, ErrNoStrategySelected
	}
	return g.search, nil
}

// StepForward requests one more expansion and replays.
func (g *Grid) StepForward() error {
	s, err := g.active()
	if err != nil {
		return err
	}
	s.requested++
	g.replay(false)

	return nil
}

// StepBackward requests one expansion fewer (never below zero) and replays.
func (g *Grid) StepBackward() error {
	s, err := g.active()
	if err != nil {
		return err
	}
	if s.requested > 0 {
		s.requested--
	}
	g.replay(false)

	return nil
}

// ToStart requests zero expansions and replays: only start is open.
func (g *Grid) ToStart() error {
	s, err := g.active()
	if err != nil {
		return err
	}
	s.requested = 0
	g.replay(false)

	return nil
}

// ToEnd runs until convergence or exhaustion, then pins the requested
// step count to the executed one so StepBackward steps back from there.
func (g *Grid) ToEnd() error {
	if _, err := g.active(); err != nil {
		return err
	}
	g.replay(true)

	return nil
}

//----------------------------------------------------------------------------//
// Run state queries
//----------------------------------------------------------------------------//

// RequestedSteps returns the target step count (0 before SelectStrategy).
func (g *Grid) RequestedSteps() uint {
	if g.search == nil {
		return 0
	}
	return g.search.requested
}

// ExecutedSteps returns the expansions performed by the last replay.
func (g *Grid) ExecutedSteps() uint {
	if g.search == nil {
		return 0
	}
	return g.search.executed
}

// Outcome returns how the last replay ended.
func (g *Grid) Outcome() Outcome {
	if g.search == nil {
		return Idle
	}
	return g.search.outcome
}

// Current returns the node selected last: the most recently expanded node,
// or the goal once the search converged. ok is false before any expansion.
func (g *Grid) Current() (c Coord, ok bool) {
	if g.search == nil || g.search.current == noNode {
		return Coord{}, false
	}
	return g.coord(g.search.current), true
}

// OpenSet returns the frontier in row-major order.
func (g *Grid) OpenSet() []Coord {
	if g.search == nil {
		return nil
	}
	return g.collect(g.search.open)
}

// ClosedSet returns the expanded nodes in row-major order.
func (g *Grid) ClosedSet() []Coord {
	if g.search == nil {
		return nil
	}
	return g.collect(g.search.closed)
}

// InOpenSet reports whether (i,j) is on the frontier.
func (g *Grid) InOpenSet(i, j int) (bool, error) {
	idx, err := g.checked(i, j)
	if err != nil || g.search == nil {
		return false, err
	}
	return g.search.open[idx], nil
}

// InClosedSet reports whether (i,j) has been expanded.
func (g *Grid) InClosedSet(i, j int) (bool, error) {
	idx, err := g.checked(i, j)
	if err != nil || g.search == nil {
		return false, err
	}
	return g.search.closed[idx], nil
}

func (g *Grid) collect(member []bool) []Coord {
	out := []Coord{}
	for idx, in := range member {
		if in {
			out = append(out, g.coord(idx))
		}
	}
	return out
}
