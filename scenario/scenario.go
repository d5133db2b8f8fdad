package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/gridsearch"
)

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario. Unknown keys are rejected and omitted
// fields take the reference configuration. An empty document is the
// reference configuration itself.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	out := sc.withDefaults()
	if _, err := gridsearch.ParseStrategyKind(out.Strategy); err != nil {
		return nil, err
	}
	return &out, nil
}

// Build constructs the grid, paints walls, selects the strategy and runs
// every command. A failing command is reported with its 1-based position;
// the grid is returned alongside so callers can still inspect it.
func Build(sc *Scenario, opts ...gridsearch.Option) (*gridsearch.Grid, error) {
	s := sc.withDefaults()
	g, err := gridsearch.NewGrid(s.Columns, s.Rows, s.Start.Coord(), s.Goal.Coord(), opts...)
	if err != nil {
		return nil, err
	}
	for _, w := range s.Walls {
		if err := g.ToggleWall(w.I, w.J, true); err != nil {
			return nil, fmt.Errorf("wall %v: %w", w.Coord(), err)
		}
	}
	kind, err := gridsearch.ParseStrategyKind(s.Strategy)
	if err != nil {
		return nil, err
	}
	if err := g.SelectStrategy(kind); err != nil {
		return nil, err
	}
	for k, line := range s.Commands {
		cmd, err := ParseCommand(line)
		if err != nil {
			return g, fmt.Errorf("command %d %q: %w", k+1, line, err)
		}
		if err := cmd.Apply(g); err != nil {
			return g, fmt.Errorf("command %d %q: %w", k+1, line, err)
		}
	}
	return g, nil
}
