package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridsearch/gridsearch"
	"github.com/katalvlaran/gridsearch/scenario"
)

var sessionScenario string

// sessionCmd plays the UI: it reads one command per line and answers each
// with a single-line JSON snapshot (or an error line).
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Read engine commands from stdin and print a JSON snapshot after each",
	Long: `Reads one command per line from stdin. Besides the scenario command
vocabulary (step [n], back [n], to-start, to-end, wall i j [on|off], unwall i j,
start i j, goal i j, strategy NAME, clear-walls) a session understands:

  show   print the snapshot including per-cell records
  path   print the current start→goal path and its cost
  quit   end the session

Blank lines and lines starting with # are ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := &scenario.Scenario{}
		if sessionScenario != "" {
			loaded, err := scenario.Load(sessionScenario)
			if err != nil {
				return err
			}
			sc = loaded
		}
		log := engineLogger(uuid.NewString())
		g, err := scenario.Build(sc, gridsearch.WithLogger(log))
		if err != nil {
			return err
		}
		log.Info("session started", "columns", g.Columns(), "rows", g.Rows())
		return runSession(g, cmd.InOrStdin(), cmd.OutOrStdout(), viper.GetBool("cells"), log)
	},
}

func init() {
	sessionCmd.Flags().StringVar(&sessionScenario, "scenario", "", "start from this scenario file instead of the reference grid")
}

// runSession executes commands read from in against g until EOF or quit.
// Command errors are reported on out and do not end the session.
func runSession(g *gridsearch.Grid, in io.Reader, out io.Writer, withCells bool, log *slog.Logger) error {
	enc := json.NewEncoder(out)
	sc := bufio.NewScanner(in)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "show":
			if err := enc.Encode(scenario.Capture(g, true)); err != nil {
				return err
			}
			continue
		case "path":
			if _, err := fmt.Fprintln(out, describePath(g)); err != nil {
				return err
			}
			continue
		}

		cmd, err := scenario.ParseCommand(line)
		if err == nil {
			err = cmd.Apply(g)
		}
		if err != nil {
			log.Warn("command rejected", "line", lineNo, "command", line, "err", err)
			if _, werr := fmt.Fprintf(out, "error: line %d: %v\n", lineNo, err); werr != nil {
				return werr
			}
			continue
		}
		if err := enc.Encode(scenario.Capture(g, withCells)); err != nil {
			return err
		}
	}
	return sc.Err()
}

// describePath renders the back-pointer chain as "path: (0,0) (1,1) ... cost=28".
func describePath(g *gridsearch.Grid) string {
	path, ok := g.Path()
	if !ok {
		return fmt.Sprintf("path: none (%s)", g.Outcome())
	}
	cells := make([]string, len(path))
	for k, c := range path {
		cells[k] = c.String()
	}
	cost, _ := g.PathCost()
	return fmt.Sprintf("path: %s cost=%d", strings.Join(cells, " "), cost)
}
