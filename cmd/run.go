package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridsearch/gridsearch"
	"github.com/katalvlaran/gridsearch/scenario"
)

var runOut string

// runCmd replays a scenario file once and prints the final snapshot.
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Replay a scenario file and print the resulting engine state as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := engineLogger(uuid.NewString())
		snap, err := replayScenario(args[0], viper.GetBool("cells"), log)
		if err != nil {
			return err
		}
		if runOut == "" {
			return snap.Write(cmd.OutOrStdout())
		}
		if err := writeSnapshotFile(runOut, snap); err != nil {
			return err
		}
		log.Info("snapshot written", "path", runOut, "outcome", snap.Outcome.String())
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runOut, "out", "", "write the snapshot JSON to this file instead of stdout")
}

// replayScenario loads path, builds the grid, runs its commands and captures the state.
func replayScenario(path string, withCells bool, log *slog.Logger) (scenario.Snapshot, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return scenario.Snapshot{}, err
	}
	g, err := scenario.Build(sc, gridsearch.WithLogger(log))
	if err != nil {
		return scenario.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	snap := scenario.Capture(g, withCells)
	log.Debug("scenario replayed",
		"file", path,
		"strategy", snap.Strategy,
		"executed", snap.Executed,
		"outcome", snap.Outcome.String(),
	)
	return snap, nil
}

// writeSnapshotFile writes snap to path via a temporary file and rename,
// so readers never observe a partially written snapshot.
func writeSnapshotFile(path string, snap scenario.Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".gridsearch-*.json")
	if err != nil {
		return err
	}
	if err := snap.Write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
