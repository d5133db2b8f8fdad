package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const watchDebounce = 200 * time.Millisecond

var watchOut string

// watchCmd re-runs a scenario every time its file changes.
var watchCmd = &cobra.Command{
	Use:   "watch <scenario.yaml>",
	Short: "Re-run a scenario whenever the file changes and rewrite its snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchOut == "" {
			return fmt.Errorf("--out is required (snapshot JSON path)")
		}
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// initial run; a broken scenario is reported but does not stop the watch
		rerun(path, watchOut, viper.GetBool("cells"))

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch the directory: editors often replace files instead of writing in place.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return err
		}
		return watchLoop(ctx, watcher, path, func() {
			rerun(path, watchOut, viper.GetBool("cells"))
		})
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchOut, "out", "", "snapshot JSON file to rewrite after each run")
}

// watchLoop calls fire (debounced) for every write/create/rename of target
// until ctx is done or the watcher closes.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, target string, fire func()) error {
	var mu sync.Mutex
	var timer *time.Timer
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, fire)
			mu.Unlock()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		}
	}
}

// rerun replays the scenario with a fresh grid and writes its snapshot.
// Each run gets its own id so log lines of overlapping edits stay apart.
func rerun(path, out string, withCells bool) {
	runID := uuid.NewString()
	log := engineLogger(runID)
	snap, err := replayScenario(path, withCells, log)
	if err != nil {
		log.Error("scenario failed", "file", path, "err", err)
		return
	}
	if err := writeSnapshotFile(out, snap); err != nil {
		log.Error("snapshot write failed", "path", out, "err", err)
		return
	}
	log.Info("snapshot written", "file", path, "out", out, "outcome", snap.Outcome.String(), "executed", snap.Executed)
}
