package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridsearch/logging"
)

// cfgFile stores an optional explicit path to a config file
// (if not provided we try ./gridsearch.config.{yaml,json,toml}).
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gridsearch",
	Short: "Step grid pathfinding searches forwards and backwards",
	Long: `gridsearch drives the stepwise grid search engine without a GUI:
it replays scenario files, runs an interactive command session on stdin,
and re-runs scenarios whenever they change on disk. Engine state is printed
as JSON for whatever front end draws it.`,
	SilenceUsage: true,
	// PersistentPreRunE loads config/env and sets up logging before any subcommand.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(".")
			viper.SetConfigName("gridsearch.config")
		}

		// GRIDSEARCH_LOG_LEVEL, GRIDSEARCH_LOG_FILE, GRIDSEARCH_CELLS
		viper.SetEnvPrefix("GRIDSEARCH")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if cfgFile != "" || !errors.As(err, &notFound) {
				return fmt.Errorf("config: %w", err)
			}
		}

		logger, err := logging.Init(viper.GetString("log-file"), viper.GetString("log-level"))
		if err != nil {
			return fmt.Errorf("logging: %w", err)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Close()
	},
}

// Execute is called from main.go and starts the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gridsearch.config.{yaml,json,toml})")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "append logs to this file instead of stderr")
	rootCmd.PersistentFlags().Bool("cells", false, "include per-cell heuristic/cost/back-pointer records in snapshots")

	// Bind these flags to viper keys so config/env/flags merge cleanly.
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("cells", rootCmd.PersistentFlags().Lookup("cells"))

	rootCmd.AddCommand(runCmd, sessionCmd, watchCmd, versionCmd)
}

// engineLogger tags the default logger with a run id for one engine lifetime.
func engineLogger(runID string) *slog.Logger {
	return slog.Default().With("run", runID)
}
