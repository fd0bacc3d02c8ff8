// connectx replays and inspects N-in-a-row games from the command line.
//
// Usage:
//
//	connectx list                        - List rule variants
//	connectx replay <file>...            - Replay recorded games
//	connectx replay --moves 3,3,4,4      - Replay an inline move list
//	connectx results [variant]           - Show stored results
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.connectx, ./configs)
//	--db <path>         - Results database (default: from config)
//	--log-level <level> - debug, info, warn or error
//
// CONNECTX_CONFIG, CONNECTX_DB and CONNECTX_LOG_LEVEL, from the environment
// or a .env file, fill in flags that were not given.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectx/internal/config"

	// Import variants to register them
	_ "github.com/vovakirdan/connectx/internal/variants"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Set by loadEnvironment before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectx",
	Short: "connectx - N-in-a-row rules engine",
	Long: `connectx replays N-in-a-row games on boards of any size with two or
more players, reporting wins and draws as they happen, including draws
declared before the board is full.

Available commands:
  list     - Show all rule variants
  replay   - Replay recorded games or an inline move list
  results  - View stored game results

Examples:
  connectx list
  connectx replay games/*.yaml
  connectx replay --variant trio --moves 3,4,2,0
  connectx results classic`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvironment,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(resultsCmd)
}

// loadEnvironment reads .env, applies environment overrides, loads the
// config file and builds the logger.
func loadEnvironment(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	envOverride(cmd, "config", "CONNECTX_CONFIG", &flagConfig)
	envOverride(cmd, "db", "CONNECTX_DB", &flagDBPath)
	envOverride(cmd, "log-level", "CONNECTX_LOG_LEVEL", &flagLogLevel)

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDBPath == "" {
		flagDBPath = cfg.Storage.Path
	}
	if flagLogLevel == "" {
		flagLogLevel = cfg.Log.Level
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "connectx",
		Level:           level,
	})
	logger.Debug("configuration loaded", "config", flagConfig, "db", flagDBPath, "variant", cfg.Game.Variant)
	return nil
}

// envOverride sets *target from the environment when the flag was not given.
func envOverride(cmd *cobra.Command, flag, env string, target *string) {
	if f := cmd.Flag(flag); f != nil && f.Changed {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*target = v
	}
}
