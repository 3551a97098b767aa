// dragon is Flappy Dragon, a terminal arcade game.
//
// Usage:
//
//	dragon                 - Play (same as "dragon play")
//	dragon play            - Play the game
//	dragon config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file (default: no logs)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - flap through the walls in your terminal",
	Long: `Flappy Dragon is a terminal arcade game. Your dragon falls under
gravity; flap to climb and fly through the gaps in the walls.
Every wall you pass scores a point and the next gap is narrower.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  dragon
  dragon play --backend tcell
  dragon play --seed 42 --log-file dragon.log
  dragon config --config ./my-dragon.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for this run. The game owns the terminal,
// so without --log-file logs are dropped.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = io.Discard
	closeLog := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeLog = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragon",
		Level:           level,
	})
	return logger, closeLog, nil
}
