package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/console"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

const (
	backendTUI   = "tui"
	backendTcell = "tcell"
)

var (
	flagBackend string
	flagFPS     int
	flagSeed    int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start the game at its main menu.

Controls:
  P/Enter      - Play / play again
  Space/Up/W   - Flap
  Q/Esc        - Quit (from the menu or the end screen)
  Ctrl+C       - Exit immediately

Backends:
  tui    - Bubble Tea (default)
  tcell  - draws straight to the terminal with tcell

Examples:
  dragon play
  dragon play --backend tcell
  dragon play --fps 30 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Host backend: tui or tcell")
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Host tick rate (frames per second)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	cfg, src, err := config.LoadDragonWithSource(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", src)

	rt := core.RuntimeConfig{
		ScreenW:  cfg.Field.Width,
		ScreenH:  cfg.Field.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger.Info("seed", "value", rt.Seed)

	// The field has a fixed size; a smaller terminal clips it
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < rt.ScreenW || h < rt.ScreenH {
			logger.Warn("terminal smaller than field", "terminal", fmt.Sprintf("%dx%d", w, h),
				"field", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH))
		}
	}

	game := dragon.New(cfg, rand.New(rand.NewSource(rt.Seed)))

	switch flagBackend {
	case backendTUI:
		err = tui.Run(game, rt, logger)
	case backendTcell:
		err = console.Run(game, rt, logger)
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTUI, backendTcell)
	}
	if err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("bye", "score", game.Score())
	return nil
}
