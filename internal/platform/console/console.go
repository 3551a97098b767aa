// Package console runs a game directly on a tcell screen, without Bubble Tea.
package console

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/platform"
)

// colors maps core colors to tcell colors.
var colors = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorBlack:   tcell.ColorBlack,
	core.ColorRed:     tcell.ColorRed,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorNavy:    tcell.ColorNavy,
	core.ColorMagenta: tcell.ColorPurple,
	core.ColorCyan:    tcell.ColorTeal,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorGray:    tcell.ColorGray,
}

// Style returns the tcell style for a cell.
func Style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(colors[c.FG]).Background(colors[c.BG])
}

// Action maps a tcell key event to a game action.
// The second result is true for Ctrl+C, which leaves without asking the game.
func Action(e *tcell.EventKey) (core.Action, bool) {
	switch e.Key() {
	case tcell.KeyCtrlC:
		return core.ActionNone, true
	case tcell.KeyUp:
		return core.ActionFlap, false
	case tcell.KeyEnter:
		return core.ActionPlay, false
	case tcell.KeyEscape:
		return core.ActionQuit, false
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ', 'w', 'W':
			return core.ActionFlap, false
		case 'p', 'P':
			return core.ActionPlay, false
		case 'q', 'Q':
			return core.ActionQuit, false
		}
	}
	return core.ActionNone, false
}

// Draw copies buf onto s and shows it.
func Draw(s tcell.Screen, buf *core.Screen) {
	s.Clear()
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.GetCell(x, y)
			s.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}
	s.Show()
}

// Run drives game on a fresh tcell screen until it asks to quit.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer s.Fini()
	s.HideCursor()

	logger.Info("starting", "backend", "tcell", "game", game.Title(), "fps", cfg.TickRate)
	return loop(s, game, cfg, logger)
}

// loop is the host tick loop. It is split from Run so tests can use a
// simulation screen.
func loop(s tcell.Screen, game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	buf := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go s.ChannelEvents(events, quit)
	defer close(quit)

	tick := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer tick.Stop()

	var (
		pending  core.Action
		lastTick time.Time
		state    core.GameState
	)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				action, interrupted := Action(e)
				if interrupted {
					logger.Info("interrupted", "score", state.Score)
					return nil
				}
				if action != core.ActionNone {
					pending = action
				}
			}

		case now := <-tick.C:
			in := core.Frame{ElapsedMS: platform.Elapsed(lastTick, now), Action: pending}
			lastTick = now
			pending = core.ActionNone

			result := game.Step(in, buf)
			platform.LogTransition(logger, state, result.State)
			state = result.State

			if result.Quit {
				logger.Info("quit requested")
				return nil
			}
			Draw(s, buf)
		}
	}
}
