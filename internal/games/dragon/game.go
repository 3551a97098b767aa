// Package dragon implements Flappy Dragon: a dragon falls under gravity,
// flaps upward on command and must fly through gaps in walls that scroll
// toward it. Each wall passed scores a point and narrows the next gap.
package dragon

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	WallChar   = '|'
)

// Screen rows for menu and end messages.
const (
	headlineRow = 5
	option1Row  = 8
	option2Row  = 9
	option3Row  = 10
)

// Mode is the game's top-level state. Exactly one is active at a time.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Game implements the Flappy Dragon mode machine.
type Game struct {
	mode      Mode
	player    Player
	obstacle  Obstacle
	score     int
	frameTime float64 // Milliseconds accumulated toward the next physics tick
	cfg       config.DragonConfig
	rng       RandSource
}

// New creates a game sitting at the main menu.
func New(cfg config.DragonConfig, rng RandSource) *Game {
	g := &Game{
		mode: ModeMenu,
		cfg:  cfg,
		rng:  rng,
	}
	g.player = g.freshPlayer()
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Dragon"
}

// Step runs one host tick in the current mode and draws it into dst.
func (g *Game) Step(in core.Frame, dst *core.Screen) core.StepResult {
	quit := false

	switch g.mode {
	case ModeMenu:
		quit = g.mainMenu(in, dst)
	case ModePlaying:
		g.play(in, dst)
	case ModeEnd:
		quit = g.dead(in, dst)
	}

	return core.StepResult{State: g.State(), Quit: quit}
}

// play is one Playing tick. The order matters: pass and death checks
// look at the position after this tick's physics.
func (g *Game) play(in core.Frame, dst *core.Screen) {
	dst.ClearBg(core.ColorNavy)

	g.frameTime += in.ElapsedMS
	if g.frameTime > g.cfg.Physics.FrameDurationMS {
		g.frameTime = 0
		g.player.Advance()
	}

	if in.Action == core.ActionFlap {
		g.player.Flap()
	}

	g.player.Draw(dst)
	dst.DrawText(0, 0, "Press SPACE to flap.")
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", g.score))
	g.obstacle.Draw(dst, g.player.X)

	if g.player.X > g.obstacle.X {
		g.score++
		g.obstacle = NewObstacle(g.player.X+g.cfg.Field.Width, g.score, g.rng, g.cfg.Obstacles)
	}

	if g.player.Y > g.cfg.Field.Height || g.obstacle.Collides(g.player) {
		g.mode = ModeEnd
	}
}

// mainMenu draws the title screen. Returns true when the player quits.
func (g *Game) mainMenu(in core.Frame, dst *core.Screen) bool {
	dst.Clear()
	dst.DrawTextCentered(headlineRow, "Welcome to Flappy Dragon")
	dst.DrawTextCentered(option1Row, "(P) Play Game")
	dst.DrawTextCentered(option2Row, "(Q) Quit Game")

	return g.menuInput(in)
}

// dead draws the game over screen. Returns true when the player quits.
func (g *Game) dead(in core.Frame, dst *core.Screen) bool {
	dst.Clear()
	dst.DrawTextCentered(headlineRow, "You are dead!")
	dst.DrawTextCentered(option1Row, fmt.Sprintf("You earned %d points", g.score))
	dst.DrawTextCentered(option2Row, "(P) Play Again")
	dst.DrawTextCentered(option3Row, "(Q) Quit Game")

	return g.menuInput(in)
}

// menuInput handles the Play/Quit choice shared by the menu and end screens.
func (g *Game) menuInput(in core.Frame) bool {
	switch in.Action {
	case core.ActionPlay:
		g.restart()
	case core.ActionQuit:
		return true
	}
	return false
}

// restart begins a new round from scratch.
func (g *Game) restart() {
	g.player = g.freshPlayer()
	g.score = 0
	g.obstacle = NewObstacle(g.cfg.Field.Width, g.score, g.rng, g.cfg.Obstacles)
	g.frameTime = 0
	g.mode = ModePlaying
}

func (g *Game) freshPlayer() Player {
	return NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Physics)
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of walls passed this round.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the dragon.
func (g *Game) Player() Player {
	return g.player
}

// Obstacle returns a copy of the current wall.
func (g *Game) Obstacle() Obstacle {
	return g.obstacle
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Playing:  g.mode == ModePlaying,
		GameOver: g.mode == ModeEnd,
	}
}

var _ core.Game = (*Game)(nil)
