package dragon

import (
	"math"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Player is the dragon. X only grows; it is used for obstacle distance,
// never for the dragon's own screen column.
type Player struct {
	X        int
	Y        int // Rows from the top of the field, never negative
	Velocity float64

	physics config.DragonPhysics
}

// NewPlayer creates a dragon at rest at (x, y).
func NewPlayer(x, y int, physics config.DragonPhysics) Player {
	return Player{
		X:       x,
		Y:       y,
		physics: physics,
	}
}

// Advance runs one physics tick: gravity up to terminal velocity,
// vertical move by the truncated velocity, and one step to the right.
func (p *Player) Advance() {
	if p.Velocity < p.physics.TerminalVelocity {
		p.Velocity = math.Min(p.Velocity+p.physics.Gravity, p.physics.TerminalVelocity)
	}
	p.Y += int(p.Velocity)
	p.X++
	p.Y = core.Max(p.Y, 0)
}

// Flap replaces the current velocity with the upward flap velocity.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapVelocity
}

// Draw puts the dragon at column 0; the world scrolls past it.
func (p Player) Draw(dst *core.Screen) {
	dst.Set(0, p.Y, core.ColorYellow, core.ColorBlack, PlayerChar)
}
