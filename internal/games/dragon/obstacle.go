package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// RandSource is the only way randomness enters the game.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Obstacle is a vertical wall with one gap.
type Obstacle struct {
	X    int // World column, same space as Player.X
	GapY int // Center row of the gap
	Size int // Gap height
}

// NewObstacle creates a wall at world column x whose gap is sized for score.
func NewObstacle(x, score int, rng RandSource, cfg config.DragonObstacles) Obstacle {
	band := cfg.GapBandMax - cfg.GapBandMin
	return Obstacle{
		X:    x,
		GapY: cfg.GapBandMin + rng.Intn(band),
		Size: config.NewGapPolicy(cfg).GapSize(score),
	}
}

// top is the first row of the gap, bottom the first row of the lower wall.
func (o Obstacle) top() int    { return o.GapY - o.Size/2 }
func (o Obstacle) bottom() int { return o.GapY + o.Size/2 }

// Draw renders both wall segments in the column playerX cells away
// from the dragon.
func (o Obstacle) Draw(dst *core.Screen, playerX int) {
	screenX := o.X - playerX

	for y := 0; y < o.top(); y++ {
		dst.Set(screenX, y, core.ColorRed, core.ColorBlack, WallChar)
	}
	for y := o.bottom(); y < dst.Height(); y++ {
		dst.Set(screenX, y, core.ColorRed, core.ColorBlack, WallChar)
	}
}

// Collides reports whether p is in this wall's column and outside the gap.
// This is a point check: it relies on the dragon moving exactly one
// column per physics tick, so it can never step over the wall.
func (o Obstacle) Collides(p Player) bool {
	if p.X != o.X {
		return false
	}
	return p.Y < o.top() || p.Y > o.bottom()
}
