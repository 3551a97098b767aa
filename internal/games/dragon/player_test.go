package dragon

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

const epsilon = 1e-9

func newTestPlayer() Player {
	cfg := config.DefaultDragonConfig()
	return NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Physics)
}

func TestPlayerGravity(t *testing.T) {
	p := newTestPlayer()
	prevY := p.Y

	for i := 1; i <= 3; i++ {
		before := p.Velocity
		p.Advance()

		if math.Abs(p.Velocity-(before+0.2)) > epsilon {
			t.Errorf("advance %d: velocity = %v, expected %v", i, p.Velocity, before+0.2)
		}
		if p.Y < prevY {
			t.Errorf("advance %d: Y went up from %d to %d without a flap", i, prevY, p.Y)
		}
		prevY = p.Y
	}

	if math.Abs(p.Velocity-0.6) > epsilon {
		t.Errorf("after 3 advances velocity = %v, expected 0.6", p.Velocity)
	}
	if p.X != 8 {
		t.Errorf("after 3 advances X = %d, expected 8", p.X)
	}
}

func TestPlayerTerminalVelocity(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 50; i++ {
		p.Advance()
		if p.Velocity > 2.0 {
			t.Fatalf("advance %d: velocity %v exceeds terminal velocity", i, p.Velocity)
		}
	}

	if p.Velocity != 2.0 {
		t.Errorf("velocity should settle at exactly 2.0, got %v", p.Velocity)
	}
}

func TestPlayerFallsByTruncatedVelocity(t *testing.T) {
	p := newTestPlayer()
	p.Velocity = 1.5

	p.Advance()

	// 1.5 + 0.2 = 1.7, truncated to 1
	if p.Y != 26 {
		t.Errorf("Y = %d, expected 26", p.Y)
	}
}

func TestPlayerFlap(t *testing.T) {
	for _, v := range []float64{-2.0, -0.4, 0, 0.6, 2.0} {
		p := newTestPlayer()
		p.Velocity = v

		p.Flap()
		if p.Velocity != -2.0 {
			t.Errorf("Flap from %v: velocity = %v, expected -2.0", v, p.Velocity)
		}

		p.Flap()
		if p.Velocity != -2.0 {
			t.Errorf("second Flap from %v: velocity = %v, expected -2.0", v, p.Velocity)
		}
	}
}

func TestPlayerNeverAboveTop(t *testing.T) {
	tests := []struct {
		name string
		y    int
		vel  float64
	}{
		{"at top flapping", 0, -2.0},
		{"one row down flapping", 1, -2.0},
		{"already negative", -5, 0},
		{"at top at rest", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Y = tc.y
			p.Velocity = tc.vel

			for i := 0; i < 5; i++ {
				p.Advance()
				if p.Y < 0 {
					t.Fatalf("advance %d: Y = %d, expected >= 0", i, p.Y)
				}
				p.Flap()
			}
		})
	}
}

func TestPlayerDraw(t *testing.T) {
	p := newTestPlayer()
	p.X = 300 // World position must not move the glyph
	screen := core.NewScreen(80, 50)

	p.Draw(screen)

	c := screen.GetCell(0, p.Y)
	if c.Rune != PlayerChar || c.FG != core.ColorYellow {
		t.Errorf("dragon should be drawn at (0, %d), got %+v", p.Y, c)
	}
}
