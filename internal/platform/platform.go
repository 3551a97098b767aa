// Package platform holds the pieces every host shares.
package platform

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Elapsed returns the milliseconds between two ticks.
// The first tick, with no previous time, reports 0.
func Elapsed(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}

// LogTransition logs round start and end.
func LogTransition(logger *log.Logger, prev, next core.GameState) {
	switch {
	case next.Playing && !prev.Playing:
		logger.Debug("round started")
	case next.GameOver && !prev.GameOver:
		logger.Info("round over", "score", next.Score)
	}
}
