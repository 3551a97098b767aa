package platform

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestElapsed(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := Elapsed(time.Time{}, now); got != 0 {
		t.Errorf("first tick elapsed = %v, expected 0", got)
	}
	if got := Elapsed(now, now.Add(16*time.Millisecond+500*time.Microsecond)); got != 16.5 {
		t.Errorf("elapsed = %v, expected 16.5", got)
	}
}

func TestLogTransition(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	LogTransition(logger, core.GameState{}, core.GameState{Playing: true})
	if !strings.Contains(buf.String(), "round started") {
		t.Errorf("expected round start log, got %q", buf.String())
	}

	buf.Reset()
	LogTransition(logger, core.GameState{Playing: true, Score: 3}, core.GameState{GameOver: true, Score: 3})
	if !strings.Contains(buf.String(), "round over") || !strings.Contains(buf.String(), "score=3") {
		t.Errorf("expected round over log with score, got %q", buf.String())
	}

	buf.Reset()
	LogTransition(logger, core.GameState{Playing: true}, core.GameState{Playing: true, Score: 1})
	if buf.Len() != 0 {
		t.Errorf("no transition should log nothing, got %q", buf.String())
	}
}
