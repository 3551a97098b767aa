package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parse(defaultDragonYAML)
	if err != nil {
		t.Fatalf("embedded YAML should parse, got %v", err)
	}
	if cfg != DefaultDragonConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultDragonConfig())
	}
}

func TestLoadDragonEmbeddedFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, src, err := LoadDragonWithSource("")
	if err != nil {
		t.Fatalf("LoadDragonWithSource() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg.Field.Width != 80 || cfg.Field.Height != 50 {
		t.Errorf("field = %dx%d, expected 80x50", cfg.Field.Width, cfg.Field.Height)
	}
}

func TestLoadDragonUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".dragon", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("physics:\n  frame_duration_ms: 40\n")
	if err := os.WriteFile(filepath.Join(dir, "dragon.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadDragonWithSource("")
	if err != nil {
		t.Fatalf("LoadDragonWithSource() failed: %v", err)
	}
	if src != SourceUser {
		t.Errorf("source = %q, expected %q", src, SourceUser)
	}
	if cfg.Physics.FrameDurationMS != 40 {
		t.Errorf("frame_duration_ms = %v, expected 40", cfg.Physics.FrameDurationMS)
	}
}

func TestLoadDragonCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragon.yaml")
	data := []byte("obstacles:\n  base_gap_size: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDragon(path)
	if err != nil {
		t.Fatalf("LoadDragon() failed: %v", err)
	}
	if cfg.Obstacles.BaseGapSize != 12 {
		t.Errorf("base_gap_size = %d, expected 12", cfg.Obstacles.BaseGapSize)
	}
	// Keys not named in the file keep their defaults
	if cfg.Obstacles.MinGapSize != 2 {
		t.Errorf("min_gap_size = %d, expected default 2", cfg.Obstacles.MinGapSize)
	}
	if cfg.Player.StartY != 25 {
		t.Errorf("start_y = %d, expected default 25", cfg.Player.StartY)
	}
}

func TestLoadDragonCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDragon(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDragon(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  gap_band_max: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDragon(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty gap band should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DragonConfig)
		valid  bool
	}{
		{"defaults", func(*DragonConfig) {}, true},
		{"zero width", func(c *DragonConfig) { c.Field.Width = 0 }, false},
		{"zero frame duration", func(c *DragonConfig) { c.Physics.FrameDurationMS = 0 }, false},
		{"zero terminal velocity", func(c *DragonConfig) { c.Physics.TerminalVelocity = 0 }, false},
		{"empty band", func(c *DragonConfig) { c.Obstacles.GapBandMax = c.Obstacles.GapBandMin }, false},
		{"band below field", func(c *DragonConfig) { c.Obstacles.GapBandMax = 60 }, false},
		{"zero min gap", func(c *DragonConfig) { c.Obstacles.MinGapSize = 0 }, false},
		{"negative shrink", func(c *DragonConfig) { c.Obstacles.ShrinkPerPoint = -1 }, false},
		{"no shrink", func(c *DragonConfig) { c.Obstacles.ShrinkPerPoint = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDragonConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestGapPolicy(t *testing.T) {
	p := NewGapPolicy(DefaultDragonConfig().Obstacles)

	tests := []struct {
		score, expected int
	}{
		{0, 20},
		{1, 19},
		{17, 3},
		{18, 2},
		{19, 2},
		{25, 2},
		{1000, 2},
	}

	for _, tc := range tests {
		if got := p.GapSize(tc.score); got != tc.expected {
			t.Errorf("GapSize(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDragonConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if cfg != DefaultDragonConfig() {
		t.Errorf("round trip = %+v, expected defaults", cfg)
	}
}
