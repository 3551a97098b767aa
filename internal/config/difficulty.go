package config

// GapPolicy decides how wide an obstacle gap is for a given score.
// The gap shrinks linearly with score and never drops below the minimum.
type GapPolicy struct {
	base   int
	min    int
	shrink int
}

// NewGapPolicy creates a gap policy from obstacle settings.
func NewGapPolicy(cfg DragonObstacles) GapPolicy {
	return GapPolicy{
		base:   cfg.BaseGapSize,
		min:    cfg.MinGapSize,
		shrink: cfg.ShrinkPerPoint,
	}
}

// GapSize returns max(min, base - score*shrink).
func (p GapPolicy) GapSize(score int) int {
	result := p.base - score*p.shrink
	if result < p.min {
		result = p.min
	}
	return result
}
