package sim

import (
	"github.com/vovakirdan/tui-smash/internal/config"
	"github.com/vovakirdan/tui-smash/internal/core"
)

// Target is a spawned object that can be struck exactly once.
type Target struct {
	X, Y   float64 // Top-left corner of the hitbox
	active bool
}

// SpawnTarget places a new active target: Y uniformly inside the spawn band
// and X on one of the two lanes.
func SpawnTarget(rng core.Rand, cfg config.TargetsConfig) Target {
	y := cfg.SpawnOffset + rng.Float64()*cfg.SpawnRange
	x := cfg.LaneRight
	if rng.Float64() < 0.5 {
		x = cfg.LaneLeft
	}
	return Target{X: x, Y: y, active: true}
}

// NewTarget creates an active target at a fixed position.
func NewTarget(x, y float64) Target {
	return Target{X: x, Y: y, active: true}
}

// Active reports whether the target can still be struck.
func (t Target) Active() bool {
	return t.active
}

// Deactivate marks the target as struck. Calling it again is a no-op.
func (t *Target) Deactivate() {
	t.active = false
}

// Hitbox returns the collision box anchored at the target's position.
func (t Target) Hitbox(w, h float64) core.Rect {
	return core.NewRect(t.X, t.Y, w, h)
}
