package config

import (
	"fmt"
	"math"
)

// ValidationError reports a configuration value that the game cannot run with.
type ValidationError struct {
	Field  string // YAML path of the offending value, e.g. "targets.count"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// floatFields lists every float setting by its YAML path.
func floatFields(cfg SmashConfig) []struct {
	field string
	value float64
} {
	return []struct {
		field string
		value float64
	}{
		{"track.width", cfg.Track.Width},
		{"track.height", cfg.Track.Height},
		{"actor.start_x", cfg.Actor.StartX},
		{"actor.start_y", cfg.Actor.StartY},
		{"actor.walk_speed", cfg.Actor.WalkSpeed},
		{"hold.seed", cfg.Hold.Seed},
		{"hold.charge_rate", cfg.Hold.ChargeRate},
		{"hold.min_charge", cfg.Hold.MinCharge},
		{"hold.max_charge", cfg.Hold.MaxCharge},
		{"strike.offset_y", cfg.Strike.OffsetY},
		{"strike.width", cfg.Strike.Width},
		{"strike.height", cfg.Strike.Height},
		{"targets.lane_left", cfg.Targets.LaneLeft},
		{"targets.lane_right", cfg.Targets.LaneRight},
		{"targets.spawn_offset", cfg.Targets.SpawnOffset},
		{"targets.spawn_range", cfg.Targets.SpawnRange},
		{"targets.hitbox_width", cfg.Targets.HitboxWidth},
		{"targets.hitbox_height", cfg.Targets.HitboxHeight},
	}
}

// Validate checks a SmashConfig for values that would make the simulation
// degenerate. It returns the first problem found as a *ValidationError.
func Validate(cfg SmashConfig) error {
	for _, f := range floatFields(cfg) {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.field, "must be a finite number, got %v", f.value)
		}
	}

	if cfg.Track.Width <= 0 {
		return invalid("track.width", "must be positive, got %v", cfg.Track.Width)
	}
	if cfg.Track.Height <= 0 {
		return invalid("track.height", "must be positive, got %v", cfg.Track.Height)
	}

	if cfg.Actor.StartX < 0 || cfg.Actor.StartX >= cfg.Track.Width {
		return invalid("actor.start_x", "must lie within [0, %v), got %v", cfg.Track.Width, cfg.Actor.StartX)
	}
	if cfg.Actor.StartY < 0 || cfg.Actor.StartY >= cfg.Track.Height {
		return invalid("actor.start_y", "must lie within [0, %v), got %v", cfg.Track.Height, cfg.Actor.StartY)
	}
	if cfg.Actor.WalkSpeed < 0 {
		return invalid("actor.walk_speed", "must not be negative, got %v", cfg.Actor.WalkSpeed)
	}

	if cfg.Hold.Seed <= 0 {
		return invalid("hold.seed", "must be positive, got %v", cfg.Hold.Seed)
	}
	if cfg.Hold.ChargeRate <= 0 {
		return invalid("hold.charge_rate", "must be positive, got %v", cfg.Hold.ChargeRate)
	}
	if cfg.Hold.MinCharge < 0 {
		return invalid("hold.min_charge", "must not be negative, got %v", cfg.Hold.MinCharge)
	}
	if cfg.Hold.MaxCharge <= cfg.Hold.MinCharge {
		return invalid("hold.max_charge", "must be greater than min_charge (%v), got %v",
			cfg.Hold.MinCharge, cfg.Hold.MaxCharge)
	}
	// A tap must not arm the strike on its own.
	if cfg.Hold.Seed >= cfg.Hold.MinCharge {
		return invalid("hold.seed", "must be below min_charge (%v), got %v", cfg.Hold.MinCharge, cfg.Hold.Seed)
	}

	if cfg.Strike.Width <= 0 {
		return invalid("strike.width", "must be positive, got %v", cfg.Strike.Width)
	}
	if cfg.Strike.Height <= 0 {
		return invalid("strike.height", "must be positive, got %v", cfg.Strike.Height)
	}

	t := cfg.Targets
	if t.Count <= 0 {
		return invalid("targets.count", "must be positive, got %d", t.Count)
	}
	if t.HitboxWidth <= 0 {
		return invalid("targets.hitbox_width", "must be positive, got %v", t.HitboxWidth)
	}
	if t.HitboxHeight <= 0 {
		return invalid("targets.hitbox_height", "must be positive, got %v", t.HitboxHeight)
	}
	if t.LaneLeft == t.LaneRight {
		return invalid("targets.lane_right", "must differ from lane_left (%v)", t.LaneLeft)
	}
	maxLane := cfg.Track.Width - t.HitboxWidth
	if t.LaneLeft < 0 || t.LaneLeft > maxLane {
		return invalid("targets.lane_left", "must lie within [0, %v], got %v", maxLane, t.LaneLeft)
	}
	if t.LaneRight < 0 || t.LaneRight > maxLane {
		return invalid("targets.lane_right", "must lie within [0, %v], got %v", maxLane, t.LaneRight)
	}
	if t.SpawnRange <= 0 {
		return invalid("targets.spawn_range", "must be positive, got %v", t.SpawnRange)
	}
	if t.SpawnOffset < 0 || t.SpawnOffset+t.SpawnRange > cfg.Track.Height {
		return invalid("targets.spawn_offset", "spawn band [%v, %v) must lie within the track height %v",
			t.SpawnOffset, t.SpawnOffset+t.SpawnRange, cfg.Track.Height)
	}

	in := cfg.Input
	if in.HoldReleaseTicks <= 0 {
		return invalid("input.hold_release_ticks", "must be positive, got %d", in.HoldReleaseTicks)
	}
	if in.ChargeTicks <= 0 || in.ChargeTicks > in.HoldReleaseTicks {
		return invalid("input.charge_ticks", "must lie within [1, hold_release_ticks=%d], got %d",
			in.HoldReleaseTicks, in.ChargeTicks)
	}

	return nil
}
