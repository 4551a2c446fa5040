// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the arcade platform.
package config

// SmashConfig contains all configuration for the Smash game.
// Coordinates are play-field units; the track is Track.Width × Track.Height.
type SmashConfig struct {
	Track   TrackConfig   `yaml:"track"`
	Actor   ActorConfig   `yaml:"actor"`
	Hold    HoldConfig    `yaml:"hold"`
	Strike  StrikeConfig  `yaml:"strike"`
	Targets TargetsConfig `yaml:"targets"`
	Input   InputConfig   `yaml:"input"`
}

// TrackConfig defines the play-field dimensions.
type TrackConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"` // Vertical span the actor wraps around
}

// ActorConfig defines where the actor starts and how fast it walks.
type ActorConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	WalkSpeed float64 `yaml:"walk_speed"` // Downward distance per tick while idle
}

// HoldConfig defines the hold-charge state machine.
type HoldConfig struct {
	Seed       float64 `yaml:"seed"`        // Value set when a hold begins
	ChargeRate float64 `yaml:"charge_rate"` // Added per tick while held
	MinCharge  float64 `yaml:"min_charge"`  // Strike is armed strictly above this
	MaxCharge  float64 `yaml:"max_charge"`  // Hold auto-releases strictly above this
}

// StrikeConfig defines the actor's strike region.
// The region shares the actor's X and sits OffsetY below the actor.
type StrikeConfig struct {
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// TargetsConfig defines how targets are spawned and how big their hitbox is.
type TargetsConfig struct {
	Count        int     `yaml:"count"`
	LaneLeft     float64 `yaml:"lane_left"`
	LaneRight    float64 `yaml:"lane_right"`
	SpawnOffset  float64 `yaml:"spawn_offset"` // Top of the vertical spawn band
	SpawnRange   float64 `yaml:"spawn_range"`  // Height of the vertical spawn band
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`
}

// InputConfig tunes how the terminal shell derives a held key from key-repeat.
// A press charges for ChargeTicks ticks; after that the hold is kept without
// charging until HoldReleaseTicks ticks pass with no press.
type InputConfig struct {
	ChargeTicks      int `yaml:"charge_ticks"`       // Ticks each press keeps charging
	HoldReleaseTicks int `yaml:"hold_release_ticks"` // Quiet ticks before a hold is released
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset.
// Unknown or empty values return "" which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
