package config

import (
	_ "embed"
)

//go:embed defaults/smash.yaml
var defaultSmashYAML []byte

// DefaultSmashConfig returns the built-in Smash configuration.
// It mirrors defaults/smash.yaml and is used if the embedded file cannot be parsed.
func DefaultSmashConfig() SmashConfig {
	return SmashConfig{
		Track: TrackConfig{
			Width:  400,
			Height: 700,
		},
		Actor: ActorConfig{
			StartX:    195,
			StartY:    20,
			WalkSpeed: 2,
		},
		Hold: HoldConfig{
			Seed:       0.1,
			ChargeRate: 0.3,
			MinCharge:  4.0,
			MaxCharge:  6.0,
		},
		Strike: StrikeConfig{
			OffsetY: 32,
			Width:   128,
			Height:  32,
		},
		Targets: TargetsConfig{
			Count:        13,
			LaneLeft:     135,
			LaneRight:    255,
			SpawnOffset:  100,
			SpawnRange:   550,
			HitboxWidth:  64,
			HitboxHeight: 64,
		},
		Input: InputConfig{
			ChargeTicks:      3,
			HoldReleaseTicks: 30,
		},
	}
}

// DefaultSmashYAML returns the embedded default YAML for display or copying.
func DefaultSmashYAML() []byte {
	return defaultSmashYAML
}
