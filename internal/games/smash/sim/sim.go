// Package sim contains the Smash simulation: an actor sweeping a vertical
// track, a hold that arms a strike, and the targets the strike deactivates.
// It is UI-agnostic and deterministic for a given random source.
package sim

import (
	"errors"

	"github.com/vovakirdan/tui-smash/internal/config"
	"github.com/vovakirdan/tui-smash/internal/core"
)

// ErrNilRand is returned by New when no random source is supplied.
var ErrNilRand = errors.New("sim: random source is nil")

// StrikeResult describes what a hold release did.
type StrikeResult struct {
	Armed  bool  // Whether the release was armed and ran a collision pass
	Struck []int // Indices of targets deactivated by this release
}

// Simulation owns the actor and the targets and applies the game rules.
type Simulation struct {
	cfg     config.SmashConfig
	actor   Actor
	targets []Target
	tick    uint64
	struck  int
}

// New validates cfg, places the actor at its start position and spawns
// cfg.Targets.Count targets drawn from rng.
func New(cfg config.SmashConfig, rng core.Rand) (*Simulation, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	targets := make([]Target, 0, cfg.Targets.Count)
	for i := 0; i < cfg.Targets.Count; i++ {
		targets = append(targets, SpawnTarget(rng, cfg.Targets))
	}

	return newSimulation(cfg, targets), nil
}

// NewWithTargets builds a simulation around an explicit target layout.
// Used for scripted scenarios; the targets are copied.
func NewWithTargets(cfg config.SmashConfig, targets []Target) (*Simulation, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, &config.ValidationError{Field: "targets", Reason: "at least one target is required"}
	}
	return newSimulation(cfg, targets), nil
}

func newSimulation(cfg config.SmashConfig, targets []Target) *Simulation {
	s := &Simulation{
		cfg:     cfg,
		actor:   NewActor(cfg),
		targets: make([]Target, len(targets)),
	}
	copy(s.targets, targets)
	for _, t := range s.targets {
		if !t.Active() {
			s.struck++
		}
	}
	return s
}

// Tick advances the actor by one simulation step.
// Collisions are only resolved on hold release, never here.
func (s *Simulation) Tick() {
	s.actor.Advance(s.cfg.Track.Height)
	s.tick++
}

// OnHoldInputStartOrContinue starts or charges the actor's hold.
// It reports whether the charge overran and was released without striking.
func (s *Simulation) OnHoldInputStartOrContinue() (autoReleased bool) {
	return s.actor.BeginOrExtendHold()
}

// OnHoldInputEnd releases the hold. An armed release strikes every active
// target overlapping the strike region; an unarmed one does nothing else.
func (s *Simulation) OnHoldInputEnd() StrikeResult {
	result := StrikeResult{Armed: s.actor.StrikeArmed()}
	if result.Armed {
		result.Struck = s.resolveStrike()
	}
	s.actor.EndHold()
	return result
}

// resolveStrike deactivates all active targets whose hitbox overlaps the
// strike region and returns their indices in target order.
func (s *Simulation) resolveStrike() []int {
	region := s.actor.StrikeRegion()
	w, h := s.cfg.Targets.HitboxWidth, s.cfg.Targets.HitboxHeight

	var struck []int
	for i := range s.targets {
		t := &s.targets[i]
		if !t.Active() {
			continue
		}
		if region.Intersects(t.Hitbox(w, h)) {
			t.Deactivate()
			struck = append(struck, i)
		}
	}
	s.struck += len(struck)
	return struck
}

// Actor returns a copy of the actor for rendering.
func (s *Simulation) Actor() Actor {
	return s.actor
}

// Targets returns a copy of the targets in spawn order.
func (s *Simulation) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// StrikeArmed reports whether the strike region should be shown.
func (s *Simulation) StrikeArmed() bool {
	return s.actor.StrikeArmed()
}

// TargetHitbox returns the hitbox of the target at index i.
func (s *Simulation) TargetHitbox(i int) core.Rect {
	return s.targets[i].Hitbox(s.cfg.Targets.HitboxWidth, s.cfg.Targets.HitboxHeight)
}

// ActiveCount returns how many targets can still be struck.
func (s *Simulation) ActiveCount() int {
	return len(s.targets) - s.struck
}

// StruckCount returns how many targets have been deactivated.
func (s *Simulation) StruckCount() int {
	return s.struck
}

// Cleared reports whether every target has been struck.
func (s *Simulation) Cleared() bool {
	return s.struck == len(s.targets)
}

// TickCount returns the number of ticks simulated so far.
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.SmashConfig {
	return s.cfg
}
