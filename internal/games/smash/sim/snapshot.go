package sim

// TargetState is the rendered view of one target.
type TargetState struct {
	X, Y   float64
	Active bool
}

// Snapshot captures the complete simulation state for determinism testing.
type Snapshot struct {
	Tick        uint64
	ActorX      float64
	ActorY      float64
	Holding     float64
	StrikeArmed bool
	StrikeY     float64
	Struck      int
	Targets     []TargetState
}

// Snapshot returns the current simulation state by value.
func (s *Simulation) Snapshot() Snapshot {
	targets := make([]TargetState, len(s.targets))
	for i, t := range s.targets {
		targets[i] = TargetState{X: t.X, Y: t.Y, Active: t.Active()}
	}

	return Snapshot{
		Tick:        s.tick,
		ActorX:      s.actor.X,
		ActorY:      s.actor.Y,
		Holding:     s.actor.Holding(),
		StrikeArmed: s.actor.StrikeArmed(),
		StrikeY:     s.actor.StrikeRegion().Y,
		Struck:      s.struck,
		Targets:     targets,
	}
}
