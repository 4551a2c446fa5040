package sim

import (
	"github.com/vovakirdan/tui-smash/internal/config"
	"github.com/vovakirdan/tui-smash/internal/core"
)

// Actor is the player: it walks down the track while idle and charges a
// strike while a hold is in progress.
type Actor struct {
	X, Y    float64
	holding float64 // 0 means not holding
	strike  core.Rect

	walkSpeed     float64
	strikeOffsetY float64
	hold          config.HoldConfig
}

// NewActor creates an idle actor at the configured start position.
func NewActor(cfg config.SmashConfig) Actor {
	a := Actor{
		X:             cfg.Actor.StartX,
		Y:             cfg.Actor.StartY,
		walkSpeed:     cfg.Actor.WalkSpeed,
		strikeOffsetY: cfg.Strike.OffsetY,
		hold:          cfg.Hold,
	}
	a.strike = core.NewRect(a.X, a.Y+a.strikeOffsetY, cfg.Strike.Width, cfg.Strike.Height)
	return a
}

// Advance moves the actor down by its walking speed, wrapping at trackHeight.
// Motion is suspended while a hold is in progress.
func (a *Actor) Advance(trackHeight float64) {
	if a.holding != 0 {
		return
	}
	a.Y = core.Wrap(a.Y+a.walkSpeed, trackHeight)
	a.strike.Y = a.Y + a.strikeOffsetY
}

// BeginOrExtendHold starts a hold at the seed value, or adds one charge step to
// a hold in progress. A charge that passes the maximum is released
// automatically; released reports when that happened.
func (a *Actor) BeginOrExtendHold() (released bool) {
	if a.holding == 0 {
		a.holding = a.hold.Seed
		return false
	}
	a.holding += a.hold.ChargeRate
	if a.holding > a.hold.MaxCharge {
		a.EndHold()
		return true
	}
	return false
}

// EndHold resets the hold. Idempotent.
func (a *Actor) EndHold() {
	a.holding = 0
}

// StrikeArmed reports whether releasing now would strike.
func (a Actor) StrikeArmed() bool {
	return a.holding > a.hold.MinCharge
}

// Holding returns the accumulated hold charge (0 when idle).
func (a Actor) Holding() float64 {
	return a.holding
}

// Charge returns hold progress in [0, 1] relative to the maximum charge.
func (a Actor) Charge() float64 {
	return core.ClampF(a.holding/a.hold.MaxCharge, 0, 1)
}

// ArmThreshold returns the charge fraction above which the strike is armed.
func (a Actor) ArmThreshold() float64 {
	return a.hold.MinCharge / a.hold.MaxCharge
}

// StrikeRegion returns the actor's hit-test area.
func (a Actor) StrikeRegion() core.Rect {
	return a.strike
}

// Position returns the actor's top-left corner.
func (a Actor) Position() (x, y float64) {
	return a.X, a.Y
}
