package tui

// HoldLatch turns a stream of key presses into a held state.
// Terminals report no key-up events, only auto-repeated presses. Each press
// charges for chargeTicks ticks; the hold then stays down without charging
// until releaseTicks ticks pass without a press. A release that lands late
// therefore still finds the charge where the player let go.
type HoldLatch struct {
	chargeTicks  int
	releaseTicks int
	quiet        int
	down         bool
}

// NewHoldLatch creates a latch that charges for chargeTicks ticks per press and
// releases after releaseTicks quiet ticks. Both are at least one tick, and
// chargeTicks never exceeds releaseTicks.
func NewHoldLatch(chargeTicks, releaseTicks int) HoldLatch {
	if releaseTicks < 1 {
		releaseTicks = 1
	}
	chargeTicks = max(1, min(chargeTicks, releaseTicks))
	return HoldLatch{chargeTicks: chargeTicks, releaseTicks: releaseTicks}
}

// Press records a hold key press (initial or auto-repeat).
func (l *HoldLatch) Press() {
	l.down = true
	l.quiet = 0
}

// Release drops the hold immediately.
func (l *HoldLatch) Release() {
	l.down = false
	l.quiet = 0
}

// Tick advances the latch by one simulation tick. It reports whether the hold
// is down for that tick and, if so, whether it charges.
func (l *HoldLatch) Tick() (down, charging bool) {
	if !l.down {
		return false, false
	}
	if l.quiet >= l.releaseTicks {
		l.Release()
		return false, false
	}
	charging = l.quiet < l.chargeTicks
	l.quiet++
	return true, charging
}
