// Package smash adapts the Smash simulation to the arcade platform.
// The actor walks down a two-lane track; holding the action key charges a
// strike, and releasing it above the arm threshold smashes every target
// under the strike region.
package smash

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-smash/internal/config"
	"github.com/vovakirdan/tui-smash/internal/core"
	"github.com/vovakirdan/tui-smash/internal/games/smash/sim"
	"github.com/vovakirdan/tui-smash/internal/registry"
)

// Visual feedback durations, in ticks.
const (
	SwingFlashTicks = 8  // Strike region stays visible after an armed release
	BreakFlashTicks = 20 // Freshly struck targets are highlighted
)

// Package-level settings shared by every game instance.
// Set them before the first Reset; sessions only read them.
var (
	configPath string
	preset     config.DifficultyPreset
	logger     = log.Default()
)

// SetConfigPath sets a custom config file. Empty means use the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects the difficulty preset applied on every Reset.
func SetDifficulty(p config.DifficultyPreset) {
	preset = p
}

// SetLogger replaces the logger used for config warnings and strike events.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register("smash", func() registry.Game {
		return New()
	})
}

// Game implements registry.Game on top of sim.Simulation.
type Game struct {
	sim      *sim.Simulation
	override *config.SmashConfig // Fixed config, bypasses loading

	paused bool
	held   bool // Hold action was asserted on the previous tick

	swingTicks int         // Remaining ticks of the swing flash
	broken     map[int]int // Target index -> remaining highlight ticks

	screenW int
	screenH int
}

// New creates a Smash game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Smash game that always uses cfg.
// The difficulty preset is not applied.
func NewWithConfig(cfg config.SmashConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "smash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Smash"
}

// Reset builds a fresh simulation seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.held = false
	g.swingTicks = 0
	g.broken = make(map[int]int)

	smashCfg := g.loadConfig()
	s, err := sim.New(smashCfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		logger.Warn("invalid smash config, using defaults", "err", err)
		smashCfg = config.DefaultSmashConfig()
		s, _ = sim.New(smashCfg, rand.New(rand.NewSource(cfg.Seed)))
	}
	g.sim = s

	logger.Debug("smash reset",
		"seed", cfg.Seed,
		"targets", smashCfg.Targets.Count,
		"walk_speed", smashCfg.Actor.WalkSpeed,
		"max_charge", smashCfg.Hold.MaxCharge,
	)
}

func (g *Game) loadConfig() config.SmashConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.LoadSmash(configPath)
	if err != nil {
		logger.Warn("failed to load smash config, using defaults", "path", configPath, "err", err)
	}
	config.ApplySmashPreset(&cfg, preset)
	return cfg
}

// Step advances the game by one tick.
// ActionHold charges while asserted and ActionHoldSteady keeps the hold
// without charging. The tick both drop (or ActionRelease arrives) the hold is
// released and an armed strike is resolved.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.sim.Cleared() {
		g.paused = !g.paused
	}

	if g.paused || g.sim.Cleared() {
		return core.StepResult{State: g.State()}
	}

	g.decayFlashes()

	var struck []int
	switch {
	case in.Has(core.ActionRelease):
		if g.held {
			struck = g.release()
		}
	case in.Has(core.ActionHold):
		if g.sim.OnHoldInputStartOrContinue() {
			logger.Debug("hold overcharged", "tick", g.sim.TickCount())
			g.held = false
		} else {
			g.held = true
		}
	case in.Has(core.ActionHoldSteady):
		// Charge stays where it is; an overcharged hold stays released.
	case g.held:
		struck = g.release()
	}

	g.sim.Tick()

	if g.sim.Cleared() {
		logger.Info("all targets smashed", "ticks", g.sim.TickCount())
	}

	return core.StepResult{State: g.State(), Struck: struck}
}

func (g *Game) release() []int {
	g.held = false
	result := g.sim.OnHoldInputEnd()
	if !result.Armed {
		return nil
	}

	g.swingTicks = SwingFlashTicks
	for _, i := range result.Struck {
		g.broken[i] = BreakFlashTicks
	}
	if len(result.Struck) > 0 {
		logger.Debug("strike", "tick", g.sim.TickCount(), "struck", len(result.Struck), "remaining", g.sim.ActiveCount())
	}
	return result.Struck
}

func (g *Game) decayFlashes() {
	if g.swingTicks > 0 {
		g.swingTicks--
	}
	for i, n := range g.broken {
		if n <= 1 {
			delete(g.broken, i)
			continue
		}
		g.broken[i] = n - 1
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused:  g.paused,
		Cleared: g.sim != nil && g.sim.Cleared(),
	}
}

// Snapshot returns the simulation state for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}
