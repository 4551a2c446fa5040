package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-smash/internal/config"
	"github.com/vovakirdan/tui-smash/internal/core"
	"github.com/vovakirdan/tui-smash/internal/games/smash"
)

// recordingGame records the actions it receives on each Step.
type recordingGame struct {
	steps  [][]core.Action
	resets int
	state  core.GameState
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	var actions []core.Action
	for _, a := range []core.Action{core.ActionHold, core.ActionHoldSteady, core.ActionRelease, core.ActionPause, core.ActionRestart} {
		if in.Has(a) {
			actions = append(actions, a)
		}
	}
	g.steps = append(g.steps, actions)
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "recording")
}

func (g *recordingGame) State() core.GameState { return g.state }

func testModel(g *recordingGame, releaseTicks int) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{
		ChargeTicks:      1,
		HoldReleaseTicks: releaseTicks,
		Logger:           log.New(io.Discard),
	})
	m.Init()
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	return send(m, TickMsg{})
}

func hasAction(actions []core.Action, a core.Action) bool {
	for _, got := range actions {
		if got == a {
			return true
		}
	}
	return false
}

func TestModelHoldLatch(t *testing.T) {
	g := &recordingGame{}
	m := testModel(g, 2)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 3; i++ {
		m = tick(m)
	}

	expected := []struct{ hold, steady bool }{
		{true, false},
		{false, true},
		{false, false},
	}
	for i, want := range expected {
		hold := hasAction(g.steps[i], core.ActionHold)
		steady := hasAction(g.steps[i], core.ActionHoldSteady)
		if hold != want.hold || steady != want.steady {
			t.Errorf("step %d: hold=%v steady=%v, expected %v/%v", i+1, hold, steady, want.hold, want.steady)
		}
	}
}

func TestModelExplicitRelease(t *testing.T) {
	g := &recordingGame{}
	m := testModel(g, 30)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(m)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m)
	m = tick(m)

	if !hasAction(g.steps[0], core.ActionHold) {
		t.Error("step 1 should hold")
	}
	if !hasAction(g.steps[1], core.ActionRelease) || hasAction(g.steps[1], core.ActionHold) {
		t.Errorf("step 2 = %v, expected release without hold", g.steps[1])
	}
	if len(g.steps[2]) != 0 {
		t.Errorf("step 3 = %v, expected no actions", g.steps[2])
	}
}

func TestModelPauseIsOneShot(t *testing.T) {
	g := &recordingGame{}
	m := testModel(g, 30)

	m = send(m, runeKey('p'))
	m = tick(m)
	m = tick(m)

	if !hasAction(g.steps[0], core.ActionPause) {
		t.Error("pause should reach the game")
	}
	if hasAction(g.steps[1], core.ActionPause) {
		t.Error("pause should be cleared after one tick")
	}
}

func TestModelRestart(t *testing.T) {
	g := &recordingGame{}
	m := testModel(g, 30)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(m, runeKey('r'))
	m = tick(m)
	m = tick(m)

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	// The restart tick does not step; the latch is dropped
	if len(g.steps) != 1 || hasAction(g.steps[0], core.ActionHold) {
		t.Errorf("steps = %v, expected one step without hold", g.steps)
	}
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	m := testModel(g, 30)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	g := &recordingGame{}
	m := testModel(g, 30)

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40-shortHelpRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-shortHelpRows)
	}

	m = send(m, runeKey('?'))
	if m.screen.Height() != 40-fullHelpRows {
		t.Errorf("screen height = %d with full help, expected %d", m.screen.Height(), 40-fullHelpRows)
	}

	view := m.View()
	if !strings.Contains(view, "recording") {
		t.Error("View() should include the game render")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should include the help footer")
	}
}

// pressSpaceUntilArmed sends Space on every other tick, like terminal key
// repeat, until the strike arms.
func pressSpaceUntilArmed(t *testing.T, m Model, g *smash.Game) Model {
	t.Helper()
	for i := 0; !g.Snapshot().StrikeArmed; i++ {
		if i >= 60 {
			t.Fatalf("strike never armed, holding=%v", g.Snapshot().Holding)
		}
		if i%2 == 0 {
			m = send(m, tea.KeyMsg{Type: tea.KeySpace})
		}
		m = tick(m)
	}
	return m
}

func TestModelDrivesSmashStrike(t *testing.T) {
	cfg := config.DefaultSmashConfig()
	cfg.Targets.Count = 1
	cfg.Targets.SpawnOffset = 52 // Initial strike row
	cfg.Targets.SpawnRange = 1

	g := smash.NewWithConfig(cfg)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, Options{
		Logger: log.New(io.Discard),
	})
	m.Init()

	m = pressSpaceUntilArmed(t, m, g)

	// Presses stop; the swing lands once the latch runs out
	for i := 0; i < cfg.Input.HoldReleaseTicks+1; i++ {
		m = tick(m)
	}

	if !m.State().Cleared {
		t.Error("the held and released strike should clear the only target")
	}
}

func TestModelSpaceReleaseSwingsWithDefaultConfig(t *testing.T) {
	g := smash.NewWithConfig(config.DefaultSmashConfig())
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, Options{
		Logger: log.New(io.Discard),
	})
	m.Init()

	m = pressSpaceUntilArmed(t, m, g)

	// The charge must stay armed until the release reaches the game
	for i := 0; g.Snapshot().Holding != 0; i++ {
		if i > 60 {
			t.Fatal("hold never released after presses stopped")
		}
		if !g.Snapshot().StrikeArmed {
			t.Fatalf("strike disarmed %d ticks after the last press, holding=%v", i, g.Snapshot().Holding)
		}
		m = tick(m)
	}

	// Only an armed release draws the swing once the hold has ended
	screen := core.NewScreen(80, 24-shortHelpRows)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), smash.StrikeChar) {
		t.Errorf("expected the swing to be drawn after release:\n%s", screen.String())
	}
}
