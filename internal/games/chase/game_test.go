package chase

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/mazehunt/internal/core"
	"github.com/vovakirdan/mazehunt/internal/games/chase/core"
)

// bigScreen comfortably fits the default maze plus HUD.
func bigScreen() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		Seed:     42,
		ScreenW:  100,
		ScreenH:  40,
		TickRate: 60,
	}
}

const frame = 1.0 / 60.0

func TestGameIDs(t *testing.T) {
	campaign := New(false)
	if campaign.ID() != "chase" {
		t.Errorf("Campaign ID should be 'chase', got %s", campaign.ID())
	}

	endless := New(true)
	if endless.ID() != "chase_endless" {
		t.Errorf("Endless ID should be 'chase_endless', got %s", endless.ID())
	}
}

func TestTitles(t *testing.T) {
	campaign := New(false)
	if campaign.Title() != "Maze Chase" {
		t.Errorf("Campaign title should be 'Maze Chase', got %s", campaign.Title())
	}

	endless := New(true)
	if endless.Title() != "Maze Chase (Endless)" {
		t.Errorf("Endless title should be 'Maze Chase (Endless)', got %s", endless.Title())
	}
}

func TestResetBuildsRun(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	if g.sim == nil {
		t.Fatal("Reset should build a simulation")
	}
	if g.level != 1 {
		t.Errorf("Expected level 1, got %d", g.level)
	}
	if g.gameOver {
		t.Error("Game should not start over")
	}
	if g.tooSmall {
		t.Error("Default maze should fit a 100x40 screen")
	}

	state := g.State()
	if state.Lives != g.cfg.Sim.Lives {
		t.Errorf("Expected %d lives, got %d", g.cfg.Sim.Lives, state.Lives)
	}
	if state.Score != 0 {
		t.Errorf("Expected score 0, got %d", state.Score)
	}
}

func TestAdvanceFiresTicks(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	input := platformcore.NewInputFrame()
	result := g.Advance(frame, input)

	if result.Ticks != 1 {
		t.Errorf("One frame at 60fps should fire 1 tick, got %d", result.Ticks)
	}
	if g.sim.Tick() != 1 {
		t.Errorf("Simulation tick should be 1, got %d", g.sim.Tick())
	}
}

func TestPauseToggle(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionPause)

	g.Advance(frame, input)
	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	// Paused game must not tick
	tickBefore := g.sim.Tick()
	g.Advance(frame, platformcore.NewInputFrame())
	if g.sim.Tick() != tickBefore {
		t.Error("Paused game advanced the simulation")
	}

	g.Advance(frame, input)
	if g.State().Paused {
		t.Error("Second pause press should resume")
	}
}

func TestSyntheticKeyPulse(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionRight)
	g.Advance(frame, input)

	if g.sim.Input.Buffered() != core.DirRight {
		t.Errorf("Expected buffered right, got %v", g.sim.Input.Buffered())
	}

	// After the pulse window the synthetic key is released but the engine
	// buffer still carries the intent.
	for i := 0; i < keyPulseTicks; i++ {
		g.Advance(frame, platformcore.NewInputFrame())
	}
	if g.sim.Input.Held() != core.DirNone {
		t.Errorf("Synthetic key still held after pulse window: %v", g.sim.Input.Held())
	}
	if g.sim.Input.Buffered() != core.DirRight {
		t.Errorf("Buffer lost after key release: %v", g.sim.Input.Buffered())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() *Game {
		g := New(false)
		g.Reset(bigScreen())

		for i := 0; i < 120; i++ {
			input := platformcore.NewInputFrame()
			if i == 10 {
				input.Set(platformcore.ActionUp)
			}
			if i == 50 {
				input.Set(platformcore.ActionLeft)
			}
			g.Advance(frame, input)
		}
		return g
	}

	g1 := run()
	g2 := run()

	if g1.sim.Tick() != g2.sim.Tick() {
		t.Errorf("Tick mismatch: %d vs %d", g1.sim.Tick(), g2.sim.Tick())
	}
	if g1.sim.PlayerPos != g2.sim.PlayerPos {
		t.Errorf("Player position mismatch: %v vs %v", g1.sim.PlayerPos, g2.sim.PlayerPos)
	}
	if g1.Score() != g2.Score() {
		t.Errorf("Score mismatch: %d vs %d", g1.Score(), g2.Score())
	}
	for i := range g1.sim.Pursuers {
		if g1.sim.Pursuers[i].Pos != g2.sim.Pursuers[i].Pos {
			t.Errorf("Pursuer %d position mismatch: %v vs %v",
				i, g1.sim.Pursuers[i].Pos, g2.sim.Pursuers[i].Pos)
		}
	}
}

func TestAdvanceLevelBanksScore(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	g.sim.Score = 150
	g.sim.Lives = 2
	g.advanceLevel()

	if g.bankScore != 150 {
		t.Errorf("Expected banked score 150, got %d", g.bankScore)
	}
	if g.level != 2 {
		t.Errorf("Expected level 2, got %d", g.level)
	}
	// Campaign carries lives into the next maze
	if g.sim.Lives != 2 {
		t.Errorf("Campaign should carry 2 lives, got %d", g.sim.Lives)
	}
	if g.speedBoost != g.cfg.SpeedPerLevel {
		t.Errorf("Expected speed boost %f, got %f", g.cfg.SpeedPerLevel, g.speedBoost)
	}
}

func TestEndlessRefillsLives(t *testing.T) {
	g := New(true)
	g.Reset(bigScreen())

	g.sim.Lives = 1
	g.advanceLevel()

	if g.sim.Lives != g.cfg.Sim.Lives {
		t.Errorf("Endless should refill to %d lives, got %d", g.cfg.Sim.Lives, g.sim.Lives)
	}
}

func TestSpeedBoostCapped(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	for i := 0; i < 100; i++ {
		g.advanceLevel()
	}
	if g.speedBoost > g.cfg.MaxSpeedBoost {
		t.Errorf("Speed boost %f exceeds cap %f", g.speedBoost, g.cfg.MaxSpeedBoost)
	}
}

func TestMazeGrowth(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	w, h := g.mazeSize()
	if w != 21 || h != 15 {
		t.Errorf("Level 1 maze should be 21x15, got %dx%d", w, h)
	}

	g.level = 3 // one growth step with GrowEvery=2
	w, h = g.mazeSize()
	if w != 23 || h != 17 {
		t.Errorf("Level 3 maze should be 23x17, got %dx%d", w, h)
	}

	g.level = 1000
	w, h = g.mazeSize()
	if w > 41 || h > 29 {
		t.Errorf("Maze growth should cap at 41x29, got %dx%d", w, h)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	g.gameOver = true
	g.level = 5
	g.bankScore = 300

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionRestart)
	g.Advance(frame, input)

	if g.gameOver {
		t.Error("Restart should clear game over")
	}
	if g.level != 1 {
		t.Errorf("Restart should reset to level 1, got %d", g.level)
	}
	if g.Score() != 0 {
		t.Errorf("Restart should reset the score, got %d", g.Score())
	}
}

func TestRestartIgnoredMidRun(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	g.Advance(frame, platformcore.NewInputFrame())
	tick := g.sim.Tick()

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionRestart)
	g.Advance(frame, input)

	if g.sim.Tick() <= tick {
		t.Error("Restart mid-run should be ignored and the game keep ticking")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(false)
	g.Reset(platformcore.RuntimeConfig{
		Seed:     42,
		ScreenW:  40,
		ScreenH:  20,
		TickRate: 60,
	})

	if !g.tooSmall {
		t.Error("Game should detect the window is too small")
	}

	// A too-small game must not advance
	g.Advance(frame, platformcore.NewInputFrame())
	if g.sim.Tick() != 0 {
		t.Error("Too-small game should not tick")
	}
}

func TestRunInfo(t *testing.T) {
	g := New(false)
	g.Reset(bigScreen())

	seed, _, level, outcome := g.RunInfo()
	if seed != 42 {
		t.Errorf("Expected seed 42, got %d", seed)
	}
	if level != 1 {
		t.Errorf("Expected level 1, got %d", level)
	}
	if outcome != "quit" {
		t.Errorf("Mid-run outcome should be 'quit', got %q", outcome)
	}

	// Clearing a maze upgrades a later quit to a cleared run
	g.advanceLevel()
	_, _, level, outcome = g.RunInfo()
	if level != 2 {
		t.Errorf("Expected level 2 after a cleared maze, got %d", level)
	}
	if outcome != "cleared" {
		t.Errorf("Outcome after clearing a maze should be 'cleared', got %q", outcome)
	}

	g.gameOver = true
	_, _, _, outcome = g.RunInfo()
	if outcome != "caught" {
		t.Errorf("Game-over outcome should be 'caught', got %q", outcome)
	}
}

func TestRender(t *testing.T) {
	cfg := bigScreen()
	g := New(false)
	g.Reset(cfg)

	screen := platformcore.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Maze Chase") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "Score") {
		t.Error("HUD should show the score")
	}
	// The player glyph must be on screen
	if !strings.Contains(content, "@") {
		t.Error("Player glyph missing from the rendered maze")
	}
}
