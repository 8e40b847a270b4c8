// Package chase provides the Maze Chase pursuit game.
package chase

import (
	platformcore "github.com/vovakirdan/mazehunt/internal/core"
	"github.com/vovakirdan/mazehunt/internal/games/chase/core"
	"github.com/vovakirdan/mazehunt/internal/registry"
)

// keyPulseTicks is how long a synthetic key press is held before the
// matching release. Terminals deliver presses without releases, so the
// wrapper taps the engine's key handler and lets its input buffer carry
// the intent.
const keyPulseTicks = 2

// Game implements Maze Chase on top of the pure simulation engine.
// The campaign mode carries lives across mazes; the endless mode refills
// them on every cleared maze and never stops.
type Game struct {
	cfg     ChaseSettings
	endless bool

	loop *core.Loop
	sim  *core.Sim

	// Run state across mazes
	level      int
	bankScore  int // score banked from cleared mazes
	lives      int
	seed       int64 // seed of the current maze
	seedRNG    *core.RNG
	speedBoost float64
	gameOver   bool

	// Synthetic key press bookkeeping
	pulses map[string]int

	// Screen
	screenW  int
	screenH  int
	tooSmall bool

	// Transient status line from recent events
	flash      string
	flashUntil uint64
}

// ChaseSettings bundles everything the wrapper needs to build a run.
// The cmd layer fills it from the YAML config and flags; tests fill it
// directly.
type ChaseSettings struct {
	MazeWidth         int
	MazeHeight        int
	LoopFraction      float64
	PursuerCount      int
	CollectibleTarget int

	Sim core.SimConfig
	AI  core.AIConfig

	// Campaign progression
	SpeedPerLevel float64
	MaxSpeedBoost float64
	GrowEvery     int
	GrowStep      int
}

// DefaultSettings returns settings matching the embedded config defaults.
func DefaultSettings() ChaseSettings {
	return ChaseSettings{
		MazeWidth:         21,
		MazeHeight:        15,
		LoopFraction:      0.2,
		PursuerCount:      4,
		CollectibleTarget: 60,
		Sim:               core.DefaultSimConfig(),
		AI:                core.DefaultAIConfig(),
		SpeedPerLevel:     0.05,
		MaxSpeedBoost:     0.5,
		GrowEvery:         2,
		GrowStep:          2,
	}
}

// Package-level settings injected by the cmd layer before Reset.
var pendingSettings *ChaseSettings

// SetSettings overrides the settings used by the next Reset.
func SetSettings(s ChaseSettings) {
	pendingSettings = &s
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New(false)
	})
	registry.Register("chase_endless", func() registry.Game {
		return New(true)
	})
}

// New creates a Maze Chase game.
func New(endless bool) *Game {
	return &Game{
		cfg:     DefaultSettings(),
		endless: endless,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.endless {
		return "chase_endless"
	}
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.endless {
		return "Maze Chase (Endless)"
	}
	return "Maze Chase"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if pendingSettings != nil {
		g.cfg = *pendingSettings
	}

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.level = 1
	g.bankScore = 0
	g.lives = g.cfg.Sim.Lives
	g.speedBoost = 0
	g.gameOver = false
	g.flash = ""
	g.flashUntil = 0
	g.pulses = make(map[string]int)

	g.seedRNG = core.NewRNG(cfg.Seed)
	g.seed = cfg.Seed

	g.loop = core.NewLoop(cfg.TickRate)
	g.startMaze()
}

// startMaze generates the maze for the current level and builds a fresh
// simulation over it, carrying lives and the progression speed boost.
func (g *Game) startMaze() {
	w, h := g.mazeSize()
	gen := core.DefaultGenParams(w, h, g.seed)
	gen.LoopFraction = g.cfg.LoopFraction
	gen.PursuerCount = g.cfg.PursuerCount
	gen.CollectibleTarget = g.cfg.CollectibleTarget

	g.sim = core.NewSim(gen, g.cfg.Sim, g.cfg.AI)
	g.sim.Lives = g.lives
	g.sim.SetPursuerSpeedMod(1 + g.speedBoost)

	g.checkLayout()
}

// mazeSize returns the maze dimensions for the current level, applying
// campaign growth. Dimensions stay odd so the wall expansion renders
// cleanly, and are capped to keep mazes playable on a terminal.
func (g *Game) mazeSize() (int, int) {
	w, h := g.cfg.MazeWidth, g.cfg.MazeHeight
	if g.cfg.GrowEvery > 0 {
		steps := (g.level - 1) / g.cfg.GrowEvery
		w += steps * g.cfg.GrowStep
		h += steps * g.cfg.GrowStep
	}
	if w > 41 {
		w = 41
	}
	if h > 29 {
		h = 29
	}
	return w, h
}

// Advance feeds elapsed host time into the fixed-timestep loop.
func (g *Game) Advance(dt float64, input platformcore.InputFrame) platformcore.StepResult {
	// Handle restart
	if input.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     int64(g.seedRNG.Next()),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: 60,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) && !g.gameOver {
		if g.loop.Paused() {
			g.loop.Resume()
		} else {
			g.loop.Pause()
		}
	}

	if g.gameOver || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.applyInput(input)

	ticks := 0
	g.loop.Advance(dt, func(uint64) {
		events := g.sim.Step()
		g.handleEvents(events)
		g.decayPulses()
		ticks++
	}, nil)

	if g.sim.Caught {
		g.gameOver = true
	} else if g.sim.Complete {
		g.advanceLevel()
	}

	return platformcore.StepResult{State: g.State(), Ticks: ticks}
}

// applyInput converts frame actions into synthetic key presses against
// the engine's input handler.
func (g *Game) applyInput(input platformcore.InputFrame) {
	press := func(key string) {
		g.sim.Input.KeyDown(key)
		g.pulses[key] = keyPulseTicks
	}

	if input.Has(platformcore.ActionUp) {
		press("up")
	}
	if input.Has(platformcore.ActionDown) {
		press("down")
	}
	if input.Has(platformcore.ActionLeft) {
		press("left")
	}
	if input.Has(platformcore.ActionRight) {
		press("right")
	}
	if input.Has(platformcore.ActionAbility) {
		press("space")
	}
}

// decayPulses releases synthetic key presses after their hold window.
func (g *Game) decayPulses() {
	for key, left := range g.pulses {
		left--
		if left <= 0 {
			g.sim.Input.KeyUp(key)
			delete(g.pulses, key)
			continue
		}
		g.pulses[key] = left
	}
}

// handleEvents turns notable simulation events into HUD flashes.
func (g *Game) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventPowerNodeTaken:
			g.setFlash("Power surge! Pursuers are evading")
		case core.EventPursuerDisabled:
			g.setFlash("Pursuer disabled +200")
		case core.EventTeleportWarning:
			g.setFlash("The phantom is about to teleport...")
		case core.EventPlayerCaught:
			g.setFlash("Caught! Positions reset")
		}
	}
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashUntil = g.sim.Tick() + 180
}

// advanceLevel banks the cleared maze and starts the next one.
func (g *Game) advanceLevel() {
	g.bankScore += g.sim.Score
	g.lives = g.sim.Lives
	if g.endless {
		g.lives = g.cfg.Sim.Lives
	}

	g.level++
	g.speedBoost += g.cfg.SpeedPerLevel
	if g.speedBoost > g.cfg.MaxSpeedBoost {
		g.speedBoost = g.cfg.MaxSpeedBoost
	}

	g.seed = int64(g.seedRNG.Next())
	g.startMaze()
	g.setFlash("Maze cleared! Next maze")
}

// Score returns the total run score across mazes.
func (g *Game) Score() int {
	return g.bankScore + g.sim.Score
}

// RunInfo reports the current maze seed, total logic ticks, level and
// outcome for run persistence. A run that banked at least one cleared
// maze before the player left records as cleared rather than quit.
func (g *Game) RunInfo() (seed int64, ticks int64, level int, outcome string) {
	switch {
	case g.gameOver:
		outcome = "caught"
	case g.level > 1:
		outcome = "cleared"
	default:
		outcome = "quit"
	}
	return g.seed, int64(g.loop.Tick()), g.level, outcome
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.Score(),
		Lives:    g.sim.Lives,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.loop.Paused(),
	}
}
