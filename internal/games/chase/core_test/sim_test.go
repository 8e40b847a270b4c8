package core_test

import (
	"testing"

	"github.com/vovakirdan/mazehunt/internal/games/chase/core"
)

// fastSim builds a simulation where the player moves one cell per tick,
// which keeps movement tests short and predictable.
func fastSim(seed int64, pursuers int) *core.Sim {
	gen := core.DefaultGenParams(21, 15, seed)
	gen.PursuerCount = pursuers

	sim := core.DefaultSimConfig()
	sim.PlayerSpeed = 1.0

	return core.NewSim(gen, sim, core.DefaultAIConfig())
}

func TestSimInitialState(t *testing.T) {
	s := fastSim(42, 4)

	if s.PlayerPos != s.Grid.PlayerSpawn {
		t.Errorf("player starts at %v, expected spawn %v", s.PlayerPos, s.Grid.PlayerSpawn)
	}
	if len(s.Pursuers) != 4 {
		t.Errorf("expected 4 pursuers, got %d", len(s.Pursuers))
	}
	if s.CollectiblesLeft != s.Grid.CollectibleCount {
		t.Errorf("collectibles left %d, grid has %d", s.CollectiblesLeft, s.Grid.CollectibleCount)
	}
	if s.Over() {
		t.Error("fresh simulation should not be over")
	}
}

func TestSimArchetypeRotation(t *testing.T) {
	s := fastSim(42, 4)

	want := []core.Archetype{
		core.ArchetypeHunter,
		core.ArchetypePatrol,
		core.ArchetypeSwarm,
		core.ArchetypeSwarm,
	}
	for i, p := range s.Pursuers {
		if p.Archetype != want[i] {
			t.Errorf("pursuer %d: expected %v, got %v", i, want[i], p.Archetype)
		}
	}
}

func TestSimPlayerMovesWithHeldKey(t *testing.T) {
	s := fastSim(42, 0)

	start := s.PlayerPos
	dirs := core.ValidDirections(s.Grid, start)
	if len(dirs) == 0 {
		t.Fatal("spawn has no open direction")
	}

	s.Input.KeyDown(dirs[0].String())
	s.Step()

	if s.PlayerPos == start {
		t.Error("player did not move with a held key")
	}
	if s.PlayerFacing != dirs[0] {
		t.Errorf("expected facing %v, got %v", dirs[0], s.PlayerFacing)
	}
}

func TestSimPlayerIdleWithoutInput(t *testing.T) {
	s := fastSim(42, 0)

	start := s.PlayerPos
	for i := 0; i < 20; i++ {
		s.Step()
	}
	if s.PlayerPos != start {
		t.Errorf("player moved without input: %v -> %v", start, s.PlayerPos)
	}
}

func TestSimCollectibleScoring(t *testing.T) {
	gen := core.DefaultGenParams(21, 15, 42)
	gen.PursuerCount = 0
	gen.CollectibleTarget = 1

	cfg := core.DefaultSimConfig()
	cfg.PlayerSpeed = 1.0

	s := core.NewSim(gen, cfg, core.DefaultAIConfig())
	if s.CollectiblesLeft != 1 {
		t.Fatalf("expected a single collectible, got %d", s.CollectiblesLeft)
	}

	target := findContent(s.Grid, core.ContentCollectible)
	approach, dir := openNeighbor(t, s.Grid, target)

	s.PlayerPos = approach
	s.Input.KeyDown(dir.String())

	var events []core.Event
	for i := 0; i < 5 && !s.Over(); i++ {
		events = append(events, s.Step()...)
	}

	if !hasEvent(events, core.EventCollectibleTaken) {
		t.Fatal("collectible was not taken")
	}
	if s.Score < 10 {
		t.Errorf("expected score >= 10, got %d", s.Score)
	}
	if s.CollectiblesLeft != 0 {
		t.Errorf("expected 0 collectibles left, got %d", s.CollectiblesLeft)
	}

	// Last collectible completes the objective
	if !s.Complete {
		t.Error("expected completion after the last collectible")
	}
	if !hasEvent(events, core.EventObjectiveComplete) {
		t.Error("expected an objective-complete event")
	}
}

func TestSimPowerNodeStartsEvade(t *testing.T) {
	s := fastSim(42, 4)

	// Pick a power node with an approach cell well clear of every pursuer
	// spawn so nothing interferes before the pickup.
	var approach core.Coord
	dir := core.DirNone
	for _, node := range s.Grid.PowerNodes {
		c, d := openNeighbor(t, s.Grid, node)
		clear := true
		for _, spawn := range s.Grid.PursuerSpawns {
			if c.Manhattan(spawn) < 4 {
				clear = false
				break
			}
		}
		if clear {
			approach, dir = c, d
			break
		}
	}
	if dir == core.DirNone {
		t.Skip("no power node clear of pursuer spawns for this layout")
	}

	s.PlayerPos = approach
	s.Input.KeyDown(dir.String())

	var events []core.Event
	for i := 0; i < 3 && !s.Over(); i++ {
		events = append(events, s.Step()...)
	}

	if !hasEvent(events, core.EventPowerNodeTaken) {
		t.Fatal("power node was not taken")
	}
	if !hasEvent(events, core.EventEvadeStarted) {
		t.Error("expected evade-started events")
	}
	if s.PowerTicks <= 0 {
		t.Error("expected an active power window")
	}
	for _, p := range s.Pursuers {
		if p.Mode != core.ModeEvading {
			t.Errorf("pursuer %d not evading after power node", p.ID)
		}
	}
}

func TestSimCaptureCostsLife(t *testing.T) {
	gen := core.DefaultGenParams(21, 15, 42)
	cfg := core.DefaultSimConfig()
	cfg.Lives = 2

	s := core.NewSim(gen, cfg, core.DefaultAIConfig())

	// Force a contact: a normal pursuer standing on the player's cell
	s.Pursuers[0].Pos = s.PlayerPos

	events := s.Step()
	if !hasEvent(events, core.EventPlayerCaught) {
		t.Fatal("expected a capture event")
	}
	if s.Lives != 1 {
		t.Errorf("expected 1 life left, got %d", s.Lives)
	}
	if s.Caught {
		t.Error("run should continue with a life remaining")
	}

	// Positions reset after a non-final capture
	if s.PlayerPos != s.Grid.PlayerSpawn {
		t.Errorf("player not returned to spawn: %v", s.PlayerPos)
	}
	for _, p := range s.Pursuers {
		if p.Pos != p.Spawn {
			t.Errorf("pursuer %d not returned to spawn: %v", p.ID, p.Pos)
		}
	}
}

func TestSimFinalCaptureEndsRun(t *testing.T) {
	gen := core.DefaultGenParams(21, 15, 42)
	cfg := core.DefaultSimConfig()
	cfg.Lives = 1

	s := core.NewSim(gen, cfg, core.DefaultAIConfig())
	s.Pursuers[0].Pos = s.PlayerPos

	events := s.Step()
	if !hasEvent(events, core.EventPlayerCaught) {
		t.Fatal("expected a capture event")
	}
	if !s.Caught || !s.Over() {
		t.Error("expected the run to end on the last life")
	}

	// A finished simulation is inert
	if extra := s.Step(); extra != nil {
		t.Errorf("finished simulation still produced events: %v", extra)
	}
}

func TestSimEvadingPursuerDisabledOnContact(t *testing.T) {
	gen := core.DefaultGenParams(21, 15, 42)
	cfg := core.DefaultSimConfig()
	cfg.RespawnDelay = 30
	cfg.Lives = 99

	s := core.NewSim(gen, cfg, core.DefaultAIConfig())

	s.PowerTicks = 200
	p := s.Pursuers[0]
	p.Mode = core.ModeEvading
	p.Pos = s.PlayerPos

	before := s.Score
	events := s.Step()

	if !hasEvent(events, core.EventPursuerDisabled) {
		t.Fatal("expected a pursuer-disabled event")
	}
	if p.Mode != core.ModeDisabled {
		t.Errorf("expected disabled mode, got %v", p.Mode)
	}
	if s.Score-before < 200 {
		t.Errorf("expected disable bonus, score went %d -> %d", before, s.Score)
	}

	// The pursuer returns to its spawn after the respawn delay
	var respawned bool
	for i := 0; i < 200 && !s.Over(); i++ {
		if hasEvent(s.Step(), core.EventPursuerRespawned) {
			respawned = true
			break
		}
	}
	if !respawned {
		t.Fatal("pursuer never respawned")
	}
	if p.Pos != p.Spawn {
		t.Errorf("respawned pursuer at %v, expected spawn %v", p.Pos, p.Spawn)
	}
}

func TestSimDeterminism(t *testing.T) {
	script := []struct {
		tick int
		key  string
	}{
		{0, "up"}, {40, "left"}, {90, "down"}, {140, "right"}, {200, "space"},
	}

	run := func() *core.Sim {
		gen := core.DefaultGenParams(21, 15, 42)
		s := core.NewSim(gen, core.DefaultSimConfig(), core.DefaultAIConfig())
		for tick := 0; tick < 300 && !s.Over(); tick++ {
			for _, in := range script {
				if in.tick == tick {
					s.Input.KeyDown(in.key)
				}
			}
			s.Step()
		}
		return s
	}

	s1 := run()
	s2 := run()

	if s1.PlayerPos != s2.PlayerPos {
		t.Errorf("player positions diverged: %v vs %v", s1.PlayerPos, s2.PlayerPos)
	}
	if s1.Score != s2.Score {
		t.Errorf("scores diverged: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Tick() != s2.Tick() {
		t.Errorf("tick counters diverged: %d vs %d", s1.Tick(), s2.Tick())
	}
	for i := range s1.Pursuers {
		a, b := s1.Pursuers[i], s2.Pursuers[i]
		if a.Pos != b.Pos || a.Mode != b.Mode {
			t.Errorf("pursuer %d diverged: %v/%v vs %v/%v", i, a.Pos, a.Mode, b.Pos, b.Mode)
		}
	}
}

func TestSimSprintState(t *testing.T) {
	s := fastSim(42, 0)

	active, cooldown := s.SprintState()
	if active || cooldown != 0 {
		t.Fatal("sprint should start inactive")
	}

	s.Input.KeyDown("space")
	s.Step()

	active, cooldown = s.SprintState()
	if !active {
		t.Error("expected an active sprint after the ability key")
	}
	if cooldown <= 0 {
		t.Error("expected a running sprint cooldown")
	}

	// A second press during cooldown must not retrigger
	cfg := core.DefaultSimConfig()
	for i := 0; i < cfg.SprintDuration+1; i++ {
		s.Step()
	}
	s.Input.KeyDown("space")
	s.Step()
	if active, _ := s.SprintState(); active {
		t.Error("sprint retriggered during cooldown")
	}
}

func TestStepPursuerDisabledIsInert(t *testing.T) {
	g := core.Generate(core.DefaultGenParams(21, 15, 42))
	rng := core.NewRNG(1)

	p := core.NewPursuer(0, core.ArchetypeHunter, g.PursuerSpawns[0])
	p.Mode = core.ModeDisabled
	pos := p.Pos

	for tick := uint64(0); tick < 50; tick++ {
		events := core.StepPursuer(p, g, g.PlayerSpawn, nil, core.DefaultAIConfig(), rng, tick, 1)
		if events != nil {
			t.Fatalf("disabled pursuer emitted events: %v", events)
		}
	}
	if p.Pos != pos {
		t.Error("disabled pursuer moved")
	}
}

func TestStepPursuerHunterEngages(t *testing.T) {
	g := core.Generate(core.DefaultGenParams(21, 15, 42))
	rng := core.NewRNG(1)
	cfg := core.DefaultAIConfig()

	p := core.NewPursuer(0, core.ArchetypeHunter, g.PursuerSpawns[0])
	start := p.Pos

	// A player adjacent through an open wall sits inside the proximity
	// radius, so the hunter engages on its first movement step.
	player, _ := openNeighbor(t, g, start)
	target := hunterTarget(g, start, player, cfg.HunterLead)
	before := len(core.FindPath(g, start, target))

	moved := false
	for tick := uint64(0); tick < 20 && !moved; tick++ {
		core.StepPursuer(p, g, player, nil, cfg, rng, tick, 1)
		moved = p.Pos != start
	}
	if !moved {
		t.Fatal("engaged hunter never moved over 20 ticks")
	}
	if !p.Hunter.Chasing {
		t.Error("hunter within proximity did not enter chase mode")
	}

	// The first chase step follows the shortest path, so the remaining
	// path distance to the chase target must shrink.
	after := len(core.FindPath(g, p.Pos, target))
	if after >= before {
		t.Errorf("chasing hunter stepped away from its target: path length %d -> %d", before, after)
	}
}

// hunterTarget mirrors the chase target choice: a point projected ahead
// of the player along the approach axis, falling back to the player's
// cell when the projection is sealed or unreachable.
func hunterTarget(g *core.Grid, hunter, player core.Coord, lead int) core.Coord {
	dx := player.X - hunter.X
	dy := player.Y - hunter.Y

	target := player
	if intAbs(dx) >= intAbs(dy) {
		target.X += lead * intSign(dx)
	} else {
		target.Y += lead * intSign(dy)
	}
	if target.X < 0 {
		target.X = 0
	}
	if target.X > g.W-1 {
		target.X = g.W - 1
	}
	if target.Y < 0 {
		target.Y = 0
	}
	if target.Y > g.H-1 {
		target.Y = g.H - 1
	}

	if g.Cell(target).OpenCount() == 0 || core.FindPath(g, hunter, target) == nil {
		return player
	}
	return target
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func intSign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func TestSimPursuerCadenceRelativeToPlayer(t *testing.T) {
	gen := core.DefaultGenParams(21, 15, 42)
	cfg := core.DefaultSimConfig()
	cfg.Lives = 99

	s := core.NewSim(gen, cfg, core.DefaultAIConfig())

	const ticks = 400
	prev := make([]core.Coord, len(s.Pursuers))
	for i, p := range s.Pursuers {
		prev[i] = p.Pos
	}
	steps := make([]int, len(s.Pursuers))

	for i := 0; i < ticks && !s.Over(); i++ {
		events := s.Step()
		// Skip capture ticks: the position reset is not travel.
		caught := hasEvent(events, core.EventPlayerCaught)
		for j, p := range s.Pursuers {
			if !caught && p.Pos.Manhattan(prev[j]) == 1 {
				steps[j]++
			}
			prev[j] = p.Pos
		}
	}

	// Base speeds are fractions of the player's movement rate, so no
	// pursuer may out-travel the player's cell budget for the window.
	budget := int(cfg.PlayerSpeed*float64(ticks)) + 1
	for j, n := range steps {
		if n > budget {
			t.Errorf("pursuer %d moved %d cells in %d ticks, player budget is %d",
				j, n, ticks, budget)
		}
	}
}

// findContent returns the first cell holding the given content.
func findContent(g *core.Grid, want core.Content) core.Coord {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := core.C(x, y)
			if g.Cell(c).Content == want {
				return c
			}
		}
	}
	return core.C(-1, -1)
}

// openNeighbor returns a cell adjacent to target with an open passage
// into it, plus the direction of that passage.
func openNeighbor(t *testing.T, g *core.Grid, target core.Coord) (core.Coord, core.Dir) {
	t.Helper()
	for _, d := range core.Dirs {
		if !g.HasWall(target, d) {
			return target.Step(d), d.Opposite()
		}
	}
	t.Fatalf("cell %v has no open neighbor", target)
	return core.C(-1, -1), core.DirNone
}

func hasEvent(events []core.Event, want core.EventType) bool {
	for _, e := range events {
		if e.Type == want {
			return true
		}
	}
	return false
}
