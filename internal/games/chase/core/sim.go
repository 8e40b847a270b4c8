package core

// Sim owns one run of the maze chase: the generated grid, the player,
// the pursuers, and the per-tick orchestration that wires input, AI,
// collection and capture together. It is single-threaded and step-driven;
// the host advances it through a Loop.

// SimConfig holds the gameplay parameters around the generated maze.
type SimConfig struct {
	// PlayerSpeed is the player's movement rate in cells per tick.
	PlayerSpeed float64 `yaml:"player_speed"`

	// PowerDuration is how many ticks pursuers evade after the player
	// takes a power node.
	PowerDuration int `yaml:"power_duration"`

	// RespawnDelay is how many ticks a disabled pursuer stays out.
	RespawnDelay int `yaml:"respawn_delay"`

	// Lives is how many captures the player survives.
	Lives int `yaml:"lives"`

	// Sprint is the ability-key burst: a short player speed boost with a
	// cooldown.
	SprintFactor   float64 `yaml:"sprint_factor"`
	SprintDuration int     `yaml:"sprint_duration"`
	SprintCooldown int     `yaml:"sprint_cooldown"`
}

// DefaultSimConfig returns gameplay defaults.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		PlayerSpeed:    0.15,
		PowerDuration:  420,
		RespawnDelay:   300,
		Lives:          3,
		SprintFactor:   1.5,
		SprintDuration: 90,
		SprintCooldown: 600,
	}
}

// Sim is the running simulation state.
type Sim struct {
	Grid     *Grid
	Input    *InputHandler
	Pursuers []*Pursuer

	PlayerPos    Coord
	PlayerFacing Dir

	Score            int
	CollectiblesLeft int
	Lives            int
	PowerTicks       int
	Caught           bool
	Complete         bool

	cfg        SimConfig
	ai         AIConfig
	rng        *RNG
	tick       uint64
	accum      float64 // player movement bank
	pursuerMod float64 // host-set pursuer speed multiplier

	sprintTicks    int
	sprintCooldown int
}

// NewSim generates a maze and builds a simulation over it. All
// randomness, generation and AI alike, flows from the single seed in
// the generation parameters.
func NewSim(gen GenParams, sim SimConfig, ai AIConfig) *Sim {
	grid := Generate(gen)

	s := &Sim{
		Grid:             grid,
		Input:            NewInputHandler(),
		PlayerPos:        grid.PlayerSpawn,
		PlayerFacing:     DirNone,
		CollectiblesLeft: grid.CollectibleCount,
		Lives:            sim.Lives,
		cfg:              sim,
		ai:               ai,
		// The generator consumed a prefix of the seed's stream; keep
		// drawing from a stream derived from the same seed for AI.
		rng:        NewRNG(int64(uint64(gen.Seed) ^ 0x9E3779B97F4A7C15)),
		pursuerMod: 1,
	}

	s.spawnPursuers()
	return s
}

// spawnPursuers creates one pursuer per generated spawn, assigning
// archetypes in a fixed rotation and pairing swarm members as they
// appear.
func (s *Sim) spawnPursuers() {
	var unpaired *Pursuer
	for i, spawn := range s.Grid.PursuerSpawns {
		p := NewPursuer(i, archetypeFor(i), spawn)
		switch p.Archetype {
		case ArchetypePatrol:
			AssignPatrolWaypoints(p, s.Grid)
		case ArchetypeSwarm:
			if unpaired == nil {
				unpaired = p
			} else {
				PairSwarm(unpaired, p, Dirs[s.rng.Intn(DirCount)])
				unpaired = nil
			}
		}
		s.Pursuers = append(s.Pursuers, p)
	}
}

// archetypeFor rotates archetypes over spawn order: hunter and patrol
// first, then a swarm pair, then a phantom.
func archetypeFor(i int) Archetype {
	switch i % 5 {
	case 0:
		return ArchetypeHunter
	case 1:
		return ArchetypePatrol
	case 2, 3:
		return ArchetypeSwarm
	default:
		return ArchetypePhantom
	}
}

// SetPursuerSpeedMod sets a global pursuer speed multiplier. The host
// raises it as a campaign progresses.
func (s *Sim) SetPursuerSpeedMod(m float64) {
	if m <= 0 {
		m = 1
	}
	s.pursuerMod = m
}

// SprintState reports whether the sprint burst is active and how many
// ticks of cooldown remain.
func (s *Sim) SprintState() (active bool, cooldown int) {
	return s.sprintTicks > 0, s.sprintCooldown
}

// Tick returns the current simulation tick.
func (s *Sim) Tick() uint64 {
	return s.tick
}

// Over reports whether the run reached a terminal state.
func (s *Sim) Over() bool {
	return s.Caught || s.Complete
}

// Step advances the simulation by one fixed tick and returns the events
// it produced.
func (s *Sim) Step() []Event {
	if s.Over() {
		return nil
	}

	var events []Event
	s.Input.Tick()

	if s.Input.ConsumeAbility() && s.sprintCooldown == 0 {
		s.sprintTicks = s.cfg.SprintDuration
		s.sprintCooldown = s.cfg.SprintCooldown
	}
	if s.sprintTicks > 0 {
		s.sprintTicks--
	}
	if s.sprintCooldown > 0 {
		s.sprintCooldown--
	}

	speedMod := 1.0
	if s.sprintTicks > 0 {
		speedMod = s.cfg.SprintFactor
	}

	events = append(events, s.stepPlayer(speedMod)...)
	if s.Over() {
		return events
	}

	if s.PowerTicks > 0 {
		s.PowerTicks--
		if s.PowerTicks == 0 {
			for _, p := range s.Pursuers {
				if p.Mode == ModeEvading {
					p.Mode = ModeNormal
					events = append(events, Event{Type: EventEvadeEnded, Tick: s.tick, Pursuer: p.ID, Pos: p.Pos})
				}
			}
		}
	}

	events = append(events, s.stepPursuers(speedMod)...)

	s.tick++
	return events
}

// stepPlayer banks player movement and resolves collection and capture
// on every cell entered.
func (s *Sim) stepPlayer(speedMod float64) []Event {
	var events []Event

	s.accum += s.cfg.PlayerSpeed * speedMod
	for s.accum >= 1 {
		s.accum -= 1

		dir := s.PlayerFacing
		if buffered := s.Input.Buffered(); buffered != DirNone && CanMove(s.Grid, s.PlayerPos, buffered) {
			dir = s.Input.ConsumeBuffered()
		} else if held := s.Input.Held(); held != DirNone && CanMove(s.Grid, s.PlayerPos, held) {
			dir = held
		}

		if dir == DirNone {
			continue
		}
		dst, ok := TryMove(s.Grid, s.PlayerPos, dir)
		if !ok {
			continue
		}
		s.PlayerPos = dst
		s.PlayerFacing = dir

		events = append(events, s.collectAt(dst)...)
		events = append(events, s.resolveContacts()...)
		if s.Over() {
			return events
		}
	}
	return events
}

// collectAt applies the content of a cell the player entered.
func (s *Sim) collectAt(c Coord) []Event {
	content, ok := s.Grid.Collect(c)
	if !ok {
		return nil
	}

	switch content {
	case ContentCollectible:
		s.Score += 10
		s.CollectiblesLeft--
		events := []Event{{Type: EventCollectibleTaken, Tick: s.tick, Pursuer: -1, Pos: c}}
		if s.CollectiblesLeft == 0 {
			s.Complete = true
			events = append(events, Event{Type: EventObjectiveComplete, Tick: s.tick, Pursuer: -1, Pos: c})
		}
		return events

	case ContentPowerNode:
		s.Score += 50
		s.PowerTicks = s.cfg.PowerDuration
		events := []Event{{Type: EventPowerNodeTaken, Tick: s.tick, Pursuer: -1, Pos: c}}
		for _, p := range s.Pursuers {
			if p.Mode == ModeNormal {
				p.Mode = ModeEvading
				events = append(events, Event{Type: EventEvadeStarted, Tick: s.tick, Pursuer: p.ID, Pos: p.Pos})
			}
		}
		return events
	}
	return nil
}

// stepPursuers runs every pursuer's own update, then resolves contacts.
// Archetype base speeds are fractions of the player's movement rate, so
// the cadence passed down is the player's effective rate this tick
// (sprint included) times the host's campaign multiplier. A sprinting
// player changes everyone's absolute pace but nobody's relative one.
func (s *Sim) stepPursuers(playerMod float64) []Event {
	rate := s.cfg.PlayerSpeed * playerMod * s.pursuerMod
	var events []Event
	for _, p := range s.Pursuers {
		if p.Mode == ModeDisabled {
			p.RespawnIn--
			if p.RespawnIn <= 0 {
				p.Pos = p.Spawn
				p.Facing = DirNone
				p.Mode = ModeNormal
				if s.PowerTicks > 0 {
					p.Mode = ModeEvading
				}
				events = append(events, Event{Type: EventPursuerRespawned, Tick: s.tick, Pursuer: p.ID, Pos: p.Pos})
			}
			continue
		}

		events = append(events, StepPursuer(p, s.Grid, s.PlayerPos, s.Pursuers, s.ai, s.rng, s.tick, rate)...)
		events = append(events, s.resolveContacts()...)
		if s.Over() {
			return events
		}
	}
	return events
}

// resolveContacts handles player/pursuer cell sharing: an evading
// pursuer is disabled, a normal one captures the player.
func (s *Sim) resolveContacts() []Event {
	var events []Event
	for _, p := range s.Pursuers {
		if p.Mode == ModeDisabled || p.Pos != s.PlayerPos {
			continue
		}

		if p.Mode == ModeEvading {
			p.Mode = ModeDisabled
			p.RespawnIn = s.cfg.RespawnDelay
			s.Score += 200
			events = append(events, Event{Type: EventPursuerDisabled, Tick: s.tick, Pursuer: p.ID, Pos: p.Pos})
			continue
		}

		events = append(events, Event{Type: EventPlayerCaught, Tick: s.tick, Pursuer: p.ID, Pos: p.Pos})
		s.Lives--
		if s.Lives <= 0 {
			s.Caught = true
			return events
		}
		s.resetPositions()
		return events
	}
	return events
}

// resetPositions returns everyone to their spawns after a non-final
// capture. The maze content (collected cells) is preserved.
func (s *Sim) resetPositions() {
	s.PlayerPos = s.Grid.PlayerSpawn
	s.PlayerFacing = DirNone
	s.accum = 0
	s.PowerTicks = 0
	s.Input.Reset()
	for _, p := range s.Pursuers {
		if p.Mode == ModeDisabled {
			continue
		}
		p.Pos = p.Spawn
		p.Facing = DirNone
		p.Mode = ModeNormal
		p.moveAccum = 0
	}
}
