package core

// Archetype identifies a pursuer behavior strategy.
type Archetype uint8

const (
	ArchetypePatrol Archetype = iota
	ArchetypeHunter
	ArchetypePhantom
	ArchetypeSwarm
)

// String returns the archetype name.
func (a Archetype) String() string {
	switch a {
	case ArchetypePatrol:
		return "patrol"
	case ArchetypeHunter:
		return "hunter"
	case ArchetypePhantom:
		return "phantom"
	case ArchetypeSwarm:
		return "swarm"
	default:
		return "unknown"
	}
}

// Mode is a pursuer's behavior mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeEvading
	ModeDisabled
)

// PatrolData is the patrol archetype's mutable payload.
type PatrolData struct {
	Waypoints   []Coord
	WaypointIdx int
	Path        []Coord // cached path to the current waypoint
}

// HunterData is the hunter archetype's mutable payload.
type HunterData struct {
	Home       Coord // scatter target
	Chasing    bool
	ChaseTicks int // persistence countdown before disengaging
	Repath     int // ticks until the chase path is recomputed
	Path       []Coord
}

// PhantomData is the phantom archetype's mutable payload.
type PhantomData struct {
	TeleportIn int // countdown to the next teleport
	Warning    bool
}

// SwarmData is the swarm archetype's mutable payload.
type SwarmData struct {
	PartnerID int // -1 when unpartnered
	FlankDir  Dir // fixed per-pair flanking direction
}

// Pursuer is one AI-controlled entity. Each pursuer's state has exactly
// one writer: its own per-tick update. Peer pursuers read each other's
// positions only.
//
// The archetype payloads form a tagged variant: the Archetype field
// selects which payload is live, and behavior dispatches through a single
// switch per tick.
type Pursuer struct {
	ID        int
	Archetype Archetype
	Pos       Coord
	Facing    Dir
	Mode      Mode
	Spawn     Coord

	RespawnIn int // ticks until a disabled pursuer returns

	Patrol  PatrolData
	Hunter  HunterData
	Phantom PhantomData
	Swarm   SwarmData

	moveAccum float64 // fractional movement bank for sub-tick cadence
}

// AIConfig tunes pursuer behavior. The swarm pincer condition and the
// phantom teleport-scoring weights are parameters here rather than fixed
// constants.
type AIConfig struct {
	// Relative base speeds per archetype, as a fraction of the player's
	// movement rate. All at most 1.
	PatrolSpeed  float64 `yaml:"patrol_speed"`
	HunterSpeed  float64 `yaml:"hunter_speed"`
	PhantomSpeed float64 `yaml:"phantom_speed"`
	SwarmSpeed   float64 `yaml:"swarm_speed"`

	// EvadeSpeedFactor multiplies pursuer speed while evading.
	EvadeSpeedFactor float64 `yaml:"evade_speed_factor"`

	// EvadeExitWeight is the per-open-exit bonus when scoring flee cells,
	// discouraging retreat into dead ends.
	EvadeExitWeight float64 `yaml:"evade_exit_weight"`

	// Hunter tuning.
	HunterSightRange   int `yaml:"hunter_sight_range"`   // line-of-sight chase trigger
	HunterProximity    int `yaml:"hunter_proximity"`     // unconditional chase radius
	HunterRepathEvery  int `yaml:"hunter_repath_every"`  // ticks between chase repaths
	HunterLead         int `yaml:"hunter_lead"`          // ambush projection distance
	ChasePersistence   int `yaml:"chase_persistence"`    // ticks before disengaging
	ChasePersistFar    int `yaml:"chase_persist_far"`    // persistence while player far
	ChaseCloseRange    int `yaml:"chase_close_range"`    // "player remains close" radius
	PhantomChaseBias   float64 `yaml:"phantom_chase_bias"`   // share of ticks moving toward player
	TeleportEvery      int     `yaml:"teleport_every"`       // ticks between phantom teleports
	TeleportWarning    int     `yaml:"teleport_warning"`     // warning lead time in ticks
	TeleportMinDist    int     `yaml:"teleport_min_dist"`    // min distance from player
	TeleportExitWeight float64 `yaml:"teleport_exit_weight"` // junction preference weight
	TeleportCutWeight  float64 `yaml:"teleport_cut_weight"`  // escape-cutting preference weight
	TeleportSelfPenalty float64 `yaml:"teleport_self_penalty"` // penalty near prior position
	TeleportSelfRadius  int     `yaml:"teleport_self_radius"`

	// Swarm tuning.
	PincerRange int `yaml:"pincer_range"` // both partners within this of the player
	PincerSlack int `yaml:"pincer_slack"` // combined-distance bracket tolerance
	FlankOffset int `yaml:"flank_offset"` // flank target offset from the player
}

// DefaultAIConfig returns pursuit tuning defaults.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		PatrolSpeed:  0.85,
		HunterSpeed:  0.95,
		PhantomSpeed: 0.80,
		SwarmSpeed:   0.90,

		EvadeSpeedFactor: 0.60,
		EvadeExitWeight:  0.5,

		HunterSightRange:  10,
		HunterProximity:   4,
		HunterRepathEvery: 6,
		HunterLead:        3,
		ChasePersistence:  90,
		ChasePersistFar:   30,
		ChaseCloseRange:   8,

		PhantomChaseBias:    0.7,
		TeleportEvery:       240,
		TeleportWarning:     45,
		TeleportMinDist:     6,
		TeleportExitWeight:  1.5,
		TeleportCutWeight:   1.0,
		TeleportSelfPenalty: 4.0,
		TeleportSelfRadius:  4,

		PincerRange: 8,
		PincerSlack: 3,
		FlankOffset: 3,
	}
}

// NewPursuer creates a pursuer of the given archetype at its spawn cell.
func NewPursuer(id int, archetype Archetype, spawn Coord) *Pursuer {
	p := &Pursuer{
		ID:        id,
		Archetype: archetype,
		Pos:       spawn,
		Facing:    DirNone,
		Mode:      ModeNormal,
		Spawn:     spawn,
	}
	switch archetype {
	case ArchetypeHunter:
		p.Hunter.Home = spawn
	case ArchetypeSwarm:
		p.Swarm.PartnerID = -1
	}
	return p
}

// shouldMove banks fractional movement and reports whether the pursuer
// takes a step this tick. speedMod is the player's effective movement
// rate in cells per tick, including any external modifier; the
// archetype's relative base speed banks against it, so a base speed of
// at most 1 can never out-pace the player.
func (p *Pursuer) shouldMove(cfg AIConfig, speedMod float64) bool {
	speed := cfg.baseSpeed(p.Archetype)
	if p.Mode == ModeEvading {
		speed *= cfg.EvadeSpeedFactor
	}
	speed *= speedMod

	p.moveAccum += speed
	if p.moveAccum < 1 {
		return false
	}
	p.moveAccum -= 1
	return true
}

func (cfg AIConfig) baseSpeed(a Archetype) float64 {
	switch a {
	case ArchetypePatrol:
		return cfg.PatrolSpeed
	case ArchetypeHunter:
		return cfg.HunterSpeed
	case ArchetypePhantom:
		return cfg.PhantomSpeed
	case ArchetypeSwarm:
		return cfg.SwarmSpeed
	default:
		return 0
	}
}

// StepPursuer advances one pursuer by one tick. It mutates only this
// pursuer's own state; peers and the player position are read-only.
// speedMod is the player's effective movement rate in cells per tick,
// the reference the archetype's relative base speed is applied to.
// Emitted events are returned to the caller.
func StepPursuer(p *Pursuer, g *Grid, player Coord, peers []*Pursuer, cfg AIConfig, rng *RNG, tick uint64, speedMod float64) []Event {
	if p.Mode == ModeDisabled {
		return nil
	}

	// Phantom teleports fire on their own clock, independent of the
	// movement cadence.
	var events []Event
	if p.Archetype == ArchetypePhantom && p.Mode == ModeNormal {
		events = stepPhantomTeleport(p, g, player, cfg, rng, tick)
	}

	if !p.shouldMove(cfg, speedMod) {
		return events
	}

	var next Dir
	if p.Mode == ModeEvading {
		next = evadeDirection(g, p.Pos, player, cfg)
	} else {
		switch p.Archetype {
		case ArchetypePatrol:
			next = patrolDirection(p, g, player)
		case ArchetypeHunter:
			next = hunterDirection(p, g, player, cfg)
		case ArchetypePhantom:
			next = phantomDirection(p, g, player, cfg, rng)
		case ArchetypeSwarm:
			next = swarmDirection(p, g, player, peers, cfg, rng)
		}
	}

	if next == DirNone {
		return events
	}
	if dst, ok := TryMove(g, p.Pos, next); ok {
		p.Pos = dst
		p.Facing = next
	}
	return events
}

// greedyToward picks the open direction that most reduces Manhattan
// distance to target, avoiding immediate reversal when an alternative
// exists. Random tie-breaks keep corridors from looking scripted while
// still drawing from the single run RNG.
func greedyToward(g *Grid, pos, target Coord, facing Dir, rng *RNG) Dir {
	dirs := ValidDirectionsExcept(g, pos, facing.Opposite())
	if len(dirs) == 0 {
		dirs = ValidDirections(g, pos)
	}
	if len(dirs) == 0 {
		return DirNone
	}

	best := dirs[0]
	bestDist := pos.Step(best).Manhattan(target)
	ties := 1
	for _, d := range dirs[1:] {
		dist := pos.Step(d).Manhattan(target)
		switch {
		case dist < bestDist:
			best, bestDist, ties = d, dist, 1
		case dist == bestDist:
			ties++
			if rng.Intn(ties) == 0 {
				best = d
			}
		}
	}
	return best
}

// stepAlongPath returns the direction of the next path cell when it is
// adjacent and open, consuming it from the cached path. ok=false means
// the cache is empty or stale and the caller must recompute or fall back.
func stepAlongPath(g *Grid, pos Coord, path *[]Coord) (Dir, bool) {
	// Drop the current cell if the path starts at it.
	for len(*path) > 0 && (*path)[0] == pos {
		*path = (*path)[1:]
	}
	if len(*path) == 0 {
		return DirNone, false
	}

	next := (*path)[0]
	for _, d := range Dirs {
		if pos.Step(d) == next {
			if !CanMove(g, pos, d) {
				// Wall changed underneath the cache. Defensive: not
				// expected after generation.
				*path = nil
				return DirNone, false
			}
			*path = (*path)[1:]
			return d, true
		}
	}

	// Path no longer lines up with our position.
	*path = nil
	return DirNone, false
}
