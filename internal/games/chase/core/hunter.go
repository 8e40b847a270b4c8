package core

// Hunter pursuers run a two-mode scatter/chase state machine with ambush
// targeting: while chasing they path toward a point projected ahead of
// the player rather than the player's current cell.

// hunterDirection advances the hunter state machine by one movement step.
func hunterDirection(p *Pursuer, g *Grid, player Coord, cfg AIConfig) Dir {
	data := &p.Hunter
	dist := p.Pos.Manhattan(player)

	engaged := dist <= cfg.HunterProximity ||
		(dist <= cfg.HunterSightRange && LineOfSight(g, p.Pos, player))

	if engaged {
		if !data.Chasing {
			data.Chasing = true
			data.Path = nil
			data.Repath = 0
		}
		// Persistence refreshes while the player stays close.
		if dist <= cfg.ChaseCloseRange {
			data.ChaseTicks = cfg.ChasePersistence
		} else if data.ChaseTicks < cfg.ChasePersistFar {
			data.ChaseTicks = cfg.ChasePersistFar
		}
	}

	if data.Chasing {
		data.ChaseTicks--
		if data.ChaseTicks <= 0 {
			data.Chasing = false
			data.Path = nil
		}
	}

	if data.Chasing {
		return hunterChaseStep(p, g, player, cfg)
	}
	return hunterScatterStep(p, g, player)
}

// hunterChaseStep follows a periodically recomputed path toward the
// ambush point ahead of the player.
func hunterChaseStep(p *Pursuer, g *Grid, player Coord, cfg AIConfig) Dir {
	data := &p.Hunter

	data.Repath--
	if data.Repath <= 0 || len(data.Path) == 0 {
		target := ambushPoint(g, p.Pos, player, cfg.HunterLead)
		data.Path = FindPath(g, p.Pos, target)
		if data.Path == nil {
			// Projected cell unreachable: aim at the player directly.
			data.Path = FindPath(g, p.Pos, player)
		}
		data.Repath = cfg.HunterRepathEvery
	}

	if d, ok := stepAlongPath(g, p.Pos, &data.Path); ok {
		return d
	}
	return greedyFallback(g, p, player)
}

// hunterScatterStep paths toward the fixed home corner.
func hunterScatterStep(p *Pursuer, g *Grid, player Coord) Dir {
	data := &p.Hunter
	if p.Pos == data.Home {
		return DirNone
	}
	if len(data.Path) == 0 {
		data.Path = FindPath(g, p.Pos, data.Home)
	}
	if d, ok := stepAlongPath(g, p.Pos, &data.Path); ok {
		return d
	}
	return greedyFallback(g, p, player)
}

// ambushPoint projects a target a short distance ahead of the player
// along the hunter's dominant axis of approach, clamped to the grid and
// snapped back to the player cell when the projection lands inside a
// fully sealed cell.
func ambushPoint(g *Grid, hunter, player Coord, lead int) Coord {
	dx := player.X - hunter.X
	dy := player.Y - hunter.Y

	target := player
	if abs(dx) >= abs(dy) {
		target.X += lead * sign(dx)
	} else {
		target.Y += lead * sign(dy)
	}

	target.X = clampInt(target.X, 0, g.W-1)
	target.Y = clampInt(target.Y, 0, g.H-1)

	if g.Cell(target).OpenCount() == 0 {
		return player
	}
	return target
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
