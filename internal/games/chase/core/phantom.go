package core

// Phantom pursuers mix a biased random walk with periodic teleports that
// cut off the player's escape routes.

// stepPhantomTeleport runs the teleport countdown: emit a warning a fixed
// lead time before the jump, then relocate by weighted random sampling.
func stepPhantomTeleport(p *Pursuer, g *Grid, player Coord, cfg AIConfig, rng *RNG, tick uint64) []Event {
	data := &p.Phantom
	if data.TeleportIn == 0 {
		data.TeleportIn = cfg.TeleportEvery
	}

	data.TeleportIn--

	if data.TeleportIn == cfg.TeleportWarning && !data.Warning {
		data.Warning = true
		return []Event{{Type: EventTeleportWarning, Tick: tick, Pursuer: p.ID, Pos: p.Pos}}
	}

	if data.TeleportIn > 0 {
		return nil
	}

	dest, ok := pickTeleportDest(g, p.Pos, player, cfg, rng)
	data.TeleportIn = cfg.TeleportEvery
	data.Warning = false
	if !ok {
		return nil
	}

	p.Pos = dest
	p.Facing = DirNone
	return []Event{{Type: EventTeleported, Tick: tick, Pursuer: p.ID, Pos: dest}}
}

// pickTeleportDest samples a destination among cells at least
// TeleportMinDist from the player, weighting multi-exit junctions and
// positions that close distance to the player relative to the phantom's
// current cell, while penalizing cells near the phantom's own prior
// location.
func pickTeleportDest(g *Grid, from, player Coord, cfg AIConfig, rng *RNG) (Coord, bool) {
	preDist := from.Manhattan(player)

	var cells []Coord
	var weights []float64
	total := 0.0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			cell := g.Cell(c)
			if cell.OpenCount() == 0 || c == from {
				continue
			}
			if c.Manhattan(player) < cfg.TeleportMinDist {
				continue
			}

			w := 1.0
			w += cfg.TeleportExitWeight * float64(cell.OpenCount()-1)
			if cut := preDist - c.Manhattan(player); cut > 0 {
				w += cfg.TeleportCutWeight * float64(cut)
			}
			if c.Manhattan(from) <= cfg.TeleportSelfRadius {
				w -= cfg.TeleportSelfPenalty
			}
			if w < 0.1 {
				w = 0.1
			}

			cells = append(cells, c)
			weights = append(weights, w)
			total += w
		}
	}
	if len(cells) == 0 {
		return Coord{}, false
	}

	pick := rng.Float() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if pick < acc {
			return cells[i], true
		}
	}
	return cells[len(cells)-1], true
}

// phantomDirection is the biased random walk between teleports: most
// steps head toward the player, the rest wander to a random open
// neighbor.
func phantomDirection(p *Pursuer, g *Grid, player Coord, cfg AIConfig, rng *RNG) Dir {
	if rng.Float() < cfg.PhantomChaseBias {
		return greedyToward(g, p.Pos, player, p.Facing, rng)
	}

	dirs := ValidDirectionsExcept(g, p.Pos, p.Facing.Opposite())
	if len(dirs) == 0 {
		dirs = ValidDirections(g, p.Pos)
	}
	if len(dirs) == 0 {
		return DirNone
	}
	return dirs[rng.Intn(len(dirs))]
}
