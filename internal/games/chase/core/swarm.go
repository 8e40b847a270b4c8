package core

// Swarm pursuers hunt in partnered pairs: one presses the player directly
// while the other flanks, and when the pair brackets the player both
// commit to a pincer.

// swarmDirection computes the swarm member's next step. A missing or
// disabled partner degrades to direct pursuit.
func swarmDirection(p *Pursuer, g *Grid, player Coord, peers []*Pursuer, cfg AIConfig, rng *RNG) Dir {
	partner := findPartner(p, peers)
	if partner == nil || partner.Mode == ModeDisabled {
		return greedyToward(g, p.Pos, player, p.Facing, rng)
	}

	myDist := p.Pos.Manhattan(player)
	partnerDist := partner.Pos.Manhattan(player)
	separation := p.Pos.Manhattan(partner.Pos)

	// Pincer: both partners close to the player and their combined
	// distance roughly bracketing the gap between them.
	pincer := myDist <= cfg.PincerRange &&
		partnerDist <= cfg.PincerRange &&
		myDist+partnerDist <= separation+cfg.PincerSlack

	if pincer {
		return pursueTarget(p, g, player, rng)
	}

	// Outside the pincer, the lower ID presses directly and the partner
	// aims at a flank position offset from the player.
	if p.ID < partner.ID {
		return pursueTarget(p, g, player, rng)
	}

	flank := flankTarget(g, player, p.Swarm.FlankDir, cfg.FlankOffset)
	return pursueTarget(p, g, flank, rng)
}

// findPartner resolves the registered partner among peers, nil if none.
func findPartner(p *Pursuer, peers []*Pursuer) *Pursuer {
	if p.Swarm.PartnerID < 0 {
		return nil
	}
	for _, peer := range peers {
		if peer != nil && peer.ID == p.Swarm.PartnerID {
			return peer
		}
	}
	return nil
}

// PairSwarm registers two swarm pursuers as partners with opposed flank
// directions so their approaches bracket the player.
func PairSwarm(a, b *Pursuer, flank Dir) {
	a.Swarm.PartnerID = b.ID
	b.Swarm.PartnerID = a.ID
	a.Swarm.FlankDir = flank
	b.Swarm.FlankDir = flank.Opposite()
}

// flankTarget offsets the player position along the pair's fixed flank
// direction, clamped to the grid.
func flankTarget(g *Grid, player Coord, flank Dir, offset int) Coord {
	dx, dy := flank.Delta()
	t := player.Add(dx*offset, dy*offset)
	t.X = clampInt(t.X, 0, g.W-1)
	t.Y = clampInt(t.Y, 0, g.H-1)
	if g.Cell(t).OpenCount() == 0 {
		return player
	}
	return t
}

// pursueTarget routes toward the target, falling back to greedy movement
// when no path resolves.
func pursueTarget(p *Pursuer, g *Grid, target Coord, rng *RNG) Dir {
	path := FindPath(g, p.Pos, target)
	if d, ok := stepAlongPath(g, p.Pos, &path); ok {
		return d
	}
	return greedyToward(g, p.Pos, target, p.Facing, rng)
}
