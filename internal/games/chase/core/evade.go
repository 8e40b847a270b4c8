package core

// Evading is the shared flee behavior used by every archetype while the
// player holds a power advantage.

// evadeDirection picks the open neighbor maximizing distance from the
// player plus a small bonus for that neighbor's own exit count, so
// pursuers do not flee into dead ends. Ties resolve in fixed direction
// order for determinism.
func evadeDirection(g *Grid, pos, player Coord, cfg AIConfig) Dir {
	best := DirNone
	bestScore := -1.0
	for _, d := range Dirs {
		if !CanMove(g, pos, d) {
			continue
		}
		n := pos.Step(d)
		score := float64(n.Manhattan(player)) +
			cfg.EvadeExitWeight*float64(g.Cell(n).OpenCount())
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}
