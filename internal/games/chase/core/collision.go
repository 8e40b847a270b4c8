package core

// Collision and visibility queries. All functions here are pure and
// stateless over a generated grid.

// CanMove reports whether a step from pos in direction d is open:
// no wall on that side and the destination in bounds. Out-of-bounds is
// always treated as walled.
func CanMove(g *Grid, pos Coord, d Dir) bool {
	if g.HasWall(pos, d) {
		return false
	}
	return g.InBounds(pos.Step(d))
}

// TryMove returns the destination of a step from pos in direction d,
// or ok=false when the move is blocked.
func TryMove(g *Grid, pos Coord, d Dir) (Coord, bool) {
	if !CanMove(g, pos, d) {
		return pos, false
	}
	return pos.Step(d), true
}

// ValidDirections lists the open directions from pos in fixed order.
func ValidDirections(g *Grid, pos Coord) []Dir {
	dirs := make([]Dir, 0, DirCount)
	for _, d := range Dirs {
		if CanMove(g, pos, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// ValidDirectionsExcept lists open directions from pos, excluding one.
// Used to discourage immediate reversal.
func ValidDirectionsExcept(g *Grid, pos Coord, excluded Dir) []Dir {
	dirs := make([]Dir, 0, DirCount)
	for _, d := range Dirs {
		if d == excluded {
			continue
		}
		if CanMove(g, pos, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// LineOfSight reports whether a and b share a row or column with no wall
// blocking any cell boundary between them. Any non-axis-aligned pair has
// no line of sight.
func LineOfSight(g *Grid, a, b Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if a == b {
		return true
	}

	switch {
	case a.Y == b.Y:
		d := DirRight
		if b.X < a.X {
			d = DirLeft
		}
		for cur := a; cur != b; cur = cur.Step(d) {
			if g.HasWall(cur, d) {
				return false
			}
		}
		return true

	case a.X == b.X:
		d := DirDown
		if b.Y < a.Y {
			d = DirUp
		}
		for cur := a; cur != b; cur = cur.Step(d) {
			if g.HasWall(cur, d) {
				return false
			}
		}
		return true
	}

	return false
}
