package core

// Patrol pursuers cycle through a validated circuit of waypoints,
// following cached paths and recomputing only when the cache runs dry.

// AssignPatrolWaypoints builds a patrol circuit for the pursuer: the four
// quadrant-ish corners of the maze snapped to reachable corridor cells,
// visited in a fixed rotation. Waypoints are validated reachable from the
// pursuer's spawn at assignment time.
func AssignPatrolWaypoints(p *Pursuer, g *Grid) {
	anchors := [4]Coord{
		C(g.W/6, g.H/6),
		C(5*g.W/6, g.H/6),
		C(5*g.W/6, 5*g.H/6),
		C(g.W/6, 5*g.H/6),
	}

	p.Patrol.Waypoints = p.Patrol.Waypoints[:0]
	for _, a := range anchors {
		if w, ok := nearestReachable(g, a, p.Spawn); ok {
			p.Patrol.Waypoints = append(p.Patrol.Waypoints, w)
		}
	}
	if len(p.Patrol.Waypoints) == 0 {
		p.Patrol.Waypoints = []Coord{p.Spawn}
	}
	p.Patrol.WaypointIdx = 0
	p.Patrol.Path = nil
}

// nearestReachable searches outward from anchor for the closest cell
// reachable from origin via open walls.
func nearestReachable(g *Grid, anchor, origin Coord) (Coord, bool) {
	reach := g.ReachableFrom(origin)
	for r := 0; r <= g.W+g.H; r++ {
		for _, c := range ringCoords(g, anchor, r) {
			if reach[g.index(c)] {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// patrolDirection advances the patrol circuit: follow the cached path to
// the current waypoint, recompute when the cache is empty, rotate to the
// next waypoint on arrival. A stale cached step falls back to greedy
// movement toward the player.
func patrolDirection(p *Pursuer, g *Grid, player Coord) Dir {
	data := &p.Patrol
	if len(data.Waypoints) == 0 {
		return DirNone
	}

	target := data.Waypoints[data.WaypointIdx]
	if p.Pos == target {
		data.WaypointIdx = (data.WaypointIdx + 1) % len(data.Waypoints)
		data.Path = nil
		target = data.Waypoints[data.WaypointIdx]
	}

	if len(data.Path) == 0 {
		data.Path = FindPath(g, p.Pos, target)
	}

	if d, ok := stepAlongPath(g, p.Pos, &data.Path); ok {
		return d
	}

	// No path or stale cache: greedy fallback keeps the pursuer moving.
	return greedyFallback(g, p, player)
}

// greedyFallback is the shared no-path recovery: head toward the player
// by local distance, never stalling on a routing failure.
func greedyFallback(g *Grid, p *Pursuer, player Coord) Dir {
	dirs := ValidDirectionsExcept(g, p.Pos, p.Facing.Opposite())
	if len(dirs) == 0 {
		dirs = ValidDirections(g, p.Pos)
	}
	if len(dirs) == 0 {
		return DirNone
	}
	best := dirs[0]
	bestDist := p.Pos.Step(best).Manhattan(player)
	for _, d := range dirs[1:] {
		if dist := p.Pos.Step(d).Manhattan(player); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
