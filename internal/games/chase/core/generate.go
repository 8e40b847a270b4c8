package core

import "sort"

// GenParams configures maze generation.
type GenParams struct {
	Width  int
	Height int
	Seed   int64

	// LoopFraction (0-1) is the share of eligible interior walls removed
	// after carving, turning the perfect maze into a braided one.
	LoopFraction float64

	PursuerCount      int
	CollectibleTarget int

	// MinPursuerDist is the minimum Manhattan distance between the player
	// spawn and any pursuer spawn candidate.
	MinPursuerDist int

	// SpawnTopFraction bounds the random pursuer-spawn pick to the top
	// share of candidates ranked by distance from the grid center.
	SpawnTopFraction float64

	// SpawnAttempts bounds duplicate-retry when picking pursuer spawns.
	SpawnAttempts int

	// MaxDeadEndLength is the longest corridor stub left untouched by
	// dead-end trimming.
	MaxDeadEndLength int

	// PowerNodeSettle is the chance to accept an outer candidate during
	// the power-node ring search instead of taking the nearest one.
	PowerNodeSettle float64
}

// DefaultGenParams returns generation defaults for the given maze size.
func DefaultGenParams(w, h int, seed int64) GenParams {
	return GenParams{
		Width:             w,
		Height:            h,
		Seed:              seed,
		LoopFraction:      0.2,
		PursuerCount:      4,
		CollectibleTarget: w * h / 5,
		MinPursuerDist:    (w + h) / 4,
		SpawnTopFraction:  0.25,
		SpawnAttempts:     8,
		MaxDeadEndLength:  4,
		PowerNodeSettle:   0.15,
	}
}

// Generate builds a maze grid from the given parameters. Identical
// parameters (including seed) reproduce an identical grid bit-for-bit.
//
// Placement shortfalls degrade quantity and never fail: too few valid
// cells for pursuers or collectibles simply yields fewer of them.
func Generate(p GenParams) *Grid {
	rng := NewRNG(p.Seed)
	g := NewSolidGrid(p.Width, p.Height)

	carve(g, rng)
	injectLoops(g, rng, p.LoopFraction)

	// Bottom-center by fixed rule; protected from trimming below.
	g.PlayerSpawn = C(p.Width/2, p.Height-1)

	trimDeadEnds(g, p.MaxDeadEndLength)
	placePursuerSpawns(g, rng, p)
	placePowerNodes(g, rng, p)
	placeCollectibles(g, rng, p)

	return g
}

// carve runs randomized depth-first backtracking over the grid, producing
// a perfect maze (every cell connected, zero cycles). Iterative with an
// explicit stack so large grids cannot hit recursion limits.
func carve(g *Grid, rng *RNG) {
	visited := make([]bool, len(g.Cells))
	stack := []Coord{C(0, 0)}
	visited[g.index(C(0, 0))] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Unvisited in-bounds neighbors, fixed direction order.
		var open [DirCount]Dir
		n := 0
		for _, d := range Dirs {
			next := cur.Step(d)
			if g.InBounds(next) && !visited[g.index(next)] {
				open[n] = d
				n++
			}
		}

		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := open[rng.Intn(n)]
		next := cur.Step(d)
		g.removeWall(cur, d)
		visited[g.index(next)] = true
		stack = append(stack, next)
	}
}

// injectLoops removes a deterministic random sample of interior walls.
// Only rightward and downward walls are enumerated so each wall is
// counted once.
func injectLoops(g *Grid, rng *RNG, fraction float64) {
	if fraction <= 0 {
		return
	}

	type wall struct {
		at  Coord
		dir Dir
	}
	var candidates []wall
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if x+1 < g.W && g.HasWall(c, DirRight) {
				candidates = append(candidates, wall{c, DirRight})
			}
			if y+1 < g.H && g.HasWall(c, DirDown) {
				candidates = append(candidates, wall{c, DirDown})
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	remove := int(fraction * float64(len(candidates)))
	for i := 0; i < remove && i < len(candidates); i++ {
		g.removeWall(candidates[i].at, candidates[i].dir)
	}
}

// trimDeadEnds repeatedly seals corridor stubs whose corridor runs longer
// than maxLen. Sealing only ever isolates the stub cell itself, so no
// other cell is ever disconnected. The player spawn is never sealed.
func trimDeadEnds(g *Grid, maxLen int) {
	if maxLen <= 0 {
		return
	}
	for {
		sealed := false
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				c := C(x, y)
				if c == g.PlayerSpawn {
					continue
				}
				cell := g.Cell(c)
				if cell.OpenCount() != 1 {
					continue
				}
				stubDir := DirNone
				for _, d := range Dirs {
					if !cell.Walls[d] {
						stubDir = d
						break
					}
				}
				if corridorLength(g, c, stubDir) > maxLen {
					g.addWall(c, stubDir)
					sealed = true
				}
			}
		}
		if !sealed {
			return
		}
	}
}

// corridorLength walks from a stub cell through plain corridor cells
// (exactly two openings) and returns the number of cells traversed before
// hitting a junction or another dead end.
func corridorLength(g *Grid, stub Coord, into Dir) int {
	length := 1
	cur := stub.Step(into)
	from := into.Opposite()
	for g.InBounds(cur) && g.Cell(cur).OpenCount() == 2 {
		length++
		next := DirNone
		for _, d := range Dirs {
			if d != from && !g.HasWall(cur, d) {
				next = d
				break
			}
		}
		if next == DirNone {
			break
		}
		cur = cur.Step(next)
		from = next.Opposite()
	}
	return length
}

// placePursuerSpawns picks pursuer spawn cells far from the player spawn,
// preferring edges and corners with a bounded random pick from the
// top-ranked candidates.
func placePursuerSpawns(g *Grid, rng *RNG, p GenParams) {
	center := C(g.W/2, g.H/2)

	var candidates []Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.Cell(c).OpenCount() == 0 {
				continue
			}
			if c.Manhattan(g.PlayerSpawn) < p.MinPursuerDist {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		// Degraded output: no spawns rather than an error.
		return
	}

	// Rank by distance from the grid center, farthest first. Stable
	// row-major order breaks ties deterministically.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Manhattan(center) > candidates[j].Manhattan(center)
	})

	top := int(float64(len(candidates)) * p.SpawnTopFraction)
	if top < 1 {
		top = 1
	}

	used := make(map[Coord]bool)
	for i := 0; i < p.PursuerCount; i++ {
		pick := candidates[rng.Intn(top)]
		for attempt := 0; used[pick] && attempt < p.SpawnAttempts; attempt++ {
			pick = candidates[rng.Intn(top)]
		}
		// A duplicate after the attempt budget is accepted, not an error.
		used[pick] = true
		g.PursuerSpawns = append(g.PursuerSpawns, pick)
	}
}

// placePowerNodes puts one power node in each grid quadrant, searching
// outward from the quadrant center for an intersection cell (at least two
// open walls) with a small chance to settle early for variety.
func placePowerNodes(g *Grid, rng *RNG, p GenParams) {
	quadrants := [4]Coord{
		C(g.W/4, g.H/4),
		C(3*g.W/4, g.H/4),
		C(g.W/4, 3*g.H/4),
		C(3*g.W/4, 3*g.H/4),
	}

	reserved := make(map[Coord]bool)
	reserved[g.PlayerSpawn] = true
	for _, s := range g.PursuerSpawns {
		reserved[s] = true
	}

	for _, origin := range quadrants {
		var fallback Coord
		haveFallback := false
		placed := false

		maxRadius := g.W + g.H
		for r := 0; r <= maxRadius && !placed; r++ {
			for _, c := range ringCoords(g, origin, r) {
				cell := g.Cell(c)
				if reserved[c] || cell.OpenCount() == 0 {
					continue
				}
				if !haveFallback {
					fallback = c
					haveFallback = true
				}
				if cell.OpenCount() < 2 {
					continue
				}
				// Usually take the first intersection found; sometimes
				// keep scanning outward for variety.
				if rng.Float() < p.PowerNodeSettle && r < maxRadius {
					continue
				}
				g.Cells[g.index(c)].Content = ContentPowerNode
				g.PowerNodes = append(g.PowerNodes, c)
				reserved[c] = true
				placed = true
				break
			}
		}
		if !placed && haveFallback {
			g.Cells[g.index(fallback)].Content = ContentPowerNode
			g.PowerNodes = append(g.PowerNodes, fallback)
			reserved[fallback] = true
		}
	}
}

// ringCoords lists in-bounds coordinates at Chebyshev radius r around
// origin, in deterministic scan order.
func ringCoords(g *Grid, origin Coord, r int) []Coord {
	if r == 0 {
		if g.InBounds(origin) {
			return []Coord{origin}
		}
		return nil
	}
	var out []Coord
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx != -r && dx != r && dy != -r && dy != r {
				continue
			}
			c := origin.Add(dx, dy)
			if g.InBounds(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// placeCollectibles scatters collectibles over the remaining open corridor
// cells: shuffle deterministically, take up to the target count.
func placeCollectibles(g *Grid, rng *RNG, p GenParams) {
	reserved := make(map[Coord]bool)
	reserved[g.PlayerSpawn] = true
	for _, s := range g.PursuerSpawns {
		reserved[s] = true
	}

	var open []Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if reserved[c] || g.Cell(c).OpenCount() == 0 || g.Cell(c).Content != ContentEmpty {
				continue
			}
			open = append(open, c)
		}
	}

	rng.Shuffle(len(open), func(i, j int) {
		open[i], open[j] = open[j], open[i]
	})

	count := p.CollectibleTarget
	if count > len(open) {
		count = len(open) // fewer than requested, never an error
	}
	for i := 0; i < count; i++ {
		g.Cells[g.index(open[i])].Content = ContentCollectible
	}
	g.CollectibleCount = count
}
