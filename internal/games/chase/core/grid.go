package core

// Content tags what a cell currently holds.
type Content uint8

const (
	ContentEmpty Content = iota
	ContentCollectible
	ContentPowerNode
)

// Cell is one maze cell: four wall flags plus a content tag.
// Wall flags are immutable after generation; content is the only
// post-generation mutation, through Grid.Collect.
type Cell struct {
	Walls   [DirCount]bool
	Content Content
}

// OpenCount returns the number of open (wall-free) sides.
func (c Cell) OpenCount() int {
	n := 0
	for _, open := range c.Walls {
		if !open {
			n++
		}
	}
	return n
}

// Grid is the generated maze: a flat row-major arena of cells plus the
// placement results of a generation run. All components other than the
// generator treat it as read-only, except the single Collect mutation path.
type Grid struct {
	W     int
	H     int
	Cells []Cell // Flat array, index = y*W + x

	PlayerSpawn      Coord
	PursuerSpawns    []Coord
	PowerNodes       []Coord
	CollectibleCount int
}

// NewSolidGrid creates a grid of the given size with every wall present.
func NewSolidGrid(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
	for i := range g.Cells {
		for d := range g.Cells[i].Walls {
			g.Cells[i].Walls[d] = true
		}
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Cell returns the cell at the given coordinate.
// Out-of-bounds coordinates return a fully walled cell.
func (g *Grid) Cell(c Coord) Cell {
	if !g.InBounds(c) {
		var solid Cell
		for d := range solid.Walls {
			solid.Walls[d] = true
		}
		return solid
	}
	return g.Cells[g.index(c)]
}

// HasWall returns true if the cell at c has a wall toward d.
// Out-of-bounds is always treated as walled.
func (g *Grid) HasWall(c Coord, d Dir) bool {
	if !g.InBounds(c) || d < 0 || d >= DirCount {
		return true
	}
	return g.Cells[g.index(c)].Walls[d]
}

// removeWall opens the wall between c and its neighbor in direction d,
// keeping the symmetric invariant: both sides open together.
func (g *Grid) removeWall(c Coord, d Dir) {
	n := c.Step(d)
	if !g.InBounds(c) || !g.InBounds(n) {
		return
	}
	g.Cells[g.index(c)].Walls[d] = false
	g.Cells[g.index(n)].Walls[d.Opposite()] = false
}

// addWall seals the wall between c and its neighbor in direction d on
// both sides. Used only by dead-end trimming during generation.
func (g *Grid) addWall(c Coord, d Dir) {
	n := c.Step(d)
	if !g.InBounds(c) {
		return
	}
	g.Cells[g.index(c)].Walls[d] = true
	if g.InBounds(n) {
		g.Cells[g.index(n)].Walls[d.Opposite()] = true
	}
}

// Collect clears the content of the cell at c and returns what was there.
// This is the only mutation permitted on a grid after generation.
func (g *Grid) Collect(c Coord) (Content, bool) {
	if !g.InBounds(c) {
		return ContentEmpty, false
	}
	i := g.index(c)
	content := g.Cells[i].Content
	if content == ContentEmpty {
		return ContentEmpty, false
	}
	g.Cells[i].Content = ContentEmpty
	return content, true
}

// OpenWallPairs counts open passages between adjacent cell pairs.
// Each open passage is counted once (rightward and downward walls only).
// A perfect maze over W×H cells has exactly W×H−1 open pairs.
func (g *Grid) OpenWallPairs() int {
	n := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if x+1 < g.W && !g.HasWall(c, DirRight) {
				n++
			}
			if y+1 < g.H && !g.HasWall(c, DirDown) {
				n++
			}
		}
	}
	return n
}

// ReachableFrom returns the set of coordinates reachable from start via
// open-wall traversal, as a flat boolean slice indexed like Cells.
func (g *Grid) ReachableFrom(start Coord) []bool {
	seen := make([]bool, len(g.Cells))
	if !g.InBounds(start) {
		return seen
	}
	queue := []Coord{start}
	seen[g.index(start)] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			if g.HasWall(cur, d) {
				continue
			}
			next := cur.Step(d)
			if !g.InBounds(next) || seen[g.index(next)] {
				continue
			}
			seen[g.index(next)] = true
			queue = append(queue, next)
		}
	}
	return seen
}
