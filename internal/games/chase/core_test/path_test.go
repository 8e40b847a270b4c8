package core_test

import (
	"testing"

	"github.com/vovakirdan/mazehunt/internal/games/chase/core"
)

func TestFindPathSameCell(t *testing.T) {
	g := core.Generate(core.DefaultGenParams(21, 15, 42))

	p := g.PlayerSpawn
	path := core.FindPath(g, p, p)

	if len(path) != 1 || path[0] != p {
		t.Errorf("expected single-element path [%v], got %v", p, path)
	}
}

func TestFindPathEndpointsAndAdjacency(t *testing.T) {
	g := core.Generate(core.DefaultGenParams(21, 15, 42))

	src := g.PlayerSpawn
	dst := g.PursuerSpawns[0]

	path := core.FindPath(g, src, dst)
	if path == nil {
		t.Fatal("expected a path between spawn points")
	}
	if path[0] != src {
		t.Errorf("path starts at %v, expected %v", path[0], src)
	}
	if path[len(path)-1] != dst {
		t.Errorf("path ends at %v, expected %v", path[len(path)-1], dst)
	}

	// Every consecutive pair must be one legal step apart
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		if a.Manhattan(b) != 1 {
			t.Fatalf("path cells %v and %v are not adjacent", a, b)
		}
		moved := false
		for _, d := range core.Dirs {
			if a.Step(d) == b {
				if !core.CanMove(g, a, d) {
					t.Fatalf("path crosses a wall between %v and %v", a, b)
				}
				moved = true
			}
		}
		if !moved {
			t.Fatalf("no direction leads from %v to %v", a, b)
		}
	}
}

func TestFindPathShortest(t *testing.T) {
	g := core.Generate(core.DefaultGenParams(21, 15, 42))

	src := g.PlayerSpawn
	dst := g.PursuerSpawns[0]

	path := core.FindPath(g, src, dst)
	if path == nil {
		t.Fatal("expected a path between spawn points")
	}

	// Compare against BFS distance
	want := bfsDistance(g, src, dst)
	if want < 0 {
		t.Fatal("BFS found no route but FindPath did")
	}
	if len(path)-1 != want {
		t.Errorf("path length %d steps, BFS says %d", len(path)-1, want)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := core.NewSolidGrid(5, 5)

	if path := core.FindPath(g, core.C(0, 0), core.C(4, 4)); path != nil {
		t.Errorf("expected nil for unreachable destination, got %v", path)
	}
}

func TestFindPathOutOfBounds(t *testing.T) {
	g := core.Generate(core.DefaultGenParams(21, 15, 42))

	if path := core.FindPath(g, core.C(-1, 0), g.PlayerSpawn); path != nil {
		t.Errorf("expected nil for out-of-bounds source, got %v", path)
	}
	if path := core.FindPath(g, g.PlayerSpawn, core.C(21, 0)); path != nil {
		t.Errorf("expected nil for out-of-bounds destination, got %v", path)
	}
}

func TestFindPathDeterminism(t *testing.T) {
	g := core.Generate(core.DefaultGenParams(21, 15, 42))

	src := g.PlayerSpawn
	dst := g.PursuerSpawns[0]

	p1 := core.FindPath(g, src, dst)
	p2 := core.FindPath(g, src, dst)

	if len(p1) != len(p2) {
		t.Fatalf("path lengths differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("path[%d] differs: %v vs %v", i, p1[i], p2[i])
		}
	}
}

// bfsDistance returns the step count of the shortest route between two
// cells, or -1 when unreachable.
func bfsDistance(g *core.Grid, src, dst core.Coord) int {
	type item struct {
		pos  core.Coord
		dist int
	}
	seen := make(map[core.Coord]bool)
	queue := []item{{src, 0}}
	seen[src] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.pos == dst {
			return cur.dist
		}
		for _, d := range core.Dirs {
			if !core.CanMove(g, cur.pos, d) {
				continue
			}
			next := cur.pos.Step(d)
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, item{next, cur.dist + 1})
		}
	}
	return -1
}
