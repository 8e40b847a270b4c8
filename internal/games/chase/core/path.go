package core

import "container/heap"

// A* over the maze grid: uniform edge cost, Manhattan heuristic,
// 4-directional expansion gated by CanMove.

// FindPath returns the full coordinate path from src to dst inclusive,
// or nil when dst is unreachable. An unreachable destination is a normal
// outcome, not an error: callers are expected to fall back to greedy
// movement. FindPath(p, p) returns the single-element path [p].
func FindPath(g *Grid, src, dst Coord) []Coord {
	if !g.InBounds(src) || !g.InBounds(dst) {
		return nil
	}
	if src == dst {
		return []Coord{src}
	}

	const unvisited = int(^uint(0) >> 1) // max int

	bestCost := make([]int, len(g.Cells))
	cameFrom := make([]int, len(g.Cells))
	for i := range bestCost {
		bestCost[i] = unvisited
		cameFrom[i] = -1
	}

	open := &nodeHeap{}
	heap.Init(open)

	bestCost[g.index(src)] = 0
	heap.Push(open, pathNode{pos: src, cost: 0, estimate: src.Manhattan(dst)})

	seq := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(pathNode)
		curIdx := g.index(cur.pos)

		// Stale entry: a cheaper route to this cell was already expanded.
		if cur.cost > bestCost[curIdx] {
			continue
		}
		if cur.pos == dst {
			return rebuildPath(g, cameFrom, src, dst)
		}

		for _, d := range Dirs {
			if !CanMove(g, cur.pos, d) {
				continue
			}
			next := cur.pos.Step(d)
			nextIdx := g.index(next)
			cost := cur.cost + 1
			if cost >= bestCost[nextIdx] {
				continue
			}
			bestCost[nextIdx] = cost
			cameFrom[nextIdx] = curIdx
			seq++
			heap.Push(open, pathNode{
				pos:      next,
				cost:     cost,
				estimate: cost + next.Manhattan(dst),
				order:    seq,
			})
		}
	}

	return nil
}

// rebuildPath walks the cameFrom chain from dst back to src.
func rebuildPath(g *Grid, cameFrom []int, src, dst Coord) []Coord {
	var rev []Coord
	idx := g.index(dst)
	srcIdx := g.index(src)
	for idx != -1 {
		rev = append(rev, C(idx%g.W, idx/g.W))
		if idx == srcIdx {
			break
		}
		idx = cameFrom[idx]
	}

	path := make([]Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// pathNode is a frontier entry in the A* open set.
type pathNode struct {
	pos      Coord
	cost     int // cost from src
	estimate int // cost + Manhattan heuristic
	order    int // insertion sequence, deterministic tie-break
}

type nodeHeap []pathNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].estimate != h[j].estimate {
		return h[i].estimate < h[j].estimate
	}
	return h[i].order < h[j].order
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(pathNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
