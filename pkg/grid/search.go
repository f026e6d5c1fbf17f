package grid

import (
	"iter"
	"slices"

	"gridkit/pkg/geom"
)

// NeighbourFunc proposes the cells reachable in one step from p. It may
// propose off-grid or already visited cells; the search drops them.
type NeighbourFunc func(p geom.Position[int]) iter.Seq[geom.Position[int]]

// BreadthFirstSearch walks the grid from start in FIFO order, yielding each
// cell the first time it is dequeued. The walk ends after end is yielded,
// when the frontier is exhausted, or when the caller stops iterating.
// Nothing is yielded when start is off the grid.
func (g *Grid[T]) BreadthFirstSearch(start, end geom.Position[int], next NeighbourFunc) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		if !g.area.Has(start) {
			return
		}
		visited := make(map[geom.Position[int]]struct{})
		queue := []geom.Position[int]{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if _, seen := visited[cur]; seen {
				continue
			}
			visited[cur] = struct{}{}
			if !yield(g.Get(cur)) || cur == end {
				return
			}
			for n := range g.area.Filter(next(cur)) {
				queue = append(queue, n)
			}
		}
	}
}

// ShortestPath returns a fewest-steps walk from start to end, both included,
// using the same neighbour rules as BreadthFirstSearch. The bool is false
// when end is unreachable or either endpoint is off the grid.
func (g *Grid[T]) ShortestPath(start, end geom.Position[int], next NeighbourFunc) ([]geom.Position[int], bool) {
	if !g.area.Has(start) || !g.area.Has(end) {
		return nil, false
	}
	parent := map[geom.Position[int]]geom.Position[int]{start: start}
	queue := []geom.Position[int]{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			break
		}
		for n := range g.area.Filter(next(cur)) {
			if _, seen := parent[n]; !seen {
				parent[n] = cur
				queue = append(queue, n)
			}
		}
	}
	if _, ok := parent[end]; !ok {
		return nil, false
	}
	path := []geom.Position[int]{end}
	for p := end; p != start; {
		p = parent[p]
		path = append(path, p)
	}
	slices.Reverse(path)
	return path, true
}

// CrossNeighbours is a NeighbourFunc over the four cardinal directions.
func CrossNeighbours(p geom.Position[int]) iter.Seq[geom.Position[int]] {
	return p.Neighbours(1, geom.CrossDirections())
}

// AllNeighbours is a NeighbourFunc over all eight directions.
func AllNeighbours(p geom.Position[int]) iter.Seq[geom.Position[int]] {
	return p.Neighbours(1, geom.AllDirections())
}
