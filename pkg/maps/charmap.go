package maps

import (
	"fmt"
	"iter"

	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/input"
)

const (
	// Wall is the only impassable tile.
	Wall = '#'

	// DefaultStart marks the start cell unless WithStart overrides it.
	DefaultStart = 'S'
	// DefaultEnd marks the end cell unless WithEnd overrides it.
	DefaultEnd = 'E'
)

// CharacterMap is a Map of runes whose start and end are found by marker
// characters in the grid.
type CharacterMap struct {
	*Map[rune]
}

type markers struct {
	start, end rune
}

// Option customizes how a CharacterMap locates its endpoints.
type Option func(*markers)

// WithStart sets the start marker (default 'S').
func WithStart(r rune) Option {
	return func(m *markers) { m.start = r }
}

// WithEnd sets the end marker (default 'E').
func WithEnd(r rune) Option {
	return func(m *markers) { m.end = r }
}

// NewCharacterMap wraps g, placing start and end at the first occurrence of
// their markers. A missing marker resolves to the origin.
func NewCharacterMap(g *grid.Grid[rune], opts ...Option) *CharacterMap {
	mk := markers{start: DefaultStart, end: DefaultEnd}
	for _, opt := range opts {
		opt(&mk)
	}
	return &CharacterMap{Map: New(g, locate(g, mk.start), locate(g, mk.end))}
}

// CharacterMapFromLines builds a map whose rows are the given lines. The
// first line sets the width; missing trailing cells are zero runes.
func CharacterMapFromLines(lines []string, opts ...Option) (*CharacterMap, error) {
	g, err := input.CharacterGrid(lines)
	if err != nil {
		return nil, fmt.Errorf("character map: %w", err)
	}
	return NewCharacterMap(g, opts...), nil
}

func locate(g *grid.Grid[rune], marker rune) geom.Position[int] {
	if e, ok := g.Find(marker); ok {
		return e.Position
	}
	return geom.Origin[int]()
}

// IsWall reports whether the cell at p is a wall.
func (m *CharacterMap) IsWall(p geom.Position[int]) bool {
	return m.grid.Get(p).Value == Wall
}

// IsPath reports whether the cell at p can be walked on.
func (m *CharacterMap) IsPath(p geom.Position[int]) bool {
	return !m.IsWall(p)
}

// PathNeighbours is a grid.NeighbourFunc yielding the on-grid cardinal
// neighbours of p that are paths.
func (m *CharacterMap) PathNeighbours(p geom.Position[int]) iter.Seq[geom.Position[int]] {
	return func(yield func(geom.Position[int]) bool) {
		for n := range m.grid.Area().Neighbours(p, 1, geom.CrossDirections(), false) {
			if m.IsPath(n) && !yield(n) {
				return
			}
		}
	}
}

// Flood yields the breadth-first walk over path cells from Start, ending
// once End is reached.
func (m *CharacterMap) Flood() iter.Seq[grid.Entry[rune]] {
	return m.grid.BreadthFirstSearch(m.start, m.end, m.PathNeighbours)
}

// Solve runs Flood to completion and reports the visited cells and whether
// End was reached.
func (m *CharacterMap) Solve() ([]grid.Entry[rune], bool) {
	var visited []grid.Entry[rune]
	reached := false
	for e := range m.Flood() {
		visited = append(visited, e)
		reached = e.Position == m.end
	}
	return visited, reached
}

// Route returns a shortest walk from Start to End, both included. The bool
// is false when End cannot be reached.
func (m *CharacterMap) Route() ([]geom.Position[int], bool) {
	return m.grid.ShortestPath(m.start, m.end, m.PathNeighbours)
}

// String renders the underlying grid.
func (m *CharacterMap) String() string { return m.grid.String() }
