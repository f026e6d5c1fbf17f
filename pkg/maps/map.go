// Package maps pairs a grid with start and end positions for path-finding
// style puzzles.
package maps

import (
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Map is a grid together with a start and an end position.
type Map[T comparable] struct {
	grid  *grid.Grid[T]
	start geom.Position[int]
	end   geom.Position[int]
}

// New wraps g. A start or end that lies off the grid is silently replaced
// by the origin.
func New[T comparable](g *grid.Grid[T], start, end geom.Position[int]) *Map[T] {
	return &Map[T]{
		grid:  g,
		start: onGrid(g, start),
		end:   onGrid(g, end),
	}
}

func onGrid[T comparable](g *grid.Grid[T], p geom.Position[int]) geom.Position[int] {
	if g.Area().Has(p) {
		return p
	}
	return geom.Origin[int]()
}

// Grid returns the underlying grid.
func (m *Map[T]) Grid() *grid.Grid[T] { return m.grid }

// Start returns the start position.
func (m *Map[T]) Start() geom.Position[int] { return m.start }

// End returns the end position.
func (m *Map[T]) End() geom.Position[int] { return m.end }
