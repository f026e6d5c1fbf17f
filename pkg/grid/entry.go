package grid

import (
	"fmt"

	"gridkit/pkg/geom"
)

// Entry is a snapshot of one grid cell: where it is and what it held.
type Entry[T any] struct {
	Position geom.Position[int]
	Value    T
}

// ManhattanDistance returns the Manhattan distance between two entries.
func (e Entry[T]) ManhattanDistance(o Entry[T]) int {
	return e.Position.ManhattanDistance(o.Position)
}

// String formats the entry as "(X, Y): value".
func (e Entry[T]) String() string {
	return fmt.Sprintf("%v: %s", e.Position, formatCell(e.Value))
}
