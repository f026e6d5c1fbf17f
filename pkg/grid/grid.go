// Package grid provides a dense, fixed-width, row-major 2D container.
//
// A Grid is immutable once built. Its coordinate space is the geom.Area
// spanning (0, 0) to (Width-1, Height-1); row 0 is the first row of data.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"gridkit/pkg/geom"
)

var (
	// ErrInvalidArgument is wrapped by every construction error.
	ErrInvalidArgument = errors.New("grid: invalid argument")

	// ErrInvalidWidth rejects a non-positive width.
	ErrInvalidWidth = fmt.Errorf("%w: width must be positive", ErrInvalidArgument)
	// ErrEmptyRows rejects row input with nothing to size the grid by.
	ErrEmptyRows = fmt.Errorf("%w: no rows or empty first row", ErrInvalidArgument)
	// ErrRaggedRows rejects rows of unequal length.
	ErrRaggedRows = fmt.Errorf("%w: rows differ in length", ErrInvalidArgument)
)

// Grid stores width*height values of T in row-major order.
type Grid[T comparable] struct {
	width int
	data  []T
	area  geom.Area[int]
}

// New builds a grid of the given width from flat row-major data, padding
// the last row with the zero value.
func New[T comparable](data []T, width int) (*Grid[T], error) {
	var zero T
	return NewPadded(data, width, zero)
}

// NewPadded is New with an explicit pad value. Empty data yields a single
// row of pad values.
func NewPadded[T comparable](data []T, width int, pad T) (*Grid[T], error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	n := len(data)
	if n == 0 {
		n = width
	}
	if r := n % width; r > 0 {
		n += width - r
	}
	buf := make([]T, n)
	copy(buf, data)
	for i := len(data); i < n; i++ {
		buf[i] = pad
	}
	return newGrid(buf, width), nil
}

// FromRows builds a grid from equally long rows; the row length becomes
// the width.
func FromRows[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyRows
	}
	width := len(rows[0])
	buf := make([]T, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), width)
		}
		buf = append(buf, row...)
	}
	return newGrid(buf, width), nil
}

func newGrid[T comparable](buf []T, width int) *Grid[T] {
	g := &Grid[T]{width: width, data: buf}
	g.area = geom.NewArea(geom.Origin[int](), geom.Pos(width-1, g.Height()-1))
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return len(g.data) / g.width }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Area returns the grid's coordinate space.
func (g *Grid[T]) Area() geom.Area[int] { return g.area }

// Data returns a copy of the backing cells in row-major order.
func (g *Grid[T]) Data() []T { return slices.Clone(g.data) }

// At returns the entry at flat index i. It panics when i is out of range.
func (g *Grid[T]) At(i int) Entry[T] {
	return Entry[T]{Position: geom.FromIndex(i, g.width), Value: g.data[i]}
}

// Get returns the entry at p. It panics when p.Index(Width) falls outside
// the backing storage; positions off the grid that still map onto storage
// are not detected.
func (g *Grid[T]) Get(p geom.Position[int]) Entry[T] {
	return Entry[T]{Position: p, Value: g.data[p.Index(g.width)]}
}

// All yields every entry in storage order.
func (g *Grid[T]) All() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for i := range g.data {
			if !yield(g.At(i)) {
				return
			}
		}
	}
}

// Row yields every step-th entry of a row. Nothing is yielded for rows off the grid.
func (g *Grid[T]) Row(row, step int) iter.Seq[Entry[T]] {
	return g.entries(g.area.Row(row, step))
}

// Column yields every step-th entry of a column. Nothing is yielded for
// columns off the grid.
func (g *Grid[T]) Column(col, step int) iter.Seq[Entry[T]] {
	return g.entries(g.area.Column(col, step))
}

// Neighbours yields the entries around p in the given directions at the
// given distance, wrapping around the edges when wrap is set and skipping
// off-grid cells otherwise. A nil dirs slice means the cardinal directions.
func (g *Grid[T]) Neighbours(p geom.Position[int], distance int, dirs []geom.Direction, wrap bool) iter.Seq[Entry[T]] {
	return g.entries(g.area.Neighbours(p, distance, dirs, wrap))
}

// Find returns the first entry holding v in storage order.
func (g *Grid[T]) Find(v T) (Entry[T], bool) {
	i := slices.Index(g.data, v)
	if i < 0 {
		return Entry[T]{}, false
	}
	return g.At(i), true
}

// FindAll yields every entry holding v in storage order.
func (g *Grid[T]) FindAll(v T) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for i, c := range g.data {
			if c == v && !yield(g.At(i)) {
				return
			}
		}
	}
}

// Extract yields the entries at the given positions, skipping positions off
// the grid. Order and duplicates are kept.
func (g *Grid[T]) Extract(positions iter.Seq[geom.Position[int]]) iter.Seq[Entry[T]] {
	return g.entries(g.area.Filter(positions))
}

// WrapExtract yields the entries at the given positions after wrapping each
// one onto the grid. Order and duplicates are kept.
func (g *Grid[T]) WrapExtract(positions iter.Seq[geom.Position[int]]) iter.Seq[Entry[T]] {
	return g.entries(g.area.WrapAll(positions))
}

func (g *Grid[T]) entries(positions iter.Seq[geom.Position[int]]) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for p := range positions {
			if !yield(g.Get(p)) {
				return
			}
		}
	}
}

// Rows returns the cells as a fresh slice per row.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, 0, g.Height())
	for chunk := range slices.Chunk(g.data, g.width) {
		rows = append(rows, slices.Clone(chunk))
	}
	return rows
}

// String renders the grid one row per line without a trailing newline.
// Rune cells are written as characters.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for i, c := range g.data {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(formatCell(c))
	}
	return sb.String()
}

func formatCell(v any) string {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}
