// Package geom provides generic 2D positions, directions and axis-aligned
// areas for grid based puzzles and simulations.
//
// Every type is a small immutable value; operations return new values.
package geom

import (
	"cmp"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Position is a 2D coordinate over a numeric axis type.
type Position[T Number] struct {
	X, Y T
}

// Pos is a convenience constructor for Position.
func Pos[T Number](x, y T) Position[T] {
	return Position[T]{X: x, Y: y}
}

// Splat returns a position with both axes set to v.
func Splat[T Number](v T) Position[T] {
	return Position[T]{X: v, Y: v}
}

// FromTuple builds a position from an (x, y) pair.
func FromTuple[T Number](t [2]T) Position[T] {
	return Position[T]{X: t[0], Y: t[1]}
}

// FromIndex is the inverse of Index for a row-major container of the given width.
func FromIndex[T constraints.Signed](index, width T) Position[T] {
	return Position[T]{X: index % width, Y: index / width}
}

// Origin returns (0, 0).
func Origin[T Number]() Position[T] { return Position[T]{} }

// UnitX returns (1, 0).
func UnitX[T Number]() Position[T] { return Position[T]{X: 1} }

// UnitY returns (0, 1).
func UnitY[T Number]() Position[T] { return Position[T]{Y: 1} }

// Tuple returns the coordinates as an (x, y) pair.
func (p Position[T]) Tuple() [2]T { return [2]T{p.X, p.Y} }

// Add returns p + o.
func (p Position[T]) Add(o Position[T]) Position[T] {
	return Position[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

// AddScalar adds v to both axes.
func (p Position[T]) AddScalar(v T) Position[T] {
	return Position[T]{X: p.X + v, Y: p.Y + v}
}

// Sub returns p - o.
func (p Position[T]) Sub(o Position[T]) Position[T] {
	return Position[T]{X: p.X - o.X, Y: p.Y - o.Y}
}

// SubScalar subtracts v from both axes.
func (p Position[T]) SubScalar(v T) Position[T] {
	return Position[T]{X: p.X - v, Y: p.Y - v}
}

// Mul scales both axes by v.
func (p Position[T]) Mul(v T) Position[T] {
	return Position[T]{X: p.X * v, Y: p.Y * v}
}

// Dot returns the dot product of p and o.
func (p Position[T]) Dot(o Position[T]) T {
	return p.X*o.X + p.Y*o.Y
}

// Div divides both axes by v. Division by zero follows T's own semantics.
func (p Position[T]) Div(v T) Position[T] {
	return Position[T]{X: p.X / v, Y: p.Y / v}
}

// Mod reduces each axis by the matching axis of m using SafeMod.
func (p Position[T]) Mod(m Position[T]) Position[T] {
	return Position[T]{X: SafeMod(p.X, m.X), Y: SafeMod(p.Y, m.Y)}
}

// ModScalar reduces both axes by v using SafeMod.
func (p Position[T]) ModScalar(v T) Position[T] {
	return Position[T]{X: SafeMod(p.X, v), Y: SafeMod(p.Y, v)}
}

// Neg returns -p.
func (p Position[T]) Neg() Position[T] {
	return Position[T]{X: -p.X, Y: -p.Y}
}

// Compare orders positions by X, then by Y.
func (p Position[T]) Compare(o Position[T]) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}

// Less reports whether p sorts before o.
func (p Position[T]) Less(o Position[T]) bool { return p.Compare(o) < 0 }

// LessEq reports whether p sorts before or equal to o.
func (p Position[T]) LessEq(o Position[T]) bool { return p.Compare(o) <= 0 }

// Greater reports whether p sorts after o.
func (p Position[T]) Greater(o Position[T]) bool { return p.Compare(o) > 0 }

// GreaterEq reports whether p sorts after or equal to o.
func (p Position[T]) GreaterEq(o Position[T]) bool { return p.Compare(o) >= 0 }

// ManhattanDistance returns |dx| + |dy|.
func (p Position[T]) ManhattanDistance(o Position[T]) T {
	return Abs(p.X-o.X) + Abs(p.Y-o.Y)
}

// DistanceSquared returns the squared length of p.
func (p Position[T]) DistanceSquared() T {
	return p.X*p.X + p.Y*p.Y
}

// EuclideanDistanceSquared returns the squared distance between p and o.
func (p Position[T]) EuclideanDistanceSquared(o Position[T]) T {
	return p.Sub(o).DistanceSquared()
}

// Cross returns the 2D cross product (determinant) of p and o.
func (p Position[T]) Cross(o Position[T]) T {
	return p.X*o.Y - p.Y*o.X
}

// AlignedWith reports whether o shares a row, a column or a diagonal with p.
func (p Position[T]) AlignedWith(o Position[T]) bool {
	return p.X == o.X || p.Y == o.Y || Abs(p.X-o.X) == Abs(p.Y-o.Y)
}

// InRange reports whether o lies within r steps of p on both axes.
// A zero range means 1.
func (p Position[T]) InRange(o Position[T], r T) bool {
	if r == 0 {
		r = 1
	}
	r = Abs(r)
	return Abs(p.X-o.X) <= r && Abs(p.Y-o.Y) <= r
}

// Rotate turns p clockwise around the origin by the given number of
// quarter turns. Negative turns rotate counter-clockwise.
func (p Position[T]) Rotate(turns int) Position[T] {
	switch SafeMod(turns, 4) {
	case 1:
		return Position[T]{X: p.Y, Y: -p.X}
	case 2:
		return Position[T]{X: -p.X, Y: -p.Y}
	case 3:
		return Position[T]{X: -p.Y, Y: p.X}
	default:
		return p
	}
}

// Rotate90 is Rotate(1).
func (p Position[T]) Rotate90() Position[T] { return p.Rotate(1) }

// Rotate180 is Rotate(2).
func (p Position[T]) Rotate180() Position[T] { return p.Rotate(2) }

// Rotate270 is Rotate(3).
func (p Position[T]) Rotate270() Position[T] { return p.Rotate(3) }

// Swap exchanges the axes.
func (p Position[T]) Swap() Position[T] {
	return Position[T]{X: p.Y, Y: p.X}
}

// MirrorX mirrors p across the X axis.
func (p Position[T]) MirrorX() Position[T] {
	return Position[T]{X: p.X, Y: -p.Y}
}

// MirrorY mirrors p across the Y axis.
func (p Position[T]) MirrorY() Position[T] {
	return Position[T]{X: -p.X, Y: p.Y}
}

// Clamp clamps each axis into [lo, hi].
func (p Position[T]) Clamp(lo, hi Position[T]) Position[T] {
	return Position[T]{X: Clamp(p.X, lo.X, hi.X), Y: Clamp(p.Y, lo.Y, hi.Y)}
}

// Neighbours yields one position per direction at the given distance.
// A nil dirs slice means the four cardinal directions; a non-positive
// distance means 1. Repeated directions yield repeated positions.
func (p Position[T]) Neighbours(distance T, dirs []Direction) iter.Seq[Position[T]] {
	if distance <= 0 {
		distance = 1
	}
	if dirs == nil {
		dirs = CrossDirections()
	}
	return func(yield func(Position[T]) bool) {
		for _, d := range dirs {
			if !yield(p.Add(PositionOf[T](d).Mul(distance))) {
				return
			}
		}
	}
}

// Index linearizes p for a row-major container of the given width.
func (p Position[T]) Index(width T) T {
	return p.X + p.Y*width
}

// String formats p as "(X, Y)".
func (p Position[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
