package geom

import (
	"fmt"
	"iter"
)

// Area is an axis-aligned rectangle with inclusive bounds.
//
// The corners are normalized at construction: the left edge has the
// smaller X and the top edge has the larger Y. Grids build their area from
// (0, 0) to (w-1, h-1), so for a grid "top" is the last row; code that
// needs row order should use MinY/MaxY rather than the corner names.
type Area[T Number] struct {
	topLeft     Position[T]
	bottomRight Position[T]
}

// NewArea builds the area spanned by two opposite corners, in any order.
func NewArea[T Number](c1, c2 Position[T]) Area[T] {
	return Area[T]{
		topLeft:     Position[T]{X: min(c1.X, c2.X), Y: max(c1.Y, c2.Y)},
		bottomRight: Position[T]{X: max(c1.X, c2.X), Y: min(c1.Y, c2.Y)},
	}
}

// TopLeft returns (MinX, MaxY).
func (a Area[T]) TopLeft() Position[T] { return a.topLeft }

// TopRight returns (MaxX, MaxY).
func (a Area[T]) TopRight() Position[T] { return Position[T]{X: a.bottomRight.X, Y: a.topLeft.Y} }

// BottomLeft returns (MinX, MinY).
func (a Area[T]) BottomLeft() Position[T] { return Position[T]{X: a.topLeft.X, Y: a.bottomRight.Y} }

// BottomRight returns (MaxX, MinY).
func (a Area[T]) BottomRight() Position[T] { return a.bottomRight }

// MinX returns the left edge.
func (a Area[T]) MinX() T { return a.topLeft.X }

// MaxX returns the right edge.
func (a Area[T]) MaxX() T { return a.bottomRight.X }

// MinY returns the bottom edge.
func (a Area[T]) MinY() T { return a.bottomRight.Y }

// MaxY returns the top edge.
func (a Area[T]) MaxY() T { return a.topLeft.Y }

// Width is the inclusive horizontal extent; a single point has width 1.
func (a Area[T]) Width() T { return a.MaxX() - a.MinX() + 1 }

// Height is the inclusive vertical extent; a single point has height 1.
func (a Area[T]) Height() T { return a.MaxY() - a.MinY() + 1 }

// Perimeter counts the positions on the boundary walk, 2*(w+h)-4.
func (a Area[T]) Perimeter() T {
	return 2*(a.Width()+a.Height()) - 4
}

// All yields every position in the area, row by row from MinY.
func (a Area[T]) All() iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		for y := a.MinY(); y <= a.MaxY(); y++ {
			for x := a.MinX(); x <= a.MaxX(); x++ {
				if !yield(Position[T]{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Row yields the positions of a row every step columns, starting at MinX.
// Nothing is yielded when row lies outside the area.
func (a Area[T]) Row(row, step T) iter.Seq[Position[T]] {
	if step <= 0 {
		step = 1
	}
	return func(yield func(Position[T]) bool) {
		if !a.hasY(row) {
			return
		}
		for x := a.MinX(); x <= a.MaxX(); x += step {
			if !yield(Position[T]{X: x, Y: row}) {
				return
			}
		}
	}
}

// Column yields the positions of a column every step rows, starting at MinY.
// Nothing is yielded when col lies outside the area.
func (a Area[T]) Column(col, step T) iter.Seq[Position[T]] {
	if step <= 0 {
		step = 1
	}
	return func(yield func(Position[T]) bool) {
		if !a.hasX(col) {
			return
		}
		for y := a.MinY(); y <= a.MaxY(); y += step {
			if !yield(Position[T]{X: col, Y: y}) {
				return
			}
		}
	}
}

// Neighbours yields p's neighbours, wrapped into the area when wrap is set
// and otherwise restricted to the ones inside it.
func (a Area[T]) Neighbours(p Position[T], distance T, dirs []Direction, wrap bool) iter.Seq[Position[T]] {
	ns := p.Neighbours(distance, dirs)
	if wrap {
		return a.WrapAll(ns)
	}
	return a.Filter(ns)
}

// Intersection returns the overlap of a and o. The bool is false when the
// areas do not overlap.
func (a Area[T]) Intersection(o Area[T]) (Area[T], bool) {
	minX, maxX := max(a.MinX(), o.MinX()), min(a.MaxX(), o.MaxX())
	minY, maxY := max(a.MinY(), o.MinY()), min(a.MaxY(), o.MaxY())
	if minX > maxX || minY > maxY {
		return Area[T]{}, false
	}
	return NewArea(Position[T]{X: minX, Y: maxY}, Position[T]{X: maxX, Y: minY}), true
}

// Expand grows the area by amount on every side.
func (a Area[T]) Expand(amount T) Area[T] {
	return NewArea(
		a.topLeft.Add(Position[T]{X: -amount, Y: amount}),
		a.bottomRight.Add(Position[T]{X: amount, Y: -amount}),
	)
}

// Has reports whether p lies inside the area, bounds included.
func (a Area[T]) Has(p Position[T]) bool {
	return a.hasX(p.X) && a.hasY(p.Y)
}

// HasArea reports whether o lies entirely inside a.
func (a Area[T]) HasArea(o Area[T]) bool {
	return a.Has(o.topLeft) && a.Has(o.bottomRight)
}

// OnXBound reports whether p lies on the left or right edge.
func (a Area[T]) OnXBound(p Position[T]) bool {
	return a.hasY(p.Y) && (p.X == a.MinX() || p.X == a.MaxX())
}

// OnYBound reports whether p lies on the top or bottom edge.
func (a Area[T]) OnYBound(p Position[T]) bool {
	return a.hasX(p.X) && (p.Y == a.MinY() || p.Y == a.MaxY())
}

// OnBound reports whether p lies on any edge.
func (a Area[T]) OnBound(p Position[T]) bool {
	return a.OnXBound(p) || a.OnYBound(p)
}

// OnCorner reports whether p is one of the four corners.
func (a Area[T]) OnCorner(p Position[T]) bool {
	return a.OnXBound(p) && a.OnYBound(p)
}

// Wrap reduces p modulo the area's width and height. Negative and far out
// of range positions land in [0, Width) x [0, Height). The area's origin is
// not subtracted, so positions inside an area that does not start at (0,0)
// can move: (3,3) in the area (2,2)-(4,4) wraps to (0,0).
func (a Area[T]) Wrap(p Position[T]) Position[T] {
	return p.Mod(Position[T]{X: a.Width(), Y: a.Height()})
}

// WrapAll applies Wrap to every position of seq.
func (a Area[T]) WrapAll(seq iter.Seq[Position[T]]) iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		for p := range seq {
			if !yield(a.Wrap(p)) {
				return
			}
		}
	}
}

// Filter yields the positions of seq that lie inside the area, keeping
// their order and duplicates.
func (a Area[T]) Filter(seq iter.Seq[Position[T]]) iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		for p := range seq {
			if a.Has(p) && !yield(p) {
				return
			}
		}
	}
}

// String formats the area as its two stored corners.
func (a Area[T]) String() string {
	return fmt.Sprintf("%v-%v", a.topLeft, a.bottomRight)
}

func (a Area[T]) hasX(x T) bool { return x >= a.MinX() && x <= a.MaxX() }

func (a Area[T]) hasY(y T) bool { return y >= a.MinY() && y <= a.MaxY() }
