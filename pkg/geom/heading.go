package geom

import "iter"

// Heading pairs a position with the direction it is travelling in.
type Heading[T Number] struct {
	Position  Position[T]
	Direction Position[T]
}

// HeadingFrom starts a heading at the origin facing dir.
func HeadingFrom[T Number](dir Position[T]) Heading[T] {
	return Heading[T]{Direction: dir}
}

// Pos returns the current position.
func (h Heading[T]) Pos() Position[T] { return h.Position }

// Next moves distance steps along the direction. A zero distance moves one step.
func (h Heading[T]) Next(distance T) Heading[T] {
	if distance == 0 {
		distance = 1
	}
	h.Position = h.Position.Add(h.Direction.Mul(distance))
	return h
}

// NextRange yields the next count headings, each distance further along.
func (h Heading[T]) NextRange(count int, distance T) iter.Seq[Heading[T]] {
	return func(yield func(Heading[T]) bool) {
		cur := h
		for range count {
			cur = cur.Next(distance)
			if !yield(cur) {
				return
			}
		}
	}
}

// Rotate turns the direction clockwise by quarter turns.
func (h Heading[T]) Rotate(turns int) Heading[T] {
	h.Direction = h.Direction.Rotate(turns)
	return h
}

// Rotate90 is Rotate(1).
func (h Heading[T]) Rotate90() Heading[T] { return h.Rotate(1) }

// Rotate180 is Rotate(2).
func (h Heading[T]) Rotate180() Heading[T] { return h.Rotate(2) }

// Rotate270 is Rotate(3).
func (h Heading[T]) Rotate270() Heading[T] { return h.Rotate(3) }
