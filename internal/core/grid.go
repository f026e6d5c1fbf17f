package core

import (
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Buffer is the mutable, double-buffered byte grid a simulation steps on.
// Snapshot hands out immutable grid.Grid copies for rendering and tests.
type Buffer struct {
	W, H int
	area geom.Area[int]
	cur  []uint8
	nxt  []uint8
}

// NewBuffer allocates a buffer with the given dimensions. Non-positive
// dimensions are raised to 1.
func NewBuffer(w, h int) *Buffer {
	w, h = max(w, 1), max(h, 1)
	return &Buffer{
		W:    w,
		H:    h,
		area: geom.NewArea(geom.Origin[int](), geom.Pos(w-1, h-1)),
		cur:  make([]uint8, w*h),
		nxt:  make([]uint8, w*h),
	}
}

// Area returns the buffer's coordinate space.
func (b *Buffer) Area() geom.Area[int] { return b.area }

// Cells exposes the current generation so callers can read/write it directly.
func (b *Buffer) Cells() []uint8 { return b.cur }

// Next exposes the generation being built.
func (b *Buffer) Next() []uint8 { return b.nxt }

// Index returns the slice index of p.
func (b *Buffer) Index(p geom.Position[int]) int { return p.Index(b.W) }

// At returns the current value at p, wrapping p onto the buffer.
func (b *Buffer) At(p geom.Position[int]) uint8 {
	return b.cur[b.Index(b.area.Wrap(p))]
}

// Set writes v at p in the current generation, wrapping p onto the buffer.
func (b *Buffer) Set(p geom.Position[int], v uint8) {
	b.cur[b.Index(b.area.Wrap(p))] = v
}

// CountAround counts the wrapped neighbours of p in dirs holding v.
func (b *Buffer) CountAround(p geom.Position[int], dirs []geom.Direction, v uint8) int {
	n := 0
	for q := range b.area.Neighbours(p, 1, dirs, true) {
		if b.cur[b.Index(q)] == v {
			n++
		}
	}
	return n
}

// Swap promotes the next generation to current.
func (b *Buffer) Swap() { b.cur, b.nxt = b.nxt, b.cur }

// Clear fills the current generation with zeros.
func (b *Buffer) Clear() { clear(b.cur) }

// Snapshot copies the current generation into an immutable grid.
func (b *Buffer) Snapshot() *grid.Grid[uint8] {
	g, err := grid.New(b.cur, b.W)
	if err != nil {
		// W is always positive.
		panic(err)
	}
	return g
}
