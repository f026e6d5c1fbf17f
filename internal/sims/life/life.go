package life

import (
	"strconv"

	"gridkit/internal/core"
	rng "gridkit/pkg/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Config holds parameters for Life.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	buf *core.Buffer
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{buf: core.NewBuffer(w, h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.buf.W, H: l.buf.H} }

// Set marks p alive or dead.
func (l *Life) Set(p geom.Position[int], alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	l.buf.Set(p, v)
}

// Grid returns a snapshot of the board.
func (l *Life) Grid() *grid.Grid[uint8] { return l.buf.Snapshot() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng.NewRNG(seed).FillBinary(l.buf.Cells())
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	dirs := geom.AllDirections()
	next := l.buf.Next()
	for p := range l.buf.Area().All() {
		idx := l.buf.Index(p)
		neighbors := l.buf.CountAround(p, dirs, 1)
		alive := l.buf.Cells()[idx] == 1
		next[idx] = 0
		if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
			next[idx] = 1
		}
	}
	l.buf.Swap()
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
