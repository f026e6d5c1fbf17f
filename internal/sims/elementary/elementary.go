package elementary

import (
	"strconv"

	"gridkit/internal/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 holds the newest generation; older rows scroll downwards.
type Elementary struct {
	buf  *core.Buffer
	rule uint8
	tmp  []uint8
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	buf := core.NewBuffer(w, h)
	return &Elementary{buf: buf, rule: rule, tmp: make([]uint8, buf.W)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.buf.W, H: e.buf.H} }

// Grid returns a snapshot of the history.
func (e *Elementary) Grid() *grid.Grid[uint8] { return e.buf.Snapshot() }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.buf.Clear()
	e.buf.Set(geom.Pos(e.buf.W/2, 0), 1)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, cells := e.buf.W, e.buf.Cells()
	copy(e.tmp, cells[:w])
	copy(cells[w:], cells[:w*(e.buf.H-1)])
	for p := range e.buf.Area().Row(0, 1) {
		left := e.tmp[geom.SafeMod(p.X-1, w)]
		center := e.tmp[p.X]
		right := e.tmp[geom.SafeMod(p.X+1, w)]
		idx := (left << 2) | (center << 1) | right
		cells[p.X] = (e.rule >> idx) & 1
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
