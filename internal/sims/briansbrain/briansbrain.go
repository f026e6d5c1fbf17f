package briansbrain

import (
	"strconv"

	"gridkit/internal/core"
	rng "gridkit/pkg/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width  int
	Height int
	// Density is the chance a cell starts firing on Reset.
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: 0.125}
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
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	buf     *core.Buffer
	density float64
}

// New creates a Brain simulation from cfg.
func New(cfg Config) *Brain {
	return &Brain{buf: core.NewBuffer(cfg.Width, cfg.Height), density: cfg.Density}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.buf.W, H: b.buf.H} }

// Grid returns a snapshot of the cell states.
func (b *Brain) Grid() *grid.Grid[uint8] { return b.buf.Snapshot() }

// Set writes a raw cell state.
func (b *Brain) Set(p geom.Position[int], state uint8) { b.buf.Set(p, state) }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	r := rng.NewRNG(seed)
	cells := b.buf.Cells()
	for i := range cells {
		cells[i] = stateDead
		if r.Chance(b.density) {
			cells[i] = stateOn
		}
	}
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	dirs := geom.AllDirections()
	cur, next := b.buf.Cells(), b.buf.Next()
	for p := range b.buf.Area().All() {
		idx := b.buf.Index(p)
		switch cur[idx] {
		case stateOn:
			next[idx] = stateDying
		case stateDying:
			next[idx] = stateDead
		default:
			next[idx] = stateDead
			if b.buf.CountAround(p, dirs, stateOn) == 2 {
				next[idx] = stateOn
			}
		}
	}
	b.buf.Swap()
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
