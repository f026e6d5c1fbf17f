// Package flood animates a breadth-first search across a character map,
// revealing one visited cell per step and the shortest route at the end.
package flood

import (
	"context"
	"strconv"

	"gridkit/internal/core"
	"gridkit/internal/maze"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/input"
	"gridkit/pkg/maps"

	"github.com/charmbracelet/log"
)

// Cell states written into the snapshot grid.
const (
	Open uint8 = iota
	Wall
	Visited
	Route
	Start
	End
)

// Config holds parameters for the flood simulation.
type Config struct {
	Width    int
	Height   int
	Braiding float64
	// MapFile, when set, is loaded instead of generating a maze.
	MapFile string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 63, Height: 63, Braiding: 0.1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= maze.MinSize {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= maze.MinSize {
			c.Height = parsed
		}
	}
	if v, ok := cfg["braid"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Braiding = parsed
		}
	}
	if v, ok := cfg["map"]; ok {
		c.MapFile = v
	}
	return c
}

// Flood reveals a CharacterMap's Flood order one cell per Step.
type Flood struct {
	cfg   Config
	fixed *maps.CharacterMap
	m     *maps.CharacterMap
	buf   *core.Buffer
	order []grid.Entry[rune]
	next  int
	done  bool
}

// New creates a flood simulation. When cfg.MapFile is set it is read
// once here and every Reset replays it; otherwise each Reset generates a
// fresh maze from the seed.
func New(cfg Config) (*Flood, error) {
	f := &Flood{cfg: cfg}
	if cfg.MapFile != "" {
		g, err := input.ReadGridFile(context.Background(), cfg.MapFile)
		if err != nil {
			return nil, err
		}
		f.fixed = maps.NewCharacterMap(g)
	}
	f.Reset(0)
	return f, nil
}

// NewFromMap creates a flood simulation over an existing map.
func NewFromMap(m *maps.CharacterMap) *Flood {
	f := &Flood{fixed: m}
	f.Reset(0)
	return f
}

// Name returns the simulation identifier.
func (f *Flood) Name() string { return "flood" }

// Size returns the grid dimensions.
func (f *Flood) Size() core.Size { return core.Size{W: f.buf.W, H: f.buf.H} }

// Map returns the map being searched.
func (f *Flood) Map() *maps.CharacterMap { return f.m }

// Done reports whether the search has finished.
func (f *Flood) Done() bool { return f.done }

// Grid returns a snapshot of the cell states.
func (f *Flood) Grid() *grid.Grid[uint8] { return f.buf.Snapshot() }

// Reset restarts the search, generating a new maze unless a fixed map was given.
func (f *Flood) Reset(seed int64) {
	f.m = f.fixed
	if f.m == nil {
		m, err := maze.Generate(maze.Config{
			Width:    f.cfg.Width,
			Height:   f.cfg.Height,
			Braiding: f.cfg.Braiding,
			Seed:     seed,
		})
		if err != nil {
			log.Error("maze generation failed", "err", err)
			m, _ = maps.CharacterMapFromLines([]string{string(maps.DefaultStart)})
		}
		f.m = m
	}

	g := f.m.Grid()
	f.buf = core.NewBuffer(g.Width(), g.Height())
	for e := range g.All() {
		if f.m.IsWall(e.Position) {
			f.buf.Set(e.Position, Wall)
		}
	}
	f.order, _ = f.m.Solve()
	f.next, f.done = 0, false
	f.markEndpoints()
}

// Step reveals the next visited cell, then paints the route once the
// search is exhausted.
func (f *Flood) Step() {
	if f.done {
		return
	}
	if f.next < len(f.order) {
		f.buf.Set(f.order[f.next].Position, Visited)
		f.next++
		f.markEndpoints()
		return
	}
	if route, ok := f.m.Route(); ok {
		for _, p := range route {
			f.buf.Set(p, Route)
		}
	}
	f.markEndpoints()
	f.done = true
}

func (f *Flood) markEndpoints() {
	f.buf.Set(f.m.Start(), Start)
	f.buf.Set(f.m.End(), End)
}

// Visited returns the positions revealed so far.
func (f *Flood) Visited() []geom.Position[int] {
	out := make([]geom.Position[int], 0, f.next)
	for _, e := range f.order[:f.next] {
		out = append(out, e.Position)
	}
	return out
}

func init() {
	core.Register("flood", func(cfg map[string]string) core.Sim {
		f, err := New(FromMap(cfg))
		if err != nil {
			log.Warn("falling back to a generated maze", "err", err)
			c := FromMap(cfg)
			c.MapFile = ""
			f, _ = New(c)
		}
		return f
	})
}
