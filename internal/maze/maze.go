// Package maze generates rectangular character mazes that load straight
// into a maps.CharacterMap.
package maze

import (
	"fmt"

	rng "gridkit/pkg/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/maps"
)

const (
	// Passage marks an open cell.
	Passage = '.'
	// Wall marks a blocked cell.
	Wall = maps.Wall
)

// MinSize is the smallest width or height that leaves room for distinct
// start and end cells.
const MinSize = 5

// ErrTooSmall is returned when the requested maze cannot hold both markers.
var ErrTooSmall = fmt.Errorf("maze: width and height must be at least %d", MinSize)

// Config controls maze generation.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Braiding is the chance, in [0, 1], that a dead end is opened into a
	// loop. Zero yields a perfect maze.
	Braiding float64 `yaml:"braiding"`

	Seed int64 `yaml:"seed"`
}

// Generate carves a maze with a recursive backtracker and marks the start
// at the top-left room and the end at the bottom-right room. Even
// dimensions are rounded down to the nearest odd value.
func Generate(cfg Config) (*maps.CharacterMap, error) {
	lines, err := Lines(cfg)
	if err != nil {
		return nil, err
	}
	m, err := maps.CharacterMapFromLines(lines)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	return m, nil
}

// Lines is Generate without the map wrapper: one string per row.
func Lines(cfg Config) ([]string, error) {
	if cfg.Width < MinSize || cfg.Height < MinSize {
		return nil, ErrTooSmall
	}
	w, h := ensureOdd(cfg.Width), ensureOdd(cfg.Height)
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}
	m := &carver{
		cells: cells,
		rooms: geom.NewArea(geom.Pos(1, 1), geom.Pos(w-2, h-2)),
		rng:   rng.NewRNG(cfg.Seed),
	}

	start, end := geom.Pos(1, 1), geom.Pos(w-2, h-2)
	m.backtrack(start)
	if cfg.Braiding > 0 {
		m.braid(cfg.Braiding)
	}
	m.set(start, maps.DefaultStart)
	m.set(end, maps.DefaultEnd)

	lines := make([]string, h)
	for y, row := range cells {
		lines[y] = string(row)
	}
	return lines, nil
}

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

type carver struct {
	cells [][]rune
	// rooms bounds every carvable cell; the outer ring stays wall.
	rooms geom.Area[int]
	rng   *rng.RNG
}

func (c *carver) at(p geom.Position[int]) rune      { return c.cells[p.Y][p.X] }
func (c *carver) set(p geom.Position[int], r rune) { c.cells[p.Y][p.X] = r }

// backtrack carves a uniform spanning tree over the odd-coordinate rooms.
func (c *carver) backtrack(start geom.Position[int]) {
	stack := []geom.Position[int]{start}
	c.set(start, Passage)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		carved := false
		for _, d := range c.rng.Directions(geom.CrossDirections()) {
			step := geom.PositionOf[int](d)
			next := cur.Add(step.Mul(2))
			if !c.rooms.Has(next) || c.at(next) != Wall {
				continue
			}
			c.set(cur.Add(step), Passage)
			c.set(next, Passage)
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// braid opens walls next to dead ends. Cells with two even coordinates are
// never carved, so no 2x2 open block can form.
func (c *carver) braid(p float64) {
	for room := range c.rooms.All() {
		if room.X%2 == 0 || room.Y%2 == 0 || c.at(room) == Wall {
			continue
		}
		if c.exits(room) != 1 || !c.rng.Chance(p) {
			continue
		}
		var candidates []geom.Position[int]
		for _, d := range geom.CrossDirections() {
			step := geom.PositionOf[int](d)
			wall, next := room.Add(step), room.Add(step.Mul(2))
			if c.rooms.Has(next) && c.at(wall) == Wall && c.at(next) != Wall {
				candidates = append(candidates, wall)
			}
		}
		if len(candidates) > 0 {
			c.set(candidates[c.rng.IntN(len(candidates))], Passage)
		}
	}
}

func (c *carver) exits(p geom.Position[int]) int {
	n := 0
	for q := range p.Neighbours(1, geom.CrossDirections()) {
		if c.at(q) != Wall {
			n++
		}
	}
	return n
}
