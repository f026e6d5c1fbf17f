// Package scene loads YAML scene descriptions: a character map (inline rows,
// a map file, or a generated maze) plus the search settings to run on it.
package scene

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gridkit/internal/maze"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
	"gridkit/pkg/input"
	"gridkit/pkg/maps"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is wrapped by every validation failure.
var ErrInvalidScene = errors.New("scene: invalid")

// Neighbourhood names the step directions a search may take.
type Neighbourhood string

const (
	// Cross steps north, east, south and west.
	Cross Neighbourhood = "cross"
	// All adds the four diagonals to Cross.
	All Neighbourhood = "all"
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Name string `yaml:"name"`

	// Exactly one of Rows, File and Maze describes the map.
	Rows []string     `yaml:"rows,omitempty"`
	File string       `yaml:"file,omitempty"`
	Maze *maze.Config `yaml:"maze,omitempty"`

	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`

	Neighbourhood Neighbourhood `yaml:"neighbourhood,omitempty"`
	// Wrap lets the search step off one edge and onto the opposite one.
	Wrap bool `yaml:"wrap,omitempty"`
	TPS  int  `yaml:"tps,omitempty"`

	dir string
}

// Load reads and validates a scene file. A relative File is resolved
// against the scene file's directory.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate applies defaults and checks the scene is usable.
func (s *Scene) Validate() error {
	sources := 0
	if len(s.Rows) > 0 {
		sources++
	}
	if s.File != "" {
		sources++
	}
	if s.Maze != nil {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("%w: need exactly one of rows, file or maze, got %d", ErrInvalidScene, sources)
	}

	if s.Start == "" {
		s.Start = string(maps.DefaultStart)
	}
	if s.End == "" {
		s.End = string(maps.DefaultEnd)
	}
	for name, marker := range map[string]string{"start": s.Start, "end": s.End} {
		if utf8.RuneCountInString(marker) != 1 {
			return fmt.Errorf("%w: %s marker %q must be a single character", ErrInvalidScene, name, marker)
		}
	}
	if s.Maze != nil && (s.Start != string(maps.DefaultStart) || s.End != string(maps.DefaultEnd)) {
		return fmt.Errorf("%w: generated mazes use the %q and %q markers", ErrInvalidScene, maps.DefaultStart, maps.DefaultEnd)
	}

	switch s.Neighbourhood {
	case "":
		s.Neighbourhood = Cross
	case Cross, All:
	default:
		return fmt.Errorf("%w: unknown neighbourhood %q", ErrInvalidScene, s.Neighbourhood)
	}

	if s.TPS < 0 {
		return fmt.Errorf("%w: tps must not be negative", ErrInvalidScene)
	}
	if s.TPS == 0 {
		s.TPS = 30
	}
	return nil
}

// Directions returns the step directions of the scene's neighbourhood.
func (s *Scene) Directions() []geom.Direction {
	if s.Neighbourhood == All {
		return geom.AllDirections()
	}
	return geom.CrossDirections()
}

// Build materializes the scene's map.
func (s *Scene) Build(ctx context.Context) (*maps.CharacterMap, error) {
	opts := []maps.Option{
		maps.WithStart([]rune(s.Start)[0]),
		maps.WithEnd([]rune(s.End)[0]),
	}
	switch {
	case s.Maze != nil:
		lines, err := maze.Lines(*s.Maze)
		if err != nil {
			return nil, err
		}
		return maps.CharacterMapFromLines(lines)
	case s.File != "":
		path := s.File
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, path)
		}
		g, err := input.ReadGridFile(ctx, path)
		if err != nil {
			return nil, err
		}
		return maps.NewCharacterMap(g, opts...), nil
	default:
		return maps.CharacterMapFromLines(s.Rows, opts...)
	}
}

// Neighbours returns the step function for searches on m: path cells in
// the scene's directions, wrapped onto the grid when Wrap is set.
func (s *Scene) Neighbours(m *maps.CharacterMap) grid.NeighbourFunc {
	dirs := s.Directions()
	area := m.Grid().Area()
	return func(p geom.Position[int]) iter.Seq[geom.Position[int]] {
		return func(yield func(geom.Position[int]) bool) {
			for n := range area.Neighbours(p, 1, dirs, s.Wrap) {
				if m.IsPath(n) && !yield(n) {
					return
				}
			}
		}
	}
}

// Search runs the scene's breadth-first search over m from start to end.
func (s *Scene) Search(m *maps.CharacterMap) iter.Seq[grid.Entry[rune]] {
	return m.Grid().BreadthFirstSearch(m.Start(), m.End(), s.Neighbours(m))
}

// Route returns the shortest walk the scene's search rules allow on m.
func (s *Scene) Route(m *maps.CharacterMap) ([]geom.Position[int], bool) {
	return m.Grid().ShortestPath(m.Start(), m.End(), s.Neighbours(m))
}
