package scene

import (
	"context"
	"iter"
	"testing"

	"gridkit/pkg/geom"
	"gridkit/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(seq iter.Seq[grid.Entry[rune]]) []geom.Position[int] {
	var out []geom.Position[int]
	for e := range seq {
		out = append(out, e.Position)
	}
	return out
}

func TestLoadResolvesFileRelativeToScene(t *testing.T) {
	s, err := Load("testdata/corridor.yaml")
	require.NoError(t, err)
	assert.Equal(t, "corridor", s.Name)
	assert.Equal(t, 10, s.TPS)

	m, err := s.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, geom.Pos(0, 0), m.Start())
	assert.Equal(t, geom.Pos(0, 2), m.End())

	got := positions(s.Search(m))
	assert.Equal(t, geom.Pos(0, 2), got[len(got)-1])
	assert.Len(t, got, 7)
}

func TestWrapReachesAcrossEdges(t *testing.T) {
	s, err := Load("testdata/wrap.yaml")
	require.NoError(t, err)
	m, err := s.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []geom.Position[int]{geom.Pos(0, 0), geom.Pos(2, 0)}, positions(s.Search(m)))

	s.Wrap = false
	assert.Equal(t, []geom.Position[int]{geom.Pos(0, 0)}, positions(s.Search(m)))
}

func TestDefaults(t *testing.T) {
	s, err := Parse([]byte("rows: [\"S.E\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, Cross, s.Neighbourhood)
	assert.Equal(t, "S", s.Start)
	assert.Equal(t, "E", s.End)
	assert.Equal(t, 30, s.TPS)
	assert.Equal(t, geom.CrossDirections(), s.Directions())
}

func TestCustomMarkersAndDiagonals(t *testing.T) {
	s, err := Parse([]byte(`
rows:
  - "a#"
  - "#b"
start: a
end: b
neighbourhood: all
`))
	require.NoError(t, err)
	m, err := s.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, geom.Pos(1, 1), m.End())
	assert.Equal(t, []geom.Position[int]{geom.Pos(0, 0), geom.Pos(1, 1)}, positions(s.Search(m)))
}

func TestMazeScene(t *testing.T) {
	s, err := Parse([]byte("maze: {width: 9, height: 7, seed: 4}\n"))
	require.NoError(t, err)
	m, err := s.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, m.Grid().Width())
	assert.Equal(t, 7, m.Grid().Height())

	got := positions(s.Search(m))
	assert.Equal(t, m.End(), got[len(got)-1])
}

func TestMazeSceneAcceptsExplicitDefaultMarkers(t *testing.T) {
	s, err := Parse([]byte("maze: {width: 9, height: 9}\nstart: S\nend: E\n"))
	require.NoError(t, err)
	m, err := s.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, geom.Pos(1, 1), m.Start())
	assert.Equal(t, geom.Pos(7, 7), m.End())
}

func TestValidationErrors(t *testing.T) {
	cases := map[string]string{
		"no source":     "name: empty\n",
		"two sources":   "rows: [\"S\"]\nfile: x.txt\n",
		"long marker":   "rows: [\"S\"]\nstart: SS\n",
		"neighbourhood": "rows: [\"S\"]\nneighbourhood: hex\n",
		"negative tps":  "rows: [\"S\"]\ntps: -1\n",
		"maze start":    "maze: {width: 9, height: 9}\nstart: A\n",
		"maze end":      "maze: {width: 9, height: 9}\nend: B\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("rows: [unterminated\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidScene)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRouteFollowsSceneRules(t *testing.T) {
	s, err := Load("testdata/wrap.yaml")
	require.NoError(t, err)
	m, err := s.Build(context.Background())
	require.NoError(t, err)

	route, ok := s.Route(m)
	require.True(t, ok)
	assert.Equal(t, []geom.Position[int]{geom.Pos(0, 0), geom.Pos(2, 0)}, route)

	_, ok = m.Route()
	assert.False(t, ok, "plain map rules do not wrap")
}
