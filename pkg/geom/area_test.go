package geom

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func area(x1, y1, x2, y2 int) Area[int] {
	return NewArea(Pos(x1, y1), Pos(x2, y2))
}

func TestNewAreaNormalizesCorners(t *testing.T) {
	tests := []struct {
		c1, c2          Position[int]
		topLeft, bottom Position[int]
	}{
		{Pos(0, 0), Pos(5, 5), Pos(0, 5), Pos(5, 0)},
		{Pos(-3, -4), Pos(-5, 7), Pos(-5, 7), Pos(-3, -4)},
		{Pos(-3, 7), Pos(-5, -4), Pos(-5, 7), Pos(-3, -4)},
	}
	for _, tt := range tests {
		a := NewArea(tt.c1, tt.c2)
		assert.Equal(t, tt.topLeft, a.TopLeft())
		assert.Equal(t, tt.bottom, a.BottomRight())
	}

	a := area(-3, -4, -5, 7)
	assert.Equal(t, Pos(-3, 7), a.TopRight())
	assert.Equal(t, Pos(-5, -4), a.BottomLeft())
	assert.Equal(t, -5, a.MinX())
	assert.Equal(t, -3, a.MaxX())
	assert.Equal(t, -4, a.MinY())
	assert.Equal(t, 7, a.MaxY())
}

func TestAreaDimensions(t *testing.T) {
	assert.Equal(t, 6, area(0, 0, 5, 5).Width())
	assert.Equal(t, 6, area(0, 0, 5, 5).Height())
	assert.Equal(t, 6, area(0, 0, 5, 10).Width())
	assert.Equal(t, 11, area(0, 0, 5, 10).Height())
	assert.Equal(t, 1, area(3, 3, 3, 3).Width())

	perimeters := []struct {
		a    Area[int]
		want int
	}{
		{area(0, 0, 2, 2), 8},
		{area(0, 0, 0, 0), 0},
		{area(1, 1, 1, 3), 4},
		{area(1, 3, 3, 1), 8},
		{area(-3, -3, -1, -1), 8},
		{area(0, 0, 2, 0), 4},
	}
	for _, p := range perimeters {
		assert.Equal(t, p.want, p.a.Perimeter(), "area %v", p.a)
		assert.Equal(t, 2*(p.a.Width()+p.a.Height())-4, p.a.Perimeter())
	}
	assert.Equal(t, 30, area(0, 0, 5, 10).Perimeter())
}

func TestAreaAll(t *testing.T) {
	got := slices.Collect(area(0, 0, 1, 1).All())
	assert.Equal(t, []Position[int]{Pos(0, 0), Pos(1, 0), Pos(0, 1), Pos(1, 1)}, got)

	got = slices.Collect(area(-2, -2, 0, 0).All())
	require.Len(t, got, 9)
	assert.Equal(t, Pos(-2, -2), got[0])
	assert.Equal(t, Pos(0, -2), got[2])
	assert.Equal(t, Pos(0, 0), got[8])
}

func TestAreaRowAndColumn(t *testing.T) {
	a := area(0, 0, 2, 2)
	tests := []struct {
		name      string
		idx, step int
		row, col  []Position[int]
	}{
		{"step 1", 0, 1, []Position[int]{Pos(0, 0), Pos(1, 0), Pos(2, 0)}, []Position[int]{Pos(0, 0), Pos(0, 1), Pos(0, 2)}},
		{"step 2", 0, 2, []Position[int]{Pos(0, 0), Pos(2, 0)}, []Position[int]{Pos(0, 0), Pos(0, 2)}},
		{"step 3", 0, 3, []Position[int]{Pos(0, 0)}, []Position[int]{Pos(0, 0)}},
		{"middle", 1, 1, []Position[int]{Pos(0, 1), Pos(1, 1), Pos(2, 1)}, []Position[int]{Pos(1, 0), Pos(1, 1), Pos(1, 2)}},
		{"large step", 1, 10, []Position[int]{Pos(0, 1)}, []Position[int]{Pos(1, 0)}},
		{"below range", -1, 1, nil, nil},
		{"above range", 3, 1, nil, nil},
		{"zero step", 0, 0, []Position[int]{Pos(0, 0), Pos(1, 0), Pos(2, 0)}, []Position[int]{Pos(0, 0), Pos(0, 1), Pos(0, 2)}},
		{"negative step", 0, -1, []Position[int]{Pos(0, 0), Pos(1, 0), Pos(2, 0)}, []Position[int]{Pos(0, 0), Pos(0, 1), Pos(0, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.row, slices.Collect(a.Row(tt.idx, tt.step)))
			assert.Equal(t, tt.col, slices.Collect(a.Column(tt.idx, tt.step)))
		})
	}
}

func TestAreaHas(t *testing.T) {
	a := area(0, 0, 5, 5)
	assert.True(t, a.Has(Pos(0, 0)))
	assert.True(t, a.Has(Pos(3, 4)))
	assert.True(t, a.Has(Pos(5, 5)))
	assert.False(t, a.Has(Pos(-1, 0)))
	assert.False(t, a.Has(Pos(0, -1)))
	assert.False(t, a.Has(Pos(5, 6)))
	assert.False(t, a.Has(Pos(6, 5)))
	assert.True(t, area(0, 0, 5, 10).Has(Pos(5, 6)))

	assert.True(t, a.HasArea(area(1, 1, 4, 4)))
	assert.True(t, a.HasArea(area(0, 0, 5, 5)))
	assert.False(t, a.HasArea(area(-1, -1, 5, 5)))
	assert.False(t, a.HasArea(area(0, 0, 6, 5)))
	assert.False(t, a.HasArea(area(0, 0, 0, 6)))
}

func TestAreaBounds(t *testing.T) {
	a := area(0, 0, 5, 5)
	tests := []struct {
		p                      Position[int]
		onX, onY, onB, corner bool
	}{
		{Pos(0, 0), true, true, true, true},
		{Pos(0, 1), true, false, true, false},
		{Pos(1, 0), false, true, true, false},
		{Pos(5, 4), true, false, true, false},
		{Pos(4, 5), false, true, true, false},
		{Pos(5, 5), true, true, true, true},
		{Pos(0, 5), true, true, true, true},
		{Pos(1, 1), false, false, false, false},
		{Pos(2, 3), false, false, false, false},
		{Pos(-1, 5), false, false, false, false},
		{Pos(5, 6), false, false, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.onX, a.OnXBound(tt.p), "OnXBound %v", tt.p)
		assert.Equal(t, tt.onY, a.OnYBound(tt.p), "OnYBound %v", tt.p)
		assert.Equal(t, tt.onB, a.OnBound(tt.p), "OnBound %v", tt.p)
		assert.Equal(t, tt.corner, a.OnCorner(tt.p), "OnCorner %v", tt.p)
	}
}

func TestAreaWrap(t *testing.T) {
	tests := []struct {
		a    Area[int]
		p    Position[int]
		want Position[int]
	}{
		{area(0, 0, 6, 6), Pos(0, 0), Pos(0, 0)},
		{area(0, 0, 6, 6), Pos(6, 6), Pos(6, 6)},
		{area(0, 0, 6, 6), Pos(3, 7), Pos(3, 0)},
		{area(0, 0, 6, 6), Pos(7, 3), Pos(0, 3)},
		{area(0, 0, 6, 7), Pos(8, 10), Pos(1, 2)},
		{area(0, 0, 6, 6), Pos(2, -3), Pos(2, 4)},
		{area(0, 0, 6, 7), Pos(-3, -8), Pos(4, 0)},
		{area(0, 0, 6, 6), Pos(-1, -1), Pos(6, 6)},
		{area(0, 0, 6, 6), Pos(-1, -2), Pos(6, 5)},
		{area(0, 0, 6, 6), Pos(-71, 700), Pos(6, 0)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Wrap(tt.p), "wrap %v in %v", tt.p, tt.a)
	}

	in := []Position[int]{Pos(-2, 8), Pos(9, -3), Pos(7, 7)}
	got := slices.Collect(area(0, 0, 6, 6).WrapAll(slices.Values(in)))
	assert.Equal(t, []Position[int]{Pos(5, 1), Pos(2, 4), Pos(0, 0)}, got)
}

func TestAreaWrapKeepsInsidePositions(t *testing.T) {
	a := area(0, 0, 4, 3)
	for p := range a.All() {
		assert.Equal(t, p, a.Wrap(p))
	}
}

func TestAreaWrapIgnoresOrigin(t *testing.T) {
	a := area(2, 2, 4, 4)
	assert.Equal(t, Pos(0, 0), a.Wrap(Pos(3, 3)))
	assert.Equal(t, Pos(1, 2), a.Wrap(Pos(4, 2)))
	assert.Equal(t, Pos(2, 0), a.Wrap(Pos(-1, 6)))
	assert.False(t, a.Has(a.Wrap(Pos(3, 3))))
}

func TestAreaFilter(t *testing.T) {
	a := area(0, 0, 5, 5)
	in := []Position[int]{Pos(0, 0), Pos(6, 6), Pos(1, 3), Pos(1, 3), Pos(5, 5), Pos(-1, -1)}
	once := slices.Collect(a.Filter(slices.Values(in)))
	assert.Equal(t, []Position[int]{Pos(0, 0), Pos(1, 3), Pos(1, 3), Pos(5, 5)}, once)

	twice := slices.Collect(a.Filter(a.Filter(slices.Values(in))))
	assert.Equal(t, once, twice)

	assert.Empty(t, slices.Collect(a.Filter(slices.Values([]Position[int]{Pos(6, 5), Pos(0, -1)}))))
}

func TestAreaIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Area[int]
		want Area[int]
		ok   bool
	}{
		{"partial", area(0, 0, 4, 4), area(2, 2, 6, 6), area(2, 2, 4, 4), true},
		{"contained", area(0, 0, 4, 4), area(1, 1, 3, 3), area(1, 1, 3, 3), true},
		{"same", area(0, 0, 4, 4), area(0, 0, 4, 4), area(0, 0, 4, 4), true},
		{"disjoint", area(0, 0, 2, 2), area(5, 5, 6, 6), Area[int]{}, false},
		{"corner", area(0, 0, 4, 4), area(4, 4, 6, 6), area(4, 4, 4, 4), true},
		{"right strip", area(0, 0, 2, 2), area(2, 0, 4, 2), area(2, 0, 2, 2), true},
		{"left strip", area(0, 0, 2, 2), area(-2, 0, 0, 2), area(0, 0, 0, 2), true},
		{"top strip", area(0, 0, 2, 2), area(0, 2, 2, 4), area(0, 2, 2, 2), true},
		{"bottom strip", area(0, 0, 2, 2), area(0, -2, 2, 0), area(0, 0, 2, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	strip, ok := area(0, 0, 2, 2).Intersection(area(2, 0, 4, 2))
	require.True(t, ok)
	assert.Equal(t, 1, strip.Width())
	assert.Equal(t, 3, strip.Height())
}

func TestAreaExpand(t *testing.T) {
	assert.Equal(t, area(-1, -1, 1, 1), area(0, 0, 0, 0).Expand(1))
	assert.Equal(t, area(-2, -2, 2, 2), area(0, 0, 0, 0).Expand(2))
	assert.Equal(t, area(-1, -1, 4, 4), area(0, 0, 3, 3).Expand(1))
	assert.Equal(t, area(-2, -1, 4, 5), area(-1, 0, 3, 4).Expand(1))
}

func TestAreaNeighbours(t *testing.T) {
	a := area(0, 0, 5, 5)
	tests := []struct {
		name     string
		p        Position[int]
		distance int
		dirs     []Direction
		wrap     bool
		want     []Position[int]
	}{
		{"corner filtered", Pos(0, 0), 1, CrossDirections(), false, []Position[int]{Pos(0, 1), Pos(1, 0)}},
		{"inside", Pos(2, 2), 1, CrossDirections(), false, []Position[int]{Pos(2, 1), Pos(2, 3), Pos(1, 2), Pos(3, 2)}},
		{"distance 3", Pos(0, 0), 3, CrossDirections(), false, []Position[int]{Pos(0, 3), Pos(3, 0)}},
		{"duplicates", Pos(2, 2), 2, []Direction{Up, Up, TopLeft}, false, []Position[int]{Pos(2, 0), Pos(2, 0), Pos(0, 4)}},
		{"outside origin", Pos(6, 6), 2, []Direction{Up, TopLeft, BottomLeft, BottomRight, BottomLeft}, false, []Position[int]{Pos(4, 4), Pos(4, 4)}},
		{"from negative", Pos(-1, -2), 3, []Direction{Up, TopRight}, false, []Position[int]{Pos(2, 1)}},
		{"far away", Pos(-10, -9), 3, []Direction{Up, TopRight}, false, nil},
		{"no directions", Pos(2, 2), 1, []Direction{}, false, nil},
		{"default directions", Pos(2, 2), 1, nil, false, []Position[int]{Pos(2, 1), Pos(2, 3), Pos(1, 2), Pos(3, 2)}},
		{"wrapped", Pos(0, 0), 1, CrossDirections(), true, []Position[int]{Pos(0, 5), Pos(0, 1), Pos(5, 0), Pos(1, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(a.Neighbours(tt.p, tt.distance, tt.dirs, tt.wrap)))
		})
	}
}

func TestAreaFloat(t *testing.T) {
	a := NewArea(Pos(0.0, 0.0), Pos(2.0, 1.0))
	assert.InDelta(t, 3.0, a.Width(), 1e-9)
	assert.True(t, a.Has(Pos(1.5, 0.5)))
	assert.Equal(t, Pos(0.5, 1.5), a.Wrap(Pos(-2.5, -0.5)))
}
