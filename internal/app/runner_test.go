package app

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"gridkit/internal/core"
	"gridkit/internal/render"
	"gridkit/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toggle flips its single live cell between two columns each step.
type toggle struct {
	resets []int64
	left   bool
}

func (s *toggle) Name() string    { return "life" }
func (s *toggle) Size() core.Size { return core.Size{W: 2, H: 1} }
func (s *toggle) Reset(seed int64) {
	s.resets = append(s.resets, seed)
	s.left = true
}
func (s *toggle) Step() { s.left = !s.left }
func (s *toggle) Grid() *grid.Grid[uint8] {
	cells := []uint8{0, 1}
	if s.left {
		cells = []uint8{1, 0}
	}
	g, _ := grid.New(cells, 2)
	return g
}

func TestRunnerStepsAndResets(t *testing.T) {
	sim := &toggle{}
	r := NewRunner(sim, 7)
	assert.Equal(t, []int64{7}, sim.resets)
	assert.Equal(t, int64(7), r.Seed())

	require.NoError(t, r.Run(context.Background(), 3))
	assert.Equal(t, 3, r.Steps())
	assert.False(t, sim.left)
	assert.Equal(t, "life  step 3  paused", r.Status(true))

	r.Reset(9)
	assert.Equal(t, 0, r.Steps())
	assert.Equal(t, int64(9), r.Seed())
	assert.Equal(t, "life  step 0  running", r.Status(false))
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	r := NewRunner(&toggle{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Run(ctx, 10), context.Canceled)
	assert.Equal(t, 0, r.Steps())
}

func TestRunnerWriteFrame(t *testing.T) {
	r := NewRunner(&toggle{}, 1)
	frame := r.Frame()
	assert.Equal(t, render.Binary[1], frame.RGBAAt(0, 0))
	assert.Equal(t, render.Binary[0], frame.RGBAAt(1, 0))

	var buf bytes.Buffer
	require.NoError(t, r.WriteFrame(&buf, 3))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	lr, lg, lb, _ := img.At(2, 2).RGBA()
	wr, wg, wb, _ := frame.At(0, 0).RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{lr, lg, lb})
	rr, rg, rb, _ := img.At(3, 0).RGBA()
	xr, xg, xb, _ := frame.At(1, 0).RGBA()
	assert.Equal(t, []uint32{xr, xg, xb}, []uint32{rr, rg, rb})
}
