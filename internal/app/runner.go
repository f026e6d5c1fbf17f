package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"

	"gridkit/internal/core"
	"gridkit/internal/render"
)

// Runner owns a simulation's seed and step count. The GUI Game drives one
// per frame; headless builds drive it directly and render frames as PNG.
type Runner struct {
	sim     core.Sim
	palette render.Palette
	seed    int64
	steps   int
}

// NewRunner resets sim with seed and wraps it.
func NewRunner(sim core.Sim, seed int64) *Runner {
	r := &Runner{sim: sim, palette: render.PaletteFor(sim.Name())}
	r.Reset(seed)
	return r
}

// Sim returns the wrapped simulation.
func (r *Runner) Sim() core.Sim { return r.sim }

// Seed returns the seed of the last reset.
func (r *Runner) Seed() int64 { return r.seed }

// Steps returns the number of steps since the last reset.
func (r *Runner) Steps() int { return r.steps }

// Reset reinitializes the simulation and clears the step count.
func (r *Runner) Reset(seed int64) {
	r.seed = seed
	r.steps = 0
	r.sim.Reset(seed)
}

// Step advances the simulation once.
func (r *Runner) Step() {
	r.sim.Step()
	r.steps++
}

// Run advances the simulation n times, stopping early when ctx is done.
func (r *Runner) Run(ctx context.Context, n int) error {
	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Step()
	}
	return nil
}

// Status is the one-line summary shown by the viewers.
func (r *Runner) Status(paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  step %d  %s", r.sim.Name(), r.steps, state)
}

// Frame renders the current state through the simulation's palette.
func (r *Runner) Frame() *image.RGBA {
	return render.Image(r.sim.Grid(), r.palette)
}

// WriteFrame encodes the current state as a PNG scaled by scale.
func (r *Runner) WriteFrame(w io.Writer, scale int) error {
	if err := png.Encode(w, upscale(r.Frame(), scale)); err != nil {
		return fmt.Errorf("app: encode frame: %w", err)
	}
	return nil
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	for y := range dst.Bounds().Dy() {
		for x := range dst.Bounds().Dx() {
			dst.SetRGBA(x, y, src.RGBAAt(b.Min.X+x/scale, b.Min.Y+y/scale))
		}
	}
	return dst
}
