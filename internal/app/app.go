//go:build ebiten

package app

import (
	"time"

	"gridkit/internal/core"
	"gridkit/internal/render"
	"gridkit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	run     *Runner
	painter *render.GridPainter
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
}

// New resets sim with seed and constructs a Game for it.
func New(sim core.Sim, scale int, seed int64) *Game {
	run := NewRunner(sim, seed)
	return &Game{
		run:     run,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		overlay: ui.NewOverlay(sim, scale),
		scale:   scale,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.run.Reset(seed)
	g.tickOnce = false
	// Map-backed sims may change size between resets.
	size := g.run.Sim().Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.run.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.run.Step()
		g.tickOnce = false
	}
	g.overlay.SetStatus(g.run.Status(g.paused))
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.run.Sim().Grid(), g.run.palette, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.run.Sim().Size()
	return s.W * g.scale, s.H * g.scale
}
