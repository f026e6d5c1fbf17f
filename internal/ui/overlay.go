//go:build ebiten

package ui

import (
	"image/color"

	"gridkit/internal/core"
	"gridkit/pkg/geom"
	"gridkit/pkg/maps"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type mapProvider interface {
	Map() *maps.CharacterMap
}

// Overlay draws the status line and, for map-backed sims, outlines the
// start and end cells.
type Overlay struct {
	sim        core.Sim
	scale      int
	status     string
	hideStatus bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: max(scale, 1)}
}

// SetStatus replaces the status line.
func (o *Overlay) SetStatus(s string) { o.status = s }

// Update toggles the status line with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hideStatus = !o.hideStatus
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if p, ok := o.sim.(mapProvider); ok {
		m := p.Map()
		o.outline(screen, m.Start(), color.RGBA{R: 60, G: 220, B: 90, A: 255})
		o.outline(screen, m.End(), color.RGBA{R: 230, G: 60, B: 60, A: 255})
	}
	if o.hideStatus || o.status == "" {
		return
	}
	face := basicfont.Face7x13
	w := len(o.status)*7 + 8
	vector.DrawFilledRect(screen, 0, 0, float32(w), 18, color.RGBA{A: 170}, false)
	text.Draw(screen, o.status, face, 4, 13, color.White)
}

func (o *Overlay) outline(screen *ebiten.Image, p geom.Position[int], col color.RGBA) {
	s := float32(o.scale)
	vector.StrokeRect(screen, float32(p.X)*s, float32(p.Y)*s, s, s, max(1, s/4), col, false)
}
