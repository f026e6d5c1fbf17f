package render

import (
	"image"
	"image/color"

	"gridkit/pkg/grid"
)

// Palette maps cell values to colours. Values past the end use the last entry.
type Palette []color.RGBA

var (
	// Binary draws 0 as black and anything else as white.
	Binary = Palette{
		{A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	// Brain colours dead, firing and dying cells.
	Brain = Palette{
		{A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 40, G: 90, B: 200, A: 255},
	}
	// Flood colours open, wall, visited, route, start and end cells.
	Flood = Palette{
		{R: 16, G: 16, B: 24, A: 255},
		{R: 120, G: 120, B: 130, A: 255},
		{R: 40, G: 110, B: 170, A: 255},
		{R: 250, G: 200, B: 60, A: 255},
		{R: 60, G: 220, B: 90, A: 255},
		{R: 230, G: 60, B: 60, A: 255},
	}
)

var palettes = map[string]Palette{
	"briansbrain": Brain,
	"flood":       Flood,
}

// PaletteFor returns the palette registered for a simulation, or Binary.
func PaletteFor(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return Binary
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette Palette) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders g at one pixel per cell.
func Image(g *grid.Grid[uint8], palette Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	fillPaletteRGBA(img.Pix, g.Data(), palette)
	return img
}
