package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"painter3d/hal"
	"painter3d/render/geom"
	"painter3d/render/raster"
)

const (
	hudLineHeight = 10
	hudMargin     = 4
)

var hudColor = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}

// hud draws status text over the finished frame.
type hud struct {
	d    *fbDisplayer
	font tinyfont.Fonter
}

func newHUD(fb hal.Framebuffer) *hud {
	return &hud{
		d:    &fbDisplayer{t: targetFor(fb)},
		font: &proggy.TinySZ8pt7b,
	}
}

// draw writes one line of text per entry from the top-left corner.
func (h *hud) draw(lines ...string) {
	for i, s := range lines {
		y := int16(hudMargin + (i+1)*hudLineHeight)
		tinyfont.WriteLine(h.d, h.font, hudMargin, y, s, hudColor)
	}
}

// fbDisplayer lets tinyfont paint into an RGB565 framebuffer.
type fbDisplayer struct {
	t *raster.RGB565Target
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.t.W), int16(d.t.H)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), geom.RGBA(c.R, c.G, c.B, c.A))
}

func (d *fbDisplayer) Display() error { return nil }

func targetFor(fb hal.Framebuffer) *raster.RGB565Target {
	return &raster.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
}
