// Package raster paints screen-space triangles into pixel targets.
//
// It is the fill/outline primitive at the end of the pipeline and knows
// nothing about 3D.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"painter3d/render/geom"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c geom.Color)
	Clear(c geom.Color)
}

// RGB565Target writes little-endian RGB565 pixels into a caller-owned
// buffer laid out Stride bytes per row. Rows may carry padding past W*2
// bytes; padding is never written.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

// at returns the byte offset of (x, y), or false when the pixel is off
// the target or past the end of Buf.
func (t *RGB565Target) at(x, y int) (int, bool) {
	if t == nil || t.Stride < t.W*2 || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, false
	}
	off := y*t.Stride + x*2
	return off, off+2 <= len(t.Buf)
}

// rows returns how many whole rows of W pixels fit in Buf.
func (t *RGB565Target) rows() int {
	if t == nil || t.W <= 0 || t.Stride < t.W*2 || len(t.Buf) < t.W*2 {
		return 0
	}
	return min((len(t.Buf)-t.W*2)/t.Stride+1, t.H)
}

// Clear paints the first row and copies it down.
func (t *RGB565Target) Clear(c geom.Color) {
	n := t.rows()
	if n <= 0 {
		return
	}
	first := t.Buf[:t.W*2]
	put565(first, RGB565(c))
	for i := 2; i < len(first); i *= 2 {
		copy(first[i:], first[:i])
	}
	for y := 1; y < n; y++ {
		copy(t.Buf[y*t.Stride:], first)
	}
}

func (t *RGB565Target) SetPixel(x, y int, c geom.Color) {
	if off, ok := t.at(x, y); ok {
		put565(t.Buf[off:], RGB565(c))
	}
}

func put565(b []byte, p uint16) {
	b[0] = byte(p)
	b[1] = byte(p >> 8)
}

// RGB565 packs c as rrrrrggggggbbbbb.
func RGB565(c geom.Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Unpack565 expands p back to 8-bit channels, scaling each to the full
// 0..255 range.
func Unpack565(p uint16) (r, g, b uint8) {
	r = uint8(uint32(p>>11&0x1F) * 255 / 31)
	g = uint8(uint32(p>>5&0x3F) * 255 / 63)
	b = uint8(uint32(p&0x1F) * 255 / 31)
	return r, g, b
}

// ImageTarget renders into any draw.Image.
type ImageTarget struct {
	Img draw.Image
}

func (t ImageTarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t ImageTarget) SetPixel(x, y int, c geom.Color) {
	b := t.Img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return
	}
	t.Img.Set(p.X, p.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (t ImageTarget) Clear(c geom.Color) {
	draw.Draw(t.Img, t.Img.Bounds(), image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}), image.Point{}, draw.Src)
}
