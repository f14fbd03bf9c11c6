package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"painter3d/render/geom"
)

func newImageCanvas(w, h int) (*Canvas, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return NewCanvas(ImageTarget{Img: img}), img
}

func TestFillTriangleEitherWinding(t *testing.T) {
	green := geom.RGB(0, 0xFF, 0)
	for _, flip := range []bool{false, true} {
		cv, img := newImageCanvas(16, 16)
		cv.Clear(geom.Black)
		if flip {
			cv.FillTriangle(1, 1, 1, 14, 14, 1, green)
		} else {
			cv.FillTriangle(1, 1, 14, 1, 1, 14, green)
		}
		if got := img.RGBAAt(3, 3); got != (color.RGBA{G: 0xFF, A: 0xFF}) {
			t.Errorf("flip=%v: inside pixel = %+v, want green", flip, got)
		}
		if got := img.RGBAAt(13, 13); got != (color.RGBA{A: 0xFF}) {
			t.Errorf("flip=%v: outside pixel = %+v, want black", flip, got)
		}
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	cv, img := newImageCanvas(8, 8)
	cv.FillTriangle(0, 0, 4, 4, 7, 7, geom.White)
	for i := 0; i < len(img.Pix); i++ {
		if img.Pix[i] != 0 {
			t.Fatalf("collinear triangle painted pixels")
		}
	}
}

func TestDrawTriangleOutline(t *testing.T) {
	cv, img := newImageCanvas(10, 10)
	cv.DrawTriangle(0, 0, 9, 0, 0, 9, geom.White)
	for _, p := range []image.Point{{0, 0}, {5, 0}, {9, 0}, {0, 5}, {0, 9}} {
		if got := img.RGBAAt(p.X, p.Y); got.R != 0xFF {
			t.Errorf("outline missing at %v", p)
		}
	}
	if got := img.RGBAAt(2, 2); got.R != 0 {
		t.Errorf("outline filled the interior")
	}
}

func TestRGB565Target(t *testing.T) {
	tg := &RGB565Target{Buf: make([]byte, 4*2*3), Stride: 8, W: 4, H: 3}
	tg.Clear(geom.RGB(0xFF, 0, 0))
	if tg.Buf[0] != 0x00 || tg.Buf[1] != 0xF8 {
		t.Fatalf("clear red = % x, want 00 f8", tg.Buf[:2])
	}
	tg.SetPixel(3, 2, geom.RGB(0, 0, 0xFF))
	if tg.Buf[2*8+6] != 0x1F || tg.Buf[2*8+7] != 0x00 {
		t.Fatalf("blue pixel = % x, want 1f 00", tg.Buf[2*8+6:2*8+8])
	}
	// Out of range writes are ignored.
	tg.SetPixel(-1, 0, geom.White)
	tg.SetPixel(4, 0, geom.White)
	tg.SetPixel(0, 3, geom.White)

}

func TestRGB565TargetPaddedStride(t *testing.T) {
	// Two 3-pixel rows with 4 bytes of padding each; the last row's
	// padding is cut off.
	buf := make([]byte, 10+6)
	for i := range buf {
		buf[i] = 0xAA
	}
	tg := &RGB565Target{Buf: buf, Stride: 10, W: 3, H: 2}
	tg.Clear(geom.Black)

	want := []byte{
		0, 0, 0, 0, 0, 0, 0xAA, 0xAA, 0xAA, 0xAA,
		0, 0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(buf, want); diff != "" {
		t.Fatalf("cleared buffer (-got +want)\n%s", diff)
	}

	tg.SetPixel(2, 1, geom.White)
	if buf[14] != 0xFF || buf[15] != 0xFF {
		t.Fatalf("last pixel = % x, want ff ff", buf[14:])
	}
}

func TestRGB565TargetShortBuffer(t *testing.T) {
	// Room for one and a half rows: only whole pixels are touched.
	buf := make([]byte, 8+3)
	tg := &RGB565Target{Buf: buf, Stride: 8, W: 4, H: 4}
	tg.Clear(geom.White)
	if buf[8] != 0 || buf[9] != 0 {
		t.Fatalf("partial row written: % x", buf)
	}
	tg.SetPixel(0, 1, geom.White)
	tg.SetPixel(1, 1, geom.White)
	if buf[8] != 0xFF || buf[9] != 0xFF || buf[10] != 0 {
		t.Fatalf("row 1 = % x, want ff ff 00", buf[8:])
	}

	var nilTarget *RGB565Target
	nilTarget.Clear(geom.White)
	nilTarget.SetPixel(0, 0, geom.White)
}

func TestRGB565RoundTrip(t *testing.T) {
	cases := []struct {
		c    geom.Color
		want uint16
	}{
		{geom.White, 0xFFFF},
		{geom.RGB(0xFF, 0, 0), 0xF800},
		{geom.RGB(0, 0xFF, 0), 0x07E0},
		{geom.RGB(0, 0, 0xFF), 0x001F},
		{geom.Black, 0},
	}
	for _, tc := range cases {
		p := RGB565(tc.c)
		if p != tc.want {
			t.Errorf("RGB565(%v) = %#04x, want %#04x", tc.c, p, tc.want)
		}
		r, g, b := Unpack565(p)
		if got := geom.RGB(r, g, b); got != tc.c {
			t.Errorf("Unpack565(%#04x) = %v, want %v", p, got, tc.c)
		}
	}
}
