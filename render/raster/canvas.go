package raster

import (
	"math"

	"painter3d/render/geom"
)

// Canvas fills and outlines triangles on a Target. Later triangles overwrite
// earlier ones; there is no depth test.
type Canvas struct {
	T Target
}

func NewCanvas(t Target) *Canvas { return &Canvas{T: t} }

// Clear fills the whole target with c.
func (cv *Canvas) Clear(c geom.Color) {
	if cv == nil || cv.T == nil {
		return
	}
	cv.T.Clear(c)
}

// FillTriangle paints the solid triangle (x1,y1) (x2,y2) (x3,y3). Either
// winding is accepted.
func (cv *Canvas) FillTriangle(x1, y1, x2, y2, x3, y3 float32, c geom.Color) {
	if cv == nil || cv.T == nil {
		return
	}
	w, h := cv.T.Size()
	x0i, y0i := round(x1), round(y1)
	x1i, y1i := round(x2), round(y2)
	x2i, y2i := round(x3), round(y3)

	area := edgeFn(x0i, y0i, x1i, y1i, x2i, y2i)
	if area == 0 {
		return
	}
	if area < 0 {
		x1i, y1i, x2i, y2i = x2i, y2i, x1i, y1i
	}

	minX, maxX := min(x0i, x1i, x2i), max(x0i, x1i, x2i)
	minY, maxY := min(y0i, y1i, y2i), max(y0i, y1i, y2i)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1i, y1i, x2i, y2i, x, y)
			w1 := edgeFn(x2i, y2i, x0i, y0i, x, y)
			w2 := edgeFn(x0i, y0i, x1i, y1i, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			cv.T.SetPixel(x, y, c)
		}
	}
}

// DrawTriangle outlines the triangle with 1-pixel lines.
func (cv *Canvas) DrawTriangle(x1, y1, x2, y2, x3, y3 float32, c geom.Color) {
	if cv == nil || cv.T == nil {
		return
	}
	ax, ay := round(x1), round(y1)
	bx, by := round(x2), round(y2)
	cx, cy := round(x3), round(y3)
	cv.drawLine(ax, ay, bx, by, c)
	cv.drawLine(bx, by, cx, cy, c)
	cv.drawLine(cx, cy, ax, ay, c)
}

func (cv *Canvas) drawLine(x0, y0, x1, y1 int, c geom.Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		cv.T.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}
