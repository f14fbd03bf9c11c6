package geom

import (
	"testing"

	"painter3d/render/vecmath"
)

func TestMulScalar(t *testing.T) {
	c := RGB(200, 100, 50)
	if got := c.MulScalar(1); got != c {
		t.Fatalf("MulScalar(1) = %+v, want %+v", got, c)
	}
	if got := c.MulScalar(0); got != RGB(0, 0, 0) {
		t.Fatalf("MulScalar(0) = %+v, want black", got)
	}
	if got := c.MulScalar(2); got != c {
		t.Fatalf("MulScalar(2) = %+v, want clamp to %+v", got, c)
	}
	if got := RGBA(10, 10, 10, 7).MulScalar(0.5); got.A != 7 {
		t.Fatalf("alpha changed: %d", got.A)
	}
}

func TestBandedRampSteps(t *testing.T) {
	r := Banded(White, 3)
	cases := []struct {
		in   float32
		want uint8
	}{
		{0, 0},
		{0.2, 0},
		{0.3, 127},
		{0.5, 127},
		{0.8, 255},
		{1.5, 255},
	}
	for _, tc := range cases {
		if got := r(tc.in).R; got != tc.want {
			t.Errorf("Banded(%v).R = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := Tri(vecmath.V3(0, 0, 0), vecmath.V3(1, 0, 0), vecmath.V3(0, 1, 0), White)
	n, ok := tri.Normal()
	if !ok || n != vecmath.V3(0, 0, 1) {
		t.Fatalf("Normal() = %+v, %v; want +Z", n, ok)
	}
	n, ok = tri.Flip().Normal()
	if !ok || n != vecmath.V3(0, 0, -1) {
		t.Fatalf("flipped Normal() = %+v, %v; want -Z", n, ok)
	}

	line := Tri(vecmath.V3(0, 0, 0), vecmath.V3(1, 1, 1), vecmath.V3(2, 2, 2), White)
	if _, ok := line.Normal(); ok {
		t.Fatalf("collinear triangle has a normal")
	}
}

func TestAvgZAndBounds(t *testing.T) {
	tri := Tri(vecmath.V3(0, 0, 1), vecmath.V3(4, 0, 2), vecmath.V3(0, -3, 6), White)
	if got := tri.AvgZ(); got != 3 {
		t.Fatalf("AvgZ() = %v, want 3", got)
	}
	lo, hi := Mesh{Tris: []Triangle{tri}}.Bounds()
	if lo != vecmath.V3(0, -3, 1) || hi != vecmath.V3(4, 0, 6) {
		t.Fatalf("Bounds() = %+v %+v", lo, hi)
	}
}
