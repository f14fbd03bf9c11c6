package meshgen

import (
	"testing"

	"painter3d/render/vecmath"
)

func TestNamed(t *testing.T) {
	for _, name := range Shapes {
		m, err := Named(name)
		if err != nil {
			t.Fatalf("Named(%q): %v", name, err)
		}
		if m.Len() == 0 || m.Name != name {
			t.Fatalf("Named(%q) = %d triangles named %q", name, m.Len(), m.Name)
		}
	}
	if _, err := Named("teapot"); err == nil {
		t.Fatalf("Named(teapot) succeeded")
	}
}

func TestClosedMeshesFaceOutward(t *testing.T) {
	cases := []struct {
		name string
		tris int
		// centre of the solid material closest to a triangle
		core func(c vecmath.Vec3) vecmath.Vec3
	}{
		{"cube", 12, func(vecmath.Vec3) vecmath.Vec3 { return vecmath.Vec3{} }},
		{"torus", 24 * 12 * 2, func(c vecmath.Vec3) vecmath.Vec3 {
			return vecmath.Normalize(vecmath.V3(c.X, 0, c.Z)) // major radius 1
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := Named(tc.name)
			if m.Len() != tc.tris {
				t.Fatalf("got %d triangles, want %d", m.Len(), tc.tris)
			}
			for i, tr := range m.Tris {
				n, ok := tr.Normal()
				if !ok {
					t.Fatalf("triangle %d is degenerate", i)
				}
				c := tr.P[0].XYZ().Add(tr.P[1].XYZ()).Add(tr.P[2].XYZ()).Div(3)
				if vecmath.Dot(n, c.Sub(tc.core(c))) <= 0 {
					t.Fatalf("triangle %d normal %+v points inward", i, n)
				}
			}
		})
	}
}

func TestCubeBounds(t *testing.T) {
	lo, hi := Cube(2).Bounds()
	if lo != vecmath.V3(-1, -1, -1) || hi != vecmath.V3(1, 1, 1) {
		t.Fatalf("bounds = %v %v", lo, hi)
	}
}
