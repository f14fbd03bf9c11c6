// Package meshgen builds small procedural meshes used when no OBJ file is
// given. Every face is wound so its normal points out of the solid.
package meshgen

import (
	"fmt"
	"math"

	"painter3d/render/geom"
	"painter3d/render/vecmath"
)

// Shapes lists the names accepted by Named.
var Shapes = []string{"cube", "torus", "triangle"}

// Named returns the built-in mesh called name.
func Named(name string) (geom.Mesh, error) {
	switch name {
	case "cube":
		return Cube(1), nil
	case "torus":
		return Torus(1, 0.4, 24, 12), nil
	case "triangle":
		return Triangle(), nil
	}
	return geom.Mesh{}, fmt.Errorf("unknown shape %q (want one of %v)", name, Shapes)
}

// Cube returns an axis-aligned cube of the given edge length centred on
// the origin.
func Cube(size float32) geom.Mesh {
	h := size / 2
	faces := []struct {
		n    vecmath.Vec3
		quad [4]vecmath.Vec3
	}{
		{vecmath.V3(0, 0, -1), [4]vecmath.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: -h, Z: -h}}},
		{vecmath.V3(0, 0, 1), [4]vecmath.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: -h, Z: h}}},
		{vecmath.V3(1, 0, 0), [4]vecmath.Vec3{{X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}, {X: h, Y: -h, Z: h}}},
		{vecmath.V3(-1, 0, 0), [4]vecmath.Vec3{{X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}, {X: -h, Y: -h, Z: -h}}},
		{vecmath.V3(0, 1, 0), [4]vecmath.Vec3{{X: -h, Y: h, Z: -h}, {X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}}},
		{vecmath.V3(0, -1, 0), [4]vecmath.Vec3{{X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}}},
	}
	tris := make([]geom.Triangle, 0, 12)
	for _, f := range faces {
		q := f.quad
		tris = append(tris,
			outward(geom.Tri(q[0], q[1], q[2], geom.White), f.n),
			outward(geom.Tri(q[0], q[2], q[3], geom.White), f.n),
		)
	}
	return geom.Mesh{Name: "cube", Tris: tris}
}

// Torus returns a ring around the Y axis. major is the distance from the
// centre to the middle of the tube and minor the tube radius.
func Torus(major, minor float32, segU, segV int) geom.Mesh {
	if segU < 3 {
		segU = 3
	}
	if segV < 3 {
		segV = 3
	}

	// at returns the surface point and its outward direction.
	at := func(u, v int) (p, out vecmath.Vec3) {
		theta := 2 * math.Pi * float64(u%segU) / float64(segU)
		phi := 2 * math.Pi * float64(v%segV) / float64(segV)
		ct, st := float32(math.Cos(theta)), float32(math.Sin(theta))
		cp, sp := float32(math.Cos(phi)), float32(math.Sin(phi))
		r := major + minor*cp
		return vecmath.V3(r*ct, minor*sp, r*st), vecmath.V3(cp*ct, sp, cp*st)
	}

	tris := make([]geom.Triangle, 0, segU*segV*2)
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			p0, n0 := at(u, v)
			p1, n1 := at(u+1, v)
			p2, n2 := at(u+1, v+1)
			p3, n3 := at(u, v+1)
			tris = append(tris,
				outward(geom.Tri(p0, p1, p2, geom.White), n0.Add(n1).Add(n2)),
				outward(geom.Tri(p0, p2, p3, geom.White), n0.Add(n2).Add(n3)),
			)
		}
	}
	return geom.Mesh{Name: "torus", Tris: tris}
}

// Triangle returns one unit triangle in the XY plane facing -Z.
func Triangle() geom.Mesh {
	t := geom.Tri(vecmath.V3(0, 0, 0), vecmath.V3(0, 1, 0), vecmath.V3(1, 0, 0), geom.White)
	return geom.Mesh{Name: "triangle", Tris: []geom.Triangle{t}}
}

// outward flips t if its normal points against dir.
func outward(t geom.Triangle, dir vecmath.Vec3) geom.Triangle {
	if n, ok := t.Normal(); ok && vecmath.Dot(n, dir) < 0 {
		return t.Flip()
	}
	return t
}
