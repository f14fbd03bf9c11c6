// Package geom holds the passive geometry passed between pipeline stages.
package geom

import "painter3d/render/vecmath"

// Triangle is three vertices in winding order plus one face color.
//
// Pipeline stages never modify a triangle; they produce new ones.
type Triangle struct {
	P     [3]vecmath.Vec4
	Color Color
}

// Tri builds a triangle from three points with W=1.
func Tri(a, b, c vecmath.Vec3, col Color) Triangle {
	return Triangle{P: [3]vecmath.Vec4{a.Point(), b.Point(), c.Point()}, Color: col}
}

// Transform returns t with every vertex multiplied by m.
func (t Triangle) Transform(m vecmath.Mat4) Triangle {
	return Triangle{
		P: [3]vecmath.Vec4{
			vecmath.MulV4(m, t.P[0]),
			vecmath.MulV4(m, t.P[1]),
			vecmath.MulV4(m, t.P[2]),
		},
		Color: t.Color,
	}
}

// Normal returns the unit face normal (edge01 × edge02). ok is false when
// the triangle is degenerate and has no defined normal.
func (t Triangle) Normal() (n vecmath.Vec3, ok bool) {
	a := t.P[0].XYZ()
	line1 := t.P[1].XYZ().Sub(a)
	line2 := t.P[2].XYZ().Sub(a)
	return vecmath.TryNormalize(vecmath.Cross(line1, line2))
}

// AvgZ is the mean Z of the three vertices.
func (t Triangle) AvgZ() float32 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// Flip reverses the winding order.
func (t Triangle) Flip() Triangle {
	t.P[1], t.P[2] = t.P[2], t.P[1]
	return t
}

// Mesh is an ordered list of object-space triangles. It is not modified
// after loading.
type Mesh struct {
	Name string
	Tris []Triangle
}

// Len returns the triangle count.
func (m Mesh) Len() int { return len(m.Tris) }

// Bounds returns the axis-aligned bounding box of all vertices.
func (m Mesh) Bounds() (lo, hi vecmath.Vec3) {
	if len(m.Tris) == 0 {
		return
	}
	lo = m.Tris[0].P[0].XYZ()
	hi = lo
	for _, t := range m.Tris {
		for _, p := range t.P {
			lo = vecmath.V3(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
			hi = vecmath.V3(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
		}
	}
	return lo, hi
}
