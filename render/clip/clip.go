// Package clip cuts triangles against half-spaces.
//
// The same routine serves the near plane in view space and the four screen
// edges in pixel space; it only sees a point, a normal and three vertices.
package clip

import (
	"painter3d/render/geom"
	"painter3d/render/vecmath"
)

// Plane is the half-space of points p with Dot(Normal, p-Point) >= 0.
type Plane struct {
	Point  vecmath.Vec3
	Normal vecmath.Vec3
}

// NewPlane normalizes n. n must not be the zero vector.
func NewPlane(p, n vecmath.Vec3) Plane {
	return Plane{Point: p, Normal: vecmath.Normalize(n)}
}

// Dist is the signed distance of v from the plane.
func (pl Plane) Dist(v vecmath.Vec4) float32 {
	return vecmath.Dot(pl.Normal, v.XYZ().Sub(pl.Point))
}

// intersect returns the point where the edge in→out crosses the plane.
func intersect(in, out vecmath.Vec4, dIn, dOut float32) vecmath.Vec4 {
	t := dIn / (dIn - dOut)
	return vecmath.Lerp(in, out, t)
}

// Triangle clips t against pl and returns how many of out are valid.
//
// n is 0 when t lies entirely behind the plane, 1 when it is entirely in
// front (out[0] == t) or one vertex is in front, and 2 when two vertices are
// in front and the remaining quad is split. Output triangles keep the
// winding of t and its color.
func Triangle(pl Plane, t geom.Triangle) (n int, out [2]geom.Triangle) {
	var d [3]float32
	inside := 0
	for i, p := range t.P {
		d[i] = pl.Dist(p)
		if d[i] >= 0 {
			inside++
		}
	}

	switch inside {
	case 0:
		return 0, out
	case 3:
		out[0] = t
		return 1, out
	}

	// Rotate so that the odd vertex out is first. The cyclic order, and so
	// the winding, is unchanged.
	odd := 0
	for i := 0; i < 3; i++ {
		if (d[i] >= 0) == (inside == 1) {
			odd = i
			break
		}
	}
	i0, i1, i2 := odd, (odd+1)%3, (odd+2)%3
	a, b, c := t.P[i0], t.P[i1], t.P[i2]
	da, db, dc := d[i0], d[i1], d[i2]

	if inside == 1 {
		// a is the only vertex in front.
		ab := intersect(a, b, da, db)
		ac := intersect(a, c, da, dc)
		out[0] = geom.Triangle{P: [3]vecmath.Vec4{a, ab, ac}, Color: t.Color}
		return 1, out
	}

	// a is the only vertex behind; b and c remain with the two crossings.
	ab := intersect(b, a, db, da)
	ca := intersect(c, a, dc, da)
	out[0] = geom.Triangle{P: [3]vecmath.Vec4{ab, b, c}, Color: t.Color}
	out[1] = geom.Triangle{P: [3]vecmath.Vec4{ab, c, ca}, Color: t.Color}
	return 2, out
}

// Append clips t against pl and appends the surviving triangles to dst.
func Append(dst []geom.Triangle, pl Plane, t geom.Triangle) []geom.Triangle {
	n, out := Triangle(pl, t)
	return append(dst, out[:n]...)
}

// ScreenEdges returns the top, bottom, left and right planes of a w×h pixel
// area, in that order.
func ScreenEdges(w, h int) [4]Plane {
	fw, fh := float32(w-1), float32(h-1)
	return [4]Plane{
		{Point: vecmath.V3(0, 0, 0), Normal: vecmath.V3(0, 1, 0)},
		{Point: vecmath.V3(0, fh, 0), Normal: vecmath.V3(0, -1, 0)},
		{Point: vecmath.V3(0, 0, 0), Normal: vecmath.V3(1, 0, 0)},
		{Point: vecmath.V3(fw, 0, 0), Normal: vecmath.V3(-1, 0, 0)},
	}
}
