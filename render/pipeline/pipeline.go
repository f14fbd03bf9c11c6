// Package pipeline turns an object-space mesh and a camera snapshot into an
// ordered list of shaded, screen-clipped 2D triangles.
//
// Pipeline (fixed, once per frame):
//
//	world → cull → light → view → near clip → project → viewport →
//	depth sort → screen clip → rasterize.
//
// Visibility is resolved with the painter's algorithm: triangles are sorted
// far to near by the mean Z of their vertices and drawn in that order. There
// is no depth buffer, so intersecting or coplanar faces can show sorting
// artifacts.
package pipeline

import (
	"cmp"
	"slices"

	"painter3d/render/camera"
	"painter3d/render/clip"
	"painter3d/render/geom"
	"painter3d/render/vecmath"
)

// Rasterizer paints one solid 2D triangle.
type Rasterizer interface {
	FillTriangle(x1, y1, x2, y2, x3, y3 float32, c geom.Color)
}

// Outliner is implemented by rasterizers that can also stroke a triangle.
type Outliner interface {
	DrawTriangle(x1, y1, x2, y2, x3, y3 float32, c geom.Color)
}

const (
	// DefaultNearZ is the view-space depth of the near clip plane.
	DefaultNearZ = 0.1
	// MinLight is the ambient floor applied to every lit face.
	MinLight = 0.1
)

// DefaultLight points up and towards the viewer.
var DefaultLight = vecmath.V3(0, 1, -1)

// Stats counts what happened to the mesh during one frame.
type Stats struct {
	Input      int // mesh triangles
	Culled     int // facing away from the camera
	Degenerate int // zero-area faces or vertices at w=0
	NearClip   int // entirely behind the near plane
	Sorted     int // projected triangles entering the depth sort
	Drawn      int // triangles dispatched after screen clipping
}

// Renderer runs the frame pipeline.
//
// The exported fields configure the frame; the zero value is usable. A
// Renderer reuses its internal buffers between frames and is not safe for
// concurrent use. It keeps no camera or mesh state between calls.
type Renderer struct {
	World   vecmath.Mat4 // object to world; zero means identity
	Light   vecmath.Vec3 // towards the light; zero means DefaultLight
	Ramp    geom.Ramp    // nil means geom.Smooth(geom.White)
	NearZ   float32      // zero means DefaultNearZ
	Outline bool
	// OutlineColor strokes each triangle when Outline is set and the
	// rasterizer implements Outliner.
	OutlineColor geom.Color

	sorted []geom.Triangle
	queue  []geom.Triangle
	next   []geom.Triangle
	out    []geom.Triangle
}

// NewRenderer returns a renderer with the identity world transform.
func NewRenderer() *Renderer {
	return &Renderer{
		World:        vecmath.Identity(),
		Light:        DefaultLight,
		Ramp:         geom.Smooth(geom.White),
		NearZ:        DefaultNearZ,
		OutlineColor: geom.Black,
	}
}

// Render builds the frame for mesh seen from cam on a w×h screen and then
// dispatches every surviving triangle to dst, farthest first.
//
// Nothing is dispatched until the whole frame has been built.
func (r *Renderer) Render(mesh geom.Mesh, cam camera.State, w, h int, proj vecmath.Mat4, dst Rasterizer) Stats {
	tris, st := r.Build(mesh, cam, w, h, proj)
	if dst == nil {
		return st
	}
	ol, canOutline := dst.(Outliner)
	for _, t := range tris {
		p := t.P
		dst.FillTriangle(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y, t.Color)
		if r.Outline && canOutline {
			ol.DrawTriangle(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y, r.OutlineColor)
		}
	}
	return st
}

// Build runs every stage except rasterization and returns the draw list in
// paint order. The returned slice is reused by the next call.
func (r *Renderer) Build(mesh geom.Mesh, cam camera.State, w, h int, proj vecmath.Mat4) ([]geom.Triangle, Stats) {
	st := Stats{Input: len(mesh.Tris)}
	if w <= 0 || h <= 0 {
		return nil, st
	}

	world := r.World
	if world == (vecmath.Mat4{}) {
		world = vecmath.Identity()
	}
	light, ok := vecmath.TryNormalize(r.Light)
	if !ok {
		light = vecmath.Normalize(DefaultLight)
	}
	ramp := r.Ramp
	if ramp == nil {
		ramp = geom.Smooth(geom.White)
	}
	nearZ := r.NearZ
	if nearZ <= 0 {
		nearZ = DefaultNearZ
	}
	near := clip.Plane{Point: vecmath.V3(0, 0, nearZ), Normal: vecmath.V3(0, 0, 1)}
	view := cam.View()
	halfW, halfH := float32(w)*0.5, float32(h)*0.5

	r.sorted = r.sorted[:0]
	for _, tri := range mesh.Tris {
		tw := tri.Transform(world)

		normal, ok := tw.Normal()
		if !ok {
			st.Degenerate++
			continue
		}
		ray := tw.P[0].XYZ().Sub(cam.Position)
		if vecmath.Dot(normal, ray) >= 0 {
			st.Culled++
			continue
		}

		dp := max(MinLight, vecmath.Dot(light, normal))
		tv := tw.Transform(view)
		tv.Color = ramp(dp)

		n, clipped := clip.Triangle(near, tv)
		if n == 0 {
			st.NearClip++
			continue
		}
		for i := 0; i < n; i++ {
			sp, ok := project(clipped[i], proj, halfW, halfH)
			if !ok {
				st.Degenerate++
				continue
			}
			r.sorted = append(r.sorted, sp)
		}
	}

	st.Sorted = len(r.sorted)
	sortFarthestFirst(r.sorted)

	r.out = r.clipToScreen(r.out[:0], r.sorted, clip.ScreenEdges(w, h))
	st.Drawn = len(r.out)
	return r.out, st
}

// project maps a view-space triangle to pixel coordinates. It reports false
// if any vertex cannot be divided by its W.
func project(t geom.Triangle, proj vecmath.Mat4, halfW, halfH float32) (geom.Triangle, bool) {
	out := geom.Triangle{Color: t.Color}
	for i, p := range t.P {
		q, ok := vecmath.MulV4(proj, p).PerspectiveDivide()
		if !ok || !q.IsFinite() {
			return geom.Triangle{}, false
		}
		q.X = (q.X + 1) * halfW
		q.Y = (q.Y + 1) * halfH
		out.P[i] = q
	}
	return out, true
}

// sortFarthestFirst orders tris by descending mean Z. Ties keep no
// particular order.
func sortFarthestFirst(tris []geom.Triangle) {
	slices.SortFunc(tris, func(a, b geom.Triangle) int {
		return cmp.Compare(b.AvgZ(), a.AvgZ())
	})
}

// clipToScreen appends to dst the pieces of each triangle that survive all
// edges, preserving the order of tris.
//
// Each edge pass consumes the whole queue and produces the next one, so a
// piece is only tested against the edges after the one that created it.
func (r *Renderer) clipToScreen(dst, tris []geom.Triangle, edges [4]clip.Plane) []geom.Triangle {
	for _, t := range tris {
		queue := append(r.queue[:0], t)
		for _, pl := range edges {
			next := r.next[:0]
			for _, q := range queue {
				next = clip.Append(next, pl, q)
			}
			r.queue, r.next = next, queue
			queue = next
			if len(queue) == 0 {
				break
			}
		}
		dst = append(dst, queue...)
	}
	return dst
}
