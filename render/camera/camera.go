// Package camera derives the per-frame world, view and projection matrices
// from a camera snapshot.
package camera

import (
	"math"

	"painter3d/render/vecmath"
)

var (
	// Forward is the look direction at yaw 0.
	Forward = vecmath.V3(0, 0, 1)
	// WorldUp is fixed; the camera never rolls.
	WorldUp = vecmath.V3(0, 1, 0)
)

// State is the camera as read once per tick. It is a value: the pipeline
// builds fresh matrices from it every frame and keeps nothing.
type State struct {
	Position vecmath.Vec3
	Yaw      float32 // radians, rotation about +Y
}

// LookDir returns the unit look direction for s.Yaw.
func (s State) LookDir() vecmath.Vec3 {
	return vecmath.MulV4(vecmath.RotateY(s.Yaw), Forward.Dir()).XYZ()
}

// Transforms are the camera matrices for one frame.
type Transforms struct {
	PointAt vecmath.Mat4 // camera to world
	View    vecmath.Mat4 // world to camera
}

// Transforms builds the point-at matrix for s and its rigid inverse.
func (s State) Transforms() Transforms {
	target := s.Position.Add(s.LookDir())
	pa := vecmath.PointAt(s.Position, target, WorldUp)
	return Transforms{
		PointAt: pa,
		View:    vecmath.QuickInverse(pa),
	}
}

// View returns the world-to-camera matrix for s.
func (s State) View() vecmath.Mat4 { return s.Transforms().View }

// World places the mesh: rotation about Z, then about X, then translation.
type World struct {
	RotZ   float32
	RotX   float32
	Offset vecmath.Vec3
}

// DefaultWorld turns the mesh upright for the screen's downward Y and pushes
// it 5 units in front of the origin.
func DefaultWorld() World {
	return World{RotZ: math.Pi, Offset: vecmath.V3(0, 0, 5)}
}

func (w World) Matrix() vecmath.Mat4 {
	m := vecmath.Mul(vecmath.RotateZ(w.RotZ), vecmath.RotateX(w.RotX))
	return vecmath.Mul(m, vecmath.Translate(w.Offset))
}

// Lens describes the perspective projection.
type Lens struct {
	FOVDeg float32
	Near   float32
	Far    float32
}

func DefaultLens() Lens {
	return Lens{FOVDeg: 90, Near: 0.1, Far: 1000}
}

// Projection returns the projection matrix for a w×h screen.
func (l Lens) Projection(w, h int) vecmath.Mat4 {
	d := DefaultLens()
	if l.FOVDeg <= 0 || l.FOVDeg >= 180 {
		l.FOVDeg = d.FOVDeg
	}
	if l.Near <= 0 {
		l.Near = d.Near
	}
	if l.Far <= l.Near {
		l.Far = d.Far
	}
	aspect := float32(1)
	if w > 0 && h > 0 {
		aspect = float32(h) / float32(w)
	}
	return vecmath.Perspective(l.FOVDeg, aspect, l.Near, l.Far)
}
