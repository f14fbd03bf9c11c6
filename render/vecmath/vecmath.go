// Package vecmath provides the vector and 4x4 homogeneous matrix math used by the
// rendering pipeline.
//
// All functions are pure and return new values. Matrices use the row-vector
// convention: a point is transformed as p × M, so in a product A × B the
// transform A is applied first.
package vecmath

import "math"

// Epsilon is the smallest length treated as non-degenerate.
const Epsilon = 1e-6

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous 4D vector. W is 1 for points and 0 for directions.
type Vec4 struct {
	X, Y, Z, W float32
}

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// P4 returns the point (x, y, z, 1).
func P4(x, y, z float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: 1} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Div(s float32) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Point returns v as a homogeneous point.
func (v Vec3) Point() Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1} }

// Dir returns v as a homogeneous direction.
func (v Vec3) Dir() Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z} }

func Dot(a, b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross follows the right-hand rule.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

// Normalize returns v scaled to unit length.
//
// v must have length greater than Epsilon; use TryNormalize when that is not
// known. A zero vector yields the zero vector rather than NaNs.
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// TryNormalize is Normalize with the length precondition checked.
func TryNormalize(v Vec3) (Vec3, bool) {
	l := Len(v)
	if !(l > Epsilon) {
		return Vec3{}, false
	}
	return v.Mul(1 / l), true
}

func (v Vec4) Add(o Vec4) Vec4    { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }
func (v Vec4) Sub(o Vec4) Vec4    { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }
func (v Vec4) Mul(s float32) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// XYZ drops the homogeneous component.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Lerp interpolates all four components from a (t=0) to b (t=1).
func Lerp(a, b Vec4, t float32) Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

// PerspectiveDivide divides X, Y and Z by W and resets W to 1.
// It reports false when W is too close to zero to divide by.
func (v Vec4) PerspectiveDivide() (Vec4, bool) {
	w := v.W
	if w < Epsilon && w > -Epsilon {
		return Vec4{}, false
	}
	inv := 1 / w
	return Vec4{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv, W: 1}, true
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec4) IsFinite() bool {
	for _, c := range [4]float32{v.X, v.Y, v.Z, v.W} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 { return deg * math.Pi / 180 }
