package vecmath

import "math"

// Mat4 is a 4x4 matrix indexed m[row][col].
//
// Points are row vectors multiplied on the left, so the translation lives in
// row 3.
type Mat4 [4][4]float32

func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns a × b: the transform a followed by b.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return out
}

// MulV4 transforms v by m.
func MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// MulV3 transforms the point v by m and drops W.
func MulV3(m Mat4, v Vec3) Vec3 {
	return MulV4(m, v.Point()).XYZ()
}

func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
	return m
}

func RotateX(rad float32) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func RotateY(rad float32) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func RotateZ(rad float32) Mat4 {
	s, c := sincos(rad)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Perspective builds a left-handed projection that maps view-space Z in
// [zNear, zFar] to [0, 1] after the divide by W (which carries view Z).
// aspect is height/width.
func Perspective(fovDeg, aspect, zNear, zFar float32) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := float32(1 / math.Tan(float64(Radians(fovDeg))/2))
	depth := zFar - zNear
	if depth == 0 {
		depth = 1
	}
	var m Mat4
	m[0][0] = aspect * f
	m[1][1] = f
	m[2][2] = zFar / depth
	m[3][2] = -zFar * zNear / depth
	m[2][3] = 1
	return m
}

// PointAt builds the matrix that places an object at pos facing target.
// Rows 0..2 hold the right, up and forward axes, row 3 the position.
func PointAt(pos, target, up Vec3) Mat4 {
	forward := Normalize(target.Sub(pos))
	newUp := Normalize(up.Sub(forward.Mul(Dot(up, forward))))
	right := Cross(newUp, forward)
	return Mat4{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}
}

// QuickInverse inverts a rigid transform (orthonormal rotation plus
// translation) by transposing the rotation and back-projecting the
// translation. It is wrong for any matrix with scale, shear or projection.
func QuickInverse(m Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[c][r]
		}
	}
	for c := 0; c < 3; c++ {
		out[3][c] = -(m[3][0]*out[0][c] + m[3][1]*out[1][c] + m[3][2]*out[2][c])
	}
	out[3][3] = 1
	return out
}

func sincos(rad float32) (s, c float32) {
	s64, c64 := math.Sincos(float64(rad))
	return float32(s64), float32(c64)
}
