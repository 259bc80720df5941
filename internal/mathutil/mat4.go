package mathutil

import "math"

// Mat4 is a 4×4 matrix stored row-major. Used for the camera projection.
type Mat4 [16]float64

// Perspective builds a projection matrix for a camera looking down +Z.
// fovDeg is the vertical field of view. Points between near and far
// project to NDC depth in [-1, 1].
func Perspective(fovDeg, aspect, near, far float64) Mat4 {
	t := math.Tan(Deg2Rad(fovDeg) / 2)
	return Mat4{
		1 / (aspect * t), 0, 0, 0,
		0, 1 / t, 0, 0,
		0, 0, (far + near) / (far - near), -2 * far * near / (far - near),
		0, 0, 1, 0,
	}
}

// MulPointW transforms a 3D point (w=1) and returns clip-space
// coordinates plus the w component. The caller divides by w to reach
// normalized device coordinates; w <= 0 means the point is behind the
// camera.
func (m Mat4) MulPointW(v Vec3) (Vec3, float64) {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}, m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
}
