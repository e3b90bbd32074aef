package geom

import "math"

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Apply returns m * v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return out
}

// EulerRotation returns the rotation matrix for Euler angles in degrees,
// applied in the order Rz * Ry * Rx (the kernel's rotation convention).
func EulerRotation(xDeg, yDeg, zDeg float64) Mat3 {
	rx := xDeg * math.Pi / 180
	ry := yDeg * math.Pi / 180
	rz := zDeg * math.Pi / 180

	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	mx := Mat3{{1, 0, 0}, {0, cx, -sx}, {0, sx, cx}}
	my := Mat3{{cy, 0, sy}, {0, 1, 0}, {-sy, 0, cy}}
	mz := Mat3{{cz, -sz, 0}, {sz, cz, 0}, {0, 0, 1}}

	return mz.Mul(my).Mul(mx)
}

// FrameEuler decomposes the right-handed orthonormal basis (u, v, n) into
// Euler angles (radians) such that Rz(rz) * Ry(ry) * Rx(rx) maps the world
// axes X, Y, Z onto u, v, n respectively.
func FrameEuler(u, v, n Vec3) (rx, ry, rz float64) {
	// The basis vectors are the columns of the rotation matrix:
	// u = (cz*cy, sz*cy, -sy).
	s := -u.Z
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	ry = math.Asin(s)

	if math.Abs(u.Z) > 1-1e-9 {
		// Gimbal case: u points along +-Z, fold everything into rx.
		rz = 0
		rx = math.Atan2(s*v.X, v.Y)
		return rx, ry, rz
	}

	rz = math.Atan2(u.Y, u.X)
	rx = math.Atan2(v.Z, n.Z)
	return rx, ry, rz
}
