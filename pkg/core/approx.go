package core

import "math"

// DefaultEpsilon is the tolerance used by the AlmostEqual helpers
const DefaultEpsilon = 1e-7

// AlmostEqual reports whether a and b differ by less than DefaultEpsilon
func AlmostEqual(a, b float64) bool {
	return AlmostEqualWithEpsilon(a, b, DefaultEpsilon)
}

// AlmostEqualWithEpsilon reports whether a and b differ by less than epsilon
func AlmostEqualWithEpsilon(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// AlmostEqual compares component-wise with DefaultEpsilon
func (v Vec3) AlmostEqual(other Vec3) bool {
	return v.AlmostEqualWithEpsilon(other, DefaultEpsilon)
}

// AlmostEqualWithEpsilon compares component-wise with the given tolerance
func (v Vec3) AlmostEqualWithEpsilon(other Vec3, epsilon float64) bool {
	return AlmostEqualWithEpsilon(v.X, other.X, epsilon) &&
		AlmostEqualWithEpsilon(v.Y, other.Y, epsilon) &&
		AlmostEqualWithEpsilon(v.Z, other.Z, epsilon)
}

func (u UnitVec3) AlmostEqual(other UnitVec3) bool {
	return u.v.AlmostEqual(other.v)
}

func (r Ray) AlmostEqual(other Ray) bool {
	return r.Origin.AlmostEqual(other.Origin) && r.Direction.AlmostEqual(other.Direction)
}

func (c Color) AlmostEqual(other Color) bool {
	return AlmostEqual(c.R, other.R) && AlmostEqual(c.G, other.G) && AlmostEqual(c.B, other.B)
}
