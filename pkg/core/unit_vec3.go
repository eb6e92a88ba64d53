package core

// UnitVec3 is a direction of length 1. The zero value is not a valid unit
// vector; obtain one from Vec3.Normalize or the axis constructors.
type UnitVec3 struct {
	v Vec3
}

// UnitX returns the +x axis
func UnitX() UnitVec3 {
	return UnitVec3{Vec3{X: 1}}
}

// UnitY returns the +y axis
func UnitY() UnitVec3 {
	return UnitVec3{Vec3{Y: 1}}
}

// UnitZ returns the +z axis
func UnitZ() UnitVec3 {
	return UnitVec3{Vec3{Z: 1}}
}

// Vec3 returns the direction as a plain vector
func (u UnitVec3) Vec3() Vec3 {
	return u.v
}

// Dot returns the dot product with an arbitrary vector
func (u UnitVec3) Dot(other Vec3) float64 {
	return u.v.Dot(other)
}

// Negate returns the opposite direction
func (u UnitVec3) Negate() UnitVec3 {
	return UnitVec3{u.v.Negate()}
}

// Reflect mirrors the direction against a surface normal: R = I - 2(I.N)N.
// Both vectors are unit length, so the result is too.
func (u UnitVec3) Reflect(normal UnitVec3) UnitVec3 {
	n := normal.v
	return UnitVec3{u.v.Subtract(n.Multiply(2 * u.v.Dot(n)))}
}
