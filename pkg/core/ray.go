package core

// Ray represents a half-line with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction UnitVec3
}

// NewRay creates a new ray
func NewRay(origin Vec3, direction UnitVec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.v.Multiply(t))
}

// Advance returns a ray moved forward by distance along its direction
func (r Ray) Advance(distance float64) Ray {
	return Ray{Origin: r.At(distance), Direction: r.Direction}
}

// ReflectAt returns the bounce of r off a surface at point with the given normal
func (r Ray) ReflectAt(point Vec3, normal UnitVec3) Ray {
	return Ray{Origin: point, Direction: r.Direction.Reflect(normal)}
}
