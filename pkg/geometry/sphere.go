package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Hit is a point where a ray meets a sphere's surface
type Hit struct {
	Position core.Vec3
	Normal   core.UnitVec3 // Outward facing
}

// Intersection is a hit tagged with the index of the sphere that produced
// it. The index is only meaningful for the sphere slice that was searched.
type Intersection struct {
	Hit
	Sphere int
}

// Intersect returns the nearer point where ray enters the sphere. Rays that
// start inside or on the sphere never hit it.
func (s Sphere) Intersect(ray core.Ray) (Hit, bool) {
	// Vector from ray origin to sphere center
	toCenter := s.Center.Subtract(ray.Origin)
	if toCenter.Length() <= s.Radius {
		return Hit{}, false
	}

	// Distance along the ray to the point closest to the center
	tCenter := ray.Direction.Dot(toCenter)
	if tCenter < 0 {
		return Hit{}, false
	}

	// Perpendicular distance from the center to the ray line. Rounding can push
	// the squared distance slightly below zero for rays through the center.
	d := math.Sqrt(max(0, toCenter.LengthSquared()-tCenter*tCenter))
	if d > s.Radius {
		return Hit{}, false
	}

	tDelta := math.Sqrt(s.Radius*s.Radius - d*d)
	point := ray.Advance(tCenter - tDelta).Origin

	return Hit{
		Position: point,
		Normal:   point.Subtract(s.Center).Normalize(),
	}, true
}
