package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Tracer resolves the color seen along a ray. It only reads the sphere
// slice, so a single Tracer may be shared between goroutines.
type Tracer struct {
	spheres []geometry.Sphere
}

// NewTracer creates a tracer for the given spheres
func NewTracer(spheres []geometry.Sphere) *Tracer {
	return &Tracer{spheres: spheres}
}

// Spheres returns the scene the tracer searches
func (t *Tracer) Spheres() []geometry.Sphere {
	return t.spheres
}

// ClosestIntersection checks every sphere and keeps the hit nearest to the
// ray origin. On equal distances the earlier sphere wins.
func (t *Tracer) ClosestIntersection(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	closestDistance := math.MaxFloat64
	hitAnything := false

	for i, sphere := range t.spheres {
		hit, isHit := sphere.Intersect(ray)
		if !isHit {
			continue
		}
		distance := hit.Position.Subtract(ray.Origin).Length()
		if distance < closestDistance {
			closestDistance = distance
			closest = geometry.Intersection{Hit: hit, Sphere: i}
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Trace returns the color for ray, following at most bounces specular
// reflections. Rays that escape the scene are black.
func (t *Tracer) Trace(ray core.Ray, bounces int) core.Color {
	hit, isHit := t.ClosestIntersection(ray)
	if !isHit {
		return core.Black()
	}

	color := t.spheres[hit.Sphere].Color
	if bounces > 0 {
		color = color.Add(t.Trace(ray.ReflectAt(hit.Position, hit.Normal), bounces-1))
	}

	return color.Scale(brightness(ray, hit.Normal))
}

// brightnessSlack absorbs rounding in the normal and direction. Anything
// further outside [0, 1] is left for Color.Scale to reject.
const brightnessSlack = 1e-9

// brightness is the cosine between the surface normal and the reversed ray.
// A hit found from outside a sphere faces the ray, so it lies in [0, 1] up to
// rounding error.
func brightness(ray core.Ray, normal core.UnitVec3) float64 {
	b := normal.Dot(ray.Direction.Negate().Vec3())
	switch {
	case b > 1 && b < 1+brightnessSlack:
		return 1
	case b < 0 && b > -brightnessSlack:
		return 0
	}
	return b
}
