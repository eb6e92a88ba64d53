package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Radians is an angle in radians
type Radians float64

// Degrees converts an angle in degrees to Radians
func Degrees(deg float64) Radians {
	return Radians(deg * math.Pi / 180)
}

// Camera generates rays for rendering. Forward and Up must be perpendicular.
type Camera struct {
	Position    core.Vec3
	Forward     core.UnitVec3
	Up          core.UnitVec3
	AspectRatio float64 // width / height
	FovX        Radians // Horizontal field of view
}

// NewCamera creates a camera
func NewCamera(position core.Vec3, forward, up core.UnitVec3, aspectRatio float64, fovX Radians) *Camera {
	return &Camera{
		Position:    position,
		Forward:     forward,
		Up:          up,
		AspectRatio: aspectRatio,
		FovX:        fovX,
	}
}

// LookAt creates a camera at position facing target. The up vector is
// re-derived from worldUp so that it is perpendicular to forward; worldUp
// must not be parallel to the viewing direction.
func LookAt(position, target core.Vec3, worldUp core.UnitVec3, aspectRatio float64, fovX Radians) *Camera {
	forward := target.Subtract(position).Normalize()
	right := forward.Vec3().Cross(worldUp.Vec3()).Normalize()
	up := right.Vec3().Cross(forward.Vec3()).Normalize()

	return NewCamera(position, forward, up, aspectRatio, fovX)
}

// ScreenRay generates a ray through normalized screen coordinates (x, y) where
// (0, 0) is the top-left corner and (1, 1) the bottom-right one. The screen
// lies one unit in front of the camera, centered on the forward axis.
func (c *Camera) ScreenRay(x, y float64) core.Ray {
	if !(0 <= x && x <= 1) || !(0 <= y && y <= 1) {
		panic(fmt.Sprintf("renderer: screen coordinates (%g, %g) outside [0, 1]", x, y))
	}

	right := c.Forward.Vec3().Cross(c.Up.Vec3())

	// Map to [-1, 1]; y is flipped so that up on screen follows the Up vector
	xUnit := 2*x - 1
	yUnit := -(2*y - 1)

	screenWidth := 2 * math.Tan(float64(c.FovX)/2)
	screenHeight := screenWidth / c.AspectRatio

	pointOnScreen := c.Position.
		Add(c.Forward.Vec3()).
		Add(right.Multiply(xUnit * screenWidth / 2)).
		Add(c.Up.Vec3().Multiply(yUnit * screenHeight / 2))

	return core.NewRay(c.Position, pointOnScreen.Subtract(c.Position).Normalize())
}
