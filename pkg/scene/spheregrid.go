package scene

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	lms := [3]float64{
		l + 0.3963377774*a + 0.2158037573*b,
		l - 0.1055613458*a - 0.0638541728*b,
		l - 0.0894841775*a - 1.2914855480*b,
	}
	for i, v := range lms {
		lms[i] = v * v * v
	}

	// LMS to linear RGB, clamped to the displayable range
	return core.NewColor(
		clampChannel(+4.0767416621*lms[0]-3.3077115913*lms[1]+0.2309699292*lms[2]),
		clampChannel(-1.2684380046*lms[0]+2.6097574011*lms[1]-0.3413193965*lms[2]),
		clampChannel(-0.0041960863*lms[0]-0.7034186147*lms[1]+1.7076147010*lms[2]),
	)
}

func clampChannel(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// NewSphereGridScene creates a grid of mirrored spheres resting on a huge
// ground sphere. Hue varies along x and chroma along z.
func NewSphereGridScene() *Scene {
	const (
		gridSize     = 10
		targetArea   = 9.0
		groundRadius = 10000.0
	)

	spacing := targetArea / float64(gridSize-1)
	sphereRadius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(4.5, -groundRadius, 4.5), groundRadius, core.NewColor(0.25, 0.25, 0.25)),
	}

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			spheres = append(spheres, geometry.NewSphere(
				core.NewVec3(x, sphereRadius, z),
				sphereRadius,
				oklchToRGB(lightness, chroma, hue),
			))
		}
	}

	camera := renderer.LookAt(
		core.NewVec3(4.5, 6, 18),
		core.NewVec3(4.5, 0.8, 4.5),
		core.UnitY(),
		16.0/9.0,
		renderer.Degrees(60),
	)

	return &Scene{
		Name:    "spheregrid",
		Spheres: spheres,
		Camera:  camera,
		Width:   800,
		Height:  450,
		Bounces: 4,
	}
}
