package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewDefaultScene creates three colored spheres inside a box whose walls,
// floor and ceiling are huge white spheres
func NewDefaultScene() *Scene {
	const wallRadius = 10000.0

	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.Red()),
		geometry.NewSphere(core.NewVec3(-3, 1, -5), 1, core.Green()),
		geometry.NewSphere(core.NewVec3(5, 1, -10), 1, core.Blue()),

		// Floor and ceiling
		geometry.NewSphere(core.NewVec3(0, -wallRadius-5, 0), wallRadius, core.White()),
		geometry.NewSphere(core.NewVec3(0, wallRadius+5, 0), wallRadius, core.White()),
		// Left and right walls
		geometry.NewSphere(core.NewVec3(-wallRadius-10, 0, 0), wallRadius, core.White()),
		geometry.NewSphere(core.NewVec3(wallRadius+10, 0, 0), wallRadius, core.White()),
		// Back wall and the wall behind the camera
		geometry.NewSphere(core.NewVec3(0, 0, -wallRadius-15), wallRadius, core.White()),
		geometry.NewSphere(core.NewVec3(0, 0, wallRadius+5), wallRadius, core.White()),
	}

	camera := renderer.NewCamera(
		core.Zero(),
		core.UnitZ().Negate(),
		core.UnitY(),
		4.0/3.0,
		renderer.Degrees(90),
	)

	return &Scene{
		Name:    "default",
		Spheres: spheres,
		Camera:  camera,
		Width:   800,
		Height:  600,
		Bounces: 3,
	}
}

// NewMirrorScene creates a pair of large spheres reflecting a small one
func NewMirrorScene() *Scene {
	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(-1.6, 0, -6), 1.5, core.NewColor(0.2, 0.2, 0.6)),
		geometry.NewSphere(core.NewVec3(1.6, 0, -6), 1.5, core.NewColor(0.6, 0.2, 0.2)),
		geometry.NewSphere(core.NewVec3(0, 0.4, -3.5), 0.4, core.NewColor(0.9, 0.9, 0.2)),
		geometry.NewSphere(core.NewVec3(0, -1001.5, -6), 1000, core.NewColor(0.3, 0.3, 0.3)),
	}

	camera := renderer.NewCamera(
		core.NewVec3(0, 0.5, 0),
		core.UnitZ().Negate(),
		core.UnitY(),
		16.0/9.0,
		renderer.Degrees(70),
	)

	return &Scene{
		Name:    "mirrors",
		Spheres: spheres,
		Camera:  camera,
		Width:   640,
		Height:  360,
		Bounces: 5,
	}
}
