package geometry

import (
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.Red())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectHit      bool
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
	}{
		{
			name:         "pointing away",
			rayOrigin:    core.NewVec3(0, 0, 10),
			rayDirection: core.NewVec3(0, 0, 1),
			expectHit:    false,
		},
		{
			name:           "pointing toward",
			rayOrigin:      core.NewVec3(0, 0, 10),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:         "origin inside sphere",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(1, 0, 0),
			expectHit:    false,
		},
		{
			name:         "origin on surface",
			rayOrigin:    core.NewVec3(1, 0, 0),
			rayDirection: core.NewVec3(-1, 0, 0),
			expectHit:    false,
		},
		{
			name:         "passes beside",
			rayOrigin:    core.NewVec3(2, 0, 10),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    false,
		},
		{
			name:           "off axis",
			rayOrigin:      core.NewVec3(0.6, 0, 10),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0.6, 0, 0.8),
			expectedNormal: core.NewVec3(0.6, 0, 0.8),
		},
		{
			name:           "diagonal",
			rayOrigin:      core.NewVec3(-5, -5, 0),
			rayDirection:   core.NewVec3(1, 1, 0),
			expectHit:      true,
			expectedPoint:  core.NewVec3(-1, -1, 0).Normalize().Vec3(),
			expectedNormal: core.NewVec3(-1, -1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection.Normalize())
			hit, isHit := sphere.Intersect(ray)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t (%v)", tt.expectHit, isHit, hit)
			}
			if !isHit {
				return
			}
			if !hit.Position.AlmostEqual(tt.expectedPoint) {
				t.Errorf("Expected hit point %v, got %v", tt.expectedPoint, hit.Position)
			}
			if !hit.Normal.AlmostEqual(tt.expectedNormal.Normalize()) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_IntersectOffCenter(t *testing.T) {
	sphere := NewSphere(core.NewVec3(10, 0, 0), 2.0, core.Green())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.UnitX())

	hit, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.Position.AlmostEqual(core.NewVec3(8, 0, 0)) {
		t.Errorf("Expected near hit at (8, 0, 0), got %v", hit.Position)
	}
	if !hit.Normal.AlmostEqual(core.UnitX().Negate()) {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal)
	}
}
