package renderer

import (
	"errors"
	"image"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

func createTestSpheres() []geometry.Sphere {
	return []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.Red()),
		geometry.NewSphere(core.NewVec3(-3, 1, -5), 1, core.Green()),
		geometry.NewSphere(core.NewVec3(5, 1, -10), 1, core.Blue()),
		geometry.NewSphere(core.NewVec3(0, -10005, 0), 10000, core.White()),
		geometry.NewSphere(core.NewVec3(0, 0, -10015), 10000, core.White()),
	}
}

func TestRender_CenterPixel(t *testing.T) {
	spheres := []geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.Red())}
	img := Render(spheres, newTestCamera(1.0), 3, 3, 0)

	if img.Width() != 3 || img.Height() != 3 {
		t.Fatalf("Expected 3x3 image, got %dx%d", img.Width(), img.Height())
	}
	if c := img.Get(1, 1); !c.AlmostEqual(core.Red()) {
		t.Errorf("Expected red center pixel, got %v", c)
	}
	for _, p := range []image.Point{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		if c := img.Get(p.X, p.Y); c != core.Black() {
			t.Errorf("Expected black corner %v, got %v", p, c)
		}
	}
}

func TestRender_SinglePixelLooksForward(t *testing.T) {
	spheres := []geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.Green())}
	img := Render(spheres, newTestCamera(1.0), 1, 1, 2)

	if c := img.Get(0, 0); !c.AlmostEqual(core.Green()) {
		t.Errorf("Expected green, got %v", c)
	}
}

func TestRender_VerticalOrientation(t *testing.T) {
	// A sphere above the view axis must land in the top row
	spheres := []geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 4, -4), 1, core.White())}
	img := Render(spheres, newTestCamera(1.0), 3, 3, 0)

	if img.Get(1, 0) == core.Black() {
		t.Error("Expected top middle pixel to see the sphere")
	}
	if img.Get(1, 2) != core.Black() {
		t.Errorf("Expected bottom middle pixel to be black, got %v", img.Get(1, 2))
	}
}

func TestRenderer_MatchesSequentialRender(t *testing.T) {
	spheres := createTestSpheres()
	camera := newTestCamera(4.0 / 3.0)
	expected := Render(spheres, camera, 40, 30, 3)

	tests := []struct {
		name     string
		workers  int
		tileSize int
	}{
		{"single worker", 1, 8},
		{"many workers small tiles", 8, 3},
		{"tile larger than frame", 4, 64},
		{"cpu count", 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(spheres, camera, Options{
				Width: 40, Height: 30, Bounces: 3, Workers: tt.workers, TileSize: tt.tileSize,
			})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			img, stats := r.Render()
			for y := 0; y < 30; y++ {
				for x := 0; x < 40; x++ {
					if img.Get(x, y) != expected.Get(x, y) {
						t.Fatalf("Pixel (%d, %d): expected %v, got %v", x, y, expected.Get(x, y), img.Get(x, y))
					}
				}
			}

			if stats.Pixels != 40*30 {
				t.Errorf("Expected %d pixels in stats, got %d", 40*30, stats.Pixels)
			}
			tiles, pixels := 0, 0
			for _, ws := range stats.WorkerStats {
				tiles += ws.Tiles
				pixels += ws.Pixels
			}
			if tiles != stats.Tiles || pixels != stats.Pixels {
				t.Errorf("Worker stats (%d tiles, %d pixels) don't add up to frame (%d tiles, %d pixels)",
					tiles, pixels, stats.Tiles, stats.Pixels)
			}
		})
	}
}

func TestNewRenderer_InvalidOptions(t *testing.T) {
	camera := newTestCamera(1.0)

	tests := []struct {
		name     string
		opts     Options
		expected error
	}{
		{"zero width", Options{Width: 0, Height: 10, TileSize: 8}, ErrInvalidDimensions},
		{"negative height", Options{Width: 10, Height: -1, TileSize: 8}, ErrInvalidDimensions},
		{"negative bounces", Options{Width: 10, Height: 10, Bounces: -1, TileSize: 8}, ErrInvalidBounces},
		{"zero tile size", Options{Width: 10, Height: 10}, ErrInvalidTileSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRenderer(nil, camera, tt.opts)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if r != nil {
				t.Errorf("Expected nil renderer on error")
			}
		})
	}

	if _, err := NewRenderer(nil, nil, DefaultOptions()); !errors.Is(err, ErrCameraNotDefined) {
		t.Errorf("Expected %v, got %v", ErrCameraNotDefined, err)
	}
}

func TestOptions_NumWorkers(t *testing.T) {
	if n := (Options{Workers: 8}).numWorkers(3); n != 3 {
		t.Errorf("Expected workers capped at tile count 3, got %d", n)
	}
	if n := (Options{Workers: 2}).numWorkers(10); n != 2 {
		t.Errorf("Expected 2 workers, got %d", n)
	}
	if n := (Options{}).numWorkers(1000); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}

func TestScreenCoord(t *testing.T) {
	tests := []struct {
		i, n     int
		expected float64
	}{
		{0, 1, 0.5},
		{0, 5, 0},
		{4, 5, 1},
		{2, 5, 0.5},
	}

	for _, tt := range tests {
		if got := screenCoord(tt.i, tt.n); got != tt.expected {
			t.Errorf("screenCoord(%d, %d): expected %f, got %f", tt.i, tt.n, tt.expected, got)
		}
	}
}
