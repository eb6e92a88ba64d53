package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene holds everything needed to render a frame
type Scene struct {
	Name    string
	Spheres []geometry.Sphere
	Camera  *renderer.Camera
	Width   int
	Height  int
	Bounces int
}

// Resize changes the frame size and keeps the camera aspect ratio in step
func (s *Scene) Resize(width, height int) {
	s.Width = width
	s.Height = height
	if width > 0 && height > 0 {
		s.Camera.AspectRatio = float64(width) / float64(height)
	}
}

// Options returns renderer options for the scene
func (s *Scene) Options() renderer.Options {
	opts := renderer.DefaultOptions()
	opts.Width = s.Width
	opts.Height = s.Height
	opts.Bounces = s.Bounces
	return opts
}

// builtins maps scene names to constructors
var builtins = map[string]func() *Scene{
	"default":    NewDefaultScene,
	"mirrors":    NewMirrorScene,
	"spheregrid": NewSphereGridScene,
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup creates a fresh copy of a built-in scene
func Lookup(name string) (*Scene, error) {
	create, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return create(), nil
}
