package cmd

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// List the built-in scenes and their default settings.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	for _, name := range scene.Names() {
		sc, err := scene.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%-10s %dx%d, %d spheres, %d bounces\n",
			name, sc.Width, sc.Height, len(sc.Spheres), sc.Bounces)
	}

	return nil
}
