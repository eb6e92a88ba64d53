package cmd

import (
	"github.com/urfave/cli"
)

// NewApp builds the command line application
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render spheres with bounce-limited specular reflection"
	app.Version = "0.1.0"
	app.ArgsUsage = "<output filename>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "scene, s",
			Value: "default",
			Usage: "built-in scene to render",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width (0 = scene default)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "frame height (0 = scene default)",
		},
		cli.IntFlag{
			Name:  "bounces",
			Value: -1,
			Usage: "maximum number of reflections per ray (-1 = scene default)",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "number of render workers (0 = number of CPUs)",
		},
		cli.StringFlag{
			Name:  "format, f",
			Usage: "output format: ppm, png, bmp or tiff (default: from file extension, ppm for stdout)",
		},
		cli.BoolFlag{
			Name:  "stats",
			Usage: "log a table of render statistics",
		},
	}
	app.Action = RenderFrame
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
