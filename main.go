package main

import (
	"os"

	"github.com/df07/go-sphere-raytracer/cmd"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
