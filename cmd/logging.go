package cmd

import (
	"github.com/df07/go-sphere-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") || ctx.Bool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") || ctx.Bool("vv") {
		log.SetLevel(log.Debug)
	}
}
