package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame of a built-in scene to a file or stdout.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError(
			fmt.Sprintf("Usage: %s <output filename> (<output filename> may be - for stdout)", ctx.App.Name),
			1,
		)
	}
	dest := ctx.Args().First()

	sc, err := setupScene(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	format, err := outputFormat(dest, ctx.String("format"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	opts := sc.Options()
	opts.Workers = ctx.Int("workers")
	r, err := renderer.NewRenderer(sc.Spheres, sc.Camera, opts)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	// Open the sink first so a bad path fails before the render
	sink, err := openOutput(dest, ctx.App.Writer)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Infof("rendering scene %q to %s", sc.Name, dest)
	img, stats := r.Render()

	err = output.Encode(sink, img, format)
	if closeErr := sink.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing %s: %w", dest, closeErr)
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	if ctx.Bool("stats") {
		displayFrameStats(stats)
	}
	logger.Infof("wrote %s frame to %s", format, dest)

	return nil
}

// setupScene loads the selected scene and applies size and bounce overrides
func setupScene(ctx *cli.Context) (*scene.Scene, error) {
	sc, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return nil, err
	}

	width, height := sc.Width, sc.Height
	if w := ctx.Int("width"); w != 0 {
		width = w
	}
	if h := ctx.Int("height"); h != 0 {
		height = h
	}
	sc.Resize(width, height)

	if b := ctx.Int("bounces"); b >= 0 {
		sc.Bounces = b
	}

	return sc, nil
}

// outputFormat picks the explicit format if given, else infers it from dest
func outputFormat(dest, name string) (output.Format, error) {
	if name != "" {
		return output.ParseFormat(name)
	}
	if dest == "-" {
		return output.PPM, nil
	}
	return output.FormatForPath(dest), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openOutput creates dest, or wraps stdout when dest is "-"
func openOutput(dest string, stdout io.Writer) (io.WriteCloser, error) {
	if dest == "-" {
		return nopWriteCloser{stdout}, nil
	}

	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for writing: %w", dest, err)
	}
	return f, nil
}

func displayFrameStats(stats renderer.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "% of frame", "Busy time"})
	for _, ws := range stats.WorkerStats {
		table.Append([]string{
			fmt.Sprintf("%d", ws.ID),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%d", ws.Pixels),
			fmt.Sprintf("%02.1f %%", stats.FramePercent(ws.ID)),
			ws.BusyTime.String(),
		})
	}
	table.SetFooter([]string{"", "", fmt.Sprintf("%d", stats.Pixels), "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics (%dx%d, %d bounces)\n%s", stats.Width, stats.Height, stats.Bounces, buf.String())
}
