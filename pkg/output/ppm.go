package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// WritePPM writes img as a plain-text P3 pixmap: a three line header followed
// by one line per image row holding "R G B " triplets, channels truncated to
// [0, 255]. Output is flushed before returning and the first write error is
// returned.
func WritePPM(w io.Writer, img *core.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("output: writing ppm header: %w", err)
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := img.Get(x, y).RGB8()
			if _, err := fmt.Fprintf(bw, "%d %d %d ", r, g, b); err != nil {
				return fmt.Errorf("output: writing ppm row %d: %w", y, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("output: writing ppm row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: flushing ppm: %w", err)
	}
	return nil
}
