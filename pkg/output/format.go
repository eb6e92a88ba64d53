package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

var ErrUnknownFormat = errors.New("output: unknown image format")

// Format identifies an image file format
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{PPM, PNG, BMP, TIFF}
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "ppm":
		return PPM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatForPath infers the format from a file extension, defaulting to PPM
func FormatForPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return PPM
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *core.Image, format Format) error {
	if format == PPM {
		return WritePPM(w, img)
	}

	bw := bufio.NewWriter(w)
	var err error
	switch format {
	case PNG:
		err = png.Encode(bw, img)
	case BMP:
		err = bmp.Encode(bw, img)
	case TIFF:
		err = tiff.Encode(bw, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("output: encoding %s: %w", format, err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: flushing %s: %w", format, err)
	}
	return nil
}
