package core

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a fixed-size, row-major grid of colors. It satisfies image.Image
// so that the standard encoders can consume it directly.
type Image struct {
	width, height int
	pixels        []Color
}

// NewImage allocates a black image of the given size
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("core: invalid image size %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// Set stores the color of pixel (x, y). Out-of-range coordinates panic.
func (img *Image) Set(x, y int, c Color) {
	img.pixels[img.offset(x, y)] = c
}

// Get returns the color of pixel (x, y). Out-of-range coordinates panic.
func (img *Image) Get(x, y int) Color {
	return img.pixels[img.offset(x, y)]
}

func (img *Image) offset(x, y int) int {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		panic(fmt.Sprintf("core: pixel (%d, %d) outside %dx%d image", x, y, img.width, img.height))
	}
	return y*img.width + x
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image using the same truncation as the PPM writer
func (img *Image) At(x, y int) color.Color {
	r, g, b := img.Get(x, y).RGB8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
