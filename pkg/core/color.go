package core

import "fmt"

// Color holds linear RGB channels in [0, 1]
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func Black() Color { return Color{} }
func White() Color { return Color{1, 1, 1} }
func Red() Color   { return Color{R: 1} }
func Green() Color { return Color{G: 1} }
func Blue() Color  { return Color{B: 1} }

// Add accumulates light; each channel saturates at [0, 1]
func (c Color) Add(other Color) Color {
	return Color{
		R: clamp01(c.R + other.R),
		G: clamp01(c.G + other.G),
		B: clamp01(c.B + other.B),
	}
}

// Scale attenuates the color by factor. Factors outside [0, 1] are a
// programming error and panic rather than being clamped.
func (c Color) Scale(factor float64) Color {
	if !(0 <= factor && factor <= 1) {
		panic(fmt.Sprintf("core: color scale factor %g outside [0, 1]", factor))
	}
	return Color{c.R * factor, c.G * factor, c.B * factor}
}

// RGB8 converts the channels to 8 bits by truncation
func (c Color) RGB8() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("Color{R: %g, G: %g, B: %g}", c.R, c.G, c.B)
}

func channel8(v float64) uint8 {
	return uint8(clamp01(v) * 255)
}

func clamp01(v float64) float64 {
	return max(0.0, min(1.0, v))
}
