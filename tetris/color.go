package tetris

import "image/color"

// Color is an RGB triple used for locked cells and pieces.
type Color [3]uint8

var (
	// Background marks an empty cell in a rendered view.
	Background = Color{0, 0, 0}
	// GridLine is the color of the uniform grid overlay.
	GridLine = Color{50, 50, 50}
)

var palette = []Color{
	{0, 255, 255},
	{0, 0, 255},
	{255, 165, 0},
	{255, 255, 0},
	{0, 255, 0},
	{128, 0, 128},
	{255, 0, 0},
}

// Palette returns a copy of the colors pieces are painted with.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// ToRGBA converts c into an opaque image/color value.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
