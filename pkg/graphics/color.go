package graphics

// Color represents a 32-bit ARGB color.
type Color struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// RGB creates an opaque color from red, green, blue components.
func RGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// ARGB creates a color from alpha, red, green, blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// IsTransparent returns true if the color is fully transparent.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// Paint describes how shapes and text are drawn.
type Paint struct {
	Color Color
}
