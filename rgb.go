package chroma

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Rgb represents a gamma-companded sRGB color with components nominally in
// [0, 1]. sRGB is defined relative to the D65 illuminant; the white point
// is fixed by the standard and therefore not stored per value.
//
// Components are not clamped on construction or conversion: out-of-range
// values indicate out-of-gamut colors and are preserved so that callers
// can apply their own gamut policy. Use Clamped for a plain range clamp.
type Rgb struct {
	v f64.Vec3
}

// RGB creates an Rgb color from companded sRGB components in [0, 1].
func RGB(r, g, b float64) Rgb {
	return Rgb{v: f64.Vec3{r, g, b}}
}

// R returns the red component.
func (c Rgb) R() float64 { return c.v[0] }

// G returns the green component.
func (c Rgb) G() float64 { return c.v[1] }

// B returns the blue component.
func (c Rgb) B() float64 { return c.v[2] }

// Vec returns the raw coordinate vector.
func (c Rgb) Vec() f64.Vec3 { return c.v }

// IsEmpty reports whether the value equals the zero-valued Rgb.
func (c Rgb) IsEmpty() bool { return c.v == f64.Vec3{} }

// Equals reports exact componentwise equality of the coordinate triples.
func (c Rgb) Equals(other Rgb) bool { return vecEquals(c.v, other.v) }

// AlmostEquals reports whether every axis differs from other by at most
// precision. Each axis is checked independently (sup-norm), so a precision
// of 0 degenerates to Equals.
func (c Rgb) AlmostEquals(other Rgb, precision float64) bool {
	return vecAlmostEquals(c.v, other.v, precision)
}

// Hash returns a hash of the coordinate triple, consistent with Equals.
func (c Rgb) Hash() uint64 { return vecHash(c.v) }

// String returns the value in the form "Rgb [ R=1, G=0.5, B=0]".
// The zero value renders as "Rgb [Empty]".
func (c Rgb) String() string {
	return formatColor("Rgb", [3]string{"R", "G", "B"}, c.v, c.IsEmpty())
}

// Clamped returns the color with every component clamped to [0, 1].
func (c Rgb) Clamped() Rgb {
	return RGB(clamp01(c.v[0]), clamp01(c.v[1]), clamp01(c.v[2]))
}

// Color converts the value to the standard color.Color interface,
// clamping to the representable range.
func (c Rgb) Color() color.Color {
	cl := c.Clamped()
	return color.NRGBA{
		R: uint8(math.Round(cl.v[0] * 255)),
		G: uint8(math.Round(cl.v[1] * 255)),
		B: uint8(math.Round(cl.v[2] * 255)),
		A: 255,
	}
}

// RgbFromColor converts a standard color.Color to an Rgb value.
// The alpha channel is discarded.
func RgbFromColor(c color.Color) Rgb {
	r, g, b, _ := c.RGBA()
	return RGB(float64(r)/65535, float64(g)/65535, float64(b)/65535)
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
