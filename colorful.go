package chroma

import colorful "github.com/lucasb-eyer/go-colorful"

// Interop with github.com/lucasb-eyer/go-colorful, the de facto standard
// library for sRGB-centric color manipulation in Go. chroma handles the
// colorimetric core; go-colorful covers blending, sorting and palette
// generation on top of sRGB values.

// Colorful returns the color as a go-colorful Color. Components are passed
// through unchanged, so out-of-gamut values stay out of gamut.
func (c Rgb) Colorful() colorful.Color {
	return colorful.Color{R: c.v[0], G: c.v[1], B: c.v[2]}
}

// RgbFromColorful converts a go-colorful Color to an Rgb value.
func RgbFromColorful(col colorful.Color) Rgb {
	return RGB(col.R, col.G, col.B)
}

// Colorful returns the tristimulus value as a go-colorful Color via its
// XYZ constructor (D65 working space).
func (c CieXyz) Colorful() colorful.Color {
	return colorful.Xyz(c.v[0], c.v[1], c.v[2])
}

// XyzFromColorful converts a go-colorful Color to a CieXyz value relative
// to D65, go-colorful's working white point.
func XyzFromColorful(col colorful.Color) CieXyz {
	x, y, z := col.Xyz()
	return XYZ(x, y, z)
}
