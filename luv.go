package chroma

import "golang.org/x/image/math/f64"

// CieLuv represents a color in the CIE L*u*v* (1976) space together with
// the reference white point it is defined against.
//
// As with CieLab, no component is clamped or validated.
type CieLuv struct {
	v          f64.Vec3
	whitePoint CieXyz
}

// Luv creates a CieLuv color. The optional trailing argument sets the
// reference white point; when omitted it defaults to D65.
func Luv(l, u, v float64, white ...CieXyz) CieLuv {
	wp := D65
	if len(white) > 0 {
		wp = white[0]
	}
	return CieLuv{v: f64.Vec3{l, u, v}, whitePoint: wp}
}

// L returns the lightness component.
func (c CieLuv) L() float64 { return c.v[0] }

// U returns the u* chromaticity component.
func (c CieLuv) U() float64 { return c.v[1] }

// V returns the v* chromaticity component.
func (c CieLuv) V() float64 { return c.v[2] }

// WhitePoint returns the reference white the color is defined against.
func (c CieLuv) WhitePoint() CieXyz { return c.whitePoint }

// Vec returns the raw coordinate vector.
func (c CieLuv) Vec() f64.Vec3 { return c.v }

// IsEmpty reports whether the coordinate triple is all zeros.
func (c CieLuv) IsEmpty() bool { return c.v == f64.Vec3{} }

// Equals reports exact componentwise equality of the coordinate triples.
// The reference white point is deliberately excluded, matching CieLab.
func (c CieLuv) Equals(other CieLuv) bool { return vecEquals(c.v, other.v) }

// AlmostEquals reports whether every axis differs from other by at most
// precision. Each axis is checked independently (sup-norm), so a precision
// of 0 degenerates to Equals. Like Equals, the white point is ignored.
func (c CieLuv) AlmostEquals(other CieLuv, precision float64) bool {
	return vecAlmostEquals(c.v, other.v, precision)
}

// Hash returns a hash of the coordinate triple, consistent with Equals.
func (c CieLuv) Hash() uint64 { return vecHash(c.v) }

// String returns the value in the form "CieLuv [ L=50, U=30, V=-15]".
// The zero-coordinate value renders as "CieLuv [Empty]".
func (c CieLuv) String() string {
	return formatColor("CieLuv", [3]string{"L", "U", "V"}, c.v, c.IsEmpty())
}
