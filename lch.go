package chroma

import "golang.org/x/image/math/f64"

// CieLch represents a color in the cylindrical CIE LCh(ab) space together
// with the reference white point it is defined against.
//
// L is lightness, C is chroma (radial distance from the neutral axis) and
// H is the hue angle in degrees. None of the components are clamped.
type CieLch struct {
	v          f64.Vec3
	whitePoint CieXyz
}

// Lch creates a CieLch color. The optional trailing argument sets the
// reference white point; when omitted it defaults to D50.
func Lch(l, c, h float64, white ...CieXyz) CieLch {
	wp := D50
	if len(white) > 0 {
		wp = white[0]
	}
	return CieLch{v: f64.Vec3{l, c, h}, whitePoint: wp}
}

// L returns the lightness component.
func (c CieLch) L() float64 { return c.v[0] }

// C returns the chroma component.
func (c CieLch) C() float64 { return c.v[1] }

// H returns the hue angle in degrees.
func (c CieLch) H() float64 { return c.v[2] }

// WhitePoint returns the reference white the color is defined against.
func (c CieLch) WhitePoint() CieXyz { return c.whitePoint }

// Vec returns the raw coordinate vector.
func (c CieLch) Vec() f64.Vec3 { return c.v }

// IsEmpty reports whether the coordinate triple is all zeros.
func (c CieLch) IsEmpty() bool { return c.v == f64.Vec3{} }

// Equals reports exact componentwise equality of the coordinate triples.
// The reference white point is deliberately excluded, matching CieLab.
func (c CieLch) Equals(other CieLch) bool { return vecEquals(c.v, other.v) }

// AlmostEquals reports whether every axis differs from other by at most
// precision. Each axis is checked independently (sup-norm), so a precision
// of 0 degenerates to Equals. Like Equals, the white point is ignored.
func (c CieLch) AlmostEquals(other CieLch, precision float64) bool {
	return vecAlmostEquals(c.v, other.v, precision)
}

// Hash returns a hash of the coordinate triple, consistent with Equals.
func (c CieLch) Hash() uint64 { return vecHash(c.v) }

// String returns the value in the form "CieLch [ L=50, C=20, H=120]".
// The zero-coordinate value renders as "CieLch [Empty]".
func (c CieLch) String() string {
	return formatColor("CieLch", [3]string{"L", "C", "H"}, c.v, c.IsEmpty())
}
