package chroma

import "golang.org/x/image/math/f64"

// CieLab represents a color in the CIE L*a*b* (1976) space together with
// the reference white point it is defined against.
//
// L is nominally in [0, 100] for reflective samples but is neither clamped
// nor validated: out-of-range values are permitted and meaningful (specular
// highlights, out-of-gamut intermediates). A and B are unbounded.
type CieLab struct {
	v          f64.Vec3
	whitePoint CieXyz
}

// Lab creates a CieLab color. The optional trailing argument sets the
// reference white point; when omitted it defaults to D50.
func Lab(l, a, b float64, white ...CieXyz) CieLab {
	wp := D50
	if len(white) > 0 {
		wp = white[0]
	}
	return CieLab{v: f64.Vec3{l, a, b}, whitePoint: wp}
}

// L returns the lightness component.
func (c CieLab) L() float64 { return c.v[0] }

// A returns the green-red opponent component.
func (c CieLab) A() float64 { return c.v[1] }

// B returns the blue-yellow opponent component.
func (c CieLab) B() float64 { return c.v[2] }

// WhitePoint returns the reference white the color is defined against.
func (c CieLab) WhitePoint() CieXyz { return c.whitePoint }

// Vec returns the raw coordinate vector.
func (c CieLab) Vec() f64.Vec3 { return c.v }

// IsEmpty reports whether the coordinate triple is all zeros.
func (c CieLab) IsEmpty() bool { return c.v == f64.Vec3{} }

// Equals reports exact componentwise equality of the coordinate triples.
//
// The reference white point is deliberately excluded: two values with
// identical L/A/B but different reference whites compare equal even though
// they denote different absolute colors. Callers that need to distinguish
// them must compare WhitePoint() as well.
func (c CieLab) Equals(other CieLab) bool { return vecEquals(c.v, other.v) }

// AlmostEquals reports whether every axis differs from other by at most
// precision. Each axis is checked independently (sup-norm), so a precision
// of 0 degenerates to Equals. Like Equals, the white point is ignored.
func (c CieLab) AlmostEquals(other CieLab, precision float64) bool {
	return vecAlmostEquals(c.v, other.v, precision)
}

// Hash returns a hash of the coordinate triple, consistent with Equals
// (the white point does not participate).
func (c CieLab) Hash() uint64 { return vecHash(c.v) }

// String returns the value in the form "CieLab [ L=50, A=10, B=-20]".
// The zero-coordinate value renders as "CieLab [Empty]".
func (c CieLab) String() string {
	return formatColor("CieLab", [3]string{"L", "A", "B"}, c.v, c.IsEmpty())
}
