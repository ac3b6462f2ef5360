package chroma

import "golang.org/x/image/math/f64"

// CieXyz represents a color in the CIE 1931 XYZ tristimulus space.
//
// XYZ is device-independent by construction, so unlike the perceptual
// spaces it carries no reference white point of its own; it only has
// meaning relative to the colorimetric standard observer. Values are
// immutable after construction.
type CieXyz struct {
	v f64.Vec3
}

// XYZ creates a CieXyz color from its tristimulus components.
func XYZ(x, y, z float64) CieXyz {
	return CieXyz{v: f64.Vec3{x, y, z}}
}

// X returns the X tristimulus component.
func (c CieXyz) X() float64 { return c.v[0] }

// Y returns the Y tristimulus component (relative luminance).
func (c CieXyz) Y() float64 { return c.v[1] }

// Z returns the Z tristimulus component.
func (c CieXyz) Z() float64 { return c.v[2] }

// Vec returns the raw coordinate vector.
func (c CieXyz) Vec() f64.Vec3 { return c.v }

// IsEmpty reports whether the value equals the zero-valued CieXyz.
func (c CieXyz) IsEmpty() bool { return c.v == f64.Vec3{} }

// Equals reports exact componentwise equality of the coordinate triples.
func (c CieXyz) Equals(other CieXyz) bool { return vecEquals(c.v, other.v) }

// AlmostEquals reports whether every axis differs from other by at most
// precision. Each axis is checked independently (sup-norm), so a precision
// of 0 degenerates to Equals.
func (c CieXyz) AlmostEquals(other CieXyz, precision float64) bool {
	return vecAlmostEquals(c.v, other.v, precision)
}

// Hash returns a hash of the coordinate triple, consistent with Equals.
func (c CieXyz) Hash() uint64 { return vecHash(c.v) }

// String returns the value in the form "CieXyz [ X=0.95, Y=1, Z=1.09]".
// The zero value renders as "CieXyz [Empty]".
func (c CieXyz) String() string {
	return formatColor("CieXyz", [3]string{"X", "Y", "Z"}, c.v, c.IsEmpty())
}
