package chroma

import "golang.org/x/image/math/f64"

// CieXyy represents a color in the CIE xyY space: the (x, y) chromaticity
// coordinates plus the Y luminance carried over from XYZ.
//
// Like CieXyz it is device-independent and carries no reference white.
type CieXyy struct {
	v f64.Vec3
}

// XYY creates a CieXyy color from chromaticity (x, y) and luminance yl.
func XYY(x, y, yl float64) CieXyy {
	return CieXyy{v: f64.Vec3{x, y, yl}}
}

// X returns the x chromaticity coordinate.
func (c CieXyy) X() float64 { return c.v[0] }

// Y returns the y chromaticity coordinate.
func (c CieXyy) Y() float64 { return c.v[1] }

// Yl returns the Y luminance component.
func (c CieXyy) Yl() float64 { return c.v[2] }

// Vec returns the raw coordinate vector.
func (c CieXyy) Vec() f64.Vec3 { return c.v }

// IsEmpty reports whether the value equals the zero-valued CieXyy.
func (c CieXyy) IsEmpty() bool { return c.v == f64.Vec3{} }

// Equals reports exact componentwise equality of the coordinate triples.
func (c CieXyy) Equals(other CieXyy) bool { return vecEquals(c.v, other.v) }

// AlmostEquals reports whether every axis differs from other by at most
// precision. Each axis is checked independently (sup-norm), so a precision
// of 0 degenerates to Equals.
func (c CieXyy) AlmostEquals(other CieXyy, precision float64) bool {
	return vecAlmostEquals(c.v, other.v, precision)
}

// Hash returns a hash of the coordinate triple, consistent with Equals.
func (c CieXyy) Hash() uint64 { return vecHash(c.v) }

// String returns the value in the form "CieXyy [ X=0.31, Y=0.33, Yl=1]".
// The zero value renders as "CieXyy [Empty]".
func (c CieXyy) String() string {
	return formatColor("CieXyy", [3]string{"X", "Y", "Yl"}, c.v, c.IsEmpty())
}
