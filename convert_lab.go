package chroma

import "math"

// CIE constants shared by the Lab and Luv conversions.
const (
	cieEpsilon = 216.0 / 24389.0 // (6/29)^3
	cieKappa   = 24389.0 / 27.0  // (29/3)^3
)

// labCompress applies the cube-root compression used by the Lab transform,
// with the linear segment below cieEpsilon.
func labCompress(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16) / 116
}

// labUncompress inverts labCompress.
func labUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > cieEpsilon {
		return ft3
	}
	return (116*ft - 16) / cieKappa
}

// XYZToLab converts color, expressed relative to sourceWhite, into CieLab
// relative to the converter's target white point. When adaptation is
// enabled the tristimulus value is first adapted from sourceWhite to the
// target; with adaptation disabled it is scaled against the target white
// as-is.
func (c *Converter) XYZToLab(color CieXyz, sourceWhite CieXyz) CieLab {
	adapted := c.adaptTo(color, sourceWhite, c.targetWhite)
	wp := c.targetWhite

	fx := labCompress(adapted.X() / wp.X())
	fy := labCompress(adapted.Y() / wp.Y())
	fz := labCompress(adapted.Z() / wp.Z())

	l := 116*fy - 16
	a := 500 * (fx - fy)
	b := 200 * (fy - fz)
	return Lab(l, a, b, wp)
}

// LabToXYZ converts lab, interpreted against its own reference white, into
// CieXyz adapted to the converter's target white point.
func (c *Converter) LabToXYZ(lab CieLab) CieXyz {
	return c.adaptTo(labToXYZRelative(lab), lab.WhitePoint(), c.targetWhite)
}

// labToXYZRelative inverts the Lab transform, leaving the result relative
// to the color's own reference white.
func labToXYZRelative(lab CieLab) CieXyz {
	wp := lab.WhitePoint()

	fy := (lab.L() + 16) / 116
	fx := lab.A()/500 + fy
	fz := fy - lab.B()/200

	x := wp.X() * labUncompress(fx)
	y := wp.Y() * labUncompress(fy)
	z := wp.Z() * labUncompress(fz)
	return XYZ(x, y, z)
}
