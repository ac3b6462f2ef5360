package chroma

import "math"

// uvPrime returns the (u', v') chromaticity coordinates of a tristimulus
// value. Zero energy yields (0, 0).
func uvPrime(c CieXyz) (u, v float64) {
	d := c.X() + 15*c.Y() + 3*c.Z()
	if d == 0 {
		return 0, 0
	}
	return 4 * c.X() / d, 9 * c.Y() / d
}

// XYZToLuv converts color, expressed relative to sourceWhite, into CieLuv
// relative to the converter's target white point.
func (c *Converter) XYZToLuv(color CieXyz, sourceWhite CieXyz) CieLuv {
	adapted := c.adaptTo(color, sourceWhite, c.targetWhite)
	wp := c.targetWhite

	up, vp := uvPrime(adapted)
	upw, vpw := uvPrime(wp)

	yr := adapted.Y() / wp.Y()
	var l float64
	if yr > cieEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieKappa * yr
	}

	u := 13 * l * (up - upw)
	v := 13 * l * (vp - vpw)
	return Luv(l, u, v, wp)
}

// LuvToXYZ converts luv, interpreted against its own reference white, into
// CieXyz adapted to the converter's target white point.
func (c *Converter) LuvToXYZ(luv CieLuv) CieXyz {
	wp := luv.WhitePoint()
	l := luv.L()
	if l == 0 {
		return XYZ(0, 0, 0)
	}

	upw, vpw := uvPrime(wp)
	up := luv.U()/(13*l) + upw
	vp := luv.V()/(13*l) + vpw

	var y float64
	if l > 8 {
		t := (l + 16) / 116
		y = wp.Y() * t * t * t
	} else {
		y = wp.Y() * l / cieKappa
	}

	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)
	return c.adaptTo(XYZ(x, y, z), wp, c.targetWhite)
}
