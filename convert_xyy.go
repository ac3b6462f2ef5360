package chroma

// XYZToXYY converts color, expressed relative to sourceWhite, into CieXyy
// relative to the converter's target white point.
//
// A zero-energy input has no chromaticity of its own; the chromaticity of
// the target white point is used so that black round-trips as a neutral
// color.
func (c *Converter) XYZToXYY(color CieXyz, sourceWhite CieXyz) CieXyy {
	adapted := c.adaptTo(color, sourceWhite, c.targetWhite)
	sum := adapted.X() + adapted.Y() + adapted.Z()
	if sum == 0 {
		wp := c.targetWhite
		wsum := wp.X() + wp.Y() + wp.Z()
		return XYY(wp.X()/wsum, wp.Y()/wsum, adapted.Y())
	}
	return XYY(adapted.X()/sum, adapted.Y()/sum, adapted.Y())
}

// XYYToXYZ converts xyy back to tristimulus coordinates. CieXyy carries no
// reference white, so the value is assumed to already be relative to the
// converter's target white point and no adaptation is applied.
func (c *Converter) XYYToXYZ(xyy CieXyy) CieXyz {
	if xyy.Y() == 0 {
		return XYZ(0, 0, 0)
	}
	x := xyy.X() * xyy.Yl() / xyy.Y()
	z := (1 - xyy.X() - xyy.Y()) * xyy.Yl() / xyy.Y()
	return XYZ(x, xyy.Yl(), z)
}
