package chroma

import "math"

// LabToLch converts lab to its cylindrical LCh(ab) form. The transform is
// white-point independent; the reference white is carried through.
func (c *Converter) LabToLch(lab CieLab) CieLch {
	a, b := lab.A(), lab.B()
	ch := math.Sqrt(a*a + b*b)
	h := math.Atan2(b, a) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	return Lch(lab.L(), ch, h, lab.WhitePoint())
}

// LchToLab converts lch back to rectangular Lab coordinates, carrying the
// reference white through.
func (c *Converter) LchToLab(lch CieLch) CieLab {
	hRad := lch.H() * (math.Pi / 180)
	a := lch.C() * math.Cos(hRad)
	b := lch.C() * math.Sin(hRad)
	return Lab(lch.L(), a, b, lch.WhitePoint())
}

// XYZToLch converts color, expressed relative to sourceWhite, into CieLch
// relative to the converter's target white point.
func (c *Converter) XYZToLch(color CieXyz, sourceWhite CieXyz) CieLch {
	return c.LabToLch(c.XYZToLab(color, sourceWhite))
}

// LchToXYZ converts lch, interpreted against its own reference white, into
// CieXyz adapted to the converter's target white point.
func (c *Converter) LchToXYZ(lch CieLch) CieXyz {
	return c.LabToXYZ(c.LchToLab(lch))
}
