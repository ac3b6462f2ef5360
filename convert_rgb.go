package chroma

import (
	"math"

	"golang.org/x/image/math/f64"
)

// sRGB working-space matrices, defined relative to the D65 illuminant.
var (
	srgbToXYZMatrix = f64.Mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	xyzToSRGBMatrix = f64.Mat3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
)

// srgbCompand converts a single linear component to companded sRGB.
func srgbCompand(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// srgbInverseCompand converts a single companded sRGB component to linear.
func srgbInverseCompand(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RGBToXYZ converts companded sRGB into CieXyz adapted to the converter's
// target white point. sRGB's native white is D65; when the target differs
// and adaptation is enabled, the result is adapted accordingly.
func (c *Converter) RGBToXYZ(rgb Rgb) CieXyz {
	return c.adaptTo(rgbToXYZRelative(rgb), D65, c.targetWhite)
}

// rgbToXYZRelative linearizes companded sRGB and applies the working-space
// matrix, leaving the result relative to D65.
func rgbToXYZRelative(rgb Rgb) CieXyz {
	lin := f64.Vec3{
		srgbInverseCompand(rgb.R()),
		srgbInverseCompand(rgb.G()),
		srgbInverseCompand(rgb.B()),
	}
	return CieXyz{v: apply3(srgbToXYZMatrix, lin)}
}

// XYZToRGB converts color, expressed relative to sourceWhite, into
// companded sRGB. The value is adapted to D65 (sRGB's native white) first.
// Out-of-gamut results are not clamped; apply Rgb.Clamped if a plain range
// clamp is the desired gamut policy.
func (c *Converter) XYZToRGB(color CieXyz, sourceWhite CieXyz) Rgb {
	adapted := c.adaptTo(color, sourceWhite, D65)
	lin := apply3(xyzToSRGBMatrix, adapted.Vec())
	return RGB(srgbCompand(lin[0]), srgbCompand(lin[1]), srgbCompand(lin[2]))
}

// RGBToLab converts companded sRGB into CieLab relative to the converter's
// target white point.
func (c *Converter) RGBToLab(rgb Rgb) CieLab {
	return c.XYZToLab(rgbToXYZRelative(rgb), D65)
}

// LabToRGB converts lab, interpreted against its own reference white, into
// companded sRGB (D65).
func (c *Converter) LabToRGB(lab CieLab) Rgb {
	return c.XYZToRGB(labToXYZRelative(lab), lab.WhitePoint())
}
