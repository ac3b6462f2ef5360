package chroma

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestXYZToLabMatchesColorful(t *testing.T) {
	// go-colorful implements the same CIE Lab transform with L, a, b
	// scaled down by 100. Cross-check against it as an independent
	// implementation.
	conv := NewConverter(WithTargetWhite(D65))
	values := []CieXyz{
		srgbRed,
		XYZ(0.3, 0.4, 0.2),
		XYZ(0.001, 0.002, 0.001),
		XYZ(0.95047, 1.0, 1.08883),
	}
	for _, v := range values {
		got := conv.XYZToLab(v, D65)
		l, a, b := colorful.XyzToLab(v.X(), v.Y(), v.Z())
		want := Lab(100*l, 100*a, 100*b, D65)
		if !got.AlmostEquals(want, 1e-8) {
			t.Errorf("XYZToLab(%v) = %v, colorful says %v", v, got, want)
		}
	}
}

func TestXYZToLabMatchesColorfulD50(t *testing.T) {
	conv := NewConverter() // D50 target; equal whites, no adaptation applied
	v := XYZ(0.25, 0.35, 0.15)
	got := conv.XYZToLab(v, D50)
	l, a, b := colorful.XyzToLabWhiteRef(v.X(), v.Y(), v.Z(), colorful.D50)
	want := Lab(100*l, 100*a, 100*b, D50)
	if !got.AlmostEquals(want, 1e-8) {
		t.Errorf("XYZToLab(%v, D50) = %v, colorful says %v", v, got, want)
	}
}

func TestRgbColorfulRoundTrip(t *testing.T) {
	rgb := RGB(0.2, 0.4, 0.8)
	if got := RgbFromColorful(rgb.Colorful()); !got.Equals(rgb) {
		t.Errorf("colorful round trip = %v, want %v", got, rgb)
	}

	// Out-of-gamut components pass through unclamped.
	wide := RGB(-0.1, 0.5, 1.2)
	if got := RgbFromColorful(wide.Colorful()); !got.Equals(wide) {
		t.Errorf("out-of-gamut colorful round trip = %v, want %v", got, wide)
	}
}

func TestRGBToXYZAgreesWithColorful(t *testing.T) {
	// go-colorful derives its sRGB matrices from slightly different
	// white chromaticity rounding, so agreement is only to about three
	// decimals.
	conv := NewConverter(WithTargetWhite(D65))
	values := []Rgb{
		RGB(1, 0, 0),
		RGB(0.2, 0.4, 0.8),
		RGB(0.9, 0.9, 0.1),
	}
	for _, rgb := range values {
		got := conv.RGBToXYZ(rgb)
		x, y, z := rgb.Colorful().Xyz()
		if !got.AlmostEquals(XYZ(x, y, z), 1e-3) {
			t.Errorf("RGBToXYZ(%v) = %v, colorful says (%v, %v, %v)", rgb, got, x, y, z)
		}
	}
}

func TestXyzFromColorful(t *testing.T) {
	c := colorful.Color{R: 0.5, G: 0.25, B: 0.75}
	xyz := XyzFromColorful(c)
	x, y, z := c.Xyz()
	if xyz.X() != x || xyz.Y() != y || xyz.Z() != z {
		t.Errorf("XyzFromColorful = %v, want (%v, %v, %v)", xyz, x, y, z)
	}

	// CieXyz -> colorful -> CieXyz is only as precise as go-colorful's
	// matrix pair.
	v := XYZ(0.3, 0.4, 0.2)
	back := XyzFromColorful(v.Colorful())
	if !back.AlmostEquals(v, 1e-3) {
		t.Errorf("Xyz colorful round trip = %v, want %v", back, v)
	}
}

func TestColorfulWhiteRefConstants(t *testing.T) {
	// The illuminant table agrees with go-colorful's reference whites.
	if math.Abs(colorful.D65[0]-D65.X()) > 1e-9 ||
		math.Abs(colorful.D65[1]-D65.Y()) > 1e-9 ||
		math.Abs(colorful.D65[2]-D65.Z()) > 1e-9 {
		t.Errorf("D65 = %v, colorful uses %v", D65, colorful.D65)
	}
}
