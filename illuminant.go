package chroma

import "sort"

// Standard illuminant white points (CIE 1931 2° standard observer),
// expressed as XYZ tristimulus values normalized so that Y = 1.
//
// These are process-wide immutable constants. They are plain values, so
// sharing them between goroutines needs no synchronization.
var (
	// A is incandescent / tungsten light (2856 K).
	A = XYZ(1.09850, 1.0, 0.35585)

	// B is obsolete direct sunlight at noon (4874 K).
	B = XYZ(0.99072, 1.0, 0.85223)

	// C is obsolete average north sky daylight (6774 K).
	C = XYZ(0.98074, 1.0, 1.18232)

	// D50 is horizon light (5003 K), the ICC profile connection space
	// white and the default reference white for CieLab and CieLch.
	D50 = XYZ(0.96422, 1.0, 0.82521)

	// D55 is mid-morning / mid-afternoon daylight (5503 K).
	D55 = XYZ(0.95682, 1.0, 0.92149)

	// D65 is noon daylight (6504 K), the sRGB native white and the
	// default reference white for CieLuv.
	D65 = XYZ(0.95047, 1.0, 1.08883)

	// D75 is north sky daylight (7504 K).
	D75 = XYZ(0.94972, 1.0, 1.22638)

	// E is the equal-energy radiator.
	E = XYZ(1.0, 1.0, 1.0)

	// F2 is cool white fluorescent (4230 K).
	F2 = XYZ(0.99186, 1.0, 0.67393)

	// F7 is broad-band daylight fluorescent (6500 K).
	F7 = XYZ(0.95041, 1.0, 1.08747)

	// F11 is narrow-band tri-phosphor fluorescent (4000 K).
	F11 = XYZ(1.00962, 1.0, 0.64350)
)

// illuminants maps canonical names to their white points for lookup and
// enumeration. Never mutated after init.
var illuminants = map[string]CieXyz{
	"A":   A,
	"B":   B,
	"C":   C,
	"D50": D50,
	"D55": D55,
	"D65": D65,
	"D75": D75,
	"E":   E,
	"F2":  F2,
	"F7":  F7,
	"F11": F11,
}

// Illuminant looks up a standard illuminant white point by name
// (e.g. "D50", "D65"). The second result reports whether the name is known.
func Illuminant(name string) (CieXyz, bool) {
	wp, ok := illuminants[name]
	return wp, ok
}

// IlluminantNames returns the names of all registered standard illuminants
// in sorted order.
func IlluminantNames() []string {
	names := make([]string, 0, len(illuminants))
	for name := range illuminants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
