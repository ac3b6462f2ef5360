// Package chroma provides device-independent color spaces and conversions
// between them, with correct handling of reference-white differences
// (chromatic adaptation).
//
// # Overview
//
// chroma models colorimetric values as small immutable structs: CieXyz,
// CieXyy, CieLab, CieLch, CieLuv and Rgb (sRGB). Perceptual spaces carry
// their own reference white point as first-class data rather than relying
// on a process-wide setting. The Converter ties everything together: it
// holds a target white point and a chromatic adaptation method, and every
// conversion entry point adapts intermediate XYZ values to that target.
//
// # Quick Start
//
//	import "github.com/gogpu/chroma"
//
//	// Default converter: D50 target white, Bradford adaptation.
//	conv := chroma.NewConverter()
//
//	// Convert an XYZ value measured under D65 into Lab relative to D50.
//	xyz := chroma.XYZ(0.95047, 1.0, 1.08883)
//	lab := conv.XYZToLab(xyz, chroma.D65)
//
//	// Explicit white-point adaptation.
//	adapted, err := conv.Adapt(&xyz, &chroma.D65)
//
// # Conversions
//
// Conversion entry points are grouped by conversion pair: XYZToLab and
// LabToXYZ, LabToLch and LchToLab, XYZToLuv and LuvToXYZ, XYZToXYY and
// XYYToXYZ, XYZToRGB and RGBToXYZ, plus a few composed chains. All of them
// are pure functions of their inputs and the converter's immutable
// configuration.
//
// # Concurrency
//
// Every value type is immutable and every component is free of shared
// mutable state after construction. A single Converter (and the illuminant
// constants) may be shared and called from any number of goroutines
// without locking.
//
// # Scope
//
// chroma performs only the conversion math. Pixel-buffer iteration, image
// codecs, filtering pipelines and gamut-mapping policy live in the layers
// that consume it.
package chroma

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
