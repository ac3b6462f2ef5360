package chroma

import "golang.org/x/image/math/f64"

// ChromaticAdaptation transforms a tristimulus value so that it represents
// the same perceived color under a different reference white.
//
// Implementations must be stateless and safe for concurrent use. They must
// also satisfy the identity law: when sourceWhite and targetWhite are
// componentwise equal, the input is returned bit-for-bit.
type ChromaticAdaptation interface {
	// Transform adapts c from sourceWhite to targetWhite.
	Transform(c CieXyz, sourceWhite, targetWhite CieXyz) CieXyz
}

// Linear cone-response adaptation methods. Each is a shared stateless
// value; pass one to NewConverter via WithAdaptation.
var (
	// Bradford is the Bradford transform, the method used by ICC
	// profile conversion and generally the best-behaved of the three.
	Bradford ChromaticAdaptation = coneAdaptation{
		name: "Bradford",
		forward: f64.Mat3{
			0.8951, 0.2664, -0.1614,
			-0.7502, 1.7135, 0.0367,
			0.0389, -0.0685, 1.0296,
		},
		inverse: f64.Mat3{
			0.9869929, -0.1470543, 0.1599627,
			0.4323053, 0.5183603, 0.0492912,
			-0.0085287, 0.0400428, 0.9684867,
		},
	}

	// VonKries is the von Kries transform using the Hunt-Pointer-Estevez
	// cone response matrix normalized to D65.
	VonKries ChromaticAdaptation = coneAdaptation{
		name: "VonKries",
		forward: f64.Mat3{
			0.40024, 0.70760, -0.08081,
			-0.22630, 1.16532, 0.04570,
			0.00000, 0.00000, 0.91822,
		},
		inverse: f64.Mat3{
			1.8599364, -1.1293816, 0.2198974,
			0.3611914, 0.6388125, -0.0000064,
			0.0000000, 0.0000000, 1.0890636,
		},
	}

	// XYZScaling scales the tristimulus components directly by the white
	// point ratios. Simple but colorimetrically the weakest method.
	XYZScaling ChromaticAdaptation = coneAdaptation{
		name:    "XYZScaling",
		forward: identity3(),
		inverse: identity3(),
	}
)

// coneAdaptation is a linear adaptation in a cone response domain: the
// tristimulus value is projected into the cone space by the forward
// matrix, scaled by the ratio of the two white points' cone responses,
// and projected back by the inverse matrix.
type coneAdaptation struct {
	name    string
	forward f64.Mat3
	inverse f64.Mat3
}

// Transform adapts c from sourceWhite to targetWhite.
//
// Equal white points short-circuit to the input unchanged, so a no-op
// adaptation introduces no floating-point drift.
func (a coneAdaptation) Transform(c CieXyz, sourceWhite, targetWhite CieXyz) CieXyz {
	if sourceWhite.Equals(targetWhite) {
		return c
	}
	v := apply3(a.matrix(sourceWhite, targetWhite), c.Vec())
	return CieXyz{v: v}
}

// matrix builds the full adaptation matrix inverse * diag(ratios) * forward.
func (a coneAdaptation) matrix(sourceWhite, targetWhite CieXyz) f64.Mat3 {
	src := apply3(a.forward, sourceWhite.Vec())
	dst := apply3(a.forward, targetWhite.Vec())
	gain := diag3(f64.Vec3{dst[0] / src[0], dst[1] / src[1], dst[2] / src[2]})
	return mul3(a.inverse, mul3(gain, a.forward))
}

// String returns the method name.
func (a coneAdaptation) String() string { return a.name }

// AdaptationMatrix returns the 3x3 matrix that adapts XYZ values from
// sourceWhite to targetWhite using the given method, for callers that want
// to fuse the adaptation with other linear transforms. Equal white points
// yield the identity matrix. Methods other than the built-in ones fall
// back to Bradford's cone space.
func AdaptationMatrix(method ChromaticAdaptation, sourceWhite, targetWhite CieXyz) f64.Mat3 {
	if sourceWhite.Equals(targetWhite) {
		return identity3()
	}
	ca, ok := method.(coneAdaptation)
	if !ok {
		ca = Bradford.(coneAdaptation)
	}
	return ca.matrix(sourceWhite, targetWhite)
}
