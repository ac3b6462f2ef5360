package chroma

import "golang.org/x/image/math/f64"

// 3x3 matrix helpers for the f64.Mat3 row-major layout:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |

// identity3 returns the 3x3 identity matrix.
func identity3() f64.Mat3 {
	return f64.Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// diag3 returns a diagonal matrix with the vector on its main diagonal.
func diag3(d f64.Vec3) f64.Mat3 {
	return f64.Mat3{
		d[0], 0, 0,
		0, d[1], 0,
		0, 0, d[2],
	}
}

// mul3 multiplies two matrices (a * b).
func mul3(a, b f64.Mat3) f64.Mat3 {
	return f64.Mat3{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

// apply3 applies the matrix to a column vector (m * v).
func apply3(m f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// invert3 returns the inverse matrix via the adjugate.
// Returns the identity matrix if the matrix is not invertible.
func invert3(m f64.Mat3) f64.Mat3 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return identity3()
	}
	invDet := 1.0 / det

	return f64.Mat3{
		(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		(d*h - e*g) * invDet, (g*b - a*h) * invDet, (a*e - b*d) * invDet,
	}
}
