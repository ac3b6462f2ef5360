package chroma

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/image/math/f64"
)

// Shared behavior for the color value types. Every space stores its
// coordinates as an f64.Vec3 and derives equality, hashing and the string
// form from that triple alone.

// vecEquals reports exact componentwise equality of two coordinate triples.
func vecEquals(a, b f64.Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// vecAlmostEquals reports whether every axis differs by at most precision.
// This is a componentwise sup-norm check, not a Euclidean distance.
func vecAlmostEquals(a, b f64.Vec3, precision float64) bool {
	return math.Abs(a[0]-b[0]) <= precision &&
		math.Abs(a[1]-b[1]) <= precision &&
		math.Abs(a[2]-b[2]) <= precision
}

// vecHash returns an FNV-1a hash of the coordinate bit patterns.
// Consistent with vecEquals: equal triples hash equal.
func vecHash(v f64.Vec3) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, c := range v {
		bits := math.Float64bits(c)
		for i := 0; i < 8; i++ {
			h ^= bits & 0xff
			h *= prime64
			bits >>= 8
		}
	}
	return h
}

// formatValue renders a coordinate rounded to at most two decimal places
// with trailing zeros dropped, e.g. 50, 10.5, -20.25.
func formatValue(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// formatColor renders the fixed textual form shared by all value types:
// "<TypeName> [ <axis>=<v>, <axis>=<v>, <axis>=<v>]", or
// "<TypeName> [Empty]" for the zero-valued instance.
func formatColor(name string, axes [3]string, v f64.Vec3, empty bool) string {
	if empty {
		return name + " [Empty]"
	}
	return fmt.Sprintf("%s [ %s=%s, %s=%s, %s=%s]",
		name,
		axes[0], formatValue(v[0]),
		axes[1], formatValue(v[1]),
		axes[2], formatValue(v[2]))
}
