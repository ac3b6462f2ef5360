package chroma

import (
	"sort"
	"testing"
)

func TestIlluminantLookup(t *testing.T) {
	tests := []struct {
		name string
		want CieXyz
		ok   bool
	}{
		{"D50", D50, true},
		{"D65", D65, true},
		{"A", A, true},
		{"E", E, true},
		{"F11", F11, true},
		{"D64", CieXyz{}, false},
		{"d50", CieXyz{}, false},
		{"", CieXyz{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Illuminant(tt.name)
			if ok != tt.ok {
				t.Fatalf("Illuminant(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Illuminant(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIlluminantNames(t *testing.T) {
	names := IlluminantNames()
	if len(names) != len(illuminants) {
		t.Fatalf("IlluminantNames() returned %d names, want %d", len(names), len(illuminants))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("IlluminantNames() not sorted: %v", names)
	}
	for _, name := range names {
		if _, ok := Illuminant(name); !ok {
			t.Errorf("enumerated name %q does not resolve", name)
		}
	}
}

func TestIlluminantsAreNormalized(t *testing.T) {
	// Every white point is normalized so that Y = 1.
	for name, wp := range illuminants {
		if wp.Y() != 1.0 {
			t.Errorf("illuminant %s has Y = %v, want 1", name, wp.Y())
		}
		if wp.X() <= 0 || wp.Z() < 0 {
			t.Errorf("illuminant %s has non-physical components: %v", name, wp)
		}
	}
}

func TestD50Value(t *testing.T) {
	if got := D50; !got.Equals(XYZ(0.96422, 1.0, 0.82521)) {
		t.Errorf("D50 = %v", got)
	}
	if got := D65; !got.Equals(XYZ(0.95047, 1.0, 1.08883)) {
		t.Errorf("D65 = %v", got)
	}
}
