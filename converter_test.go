package chroma

import (
	"errors"
	"testing"
)

func TestNewConverterDefaults(t *testing.T) {
	conv := NewConverter()
	if !conv.TargetWhitePoint().Equals(D50) {
		t.Errorf("default target white = %v, want D50", conv.TargetWhitePoint())
	}
	if conv.Adaptation() != Bradford {
		t.Errorf("default adaptation = %v, want Bradford", conv.Adaptation())
	}
}

func TestNewConverterOptions(t *testing.T) {
	conv := NewConverter(WithTargetWhite(D65), WithAdaptation(VonKries))
	if !conv.TargetWhitePoint().Equals(D65) {
		t.Errorf("target white = %v, want D65", conv.TargetWhitePoint())
	}
	if conv.Adaptation() != VonKries {
		t.Errorf("adaptation = %v, want VonKries", conv.Adaptation())
	}

	disabled := NewConverter(WithoutAdaptation())
	if disabled.Adaptation() != nil {
		t.Errorf("adaptation = %v, want nil", disabled.Adaptation())
	}
}

func TestAdapt(t *testing.T) {
	conv := NewConverter(WithTargetWhite(D50), WithAdaptation(Bradford))
	red := XYZ(0.4124564, 0.2126729, 0.0193339)

	got, err := conv.Adapt(&red, &D65)
	if err != nil {
		t.Fatalf("Adapt returned error: %v", err)
	}
	want := Bradford.Transform(red, D65, D50)
	if !got.Equals(want) {
		t.Errorf("Adapt = %v, want %v", got, want)
	}

	// Referential transparency: identical inputs, identical outputs.
	again, err := conv.Adapt(&red, &D65)
	if err != nil {
		t.Fatalf("second Adapt returned error: %v", err)
	}
	if !again.Equals(got) {
		t.Errorf("repeated Adapt differs: %v vs %v", again, got)
	}
}

func TestAdaptNilArguments(t *testing.T) {
	conv := NewConverter()
	red := XYZ(0.4124564, 0.2126729, 0.0193339)

	if _, err := conv.Adapt(nil, &D65); !errors.Is(err, ErrNilColor) {
		t.Errorf("Adapt(nil, white) error = %v, want ErrNilColor", err)
	}
	if _, err := conv.Adapt(&red, nil); !errors.Is(err, ErrNilWhitePoint) {
		t.Errorf("Adapt(color, nil) error = %v, want ErrNilWhitePoint", err)
	}

	// Argument validation runs before the configuration check.
	misconfigured := NewConverter(WithoutAdaptation())
	if _, err := misconfigured.Adapt(nil, &D65); !errors.Is(err, ErrNilColor) {
		t.Errorf("nil color on misconfigured converter: error = %v, want ErrNilColor", err)
	}
}

func TestAdaptWithoutAdaptationConfigured(t *testing.T) {
	conv := NewConverter(WithoutAdaptation())
	red := XYZ(0.4124564, 0.2126729, 0.0193339)

	_, err := conv.Adapt(&red, &D65)
	if !errors.Is(err, ErrNoAdaptation) {
		t.Errorf("Adapt on adaptation-disabled converter: error = %v, want ErrNoAdaptation", err)
	}

	// WithAdaptation(nil) behaves the same as WithoutAdaptation.
	conv = NewConverter(WithAdaptation(nil))
	if _, err := conv.Adapt(&red, &D65); !errors.Is(err, ErrNoAdaptation) {
		t.Errorf("WithAdaptation(nil): error = %v, want ErrNoAdaptation", err)
	}
}

func TestAdaptEqualWhitesIsExact(t *testing.T) {
	conv := NewConverter(WithTargetWhite(D65))
	v := XYZ(0.1234567, 0.7654321, 0.5555555)

	got, err := conv.Adapt(&v, &D65)
	if err != nil {
		t.Fatalf("Adapt returned error: %v", err)
	}
	if got.Vec() != v.Vec() {
		t.Errorf("Adapt with equal whites = %v, want input unchanged", got)
	}
}
