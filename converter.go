package chroma

import (
	"errors"
	"log/slog"
)

// Conversion and adaptation errors. All are deterministic precondition
// violations: none of them is transient, so retrying never helps.
var (
	// ErrNilColor is returned when a required color argument is nil.
	ErrNilColor = errors.New("chroma: color must not be nil")

	// ErrNilWhitePoint is returned when a required white point argument is nil.
	ErrNilWhitePoint = errors.New("chroma: white point must not be nil")

	// ErrNoAdaptation is returned when white-point adaptation is requested
	// on a converter constructed with WithoutAdaptation. Reconstruct the
	// converter with an adaptation method to fix it.
	ErrNoAdaptation = errors.New("chroma: converter has no chromatic adaptation method configured")
)

// Converter performs conversions between color spaces, adapting
// intermediate XYZ values to a single target white point.
//
// The configuration is fixed at construction and never mutated, so a
// single Converter is safe to share between goroutines. Every conversion
// is a pure function of its inputs and that configuration.
type Converter struct {
	targetWhite CieXyz
	adaptation  ChromaticAdaptation
}

// ConverterOption configures a Converter during creation.
type ConverterOption func(*Converter)

// WithTargetWhite sets the white point that conversion results are
// relative to. The default is D50.
func WithTargetWhite(white CieXyz) ConverterOption {
	return func(c *Converter) {
		c.targetWhite = white
	}
}

// WithAdaptation sets the chromatic adaptation method used when a source
// white point differs from the converter's target. The default is
// Bradford. Passing nil is equivalent to WithoutAdaptation.
func WithAdaptation(method ChromaticAdaptation) ConverterOption {
	return func(c *Converter) {
		c.adaptation = method
	}
}

// WithoutAdaptation disables chromatic adaptation entirely. Conversions
// then treat tristimulus values as already relative to the target white,
// and Adapt returns ErrNoAdaptation.
func WithoutAdaptation() ConverterOption {
	return func(c *Converter) {
		c.adaptation = nil
	}
}

// NewConverter creates a Converter. With no options it targets the D50
// white point and adapts with the Bradford method.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		targetWhite: D50,
		adaptation:  Bradford,
	}
	for _, opt := range opts {
		opt(c)
	}
	Logger().Debug("chroma: converter configured",
		slog.String("targetWhite", c.targetWhite.String()),
		slog.Any("adaptation", c.adaptation))
	return c
}

// TargetWhitePoint returns the white point conversion results are
// relative to.
func (c *Converter) TargetWhitePoint() CieXyz { return c.targetWhite }

// Adaptation returns the configured chromatic adaptation method, or nil
// when the converter was built with WithoutAdaptation.
func (c *Converter) Adaptation() ChromaticAdaptation { return c.adaptation }

// Adapt transforms color from its source white point to the converter's
// target white point.
//
// It returns ErrNilColor or ErrNilWhitePoint when an argument is missing,
// and ErrNoAdaptation when the converter was constructed without an
// adaptation method. All failures occur before any computation.
func (c *Converter) Adapt(color, sourceWhite *CieXyz) (CieXyz, error) {
	if color == nil {
		return CieXyz{}, ErrNilColor
	}
	if sourceWhite == nil {
		return CieXyz{}, ErrNilWhitePoint
	}
	if c.adaptation == nil {
		return CieXyz{}, ErrNoAdaptation
	}
	return c.adaptation.Transform(*color, *sourceWhite, c.targetWhite), nil
}

// adaptTo transforms v from sourceWhite to targetWhite when an adaptation
// method is configured; with adaptation disabled the value passes through
// unchanged. Internal helper for the conversion entry points.
func (c *Converter) adaptTo(v CieXyz, sourceWhite, targetWhite CieXyz) CieXyz {
	if c.adaptation == nil {
		return v
	}
	return c.adaptation.Transform(v, sourceWhite, targetWhite)
}
