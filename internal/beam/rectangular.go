package beam

import (
	"fmt"

	"github.com/structcalc/beamcap/internal/aci"
)

// Rectangular represents a singly reinforced rectangular beam section.
// All numeric fields follow one unit system: psi/in for imperial, MPa/mm
// for SI. Instances are validated at construction and treated as
// immutable afterward; nothing in this module writes to one once built.
type Rectangular struct {
	Units aci.UnitSystem `json:"unit_system"`

	// Geometry (in or mm)
	Width          float64 `json:"b"` // b - beam width
	Height         float64 `json:"h"` // h - total depth
	EffectiveDepth float64 `json:"d"` // d - depth to centroid of tension steel

	// Materials (psi or MPa)
	Fc float64 `json:"fc"` // f'c - concrete compressive strength
	Fy float64 `json:"fy"` // fy - steel yield strength
	Es float64 `json:"Es"` // Es - steel modulus of elasticity

	// Reinforcement
	Bars    int     `json:"n_bars"`   // number of tension bars
	BarArea float64 `json:"bar_area"` // area per bar (in² or mm²)

	// SteelArea is always Bars × BarArea; it is derived at construction
	// and never independently settable.
	SteelArea float64 `json:"As"`

	// Stress block factor; derived from f'c unless overridden.
	Beta1 float64 `json:"beta1"`

	// Ultimate concrete strain; 0.003 unless overridden.
	UltimateStrain float64 `json:"epsilon_cu"`
}

// Option adjusts an optional section parameter before validation.
type Option func(*Rectangular)

// WithSteelModulus overrides the code default Es.
func WithSteelModulus(es float64) Option {
	return func(s *Rectangular) { s.Es = es }
}

// WithStressBlockFactor supplies an explicit β1 instead of deriving it
// from f'c. The value is used verbatim: it is an escape hatch for code
// editions outside the default table and is not checked against it.
func WithStressBlockFactor(beta1 float64) Option {
	return func(s *Rectangular) { s.Beta1 = beta1 }
}

// WithUltimateStrain overrides the default ultimate concrete strain.
func WithUltimateStrain(ecu float64) Option {
	return func(s *Rectangular) { s.UltimateStrain = ecu }
}

// NewRectangular builds a validated section from bar count and per-bar
// area. The tension steel area is always bars × barArea; callers never
// supply an aggregate that could disagree with the bar layout.
func NewRectangular(units aci.UnitSystem, b, h, d, fc, fy float64, bars int, barArea float64, opts ...Option) (*Rectangular, error) {
	s := &Rectangular{
		Units:          units,
		Width:          b,
		Height:         h,
		EffectiveDepth: d,
		Fc:             fc,
		Fy:             fy,
		Bars:           bars,
		BarArea:        barArea,
		UltimateStrain: aci.EpsilonCU,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.Es == 0 {
		s.Es = aci.DefaultSteelModulus(units)
	}
	if s.Beta1 == 0 {
		s.Beta1 = aci.Beta1(units, fc)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	s.SteelArea = float64(s.Bars) * s.BarArea
	return s, nil
}

// NewRectangularArea builds a section directly from a total tension steel
// area. Internally this is the single-bar case (n=1, barArea=as) so both
// entry points converge on the same fields.
func NewRectangularArea(units aci.UnitSystem, b, h, d, fc, fy, as float64, opts ...Option) (*Rectangular, error) {
	return NewRectangular(units, b, h, d, fc, fy, 1, as, opts...)
}

func (s *Rectangular) validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"width", s.Width},
		{"total depth", s.Height},
		{"effective depth", s.EffectiveDepth},
		{"concrete strength f'c", s.Fc},
		{"steel yield strength fy", s.Fy},
		{"steel modulus Es", s.Es},
		{"bar area", s.BarArea},
		{"stress block factor beta1", s.Beta1},
		{"ultimate concrete strain", s.UltimateStrain},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return errNonPositive(c.field, c.value)
		}
	}
	if s.Bars <= 0 {
		return &InvalidSectionError{Field: "bar count", Reason: fmt.Sprintf("must be positive, got %d", s.Bars)}
	}
	if s.EffectiveDepth > s.Height {
		return &InvalidSectionError{
			Field:  "effective depth",
			Reason: fmt.Sprintf("d=%g exceeds total depth h=%g", s.EffectiveDepth, s.Height),
		}
	}
	return nil
}

// UnitLabels returns the display labels matching the section's unit system.
func (s *Rectangular) UnitLabels() aci.Units {
	return aci.UnitsFor(s.Units)
}
