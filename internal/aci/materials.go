package aci

import (
	"fmt"
	"math"
	"strings"
)

// ACI 318-19 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Table 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 4000 psi (28 MPa)
	Beta1Min = 0.65 // for f'c >= 8000 psi (55 MPa)

	// Ultimate concrete strain (Section 22.2.2.1)
	EpsilonCU = 0.003

	// Strength reduction factors (Table 21.2.2)
	PhiTension     = 0.90 // Tension-controlled sections
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Net tensile strain limits for section classification
	TensionStrainLimit     = 0.005
	CompressionStrainLimit = 0.002
)

// UnitSystem fixes the numeric convention (psi/in vs MPa/mm) for every
// input and output of a calculation. A single calculation never mixes
// systems.
type UnitSystem int

const (
	Imperial UnitSystem = iota // psi, in, lb
	SI                         // MPa, mm, N
)

func (u UnitSystem) String() string {
	switch u {
	case Imperial:
		return "imperial"
	case SI:
		return "si"
	}
	return fmt.Sprintf("UnitSystem(%d)", int(u))
}

// MarshalJSON serializes the unit system by name.
func (u UnitSystem) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts the same names ParseUnitSystem does.
func (u *UnitSystem) UnmarshalJSON(b []byte) error {
	parsed, err := ParseUnitSystem(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnitSystem converts a user-supplied unit system name.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "imperial", "us", "psi":
		return Imperial, nil
	case "si", "metric", "mpa":
		return SI, nil
	}
	return Imperial, fmt.Errorf("unknown unit system %q (use imperial or si)", s)
}

// coefficients holds the per-unit-system numeric constants. The formula
// shape is shared; only these values differ between imperial and SI, so
// the two code paths cannot drift apart.
type coefficients struct {
	beta1Low   float64 // f'c at or below which β1 = 0.85
	beta1High  float64 // f'c at or above which β1 = 0.65
	beta1Slope float64 // f'c increment per 0.05 reduction in β1

	minSteelRoot  float64 // multiplier on √f'c/fy (9.6.1.2a)
	minSteelFloor float64 // flat numerator over fy (9.6.1.2b)

	steelModulus float64 // default Es (Section 20.2.2.2)

	forceScale   float64 // force → kips or kN
	momentScale  float64 // moment → k-ft or kN·m
	momentKScale float64 // moment → k-in (imperial); identity for SI
}

var systems = map[UnitSystem]coefficients{
	Imperial: {
		beta1Low:      4000,
		beta1High:     8000,
		beta1Slope:    1000,
		minSteelRoot:  3,
		minSteelFloor: 200,
		steelModulus:  29000000,
		forceScale:    1000,  // lb → kips
		momentScale:   12000, // lb-in → k-ft
		momentKScale:  1000,  // lb-in → k-in
	},
	SI: {
		beta1Low:      28,
		beta1High:     55,
		beta1Slope:    7,
		minSteelRoot:  0.25,
		minSteelFloor: 1.4,
		steelModulus:  200000,
		forceScale:    1000, // N → kN
		momentScale:   1e6,  // N-mm → kN·m
		momentKScale:  1,    // N-mm stays N-mm
	},
}

// Beta1 derives the equivalent rectangular stress block factor from the
// concrete strength per ACI 318 Table 22.2.2.4.3. The interpolation is
// continuous at both breakpoints.
func Beta1(units UnitSystem, fc float64) float64 {
	c := systems[units]
	switch {
	case fc <= c.beta1Low:
		return Beta1Max
	case fc >= c.beta1High:
		return Beta1Min
	}
	return Beta1Max - 0.05*(fc-c.beta1Low)/c.beta1Slope
}

// Phi computes the strength reduction factor from the net tensile strain
// per ACI 318 Table 21.2.2: 0.90 when tension-controlled, 0.65 when
// compression-controlled, linear in between.
func Phi(epsilonT float64) float64 {
	switch {
	case epsilonT >= TensionStrainLimit:
		return PhiTension
	case epsilonT <= CompressionStrainLimit:
		return PhiCompression
	}
	return PhiCompression + (PhiTension-PhiCompression)*
		(epsilonT-CompressionStrainLimit)/(TensionStrainLimit-CompressionStrainLimit)
}

// MinSteelArea computes the minimum flexural reinforcement per ACI 318
// Section 9.6.1.2:
//
//	imperial: As,min = max(3·√f'c/fy, 200/fy) · b·d
//	SI:       As,min = max(0.25·√f'c/fy, 1.4/fy) · b·d
func MinSteelArea(units UnitSystem, fc, fy, b, d float64) float64 {
	c := systems[units]
	root := c.minSteelRoot * math.Sqrt(fc) / fy
	floor := c.minSteelFloor / fy
	return math.Max(root, floor) * b * d
}

// DefaultSteelModulus returns the code default Es for the unit system.
func DefaultSteelModulus(units UnitSystem) float64 {
	return systems[units].steelModulus
}

// ForceScale returns the divisor converting a consistent-unit force
// (lb or N) to its display unit (kips or kN).
func ForceScale(units UnitSystem) float64 { return systems[units].forceScale }

// MomentScale returns the divisor converting a consistent-unit moment
// (lb-in or N-mm) to its display unit (k-ft or kN·m).
func MomentScale(units UnitSystem) float64 { return systems[units].momentScale }

// MomentKScale returns the divisor converting a consistent-unit moment to
// its intermediate reporting unit (k-in for imperial; N-mm unchanged for SI).
func MomentKScale(units UnitSystem) float64 { return systems[units].momentKScale }
