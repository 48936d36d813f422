package beam

import (
	"fmt"

	"github.com/structcalc/beamcap/internal/aci"
)

// MomentResult holds every quantity derived by one Solve call. All fields
// are in the section's consistent units except the *Display fields, which
// are scaled for reporting (kips/k-ft for imperial, kN/kN·m for SI) and
// never feed back into the calculation. A result is written once and
// never mutated; consumers copy what they need.
type MomentResult struct {
	// Equilibrium
	TensionForce     float64 `json:"T"` // T = As·fy (yielding assumption)
	StressBlockDepth float64 `json:"a"` // a = T / (0.85·f'c·b)
	NeutralAxisDepth float64 `json:"c"` // c = a / β1

	// Strain compatibility
	YieldStrain      float64 `json:"epsilon_y"` // εy = fy/Es
	SteelStrain      float64 `json:"epsilon_s"` // εs = εcu·(d−c)/c
	SteelYields      bool    `json:"yield_check"`
	SteelStress      float64 `json:"fs"` // fy if yielding, else εs·Es
	NetTensileStrain float64 `json:"epsilon_t"`

	// Capacity
	NominalMoment   float64 `json:"Mn"`  // As·fs·(d − a/2)
	ReductionFactor float64 `json:"phi"` // φ from εt
	DesignMoment    float64 `json:"Mu"`  // φ·Mn

	// Minimum reinforcement
	MinSteelArea  float64 `json:"As_min"`
	MeetsMinSteel bool    `json:"as_check"`

	// Display-scaled values
	TensionForceDisplay  float64 `json:"T_display"`  // kips or kN
	NominalMomentK       float64 `json:"Mn_k"`       // k-in or N-mm
	NominalMomentDisplay float64 `json:"Mn_display"` // k-ft or kN·m
	DesignMomentDisplay  float64 `json:"Mu_display"` // k-ft or kN·m
}

// Solve computes the nominal and design flexural capacity of the section
// by the ACI 318 strain-compatibility method with the Whitney rectangular
// stress block. It is a pure function of the section: no state, no I/O,
// identical output for identical input, safe to call concurrently.
//
// Known quirk carried from the reference calculation: TensionForce is
// always As·fy from the initial yielding assumption, while NominalMoment
// uses the elastic fs when the steel does not yield. The two disagree for
// non-yielding sections; SteelYields exposes which regime applies.
func (s *Rectangular) Solve() (*MomentResult, error) {
	// Force equilibrium, steel assumed at yield.
	// T = C → As·fy = 0.85·f'c·b·a
	t := s.SteelArea * s.Fy
	a := t / (0.85 * s.Fc * s.Width)
	c := a / s.Beta1

	// Structurally unreachable when construction invariants held, but a
	// bypassed constructor must not propagate a non-finite strain.
	if c <= 0 {
		return nil, &InvalidSectionError{
			Field:  "neutral axis depth",
			Reason: fmt.Sprintf("degenerate section, c=%g", c),
		}
	}

	// Strain compatibility from the linear strain profile.
	epsilonY := s.Fy / s.Es
	epsilonS := s.UltimateStrain * (s.EffectiveDepth - c) / c

	yields := epsilonS >= epsilonY
	fs := s.Fy
	if !yields {
		fs = epsilonS * s.Es
	}

	mn := s.SteelArea * fs * (s.EffectiveDepth - a/2)

	asMin := aci.MinSteelArea(s.Units, s.Fc, s.Fy, s.Width, s.EffectiveDepth)

	// Net tensile strain at the extreme steel layer; a single layer means
	// εt = εs.
	epsilonT := epsilonS
	phi := aci.Phi(epsilonT)
	mu := phi * mn

	forceScale := aci.ForceScale(s.Units)
	momentScale := aci.MomentScale(s.Units)

	return &MomentResult{
		TensionForce:     t,
		StressBlockDepth: a,
		NeutralAxisDepth: c,

		YieldStrain:      epsilonY,
		SteelStrain:      epsilonS,
		SteelYields:      yields,
		SteelStress:      fs,
		NetTensileStrain: epsilonT,

		NominalMoment:   mn,
		ReductionFactor: phi,
		DesignMoment:    mu,

		MinSteelArea:  asMin,
		MeetsMinSteel: s.SteelArea >= asMin,

		TensionForceDisplay:  t / forceScale,
		NominalMomentK:       mn / aci.MomentKScale(s.Units),
		NominalMomentDisplay: mn / momentScale,
		DesignMomentDisplay:  mu / momentScale,
	}, nil
}

// IsTensionControlled reports whether the section classifies as
// tension-controlled (εt ≥ 0.005).
func (r *MomentResult) IsTensionControlled() bool {
	return r.NetTensileStrain >= aci.TensionStrainLimit
}

// Classification describes the failure mode governing φ.
func (r *MomentResult) Classification() string {
	switch {
	case r.NetTensileStrain >= aci.TensionStrainLimit:
		return "tension-controlled"
	case r.NetTensileStrain <= aci.CompressionStrainLimit:
		return "compression-controlled"
	}
	return "transition zone"
}
