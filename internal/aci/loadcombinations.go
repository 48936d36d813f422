package aci

// LoadCombination represents an ACI 318 strength design load combination
// (Section 5.3.1).
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ACI 318-19 Table 5.3.1 - Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "5.3.1a",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "5.3.1b",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5.3.1c",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "5.3.1d",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5.3.1e",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "5.3.1f",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "5.3.1g",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for gravity-only beam checks. These govern the
// large majority of interior beam designs.
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "5.3.1a",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "5.3.1b",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadMoments holds unfactored moments from each load type. The values
// carry whatever moment unit the caller works in; factoring is unit-blind.
type LoadMoments struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// IsZero reports whether no moment was supplied at all.
func (m LoadMoments) IsZero() bool {
	return m.Dead == 0 && m.Live == 0 && m.Roof == 0 &&
		m.Wind == 0 && m.Earthquake == 0 && m.Rain == 0
}

// FactoredMoment applies the combination's load factors to the given
// unfactored moments.
func (lc LoadCombination) FactoredMoment(m LoadMoments) float64 {
	return lc.Dead*m.Dead +
		lc.Live*m.Live +
		lc.Roof*m.Roof +
		lc.Wind*m.Wind +
		lc.Earthquake*m.Earthquake +
		lc.Rain*m.Rain
}

// GoverningMoment finds the maximum factored moment across combinations.
func GoverningMoment(m LoadMoments, combinations []LoadCombination) (float64, LoadCombination) {
	var maxMoment float64
	var governing LoadCombination

	for _, combo := range combinations {
		mu := combo.FactoredMoment(m)
		if mu > maxMoment {
			maxMoment = mu
			governing = combo
		}
	}

	return maxMoment, governing
}
