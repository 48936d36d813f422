package aci

// Units is the label set attached to a calculation for rendering. It is a
// static lookup keyed by unit system; attaching labels never changes the
// numeric result.
type Units struct {
	Length        string `json:"length"`
	Area          string `json:"area"`
	Force         string `json:"force"`
	ForceK        string `json:"force_k"`
	Stress        string `json:"stress"`
	Moment        string `json:"moment"`
	MomentK       string `json:"moment_k"`
	MomentDisplay string `json:"moment_display"`
}

var unitLabels = map[UnitSystem]Units{
	Imperial: {
		Length:        "in",
		Area:          "in²",
		Force:         "lb",
		ForceK:        "kips",
		Stress:        "psi",
		Moment:        "lb-in",
		MomentK:       "k-in",
		MomentDisplay: "k-ft",
	},
	SI: {
		Length:        "mm",
		Area:          "mm²",
		Force:         "N",
		ForceK:        "kN",
		Stress:        "MPa",
		Moment:        "N-mm",
		MomentK:       "N-mm",
		MomentDisplay: "kN-m",
	},
}

// UnitsFor returns the display labels for a unit system.
func UnitsFor(units UnitSystem) Units {
	return unitLabels[units]
}
