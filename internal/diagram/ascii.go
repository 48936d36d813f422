// Package diagram renders a solved section for terminals and image files.
// It reads only finite, unit-consistent fields from the section and its
// result; nothing here feeds back into the calculation.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/structcalc/beamcap/internal/aci"
	"github.com/structcalc/beamcap/internal/beam"
)

// Data holds everything needed to draw one solved rectangular section.
type Data struct {
	// Geometry
	Width  float64
	Height float64

	// Analysis results, measured from the compression face
	NeutralAxisDepth float64 // c
	StressBlockDepth float64 // a

	// Reinforcement
	SteelY    float64 // distance from bottom to steel centroid
	SteelArea float64

	// Strains
	EpsilonCU float64
	EpsilonT  float64
	EpsilonY  float64

	// Stresses
	ConcreteStress float64 // 0.85·f'c
	SteelStress    float64

	SteelYields bool

	Units aci.Units
}

// FromResult assembles drawing data from a section and its solved result.
func FromResult(s *beam.Rectangular, r *beam.MomentResult) Data {
	return Data{
		Width:            s.Width,
		Height:           s.Height,
		NeutralAxisDepth: r.NeutralAxisDepth,
		StressBlockDepth: r.StressBlockDepth,
		SteelY:           s.Height - s.EffectiveDepth,
		SteelArea:        s.SteelArea,
		EpsilonCU:        s.UltimateStrain,
		EpsilonT:         r.NetTensileStrain,
		EpsilonY:         r.YieldStrain,
		ConcreteStress:   0.85 * s.Fc,
		SteelStress:      r.SteelStress,
		SteelYields:      r.SteelYields,
		Units:            s.UnitLabels(),
	}
}

// DrawSection creates an ASCII beam section with strain and stress columns.
func DrawSection(data Data) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	naLine := int(data.NeutralAxisDepth / data.Height * float64(heightChars))
	aLine := int(data.StressBlockDepth / data.Height * float64(heightChars))
	steelLine := heightChars - int(data.SteelY/data.Height*float64(heightChars))

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION                    STRAIN              STRESS\n")
	sb.WriteString("  ────────────                    ──────              ──────\n")

	for i := 0; i <= heightChars; i++ {
		// Section column
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		} else if i == heightChars {
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		} else {
			var fill string
			if i <= aLine {
				// Stress block region (compression)
				fill = strings.Repeat("░", widthChars)
			} else {
				fill = strings.Repeat(" ", widthChars)
			}

			// Steel sits below the stress block, so the fill here is
			// plain spaces and safe to splice by byte offset.
			if i == steelLine && i > aLine {
				mid := widthChars / 2
				fill = fill[:mid-3] + "●────●" + fill[mid+3:]
			}

			sb.WriteString(fmt.Sprintf("  │%s│", fill))
			if i == naLine {
				sb.WriteString(" ◄─ N.A.")
			}
		}

		// Strain column
		sb.WriteString("    ")
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ├── εcu = %.4f", data.EpsilonCU))
		} else if i == naLine {
			sb.WriteString("  ├── ε = 0")
		} else if i == steelLine {
			yieldMark := ""
			if data.SteelYields {
				yieldMark = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εt = %.4f%s", data.EpsilonT, yieldMark))
		} else if i > 0 && i < heightChars {
			sb.WriteString("  │")
		}

		// Stress column
		if i == 0 {
			sb.WriteString(fmt.Sprintf("      ┌── 0.85f'c = %.1f %s", data.ConcreteStress, data.Units.Stress))
		} else if i == aLine && aLine > 0 {
			sb.WriteString("      └── (stress block)")
		} else if i == steelLine {
			sb.WriteString(fmt.Sprintf("      ── fs = %.1f %s", data.SteelStress, data.Units.Stress))
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone (stress block)\n")
	sb.WriteString("  ●●● = Tension reinforcement\n")
	sb.WriteString(fmt.Sprintf("  N.A. = Neutral axis at c = %.2f %s from top\n", data.NeutralAxisDepth, data.Units.Length))
	sb.WriteString(fmt.Sprintf("  Stress block depth a = %.2f %s\n", data.StressBlockDepth, data.Units.Length))

	return sb.String()
}

// StrainProfile plots the linear strain distribution over the section
// depth, compression positive. The neutral axis is where the curve
// crosses zero.
func StrainProfile(data Data) string {
	const samples = 40

	profile := make([]float64, samples+1)
	for i := 0; i <= samples; i++ {
		depth := float64(i) / float64(samples) * data.Height
		profile[i] = data.EpsilonCU * (data.NeutralAxisDepth - depth) / data.NeutralAxisDepth
	}

	chart := asciigraph.Plot(profile,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption("strain vs depth (left = compression face, right = bottom fiber)"),
	)

	var sb strings.Builder
	sb.WriteString("\n  STRAIN PROFILE\n")
	sb.WriteString("  ──────────────\n")
	sb.WriteString(chart)
	sb.WriteString("\n")
	yieldMark := ""
	if data.SteelYields {
		yieldMark = " (steel yields)"
	}
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f, εt = %.4f%s\n", data.EpsilonY, data.EpsilonT, yieldMark))
	return sb.String()
}

// SummaryBox frames result lines in a box for the terminal report.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
