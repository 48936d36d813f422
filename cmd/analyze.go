package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/beamcap/internal/aci"
	"github.com/structcalc/beamcap/internal/beam"
	"github.com/structcalc/beamcap/internal/diagram"
	"github.com/structcalc/beamcap/internal/history"
)

var (
	// Unit system
	analyzeUnits string

	// Geometry
	analyzeWidth  float64
	analyzeHeight float64
	analyzeDepth  float64

	// Materials
	analyzeFc  float64
	analyzeFy  float64
	analyzeEs  float64
	analyzeB1  float64
	analyzeEcu float64

	// Reinforcement
	analyzeBars    int
	analyzeBarArea float64
	analyzeAs      float64

	// Demand
	analyzeMu float64

	// Output options
	analyzeDiagram bool
	analyzeExport  string
	analyzeSave    bool
	analyzeDB      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze flexural capacity of a singly reinforced rectangular beam",
	Long: `Calculate the nominal (Mn) and design (φMn) moment capacity of a
singly reinforced rectangular beam section per ACI 318.

The analysis uses the Whitney equivalent rectangular stress block and
strain compatibility:
  - Table 22.2.2.4.3: stress block factor β1
  - Table 21.2.2:     strength reduction factor φ from net tensile strain
  - Section 9.6.1.2:  minimum flexural reinforcement

Reinforcement is given either as bar count and per-bar area, or as a
total steel area with --as.

Examples:
  # ACI Example 4-1: 12x20 in beam, 4 No. 8 bars
  beamcap analyze --units imperial -b 12 --height 20 -d 17.5 \
      --fc 4000 --fy 60000 -n 4 --bar-area 0.79

  # Same section by total steel area
  beamcap analyze --units imperial -b 12 --height 20 -d 17.5 \
      --fc 4000 --fy 60000 --as 3.16

  # SI section with ASCII diagram, saved to history
  beamcap analyze --units si -b 250 --height 565 -d 500 \
      --fc 20 --fy 420 -n 3 --bar-area 510 --diagram --save`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeUnits, "units", "u", "imperial", "Unit system: imperial (psi, in) or si (MPa, mm)")

	// Geometry flags
	analyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Beam width b [required]")
	analyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Beam total depth h [required]")
	analyzeCmd.Flags().Float64VarP(&analyzeDepth, "depth", "d", 0, "Effective depth d to tension steel centroid [required]")

	// Material flags
	analyzeCmd.Flags().Float64Var(&analyzeFc, "fc", 0, "Concrete compressive strength f'c [required]")
	analyzeCmd.Flags().Float64Var(&analyzeFy, "fy", 0, "Steel yield strength fy [required]")
	analyzeCmd.Flags().Float64Var(&analyzeEs, "es", 0, "Steel modulus Es (default 29,000,000 psi / 200,000 MPa)")
	analyzeCmd.Flags().Float64Var(&analyzeB1, "beta1", 0, "Stress block factor β1 (default derived from f'c)")
	analyzeCmd.Flags().Float64Var(&analyzeEcu, "ecu", 0, "Ultimate concrete strain (default 0.003)")

	// Reinforcement flags
	analyzeCmd.Flags().IntVarP(&analyzeBars, "bars", "n", 0, "Number of tension bars")
	analyzeCmd.Flags().Float64Var(&analyzeBarArea, "bar-area", 0, "Area per bar")
	analyzeCmd.Flags().Float64Var(&analyzeAs, "as", 0, "Total tension steel area (alternative to --bars/--bar-area)")

	// Demand
	analyzeCmd.Flags().Float64Var(&analyzeMu, "mu", 0, "Factored moment demand in display units (k-ft or kN-m) to check against φMn")

	// Output options
	analyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Print ASCII section and strain diagrams")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "Export section diagram to an image file (png, svg, pdf)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Record the calculation to the history database")
	analyzeCmd.Flags().StringVar(&analyzeDB, "db", "", "History database path (default under the user config dir)")

	analyzeCmd.MarkFlagRequired("width")
	analyzeCmd.MarkFlagRequired("height")
	analyzeCmd.MarkFlagRequired("depth")
	analyzeCmd.MarkFlagRequired("fc")
	analyzeCmd.MarkFlagRequired("fy")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	units, err := aci.ParseUnitSystem(analyzeUnits)
	if err != nil {
		return err
	}

	var opts []beam.Option
	if analyzeEs > 0 {
		opts = append(opts, beam.WithSteelModulus(analyzeEs))
	}
	if analyzeB1 > 0 {
		opts = append(opts, beam.WithStressBlockFactor(analyzeB1))
	}
	if analyzeEcu > 0 {
		opts = append(opts, beam.WithUltimateStrain(analyzeEcu))
	}

	var section *beam.Rectangular
	switch {
	case analyzeAs > 0 && (analyzeBars != 0 || analyzeBarArea != 0):
		return fmt.Errorf("--as is mutually exclusive with --bars/--bar-area")
	case analyzeAs > 0:
		section, err = beam.NewRectangularArea(units, analyzeWidth, analyzeHeight, analyzeDepth,
			analyzeFc, analyzeFy, analyzeAs, opts...)
	default:
		section, err = beam.NewRectangular(units, analyzeWidth, analyzeHeight, analyzeDepth,
			analyzeFc, analyzeFy, analyzeBars, analyzeBarArea, opts...)
	}
	if err != nil {
		return err
	}

	result, err := section.Solve()
	if err != nil {
		return err
	}

	printAnalysis(section, result)

	if analyzeDiagram {
		data := diagram.FromResult(section, result)
		fmt.Print(diagram.DrawSection(data))
		fmt.Print(diagram.StrainProfile(data))
	}

	if analyzeExport != "" {
		data := diagram.FromResult(section, result)
		if err := diagram.ExportSection(data, analyzeExport); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("  Diagram exported to %s\n\n", analyzeExport)
	}

	if analyzeSave {
		if err := saveCalculation(cmd, section, result); err != nil {
			return err
		}
	}

	return nil
}

func printAnalysis(section *beam.Rectangular, result *beam.MomentResult) {
	u := section.UnitLabels()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SINGLY REINFORCED BEAM ANALYSIS - ACI 318")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Unit System:\t%s\n", section.Units)
	fmt.Fprintf(w, "  Beam Width (b):\t%g %s\n", section.Width, u.Length)
	fmt.Fprintf(w, "  Beam Depth (h):\t%g %s\n", section.Height, u.Length)
	fmt.Fprintf(w, "  Effective Depth (d):\t%g %s\n", section.EffectiveDepth, u.Length)
	fmt.Fprintf(w, "  f'c:\t%g %s\n", section.Fc, u.Stress)
	fmt.Fprintf(w, "  fy:\t%g %s\n", section.Fy, u.Stress)
	fmt.Fprintf(w, "  Es:\t%g %s\n", section.Es, u.Stress)
	fmt.Fprintf(w, "  Reinforcement:\t%d × %g %s (As = %.3f %s)\n",
		section.Bars, section.BarArea, u.Area, section.SteelArea, u.Area)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  β₁:\t%.4f\n", section.Beta1)
	fmt.Fprintf(w, "  Tension force (T):\t%.2f %s (%.2f %s)\n",
		result.TensionForce, u.Force, result.TensionForceDisplay, u.ForceK)
	fmt.Fprintf(w, "  Stress block depth (a):\t%.3f %s\n", result.StressBlockDepth, u.Length)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.3f %s\n", result.NeutralAxisDepth, u.Length)
	fmt.Fprintf(w, "  Yield strain (εy):\t%.6f\n", result.YieldStrain)
	fmt.Fprintf(w, "  Steel strain (εs):\t%.6f\n", result.SteelStrain)
	yieldStatus := "yes (fs = fy)"
	if !result.SteelYields {
		yieldStatus = fmt.Sprintf("no (elastic, fs = %.1f %s)", result.SteelStress, u.Stress)
	}
	fmt.Fprintf(w, "  Steel yields:\t%s\n", yieldStatus)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", result.ReductionFactor)
	w.Flush()
	fmt.Println()

	fmt.Println("MINIMUM REINFORCEMENT (ACI 9.6.1.2):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As,min:\t%.3f %s\n", result.MinSteelArea, u.Area)
	minMark := "✓"
	if !result.MeetsMinSteel {
		minMark = "⚠ below minimum"
	}
	fmt.Fprintf(w, "  As provided:\t%.3f %s  %s\n", section.SteelArea, u.Area, minMark)
	w.Flush()
	fmt.Println()

	fmt.Println("MOMENT CAPACITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Moment (Mn):\t%.2f %s (%.2f %s)\n",
		result.NominalMoment, u.Moment, result.NominalMomentDisplay, u.MomentDisplay)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("φMn = %.2f %s", result.DesignMomentDisplay, u.MomentDisplay),
		fmt.Sprintf("Section is %s", result.Classification()),
	}
	if analyzeMu > 0 {
		if result.DesignMomentDisplay >= analyzeMu {
			lines = append(lines, fmt.Sprintf("ADEQUATE for Mu = %.2f %s", analyzeMu, u.MomentDisplay))
		} else {
			lines = append(lines, fmt.Sprintf("NOT ADEQUATE for Mu = %.2f %s", analyzeMu, u.MomentDisplay))
		}
	}
	if !result.MeetsMinSteel {
		lines = append(lines, "WARNING: below minimum reinforcement")
	}
	fmt.Print(diagram.SummaryBox("DESIGN CAPACITY", lines))
	fmt.Println()
}

func saveCalculation(cmd *cobra.Command, section *beam.Rectangular, result *beam.MomentResult) error {
	path, err := historyPath(analyzeDB)
	if err != nil {
		return err
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Record(cmd.Context(), section, result); err != nil {
		return fmt.Errorf("record calculation: %w", err)
	}
	fmt.Printf("  Calculation saved to %s\n\n", path)
	return nil
}

// historyPath resolves the history database location, defaulting to the
// user config directory.
func historyPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir = filepath.Join(dir, "beamcap")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
