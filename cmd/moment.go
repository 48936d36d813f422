package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/beamcap/internal/aci"
)

var (
	// Unfactored moments (display units, k-ft or kN-m)
	momentDead       float64
	momentLive       float64
	momentRoof       float64
	momentWind       float64
	momentEarthquake float64
	momentRain       float64

	// Options
	showAll          bool
	useSimplified    bool
	momentMomentUnit string
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate factored moment using ACI 318 load combinations",
	Long: `Calculate the factored moment (Mu) based on ACI 318-19 load
combinations (Table 5.3.1).

Provide unfactored moments from different load types and this command
will compute the factored moments for all applicable combinations.
Moments are factored unit-blind: supply them in k-ft or kN-m and the
result carries the same unit.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  beamcap moment --dead 50 --live 30

  # With wind load
  beamcap moment --dead 50 --live 30 --wind 20

  # Show all combinations
  beamcap moment --dead 50 --live 30 --all`,
	Run: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	momentCmd.Flags().Float64VarP(&momentDead, "dead", "d", 0, "Moment due to dead load")
	momentCmd.Flags().Float64VarP(&momentLive, "live", "l", 0, "Moment due to live load")
	momentCmd.Flags().Float64VarP(&momentRoof, "roof", "r", 0, "Moment due to roof live load")
	momentCmd.Flags().Float64VarP(&momentWind, "wind", "w", 0, "Moment due to wind load")
	momentCmd.Flags().Float64VarP(&momentEarthquake, "earthquake", "e", 0, "Moment due to earthquake load")
	momentCmd.Flags().Float64VarP(&momentRain, "rain", "R", 0, "Moment due to rain load")
	momentCmd.Flags().StringVar(&momentMomentUnit, "unit", "k-ft", "Moment unit label for the report (k-ft or kN-m)")

	momentCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runMoment(cmd *cobra.Command, args []string) {
	moments := aci.LoadMoments{
		Dead:       momentDead,
		Live:       momentLive,
		Roof:       momentRoof,
		Wind:       momentWind,
		Earthquake: momentEarthquake,
		Rain:       momentRain,
	}

	if moments.IsZero() {
		fmt.Println("Error: Please provide at least one unfactored moment.")
		fmt.Println("Use 'beamcap moment --help' for usage information.")
		return
	}

	combinations := aci.LoadCombinations
	if useSimplified {
		combinations = aci.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACI 318 FACTORED MOMENT CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Printf("UNFACTORED MOMENTS (%s):\n", momentMomentUnit)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if moments.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", moments.Dead)
	}
	if moments.Live != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", moments.Live)
	}
	if moments.Roof != 0 {
		fmt.Fprintf(w, "  Roof Live Load (Lr):\t%.2f\n", moments.Roof)
	}
	if moments.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.2f\n", moments.Wind)
	}
	if moments.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.2f\n", moments.Earthquake)
	}
	if moments.Rain != 0 {
		fmt.Fprintf(w, "  Rain Load (R):\t%.2f\n", moments.Rain)
	}
	w.Flush()
	fmt.Println()

	maxMu, governing := aci.GoverningMoment(moments, combinations)

	if showAll {
		fmt.Println("LOAD COMBINATIONS (ACI 318 Table 5.3.1):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tMu (%s)\n", momentMomentUnit)
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			mu := combo.FactoredMoment(moments)
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, mu, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED MOMENT (Mu) = %.2f %s  \n", maxMu, momentMomentUnit)
	fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	fmt.Println()
}
