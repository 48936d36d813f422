package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structcalc/beamcap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "beamcap",
	Short: "Rectangular Concrete Beam Flexural Capacity Tool",
	Long: `beamcap - Rectangular Concrete Beam Flexural Capacity

A CLI tool for computing the nominal and design flexural moment
capacity of singly reinforced rectangular concrete beam sections
per ACI 318 (Whitney stress block, strain compatibility).

This tool helps structural engineers perform:
  - Moment capacity analysis (Mn, φMn) in imperial or SI units
  - Factored moment calculation using ACI 318 load combinations
  - Minimum flexural reinforcement checks
  - Section/strain/stress diagram rendering and image export
  - Local calculation history

All calculations follow ACI 318-19 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamcap v%-47s║\n", version.Version)
		fmt.Println("  ║   Rectangular Concrete Beam Flexural Capacity             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Nominal and design moment strength of singly reinforced")
		fmt.Println("  rectangular sections per ACI 318.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Capacity analysis by bar count × area or total steel area")
		fmt.Println("    • Imperial (psi, in) and SI (MPa, mm) unit systems")
		fmt.Println("    • Factored moments from ACI 318 load combinations")
		fmt.Println("    • ASCII diagrams and PNG/SVG/PDF export")
		fmt.Println("    • Calculation history stored locally")
		fmt.Println()
		fmt.Println("  Use 'beamcap --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
