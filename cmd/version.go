package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structcalc/beamcap/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamcap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamcap v%s\n", version.Version)
		fmt.Println("Rectangular Concrete Beam Flexural Capacity Tool")
		fmt.Println("Based on ACI 318-19 strength design provisions")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
