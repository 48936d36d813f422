package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/structcalc/beamcap/internal/history"
)

var (
	historyLimit int
	historyDB    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded calculations",
	Long: `List past beam capacity calculations recorded with 'analyze --save',
newest first.

Examples:
  beamcap history
  beamcap history --limit 25
  beamcap history --db ./project.db`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "Maximum number of entries to show")
	historyCmd.Flags().StringVar(&historyDB, "db", "", "History database path (default under the user config dir)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := historyPath(historyDB)
	if err != nil {
		return err
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No calculations recorded yet. Run 'beamcap analyze --save' first.")
		return nil
	}

	fmt.Println()
	fmt.Println("CALCULATION HISTORY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tDate\tUnits\tSection\tAs\tφMn\n")
	fmt.Fprintf(w, "  ──\t────\t─────\t───────\t──\t───\n")
	for _, e := range entries {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%g × %g\t%g\t%.2f\n",
			e.ID,
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.UnitSystem,
			num(e.Inputs["b"]), num(e.Inputs["h"]),
			num(e.Inputs["As"]),
			num(e.Results["Mu_display"]))
	}
	w.Flush()
	fmt.Println()

	return nil
}

// num pulls a float out of a decoded JSON map, zero when absent.
func num(v any) float64 {
	f, _ := v.(float64)
	return f
}
