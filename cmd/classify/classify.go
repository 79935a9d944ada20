// Package classify implements the classify command: read a ledger, assign a
// category to every transaction, and write the classified ledger out.
package classify

import (
	"ledgerlens/cmd/root"
	"ledgerlens/internal/categorizer"
	"ledgerlens/internal/ledger"
	"ledgerlens/internal/models"

	"github.com/spf13/cobra"
)

// Cmd is the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a ledger file into spending categories",
	Long: `Classify reads a transaction ledger (CSV or XLSX), assigns exactly one
category to every transaction using the keyword store, and writes the
classified ledger as CSV.`,
	Run: classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" || output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	transactions, err := ledger.Read(input)
	if err != nil {
		root.Log.Fatalf("Failed to load ledger: %v", err)
	}

	st := root.OpenStore()
	classified := categorizer.Classify(transactions, st)

	if err := ledger.WriteCSV(classified, output); err != nil {
		root.Log.Fatalf("Failed to write classified ledger: %v", err)
	}

	uncategorized := 0
	for _, tx := range classified {
		if tx.Category == models.CategoryUncategorized {
			uncategorized++
		}
	}
	root.Log.Infof("Classified %d transactions (%d uncategorized)", len(classified), uncategorized)
}
