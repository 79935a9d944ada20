// Package correct implements the correct command: apply a batch of user
// category corrections to a ledger, teach the store the corrected
// descriptions as keywords, and write the updated ledger.
package correct

import (
	"fmt"
	"os"

	"ledgerlens/cmd/root"
	"ledgerlens/internal/categorizer"
	"ledgerlens/internal/ledger"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var correctionsFile string

// Cmd is the correct command
var Cmd = &cobra.Command{
	Use:   "correct",
	Short: "Apply category corrections and learn from them",
	Long: `Correct reads a ledger and a corrections file, reassigns the corrected
rows, learns each corrected description as a keyword of its new category,
persists the store once for the whole batch, reclassifies the ledger with the
newly learned keywords, and writes the result.

The corrections file is a CSV with columns Row (1-based ledger row) and
Category.`,
	Run: correctFunc,
}

func init() {
	Cmd.Flags().StringVarP(&correctionsFile, "corrections", "c", "", "Corrections CSV file (required)")
	_ = Cmd.MarkFlagRequired("corrections")
}

// correctionRow is one row of the corrections CSV.
type correctionRow struct {
	Row      int    `csv:"Row"`
	Category string `csv:"Category"`
}

func readCorrections(path string) ([]categorizer.Correction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening corrections file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []correctionRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing corrections file: %w", err)
	}

	corrections := make([]categorizer.Correction, len(rows))
	for i, row := range rows {
		corrections[i] = categorizer.Correction{Row: row.Row - 1, Category: row.Category}
	}
	return corrections, nil
}

func correctFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" || output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	transactions, err := ledger.Read(input)
	if err != nil {
		root.Log.Fatalf("Failed to load ledger: %v", err)
	}

	corrections, err := readCorrections(correctionsFile)
	if err != nil {
		root.Log.Fatalf("Failed to load corrections: %v", err)
	}

	st := root.OpenStore()
	classified := categorizer.Classify(transactions, st)

	learned, err := categorizer.ApplyCorrections(classified, corrections, st)
	if err != nil {
		root.Log.Fatalf("Failed to apply corrections: %v", err)
	}

	// Reclassify so newly learned keywords propagate to similar rows, then
	// pin the explicitly corrected rows: a user correction outranks any
	// keyword match for its own row.
	result := categorizer.Classify(classified, st)
	for _, c := range corrections {
		result[c.Row].Category = c.Category
	}

	if err := ledger.WriteCSV(result, output); err != nil {
		root.Log.Fatalf("Failed to write corrected ledger: %v", err)
	}
	root.Log.Infof("Applied %d corrections, learned %d new keywords", len(corrections), learned)
}
