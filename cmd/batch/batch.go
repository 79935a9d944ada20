// Package batch implements the batch command: classify every ledger file in
// a directory.
package batch

import (
	"ledgerlens/cmd/root"
	"ledgerlens/internal/batch"
	"ledgerlens/internal/logging"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

// Cmd is the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Classify every ledger file in a directory",
	Long: `Batch classifies all CSV and XLSX ledger files in a directory against the
category store and writes one classified CSV per input file.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input-dir", "I", "", "Directory containing ledger files (required)")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "O", "", "Directory for classified output files (required)")
	_ = Cmd.MarkFlagRequired("input-dir")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) {
	st := root.OpenStore()
	processor := batch.NewProcessor(st, logging.NewLogrusAdapterFromLogger(root.Log))

	results, err := processor.Process(inputDir, outputDir)
	if err != nil {
		root.Log.Fatalf("Batch classification failed: %v", err)
	}

	for _, r := range results {
		root.Log.Infof("%s: %d transactions (%d uncategorized) -> %s",
			r.InputFile, r.Transactions, r.Uncategorized, r.OutputFile)
	}
}
