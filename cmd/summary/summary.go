// Package summary implements the summary command: per-category spending
// totals for a classified ledger.
package summary

import (
	"fmt"

	"ledgerlens/cmd/root"
	"ledgerlens/internal/categorizer"
	"ledgerlens/internal/fileutils"
	"ledgerlens/internal/ledger"
	"ledgerlens/internal/models"
	"ledgerlens/internal/report"

	"github.com/spf13/cobra"
)

var (
	direction string
	format    string
)

// Cmd is the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize spending per category",
	Long: `Summary classifies a ledger and prints per-category totals, ordered by
descending amount. By default only debits are summarized; mixing directions
in one summary is rarely meaningful.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&direction, "direction", "d", "", "Direction to summarize: debit, credit, or all (default from configuration)")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, or csv (default from configuration)")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("--input is required")
	}
	if direction == "" {
		direction = root.Cfg.Summary.Direction
	}
	if format == "" {
		format = root.Cfg.Summary.Format
	}

	transactions, err := ledger.Read(input)
	if err != nil {
		root.Log.Fatalf("Failed to load ledger: %v", err)
	}

	st := root.OpenStore()
	classified := categorizer.Classify(transactions, st)

	switch direction {
	case "debit":
		classified = report.FilterByDirection(classified, models.DirectionDebit)
	case "credit":
		classified = report.FilterByDirection(classified, models.DirectionCredit)
	case "all":
	default:
		root.Log.Fatalf("Unsupported direction: %s", direction)
	}

	out, err := report.Generate(report.Summarize(classified), format)
	if err != nil {
		root.Log.Fatalf("Failed to generate summary: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(string(out))
		return
	}
	if err := fileutils.WriteFileAtomic(root.SharedFlags.Output, out, models.PermissionReportFile); err != nil {
		root.Log.Fatalf("Failed to write summary: %v", err)
	}
	root.Log.Infof("Summary written to %s", root.SharedFlags.Output)
}
