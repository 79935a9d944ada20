package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"ledgerlens/internal/models"

	"github.com/gocarina/gocsv"
)

// Supported report formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Generate renders a summary in the requested format and returns it as a
// byte slice. Unsupported formats are an error.
func Generate(summaries []models.CategorySummary, format string) ([]byte, error) {
	switch format {
	case FormatTable:
		return generateTable(summaries)
	case FormatJSON:
		return generateJSON(summaries)
	case FormatCSV:
		return generateCSV(summaries)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func generateTable(summaries []models.CategorySummary) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL\tCOUNT")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\n", s.Category, s.Total.StringFixed(2), s.Count)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render summary table: %w", err)
	}
	return buf.Bytes(), nil
}

func generateJSON(summaries []models.CategorySummary) ([]byte, error) {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON summary: %w", err)
	}
	return data, nil
}

func generateCSV(summaries []models.CategorySummary) ([]byte, error) {
	data, err := gocsv.MarshalBytes(&summaries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CSV summary: %w", err)
	}
	return data, nil
}
