package ledger

import (
	"fmt"
	"strings"

	"ledgerlens/internal/models"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of an XLSX workbook as a ledger: the first
// row holds the column headers, every following row one transaction. Row
// conversion and error semantics are identical to the CSV reader.
func ReadXLSX(path string) ([]models.Transaction, error) {
	log.WithField("file_path", path).Info("Reading ledger XLSX file")

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, wrapOpenError(path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("ledger workbook has no sheets")
	}

	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheetName, err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("ledger is empty: no header row")
	}

	headers := cells[0]
	if err := validateHeaders(headers); err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(headers))
	for idx, h := range headers {
		name := strings.TrimSpace(h)
		if _, taken := columns[name]; !taken {
			columns[name] = idx
		}
	}

	rows := make([]rawRow, 0, len(cells)-1)
	for _, cellRow := range cells[1:] {
		if isRowEmpty(cellRow) {
			continue
		}
		rows = append(rows, rawRow{
			Date:        cellAt(cellRow, columns[ColumnDate]),
			Details:     cellAt(cellRow, columns[ColumnDetails]),
			Amount:      cellAt(cellRow, columns[ColumnAmount]),
			DebitCredit: cellAt(cellRow, columns[ColumnDebitCredit]),
		})
	}

	transactions, err := convertRows(rows)
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(transactions)).Info("Successfully read ledger data")
	return transactions, nil
}

// cellAt returns the cell at idx, tolerating the ragged rows excelize
// produces when trailing cells are empty.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
