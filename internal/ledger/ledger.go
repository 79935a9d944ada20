// Package ledger reads raw tabular transaction files (CSV or XLSX) and
// normalizes them into validated Transaction records. Parsing is
// all-or-nothing: the first violated expectation aborts the load with a
// FormatError and no partial ledger is returned.
package ledger

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"ledgerlens/internal/dateutils"
	"ledgerlens/internal/models"
	"ledgerlens/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Required column headers. Header matching trims surrounding whitespace;
// extra columns are ignored.
const (
	ColumnDate        = "Date"
	ColumnDetails     = "Details"
	ColumnAmount      = "Amount"
	ColumnDebitCredit = "Debit/Credit"
)

var requiredColumns = []string{ColumnDate, ColumnDetails, ColumnAmount, ColumnDebitCredit}

// rawRow is one unconverted ledger row, all fields still textual.
type rawRow struct {
	Date        string `csv:"Date"`
	Details     string `csv:"Details"`
	Amount      string `csv:"Amount"`
	DebitCredit string `csv:"Debit/Credit"`
}

// Read loads a ledger file, dispatching on the file extension: .xlsx and
// .xlsm are read as spreadsheets, everything else as CSV.
func Read(path string) ([]models.Transaction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	default:
		return ReadCSV(path)
	}
}

// validateHeaders checks that every required column is present among the
// trimmed header names.
func validateHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.TrimSpace(h)] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return parsererror.NewHeaderError(col, errors.New("required column missing"))
		}
	}
	return nil
}

// convertRows converts raw rows to Transaction records, preserving input row
// order. Row numbers in errors are 1-based data rows (the header is row 0).
func convertRows(rows []rawRow) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := convertRow(i+1, row)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func convertRow(rowNum int, row rawRow) (models.Transaction, error) {
	date, err := dateutils.ParseLedgerDate(row.Date)
	if err != nil {
		return models.Transaction{}, parsererror.NewFormatError(rowNum, ColumnDate, row.Date, err)
	}

	amount, err := models.ParseAmount(row.Amount)
	if err != nil {
		return models.Transaction{}, parsererror.NewFormatError(rowNum, ColumnAmount, row.Amount, err)
	}

	direction, err := models.ParseDirection(row.DebitCredit)
	if err != nil {
		return models.Transaction{}, parsererror.NewFormatError(rowNum, ColumnDebitCredit, row.DebitCredit, err)
	}

	return models.Transaction{
		Date:      date,
		Details:   row.Details,
		Amount:    amount,
		Direction: direction,
		Category:  models.CategoryUncategorized,
	}, nil
}

// IsFormatError reports whether err is (or wraps) a ledger FormatError.
func IsFormatError(err error) bool {
	var fe *parsererror.FormatError
	return errors.As(err, &fe)
}

func wrapOpenError(path string, err error) error {
	return fmt.Errorf("error opening ledger file %s: %w", path, err)
}
