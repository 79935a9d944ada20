package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"ledgerlens/internal/dateutils"
	"ledgerlens/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// outputRow is the CSV shape of a classified transaction.
type outputRow struct {
	Date        string `csv:"Date"`
	Details     string `csv:"Details"`
	Amount      string `csv:"Amount"`
	DebitCredit string `csv:"Debit/Credit"`
	Category    string `csv:"Category"`
}

// WriteCSV writes classified transactions to a CSV file, preserving the
// input column set plus the assigned Category. Amounts are rendered with two
// decimal places and dates in the ledger input format, so the output is
// itself a readable ledger.
func WriteCSV(transactions []models.Transaction, path string) error {
	log.WithFields(logrus.Fields{
		"file_path": path,
		"count":     len(transactions),
	}).Info("Writing classified ledger")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]outputRow, len(transactions))
	for i, tx := range transactions {
		rows[i] = outputRow{
			Date:        dateutils.FormatLedgerDate(tx.Date),
			Details:     tx.Details,
			Amount:      tx.Amount.StringFixed(2),
			DebitCredit: string(tx.Direction),
			Category:    tx.Category,
		}
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}
