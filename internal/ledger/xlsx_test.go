package ledger

import (
	"path/filepath"
	"testing"

	"ledgerlens/internal/models"
	"ledgerlens/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Date", "Details", "Amount", "Debit/Credit"},
		{"05 Mar 2024", "UBER TRIP 12345", "1,250.50", "Debit"},
		{"06 Mar 2024", "SALARY MARCH", "3000", "Credit"},
	})

	transactions, err := ReadXLSX(path)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "UBER TRIP 12345", transactions[0].Details)
	assert.Equal(t, "1250.5", transactions[0].Amount.String())
	assert.Equal(t, models.DirectionCredit, transactions[1].Direction)
}

func TestReadXLSX_SkipsEmptyRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Date", "Details", "Amount", "Debit/Credit"},
		{"05 Mar 2024", "COFFEE", "4.50", "Debit"},
		{"", "", "", ""},
		{"06 Mar 2024", "LUNCH", "12.00", "Debit"},
	})

	transactions, err := ReadXLSX(path)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestReadXLSX_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Date", "Details", "Amount"},
		{"05 Mar 2024", "COFFEE", "4.50"},
	})

	_, err := ReadXLSX(path)
	require.Error(t, err)

	var fe *parsererror.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ColumnDebitCredit, fe.Field)
}

func TestReadXLSX_BadRowRejectsWholeLoad(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Date", "Details", "Amount", "Debit/Credit"},
		{"05 Mar 2024", "COFFEE", "4.50", "Debit"},
		{"not a date", "LUNCH", "12.00", "Debit"},
	})

	transactions, err := ReadXLSX(path)
	require.Error(t, err)
	assert.Nil(t, transactions)
	assert.True(t, IsFormatError(err))
}

func TestRead_DispatchesOnExtension(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Date", "Details", "Amount", "Debit/Credit"},
		{"05 Mar 2024", "COFFEE", "4.50", "Debit"},
	})

	transactions, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}
