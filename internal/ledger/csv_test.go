package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ledgerlens/internal/models"
	"ledgerlens/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Date,Details,Amount,Debit/Credit
05 Mar 2024,UBER TRIP 12345,"1,250.50",Debit
06 Mar 2024,SALARY MARCH,"3,000.00",Credit
07 Mar 2024,NETFLIX SUB,15.99,debit
`

func TestParseCSV(t *testing.T) {
	transactions, err := ParseCSV([]byte(sampleCSV))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	first := transactions[0]
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "UBER TRIP 12345", first.Details)
	assert.Equal(t, "1250.5", first.Amount.String())
	assert.Equal(t, models.DirectionDebit, first.Direction)
	assert.Equal(t, models.CategoryUncategorized, first.Category)

	// Row order matches input order, direction matching is case-insensitive.
	assert.Equal(t, models.DirectionCredit, transactions[1].Direction)
	assert.Equal(t, models.DirectionDebit, transactions[2].Direction)
}

func TestParseCSV_TrimsHeaders(t *testing.T) {
	csv := " Date , Details ,Amount , Debit/Credit \n05 Mar 2024,COFFEE,4.50,Debit\n"
	transactions, err := ParseCSV([]byte(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "COFFEE", transactions[0].Details)
}

func TestParseCSV_IgnoresExtraColumns(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit,Branch\n05 Mar 2024,COFFEE,4.50,Debit,Main\n"
	transactions, err := ParseCSV([]byte(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
}

func TestParseCSV_MissingRequiredColumn(t *testing.T) {
	csv := "Date,Details,Amount\n05 Mar 2024,COFFEE,4.50\n"
	_, err := ParseCSV([]byte(csv))
	require.Error(t, err)

	var fe *parsererror.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ColumnDebitCredit, fe.Field)
}

func TestParseCSV_BadAmountRejectsWholeLoad(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n" +
		"05 Mar 2024,COFFEE,4.50,Debit\n" +
		"06 Mar 2024,BROKEN,abc,Debit\n"
	transactions, err := ParseCSV([]byte(csv))
	require.Error(t, err)
	assert.Nil(t, transactions)

	var fe *parsererror.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ColumnAmount, fe.Field)
	assert.Equal(t, "abc", fe.Value)
	assert.Equal(t, 2, fe.Row)
}

func TestParseCSV_BadDate(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n2024-03-05,COFFEE,4.50,Debit\n"
	_, err := ParseCSV([]byte(csv))
	require.Error(t, err)

	var fe *parsererror.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ColumnDate, fe.Field)
}

func TestParseCSV_BadDirection(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n05 Mar 2024,COFFEE,4.50,transfer\n"
	_, err := ParseCSV([]byte(csv))
	require.Error(t, err)

	var fe *parsererror.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ColumnDebitCredit, fe.Field)
}

func TestParseCSV_NegativeAmount(t *testing.T) {
	csv := "Date,Details,Amount,Debit/Credit\n05 Mar 2024,REFUND,-4.50,Credit\n"
	_, err := ParseCSV([]byte(csv))
	require.Error(t, err)
	assert.True(t, IsFormatError(err))
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))

	transactions, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	transactions, err := ParseCSV([]byte(sampleCSV))
	require.NoError(t, err)
	transactions[0].Category = "Transport"

	path := filepath.Join(t.TempDir(), "out", "classified.csv")
	require.NoError(t, WriteCSV(transactions, path))

	reread, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, reread, len(transactions))
	assert.Equal(t, transactions[0].Details, reread[0].Details)
	assert.True(t, transactions[0].Amount.Equal(reread[0].Amount))
}
