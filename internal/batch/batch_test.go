package batch

import (
	"os"
	"path/filepath"
	"testing"

	"ledgerlens/internal/logging"
	"ledgerlens/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledgerCSV = `Date,Details,Amount,Debit/Credit
05 Mar 2024,UBER TRIP 12345,25.00,Debit
06 Mar 2024,GROCERY STORE,40.00,Debit
`

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()
	s := store.NewCategoryStore(filepath.Join(t.TempDir(), "categories.yaml"))
	require.True(t, s.CreateCategory("Transport"))
	require.True(t, s.AddKeyword("Transport", "uber"))
	return NewProcessor(s, &logging.MockLogger{})
}

func TestFindLedgerFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.xlsx", "notes.txt", "c.CSV"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0750))

	files, err := FindLedgerFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.xlsx"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "c.CSV"),
	}, files)
}

func TestProcess(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "march.csv"), []byte(ledgerCSV), 0600))

	p := newTestProcessor(t)
	results, err := p.Process(inputDir, outputDir)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 2, results[0].Transactions)
	assert.Equal(t, 1, results[0].Uncategorized)
	assert.FileExists(t, filepath.Join(outputDir, "march.classified.csv"))
}

func TestProcess_EmptyDirectory(t *testing.T) {
	p := newTestProcessor(t)
	_, err := p.Process(t.TempDir(), t.TempDir())
	assert.Error(t, err)
}

func TestProcess_MalformedFileAbortsBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad.csv"),
		[]byte("Date,Details,Amount,Debit/Credit\nnot a date,X,1.00,Debit\n"), 0600))

	p := newTestProcessor(t)
	_, err := p.Process(inputDir, outputDir)
	assert.Error(t, err)
}
