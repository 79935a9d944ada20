// Package batch provides batch classification of every ledger file in a
// directory against one shared category store.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ledgerlens/internal/categorizer"
	"ledgerlens/internal/ledger"
	"ledgerlens/internal/logging"
	"ledgerlens/internal/models"
	"ledgerlens/internal/store"
)

// ledger file extensions recognized during directory scans.
var ledgerExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xlsm": true,
}

// Result reports the outcome of one processed ledger file.
type Result struct {
	InputFile     string
	OutputFile    string
	Transactions  int
	Uncategorized int
}

// Processor classifies every ledger file in a directory with a single store.
type Processor struct {
	store  *store.CategoryStore
	logger logging.Logger
}

// NewProcessor creates a batch Processor bound to a category store.
func NewProcessor(s *store.CategoryStore, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(logging.GetLogger())
	}
	return &Processor{store: s, logger: logger}
}

// FindLedgerFiles returns the ledger files directly inside dir, sorted by
// name for deterministic processing order.
func FindLedgerFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ledgerExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Process classifies every ledger file in inputDir and writes one classified
// CSV per input into outputDir. A file that fails to parse aborts the batch;
// partial outputs already written for earlier files are left in place.
func (p *Processor) Process(inputDir, outputDir string) ([]Result, error) {
	files, err := FindLedgerFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no ledger files found in %s", inputDir)
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		result, err := p.processFile(file, outputDir)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	p.logger.Info("Batch classification complete",
		logging.Field{Key: logging.FieldCount, Value: len(results)})
	return results, nil
}

func (p *Processor) processFile(file, outputDir string) (Result, error) {
	p.logger.Debug("Classifying ledger file",
		logging.Field{Key: logging.FieldInputFile, Value: file})

	transactions, err := ledger.Read(file)
	if err != nil {
		return Result{}, fmt.Errorf("error processing %s: %w", file, err)
	}

	classified := categorizer.Classify(transactions, p.store)

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	outputFile := filepath.Join(outputDir, base+".classified.csv")
	if err := ledger.WriteCSV(classified, outputFile); err != nil {
		return Result{}, fmt.Errorf("error writing %s: %w", outputFile, err)
	}

	uncategorized := 0
	for _, tx := range classified {
		if tx.Category == models.CategoryUncategorized {
			uncategorized++
		}
	}

	return Result{
		InputFile:     file,
		OutputFile:    outputFile,
		Transactions:  len(classified),
		Uncategorized: uncategorized,
	}, nil
}
