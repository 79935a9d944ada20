package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ledgerlens/internal/models"

	"github.com/gocarina/gocsv"
)

func init() {
	// Header names in source files frequently carry stray whitespace.
	gocsv.SetHeaderNormalizer(strings.TrimSpace)
}

// delimiter used for CSV input and output.
var delimiter rune = ','

// SetDelimiter configures the CSV field delimiter for both reading and
// writing.
func SetDelimiter(d rune) {
	delimiter = d
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = d
		return r
	})
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = d
		return gocsv.NewSafeCSVWriter(w)
	})
}

// ReadCSV reads a CSV ledger file into Transaction records. The required
// columns are Date, Details, Amount and Debit/Credit; extra columns are
// ignored. Any malformed row aborts the load with a FormatError.
func ReadCSV(path string) ([]models.Transaction, error) {
	log.WithField("file_path", path).Info("Reading ledger CSV file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapOpenError(path, err)
	}
	return ParseCSV(data)
}

// ParseCSV normalizes in-memory CSV content into Transaction records.
func ParseCSV(data []byte) ([]models.Transaction, error) {
	headers, err := readHeaderRecord(data)
	if err != nil {
		return nil, err
	}
	if err := validateHeaders(headers); err != nil {
		return nil, err
	}

	var rows []rawRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV ledger: %w", err)
	}

	transactions, err := convertRows(rows)
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(transactions)).Info("Successfully read ledger data")
	return transactions, nil
}

func readHeaderRecord(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ledger is empty: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading ledger header: %w", err)
	}
	return headers, nil
}
