// Package parsererror defines the error taxonomy for ledger ingestion.
package parsererror

import "fmt"

// FormatError reports the first violated expectation while normalizing raw
// tabular input: a missing required column, an unparseable date or amount, or
// an unrecognized direction value. A FormatError aborts the whole load; no
// partial ledger is ever returned alongside one.
type FormatError struct {
	Row   int // 1-based data row number, 0 when the header itself is at fault
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("ledger format error: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("ledger format error at row %d: failed to parse %s=%q: %v",
		e.Row, e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError builds a FormatError for a specific row and field.
func NewFormatError(row int, field, value string, err error) *FormatError {
	return &FormatError{Row: row, Field: field, Value: value, Err: err}
}

// NewHeaderError builds a FormatError for a header-level violation, such as a
// missing required column.
func NewHeaderError(field string, err error) *FormatError {
	return &FormatError{Field: field, Err: err}
}
