// Package dateutils provides the date handling shared by the ledger readers
// and writers.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// LayoutLedger is the one textual date format accepted in ledger input:
// two-digit day, abbreviated month name, four-digit year.
const LayoutLedger = "02 Jan 2006"

// LayoutISO is used for report output.
const LayoutISO = "2006-01-02"

// ParseLedgerDate parses a ledger date field. Surrounding whitespace is
// ignored; anything not conforming to LayoutLedger is an error.
func ParseLedgerDate(raw string) (time.Time, error) {
	t, err := time.Parse(LayoutLedger, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected format %q: %w", LayoutLedger, err)
	}
	return t, nil
}

// FormatLedgerDate renders a date in the ledger input format.
func FormatLedgerDate(t time.Time) string {
	return t.Format(LayoutLedger)
}

// FormatISODate renders a date as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(LayoutISO)
}
