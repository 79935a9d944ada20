package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a ledger amount field into a decimal magnitude.
// Comma thousands separators are stripped before parsing. Negative values are
// rejected: the sign of a transaction is carried by its Direction, never by
// the amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %q: amounts are unsigned magnitudes", raw)
	}
	return amount, nil
}
