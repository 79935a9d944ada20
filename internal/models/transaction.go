// Package models defines the core data types shared across the application:
// ledger transactions, spending categories, and summary rows.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction moves money out of the account
// (debit) or into it (credit).
type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// ParseDirection normalizes a raw Debit/Credit field value to a Direction.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debit":
		return DirectionDebit, nil
	case "credit":
		return DirectionCredit, nil
	default:
		return "", fmt.Errorf("unrecognized direction value: %q", raw)
	}
}

// Transaction represents a single ledger row. Amount is a non-negative
// magnitude; the sign is carried by Direction. Category defaults to
// CategoryUncategorized until the classifier or a user correction sets it.
type Transaction struct {
	Date      time.Time       `json:"date"`
	Details   string          `json:"details"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Category  string          `json:"category"`
}

// IsDebit returns true if the transaction is a debit.
func (t Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction is a credit.
func (t Transaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}
