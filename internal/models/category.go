package models

import "github.com/shopspring/decimal"

// Category is a named bucket transactions are sorted into, backed by an
// ordered list of matching keywords. Keyword order is insertion order and is
// preserved across save/load round trips.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategorySummary is one row of an aggregated spending report: the total
// amount and transaction count for a single category.
type CategorySummary struct {
	Category string          `json:"category" csv:"Category"`
	Total    decimal.Decimal `json:"total" csv:"Total"`
	Count    int             `json:"count" csv:"Count"`
}
