// Package report aggregates classified transactions into per-category
// spending summaries and renders them in text, JSON, or CSV form.
package report

import (
	"sort"

	"ledgerlens/internal/models"

	"github.com/shopspring/decimal"
)

// Summarize groups transactions by category and sums their amounts. The
// result is ordered by descending total, with ties broken by ascending
// category name so output is deterministic. Categories are compared as
// opaque strings; direction is not applied here, so callers should filter to
// a single direction first.
func Summarize(transactions []models.Transaction) []models.CategorySummary {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, tx := range transactions {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		counts[tx.Category]++
	}

	summaries := make([]models.CategorySummary, 0, len(totals))
	for category, total := range totals {
		summaries = append(summaries, models.CategorySummary{
			Category: category,
			Total:    total,
			Count:    counts[category],
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		cmp := summaries[i].Total.Cmp(summaries[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries
}

// FilterByDirection returns only the transactions with the given direction,
// preserving order.
func FilterByDirection(transactions []models.Transaction, direction models.Direction) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Direction == direction {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
