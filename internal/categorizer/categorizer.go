// Package categorizer assigns a spending category to each ledger transaction
// by matching the category store's keywords against transaction descriptions,
// and learns new keywords from user corrections.
package categorizer

import (
	"strings"

	"ledgerlens/internal/logging"
	"ledgerlens/internal/models"
	"ledgerlens/internal/store"
)

var log logging.Logger = logging.NewLogrusAdapterFromLogger(logging.GetLogger())

// SetLogger allows setting a custom logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Classify assigns exactly one category to every transaction and returns the
// result as a new slice; the input is never mutated, dropped from, or
// reordered. It is a pure function of its two arguments: every call starts
// from Uncategorized and re-derives assignments from the raw Details, so
// classifying an already classified ledger yields the same result.
//
// Categories are visited in store order and every keyword match overwrites
// any earlier assignment, so when several categories match one transaction
// the category visited last wins. Matching is substring based on lower-cased,
// trimmed text; "uber" matches "UBERX RIDE".
func Classify(transactions []models.Transaction, s *store.CategoryStore) []models.Transaction {
	result := make([]models.Transaction, len(transactions))
	copy(result, transactions)

	details := make([]string, len(result))
	for i := range result {
		result[i].Category = models.CategoryUncategorized
		details[i] = store.NormalizeKeyword(result[i].Details)
	}

	for _, category := range s.Categories() {
		if category.Name == models.CategoryUncategorized || len(category.Keywords) == 0 {
			continue
		}

		keywords := make([]string, 0, len(category.Keywords))
		for _, kw := range category.Keywords {
			keywords = append(keywords, store.NormalizeKeyword(kw))
		}

		for i := range result {
			for _, kw := range keywords {
				if strings.Contains(details[i], kw) {
					result[i].Category = category.Name
					break
				}
			}
		}
	}

	return result
}
