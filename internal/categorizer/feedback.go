package categorizer

import (
	"fmt"

	"ledgerlens/internal/logging"
	"ledgerlens/internal/models"
	"ledgerlens/internal/store"
)

// LearnResult reports the outcome of a single correction. Learned is false
// both for no-op corrections and when the proposed keyword was a duplicate,
// empty, or targeted an unknown category; none of those are errors.
type LearnResult struct {
	Learned  bool
	Keyword  string
	Category string
}

// Correction is one user-supplied category override, addressing a ledger row
// by its position in the loaded transaction sequence.
type Correction struct {
	Row      int // 0-based index into the ledger
	Category string
}

// ApplyCorrection reassigns a transaction to newCategory and teaches the
// store the transaction's raw Details as a keyword of that category.
// Selecting the current category again is a no-op. The in-memory category is
// updated whether or not the keyword was learned; persistence is the
// caller's concern.
func ApplyCorrection(tx *models.Transaction, newCategory string, s *store.CategoryStore) LearnResult {
	if tx.Category == newCategory {
		return LearnResult{Category: newCategory}
	}

	learned := s.AddKeyword(newCategory, tx.Details)
	tx.Category = newCategory

	if learned {
		log.WithFields(
			logging.Field{Key: logging.FieldCategory, Value: newCategory},
			logging.Field{Key: logging.FieldKeyword, Value: tx.Details},
		).Debug("Learned keyword from correction")
	}

	return LearnResult{Learned: learned, Keyword: tx.Details, Category: newCategory}
}

// ApplyCorrections applies a batch of corrections in order against a single
// ledger, then persists the store exactly once, and only if something was
// actually learned. Each correction is checked against the store as of its
// point in the pass, so two rows with the same details corrected to
// different categories in one batch are both honored, and the first of two
// identical keyword-under-category proposals wins.
//
// The classified slice is mutated in place; callers re-run Classify
// afterwards to propagate the newly learned keywords across the ledger.
func ApplyCorrections(transactions []models.Transaction, corrections []Correction, s *store.CategoryStore) (int, error) {
	learned := 0
	for _, c := range corrections {
		if c.Row < 0 || c.Row >= len(transactions) {
			return learned, fmt.Errorf("correction row %d out of range: ledger has %d transactions", c.Row+1, len(transactions))
		}
		if ApplyCorrection(&transactions[c.Row], c.Category, s).Learned {
			learned++
		}
	}

	if s.Dirty() {
		if err := s.Save(); err != nil {
			return learned, fmt.Errorf("error persisting learned keywords: %w", err)
		}
	}

	log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: learned},
	).Info("Applied correction batch")
	return learned, nil
}
