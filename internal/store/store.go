// Package store provides the durable category-keyword mapping that drives
// classification. The on-disk representation is a YAML list of categories, so
// category iteration order is stable and survives save/load round trips.
package store

import (
	"fmt"
	"os"
	"strings"

	"ledgerlens/internal/fileutils"
	"ledgerlens/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore is the in-memory category-keyword mapping together with the
// path of its durable YAML document. Categories keep their insertion order;
// the classifier's tie-break depends on it. Mutations mark the store dirty;
// Save persists and clears the flag. The "Uncategorized" category always
// exists, stays empty, and cannot be removed.
type CategoryStore struct {
	path       string
	categories []models.Category
	dirty      bool
}

// NewCategoryStore creates an empty store backed by the given file path. The
// store starts with only the default Uncategorized category.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{
		path:       path,
		categories: defaultCategories(),
	}
}

func defaultCategories() []models.Category {
	return []models.Category{
		{Name: models.CategoryUncategorized, Keywords: []string{}},
	}
}

// Load reads the durable store from path. It never fails the caller: a
// missing file yields the default store, and a corrupt file yields the
// default store plus a warning, so a session can always proceed.
func Load(path string) *CategoryStore {
	s := NewCategoryStore(path)

	if !fileutils.FileExists(path) {
		log.WithField("store_file", path).Debug("Category store file not found, starting with defaults")
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("store_file", path).Warn("Failed to read category store, falling back to defaults")
		return s
	}

	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		log.WithError(err).WithField("store_file", path).Warn("Malformed category store, falling back to defaults")
		return s
	}

	s.categories = normalizeLoaded(categories)
	log.WithFields(logrus.Fields{
		"store_file": path,
		"count":      len(s.categories),
	}).Debug("Loaded category store")
	return s
}

// normalizeLoaded enforces the structural invariants on a freshly parsed
// document: Uncategorized exists and has no keywords, names are unique, and
// keywords are unique per category under lower/trim normalization. First
// occurrence wins so a hand-edited file degrades predictably.
func normalizeLoaded(categories []models.Category) []models.Category {
	result := make([]models.Category, 0, len(categories)+1)
	seen := make(map[string]bool, len(categories))

	for _, c := range categories {
		if c.Name == "" || seen[c.Name] {
			continue
		}
		seen[c.Name] = true

		if c.Name == models.CategoryUncategorized {
			result = append(result, models.Category{Name: c.Name, Keywords: []string{}})
			continue
		}

		keywords := make([]string, 0, len(c.Keywords))
		present := make(map[string]bool, len(c.Keywords))
		for _, kw := range c.Keywords {
			norm := NormalizeKeyword(kw)
			if norm == "" || present[norm] {
				continue
			}
			present[norm] = true
			keywords = append(keywords, kw)
		}
		result = append(result, models.Category{Name: c.Name, Keywords: keywords})
	}

	if !seen[models.CategoryUncategorized] {
		result = append(defaultCategories(), result...)
	}
	return result
}

// NormalizeKeyword lower-cases a keyword and trims surrounding whitespace.
// This is the normalization used both for duplicate checks and for matching.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// Path returns the durable file path backing this store.
func (s *CategoryStore) Path() string {
	return s.path
}

// Categories returns the ordered category list. Callers must not mutate the
// returned slice.
func (s *CategoryStore) Categories() []models.Category {
	return s.categories
}

// CategoryNames returns the category names in iteration order.
func (s *CategoryStore) CategoryNames() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the category with the given name, if present.
func (s *CategoryStore) Lookup(name string) (models.Category, bool) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

// Dirty reports whether the in-memory state has diverged from the last
// successful Save or Load.
func (s *CategoryStore) Dirty() bool {
	return s.dirty
}

// CreateCategory adds an empty category and reports whether it was created.
// Empty names and existing names are silent no-ops. The caller is responsible
// for persisting via Save.
func (s *CategoryStore) CreateCategory(name string) bool {
	if name == "" {
		return false
	}
	if _, ok := s.Lookup(name); ok {
		return false
	}
	s.categories = append(s.categories, models.Category{Name: name, Keywords: []string{}})
	s.dirty = true
	return true
}

// AddKeyword appends a keyword to an existing category and reports whether it
// was added. The keyword must be non-empty after normalization and not
// already present under that category; the raw text is what gets stored.
// Unknown categories and the Uncategorized category are silent no-ops.
func (s *CategoryStore) AddKeyword(category, keyword string) bool {
	if category == models.CategoryUncategorized {
		return false
	}
	norm := NormalizeKeyword(keyword)
	if norm == "" {
		return false
	}

	for i := range s.categories {
		if s.categories[i].Name != category {
			continue
		}
		for _, existing := range s.categories[i].Keywords {
			if NormalizeKeyword(existing) == norm {
				return false
			}
		}
		s.categories[i].Keywords = append(s.categories[i].Keywords, keyword)
		s.dirty = true
		return true
	}
	return false
}

// Save serializes the full mapping and atomically replaces the durable file,
// then clears the dirty flag. A concurrent reader never sees a partial write.
func (s *CategoryStore) Save() error {
	data, err := yaml.Marshal(s.categories)
	if err != nil {
		return fmt.Errorf("error marshaling category store: %w", err)
	}

	if err := fileutils.WriteFileAtomic(s.path, data, models.PermissionStoreFile); err != nil {
		return fmt.Errorf("error writing category store: %w", err)
	}

	s.dirty = false
	log.WithFields(logrus.Fields{
		"store_file": s.path,
		"count":      len(s.categories),
	}).Debug("Saved category store")
	return nil
}
