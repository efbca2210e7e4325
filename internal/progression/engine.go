// Package progression derives levels, recommendations, rankings and
// achievements from a trick catalog and a user's progress records.
//
// Every function is pure: inputs are never modified and nothing is cached
// between calls, so an Engine may be shared freely across goroutines.
package progression

import (
	"github.com/steezy/steezy/internal/catalog"
	"github.com/steezy/steezy/internal/progress"
)

// Engine evaluates progress against one catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// New returns an Engine over c.
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Default returns an Engine over the embedded catalog.
func Default() *Engine {
	return New(catalog.Default())
}

// Catalog returns the catalog the engine reads from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// OrderedCatalog returns every trick sorted by difficulty, then risk.
func (e *Engine) OrderedCatalog() []catalog.Trick {
	return e.catalog.Ordered()
}

// FilterByCategory returns the ordered catalog restricted to category.
// catalog.CategoryAll disables the filter.
func (e *Engine) FilterByCategory(category catalog.Category) []catalog.Trick {
	return e.catalog.ByCategory(category)
}

// LookupTrick returns the trick with the given ID.
func (e *Engine) LookupTrick(id string) (catalog.Trick, bool) {
	return e.catalog.Lookup(id)
}

// TricksByComfort returns the tricks whose progress record is at the given
// comfort level, in record order. Records for unknown tricks are skipped.
func (e *Engine) TricksByComfort(records []progress.UserTrickProgress, comfort progress.ComfortLevel) []catalog.Trick {
	var result []catalog.Trick
	for _, p := range progress.WithComfort(records, comfort) {
		if t, ok := e.catalog.Lookup(p.TrickID); ok {
			result = append(result, t)
		}
	}
	return result
}

// TotalEarnedPoints sums the steez points of every mastered trick.
// A trick counts once even if it appears in several mastered records.
func (e *Engine) TotalEarnedPoints(records []progress.UserTrickProgress) int {
	total := 0
	for id := range progress.MasteredSet(records) {
		if t, ok := e.catalog.Lookup(id); ok {
			total += t.SteezPoints
		}
	}
	return total
}
