package progression

import (
	"github.com/steezy/steezy/internal/catalog"
	"github.com/steezy/steezy/internal/progress"
)

// DefaultRecommendationLimit is the number of tricks RecommendedTricks is
// usually asked for.
const DefaultRecommendationLimit = 5

// IsAttemptable reports whether every prerequisite of t is mastered in records.
// A trick without prerequisites is always attemptable; a prerequisite with no
// record counts as not mastered.
func IsAttemptable(t catalog.Trick, records []progress.UserTrickProgress) bool {
	if !t.HasPrerequisites() {
		return true
	}
	return prerequisitesMet(t, progress.MasteredSet(records))
}

func prerequisitesMet(t catalog.Trick, mastered map[string]bool) bool {
	for _, id := range t.Prerequisites {
		if !mastered[id] {
			return false
		}
	}
	return true
}

// NextRecommendedTrick returns the first trick in progression order that is
// not mastered and whose prerequisites are all mastered.
// It reports false only when no such trick exists.
func (e *Engine) NextRecommendedTrick(records []progress.UserTrickProgress) (catalog.Trick, bool) {
	recs := e.RecommendedTricks(records, 1)
	if len(recs) == 0 {
		return catalog.Trick{}, false
	}
	return recs[0], true
}

// RecommendedTricks returns up to limit attemptable, non-mastered tricks in
// progression order. A non-positive limit returns nothing.
func (e *Engine) RecommendedTricks(records []progress.UserTrickProgress, limit int) []catalog.Trick {
	if limit <= 0 {
		return nil
	}
	mastered := progress.MasteredSet(records)

	var result []catalog.Trick
	for _, t := range e.catalog.Ordered() {
		if mastered[t.ID] || !prerequisitesMet(t, mastered) {
			continue
		}
		result = append(result, t)
		if len(result) == limit {
			break
		}
	}
	return result
}

// Available returns every attemptable, non-mastered trick in progression order.
func (e *Engine) Available(records []progress.UserTrickProgress) []catalog.Trick {
	return e.RecommendedTricks(records, e.catalog.Len())
}

// Blocked returns every trick with at least one unmastered prerequisite.
func (e *Engine) Blocked(records []progress.UserTrickProgress) []catalog.Trick {
	mastered := progress.MasteredSet(records)
	var result []catalog.Trick
	for _, t := range e.catalog.Ordered() {
		if !prerequisitesMet(t, mastered) {
			result = append(result, t)
		}
	}
	return result
}
