// Package progress models a user's per-trick progress records.
package progress

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ComfortLevel is the ordinal mastery stage of a user's relationship to a trick.
type ComfortLevel string

const (
	Learning    ComfortLevel = "learning"
	Trying      ComfortLevel = "trying"
	Comfortable ComfortLevel = "comfortable"
	Mastered    ComfortLevel = "mastered"
)

// AllComfortLevels returns every comfort level from least to most comfortable.
func AllComfortLevels() []ComfortLevel {
	return []ComfortLevel{Learning, Trying, Comfortable, Mastered}
}

// Rank returns the position of c in the learning order, or -1 if c is unknown.
func (c ComfortLevel) Rank() int {
	return slices.Index(AllComfortLevels(), c)
}

// Valid reports whether c is a defined comfort level.
func (c ComfortLevel) Valid() bool {
	return c.Rank() >= 0
}

// Less reports whether c comes before other in the learning order.
func (c ComfortLevel) Less(other ComfortLevel) bool {
	return c.Rank() < other.Rank()
}

// Label returns the display label ("Comfortable").
func (c ComfortLevel) Label() string {
	return cases.Title(language.English).String(string(c))
}

// Color returns the display color for the comfort level.
func (c ComfortLevel) Color() string {
	switch c {
	case Learning:
		return "#FF9800"
	case Trying:
		return "#2196F3"
	case Comfortable:
		return "#4CAF50"
	case Mastered:
		return "#9C27B0"
	default:
		return "#666"
	}
}

// Icon returns the display icon identifier for the comfort level.
func (c ComfortLevel) Icon() string {
	switch c {
	case Learning:
		return "school"
	case Trying:
		return "fitness-center"
	case Comfortable:
		return "thumb-up"
	case Mastered:
		return "stars"
	default:
		return "help"
	}
}

// ParseComfortLevel converts a string to a ComfortLevel.
func ParseComfortLevel(s string) (ComfortLevel, error) {
	c := ComfortLevel(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown comfort level %q", s)
	}
	return c, nil
}

// UserTrickProgress is a user's relationship to one trick.
// There is at most one record per (user, trick) pair.
type UserTrickProgress struct {
	TrickID      string       `json:"trickId"`
	UserID       string       `json:"userId"`
	ComfortLevel ComfortLevel `json:"comfortLevel"`
	Attempts     int          `json:"attempts"`
	CompletedAt  *time.Time   `json:"completedAt,omitempty"`
	VideoURL     string       `json:"videoUrl,omitempty"`
}

// IsMastered reports whether the record is at the mastered comfort level.
func (p UserTrickProgress) IsMastered() bool {
	return p.ComfortLevel == Mastered
}

// New creates the first record for a (user, trick) pair.
func New(userID, trickID string) UserTrickProgress {
	return UserTrickProgress{
		TrickID:      trickID,
		UserID:       userID,
		ComfortLevel: Learning,
	}
}

// RecordAttempt returns a copy of p with one more attempt at the given comfort level.
// The completion time is stamped when the record first becomes mastered and
// dropped when it leaves mastered.
func RecordAttempt(p UserTrickProgress, comfort ComfortLevel, now time.Time) (UserTrickProgress, error) {
	if !comfort.Valid() {
		return p, fmt.Errorf("record attempt on %q: unknown comfort level %q", p.TrickID, comfort)
	}

	next := p
	next.Attempts++
	next.ComfortLevel = comfort

	switch {
	case comfort != Mastered:
		next.CompletedAt = nil
	case p.CompletedAt == nil:
		ts := now.UTC()
		next.CompletedAt = &ts
	default:
		ts := *p.CompletedAt
		next.CompletedAt = &ts
	}
	return next, nil
}

// Find returns the record for trickID.
func Find(trickID string, records []UserTrickProgress) (UserTrickProgress, bool) {
	for _, p := range records {
		if p.TrickID == trickID {
			return p, true
		}
	}
	return UserTrickProgress{}, false
}

// MasteredSet returns the IDs of every trick whose record is mastered.
func MasteredSet(records []UserTrickProgress) map[string]bool {
	mastered := make(map[string]bool, len(records))
	for _, p := range records {
		if p.IsMastered() {
			mastered[p.TrickID] = true
		}
	}
	return mastered
}

// WithComfort returns the records at the given comfort level, in record order.
func WithComfort(records []UserTrickProgress, comfort ComfortLevel) []UserTrickProgress {
	var result []UserTrickProgress
	for _, p := range records {
		if p.ComfortLevel == comfort {
			result = append(result, p)
		}
	}
	return result
}

// Split partitions records into mastered and still-active ones.
func Split(records []UserTrickProgress) (mastered, active []UserTrickProgress) {
	for _, p := range records {
		if p.IsMastered() {
			mastered = append(mastered, p)
		} else {
			active = append(active, p)
		}
	}
	return mastered, active
}

// TotalAttempts sums attempts across all records.
func TotalAttempts(records []UserTrickProgress) int {
	total := 0
	for _, p := range records {
		total += p.Attempts
	}
	return total
}

// Upsert replaces the record for p's trick or appends p when none exists.
// The input slice is not modified.
func Upsert(records []UserTrickProgress, p UserTrickProgress) []UserTrickProgress {
	result := slices.Clone(records)
	for i := range result {
		if result[i].TrickID == p.TrickID {
			result[i] = p
			return result
		}
	}
	return append(result, p)
}
