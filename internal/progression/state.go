package progression

import (
	"github.com/steezy/steezy/internal/catalog"
	"github.com/steezy/steezy/internal/progress"
)

// TrickState is a trick's state relative to one user.
type TrickState int

const (
	StateLocked     TrickState = iota // One or more prerequisites not yet mastered
	StateAvailable                    // Attemptable, no progress recorded
	StateInProgress                   // Progress recorded, not yet mastered
	StateMastered
)

// Icon returns the display icon for a trick state.
func (s TrickState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateInProgress:
		return "🏂"
	case StateMastered:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a trick state.
func (s TrickState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateInProgress:
		return "In progress"
	case StateMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// StateOf classifies t for the user owning records.
// A mastered record wins over unmet prerequisites.
func StateOf(t catalog.Trick, records []progress.UserTrickProgress) TrickState {
	p, hasRecord := progress.Find(t.ID, records)
	switch {
	case hasRecord && p.IsMastered():
		return StateMastered
	case !IsAttemptable(t, records):
		return StateLocked
	case hasRecord:
		return StateInProgress
	default:
		return StateAvailable
	}
}
