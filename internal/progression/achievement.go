package progression

import (
	"github.com/steezy/steezy/internal/catalog"
	"github.com/steezy/steezy/internal/progress"
)

// Achievement unlock thresholds.
const (
	FirstTrickMastered    = 1
	SocialButterflyFriend = 5
	SpinMasterSpins       = 3
	DedicatedAttempts     = 50
)

// AchievementID identifies one achievement.
type AchievementID string

const (
	AchievementFirstTrick      AchievementID = "first-trick"
	AchievementSocialButterfly AchievementID = "social-butterfly"
	AchievementSpinMaster      AchievementID = "spin-master"
	AchievementDedicated       AchievementID = "dedicated"
)

// AllAchievements returns all achievements in display order.
func AllAchievements() []AchievementID {
	return []AchievementID{
		AchievementFirstTrick,
		AchievementSocialButterfly,
		AchievementSpinMaster,
		AchievementDedicated,
	}
}

// DisplayName returns a human-readable name for the achievement.
func (a AchievementID) DisplayName() string {
	switch a {
	case AchievementFirstTrick:
		return "First Trick"
	case AchievementSocialButterfly:
		return "Social Butterfly"
	case AchievementSpinMaster:
		return "Spin Master"
	case AchievementDedicated:
		return "Dedicated"
	default:
		return string(a)
	}
}

// Description explains how the achievement is earned.
func (a AchievementID) Description() string {
	switch a {
	case AchievementFirstTrick:
		return "Land your first trick"
	case AchievementSocialButterfly:
		return "Add 5 friends"
	case AchievementSpinMaster:
		return "Master 3 spin tricks"
	case AchievementDedicated:
		return "Log 50 attempts"
	default:
		return ""
	}
}

// Icon returns the display icon identifier for the achievement.
func (a AchievementID) Icon() string {
	switch a {
	case AchievementFirstTrick:
		return "stars"
	case AchievementSocialButterfly:
		return "people"
	case AchievementSpinMaster:
		return "rotate-right"
	case AchievementDedicated:
		return "fitness-center"
	default:
		return "help"
	}
}

// Achievements is the unlock state of every achievement.
type Achievements struct {
	FirstTrick      bool `json:"firstTrick"`
	SocialButterfly bool `json:"socialButterfly"`
	SpinMaster      bool `json:"spinMaster"`
	Dedicated       bool `json:"dedicated"`
}

// Has reports whether the given achievement is unlocked.
func (a Achievements) Has(id AchievementID) bool {
	switch id {
	case AchievementFirstTrick:
		return a.FirstTrick
	case AchievementSocialButterfly:
		return a.SocialButterfly
	case AchievementSpinMaster:
		return a.SpinMaster
	case AchievementDedicated:
		return a.Dedicated
	default:
		return false
	}
}

// Unlocked returns the unlocked achievements in display order.
func (a Achievements) Unlocked() []AchievementID {
	var result []AchievementID
	for _, id := range AllAchievements() {
		if a.Has(id) {
			result = append(result, id)
		}
	}
	return result
}

// AchievementStatus evaluates every achievement for a user.
func (e *Engine) AchievementStatus(records []progress.UserTrickProgress, friendIDs []string) Achievements {
	mastered, spins := 0, 0
	for _, p := range records {
		if !p.IsMastered() {
			continue
		}
		mastered++
		if t, ok := e.catalog.Lookup(p.TrickID); ok && t.Category == catalog.CategorySpins {
			spins++
		}
	}

	return Achievements{
		FirstTrick:      mastered >= FirstTrickMastered,
		SocialButterfly: len(friendIDs) >= SocialButterflyFriend,
		SpinMaster:      spins >= SpinMasterSpins,
		Dedicated:       progress.TotalAttempts(records) >= DedicatedAttempts,
	}
}
