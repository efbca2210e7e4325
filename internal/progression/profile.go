package progression

import (
	"github.com/steezy/steezy/internal/catalog"
	"github.com/steezy/steezy/internal/progress"
)

// Profile summarizes a user's standing.
type Profile struct {
	Points          int            `json:"points"`
	Level           catalog.Level  `json:"level"`
	NextLevel       *catalog.Level `json:"nextLevel,omitempty"`
	Progress        float64        `json:"progress"`
	PointsRemaining int            `json:"pointsRemaining"`
	Rank            int            `json:"rank"`
	Mastered        int            `json:"mastered"`
	Active          int            `json:"active"`
	Attempts        int            `json:"attempts"`
	Achievements    Achievements   `json:"achievements"`
	Next            *catalog.Trick `json:"next,omitempty"`
}

// Profile computes the summary for the user owning records, ranked against peerPoints.
func (e *Engine) Profile(records []progress.UserTrickProgress, friendIDs []string, peerPoints []int) Profile {
	points := e.TotalEarnedPoints(records)
	level := e.ResolveLevel(points)
	next := e.NextLevel(level.Number)
	mastered, active := progress.Split(records)

	p := Profile{
		Points:          points,
		Level:           level,
		NextLevel:       next,
		Progress:        ProgressFraction(points, level, next),
		PointsRemaining: PointsRemaining(points, next),
		Rank:            LeaderboardRank(points, peerPoints),
		Mastered:        len(mastered),
		Active:          len(active),
		Attempts:        progress.TotalAttempts(records),
		Achievements:    e.AchievementStatus(records, friendIDs),
	}
	if t, ok := e.NextRecommendedTrick(records); ok {
		p.Next = &t
	}
	return p
}
