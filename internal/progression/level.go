package progression

import (
	"github.com/steezy/steezy/internal/catalog"
)

// ResolveLevel returns the highest level whose threshold is met by points.
// Level 1 requires 0 points, so a level is always returned; negative points
// resolve to the first level.
func (e *Engine) ResolveLevel(points int) catalog.Level {
	levels := e.catalog.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		if points >= levels[i].RequiredPoints {
			return levels[i]
		}
	}
	return levels[0]
}

// CurrentLevel is ResolveLevel.
func (e *Engine) CurrentLevel(points int) catalog.Level {
	return e.ResolveLevel(points)
}

// NextLevel returns the level numbered current+1, or nil when current is the
// last defined level.
func (e *Engine) NextLevel(current int) *catalog.Level {
	l, ok := e.catalog.LevelByNumber(current + 1)
	if !ok {
		return nil
	}
	return &l
}

// ProgressFraction returns how far points are between current and next,
// clamped to [0, 1]. A nil next means the top level: progress is complete.
func ProgressFraction(points int, current catalog.Level, next *catalog.Level) float64 {
	if next == nil {
		return 1
	}
	span := next.RequiredPoints - current.RequiredPoints
	if span <= 0 {
		return 1
	}
	f := float64(points-current.RequiredPoints) / float64(span)
	return min(max(f, 0), 1)
}

// PointsRemaining returns the points still needed to reach next, never negative.
// A nil next means there is nothing left to earn.
func PointsRemaining(points int, next *catalog.Level) int {
	if next == nil {
		return 0
	}
	return max(next.RequiredPoints-points, 0)
}
