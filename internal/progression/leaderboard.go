package progression

import (
	"cmp"
	"slices"
)

// LeaderboardRank returns the 1-based position of userPoints among itself and
// peerPoints, highest first. On ties the user takes the best shared position.
func LeaderboardRank(userPoints int, peerPoints []int) int {
	all := make([]int, 0, len(peerPoints)+1)
	all = append(all, userPoints)
	all = append(all, peerPoints...)

	slices.SortStableFunc(all, func(a, b int) int {
		return cmp.Compare(b, a)
	})
	return slices.Index(all, userPoints) + 1
}
