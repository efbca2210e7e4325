package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/progression"
)

var rankCmd = &cobra.Command{
	Use:   "rank <points> [peer-points...]",
	Short: "Show leaderboard position among peers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := parseInts(args)
		if err != nil {
			return err
		}
		rank := progression.LeaderboardRank(points[0], points[1:])
		fmt.Fprintf(cmd.OutOrStdout(), "Rank #%d of %d\n", rank, len(points))
		return nil
	},
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid points %q: %w", a, err)
		}
		out[i] = n
	}
	return out, nil
}
