package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/progression"
)

var levelCmd = &cobra.Command{
	Use:   "level <points>",
	Short: "Show the level reached with a point total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid points %q: %w", args[0], err)
		}

		current := engine.ResolveLevel(points)
		next := engine.NextLevel(current.Number)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Level %d: %s (%d pts)\n", current.Number, current.Name, points)
		if next == nil {
			fmt.Fprintln(out, "Max level reached.")
			return nil
		}
		fmt.Fprintf(out, "Next:     Level %d %s at %d pts\n", next.Number, next.Name, next.RequiredPoints)
		frac := progression.ProgressFraction(points, current, next)
		fmt.Fprintf(out, "Progress: %s %.0f%%\n", bar(frac, 20), 100*frac)
		fmt.Fprintf(out, "%d points to go\n", progression.PointsRemaining(points, next))
		return nil
	},
}
