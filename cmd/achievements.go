package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/progression"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement status",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		status := engine.AchievementStatus(doc.Progress, friendIDs(cmd, doc))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-3s  %-18s  %s\n", "", "Achievement", "How")
		fmt.Fprintln(out, strings.Repeat("─", 48))
		for _, id := range progression.AllAchievements() {
			mark := "✗"
			if status.Has(id) {
				mark = "✓"
			}
			fmt.Fprintf(out, "%-3s  %-18s  %s\n", mark, id.DisplayName(), id.Description())
		}
		fmt.Fprintf(out, "\n%d/%d unlocked\n", len(status.Unlocked()), len(progression.AllAchievements()))
		return nil
	},
}

func init() {
	addHistoryFlags(achievementsCmd)
	addFriendFlag(achievementsCmd)
}
