package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/progression"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next tricks to learn",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = cfg.RecommendLimit
		}

		doc, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		recs := engine.RecommendedTricks(doc.Progress, limit)
		if len(recs) == 0 {
			fmt.Fprintln(out, "Every trick is mastered. Nothing left to recommend.")
			return nil
		}

		fmt.Fprintf(out, "%-3s  %-4s  %-20s  %-8s  %-5s  %-5s  %6s  %s\n",
			"#", "ID", "Name", "Category", "Diff", "Risk", "Points", "State")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for i, t := range recs {
			state := progression.StateOf(t, doc.Progress)
			fmt.Fprintf(out, "%-3d  %-4s  %-20s  %-8s  %-5s  %-5s  %6d  %s %s\n",
				i+1, t.ID, t.Name, t.Category.DisplayName(),
				rating(t.Difficulty), rating(t.Risk), t.SteezPoints,
				state.Icon(), state.Label())
		}

		if blocked := engine.Blocked(doc.Progress); len(blocked) > 0 {
			fmt.Fprintf(out, "\n%d tricks still locked behind prerequisites\n", len(blocked))
		}
		return nil
	},
}

func init() {
	addHistoryFlags(recommendCmd)
	recommendCmd.Flags().Int("limit", 0, fmt.Sprintf("Number of recommendations (default STEEZY_RECOMMEND_LIMIT or %d)", progression.DefaultRecommendationLimit))
}
