package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Summarize points, level, rank and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		peers, _ := cmd.Flags().GetIntSlice("peers")
		asJSON, _ := cmd.Flags().GetBool("json")

		doc, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		p := engine.Profile(doc.Progress, friendIDs(cmd, doc), peers)
		out := cmd.OutOrStdout()

		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		if doc.UserID != "" {
			fmt.Fprintf(out, "User:      %s\n", doc.UserID)
		}
		fmt.Fprintf(out, "Points:    %d\n", p.Points)
		fmt.Fprintf(out, "Level:     %d %s\n", p.Level.Number, p.Level.Name)
		if p.NextLevel != nil {
			fmt.Fprintf(out, "Next:      %s %.0f%% (%d to %s)\n",
				bar(p.Progress, 20), 100*p.Progress, p.PointsRemaining, p.NextLevel.Name)
		} else {
			fmt.Fprintln(out, "Next:      max level")
		}
		fmt.Fprintf(out, "Rank:      #%d of %d\n", p.Rank, len(peers)+1)
		fmt.Fprintf(out, "Tricks:    %d mastered, %d in progress, %d attempts\n", p.Mastered, p.Active, p.Attempts)

		var unlocked []string
		for _, id := range p.Achievements.Unlocked() {
			unlocked = append(unlocked, id.DisplayName())
		}
		if len(unlocked) == 0 {
			unlocked = []string{"none yet"}
		}
		fmt.Fprintf(out, "Badges:    %s\n", strings.Join(unlocked, ", "))

		if p.Next != nil {
			fmt.Fprintf(out, "Up next:   %s (%s, %d pts)\n", p.Next.Name, p.Next.Category.DisplayName(), p.Next.SteezPoints)
		}
		return nil
	},
}

func init() {
	addHistoryFlags(profileCmd)
	addFriendFlag(profileCmd)
	profileCmd.Flags().IntSlice("peers", nil, "Peer point totals for leaderboard rank (e.g. 1200,300)")
	profileCmd.Flags().Bool("json", false, "Print the profile as JSON")
}
