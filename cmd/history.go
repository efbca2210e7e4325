package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/log"
	"github.com/steezy/steezy/internal/progress"
)

// loadHistory reads the progress document named by --progress (highest
// priority) or STEEZY_PROGRESS. With neither set it returns an empty history,
// which is a brand-new user.
func loadHistory(cmd *cobra.Command) (*progress.Document, error) {
	path, _ := cmd.Flags().GetString("progress")
	if path == "" {
		path = cfg.ProgressPath
	}
	if path == "" {
		return &progress.Document{Progress: []progress.UserTrickProgress{}}, nil
	}

	doc, err := progress.ReadFile(path)
	if err != nil {
		return nil, err
	}
	for _, p := range doc.Progress {
		if _, ok := engine.LookupTrick(p.TrickID); !ok {
			log.Warn("ignoring progress for unknown trick", "trick", p.TrickID, "user", doc.UserID)
		}
	}
	log.Debug("progress loaded", "path", path, "user", doc.UserID, "records", len(doc.Progress))
	return doc, nil
}

// friendIDs merges the document's friends with any given by --friend.
func friendIDs(cmd *cobra.Command, doc *progress.Document) []string {
	extra, _ := cmd.Flags().GetStringSlice("friend")
	seen := make(map[string]bool, len(doc.Friends)+len(extra))
	var ids []string
	for _, id := range append(append([]string{}, doc.Friends...), extra...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func addHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().String("progress", "", "Progress document (overrides STEEZY_PROGRESS env var)")
}

func addFriendFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("friend", nil, "Additional friend IDs")
}

// bar renders a fraction in [0, 1] as a fixed-width progress bar.
func bar(frac float64, width int) string {
	filled := int(frac * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
