package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/steezy/steezy/internal/log"
	"github.com/steezy/steezy/internal/progress"
)

// now is replaced in tests.
var now = time.Now

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Create and update progress documents",
}

var progressNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Print a progress document with a first record for a trick",
	RunE: func(cmd *cobra.Command, args []string) error {
		trickRef, _ := cmd.Flags().GetString("trick")
		user, _ := cmd.Flags().GetString("user")

		t, ok := engine.Catalog().Resolve(trickRef)
		if !ok {
			return fmt.Errorf("no trick found for %q", trickRef)
		}
		if user == "" {
			user = uuid.NewString()
			log.Info("generated user id", "user", user)
		}

		doc := &progress.Document{
			UserID:   user,
			Progress: []progress.UserTrickProgress{progress.New(user, t.ID)},
		}
		return progress.Encode(cmd.OutOrStdout(), doc)
	},
}

var progressRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an attempt and print the updated progress document",
	Long: `Record one attempt at a trick with the comfort level reached.

The updated document is written to stdout; the input file is never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		trickRef, _ := cmd.Flags().GetString("trick")
		comfortVal, _ := cmd.Flags().GetString("comfort")

		comfort, err := progress.ParseComfortLevel(comfortVal)
		if err != nil {
			return err
		}
		t, ok := engine.Catalog().Resolve(trickRef)
		if !ok {
			return fmt.Errorf("no trick found for %q", trickRef)
		}

		doc, err := loadHistory(cmd)
		if err != nil {
			return err
		}
		if doc.UserID == "" {
			doc.UserID = uuid.NewString()
			log.Info("generated user id", "user", doc.UserID)
		}

		rec, ok := progress.Find(t.ID, doc.Progress)
		if !ok {
			rec = progress.New(doc.UserID, t.ID)
		}
		rec, err = progress.RecordAttempt(rec, comfort, now())
		if err != nil {
			return err
		}
		doc.Progress = progress.Upsert(doc.Progress, rec)

		log.Debug("attempt recorded", "trick", t.ID, "comfort", comfort, "attempts", rec.Attempts)
		return progress.Encode(cmd.OutOrStdout(), doc)
	},
}

func init() {
	progressNewCmd.Flags().String("trick", "", "Trick ID or slug (required)")
	progressNewCmd.Flags().String("user", "", "User ID (default: a new random ID)")
	_ = progressNewCmd.MarkFlagRequired("trick")

	progressRecordCmd.Flags().String("trick", "", "Trick ID or slug (required)")
	progressRecordCmd.Flags().String("comfort", "", "Comfort level: learning, trying, comfortable or mastered (required)")
	addHistoryFlags(progressRecordCmd)
	_ = progressRecordCmd.MarkFlagRequired("trick")
	_ = progressRecordCmd.MarkFlagRequired("comfort")

	progressCmd.AddCommand(progressNewCmd)
	progressCmd.AddCommand(progressRecordCmd)
}
