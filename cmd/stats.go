package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question bank counts and recent LLM activity",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("events", 10, "Number of recent LLM requests to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, path, err := loadStore(cmd, newLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snap := store.Snapshot()
	fmt.Fprintf(out, "bank: %s\n", path)
	fmt.Fprintf(out, "fingerprint: %s\n", snap.Fingerprint())
	fmt.Fprintf(out, "total questions: %d\n\n", snap.TotalQuestions())
	for _, role := range snap.Roles() {
		questions, err := snap.QuestionsFor(role)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-40s %d\n", role, len(questions))
	}

	auditStore, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer auditStore.Close()

	limit, _ := cmd.Flags().GetInt("events")
	events, err := auditStore.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nrecent LLM requests:\n")
	for _, e := range events {
		status := "ok"
		if !e.Success {
			status = "failed: " + e.ErrorMessage
		}
		fmt.Fprintf(out, "  %s %s/%s %s %dms in=%d out=%d %s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Provider, e.Model,
			e.Purpose, e.LatencyMs, e.InputTokens, e.OutputTokens, status)
	}
	return nil
}
