package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/apprise/internal/assess"
	"github.com/abhisek/apprise/internal/feedback"
	"github.com/abhisek/apprise/internal/llm"
	"github.com/abhisek/apprise/internal/ui"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take an assessment in the terminal",
	RunE:  runTake,
}

func init() {
	takeCmd.Flags().IntP("questions", "n", 10, "Number of questions to answer")
}

func runTake(cmd *cobra.Command, args []string) error {
	log := newLogger()

	store, _, err := loadStore(cmd, log)
	if err != nil {
		return err
	}

	auditStore, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer auditStore.Close()

	provider, err := llm.NewProvider(cmd.Context(), resolveLLMConfig(log), auditStore, log)
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}

	count, _ := cmd.Flags().GetInt("questions")
	sampler := assess.NewSampler(store)
	fb := feedback.NewService(provider, feedback.DefaultConfig())

	return ui.Run(ui.New(sampler, fb, store.Roles(), count))
}
