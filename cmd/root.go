package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/apprise/internal/bank"
)

var rootCmd = &cobra.Command{
	Use:   "apprise",
	Short: "Role-based appraisal assessments with AI feedback",
	Long:  "Apprise delivers role-specific multiple-choice assessments, scores submissions, and generates narrative feedback.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank file (overrides APPRISE_BANK env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite audit database (overrides APPRISE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process-wide structured logger.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// resolveBankPath returns the bank path using --bank (highest priority),
// then the APPRISE_BANK env var, then the default file name.
func resolveBankPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	if p := os.Getenv("APPRISE_BANK"); p != "" {
		return p
	}
	return "knowledge_base.json"
}

// loadStore creates a Store and loads the bank file into it.
func loadStore(cmd *cobra.Command, log *slog.Logger) (*bank.Store, string, error) {
	path := resolveBankPath(cmd)
	store := bank.NewStore(log)
	if err := store.LoadFile(path); err != nil {
		return nil, "", fmt.Errorf("load question bank %q: %w", path, err)
	}
	return store, path, nil
}
