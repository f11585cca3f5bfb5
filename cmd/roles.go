package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles available in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadStore(cmd, newLogger())
		if err != nil {
			return err
		}
		for _, role := range store.Roles() {
			questions, err := store.QuestionsFor(role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d questions\n", role, len(questions))
		}
		return nil
	},
}
