package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/apprise/internal/bank"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank file and report dropped records",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := resolveBankPath(cmd)
	if len(args) == 1 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	result, err := bank.Parse(data, bank.DetectFormat(path))
	if err != nil {
		return fmt.Errorf("validate %q: %w", path, err)
	}

	out := cmd.OutOrStdout()
	total := 0
	for _, questions := range result.Roles {
		total += len(questions)
	}
	fmt.Fprintf(out, "%s: %d roles, %d questions, fingerprint %s\n",
		path, len(result.Roles), total, bank.Fingerprint(result.Roles))

	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "skipped: %v\n", skipped)
	}
	for _, role := range result.DroppedRoles {
		fmt.Fprintf(out, "dropped role (no valid questions): %s\n", role)
	}

	if len(result.Skipped) > 0 || len(result.DroppedRoles) > 0 {
		return fmt.Errorf("%d records skipped, %d roles dropped",
			len(result.Skipped), len(result.DroppedRoles))
	}
	return nil
}
