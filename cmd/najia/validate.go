package main

import (
	"fmt"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the static tables for consistency",
	Long: `Re-runs the self-check of every static table: trigrams, hexagram catalog,
palaces, najia assignments and six spirits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := domain.VerifyTables(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tables are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
