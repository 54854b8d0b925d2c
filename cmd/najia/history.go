package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/najia/internal/cli"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled readings, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCaster(cmd)
		if err != nil {
			return err
		}
		defer c.close()

		readings, err := c.engine.History(cmd.Context())
		if errors.Is(err, domain.ErrNoJournal) {
			return fmt.Errorf("%w: set store.kind to sqlite or redis", err)
		}
		if err != nil {
			return err
		}
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(readings) > limit {
			readings = readings[:limit]
		}
		format, _ := cmd.Flags().GetString("format")
		return cli.WriteHistory(cmd.OutOrStdout(), readings, format)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a journaled reading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCaster(cmd)
		if err != nil {
			return err
		}
		defer c.close()

		reading, err := c.engine.Recall(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return cli.WriteReading(cmd.OutOrStdout(), reading, format)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd, showCmd)

	historyCmd.Flags().IntP("limit", "n", 0, "Show at most this many readings")
	historyCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, json or yaml")
	showCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, markdown, json or yaml")
}
