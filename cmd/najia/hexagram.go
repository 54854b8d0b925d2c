package main

import (
	"fmt"
	"strconv"

	"github.com/aretw0/najia/internal/cli"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/spf13/cobra"
)

var hexagramCmd = &cobra.Command{
	Use:   "hexagram [number]",
	Short: "Look up a hexagram by King Wen number, or list all 64",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := cli.CreateEngine(cfg, logger, nil)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")

		if len(args) == 0 {
			entries := engine.Catalog()
			if format == cli.FormatJSON || format == cli.FormatYAML {
				return cli.WriteData(cmd.OutOrStdout(), entries, format)
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-6s %-9s %s palace, %s\n", e.Number, e.Name, e.Pinyin, e.Palace, e.Generation)
			}
			return nil
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", domain.ErrHexagramNotFound, args[0])
		}
		entry, err := engine.Lookup(n)
		if err != nil {
			return err
		}
		return cli.WriteEntry(cmd.OutOrStdout(), entry, format)
	},
}

func init() {
	rootCmd.AddCommand(hexagramCmd)
	hexagramCmd.Flags().StringP("format", "f", cli.FormatText, "Output format: text, json or yaml")
}
