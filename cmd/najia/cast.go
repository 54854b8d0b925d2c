package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/najia/internal/cli"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/spf13/cobra"
)

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Cast a hexagram",
	Long: `Cast a hexagram by coins, numbers or moment, then print the annotated chart
and its interpretation. Readings are saved to the configured store.`,
}

var castCoinsCmd = &cobra.Command{
	Use:   "coins",
	Short: "Toss three coins for each of the six lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCast(cmd, func(c *caster) (*domain.Reading, error) {
			return c.engine.CastByCoins(cmd.Context(), c.query)
		})
	},
}

var castNumbersCmd = &cobra.Command{
	Use:     "numbers N [N...]",
	Short:   "Derive the hexagram from a sequence of non-negative integers",
	Example: "  najia cast numbers 3 8 --query \"Will the new job work out?\"\n  najia cast numbers 1216",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, err := cli.ParseNumbers(args)
		if err != nil {
			return err
		}
		return runCast(cmd, func(c *caster) (*domain.Reading, error) {
			return c.engine.CastByNumbers(cmd.Context(), numbers, c.query)
		})
	},
}

var castMomentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Derive the hexagram from the calendar position of an instant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		instant := time.Now()
		if raw, _ := cmd.Flags().GetString("instant"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return domain.InvalidInput(domain.MethodMoment, "instant %q is not RFC 3339", raw)
			}
			instant = parsed
		}
		return runCast(cmd, func(c *caster) (*domain.Reading, error) {
			return c.engine.CastByMoment(cmd.Context(), instant, c.query)
		})
	},
}

func init() {
	rootCmd.AddCommand(castCmd)
	castCmd.AddCommand(castCoinsCmd, castNumbersCmd, castMomentCmd)

	castCmd.PersistentFlags().StringP("query", "q", "", "The question being asked")
	castCmd.PersistentFlags().Int64("seed", 0, "Pin the coin seed so the cast can be replayed")
	castCmd.PersistentFlags().StringP("format", "f", cli.FormatText, "Output format: "+strings.Join(cli.Formats, ", "))
	castMomentCmd.Flags().String("instant", "", "RFC 3339 timestamp (defaults to now)")
}

func runCast(cmd *cobra.Command, cast func(*caster) (*domain.Reading, error)) error {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfg.Seed = &seed
	}

	c, err := newCaster(cmd)
	if err != nil {
		return err
	}
	defer c.close()

	reading, err := cast(c)
	if err != nil {
		return fmt.Errorf("cast failed: %w", err)
	}
	format, _ := cmd.Flags().GetString("format")
	return cli.WriteReading(cmd.OutOrStdout(), reading, format)
}
