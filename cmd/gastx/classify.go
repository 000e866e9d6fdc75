package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/gastx/internal/cli"
	"github.com/Veraticus/gastx/internal/classification"
	"github.com/Veraticus/gastx/internal/model"
)

type classifyResult struct {
	Text string `json:"text"`
	model.CategoryMatch
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <description...>",
		Short: "Classify one or more transaction descriptions",
		Long: `Classify each argument as a separate transaction description.

Examples:
  gastx classify "UBER *TRIP 1234"
  gastx classify "Pizzaria do Bairro" "Drogasil 123" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().Bool("json", false, "Print results as JSON")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	engine, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	matches, err := engine.ClassifyBatch(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("failed to classify: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		results := make([]classifyResult, len(args))
		for i, text := range args {
			results[i] = classifyResult{Text: text, CategoryMatch: matches[i]}
		}
		return writeJSON(out, results)
	}

	rows := make([]cli.MatchRow, len(args))
	for i, text := range args {
		rows[i] = cli.MatchRow{Text: text, Match: matches[i]}
	}
	if err := cli.WriteMatches(out, rows); err != nil {
		return err
	}

	if len(args) > 1 {
		stats := classification.StatsFromMatches(matches)
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("%d of %d categorized (%.1f%%)",
			stats.Categorized, stats.Total, stats.CategorizationRate)))
	}
	return nil
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <description>",
		Short: "Rank the categories a description could belong to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			engine, err := newEngine(appConfig)
			if err != nil {
				return err
			}

			suggestions := engine.Suggest(strings.Join(args, " "))
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), suggestions)
			}
			return cli.WriteSuggestions(cmd.OutOrStdout(), suggestions)
		},
	}

	cmd.Flags().Bool("json", false, "Print results as JSON")

	return cmd
}
