package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/gastx/internal/cli"
	"github.com/Veraticus/gastx/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with pattern counts per tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := newEngine(appConfig)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tHIGH\tMEDIUM\tLOW")
			for _, category := range engine.Categories() {
				patterns := engine.Patterns(category)
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", category,
					len(patterns[model.TierHigh]), len(patterns[model.TierMedium]), len(patterns[model.TierLow]))
			}
			return tw.Flush()
		},
	}
}

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Inspect and try out classification patterns",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <category>",
		Short: "Show the patterns of a category by tier",
		Args:  cobra.ExactArgs(1),
		RunE:  runPatternsList,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "test <description>",
		Short: "Show how a description is classified and what else it matches",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPatternsTest,
	})

	return cmd
}

func runPatternsList(cmd *cobra.Command, args []string) error {
	category, err := parseCategoryArg(args[0])
	if err != nil {
		return err
	}

	engine, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle(string(category)))

	patterns := engine.Patterns(category)
	if len(patterns) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("No patterns; this category is only assigned when nothing matches"))
		return nil
	}
	for _, tier := range model.Tiers {
		list := patterns[tier]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s (%d)\n", cli.BoldStyle.Render(string(tier)), len(list))
		for _, p := range list {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}

func runPatternsTest(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	match := engine.Classify(text)
	if err := cli.WriteMatches(out, []cli.MatchRow{{Text: text, Match: match}}); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return cli.WriteSuggestions(out, engine.Suggest(text))
}
