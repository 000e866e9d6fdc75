package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/report"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// MatchRow pairs a description with its classification.
type MatchRow struct {
	Text  string
	Match model.CategoryMatch
}

// WriteMatches prints one line per classified description.
func WriteMatches(w io.Writer, rows []MatchRow) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "DESCRIPTION\tCATEGORY\tCONFIDENCE\tPATTERN")
	for _, row := range rows {
		pattern := row.Match.MatchedPattern
		if pattern == "" {
			pattern = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", truncate(row.Text, 48), row.Match.Category, row.Match.Confidence, pattern)
	}
	return tw.Flush()
}

// WriteSuggestions prints ranked suggestions with their scores.
func WriteSuggestions(w io.Writer, suggestions []model.CategorySuggestion) error {
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No category suggestions"))
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "#\tCATEGORY\tSCORE")
	for i, s := range suggestions {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\n", i+1, s.Category, s.Score)
	}
	return tw.Flush()
}

// WriteSummary prints the spend table of a report.
func WriteSummary(w io.Writer, summary []report.CategorySummary) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CATEGORY\tTOTAL\tCOUNT\tSHARE")
	for _, s := range summary {
		fmt.Fprintf(tw, "%s\tR$ %.2f\t%d\t%.1f%%\n", s.Category, s.Total, s.Count, s.Percentage)
	}
	return tw.Flush()
}

// ReportOverview renders the headline numbers of an upload report.
func ReportOverview(u *report.Upload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bank: %s\n", u.BankDetected)
	fmt.Fprintf(&b, "Transactions: %d\n", u.TotalTransactions)
	fmt.Fprintf(&b, "Spent: R$ %.2f\n", u.TotalSpent)
	fmt.Fprintf(&b, "Received: R$ %.2f\n", u.TotalReceived)
	fmt.Fprintf(&b, "Categorized: %d of %d (%.1f%%)\n", u.Stats.Categorized, u.Stats.Total, u.Stats.CategorizationRate)
	for _, c := range model.Confidences {
		fmt.Fprintf(&b, "  %s: %d\n", FormatConfidence(c), u.Stats.ByConfidence[c])
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
