// Package report summarizes a classified statement: spend per category,
// totals and classification coverage.
package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/gastx/internal/classification"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/statement"
)

var hundred = decimal.NewFromInt(100)

// BatchClassifier classifies many descriptions at once.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]model.CategoryMatch, error)
}

// Entry is one classified statement line.
type Entry struct {
	Date           string           `json:"date"`
	Title          string           `json:"title"`
	Category       model.Category   `json:"category"`
	Confidence     model.Confidence `json:"confidence"`
	MatchedPattern string           `json:"matched_pattern,omitempty"`
	Amount         float64          `json:"amount"`
}

// CategorySummary is the spend attributed to one category.
type CategorySummary struct {
	Category   model.Category `json:"category"`
	Total      float64        `json:"total"`
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"`
}

// Upload is the full analysis of one statement.
type Upload struct {
	BankDetected      statement.Bank            `json:"bank_detected"`
	Transactions      []Entry                   `json:"transactions"`
	CategorySummary   []CategorySummary         `json:"category_summary"`
	Stats             model.CategorizationStats `json:"stats"`
	TotalTransactions int                       `json:"total_transactions"`
	TotalSpent        float64                   `json:"total_spent"`
	TotalReceived     float64                   `json:"total_received"`
	Success           bool                      `json:"success"`
}

// Build classifies every transaction of stmt and summarizes the result. The
// Category field of stmt's transactions is filled in.
func Build(ctx context.Context, classifier BatchClassifier, stmt *statement.Statement) (*Upload, error) {
	texts := make([]string, len(stmt.Transactions))
	for i, txn := range stmt.Transactions {
		texts[i] = txn.Text()
	}

	matches, err := classifier.ClassifyBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to classify statement: %w", err)
	}

	entries := make([]Entry, len(stmt.Transactions))
	for i := range stmt.Transactions {
		txn := &stmt.Transactions[i]
		txn.Category = matches[i].Category
		entries[i] = Entry{
			Date:           txn.DateString(),
			Title:          txn.Title,
			Amount:         money(txn.Amount),
			Category:       matches[i].Category,
			Confidence:     matches[i].Confidence,
			MatchedPattern: matches[i].MatchedPattern,
		}
	}

	spent, received := Totals(stmt.Transactions)

	return &Upload{
		Success:           true,
		BankDetected:      stmt.Bank,
		TotalTransactions: len(stmt.Transactions),
		TotalSpent:        money(spent),
		TotalReceived:     money(received),
		Transactions:      entries,
		CategorySummary:   Summarize(stmt.Transactions),
		Stats:             classification.StatsFromMatches(matches),
	}, nil
}

// Totals returns the sum of positive amounts and the absolute sum of
// negative amounts.
func Totals(transactions []model.Transaction) (spent, received decimal.Decimal) {
	for _, txn := range transactions {
		switch {
		case txn.Amount.IsPositive():
			spent = spent.Add(txn.Amount)
		case txn.Amount.IsNegative():
			received = received.Add(txn.Amount.Abs())
		}
	}
	return spent, received
}

// Summarize groups spend (positive amounts) by category. Totals are rounded
// to cents before percentages are taken so that the percentages describe the
// totals shown. The result is ordered by total, largest first; equal totals
// keep the order in which their category first appeared.
func Summarize(transactions []model.Transaction) []CategorySummary {
	type bucket struct {
		category model.Category
		total    decimal.Decimal
		count    int
	}

	var buckets []*bucket
	byCategory := make(map[model.Category]*bucket)
	for _, txn := range transactions {
		if !txn.IsSpend() {
			continue
		}
		category := txn.Category
		if category == "" {
			category = model.CategoryOther
		}
		b, ok := byCategory[category]
		if !ok {
			b = &bucket{category: category}
			byCategory[category] = b
			buckets = append(buckets, b)
		}
		b.total = b.total.Add(txn.Amount)
		b.count++
	}

	grand := decimal.Zero
	for _, b := range buckets {
		b.total = b.total.Round(2)
		grand = grand.Add(b.total)
	}

	slices.SortStableFunc(buckets, func(a, b *bucket) int {
		return b.total.Cmp(a.total)
	})

	summary := make([]CategorySummary, len(buckets))
	for i, b := range buckets {
		summary[i] = CategorySummary{
			Category: b.category,
			Total:    money(b.total),
			Count:    b.count,
		}
		if grand.IsPositive() {
			summary[i].Percentage, _ = b.total.Div(grand).Mul(hundred).Round(1).Float64()
		}
	}
	return summary
}

func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
