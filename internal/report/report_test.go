package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/gastx/internal/classification"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/pattern"
	"github.com/Veraticus/gastx/internal/statement"
)

func txn(title, amount string, category model.Category) model.Transaction {
	return model.Transaction{
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Title:    title,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	}
}

func TestTotals(t *testing.T) {
	spent, received := Totals([]model.Transaction{
		txn("a", "23.90", ""),
		txn("b", "10.10", ""),
		txn("c", "-500.00", ""),
		txn("d", "-0.50", ""),
		txn("e", "0", ""),
	})

	assert.Equal(t, "34", spent.String())
	assert.Equal(t, "500.5", received.String())
}

func TestTotals_Empty(t *testing.T) {
	spent, received := Totals(nil)
	assert.True(t, spent.IsZero())
	assert.True(t, received.IsZero())
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]model.Transaction{
		txn("Uber", "23.90", model.CategoryTransport),
		txn("Pizzaria", "58.00", model.CategoryFood),
		txn("Uber", "10.10", model.CategoryTransport),
		txn("Netflix", "39.90", model.CategoryEntertainment),
		txn("Estorno", "-20.00", model.CategoryShopping),
		txn("???", "8.10", model.CategoryOther),
	})

	require.Len(t, summary, 4)

	want := []struct {
		category   model.Category
		total      float64
		count      int
		percentage float64
	}{
		{model.CategoryFood, 58.00, 1, 41.4},
		{model.CategoryEntertainment, 39.90, 1, 28.5},
		{model.CategoryTransport, 34.00, 2, 24.3},
		{model.CategoryOther, 8.10, 1, 5.8},
	}
	for i, w := range want {
		assert.Equal(t, w.category, summary[i].Category)
		assert.InDelta(t, w.total, summary[i].Total, 1e-9)
		assert.Equal(t, w.count, summary[i].Count)
		assert.InDelta(t, w.percentage, summary[i].Percentage, 1e-9)
	}
}

func TestSummarize_ExcludesNonSpend(t *testing.T) {
	summary := Summarize([]model.Transaction{
		txn("Salario", "-5000", model.CategoryTransfers),
		txn("Ajuste", "0", model.CategoryTaxes),
	})
	assert.Empty(t, summary)
}

func TestSummarize_TiesKeepFirstSeenOrder(t *testing.T) {
	summary := Summarize([]model.Transaction{
		txn("b", "10", model.CategoryHome),
		txn("a", "10", model.CategoryFood),
		txn("c", "30", model.CategoryHealth),
	})

	require.Len(t, summary, 3)
	assert.Equal(t, model.CategoryHealth, summary[0].Category)
	assert.Equal(t, model.CategoryHome, summary[1].Category)
	assert.Equal(t, model.CategoryFood, summary[2].Category)
	assert.InDelta(t, 60.0, summary[0].Percentage, 1e-9)
	assert.InDelta(t, 20.0, summary[1].Percentage, 1e-9)
}

func TestSummarize_ZeroGrandTotal(t *testing.T) {
	summary := Summarize([]model.Transaction{
		txn("fração", "0.001", model.CategoryTaxes),
	})

	require.Len(t, summary, 1)
	assert.Zero(t, summary[0].Total)
	assert.Zero(t, summary[0].Percentage)
}

func TestSummarize_MissingCategoryCountsAsOther(t *testing.T) {
	summary := Summarize([]model.Transaction{txn("x", "5", "")})

	require.Len(t, summary, 1)
	assert.Equal(t, model.CategoryOther, summary[0].Category)
}

func TestBuild(t *testing.T) {
	engine := classification.NewEngine(pattern.NewDefaultRegistry(), classification.WithWorkers(2))
	stmt := &statement.Statement{
		Bank: statement.BankNubank,
		Transactions: []model.Transaction{
			txn("Uber *Trip 123", "23.90", ""),
			txn("Pizzaria do Bairro", "58.00", ""),
			txn("xyz-unmatched-merchant-001", "8.10", ""),
			txn("Salario empresa", "-3000.00", ""),
		},
	}

	upload, err := Build(context.Background(), engine, stmt)
	require.NoError(t, err)

	assert.True(t, upload.Success)
	assert.Equal(t, statement.BankNubank, upload.BankDetected)
	assert.Equal(t, 4, upload.TotalTransactions)
	assert.InDelta(t, 90.00, upload.TotalSpent, 1e-9)
	assert.InDelta(t, 3000.00, upload.TotalReceived, 1e-9)

	require.Len(t, upload.Transactions, 4)
	first := upload.Transactions[0]
	assert.Equal(t, "2024-03-01", first.Date)
	assert.Equal(t, model.CategoryTransport, first.Category)
	assert.Equal(t, model.ConfidenceHigh, first.Confidence)
	assert.Equal(t, `\buber\b`, first.MatchedPattern)
	assert.InDelta(t, 23.90, first.Amount, 1e-9)

	assert.Equal(t, model.CategoryOther, upload.Transactions[2].Category)
	assert.Equal(t, model.CategoryTransport, stmt.Transactions[0].Category, "statement rows are annotated")

	require.Len(t, upload.CategorySummary, 3)
	assert.Equal(t, model.CategoryFood, upload.CategorySummary[0].Category)
	assert.Equal(t, 4, upload.Stats.Total)
}

func TestBuild_EmptyStatement(t *testing.T) {
	engine := classification.NewEngine(pattern.NewDefaultRegistry())

	upload, err := Build(context.Background(), engine, &statement.Statement{Bank: statement.BankUnknown})
	require.NoError(t, err)

	assert.Zero(t, upload.TotalTransactions)
	assert.Empty(t, upload.Transactions)
	assert.Empty(t, upload.CategorySummary)
	assert.Zero(t, upload.Stats.CategorizationRate)
}

type failingClassifier struct{}

func (failingClassifier) ClassifyBatch(context.Context, []string) ([]model.CategoryMatch, error) {
	return nil, errors.New("boom")
}

func TestBuild_ClassifierError(t *testing.T) {
	stmt := &statement.Statement{Transactions: []model.Transaction{txn("Uber", "1", "")}}

	_, err := Build(context.Background(), failingClassifier{}, stmt)
	assert.ErrorContains(t, err, "boom")
}
