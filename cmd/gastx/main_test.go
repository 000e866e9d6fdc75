package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/config"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/report"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestClassifyCmd(t *testing.T) {
	out := execute(t, classifyCmd(), "Uber *Trip 123", "xyz-unmatched-merchant-001")

	assert.Contains(t, out, "Transporte")
	assert.Contains(t, out, "Outros")
	assert.Contains(t, out, "1 of 2 categorized (50.0%)")
}

func TestClassifyCmd_JSON(t *testing.T) {
	out := execute(t, classifyCmd(), "--json", "Pizzaria do Bairro")

	var results []classifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Pizzaria do Bairro", results[0].Text)
	assert.Equal(t, model.CategoryFood, results[0].Category)
	assert.Equal(t, model.ConfidenceMedium, results[0].Confidence)
}

func TestSuggestCmd_JSON(t *testing.T) {
	out := execute(t, suggestCmd(), "--json", "Uber", "*Trip")

	var suggestions []model.CategorySuggestion
	require.NoError(t, json.Unmarshal([]byte(out), &suggestions))
	require.Len(t, suggestions, 1)
	assert.Equal(t, model.CategoryTransport, suggestions[0].Category)
}

func TestCategoriesCmd(t *testing.T) {
	out := execute(t, categoriesCmd())

	assert.Contains(t, out, "CATEGORY")
	for _, category := range model.AllCategories() {
		assert.Contains(t, out, string(category))
	}
}

func TestPatternsCmd(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		out := execute(t, patternsCmd(), "list", "Transporte")
		assert.Contains(t, out, `\buber\b`)
	})

	t.Run("list sentinel", func(t *testing.T) {
		out := execute(t, patternsCmd(), "list", "Outros")
		assert.Contains(t, out, "No patterns")
	})

	t.Run("list unknown", func(t *testing.T) {
		cmd := patternsCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"list", "Viagens"})
		err := cmd.Execute()
		require.ErrorIs(t, err, common.ErrUnknownCategory)
	})

	t.Run("test", func(t *testing.T) {
		out := execute(t, patternsCmd(), "test", "Uber", "*Trip")
		assert.Contains(t, out, "Transporte")
		assert.Contains(t, out, "0.65")
	})
}

func TestNewEngine_ExtraPatterns(t *testing.T) {
	engine, err := newEngine(&config.Config{
		Workers: 2,
		Patterns: []config.ExtraPattern{
			{Category: "Alimentação", Tier: "high", Pattern: "marmitaria"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFood, engine.Classify("Marmitaria da Esquina").Category)

	_, err = newEngine(&config.Config{
		Workers:  2,
		Patterns: []config.ExtraPattern{{Category: "Alimentação", Tier: "urgent", Pattern: "x"}},
	})
	require.ErrorIs(t, err, common.ErrInvalidTier)
}

func TestStatementKind(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "fatura.csv", want: "csv"},
		{path: "FATURA.CSV", want: "csv"},
		{path: "extrato.ofx", want: "ofx"},
		{path: "extrato.QFX", want: "ofx"},
		{path: "notes.txt", want: ""},
		{path: "noext", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, statementKind(tt.path))
		})
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "a.csv", "date,title,amount\n")
	ofxFile := writeFile(t, dir, "b.ofx", "")
	writeFile(t, dir, "c.txt", "")

	files, err := collectFiles([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)
	assert.Equal(t, []string{csv, ofxFile}, files)

	_, err = collectFiles([]string{filepath.Join(dir, "*.txt")})
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestDedupe(t *testing.T) {
	seen := map[string]bool{"a": true}
	got := dedupe([]model.Transaction{{Hash: "a"}, {Hash: "b"}, {Hash: "b"}, {Hash: "c"}}, seen)

	require.Len(t, got, 3, "repeats inside one file are kept")
	assert.Equal(t, "b", got[0].Hash)
	assert.Equal(t, "c", got[2].Hash)
	assert.True(t, seen["b"])
	assert.True(t, seen["c"])
}

func TestImportCmd_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nubank.csv", "date,title,amount\n"+
		"2024-03-01,Uber *Trip,25.50\n"+
		"2024-03-02,Pizzaria do Bairro,74.50\n"+
		"2024-03-03,Pagamento recebido,-100.00\n")

	out := execute(t, importCmd(), "--json", path)

	var reports []fileReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)

	r := reports[0].Report
	assert.Equal(t, "Nubank", string(r.BankDetected))
	assert.Equal(t, 3, r.TotalTransactions)
	assert.InDelta(t, 100.0, r.TotalSpent, 1e-9)
	assert.InDelta(t, 100.0, r.TotalReceived, 1e-9)
	require.Len(t, r.CategorySummary, 2)
	assert.Equal(t, model.CategoryFood, r.CategorySummary[0].Category)
}

func TestImportCmd_SkipsDuplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	content := "date,title,amount\n2024-03-01,Uber *Trip,25.50\n"
	first := writeFile(t, dir, "a.csv", content)
	second := writeFile(t, dir, "b.csv", content)

	out := execute(t, importCmd(), "--json", first, second)

	var reports []fileReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, first, reports[0].File)
}

func TestApplyReview(t *testing.T) {
	u := &report.Upload{
		Transactions: []report.Entry{
			{Title: "Loja", Category: model.CategoryOther, Amount: 30},
			{Title: "Uber", Category: model.CategoryTransport, Amount: 10},
		},
	}
	reviewed := []report.Entry{
		{Title: "Loja", Category: model.CategoryShopping, Amount: 30},
		{Title: "Uber", Category: model.CategoryTransport, Amount: 10},
	}

	got := applyReview(u, reviewed)

	require.Len(t, got.CategorySummary, 2)
	assert.Equal(t, model.CategoryShopping, got.CategorySummary[0].Category)
	assert.InDelta(t, 75.0, got.CategorySummary[0].Percentage, 1e-9)
	assert.Equal(t, model.CategoryOther, u.Transactions[0].Category)
}
