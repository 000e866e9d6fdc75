package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/report"
)

func TestWriteMatches(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMatches(&buf, []MatchRow{
		{Text: "Uber *Trip", Match: model.CategoryMatch{Category: model.CategoryTransport, Confidence: model.ConfidenceHigh, MatchedPattern: `\buber\b`}},
		{Text: "nada", Match: model.Unmatched()},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "DESCRIPTION"))
	assert.Contains(t, lines[1], "Transporte")
	assert.Contains(t, lines[1], `\buber\b`)
	assert.Contains(t, lines[2], "Outros")
	assert.True(t, strings.HasSuffix(lines[2], "-"))
}

func TestWriteSuggestions(t *testing.T) {
	t.Run("ranked", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSuggestions(&buf, []model.CategorySuggestion{
			{Category: model.CategoryTransport, Score: 0.65},
		}))
		assert.Contains(t, buf.String(), "0.65")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSuggestions(&buf, nil))
		assert.Contains(t, buf.String(), "No category suggestions")
	})
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, []report.CategorySummary{
		{Category: model.CategoryFood, Total: 120.5, Count: 3, Percentage: 41.4},
	}))
	assert.Contains(t, buf.String(), "R$ 120.50")
	assert.Contains(t, buf.String(), "41.4%")
}

func TestReportOverview(t *testing.T) {
	stats := model.NewCategorizationStats()
	stats.Add(model.CategoryMatch{Category: model.CategoryFood, Confidence: model.ConfidenceHigh})
	stats.Add(model.Unmatched())

	got := ReportOverview(&report.Upload{
		BankDetected:      "Nubank",
		TotalTransactions: 2,
		TotalSpent:        10,
		Stats:             stats,
	})

	assert.Contains(t, got, "Bank: Nubank")
	assert.Contains(t, got, "Spent: R$ 10.00")
	assert.Contains(t, got, "Categorized: 1 of 2")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "açou…", truncate("açougue", 5))
}
