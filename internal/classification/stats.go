package classification

import (
	"github.com/shopspring/decimal"

	"github.com/Veraticus/gastx/internal/model"
)

// TextRecord is anything carrying a description to classify.
type TextRecord interface {
	Text() string
}

// Aggregate classifies every record and summarizes the outcome.
func Aggregate[T TextRecord](c *Classifier, records []T) model.CategorizationStats {
	stats := model.NewCategorizationStats()
	for _, r := range records {
		stats.Add(c.Classify(r.Text()))
	}
	stats.CategorizationRate = CategorizationRate(stats.Categorized, stats.Total)
	return stats
}

// AggregateTexts is Aggregate over plain descriptions.
func (c *Classifier) AggregateTexts(texts []string) model.CategorizationStats {
	stats := model.NewCategorizationStats()
	for _, text := range texts {
		stats.Add(c.Classify(text))
	}
	stats.CategorizationRate = CategorizationRate(stats.Categorized, stats.Total)
	return stats
}

// StatsFromMatches summarizes results that were already computed, for
// callers that classified a batch themselves.
func StatsFromMatches(matches []model.CategoryMatch) model.CategorizationStats {
	stats := model.NewCategorizationStats()
	for _, m := range matches {
		stats.Add(m)
	}
	stats.CategorizationRate = CategorizationRate(stats.Categorized, stats.Total)
	return stats
}

// CategorizationRate returns categorized/total as a percentage rounded to one
// decimal place, or 0 when total is 0.
func CategorizationRate(categorized, total int) float64 {
	if total == 0 {
		return 0
	}
	rate, _ := decimal.NewFromInt(int64(categorized)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1).
		Float64()
	return rate
}
