package pattern

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/Veraticus/gastx/internal/model"
)

// Ensure Suggester implements CategorySuggester interface.
var _ CategorySuggester = (*Suggester)(nil)

const (
	// MaxSuggestions caps the length of a suggestion list.
	MaxSuggestions = 5
	// saturation is the raw score at which a category reaches 1.0; two
	// high-tier hits are enough.
	saturation = 2.0
)

// Suggester scores every category against a description using all matching
// patterns, not just the first one.
type Suggester struct {
	source SnapshotSource
}

// NewSuggester creates a new category suggester.
func NewSuggester(source SnapshotSource) *Suggester {
	return &Suggester{source: source}
}

// Suggest returns category suggestions with scores in [0, 1].
func (s *Suggester) Suggest(text string) []model.CategorySuggestion {
	if text == "" {
		return []model.CategorySuggestion{}
	}

	hits := s.source.Snapshot().AllMatches(strings.ToLower(text))

	// Hits arrive grouped by category in catalogue order.
	suggestions := make([]model.CategorySuggestion, 0, MaxSuggestions)
	for _, hit := range hits {
		n := len(suggestions)
		if n == 0 || suggestions[n-1].Category != hit.Category {
			suggestions = append(suggestions, model.CategorySuggestion{Category: hit.Category})
			n++
		}
		suggestions[n-1].Score += hit.Tier.Weight()
	}

	for i := range suggestions {
		suggestions[i].Score = math.Min(suggestions[i].Score/saturation, 1.0)
	}

	slices.SortStableFunc(suggestions, func(a, b model.CategorySuggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
