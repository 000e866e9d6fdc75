// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gastx/internal/common"
)

// Tier is a pattern priority level. It controls both match order and the
// confidence reported for a match.
type Tier string

// Tier constants, highest precedence first.
const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Tiers lists every tier in scan order.
var Tiers = [...]Tier{TierHigh, TierMedium, TierLow}

// ParseTier parses a tier name, case-insensitively.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (valid: high, medium, low)", common.ErrInvalidTier, s)
	}
	return t, nil
}

// Valid reports whether t is one of the three recognized tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierHigh, TierMedium, TierLow:
		return true
	}
	return false
}

// Weight is the contribution of a single matching pattern of this tier to a
// suggestion score.
func (t Tier) Weight() float64 {
	switch t {
	case TierHigh:
		return 1.0
	case TierMedium:
		return 0.6
	case TierLow:
		return 0.3
	}
	return 0
}

// Confidence returns the confidence grade reported for a match at this tier.
func (t Tier) Confidence() Confidence {
	return Confidence(t)
}

// Confidence grades how specific the matching pattern was.
type Confidence string

// Confidence constants. ConfidenceNone only accompanies CategoryOther.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// Confidences lists every grade in histogram order.
var Confidences = [...]Confidence{ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceNone}

// CategoryMatch is the result of classifying one description.
type CategoryMatch struct {
	Category       Category   `json:"category"`
	Confidence     Confidence `json:"confidence"`
	MatchedPattern string     `json:"matched_pattern,omitempty"`
}

// Unmatched returns the sentinel result.
func Unmatched() CategoryMatch {
	return CategoryMatch{Category: CategoryOther, Confidence: ConfidenceNone}
}

// Matched reports whether the result carries a catalogue category.
func (m CategoryMatch) Matched() bool {
	return !m.Category.IsOther()
}

// CategorySuggestion pairs a category with a relevance score in [0, 1].
type CategorySuggestion struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
}

// CategorizationStats summarizes classification results over a batch.
type CategorizationStats struct {
	ByConfidence       map[Confidence]int `json:"by_confidence"`
	ByCategory         map[Category]int   `json:"by_category"`
	Total              int                `json:"total"`
	Categorized        int                `json:"categorized"`
	Uncategorized      int                `json:"uncategorized"`
	CategorizationRate float64            `json:"categorization_rate"`
}

// NewCategorizationStats returns empty stats with every confidence bucket present.
func NewCategorizationStats() CategorizationStats {
	byConfidence := make(map[Confidence]int, len(Confidences))
	for _, c := range Confidences {
		byConfidence[c] = 0
	}
	return CategorizationStats{
		ByConfidence: byConfidence,
		ByCategory:   make(map[Category]int),
	}
}

// Add records one classification result. The rate is left to the caller.
func (s *CategorizationStats) Add(m CategoryMatch) {
	s.Total++
	if m.Matched() {
		s.Categorized++
	} else {
		s.Uncategorized++
	}
	s.ByConfidence[m.Confidence]++
	s.ByCategory[m.Category]++
}
