package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/gastx/internal/common"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input   string
		want    Tier
		wantErr bool
	}{
		{input: "high", want: TierHigh},
		{input: "MEDIUM", want: TierMedium},
		{input: " low ", want: TierLow},
		{input: "urgent", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTier(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidTier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_Properties(t *testing.T) {
	assert.InDelta(t, 1.0, TierHigh.Weight(), 1e-9)
	assert.InDelta(t, 0.6, TierMedium.Weight(), 1e-9)
	assert.InDelta(t, 0.3, TierLow.Weight(), 1e-9)
	assert.Zero(t, Tier("urgent").Weight())

	assert.Equal(t, ConfidenceMedium, TierMedium.Confidence())
}

func TestCategoryMatch(t *testing.T) {
	unmatched := Unmatched()
	assert.Equal(t, CategoryOther, unmatched.Category)
	assert.Equal(t, ConfidenceNone, unmatched.Confidence)
	assert.Empty(t, unmatched.MatchedPattern)
	assert.False(t, unmatched.Matched())

	assert.True(t, CategoryMatch{Category: CategoryFood, Confidence: ConfidenceLow}.Matched())
}

func TestCategorizationStats_Add(t *testing.T) {
	stats := NewCategorizationStats()
	require.Len(t, stats.ByConfidence, 4)

	stats.Add(CategoryMatch{Category: CategoryTransport, Confidence: ConfidenceHigh})
	stats.Add(CategoryMatch{Category: CategoryTransport, Confidence: ConfidenceLow})
	stats.Add(Unmatched())

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Categorized)
	assert.Equal(t, 1, stats.Uncategorized)
	assert.Equal(t, stats.Total, stats.Categorized+stats.Uncategorized)
	assert.Equal(t, map[Confidence]int{
		ConfidenceHigh:   1,
		ConfidenceMedium: 0,
		ConfidenceLow:    1,
		ConfidenceNone:   1,
	}, stats.ByConfidence)
	assert.Equal(t, map[Category]int{CategoryTransport: 2, CategoryOther: 1}, stats.ByCategory)
}
