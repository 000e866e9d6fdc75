// Package pattern holds the categorization pattern registry, its compiled
// snapshots and the suggestion scorer built on top of them.
package pattern

import "github.com/Veraticus/gastx/internal/model"

// SnapshotSource publishes compiled pattern snapshots.
type SnapshotSource interface {
	// Snapshot returns the current compiled patterns. The result is immutable.
	Snapshot() *Snapshot
}

// CategorySuggester ranks plausible categories for a description.
type CategorySuggester interface {
	// Suggest returns at most MaxSuggestions entries sorted by descending score.
	Suggest(text string) []model.CategorySuggestion
}
