package pattern

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/model"
)

// Ensure Registry implements SnapshotSource interface.
var _ SnapshotSource = (*Registry)(nil)

// Registry owns the pattern table and its compiled snapshot. Writers are
// serialized by mu; readers only load the published snapshot pointer.
type Registry struct {
	patterns map[model.Category]TierPatterns
	snapshot atomic.Pointer[Snapshot]
	mu       sync.Mutex
}

// NewRegistry creates a registry holding a copy of the given patterns.
// Every key must be a catalogue category, every tier must be valid and every
// pattern must compile.
func NewRegistry(patterns map[model.Category]TierPatterns) (*Registry, error) {
	table := make(map[model.Category]TierPatterns, len(patterns))
	for category, tiers := range patterns {
		if !category.InCatalogue() {
			return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
		}
		table[category] = make(TierPatterns, len(tiers))
		for tier, list := range tiers {
			if !tier.Valid() {
				return nil, fmt.Errorf("%w: %q in category %s", common.ErrInvalidTier, tier, category)
			}
			for _, p := range list {
				table[category][tier] = appendUnique(table[category][tier], common.LowerPattern(p))
			}
		}
	}

	snap, err := compile(table)
	if err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}

	r := &Registry{patterns: table}
	r.snapshot.Store(snap)
	return r, nil
}

// NewDefaultRegistry creates a registry preloaded with DefaultPatterns.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultPatterns())
	if err != nil {
		panic(fmt.Sprintf("default patterns do not compile: %v", err))
	}
	return r
}

// Snapshot returns the currently published compiled patterns.
func (r *Registry) Snapshot() *Snapshot {
	return r.snapshot.Load()
}

// Categories returns the catalogue followed by the sentinel category.
func (r *Registry) Categories() []model.Category {
	return model.AllCategories()
}

// Patterns returns a copy of the patterns registered for category. Unknown
// categories yield an empty result.
func (r *Registry) Patterns(category model.Category) TierPatterns {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(TierPatterns)
	for tier, list := range r.patterns[category] {
		out[tier] = append([]string(nil), list...)
	}
	return out
}

// AddPattern registers pattern for category at tier. It returns false without
// touching the registry when category is not in the catalogue or when the
// pattern is already present in that tier. Invalid tiers and patterns that do
// not compile are rejected with an error.
func (r *Registry) AddPattern(category model.Category, pattern string, tier model.Tier) (bool, error) {
	if !category.InCatalogue() {
		slog.Debug("Ignoring pattern for unknown category", "category", category, "pattern", pattern)
		return false, nil
	}
	if !tier.Valid() {
		return false, fmt.Errorf("%w: %q", common.ErrInvalidTier, tier)
	}

	normalized := common.NormalizePattern(pattern)
	if _, err := common.CompileFold(normalized); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if containsFold(r.patterns[category][tier], normalized) {
		return false, nil
	}

	next := r.cloneLocked()
	if next[category] == nil {
		next[category] = make(TierPatterns)
	}
	next[category][tier] = append(next[category][tier], normalized)

	snap, err := compile(next)
	if err != nil {
		return false, fmt.Errorf("failed to compile patterns: %w", err)
	}

	r.patterns = next
	r.snapshot.Store(snap)

	slog.Debug("Pattern added",
		"category", category,
		"tier", tier,
		"pattern", normalized,
		"total_patterns", snap.Len())
	return true, nil
}

// PatternCount returns the number of registered patterns.
func (r *Registry) PatternCount() int {
	return r.Snapshot().Len()
}

// cloneLocked deep-copies the pattern table. Callers must hold mu.
func (r *Registry) cloneLocked() map[model.Category]TierPatterns {
	out := make(map[model.Category]TierPatterns, len(r.patterns))
	for category, tiers := range r.patterns {
		out[category] = make(TierPatterns, len(tiers))
		for tier, list := range tiers {
			out[category][tier] = append([]string(nil), list...)
		}
	}
	return out
}

func appendUnique(list []string, p string) []string {
	if containsFold(list, p) {
		return list
	}
	return append(list, p)
}

func containsFold(list []string, p string) bool {
	for _, existing := range list {
		if strings.EqualFold(existing, p) {
			return true
		}
	}
	return false
}
