package pattern

import (
	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/model"
)

// compiledPattern keeps the pattern text next to its matcher so a match can
// report exactly what was registered.
type compiledPattern struct {
	re     *common.Pattern
	source string
}

type compiledCategory struct {
	category model.Category
	tiers    [len(model.Tiers)][]compiledPattern
}

// Snapshot is an immutable, fully compiled view of the registry. A snapshot
// is never modified after it is published, so any number of goroutines may
// read it concurrently.
type Snapshot struct {
	categories []compiledCategory
	count      int
}

// compile builds a snapshot from registry contents, walking categories in
// catalogue order.
func compile(patterns map[model.Category]TierPatterns) (*Snapshot, error) {
	snap := &Snapshot{}
	for _, category := range model.Catalogue() {
		cc := compiledCategory{category: category}
		for i, tier := range model.Tiers {
			for _, p := range patterns[category][tier] {
				re, err := common.CompileFold(p)
				if err != nil {
					return nil, err
				}
				cc.tiers[i] = append(cc.tiers[i], compiledPattern{re: re, source: p})
				snap.count++
			}
		}
		snap.categories = append(snap.categories, cc)
	}
	return snap, nil
}

// FirstMatch returns the first pattern that occurs in text, scanning tiers
// high to medium to low, then categories in catalogue order, then patterns in
// insertion order. A medium hit in a later category therefore beats a low hit
// in an earlier one.
func (s *Snapshot) FirstMatch(text string) (model.CategoryMatch, bool) {
	for i, tier := range model.Tiers {
		for _, cc := range s.categories {
			for _, p := range cc.tiers[i] {
				if p.re.MatchString(text) {
					return model.CategoryMatch{
						Category:       cc.category,
						Confidence:     tier.Confidence(),
						MatchedPattern: p.source,
					}, true
				}
			}
		}
	}
	return model.Unmatched(), false
}

// Hit describes one pattern that matched during an exhaustive scan.
type Hit struct {
	Category model.Category
	Tier     model.Tier
	Pattern  string
}

// AllMatches returns every matching pattern, grouped by category in
// catalogue order and by tier within a category.
func (s *Snapshot) AllMatches(text string) []Hit {
	var hits []Hit
	for _, cc := range s.categories {
		for i, tier := range model.Tiers {
			for _, p := range cc.tiers[i] {
				if p.re.MatchString(text) {
					hits = append(hits, Hit{Category: cc.category, Tier: tier, Pattern: p.source})
				}
			}
		}
	}
	return hits
}

// Len returns the number of compiled patterns.
func (s *Snapshot) Len() int {
	return s.count
}
