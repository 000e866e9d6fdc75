package classification

import (
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/pattern"
)

// Engine bundles a registry with the classifier and suggester reading from
// it. It is the single entry point used by the CLI and the HTTP API.
type Engine struct {
	*Classifier
	registry  *pattern.Registry
	suggester *pattern.Suggester
}

// NewEngine wires a classifier and suggester to registry.
func NewEngine(registry *pattern.Registry, opts ...Option) *Engine {
	return &Engine{
		Classifier: NewClassifier(registry, opts...),
		registry:   registry,
		suggester:  pattern.NewSuggester(registry),
	}
}

// Registry exposes the underlying pattern registry.
func (e *Engine) Registry() *pattern.Registry {
	return e.registry
}

// Suggest ranks plausible categories for text.
func (e *Engine) Suggest(text string) []model.CategorySuggestion {
	return e.suggester.Suggest(text)
}

// Categories returns the catalogue followed by the sentinel.
func (e *Engine) Categories() []model.Category {
	return e.registry.Categories()
}

// Patterns returns the patterns registered for category.
func (e *Engine) Patterns(category model.Category) pattern.TierPatterns {
	return e.registry.Patterns(category)
}

// AddPattern registers a new pattern; see pattern.Registry.AddPattern.
func (e *Engine) AddPattern(category model.Category, p string, tier model.Tier) (bool, error) {
	return e.registry.AddPattern(category, p, tier)
}
