// Package classification turns transaction descriptions into categories
// using the tiered pattern registry.
package classification

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/pattern"
)

// Classifier assigns the first matching category to a description.
type Classifier struct {
	source  pattern.SnapshotSource
	workers int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithWorkers bounds the number of goroutines used by ClassifyBatch.
func WithWorkers(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.workers = n
		}
	}
}

// NewClassifier creates a classifier reading patterns from source.
func NewClassifier(source pattern.SnapshotSource, opts ...Option) *Classifier {
	c := &Classifier{
		source:  source,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the category of text. Blank text and text no pattern
// matches both yield the sentinel with no confidence.
func (c *Classifier) Classify(text string) model.CategoryMatch {
	if strings.TrimSpace(text) == "" {
		return model.Unmatched()
	}
	return classifyWith(c.source.Snapshot(), text)
}

// ClassifySimple returns only the category of text.
func (c *Classifier) ClassifySimple(text string) model.Category {
	return c.Classify(text).Category
}

// ClassifyBatch classifies texts in parallel. The result has the same length
// and order as texts. The only possible error is ctx being done.
func (c *Classifier) ClassifyBatch(ctx context.Context, texts []string) ([]model.CategoryMatch, error) {
	results := make([]model.CategoryMatch, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	// One snapshot for the whole batch keeps every item on the same patterns.
	snap := c.source.Snapshot()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = classifyWith(snap, text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func classifyWith(snap *pattern.Snapshot, text string) model.CategoryMatch {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Unmatched()
	}
	match, _ := snap.FirstMatch(trimmed)
	return match
}
