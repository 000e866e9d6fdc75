package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/gastx/internal/classification"
	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/config"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/pattern"
)

// newEngine builds the classification engine from the built-in patterns
// plus any patterns.extra entries in cfg.
func newEngine(cfg *config.Config) (*classification.Engine, error) {
	registry := pattern.NewDefaultRegistry()

	var opts []classification.Option
	if cfg != nil {
		added, err := cfg.ApplyPatterns(registry)
		if err != nil {
			return nil, common.NewUserError("invalid patterns.extra entry", err)
		}
		if added > 0 {
			slog.Debug("Registered extra patterns", "count", added)
		}
		opts = append(opts, classification.WithWorkers(cfg.Workers))
	}

	return classification.NewEngine(registry, opts...), nil
}

func parseCategoryArg(name string) (model.Category, error) {
	category, ok := model.ParseCategory(strings.TrimSpace(name))
	if !ok {
		return "", common.NewUserError(
			fmt.Sprintf("unknown category %q (run 'gastx categories' to list them)", name),
			common.ErrUnknownCategory,
		)
	}
	return category, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
