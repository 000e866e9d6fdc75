package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/pattern"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, DefaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Positive(t, cfg.Workers)
	assert.Empty(t, cfg.Patterns)
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(newViper(t, `
logging:
  level: DEBUG
  format: json
server:
  address: 127.0.0.1:9000
  allowed_origins:
    - https://gastx.example
  max_upload_bytes: 2048
classify:
  workers: 2
patterns:
  extra:
    - category: Alimentação
      tier: high
      pattern: marmitaria
    - category: Transporte
      tier: Medium
      pattern: bicicletar
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, []string{"https://gastx.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(2048), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []ExtraPattern{
		{Category: "Alimentação", Tier: "high", Pattern: "marmitaria"},
		{Category: "Transporte", Tier: "Medium", Pattern: "bicicletar"},
	}, cfg.Patterns)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		yaml    string
	}{
		{
			name:    "bad log level",
			yaml:    "logging:\n  level: loud\n",
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "bad log format",
			yaml:    "logging:\n  format: xml\n",
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "empty address",
			yaml:    "server:\n  address: \"\"\n",
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "zero workers",
			yaml:    "classify:\n  workers: 0\n",
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "unknown category",
			yaml:    "patterns:\n  extra:\n    - {category: Viagens, tier: high, pattern: hotel}\n",
			wantErr: common.ErrUnknownCategory,
		},
		{
			name:    "sentinel category",
			yaml:    "patterns:\n  extra:\n    - {category: Outros, tier: high, pattern: hotel}\n",
			wantErr: common.ErrUnknownCategory,
		},
		{
			name:    "pattern invalid only once lowercased",
			yaml:    "patterns:\n  extra:\n    - {category: Casa, tier: high, pattern: \"[Z-a]\"}\n",
			wantErr: common.ErrInvalidPattern,
		},
		{
			name:    "blank pattern",
			yaml:    "patterns:\n  extra:\n    - {category: Casa, tier: high, pattern: \"   \"}\n",
			wantErr: common.ErrInvalidPattern,
		},
		{
			name:    "bad tier",
			yaml:    "patterns:\n  extra:\n    - {category: Casa, tier: urgent, pattern: aluguel}\n",
			wantErr: common.ErrInvalidTier,
		},
		{
			name:    "bad pattern",
			yaml:    "patterns:\n  extra:\n    - {category: Casa, tier: high, pattern: \"(aluguel\"}\n",
			wantErr: common.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(newViper(t, tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_ApplyPatterns(t *testing.T) {
	registry, err := pattern.NewRegistry(map[model.Category]pattern.TierPatterns{
		model.CategoryFood: {model.TierMedium: {"pizzaria"}},
	})
	require.NoError(t, err)

	cfg := &Config{Patterns: []ExtraPattern{
		{Category: "Alimentação", Tier: "high", Pattern: "marmitaria"},
		{Category: "Alimentação", Tier: "medium", Pattern: "PIZZARIA"},
	}}

	added, err := cfg.ApplyPatterns(registry)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	match, ok := registry.Snapshot().FirstMatch("Marmitaria da Vila")
	require.True(t, ok)
	assert.Equal(t, model.CategoryFood, match.Category)
	assert.Equal(t, model.ConfidenceHigh, match.Confidence)
}

func TestConfig_ApplyPatterns_RejectsSentinel(t *testing.T) {
	registry := pattern.NewDefaultRegistry()
	before := registry.PatternCount()

	cfg := &Config{Patterns: []ExtraPattern{
		{Category: "Outros", Tier: "high", Pattern: "hotel"},
	}}

	added, err := cfg.ApplyPatterns(registry)
	require.ErrorIs(t, err, common.ErrUnknownCategory)
	assert.Zero(t, added)
	assert.Equal(t, before, registry.PatternCount())
}
