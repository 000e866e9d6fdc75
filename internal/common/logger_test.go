package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "info", "json")
		require.NoError(t, err)

		logger.Info("classified", "category", "Transporte")
		logger.Debug("hidden")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "classified", entry["msg"])
		assert.Equal(t, "Transporte", entry["category"])
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "debug", "console")
		require.NoError(t, err)

		logger.Debug("pattern added", "tier", "high")
		assert.Contains(t, buf.String(), "pattern added")
		assert.Contains(t, buf.String(), "tier=high")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, "info", "xml")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, "loud", "json")
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
