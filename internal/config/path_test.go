package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("GASTX_TEST_DIR", "/tmp/gastx")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/statements/jan.csv", want: filepath.Join(home, "statements/jan.csv")},
		{input: "$GASTX_TEST_DIR/config.yaml", want: "/tmp/gastx/config.yaml"},
		{input: "/absolute/path", want: "/absolute/path"},
		{input: "~other/path", want: "~other/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestDefaultDir(t *testing.T) {
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, "gastx", filepath.Base(dir))
}
