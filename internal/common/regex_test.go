package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "plain word", pattern: "NETFLIX", want: "netflix"},
		{name: "already lower", pattern: `\buber\b`, want: `\buber\b`},
		{name: "word boundary keeps case", pattern: `\bUBER\b`, want: `\buber\b`},
		{name: "negated classes survive", pattern: `Posto\S+\D\W\B`, want: `posto\S+\D\W\B`},
		{name: "unicode class name", pattern: `CAFE\p{Latin}+`, want: `cafe\p{Latin}+`},
		{name: "negated single letter class", pattern: `A\PLB`, want: `a\PLb`},
		{name: "escaped backslash", pattern: `A\\B`, want: `a\\b`},
		{name: "accented letters", pattern: "AÇOUGUE", want: "açougue"},
		{name: "empty", pattern: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LowerPattern(tt.pattern))
		})
	}
}

func TestCompileFold(t *testing.T) {
	t.Run("matches ignoring case", func(t *testing.T) {
		re, err := CompileFold(`\bifood\b`)
		require.NoError(t, err)
		assert.True(t, re.MatchString("IFOOD *Restaurante"))
		assert.False(t, re.MatchString("ifoodie"))
	})

	t.Run("inline flag is accepted", func(t *testing.T) {
		re, err := CompileFold(`(?i)uber`)
		require.NoError(t, err)
		assert.Equal(t, `(?i)uber`, re.String())
		assert.True(t, re.MatchString("UBER TRIP"))
	})

	t.Run("accented letters are word characters", func(t *testing.T) {
		tests := []struct {
			pattern string
			text    string
			want    bool
		}{
			{pattern: `bar\b`, text: "Hotel Barão", want: false},
			{pattern: `bar\b`, text: "Farmácia Barão", want: false},
			{pattern: `bar\b`, text: "Bar do Zé", want: true},
			{pattern: `\bpão\b`, text: "PÃO DE AÇÚCAR", want: true},
			{pattern: `\bpão\b`, text: "pãozinho", want: false},
			{pattern: `\bsé\b`, text: "Café da Sé", want: true},
			{pattern: `açougue`, text: "AÇOUGUE BOI GORDO", want: true},
		}
		for _, tt := range tests {
			re, err := CompileFold(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.text), "%s on %q", tt.pattern, tt.text)
		}
	})

	t.Run("unanchored", func(t *testing.T) {
		re, err := CompileFold(`posto`)
		require.NoError(t, err)
		assert.True(t, re.MatchString("AUTO POSTO SHELL"))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := CompileFold(`[unclosed`)
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("blank", func(t *testing.T) {
		_, err := CompileFold("  ")
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})
}
