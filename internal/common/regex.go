package common

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single match so a pathological pattern cannot stall
// a classification.
const matchTimeout = 250 * time.Millisecond

// Pattern is a compiled case-insensitive matcher. Word classes and \b
// boundaries are Unicode-aware, so accented letters count as word characters.
type Pattern struct {
	re *regexp2.Regexp
}

// CompileFold compiles pattern as a case-insensitive, unanchored matcher.
func CompileFold(pattern string) (*Pattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	re.MatchTimeout = matchTimeout
	return &Pattern{re: re}, nil
}

// MatchString reports whether the pattern occurs anywhere in text. A match
// that times out counts as no match.
func (p *Pattern) MatchString(text string) bool {
	ok, err := p.re.MatchString(text)
	if err != nil {
		slog.Warn("Pattern match aborted", "pattern", p.re.String(), "error", err)
		return false
	}
	return ok
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.re.String()
}

// NormalizePattern returns the stored form of a user-supplied pattern:
// surrounding space trimmed and literal text lowercased.
func NormalizePattern(pattern string) string {
	return LowerPattern(strings.TrimSpace(pattern))
}

// LowerPattern lowercases a regular expression without changing its meaning:
// the letter after a backslash keeps its case, so \S, \D, \W and \B stay
// negated classes, and \p{..}/\P{..} class names are left untouched.
func LowerPattern(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	escaped := false
	afterClass := false
	inClassName := false
	for _, r := range pattern {
		switch {
		case inClassName:
			b.WriteRune(r)
			if r == '}' {
				inClassName = false
			}
		case afterClass:
			// \pL or \p{Greek}
			b.WriteRune(r)
			afterClass = false
			inClassName = r == '{'
		case escaped:
			b.WriteRune(r)
			escaped = false
			afterClass = r == 'p' || r == 'P'
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		default:
			b.WriteString(strings.ToLower(string(r)))
		}
	}
	return b.String()
}
