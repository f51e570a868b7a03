// Package domain contains the core data model shared by the word store,
// intersection graph, sampler, placer and assembler.
package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeFR normalizes French surface forms for use as crossword grid
// letters. It strips diacritics, drops non-letters, and folds to lowercase.
//
// Examples:
//   - "Éléphant" → "elephant"
//   - "C'est-à-dire" → "cestadire"
func NormalizeFR(s string) string {
	// NFD decomposition separates base characters from combining marks,
	// e.g. "é" becomes "e" + combining acute accent.
	decomposed := norm.NFD.String(s)

	var result strings.Builder
	result.Grow(len(s))

	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) {
			result.WriteRune(unicode.ToLower(r))
		}
	}

	return result.String()
}

// NormalizeEN normalizes English surface forms the same way, minus any
// language-specific accent handling beyond the generic NFD strip (English
// corpora occasionally carry loanword diacritics, e.g. "café").
func NormalizeEN(s string) string {
	decomposed := norm.NFD.String(s)

	var result strings.Builder
	result.Grow(len(s))

	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsLetter(r) {
			result.WriteRune(unicode.ToLower(r))
		}
	}

	return result.String()
}

// Normalize normalizes a surface form for the named language code, falling
// back to the French rules (a superset of the English ones) for unknown
// codes so ad-hoc lookups never crash on them. The language pack registry
// (internal/languagepack) is responsible for rejecting a truly unsupported
// language code before any word reaches here.
func Normalize(s string, language string) string {
	switch language {
	case "en":
		return NormalizeEN(s)
	default:
		return NormalizeFR(s)
	}
}
