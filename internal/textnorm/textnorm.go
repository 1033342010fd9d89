// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm canonicalizes free text so that ingestion-time and
// query-time representations agree. Normalization is deterministic and
// pure: lower-case, NFKD decomposition with combining marks stripped,
// punctuation replaced by spaces, whitespace collapsed.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for embedding and filtering. Diacritics are
// removed while base letters are preserved ("TÍTULO" → "titulo"). Returns
// the empty string for empty input; never fails.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)
	decomposed := norm.NFKD.String(lowered)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// Combining mark left over from decomposition.
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// GenerateUsername derives a stable slug from a display name: normalized
// text with spaces replaced by dots ("Daniel Muñoz" → "daniel.munoz").
// Distinct names that normalize identically collide; accepted tradeoff.
func GenerateUsername(name string) string {
	return strings.ReplaceAll(Normalize(name), " ", ".")
}
