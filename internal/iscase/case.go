// Package iscase provides case helpers for Icelandic text.
//
// Icelandic uses standard Unicode one-to-one case mapping (á/Á, ð/Ð, þ/Þ,
// æ/Æ, ö/Ö and so on), so the conversions here delegate to the unicode
// tables. The package exists for the pattern-level operations the
// correction pipeline needs: detecting capitalization, transferring the
// case pattern of a misspelled word onto its replacement, and folding
// words for case-insensitive dictionary lookups.
//
// All functions are safe for concurrent use.
package iscase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToLower returns s lowercased.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// UpperFirst returns s with its first rune uppercased.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 || unicode.IsUpper(r) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(s[size:])
	return b.String()
}

// LowerFirst returns s with its first rune lowercased.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 || unicode.IsLower(r) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToLower(r))
	b.WriteString(s[size:])
	return b.String()
}

// IsCapitalized reports whether s starts with an uppercase letter
// followed by at least one lowercase letter, i.e. title-case as opposed
// to an all-caps acronym.
func IsCapitalized(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return false
	}
	rest := s[size:]
	if rest == "" {
		return false
	}
	for _, c := range rest {
		if unicode.IsLetter(c) && !unicode.IsUpper(c) {
			return true
		}
	}
	return false
}

// IsAllUpper reports whether every letter in s is uppercase.
// Returns false for strings containing no letters.
func IsAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// ApplyCase transfers the case pattern of original onto corrected.
// Three patterns are recognized: all-upper, first-rune-upper, and
// lowercase (the replacement is returned unchanged).
func ApplyCase(original, corrected string) string {
	if original == "" || corrected == "" {
		return corrected
	}
	if IsAllUpper(original) {
		return strings.ToUpper(corrected)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		return UpperFirst(corrected)
	}
	return corrected
}
