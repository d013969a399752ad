// Package spell proposes best-guess replacements for unrecognized
// Icelandic word forms, using the SymSpell (symmetric delete) algorithm
// over an embedded word-frequency list.
//
// The package provides three functions:
//
//   - IsKnown reports whether a word form is in the frequency list.
//   - Suggest returns ranked correction candidates for a word.
//   - Correct returns the single best replacement, or the input itself
//     when no candidate is found. Callers detect "no correction found"
//     by comparing the result against the input.
//
// Candidates are ranked by edit distance ascending, then corpus
// frequency descending. The case pattern of the input (capitalized,
// all-upper) is transferred onto the replacement.
//
// The frequency list is embedded via //go:embed and indexed in init(),
// making the API stateless and safe for concurrent use by multiple
// goroutines.
package spell

import (
	"unicode"
	"unicode/utf8"

	"github.com/grammatek/GreynirCorrect/internal/iscase"
)

// Suggestion represents a spelling correction candidate.
type Suggestion struct {
	Term      string // corrected word
	Distance  int    // edit distance from input
	Frequency int64  // corpus frequency (higher = more common)
}

// IsKnown reports whether word is in the frequency list
// (case-insensitively).
func IsKnown(word string) bool {
	_, ok := words[iscase.ToLower(word)]
	return ok
}

// Suggest returns spelling correction candidates for word, sorted by
// edit distance ascending then frequency descending. Returns nil for
// empty, oversized, digit-containing, or too-short input. maxDist is
// clamped to the precomputed maximum.
func Suggest(word string, maxDist int) []Suggestion {
	if word == "" || len(word) > maxWordBytes {
		return nil
	}
	if utf8.RuneCountInString(word) < minWordRunes {
		return nil
	}
	for _, r := range word {
		if unicode.IsDigit(r) {
			// Identifiers and codes are not natural-language misspellings.
			return nil
		}
	}

	results := lookup(iscase.ToLower(word), maxDist)
	for i := range results {
		results[i].Term = iscase.ApplyCase(word, results[i].Term)
	}
	return results
}

// Correct returns the best replacement for word, or word unchanged when
// the word is already known or no candidate exists. The replacement
// carries the case pattern of the input.
func Correct(word string) string {
	if word == "" || IsKnown(word) {
		return word
	}
	suggestions := Suggest(word, maxEditDistance)
	if len(suggestions) == 0 {
		return word
	}
	return suggestions[0].Term
}
