// Package lexicon maps Icelandic word forms to their morphological
// meanings: lemma, word category, and inflectional tags.
//
// The pipeline treats the lexicon as an external collaborator reached
// through the Lookup contract: an empty meanings slice signals that a
// word form is unrecognized. The embedded lexicon shipped here is a
// compact word list sufficient for the correction pipeline and its
// tests; production deployments substitute a full morphological
// database behind the same contract.
//
// The data file is embedded via //go:embed and parsed once in init();
// lookups are read-only and safe for concurrent use.
package lexicon

import (
	"bytes"
	_ "embed"
	"sort"
	"strings"

	"github.com/grammatek/GreynirCorrect/internal/iscase"
)

// Meaning is one morphological reading of a word form.
type Meaning struct {
	Lemma      string // dictionary headword, e.g. "fara" for "fór"
	Category   string // word category: so, no, lo, ao, fs, st, fn, to, gr
	Inflection string // inflectional tags, e.g. "ÞT-3P-ET"
}

//go:embed lexicon.tsv
var lexiconRaw []byte

// Parsed lexicon, populated by init(). forms is sorted for binary
// search; meanings is the parallel per-form readings slice.
var (
	forms    []string
	meanings [][]Meaning
)

func init() {
	type entry struct {
		form string
		m    Meaning
	}

	lines := bytes.Split(lexiconRaw, []byte("\n"))
	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Split(string(line), "\t")
		if len(fields) != 4 {
			continue
		}
		entries = append(entries, entry{
			form: fields[0],
			m:    Meaning{Lemma: fields[1], Category: fields[2], Inflection: fields[3]},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].form < entries[j].form })

	for _, e := range entries {
		if n := len(forms); n > 0 && forms[n-1] == e.form {
			meanings[n-1] = append(meanings[n-1], e.m)
			continue
		}
		forms = append(forms, e.form)
		meanings = append(meanings, []Meaning{e.m})
	}
}

// lookupExact returns the meanings for an exact word form, or nil.
func lookupExact(word string) []Meaning {
	i := sort.SearchStrings(forms, word)
	if i < len(forms) && forms[i] == word {
		return meanings[i]
	}
	return nil
}

// Lookup resolves a word form to its meanings. An empty meanings slice
// signals "unrecognized".
//
// atSentenceStart allows a capitalized sentence-initial word to match
// its lowercase dictionary form ("Hestur" → "hestur"). autoUppercase
// allows an all-lowercase word to match its capitalized form, for input
// sources that lose capitalization (ASR transcripts).
//
// The returned form is the form that actually matched, so callers see
// the normalized spelling alongside the meanings.
func Lookup(word string, atSentenceStart, autoUppercase bool) (string, []Meaning) {
	if word == "" {
		return word, nil
	}
	if m := lookupExact(word); m != nil {
		return word, m
	}
	if atSentenceStart && iscase.IsCapitalized(word) {
		lower := iscase.LowerFirst(word)
		if m := lookupExact(lower); m != nil {
			return lower, m
		}
	}
	if autoUppercase {
		upper := iscase.UpperFirst(word)
		if upper != word {
			if m := lookupExact(upper); m != nil {
				return upper, m
			}
		}
	}
	return word, nil
}
