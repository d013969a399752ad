// Package dictionary holds the static correction dictionaries consulted
// by the error-correcting token pipeline, and the table of impersonal
// verbs known to occur with an erroneous subject case.
//
// Five correction mappings are provided:
//
//   - AllowedMultiple: words that may legitimately appear twice in a row
//     ("Barið barið sem barn…"), exempt from duplicate removal.
//   - WrongCompound: erroneously compounded words and their split forms
//     ("afhverju" → "af hverju").
//   - SplitCompound: word pairs that should be united into one compound
//     ("mennta skóli" → "menntaskóli").
//   - UniqueError: unambiguous single-word errors with fixed replacements,
//     possibly multi-word ("þessháttar" → "þess háttar").
//   - ErrorForm: malformed word forms and their corrected spellings
//     ("mikkið" → "mikið").
//
// The data is embedded via //go:embed and parsed once in init(), making
// the default set read-only and safe for concurrent use by any number of
// pipeline instances. Malformed entries are skipped with a diagnostic
// log line rather than aborting the load.
package dictionary

import (
	_ "embed"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed corrections.yaml
var correctionsRaw []byte

// subjectCases is the closed set of Icelandic case abbreviations used in
// the verb-subject table: nominative, accusative, dative, genitive.
var subjectCases = map[string]bool{"nf": true, "þf": true, "þgf": true, "ef": true}

// pair is a lowercase (first, second) word pair key for SplitCompound.
type pair struct {
	first, second string
}

// Dictionaries is an immutable set of correction mappings.
// The zero value is empty; construct with Load or use Default.
type Dictionaries struct {
	allowedMultiples map[string]struct{}
	wrongCompounds   map[string][]string
	splitCompounds   map[pair]struct{}
	uniqueErrors     map[string][]string
	errorForms       map[string]string
	verbSubjects     map[string]map[string]string
}

// fileFormat mirrors the YAML layout of corrections.yaml.
type fileFormat struct {
	AllowedMultiples []string                     `yaml:"allowed_multiples"`
	WrongCompounds   map[string][]string          `yaml:"wrong_compounds"`
	SplitCompounds   [][]string                   `yaml:"split_compounds"`
	UniqueErrors     map[string][]string          `yaml:"unique_errors"`
	ErrorForms       map[string]string            `yaml:"error_forms"`
	VerbSubjects     map[string]map[string]string `yaml:"verb_subject_errors"`
}

var defaultDicts *Dictionaries

func init() {
	d, err := parse(correctionsRaw)
	if err != nil {
		// Degrade to empty dictionaries; the pipeline still runs,
		// it just corrects nothing.
		log.Error().Err(err).Msg("dictionary: embedded corrections.yaml unreadable")
		d = newEmpty()
	}
	defaultDicts = d
}

// Default returns the process-wide dictionary set parsed from the
// embedded data file. The returned value is shared and read-only.
func Default() *Dictionaries {
	return defaultDicts
}

// Load parses a dictionary set from r, in the same YAML format as the
// embedded corrections.yaml. Malformed entries are skipped with a
// diagnostic; only an unreadable document is an error.
func Load(r io.Reader) (*Dictionaries, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

func newEmpty() *Dictionaries {
	return &Dictionaries{
		allowedMultiples: map[string]struct{}{},
		wrongCompounds:   map[string][]string{},
		splitCompounds:   map[pair]struct{}{},
		uniqueErrors:     map[string][]string{},
		errorForms:       map[string]string{},
		verbSubjects:     map[string]map[string]string{},
	}
}

func parse(raw []byte) (*Dictionaries, error) {
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	d := newEmpty()

	for _, w := range f.AllowedMultiples {
		if w == "" {
			log.Warn().Msg("dictionary: empty allowed_multiples entry skipped")
			continue
		}
		d.allowedMultiples[w] = struct{}{}
	}

	for word, split := range f.WrongCompounds {
		if word == "" || len(split) < 2 || hasEmpty(split) {
			log.Warn().Str("word", word).Msg("dictionary: invalid wrong_compounds entry skipped")
			continue
		}
		d.wrongCompounds[word] = split
	}

	for _, p := range f.SplitCompounds {
		if len(p) != 2 || p[0] == "" || p[1] == "" {
			log.Warn().Strs("pair", p).Msg("dictionary: invalid split_compounds entry skipped")
			continue
		}
		d.splitCompounds[pair{p[0], p[1]}] = struct{}{}
	}

	for word, repl := range f.UniqueErrors {
		if word == "" || len(repl) == 0 || hasEmpty(repl) {
			log.Warn().Str("word", word).Msg("dictionary: invalid unique_errors entry skipped")
			continue
		}
		d.uniqueErrors[word] = repl
	}

	for word, corrected := range f.ErrorForms {
		if word == "" || corrected == "" {
			log.Warn().Str("word", word).Msg("dictionary: invalid error_forms entry skipped")
			continue
		}
		d.errorForms[word] = corrected
	}

	for verb, cases := range f.VerbSubjects {
		if verb == "" {
			log.Warn().Msg("dictionary: empty verb_subject_errors entry skipped")
			continue
		}
		valid := make(map[string]string, len(cases))
		for wrong, correct := range cases {
			if !subjectCases[wrong] || !subjectCases[correct] {
				log.Warn().Str("verb", verb).Str("wrong", wrong).Str("correct", correct).
					Msg("dictionary: unknown subject case skipped")
				continue
			}
			valid[wrong] = correct
		}
		if len(valid) > 0 {
			d.verbSubjects[verb] = valid
		}
	}

	return d, nil
}

func hasEmpty(words []string) bool {
	for _, w := range words {
		if w == "" {
			return true
		}
	}
	return false
}

// AllowedMultiple reports whether word (lowercase) may legitimately be
// repeated, exempting it from duplicate-word removal.
func (d *Dictionaries) AllowedMultiple(word string) bool {
	_, ok := d.allowedMultiples[word]
	return ok
}

// WrongCompound returns the split form of an erroneously compounded word
// (lowercase), or ok=false if the word is not in the mapping.
func (d *Dictionaries) WrongCompound(word string) (split []string, ok bool) {
	split, ok = d.wrongCompounds[word]
	return split, ok
}

// SplitCompound reports whether the lowercase word pair (first, second)
// should be united into a single compound.
func (d *Dictionaries) SplitCompound(first, second string) bool {
	_, ok := d.splitCompounds[pair{first, second}]
	return ok
}

// UniqueError returns the fixed replacement word sequence for an
// unambiguous error word (lowercase), or ok=false.
func (d *Dictionaries) UniqueError(word string) (replacement []string, ok bool) {
	replacement, ok = d.uniqueErrors[word]
	return replacement, ok
}

// ErrorForm returns the corrected spelling of a malformed word form
// (lowercase), or ok=false.
func (d *Dictionaries) ErrorForm(word string) (corrected string, ok bool) {
	corrected, ok = d.errorForms[word]
	return corrected, ok
}

// VerbErrorSubject returns the correct subject case for a verb that is
// known to occur erroneously with the given subject case. ok=false means
// the verb/case combination is not a known error pattern.
func (d *Dictionaries) VerbErrorSubject(verb, wrongCase string) (correctCase string, ok bool) {
	cases, found := d.verbSubjects[verb]
	if !found {
		return "", false
	}
	correctCase, ok = cases[wrongCase]
	return correctCase, ok
}
