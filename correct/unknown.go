package correct

import (
	"fmt"
	"strings"

	"github.com/grammatek/GreynirCorrect/dictionary"
	"github.com/grammatek/GreynirCorrect/internal/iscase"
	"github.com/grammatek/GreynirCorrect/lexicon"
)

// Lexicon resolves a word form to its meanings. An empty meanings
// slice signals "unrecognized". The returned form is the spelling that
// actually matched (a sentence-initial capitalized word may match its
// lowercase dictionary form).
type Lexicon interface {
	Lookup(word string, atSentenceStart, autoUppercase bool) (string, []lexicon.Meaning)
}

// LexiconFunc adapts a function to the Lexicon interface.
type LexiconFunc func(word string, atSentenceStart, autoUppercase bool) (string, []lexicon.Meaning)

// Lookup calls f.
func (f LexiconFunc) Lookup(word string, atSentenceStart, autoUppercase bool) (string, []lexicon.Meaning) {
	return f(word, atSentenceStart, autoUppercase)
}

// Corrector proposes a best-guess replacement for an unrecognized word
// form. It returns the input unchanged when no correction is found.
type Corrector interface {
	Correct(word string) string
}

// CorrectorFunc adapts a function to the Corrector interface.
type CorrectorFunc func(word string) string

// Correct calls f.
func (f CorrectorFunc) Correct(word string) string { return f(word) }

// Annotate is the lexicon annotation step between the two correction
// phases: every word token is looked up and receives its meanings.
// Unrecognized words flow through with empty meanings for the
// resolution phase to handle. The sentence-initial flag is passed for
// the first word token of the sentence.
func Annotate(src Stream, lex Lexicon, autoUppercase bool) Stream {
	return &annotatePhase{src: src, lex: lex, autoUppercase: autoUppercase, atStart: true}
}

type annotatePhase struct {
	src           Stream
	lex           Lexicon
	autoUppercase bool
	atStart       bool
}

func (p *annotatePhase) Next() (*Token, bool) {
	t, ok := p.src.Next()
	if !ok {
		return nil, false
	}
	if isWord(t) {
		if len(t.Meanings) == 0 {
			form, m := p.lex.Lookup(t.Text, p.atStart, p.autoUppercase)
			if len(m) > 0 {
				t.Meanings = m
				// Keep the surface text; a sentence-initial match
				// against the lowercase form is not a correction.
				// Under autoUppercase the capitalized form is.
				if p.autoUppercase {
					t.Text = form
				}
			}
		}
		p.atStart = false
	}
	return t, true
}

// ResolveUnknown is the unknown-word resolution phase. For every word
// token the lexicon left unannotated it attempts correction, stopping
// at the first success:
//
//  1. Unique-error dictionary (S001): fixed replacement sequence. The
//     word is looked up lowercased only; the input's case pattern is
//     restored on the first replacement word.
//  2. Malformed-form dictionary (S003): single corrected word form.
//     Looked up exact first, then lowercased with case restoration, so
//     case-sensitive error forms can coexist with general ones.
//  3. Spelling corrector (S002): best-guess single-word replacement.
//
// When none apply, the token passes through unchanged carrying an
// UnknownWord error (U001): marked, never corrected.
//
// Replacement words are looked up against the lexicon independently;
// words that stay unrecognized still flow downstream with empty
// meanings. Only the first token of a multi-word expansion carries the
// spelling error, with a span covering the whole expansion, so error
// counts are not inflated.
func ResolveUnknown(src Stream, dicts *dictionary.Dictionaries, lex Lexicon, corr Corrector, autoUppercase bool) Stream {
	return &resolvePhase{
		src:           src,
		dicts:         dicts,
		lex:           lex,
		corr:          corr,
		autoUppercase: autoUppercase,
		atStart:       true,
	}
}

type resolvePhase struct {
	src           Stream
	dicts         *dictionary.Dictionaries
	lex           Lexicon
	corr          Corrector
	autoUppercase bool
	atStart       bool
	pending       []*Token
}

func (p *resolvePhase) Next() (*Token, bool) {
	if len(p.pending) > 0 {
		t := p.pending[0]
		p.pending = p.pending[1:]
		return t, true
	}

	t, ok := p.src.Next()
	if !ok {
		return nil, false
	}

	if !isWord(t) {
		return t, true
	}
	atStart := p.atStart
	p.atStart = false

	if len(t.Meanings) > 0 {
		return t, true
	}

	corrected, code := p.correction(t.Text)
	if len(corrected) == 0 {
		// Not able to correct: mark the token as an unknown word.
		t.SetError(UnknownWordError("001", fmt.Sprintf("Óþekkt orð: '%s'", t.Text)))
		return t, true
	}

	out := make([]*Token, len(corrected))
	for i, word := range corrected {
		form, m := p.lex.Lookup(word, atStart && i == 0, p.autoUppercase)
		if !p.autoUppercase {
			form = word
		}
		ct := Word(form, m)
		if i == 0 {
			// An error inherited from an earlier phase takes
			// precedence; otherwise record the correction.
			ct.CopyErrorFrom(t)
			ct.SetError(SpellingError(
				code,
				fmt.Sprintf("Orðið '%s' var leiðrétt í '%s'", t.Text, strings.Join(corrected, " ")),
				len(corrected),
			))
		}
		out[i] = ct
	}
	p.pending = out[1:]
	return out[0], true
}

// correction consults the dictionaries and the corrector in priority
// order. Returns the replacement words and the spelling sub-code, or
// nil when no correction was found.
func (p *resolvePhase) correction(text string) (replacement []string, code string) {
	lower := iscase.ToLower(text)

	if repl, ok := p.dicts.UniqueError(lower); ok {
		out := make([]string, len(repl))
		copy(out, repl)
		out[0] = iscase.ApplyCase(text, out[0])
		return out, "001"
	}

	if form, ok := p.dicts.ErrorForm(text); ok {
		return []string{form}, "003"
	}
	if form, ok := p.dicts.ErrorForm(lower); ok {
		return []string{iscase.ApplyCase(text, form)}, "003"
	}

	if c := p.corr.Correct(text); c != text {
		return []string{c}, "002"
	}

	return nil, ""
}
