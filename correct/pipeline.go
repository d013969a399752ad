// Package correct implements the error-correcting token pipeline for
// Icelandic text. A sentence flows through three stages:
//
//   - token correction: duplicated words, wrongly compounded words and
//     wrongly split compounds are fixed from static dictionaries
//   - lexicon annotation: every word token is looked up and tagged with
//     its meanings
//   - unknown-word resolution: unrecognized words are corrected via the
//     unique-error dictionary, the malformed-form dictionary or the
//     spelling corrector, or flagged as unknown
//
// Corrections are applied to the token stream itself; each applied
// correction (and each word left unknown) attaches an error descriptor
// to the first token it concerns. Descriptors carry stable
// category-prefixed codes (C001, S002, U001, ...) that downstream
// annotation tooling aggregates on.
//
// Known limitations:
//
//   - Correction dictionaries are consulted per token (or token pair);
//     no wider context is used, so a real-word error that happens to
//     match a dictionary pattern is still rewritten.
//   - The spelling corrector proposes at most one replacement word;
//     multi-word suggestions come only from the unique-error dictionary.
package correct

import (
	"github.com/grammatek/GreynirCorrect/dictionary"
	"github.com/grammatek/GreynirCorrect/lexicon"
	"github.com/grammatek/GreynirCorrect/spell"
	"github.com/grammatek/GreynirCorrect/tokenizer"
)

// Pipeline bundles the resources the correction phases consult. The
// zero value is not usable; call NewPipeline, or fill every field.
// A Pipeline is stateless across sentences and safe for concurrent use
// as long as its components are.
type Pipeline struct {
	Dicts *dictionary.Dictionaries
	Lex   Lexicon
	Corr  Corrector

	// AutoUppercase also tries the capitalized form of lowercase
	// words on lexicon lookup, for text known to be all-lowercase
	// (ASR output and the like).
	AutoUppercase bool
}

// NewPipeline returns a pipeline with the built-in dictionaries, the
// embedded lexicon and the SymSpell-based spelling corrector.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Dicts: dictionary.Default(),
		Lex:   LexiconFunc(lexicon.Lookup),
		Corr:  CorrectorFunc(spell.Correct),
	}
}

// Tokens runs the full correction pipeline over a pre-tokenized
// sentence and returns the corrected, annotated token sequence.
func (p *Pipeline) Tokens(toks []*Token) []*Token {
	s := NewStream(toks)
	s = FixCompounds(s, p.Dicts)
	s = Annotate(s, p.Lex, p.AutoUppercase)
	s = ResolveUnknown(s, p.Dicts, p.Lex, p.Corr, p.AutoUppercase)
	return Collect(s)
}

// Sentence tokenizes a single sentence of raw text and runs it through
// the pipeline. Whitespace tokens are dropped; punctuation and symbol
// tokens flow through untouched.
func (p *Pipeline) Sentence(text string) []*Token {
	raw := tokenizer.WordTokens(tokenizer.Normalize(text))
	toks := make([]*Token, 0, len(raw))
	for _, rt := range raw {
		if rt.Type == tokenizer.Space {
			continue
		}
		toks = append(toks, FromRaw(rt))
	}
	return p.Tokens(toks)
}

// Text reassembles the corrected sentence text from a token sequence,
// joining tokens with single spaces except before closing punctuation.
func Text(toks []*Token) string {
	var b []byte
	for i, t := range toks {
		if i > 0 && !noSpaceBefore(t) {
			b = append(b, ' ')
		}
		b = append(b, t.Text...)
	}
	return string(b)
}

func noSpaceBefore(t *Token) bool {
	if t.Kind != tokenizer.Punctuation {
		return false
	}
	switch t.Text {
	case ".", ",", ":", ";", "!", "?", ")", "]", "}":
		return true
	}
	return false
}
