package checker

import (
	"errors"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/grammatek/GreynirCorrect/correct"
	"github.com/grammatek/GreynirCorrect/dictionary"
	"github.com/grammatek/GreynirCorrect/parse"
	"github.com/grammatek/GreynirCorrect/tokenizer"
)

// Sentence is one checked sentence: its corrected token sequence, the
// parse tree when one was found, and the ordered annotation list.
type Sentence struct {
	Tokens      []*correct.Token
	Tree        *parse.Tree
	Annotations []Annotation
}

// Text returns the corrected sentence text.
func (s *Sentence) Text() string { return correct.Text(s.Tokens) }

// Parsed reports whether the sentence has a parse tree.
func (s *Sentence) Parsed() bool { return s.Tree != nil }

// Stats aggregates per-run counts.
type Stats struct {
	Sentences int
	Parsed    int
	Tokens    int
}

// Result is the outcome of checking a text: paragraphs of checked
// sentences plus run statistics.
type Result struct {
	Paragraphs [][]*Sentence
	Stats      Stats
}

// Sentences returns all sentences across paragraphs in order.
func (r *Result) Sentences() []*Sentence {
	var out []*Sentence
	for _, p := range r.Paragraphs {
		out = append(out, p...)
	}
	return out
}

// Checker ties the correction pipeline to the parsing engine and the
// annotation assembler. The zero value is not usable; call NewChecker.
// A Checker is safe for concurrent use.
type Checker struct {
	pipeline *correct.Pipeline
	dicts    *dictionary.Dictionaries
	ctx      *parse.Context
}

// NewChecker returns a checker using the default correction pipeline.
// ctx supplies the parsing engine and may be nil, in which case every
// sentence is treated as unparsed and receives the whole-sentence
// fallback annotation.
func NewChecker(ctx *parse.Context) *Checker {
	return &Checker{
		pipeline: correct.NewPipeline(),
		dicts:    dictionary.Default(),
		ctx:      ctx,
	}
}

// Annotate assembles the ordered annotation list for one sentence.
// Token-level errors come first, in input order, each spanning
// [index, index+span-1]. An unparsed sentence (tree == nil) then gets
// exactly one whole-sentence E001 annotation and no tree walk;
// otherwise the grammar error finder contributes its findings. The
// final order is a stable sort by start ascending, end descending, so
// wider annotations precede narrower ones starting at the same token.
func (c *Checker) Annotate(tokens []*correct.Token, tree *parse.Tree) []Annotation {
	var ann []Annotation

	for ix, t := range tokens {
		if t.Err() == nil {
			continue
		}
		ann = append(ann, Annotation{
			Start: ix,
			End:   ix + t.ErrorSpan() - 1,
			Code:  t.ErrorCode(),
			Text:  t.ErrorDescription(),
		})
	}

	if tree == nil {
		if len(tokens) > 0 {
			ann = append(ann, Annotation{
				Start: 0,
				End:   len(tokens) - 1,
				Code:  "E001",
				Text:  "Málsgreinin fellur ekki að reglum",
			})
		}
	} else {
		ann = append(ann, findGrammarErrors(tree, tokens, c.dicts)...)
	}

	sort.SliceStable(ann, func(i, j int) bool {
		if ann[i].Start != ann[j].Start {
			return ann[i].Start < ann[j].Start
		}
		return ann[i].End > ann[j].End
	})
	return ann
}

// CheckSentence corrects, parses and annotates a single sentence given
// in plain text.
func (c *Checker) CheckSentence(text string) *Sentence {
	toks := c.pipeline.Sentence(text)
	tree := c.parseTree(toks)
	return &Sentence{
		Tokens:      toks,
		Tree:        tree,
		Annotations: c.Annotate(toks, tree),
	}
}

// parseTree runs the shared engine over the token sequence. Any
// failure to produce a deep tree, including an unconfigured engine,
// yields nil: the sentence is then annotated as unparsable rather than
// aborting the run.
func (c *Checker) parseTree(tokens []*correct.Token) *parse.Tree {
	if c.ctx == nil || len(tokens) == 0 {
		return nil
	}
	eng, err := c.ctx.Get()
	if err != nil {
		log.Error().Err(err).Msg("parsing engine unavailable")
		return nil
	}
	tree, err := eng.Parse(tokens)
	if err != nil {
		if !errors.Is(err, parse.ErrNoParse) {
			log.Warn().Err(err).Msg("parse failed")
		}
		return nil
	}
	deep, err := eng.Reduce(tree)
	if err != nil {
		log.Warn().Err(err).Msg("reduction failed")
		return nil
	}
	return deep
}

// Check runs the full pipeline over plain text: the text is split into
// paragraphs and sentences, and each sentence is corrected, parsed and
// annotated.
func (c *Checker) Check(text string) *Result {
	res := &Result{}
	for _, para := range tokenizer.Paragraphs(text) {
		var checked []*Sentence
		for _, sent := range tokenizer.Sentences(para) {
			s := c.CheckSentence(sent)
			checked = append(checked, s)
			res.Stats.Sentences++
			res.Stats.Tokens += len(s.Tokens)
			if s.Parsed() {
				res.Stats.Parsed++
			}
		}
		if len(checked) > 0 {
			res.Paragraphs = append(res.Paragraphs, checked)
		}
	}
	return res
}
