package correct

import (
	"fmt"
	"strings"

	"github.com/grammatek/GreynirCorrect/dictionary"
	"github.com/grammatek/GreynirCorrect/internal/iscase"
	"github.com/grammatek/GreynirCorrect/tokenizer"
)

// FixCompounds is the token correction phase. It rewrites the incoming
// stream with one token of lookahead, fixing duplication and
// compound-word segmentation errors before lexicon annotation:
//
//  1. Duplicated word removed (C001): two case-insensitively equal word
//     tokens in a row collapse into one, unless the word is in the
//     allowed-multiples set.
//  2. Wrongly compounded word split up (C002): a word in the
//     wrong-compound dictionary is replaced by its split form, each
//     part tagged.
//  3. Wrongly split compound united (C003): a word pair in the
//     split-compound set is merged into one token.
//
// The first matching rule wins; at most one rule applies per step. The
// phase never consults the lexicon and reads nothing but the
// dictionaries. Running it again on its own output is a no-op once no
// patterns remain.
func FixCompounds(src Stream, dicts *dictionary.Dictionaries) Stream {
	return &compoundPhase{src: src, dicts: dicts}
}

type compoundPhase struct {
	src   Stream
	dicts *dictionary.Dictionaries

	cur     *Token   // lookahead buffer; nil after exhaustion
	pending []*Token // queued split parts not yet emitted
	primed  bool
}

func (p *compoundPhase) Next() (*Token, bool) {
	if len(p.pending) > 0 {
		t := p.pending[0]
		p.pending = p.pending[1:]
		return t, true
	}

	if !p.primed {
		p.cur, _ = p.src.Next()
		p.primed = true
	}

	for {
		if p.cur == nil {
			return nil, false
		}

		next, ok := p.src.Next()
		if !ok {
			// Stream exhausted: the final buffered token can still be
			// a wrongly compounded word.
			out := p.cur
			p.cur = nil
			if parts, split := p.splitWrongCompound(out); split {
				p.pending = parts[1:]
				return parts[0], true
			}
			return out, true
		}

		// Rule 1: duplicated word.
		if isWord(p.cur) && isWord(next) &&
			strings.EqualFold(p.cur.Text, next.Text) &&
			!p.dicts.AllowedMultiple(iscase.ToLower(p.cur.Text)) {
			merged := Word(p.cur.Text, nil)
			merged.SetError(CompoundError(
				"001",
				fmt.Sprintf("Endurtekið orð ('%s') var fellt burt", p.cur.Text),
				1,
			))
			// The merged token may itself duplicate the following one;
			// keep it buffered and pull a fresh lookahead.
			p.cur = merged
			continue
		}

		// Rule 2: wrongly compounded word, split it up.
		if parts, split := p.splitWrongCompound(p.cur); split {
			p.pending = parts[1:]
			p.cur = next
			return parts[0], true
		}

		// Rule 3: wrongly split compound, unite the pair.
		if isWord(p.cur) && isWord(next) &&
			p.dicts.SplitCompound(iscase.ToLower(p.cur.Text), iscase.ToLower(next.Text)) {
			united := Word(p.cur.Text+next.Text, nil)
			united.SetError(CompoundError(
				"003",
				fmt.Sprintf("Orðin '%s %s' voru sameinuð í eitt", p.cur.Text, next.Text),
				1,
			))
			p.cur = united
			continue
		}

		// No rule matched: emit the current token, advance the lookahead.
		out := p.cur
		p.cur = next
		return out, true
	}
}

// splitWrongCompound returns the tagged split parts of a wrongly
// compounded word token, or ok=false when the token is not in the
// wrong-compound dictionary.
func (p *compoundPhase) splitWrongCompound(t *Token) (parts []*Token, ok bool) {
	if !isWord(t) {
		return nil, false
	}
	split, ok := p.dicts.WrongCompound(iscase.ToLower(t.Text))
	if !ok {
		return nil, false
	}
	parts = make([]*Token, len(split))
	for i, part := range split {
		if i == 0 {
			part = iscase.ApplyCase(t.Text, part)
		}
		parts[i] = Word(part, nil)
		parts[i].SetError(CompoundError(
			"002",
			fmt.Sprintf("Orðinu '%s' var skipt upp", t.Text),
			1,
		))
	}
	return parts, true
}

func isWord(t *Token) bool {
	return t != nil && t.Kind == tokenizer.Word && t.Text != ""
}
