package correct

import (
	"fmt"

	"github.com/grammatek/GreynirCorrect/lexicon"
	"github.com/grammatek/GreynirCorrect/tokenizer"
)

// Token is the error-tagged token flowing through the correction
// pipeline and into the parser. It carries the raw token's kind and
// surface text, the meanings the lexicon assigned (empty until lexicon
// annotation, and still empty afterwards for unrecognized words), and
// at most one attached error descriptor.
//
// Once a token has been yielded downstream it is treated as immutable
// except for error attachment, which happens at most once: the first
// writer wins and later attempts are ignored.
type Token struct {
	Kind     tokenizer.TokenType
	Text     string
	Meanings []lexicon.Meaning

	err *Error
}

// FromRaw wraps a raw tokenizer token.
func FromRaw(t tokenizer.Token) *Token {
	return &Token{Kind: t.Type, Text: t.Text}
}

// Word creates a word token with the given meanings.
func Word(text string, meanings []lexicon.Meaning) *Token {
	return &Token{Kind: tokenizer.Word, Text: text, Meanings: meanings}
}

// String returns a debug representation.
func (t *Token) String() string {
	if t.err != nil {
		return fmt.Sprintf("%s(%q)!%s", t.Kind, t.Text, t.err.Code())
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// SetError attaches an error descriptor to the token. Only the first
// attachment takes effect; the return value reports whether e was
// stored.
func (t *Token) SetError(e *Error) bool {
	if t.err != nil || e == nil {
		return false
	}
	t.err = e
	return true
}

// CopyErrorFrom copies the first error found among the given tokens,
// in order, onto t. Existing errors on t are never overwritten.
// Reports whether t carries an error afterwards.
func (t *Token) CopyErrorFrom(others ...*Token) bool {
	if t.err != nil {
		return true
	}
	for _, o := range others {
		if o != nil && o.err != nil {
			t.err = o.err
			return true
		}
	}
	return false
}

// Err returns the error descriptor attached to the token, or nil.
func (t *Token) Err() *Error { return t.err }

// ErrorCode returns the attached error's code, or "".
func (t *Token) ErrorCode() string {
	if t.err == nil {
		return ""
	}
	return t.err.Code()
}

// ErrorDescription returns the attached error's description, or "".
func (t *Token) ErrorDescription() string {
	if t.err == nil {
		return ""
	}
	return t.err.Description()
}

// ErrorSpan returns the number of tokens covered by the attached
// error, or 1 when no error is attached.
func (t *Token) ErrorSpan() int {
	if t.err == nil {
		return 1
	}
	return t.err.Span()
}
