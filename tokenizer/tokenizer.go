// Package tokenizer splits Icelandic text into paragraphs, sentences, and
// structured tokens with byte offsets.
//
// The package provides three API layers:
//
//   - Structured: WordTokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs the input.
//
//   - Sentence level: SentenceTokens splits text into sentences, using a
//     built-in list of Icelandic abbreviations (t.d., o.s.frv., þ.e., …)
//     to suppress false breaks after abbreviated words.
//
//   - Paragraph level: Paragraphs splits text into paragraphs on blank
//     lines.
//
// Input should be in NFC form; Normalize applies Unicode NFC via
// golang.org/x/text/unicode/norm. The correction pipeline normalizes
// before tokenizing, so offsets always refer to the normalized string.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Sentence splitting does not track quote or parenthesis nesting.
//   - URLs and email addresses are not recognized as single tokens.
package tokenizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Alphabetic word, including hyphens inside compounds
	Number                       // Digits, with thousand-separator dots and decimal comma
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) « » etc.
	Space                        // Contiguous whitespace
	Symbol                       // Everything else: emoji, currency signs, etc.
	Sentence                     // Used only by SentenceTokens — a full sentence
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the input string (inclusive)
	End   int       // Byte offset in the input string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("hestur")[0:6].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Normalize returns s in Unicode NFC form.
func Normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// WordTokens splits text into all tokens with metadata.
// Returns Word, Number, Punctuation, Space, and Symbol tokens.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every
// token, and concatenating all token texts reconstructs the input.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// SentenceTokens splits text into sentence-level tokens with byte offsets.
// Each returned Token has Type=Sentence. Sentence boundaries are terminal
// punctuation (. ? !) followed by whitespace and an uppercase letter, or a
// blank line. A dot directly followed by a letter, or closing a known
// abbreviation, never ends a sentence.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return sentenceTokens(s)
}

// Sentences returns sentence strings from the text, trimmed of
// surrounding whitespace. Empty sentences are dropped.
func Sentences(s string) []string {
	tokens := SentenceTokens(s)
	sentences := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if trimmed := strings.TrimSpace(t.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// Paragraphs splits text into paragraphs on blank lines (two or more
// consecutive newlines). Paragraphs are trimmed of surrounding
// whitespace; empty paragraphs are dropped.
func Paragraphs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
