package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Whitespace merging (contiguous runs become one Space token)
//   - Number grouping (dot as thousand separator, comma as decimal)
//   - Hyphen joining inside words (single U+002D between letters)
//   - Default unicode classification
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Whitespace: merge contiguous into one Space token
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		// Digits: scan a number token
		if unicode.IsDigit(r) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Letters: scan a word token
		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Punctuation: one token per mark, except runs of hyphens/dots
		// which are merged ("--", "...")
		if unicode.IsPunct(r) {
			start := i
			i += size
			if r == '-' || r == '.' {
				for i < len(s) {
					nr, ns := utf8.DecodeRuneInString(s[i:])
					if nr != r {
						break
					}
					i += ns
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		// Fallback: treat unclassified runes as Symbol
		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanNumber reads a number token starting at position pos.
// Icelandic convention: dot as thousand separator in groups of exactly
// three (1.234.567), comma as decimal separator (3,14).
func scanNumber(s string, pos int) Token {
	i := pos

	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	// Thousand-separator dots: \d{1,3}(\.\d{3})+
	for i < len(s) && s[i] == '.' {
		if i+4 <= len(s) && isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) {
			if i+4 >= len(s) || !isDigitByte(s[i+4]) {
				i += 4
				continue
			}
		}
		break
	}

	// Decimal comma: must be followed by at least one digit
	if i+1 < len(s) && s[i] == ',' && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at position pos.
// A word begins with a letter and may contain digits (e.g. "A4") and
// single hyphens between letters, so hyphenated compounds like
// "Vestur-Þýskaland" stay together as one token.
func scanWord(s string, pos int) Token {
	i := consumeLetterDigitRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '-' {
			break
		}
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])
		// A double hyphen or a hyphen not followed by a letter ends the word.
		if nr == '-' || !unicode.IsLetter(nr) {
			break
		}
		i = consumeLetterDigitRun(s, next)
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeLetterDigitRun consumes a contiguous run of letters and digits.
func consumeLetterDigitRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
