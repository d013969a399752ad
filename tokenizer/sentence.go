package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations maps common Icelandic abbreviations (lowercase, with
// trailing dot) to true. Used to suppress false sentence breaks after
// abbreviated words. Multi-part abbreviations are matched against the
// whole dotted cluster, so only the full form needs to be listed.
var abbreviations = map[string]bool{
	"t.d.":     true, // til dæmis
	"þ.e.":     true, // það er
	"þ.e.a.s.": true, // það er að segja
	"o.s.frv.": true, // og svo framvegis
	"o.fl.":    true, // og fleira
	"o.þ.h.":   true, // og þess háttar
	"m.a.":     true, // meðal annars
	"u.þ.b.":   true, // um það bil
	"a.m.k.":   true, // að minnsta kosti
	"f.kr.":    true, // fyrir Krist
	"e.kr.":    true, // eftir Krist
	"hr.":      true,
	"dr.":      true,
	"sr.":      true,
	"bls.":     true,
	"nr.":      true,
	"sbr.":     true,
	"skv.":     true,
	"vsk.":     true,
	"kr.":      true,
	"gr.":      true,
	"ca.":      true,
	"kl.":      true,
	"þús.":     true,
	"millj.":   true,
	"hæstv.":   true,
	"ath.":     true,
}

// sentenceTokens splits s into sentence-level tokens.
// Adjacent tokens cover the entire input without gaps or overlaps:
// concatenating all Token.Text values reconstructs s exactly.
func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/40+1)
	sentStart := 0

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// A blank line forces a sentence break regardless of punctuation.
		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			tokens = appendSentence(tokens, s, sentStart, j)
			sentStart = j
			i = j
			continue
		}

		if r == '.' || r == '?' || r == '!' || r == '…' {
			// A dot directly followed by a letter or digit is internal
			// punctuation (t.d., o.s.frv., 17.6.2020), never a break.
			if r == '.' && followedByLetterOrDigit(s, i+size) {
				i += size
				continue
			}

			// A dot closing a known abbreviation is not a break.
			if r == '.' && isAbbreviation(s, i) {
				i += size
				continue
			}

			// Consume the entire terminal cluster (e.g. "?!", "...", "???").
			j := i + size
			for j < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[j:])
				if nr == '.' || nr == '?' || nr == '!' || nr == '…' {
					j += ns
				} else {
					break
				}
			}

			if followedByWhitespaceUppercase(s, j) {
				tokens = appendSentence(tokens, s, sentStart, j)
				sentStart = j
			}
			i = j
			continue
		}

		i += size
	}

	if sentStart < len(s) {
		tokens = appendSentence(tokens, s, sentStart, len(s))
	}

	return tokens
}

func appendSentence(tokens []Token, s string, start, end int) []Token {
	return append(tokens, Token{
		Text:  s[start:end],
		Start: start,
		End:   end,
		Type:  Sentence,
	})
}

// followedByLetterOrDigit reports whether position pos in s holds a
// letter or a digit.
func followedByLetterOrDigit(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// followedByWhitespaceUppercase reports whether position pos in s is
// followed by at least one whitespace character and then an uppercase
// letter or a digit (sentences may start with numerals).
func followedByWhitespaceUppercase(s string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
			continue
		}
		return foundSpace && (unicode.IsUpper(r) || unicode.IsDigit(r))
	}
	return false
}

// isAbbreviation checks whether the dot at byte position dotPos closes a
// known abbreviation. The candidate is the whole dotted cluster before
// the dot: for "o.s.frv." the final dot yields the candidate "o.s.frv.".
func isAbbreviation(s string, dotPos int) bool {
	start := dotPos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || r == '.' {
			start -= size
		} else {
			break
		}
	}
	if start == dotPos {
		return false
	}
	candidate := strings.ToLower(s[start:dotPos]) + "."
	return abbreviations[candidate]
}
