package correct

import "fmt"

// Category classifies an error descriptor.
type Category int

const (
	Compound    Category = iota // duplicated, wrongly split or wrongly united words; auto-applied
	UnknownWord                 // word not in the lexicon; flagged, never corrected
	Spelling                    // replaced by a much more likely word form
	Parse                       // whole-sentence parse failure
	GrammarRule                 // derived from an error-tagged parse-tree node
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case Compound:
		return "Compound"
	case UnknownWord:
		return "UnknownWord"
	case Spelling:
		return "Spelling"
	case Parse:
		return "Parse"
	case GrammarRule:
		return "GrammarRule"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// prefix returns the code prefix letter for the category. Codes are
// stable across runs; external evaluators aggregate statistics on them.
func (c Category) prefix() string {
	switch c {
	case Compound:
		return "C"
	case UnknownWord:
		return "U"
	case Spelling:
		return "S"
	case Parse:
		return "E"
	default:
		return "P"
	}
}

// Error describes a spelling or grammar error attached to a token.
// Immutable after construction.
type Error struct {
	category    Category
	code        string // numeric part, e.g. "001"
	description string
	span        int // number of tokens covered, >= 1
}

// Category returns the error's category.
func (e *Error) Category() Category { return e.category }

// Code returns the full category-prefixed code, e.g. "C001".
func (e *Error) Code() string { return e.category.prefix() + e.code }

// Description returns the human-readable description of the error.
func (e *Error) Description() string { return e.description }

// Span returns the number of consecutive tokens the error covers,
// counted from the token it is attached to. At least 1.
func (e *Error) Span() int { return e.span }

func newError(cat Category, code, description string, span int) *Error {
	if span < 1 {
		span = 1
	}
	return &Error{category: cat, code: code, description: description, span: span}
}

// CompoundError describes a duplicated word (001), a wrongly
// compounded word that was split up (002), or a wrongly split compound
// that was united (003).
func CompoundError(code, description string, span int) *Error {
	return newError(Compound, code, description, span)
}

// UnknownWordError describes a word form that the lexicon does not
// recognize and that could not be corrected (001).
func UnknownWordError(code, description string) *Error {
	return newError(UnknownWord, code, description, 1)
}

// SpellingError describes a word replaced via the unique-error
// dictionary (001), the spelling corrector (002), or the
// malformed-form dictionary (003). span is the length of the
// replacement sequence.
func SpellingError(code, description string, span int) *Error {
	return newError(Spelling, code, description, span)
}
