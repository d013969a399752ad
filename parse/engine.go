package parse

import (
	"errors"

	"github.com/grammatek/GreynirCorrect/correct"
)

// ErrNoParse is returned by Engine.Parse when the token sequence does
// not fit the grammar. The checker turns it into a whole-sentence
// annotation rather than propagating it.
var ErrNoParse = errors.New("parse: sentence does not match the grammar")

// Engine parses a corrected, annotated token sequence against the
// error-augmented grammar. Parse returns the highest-scoring candidate
// tree for the sentence, or ErrNoParse when no derivation exists;
// other errors signal engine failure. Reduce disambiguates a candidate
// tree, resolving packed ambiguity down to a single reading.
// Implementations must be safe for concurrent use, as sentences are
// checked in parallel.
//
// The grammar is expected to be augmented with error productions:
// nonterminals tagged "error" that deliberately accept ungrammatical
// phrasings so they can be located and reported instead of failing the
// whole parse.
type Engine interface {
	Parse(tokens []*correct.Token) (*Tree, error)
	Reduce(tree *Tree) (*Tree, error)
}
