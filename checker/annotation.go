// Package checker assembles spelling and grammar annotations for
// Icelandic sentences. It runs the correction pipeline over the text,
// hands the corrected tokens to the parsing engine, walks the parse
// tree for error-tagged grammar constructs, and merges everything into
// one ordered annotation list per sentence.
//
// Error codes produced here:
//
//	E001                     sentence could not be parsed
//	P_NT_<rule>              error-tagged nonterminal in the parse tree
//	P_WRONG_CASE_<w>_<c>     impersonal verb with wrong subject case
//
// Token-level codes (C001, S002, U001, ...) originate in the correct
// package and are merged in unchanged.
package checker

import "fmt"

// Annotation marks a span of a sentence's token sequence with an error
// code and a human-readable description. Start and End are inclusive
// token indices. Annotations are never mutated after creation.
type Annotation struct {
	Start int
	End   int
	Code  string
	Text  string
}

// String renders the annotation in the fixed report-line format used
// by the CLI and by downstream evaluation tooling.
func (a Annotation) String() string {
	return fmt.Sprintf("%03d-%03d: %-6s %s", a.Start, a.End, a.Code, a.Text)
}
