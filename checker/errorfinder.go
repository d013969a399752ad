package checker

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/grammatek/GreynirCorrect/correct"
	"github.com/grammatek/GreynirCorrect/dictionary"
	"github.com/grammatek/GreynirCorrect/parse"
)

// caseNames maps grammatical case abbreviations to the prefixes used
// in the Icelandic descriptions ("þf" → "þolfall" via "þol" + "falli").
var caseNames = map[string]string{
	"nf":  "nefni",
	"þf":  "þol",
	"þgf": "þágu",
	"ef":  "eignar",
}

// ruleDescriptions maps error-tagged nonterminal base names (variants
// stripped) to description builders. Rules without an entry fall back
// to a generic description naming the rule. The mapping is static;
// grammar authors adding a new error rule extend it here.
var ruleDescriptions = map[string]func(spanText string) string{
	"VillaHeldur": func(txt string) string {
		return fmt.Sprintf("'%s' er ofaukið", txt)
	},
	"VillaVístAð": func(txt string) string {
		return fmt.Sprintf("'%s' á sennilega að vera 'fyrst að'", txt)
	},
	"VillaFráÞvíAð": func(txt string) string {
		return fmt.Sprintf("'%s' á sennilega að vera '%s að'", txt, txt)
	},
	"VillaAnnaðhvort": func(txt string) string {
		return fmt.Sprintf("Í stað '%s' á að standa 'annað hvort'", txt)
	},
	"VillaAnnaðHvort": func(txt string) string {
		return fmt.Sprintf("Í stað '%s' á að standa 'annaðhvort'", txt)
	},
	"VillaFjöldiHluti": func(txt string) string {
		return fmt.Sprintf("Sögn sem á við '%s' á að vera í eintölu, ekki fleirtölu", txt)
	},
	"VillaEinnAf": func(txt string) string {
		return fmt.Sprintf("Sögn sem á við '%s' á að vera í eintölu, ekki fleirtölu", txt)
	},
	"VillaAð": func(txt string) string {
		return fmt.Sprintf("'%s' er sennilega ofaukið", txt)
	},
	"VillaÞóAð": func(txt string) string {
		return fmt.Sprintf("'%s' á sennilega að vera '%s að' (eða 'þótt')", txt, txt)
	},
}

// errorFinder walks a parse tree collecting grammar annotations from
// error-tagged nonterminals and from impersonal verbs whose subject
// stands in a known-wrong case.
type errorFinder struct {
	tokens []*correct.Token
	dicts  *dictionary.Dictionaries
	ann    []Annotation
}

// findGrammarErrors returns the grammar annotations for a successfully
// parsed sentence. The tree is never mutated.
func findGrammarErrors(tree *parse.Tree, tokens []*correct.Token, dicts *dictionary.Dictionaries) []Annotation {
	f := &errorFinder{tokens: tokens, dicts: dicts}
	tree.Walk(func(n *parse.Node) {
		switch n.Kind {
		case parse.Nonterminal:
			f.visitNonterminal(n)
		case parse.Terminal:
			f.visitTerminal(n)
		}
	})
	return f.ann
}

// spanText reassembles the surface text covered by a node.
func (f *errorFinder) spanText(n *parse.Node) string {
	start, end := n.Start, n.End
	if start < 0 {
		start = 0
	}
	if end > len(f.tokens) {
		end = len(f.tokens)
	}
	return correct.Text(f.tokens[start:end])
}

// visitNonterminal reports nonterminals tagged "error" in the grammar.
// Interior (grammar-factoring) and optional nodes are skipped even
// when tagged.
func (f *errorFinder) visitNonterminal(n *parse.Node) {
	if n.Interior || n.Optional || !n.HasTag("error") {
		return
	}

	// Variants are appended to the rule name after an underscore;
	// only the base name selects the description.
	name := n.Name
	if ix := strings.IndexByte(name, '_'); ix >= 0 {
		name = name[:ix]
	}

	code := "P_NT_" + strings.TrimPrefix(name, "Villa")
	txt := f.spanText(n)
	var description string
	if build, ok := ruleDescriptions[name]; ok {
		description = build(txt)
	} else {
		description = fmt.Sprintf("'%s' er líklega rangt (regla %s)", txt, n.Name)
	}

	f.ann = append(f.ann, Annotation{
		Start: n.Start,
		End:   n.End - 1,
		Code:  code,
		Text:  description,
	})
}

// visitTerminal reports impersonal verbs whose subject stands in a
// case the verb-subject error table marks as wrong. Only verb
// terminals marked as requiring a subject (the "subj" variant) are
// checked; an impersonal "op" variant alone never triggers the rule.
// The last variant of such a terminal is the subject's case.
func (f *errorFinder) visitTerminal(n *parse.Node) {
	if n.Category != "so" || !n.HasVariant("subj") {
		return
	}

	wrongCase := n.Variant(-1)
	if _, ok := caseNames[wrongCase]; !ok {
		// Not a case variant; the terminal carries something else in
		// last position. Skip rather than guess.
		log.Debug().
			Str("terminal", n.Name).
			Str("variant", wrongCase).
			Msg("subject-case check skipped: unknown case variant")
		return
	}

	correctCase, ok := f.dicts.VerbErrorSubject(n.Lemma, wrongCase)
	if !ok {
		return
	}

	// Recover the verb's subject phrase: first inside the enclosing
	// verb phrase, then inside the enclosing inflected phrase. When
	// neither yields one, degrade to annotating the verb token alone.
	var subj *parse.Node
	if vp := n.EnclosingTag("VP"); vp != nil {
		subj = vp.ChildNamed("NP-SUBJ")
	}
	if subj == nil {
		if ip := n.EnclosingTag("IP"); ip != nil {
			subj = ip.ChildNamed("NP-SUBJ")
		}
	}

	start, end := n.TokenIndex, n.TokenIndex
	if subj != nil {
		start, end = subj.Start, subj.End-1
	} else {
		log.Debug().
			Str("verb", n.Lemma).
			Int("token", n.TokenIndex).
			Msg("subject phrase not found: annotating the verb token only")
	}

	f.ann = append(f.ann, Annotation{
		Start: start,
		End:   end,
		Code:  "P_WRONG_CASE_" + wrongCase + "_" + correctCase,
		Text: fmt.Sprintf(
			"Frumlag sagnarinnar 'að %s' á að vera í %sfalli en ekki í %sfalli",
			n.Lemma, caseNames[correctCase], caseNames[wrongCase],
		),
	})
}
