// Package parse defines the parse-tree structures and the parsing
// engine contract the grammar checker consumes.
//
// The pipeline does not parse Icelandic itself: a full context-free
// parser is an external collaborator reached through the Engine
// interface. What this package fixes is the shape of its output — a
// tree of nonterminal and terminal nodes carrying grammar tags, token
// spans and morphological variants — so the error finder can walk any
// conforming tree.
package parse

import "strings"

// NodeKind distinguishes nonterminal from terminal tree nodes.
type NodeKind int

const (
	Nonterminal NodeKind = iota
	Terminal
)

// String returns the name of the kind.
func (k NodeKind) String() string {
	switch k {
	case Nonterminal:
		return "Nonterminal"
	case Terminal:
		return "Terminal"
	default:
		return "NodeKind(?)"
	}
}

// Node is a parse-tree node. Nonterminals carry a grammar rule name,
// tags and children; terminals carry the matched token's category,
// variants and lemma. Start and End delimit the covered token span as
// half-open indices into the sentence token sequence.
type Node struct {
	Kind NodeKind
	Name string // nonterminal rule name, e.g. "VillaHeldur" or "NP-SUBJ"

	// Interior marks a helper nonterminal inserted by grammar
	// factoring; Optional marks a nullable production. Neither is
	// reported as an error even when error-tagged.
	Interior bool
	Optional bool

	Start, End int // token span [Start, End)

	Children []*Node
	parent   *Node

	tags map[string]struct{}

	// Terminal fields.
	Category   string   // word category of the matched terminal, e.g. "so"
	Variants   []string // grammatical variants in terminal order, e.g. ["subj", "op", "þgf"]
	Lemma      string
	TokenIndex int // index of the matched token in the sentence
}

// NewNonterminal returns a nonterminal node with the given name, tags
// and token span.
func NewNonterminal(name string, start, end int, tags ...string) *Node {
	n := &Node{Kind: Nonterminal, Name: name, Start: start, End: end}
	for _, tag := range tags {
		n.AddTag(tag)
	}
	return n
}

// NewTerminal returns a terminal node matching the token at index. The
// terminal name is the category joined with its variants by "_", the
// form grammar terminals are written in.
func NewTerminal(category string, variants []string, lemma string, index int) *Node {
	name := category
	if len(variants) > 0 {
		name += "_" + strings.Join(variants, "_")
	}
	return &Node{
		Kind:       Terminal,
		Name:       name,
		Start:      index,
		End:        index + 1,
		Category:   category,
		Variants:   variants,
		Lemma:      lemma,
		TokenIndex: index,
	}
}

// AddChild appends a child node and records n as its parent.
func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// AddTag attaches a grammar tag to the node.
func (n *Node) AddTag(tag string) {
	if n.tags == nil {
		n.tags = make(map[string]struct{})
	}
	n.tags[tag] = struct{}{}
}

// HasTag reports whether the node carries the given grammar tag.
func (n *Node) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// HasVariant reports whether the terminal carries the given variant.
func (n *Node) HasVariant(v string) bool {
	for _, have := range n.Variants {
		if have == v {
			return true
		}
	}
	return false
}

// Variant returns the i-th variant; i = -1 addresses the last one.
// Returns "" when out of range.
func (n *Node) Variant(i int) string {
	if i == -1 {
		i = len(n.Variants) - 1
	}
	if i < 0 || i >= len(n.Variants) {
		return ""
	}
	return n.Variants[i]
}

// EnclosingTag walks up the ancestor chain and returns the nearest
// ancestor carrying the given tag, or nil.
func (n *Node) EnclosingTag(tag string) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.HasTag(tag) {
			return p
		}
	}
	return nil
}

// ChildNamed returns the first direct child with the given nonterminal
// name, or nil.
func (n *Node) ChildNamed(name string) *Node {
	for _, c := range n.Children {
		if c.Kind == Nonterminal && c.Name == name {
			return c
		}
	}
	return nil
}

// Tree is a complete parse of one sentence.
type Tree struct {
	Root *Node
	// Score is the reducer's disambiguation score for this tree among
	// the candidate forest; informational only.
	Score int
}

// Walk visits every node in the tree depth-first, parents before
// children.
func (t *Tree) Walk(visit func(*Node)) {
	if t == nil || t.Root == nil {
		return
	}
	var rec func(*Node)
	rec = func(n *Node) {
		visit(n)
		for _, c := range n.Children {
			rec(c)
		}
	}
	rec(t.Root)
}
