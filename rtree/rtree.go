// Package rtree implements the tree data model the rewriting engine
// operates on: a closed sum of nine node variants, of which Atom and
// Group are ordinary (they may appear in an input tree or a driver
// result) and the rest pattern or internal variants (they may only
// appear in a rule's LHS/RHS, or transiently inside a binding
// environment).
//
// Go has no tagged-union construct, so a Node is represented the way
// gorgo's terex.Atom represents its own closed set of atom kinds: one
// struct carrying a Kind tag plus the union of fields any variant
// might need, with exhaustive switches over Kind standing in for
// pattern matching. Unused fields for a given Kind are simply zero.
package rtree

import (
	"fmt"

	"github.com/dhax/ttrw/symtab"
)

// Kind tags which of the nine variants a Node holds.
type Kind int

//go:generate stringer -type Kind
const (
	// NoNode is the absent/null placeholder the evaluator feeds into
	// sub-evaluation when a template has no corresponding reference
	// child. It is the zero Kind, so the zero Node is NoNode.
	NoNode Kind = iota
	// Atom is a leaf carrying a single interned symbol.
	Atom
	// Group is a labelled internal node with ordered children.
	Group
	// MatchPoint is a pattern variable bound to a single Node.
	MatchPoint
	// Sequence is a pattern variable bound to a contiguous window of
	// a Group's children.
	Sequence
	// Conjunctor succeeds iff every subpattern matches the target.
	Conjunctor
	// Disjunctor succeeds on the first subpattern that matches.
	Disjunctor
	// Negator succeeds iff its subpattern fails.
	Negator
	// SplicePair is the internal binding value recorded for a
	// Sequence match; it never appears in a tree itself.
	SplicePair
)

func (k Kind) String() string {
	switch k {
	case Atom:
		return "Atom"
	case Group:
		return "Group"
	case MatchPoint:
		return "MatchPoint"
	case Sequence:
		return "Sequence"
	case Conjunctor:
		return "Conjunctor"
	case Disjunctor:
		return "Disjunctor"
	case Negator:
		return "Negator"
	case SplicePair:
		return "SplicePair"
	case NoNode:
		return "NoNode"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a value of the tree's closed sum type. The zero Node is the
// NoNode placeholder, which is a deliberate choice: a Node slot left
// unset by a caller behaves as absent rather than as a spurious Atom
// of symbol 0.
type Node struct {
	kind Kind

	sym symtab.Symbol // Atom, Group, MatchPoint, Sequence

	// Group, Sequence children; Conjunctor/Disjunctor subpatterns.
	children []Node

	// Negator's single subpattern.
	inner *Node

	// SplicePair fields.
	start, length int
}

// NewAtom builds an Atom(sym) leaf.
func NewAtom(sym symtab.Symbol) Node {
	return Node{kind: Atom, sym: sym}
}

// NewGroup builds a Group(sym, children) internal node. children is
// taken by reference to the caller's slice header, not copied; callers
// must not mutate a slice after handing it to NewGroup, matching the
// value-semantics ownership rule for the whole package.
func NewGroup(sym symtab.Symbol, children []Node) Node {
	return Node{kind: Group, sym: sym, children: children}
}

// NewMatchPoint builds a MatchPoint(sym) pattern variable.
func NewMatchPoint(sym symtab.Symbol) Node {
	return Node{kind: MatchPoint, sym: sym}
}

// NewSequence builds a Sequence(sym, children) pattern variable over a
// contiguous window of a Group's children.
func NewSequence(sym symtab.Symbol, children []Node) Node {
	return Node{kind: Sequence, sym: sym, children: children}
}

// NewConjunctor builds a Conjunctor over the given subpatterns.
func NewConjunctor(patterns []Node) Node {
	return Node{kind: Conjunctor, children: patterns}
}

// NewDisjunctor builds a Disjunctor over the given subpatterns.
func NewDisjunctor(patterns []Node) Node {
	return Node{kind: Disjunctor, children: patterns}
}

// NewNegator builds a Negator wrapping a single subpattern.
func NewNegator(pattern Node) Node {
	return Node{kind: Negator, inner: &pattern}
}

// NewSplicePair builds the internal SplicePair(start, length) binding
// value. It is never valid as a tree node; it only appears bound to a
// Sequence variable inside a binding environment.
func NewSplicePair(start, length int) Node {
	return Node{kind: SplicePair, start: start, length: length}
}

// Absent is the NoNode placeholder. It is the zero value of Node, so
// using the literal Node{} is equivalent, but Absent documents intent
// at call sites.
var Absent = Node{kind: NoNode}

// Kind reports which variant n holds.
func (n Node) Kind() Kind { return n.kind }

// Symbol returns the symbol carried by an Atom, Group, MatchPoint or
// Sequence node. It panics on any other Kind: callers must check Kind
// first, exactly as a switch over a closed sum type would require.
func (n Node) Symbol() symtab.Symbol {
	switch n.kind {
	case Atom, Group, MatchPoint, Sequence:
		return n.sym
	default:
		panic(fmt.Sprintf("rtree: Symbol() called on a %s node", n.kind))
	}
}

// Children returns the child list of a Group or Sequence, or the
// subpattern list of a Conjunctor or Disjunctor. It panics on any
// other Kind.
func (n Node) Children() []Node {
	switch n.kind {
	case Group, Sequence, Conjunctor, Disjunctor:
		return n.children
	default:
		panic(fmt.Sprintf("rtree: Children() called on a %s node", n.kind))
	}
}

// Inner returns the subpattern wrapped by a Negator. It panics on any
// other Kind.
func (n Node) Inner() Node {
	if n.kind != Negator {
		panic(fmt.Sprintf("rtree: Inner() called on a %s node", n.kind))
	}
	return *n.inner
}

// Splice returns the (start, length) pair carried by a SplicePair. It
// panics on any other Kind.
func (n Node) Splice() (start, length int) {
	if n.kind != SplicePair {
		panic(fmt.Sprintf("rtree: Splice() called on a %s node", n.kind))
	}
	return n.start, n.length
}

// IsOrdinary holds iff n is an Atom, or a Group all of whose
// descendants are themselves ordinary. Targets presented to the
// driver must be ordinary; LHS patterns need not be.
func IsOrdinary(n Node) bool {
	switch n.kind {
	case Atom:
		return true
	case Group:
		for _, c := range n.children {
			if !IsOrdinary(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a value usable independently of n. Because every
// constructor above treats its inputs as owned-from-here-on and
// nothing in this package ever mutates a Node's fields after
// construction, a Node is already safe to share; Clone exists so
// call sites that want a defensive copy (notably the evaluator, which
// clones bound values out of an environment) have a name for the
// no-op, matching the "Bindings hold clones of bound sub-nodes
// conceptually" language in the persistent-map design.
func (n Node) Clone() Node {
	return n
}

// Equal reports whether a and b are structurally identical: same
// Kind, same symbol where applicable, same children recursively, same
// Negator subpattern, same SplicePair fields. It is used by tests.
func Equal(a, b Node) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Atom, MatchPoint:
		return a.sym == b.sym
	case Group, Sequence:
		if a.sym != b.sym || len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	case Conjunctor, Disjunctor:
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	case Negator:
		return Equal(*a.inner, *b.inner)
	case SplicePair:
		return a.start == b.start && a.length == b.length
	case NoNode:
		return true
	default:
		return false
	}
}
