// Package bindings implements the matcher's binding environment: a
// persistent (functionally updatable) map from variable symbol to
// bound node. Persistence is required, not merely convenient — the
// matcher explores alternatives (Disjunctor branches, Sequence window
// search) and a failed branch must leave the caller's environment
// exactly as it was, with no explicit rollback.
//
// The original implementation this engine was distilled from reached
// for an external persistent-map crate for exactly this reason; this
// package reaches for the same kind of library in the Go ecosystem,
// hashicorp/go-immutable-radix, rather than hand-rolling a copy-on-write
// map or layering manual snapshot/restore over a mutable one.
package bindings

import (
	"encoding/binary"

	iradix "github.com/hashicorp/go-immutable-radix"

	"github.com/dhax/ttrw/rtree"
	"github.com/dhax/ttrw/symtab"
)

// Bindings is a persistent map from symtab.Symbol to a bound rtree.Node.
// A bound value is either an ordinary Node (MatchPoint variables) or a
// SplicePair (Sequence variables); Bindings itself does not enforce
// that distinction, the matcher and evaluator do.
//
// The zero value is not usable; construct one with New.
type Bindings struct {
	tree *iradix.Tree
}

// New returns the empty environment.
func New() Bindings {
	return Bindings{tree: iradix.New()}
}

func key(v symtab.Symbol) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b[:]
}

// Find looks up the node bound to v. The zero Node (ok == false) is
// returned if v is unbound.
func (b Bindings) Find(v symtab.Symbol) (rtree.Node, bool) {
	raw, ok := b.tree.Get(key(v))
	if !ok {
		return rtree.Node{}, false
	}
	return raw.(rtree.Node), true
}

// Plus returns a new Bindings with v bound to n, leaving b itself
// unmodified. Rebinding an already-bound variable overwrites the old
// value in the returned environment only; any other Bindings value
// derived from the same history is untouched.
func (b Bindings) Plus(v symtab.Symbol, n rtree.Node) Bindings {
	newTree, _, _ := b.tree.Insert(key(v), n)
	return Bindings{tree: newTree}
}

// Clone returns an independently usable copy of b. Because the
// underlying radix tree is itself persistent, cloning never copies
// data — it is the identity operation on the Bindings value, which is
// what makes passing environments by value down match-recursion cheap.
func (b Bindings) Clone() Bindings {
	return b
}

// Len reports the number of bound variables.
func (b Bindings) Len() int {
	return b.tree.Len()
}
