package rewrite

import (
	"github.com/cnf/structhash"

	"github.com/dhax/ttrw/bindings"
	"github.com/dhax/ttrw/rtree"
)

// Rule is a pair of (LHS, RHS) nodes: LHS is a pattern, RHS a
// template that may itself reference bindings LHS establishes. Rules
// are immutable values; Exec never mutates LHS, RHS or its tree
// argument.
type Rule struct {
	LHS, RHS rtree.Node
}

// NewRule builds a Rule from a pattern and a template.
func NewRule(lhs, rhs rtree.Node) Rule {
	return Rule{LHS: lhs, RHS: rhs}
}

// Exec applies the rule at the root of tree only: Rule.Exec never
// descends into nested Groups looking for a place the LHS matches.
// Whether a Sequence LHS reaches into the tree's children is entirely
// the matcher's business (see Match's Sequence case); Exec itself
// just calls Match once, at the top.
func (r Rule) Exec(tree rtree.Node) (fired bool, result rtree.Node, err error) {
	env := bindings.New()
	ok, env2, err := Match(r.LHS, tree, env)
	if err != nil {
		return false, rtree.Absent, err
	}
	if !ok {
		return false, rtree.Absent, nil
	}
	out, err := Eval(r.RHS, tree, env2)
	if err != nil {
		return false, rtree.Absent, err
	}
	tracer().Debugf("rule %s fired", r.Label())
	return true, out, nil
}

// Label returns a short content hash identifying the rule, stable
// across runs, for use in trace and debug output — two structurally
// identical rules always share a label.
func (r Rule) Label() string {
	hash, err := structhash.Hash(struct {
		lhs rtree.Node
		rhs rtree.Node
	}{lhs: r.LHS, rhs: r.RHS}, 1)
	if err != nil { // structhash only errors on unsupported types; Node isn't one
		panic(err)
	}
	return hash
}

// RuleSet is an ordered list of Rules, tried in list order.
type RuleSet []Rule
