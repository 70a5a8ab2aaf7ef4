// Package bootstrap supplies the fixed ruleset that turns a parsed
// document tree (see treeload) into pattern trees, bootstrapping a
// surface syntax for authoring rewrite rules on top of the engine's
// own rewriting machinery (§6.3 of the rewriting-engine design).
//
// The ruleset is a compile-time constant: the original implementation
// this engine was distilled from (a hand-written rule table,
// make_ttr_rules) built it once, in a fixed order, because the
// driver's first-applicable-rule-in-list-order semantics make the
// order observable. This package reproduces that table rule-for-rule,
// in the same order, using github.com/emirpasic/gods/lists/arraylist
// to accumulate it — the same ordered-list idiom the teacher's own
// lr.CFSM uses for its edge list — rather than a plain Go slice.
package bootstrap

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/dhax/ttrw/rewrite"
	"github.com/dhax/ttrw/rtree"
	"github.com/dhax/ttrw/symtab"
)

// symbols bundles the names the bootstrap rules are built from,
// interned once against the caller's table.
type symbols struct {
	stringK, operK, identK symtab.Symbol

	atomG, matchPointG, groupG, sequenceG symtab.Symbol
	childG, childrenG                     symtab.Symbol
	conjunctorG, disjunctorG, negatorG    symtab.Symbol
	ruleG, rulesG, rulesetG               symtab.Symbol

	sequenceVar, xVar, yVar, aVar, bVar symtab.Symbol

	lang, rang, lbra, rbra, lpar, rpar symtab.Symbol
	exclm, comma, dash, scol           symtab.Symbol
	bar, amp, empty                    symtab.Symbol
}

func internSymbols(tab *symtab.Table) symbols {
	return symbols{
		stringK: tab.Intern("string"),
		operK:   tab.Intern("oper"),
		identK:  tab.Intern("ident"),

		atomG:       tab.Intern("Atom"),
		matchPointG: tab.Intern("MatchPoint"),
		groupG:      tab.Intern("Group"),
		sequenceG:   tab.Intern("Sequence"),
		childG:      tab.Intern("Child"),
		childrenG:   tab.Intern("Children"),
		conjunctorG: tab.Intern("Conjunctor"),
		disjunctorG: tab.Intern("Disjunctor"),
		negatorG:    tab.Intern("Negator"),
		ruleG:       tab.Intern("Rule"),
		rulesG:      tab.Intern("Rules"),
		rulesetG:    tab.Intern("RuleSet"),

		sequenceVar: tab.Intern("sequence"),
		xVar:        tab.Intern("x"),
		yVar:        tab.Intern("y"),
		aVar:        tab.Intern("a"),
		bVar:        tab.Intern("b"),

		lang:  tab.Intern("<"),
		rang:  tab.Intern(">"),
		lbra:  tab.Intern("["),
		rbra:  tab.Intern("]"),
		lpar:  tab.Intern("("),
		rpar:  tab.Intern(")"),
		exclm: tab.Intern("!"),
		comma: tab.Intern(","),
		dash:  tab.Intern("-"),
		scol:  tab.Intern(";"),
		bar:   tab.Intern("|"),
		amp:   tab.Intern("&"),
		empty: tab.Intern(""),
	}
}

// oper builds Group(oper, [Atom(sym)]), the token shape treeload
// produces for a single-character operator.
func oper(operK, sym symtab.Symbol) rtree.Node {
	return rtree.NewGroup(operK, []rtree.Node{rtree.NewAtom(sym)})
}

// seq1 wraps a single child list in Sequence(sequenceVar, children), the
// idiom every bootstrap rule's LHS and RHS share: every rule rewrites a
// window inside whatever Group the surface syntax was parsed into, never
// the tree's root directly (see rewrite.Rule.Exec, which matches only
// at the root it is given).
func seq1(sequenceVar symtab.Symbol, children ...rtree.Node) rtree.Node {
	return rtree.NewSequence(sequenceVar, children)
}

func group1(name symtab.Symbol, children ...rtree.Node) rtree.Node {
	return rtree.NewGroup(name, children)
}

// Rules builds the fixed bootstrap ruleset against tab, interning every
// name and operator symbol it needs. Calling Rules twice against the
// same table returns two RuleSets that compare structurally equal,
// since symbol interning is idempotent.
func Rules(tab *symtab.Table) rewrite.RuleSet {
	s := internSymbols(tab)
	list := arraylist.New()

	push := func(lhs, rhs rtree.Node) {
		list.Add(rewrite.NewRule(lhs, rhs))
	}

	// Atoms and MatchPoints.
	push(
		seq1(s.sequenceVar, group1(s.stringK, rtree.NewMatchPoint(s.xVar))),
		seq1(s.sequenceVar, group1(s.atomG, rtree.NewMatchPoint(s.xVar))),
	)
	push(
		seq1(s.sequenceVar,
			oper(s.operK, s.lang),
			group1(s.identK, rtree.NewMatchPoint(s.xVar)),
			oper(s.operK, s.rang),
		),
		seq1(s.sequenceVar, group1(s.matchPointG, rtree.NewMatchPoint(s.xVar))),
	)
	push(
		seq1(s.sequenceVar, oper(s.operK, s.lang), oper(s.operK, s.rang)),
		seq1(s.sequenceVar, group1(s.matchPointG, rtree.NewAtom(s.empty))),
	)

	// Groups and Sequences.
	push(
		seq1(s.sequenceVar, group1(s.atomG, rtree.NewMatchPoint(s.xVar)), group1(s.childrenG, rtree.NewMatchPoint(s.yVar))),
		seq1(s.sequenceVar, group1(s.groupG, rtree.NewMatchPoint(s.xVar), group1(s.childrenG, rtree.NewMatchPoint(s.yVar)))),
	)
	push(
		seq1(s.sequenceVar, group1(s.identK, rtree.NewMatchPoint(s.xVar)), group1(s.childrenG, rtree.NewMatchPoint(s.yVar))),
		seq1(s.sequenceVar, group1(s.groupG, rtree.NewMatchPoint(s.xVar), group1(s.childrenG, rtree.NewMatchPoint(s.yVar)))),
	)
	push(
		seq1(s.sequenceVar, group1(s.matchPointG, rtree.NewMatchPoint(s.xVar)), group1(s.childrenG, rtree.NewMatchPoint(s.yVar))),
		seq1(s.sequenceVar, group1(s.sequenceG, rtree.NewMatchPoint(s.xVar), group1(s.childrenG, rtree.NewMatchPoint(s.yVar)))),
	)
	push(
		seq1(s.sequenceVar,
			oper(s.operK, s.lpar),
			group1(s.identK, rtree.NewMatchPoint(s.xVar)),
			oper(s.operK, s.rpar),
			group1(s.childrenG, rtree.NewMatchPoint(s.yVar)),
		),
		seq1(s.sequenceVar, group1(s.sequenceG, rtree.NewMatchPoint(s.xVar), group1(s.childrenG, rtree.NewMatchPoint(s.yVar)))),
	)

	// Disjunctors and Conjunctors.
	push(
		seq1(s.sequenceVar, oper(s.operK, s.bar), group1(s.childrenG, rtree.NewMatchPoint(s.xVar))),
		seq1(s.sequenceVar, group1(s.disjunctorG, group1(s.childrenG, rtree.NewMatchPoint(s.xVar)))),
	)
	push(
		seq1(s.sequenceVar, oper(s.operK, s.amp), group1(s.childrenG, rtree.NewMatchPoint(s.xVar))),
		seq1(s.sequenceVar, group1(s.conjunctorG, group1(s.childrenG, rtree.NewMatchPoint(s.xVar)))),
	)

	// The surface-form templates that Negator and Child rules are
	// generated over, in the same order ttr.rs iterates them.
	templates := []rtree.Node{
		group1(s.atomG, rtree.NewMatchPoint(s.xVar)),
		group1(s.matchPointG, rtree.NewMatchPoint(s.xVar)),
		group1(s.groupG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)),
		group1(s.sequenceG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)),
		group1(s.disjunctorG, rtree.NewMatchPoint(s.xVar)),
		group1(s.conjunctorG, rtree.NewMatchPoint(s.yVar)),
	}

	// Negators.
	for _, tmpl := range templates {
		push(
			seq1(s.sequenceVar, oper(s.operK, s.exclm), tmpl),
			seq1(s.sequenceVar, group1(s.negatorG, tmpl)),
		)
	}

	// Children — initiators.
	for _, tmpl := range templates {
		push(
			seq1(s.sequenceVar, oper(s.operK, s.lbra), tmpl),
			seq1(s.sequenceVar, group1(s.childG, tmpl)),
		)
	}
	// Children — continuations, arity 1.
	for _, tmpl := range templates {
		push(
			seq1(s.sequenceVar, group1(s.childG, rtree.NewMatchPoint(s.aVar)), oper(s.operK, s.comma), tmpl),
			seq1(s.sequenceVar, group1(s.childG, rtree.NewMatchPoint(s.aVar), tmpl)),
		)
	}
	// Children — continuations, arity 2.
	for _, tmpl := range templates {
		push(
			seq1(s.sequenceVar,
				group1(s.childG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)),
				oper(s.operK, s.comma),
				tmpl,
			),
			seq1(s.sequenceVar,
				group1(s.childG, group1(s.childG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)), tmpl),
			),
		)
	}
	// Children — terminators.
	push(
		seq1(s.sequenceVar, group1(s.childG, rtree.NewMatchPoint(s.aVar)), oper(s.operK, s.rbra)),
		seq1(s.sequenceVar, group1(s.childrenG, group1(s.childG, rtree.NewMatchPoint(s.aVar)))),
	)
	push(
		seq1(s.sequenceVar, group1(s.childG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)), oper(s.operK, s.rbra)),
		seq1(s.sequenceVar, group1(s.childrenG, group1(s.childG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)))),
	)

	// Rules: lhs -> rhs, for every combination of Atom/Group LHS and RHS,
	// plus Sequence -> Sequence.
	push(
		seq1(s.sequenceVar,
			group1(s.atomG, rtree.NewMatchPoint(s.xVar)),
			oper(s.operK, s.dash), oper(s.operK, s.rang),
			group1(s.atomG, rtree.NewMatchPoint(s.aVar)),
		),
		seq1(s.sequenceVar, group1(s.ruleG, group1(s.atomG, rtree.NewMatchPoint(s.xVar)), group1(s.atomG, rtree.NewMatchPoint(s.aVar)))),
	)
	push(
		seq1(s.sequenceVar,
			group1(s.atomG, rtree.NewMatchPoint(s.xVar)),
			oper(s.operK, s.dash), oper(s.operK, s.rang),
			group1(s.groupG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)),
		),
		seq1(s.sequenceVar, group1(s.ruleG, group1(s.atomG, rtree.NewMatchPoint(s.xVar)), group1(s.groupG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)))),
	)
	push(
		seq1(s.sequenceVar,
			group1(s.groupG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)),
			oper(s.operK, s.dash), oper(s.operK, s.rang),
			group1(s.atomG, rtree.NewMatchPoint(s.aVar)),
		),
		seq1(s.sequenceVar, group1(s.ruleG, group1(s.groupG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)), group1(s.atomG, rtree.NewMatchPoint(s.aVar)))),
	)
	push(
		seq1(s.sequenceVar,
			group1(s.groupG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)),
			oper(s.operK, s.dash), oper(s.operK, s.rang),
			group1(s.groupG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)),
		),
		seq1(s.sequenceVar, group1(s.ruleG, group1(s.groupG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)), group1(s.groupG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)))),
	)
	push(
		seq1(s.sequenceVar,
			group1(s.sequenceG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)),
			oper(s.operK, s.dash), oper(s.operK, s.rang),
			group1(s.sequenceG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)),
		),
		seq1(s.sequenceVar, group1(s.ruleG, group1(s.sequenceG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)), group1(s.sequenceG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)))),
	)

	// Ruleset accumulation.
	push(
		seq1(s.sequenceVar, group1(s.ruleG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)), oper(s.operK, s.scol)),
		seq1(s.sequenceVar, group1(s.rulesetG, group1(s.rulesG, group1(s.ruleG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar))))),
	)
	push(
		seq1(s.sequenceVar,
			group1(s.rulesetG, group1(s.rulesG, rtree.NewMatchPoint(s.aVar))),
			group1(s.ruleG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)),
			oper(s.operK, s.scol),
		),
		seq1(s.sequenceVar, group1(s.rulesetG, group1(s.rulesG, rtree.NewMatchPoint(s.aVar), group1(s.ruleG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar))))),
	)
	push(
		seq1(s.sequenceVar,
			group1(s.rulesetG, group1(s.rulesG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar))),
			group1(s.ruleG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)),
			oper(s.operK, s.scol),
		),
		seq1(s.sequenceVar, group1(s.rulesetG, group1(s.rulesG, group1(s.rulesG, rtree.NewMatchPoint(s.aVar), rtree.NewMatchPoint(s.bVar)), group1(s.ruleG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar))))),
	)
	push(
		seq1(s.sequenceVar, group1(s.rulesetG, rtree.NewMatchPoint(s.xVar)), group1(s.rulesetG, rtree.NewMatchPoint(s.yVar))),
		seq1(s.sequenceVar, group1(s.rulesetG, group1(s.rulesG, rtree.NewMatchPoint(s.xVar), rtree.NewMatchPoint(s.yVar)))),
	)

	out := make(rewrite.RuleSet, list.Size())
	for i, v := range list.Values() {
		out[i] = v.(rewrite.Rule)
	}
	return out
}
