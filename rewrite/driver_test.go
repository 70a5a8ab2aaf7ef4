package rewrite

import (
	"errors"
	"testing"

	"github.com/dhax/ttrw/bindings"
	"github.com/dhax/ttrw/rtree"
)

// Scenario A — scalar sequence replacement.
func TestScenarioAScalarSequenceReplacement(t *testing.T) {
	tree := rtree.NewGroup(1, []rtree.Node{
		rtree.NewAtom(1), rtree.NewAtom(3), rtree.NewAtom(2),
		rtree.NewAtom(3), rtree.NewAtom(3), rtree.NewAtom(1),
	})
	rule := NewRule(
		rtree.NewSequence(1, []rtree.Node{rtree.NewAtom(3)}),
		rtree.NewSequence(1, []rtree.Node{rtree.NewAtom(4), rtree.NewAtom(5)}),
	)
	final, iterations, err := Run(tree, RuleSet{rule})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := rtree.NewGroup(1, []rtree.Node{
		rtree.NewAtom(1), rtree.NewAtom(4), rtree.NewAtom(5), rtree.NewAtom(2),
		rtree.NewAtom(4), rtree.NewAtom(5), rtree.NewAtom(4), rtree.NewAtom(5), rtree.NewAtom(1),
	})
	if !rtree.Equal(final, want) {
		t.Fatalf("got %#v\nwant %#v", final, want)
	}
	if iterations != 3 {
		t.Fatalf("expected 3 firing passes (one per occurrence of Atom(3)), got %d", iterations)
	}
}

// Scenario B — group-valued window; only the arity-1 Group(2,[Atom(1)])
// is replaced, not the three-child Group(2, ...).
func TestScenarioBGroupValuedWindow(t *testing.T) {
	tree := rtree.NewGroup(1, []rtree.Node{
		rtree.NewAtom(2),
		rtree.NewGroup(2, []rtree.Node{rtree.NewAtom(1), rtree.NewAtom(5), rtree.NewGroup(3, nil)}),
		rtree.NewAtom(1),
		rtree.NewGroup(2, []rtree.Node{rtree.NewAtom(1)}),
		rtree.NewAtom(3),
	})
	rule := NewRule(
		rtree.NewSequence(1, []rtree.Node{rtree.NewGroup(2, []rtree.Node{rtree.NewAtom(1)})}),
		rtree.NewSequence(1, []rtree.Node{rtree.NewGroup(3, []rtree.Node{rtree.NewGroup(4, []rtree.Node{rtree.NewAtom(1)})})}),
	)
	final, _, err := Run(tree, RuleSet{rule})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := rtree.NewGroup(1, []rtree.Node{
		rtree.NewAtom(2),
		rtree.NewGroup(2, []rtree.Node{rtree.NewAtom(1), rtree.NewAtom(5), rtree.NewGroup(3, nil)}),
		rtree.NewAtom(1),
		rtree.NewGroup(3, []rtree.Node{rtree.NewGroup(4, []rtree.Node{rtree.NewAtom(1)})}),
		rtree.NewAtom(3),
	})
	if !rtree.Equal(final, want) {
		t.Fatalf("got %#v\nwant %#v", final, want)
	}
}

// Scenario F — driver fixed point: root is a Group, rule's LHS is an
// Atom, so the rule can never fire at the root.
func TestScenarioFDriverFixedPoint(t *testing.T) {
	tree := rtree.NewGroup(1, []rtree.Node{rtree.NewAtom(1)})
	rule := NewRule(rtree.NewAtom(1), rtree.NewAtom(1))
	final, iterations, err := Run(tree, RuleSet{rule})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iterations != 0 {
		t.Fatalf("expected 0 iterations, got %d", iterations)
	}
	if !rtree.Equal(final, tree) {
		t.Fatalf("expected tree unchanged")
	}
}

// Invariant 2: iteration count equals the number of passes that fired.
func TestIterationCountMatchesFiredPasses(t *testing.T) {
	tree := rtree.NewGroup(1, []rtree.Node{rtree.NewAtom(1), rtree.NewAtom(1), rtree.NewAtom(1)})
	rule := NewRule(
		rtree.NewSequence(9, []rtree.Node{rtree.NewAtom(1)}),
		rtree.NewSequence(9, []rtree.Node{rtree.NewAtom(2)}),
	)
	final, iterations, err := Run(tree, RuleSet{rule})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iterations != 3 {
		t.Fatalf("expected 3 firing passes, got %d", iterations)
	}
	want := rtree.NewGroup(1, []rtree.Node{rtree.NewAtom(2), rtree.NewAtom(2), rtree.NewAtom(2)})
	if !rtree.Equal(final, want) {
		t.Fatalf("got %#v, want %#v", final, want)
	}
}

// No implicit recursion into nested groups: a rule whose window only
// exists inside a nested Group never fires at the root.
func TestNoDescentIntoNestedGroups(t *testing.T) {
	tree := rtree.NewGroup(1, []rtree.Node{
		rtree.NewGroup(2, []rtree.Node{rtree.NewAtom(7)}),
	})
	rule := NewRule(
		rtree.NewSequence(1, []rtree.Node{rtree.NewAtom(7)}),
		rtree.NewSequence(1, []rtree.Node{rtree.NewAtom(8)}),
	)
	final, iterations, err := Run(tree, RuleSet{rule})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iterations != 0 || !rtree.Equal(final, tree) {
		t.Fatalf("rule must not reach into the nested group")
	}
}

func TestPassReturnsFirstApplicableRuleInOrder(t *testing.T) {
	tree := rtree.NewGroup(1, []rtree.Node{rtree.NewAtom(1)})
	never := NewRule(rtree.NewSequence(9, []rtree.Node{rtree.NewAtom(99)}), rtree.NewAtom(0))
	first := NewRule(rtree.NewSequence(9, []rtree.Node{rtree.NewAtom(1)}), rtree.NewSequence(9, []rtree.Node{rtree.NewAtom(2)}))
	second := NewRule(rtree.NewSequence(9, []rtree.Node{rtree.NewAtom(2)}), rtree.NewSequence(9, []rtree.Node{rtree.NewAtom(3)}))

	fired, result, err := Pass(tree, RuleSet{never, first, second})
	if err != nil || !fired {
		t.Fatalf("expected a rule to fire")
	}
	want := rtree.NewGroup(1, []rtree.Node{rtree.NewAtom(2)})
	if !rtree.Equal(result, want) {
		t.Fatalf("expected the first applicable rule (not 'second') to have fired; got %#v", result)
	}
}

func TestRuleExecUnboundMatchPointIsTemplateError(t *testing.T) {
	rule := NewRule(rtree.NewAtom(1), rtree.NewMatchPoint(999))
	_, _, err := rule.Exec(rtree.NewAtom(1))
	if err == nil {
		t.Fatalf("expected a TemplateError for an unbound match point in the RHS")
	}
	var tplErr *TemplateError
	if !errors.As(err, &tplErr) {
		t.Fatalf("expected *TemplateError, got %T", err)
	}
}

func TestRuleLabelIsStableAndDistinguishesRules(t *testing.T) {
	a := NewRule(rtree.NewAtom(1), rtree.NewAtom(2))
	b := NewRule(rtree.NewAtom(1), rtree.NewAtom(2))
	c := NewRule(rtree.NewAtom(1), rtree.NewAtom(3))
	if a.Label() != b.Label() {
		t.Fatalf("structurally identical rules must share a label")
	}
	if a.Label() == c.Label() {
		t.Fatalf("structurally distinct rules must not share a label")
	}
}

func TestEvalAtomSelfEvaluates(t *testing.T) {
	out, err := Eval(rtree.NewAtom(4), rtree.Absent, bindings.New())
	if err != nil || !rtree.Equal(out, rtree.NewAtom(4)) {
		t.Fatalf("expected Atom to evaluate to itself")
	}
}

func TestEvalGroupPadsWithNoNode(t *testing.T) {
	template := rtree.NewGroup(1, []rtree.Node{rtree.NewMatchPoint(1)})
	env := bindings.New().Plus(1, rtree.NewAtom(9))
	out, err := Eval(template, rtree.Absent, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := rtree.NewGroup(1, []rtree.Node{rtree.NewAtom(9)})
	if !rtree.Equal(out, want) {
		t.Fatalf("got %#v, want %#v", out, want)
	}
}
