package rewrite

import "github.com/dhax/ttrw/rtree"

// Pass tries rules in list order against tree and returns the first
// one that fires, with its result. If no rule fires it returns
// (false, NoNode, nil).
func Pass(tree rtree.Node, rules RuleSet) (fired bool, result rtree.Node, err error) {
	for _, r := range rules {
		ok, out, err := r.Exec(tree)
		if err != nil {
			return false, rtree.Absent, err
		}
		if ok {
			return true, out, nil
		}
	}
	return false, rtree.Absent, nil
}

// Run drives tree to quiescence: it calls Pass repeatedly, replacing
// tree with the result whenever a rule fired, stopping the first time
// Pass reports nothing fired. It returns the final tree and the
// number of passes that fired — termination is not guaranteed and is
// entirely the ruleset's responsibility.
func Run(tree rtree.Node, rules RuleSet) (final rtree.Node, iterations int, err error) {
	cur := tree
	for {
		fired, next, err := Pass(cur, rules)
		if err != nil {
			return cur, iterations, err
		}
		if !fired {
			return cur, iterations, nil
		}
		cur = next
		iterations++
		tracer().Debugf("pass %d fired", iterations)
	}
}
