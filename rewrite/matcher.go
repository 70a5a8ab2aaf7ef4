package rewrite

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dhax/ttrw/bindings"
	"github.com/dhax/ttrw/rtree"
)

// tracer traces with key 'ttrw.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("ttrw.rewrite")
}

// Match is the structural recursion pairing a pattern node with a
// target node, producing an extended environment. On failure the
// returned Bindings equals the input env; the caller never has to
// undo a partial match. An error return indicates the pattern itself
// is malformed (a PatternShapeError), never an ordinary mismatch.
func Match(pattern, target rtree.Node, env bindings.Bindings) (bool, bindings.Bindings, error) {
	switch pattern.Kind() {

	case rtree.Atom:
		if target.Kind() == rtree.Atom && pattern.Symbol() == target.Symbol() {
			return true, env, nil
		}
		return false, env, nil

	case rtree.Group:
		if target.Kind() != rtree.Group || pattern.Symbol() != target.Symbol() {
			return false, env, nil
		}
		lc, rc := pattern.Children(), target.Children()
		if len(lc) != len(rc) {
			return false, env, nil
		}
		return matchAligned(lc, rc, env)

	case rtree.MatchPoint:
		v := pattern.Symbol()
		if bound, ok := env.Find(v); ok {
			// Consistency check: re-match using the previously bound
			// node as the pattern.
			return Match(bound, target, env)
		}
		tracer().Debugf("binding match point %d to %s", v, target.Kind())
		return true, env.Plus(v, target.Clone()), nil

	case rtree.Sequence:
		return matchSequence(pattern, target, env)

	case rtree.Conjunctor:
		orig := env
		cur := env
		for _, p := range pattern.Children() {
			ok, next, err := Match(p, target, cur)
			if err != nil {
				return false, orig, err
			}
			if !ok {
				return false, orig, nil
			}
			cur = next
		}
		return true, cur, nil

	case rtree.Disjunctor:
		for _, p := range pattern.Children() {
			ok, next, err := Match(p, target, env.Clone())
			if err != nil {
				return false, env, err
			}
			if ok {
				return true, next, nil
			}
		}
		return false, env, nil

	case rtree.Negator:
		ok, _, err := Match(pattern.Inner(), target, env)
		if err != nil {
			return false, env, err
		}
		return !ok, env, nil

	default:
		return false, env, &PatternShapeError{
			Reason: fmt.Sprintf("%s is not a valid LHS construct", pattern.Kind()),
		}
	}
}

// matchAligned matches two equal-length child slices pairwise,
// left-to-right, threading the environment. The first failing pair
// aborts the whole call back to the env it was entered with.
func matchAligned(lchildren, rchildren []rtree.Node, env bindings.Bindings) (bool, bindings.Bindings, error) {
	orig := env
	cur := env
	for i := range lchildren {
		ok, next, err := Match(lchildren[i], rchildren[i], cur)
		if err != nil {
			return false, orig, err
		}
		if !ok {
			return false, orig, nil
		}
		cur = next
	}
	return true, cur, nil
}

// matchSequence implements Sequence(v, lchildren) vs a target: a
// first-fit search, from i = 0 upward, for the smallest window inside
// the target Group's children that lchildren matches pairwise.
func matchSequence(pattern, target rtree.Node, env bindings.Bindings) (bool, bindings.Bindings, error) {
	if target.Kind() != rtree.Group {
		return false, env, nil
	}
	v := pattern.Symbol()
	lchildren := pattern.Children()
	rchildren := target.Children()
	llen, rlen := len(lchildren), len(rchildren)
	if llen > rlen {
		return false, env, nil
	}
	limit := rlen - llen + 1
	for i := 0; i < limit; i++ {
		ok, next, err := matchAligned(lchildren, rchildren[i:i+llen], env)
		if err != nil {
			return false, env, err
		}
		if ok {
			return true, next.Plus(v, rtree.NewSplicePair(i, llen)), nil
		}
	}
	return false, env, nil
}
