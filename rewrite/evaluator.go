package rewrite

import (
	"fmt"

	"github.com/dhax/ttrw/bindings"
	"github.com/dhax/ttrw/rtree"
)

// Eval builds a new ordinary node tree from an RHS template, given the
// environment the matcher produced and a reference target — the node
// the LHS originally matched. The reference supplies the original
// children a Sequence splices its replacement back around.
func Eval(template, reference rtree.Node, env bindings.Bindings) (rtree.Node, error) {
	switch template.Kind() {

	case rtree.MatchPoint:
		bound, ok := env.Find(template.Symbol())
		if !ok {
			return rtree.Node{}, &TemplateError{
				Reason: fmt.Sprintf("match point %d is unbound", template.Symbol()),
			}
		}
		return bound.Clone(), nil

	case rtree.Group:
		var rchildren []rtree.Node
		if reference.Kind() == rtree.Group {
			rchildren = reference.Children()
		}
		lchildren := template.Children()
		out := make([]rtree.Node, len(lchildren))
		for i, lc := range lchildren {
			refChild := rtree.Absent
			if i < len(rchildren) {
				refChild = rchildren[i]
			}
			child, err := Eval(lc, refChild, env)
			if err != nil {
				return rtree.Node{}, err
			}
			out[i] = child
		}
		return rtree.NewGroup(template.Symbol(), out), nil

	case rtree.Sequence:
		if reference.Kind() != rtree.Group {
			return rtree.Node{}, &TemplateError{
				Reason: "sequence template requires a Group reference",
			}
		}
		bound, ok := env.Find(template.Symbol())
		if !ok {
			return rtree.Node{}, &TemplateError{
				Reason: fmt.Sprintf("sequence variable %d is unbound", template.Symbol()),
			}
		}
		if bound.Kind() != rtree.SplicePair {
			return rtree.Node{}, &TemplateError{
				Reason: fmt.Sprintf("sequence variable %d is not bound to a splice", template.Symbol()),
			}
		}
		sidx, slen := bound.Splice()
		rchildren := reference.Children()

		lchildren := template.Children()
		window := make([]rtree.Node, len(lchildren))
		for k, lc := range lchildren {
			refChild := rtree.Absent
			idx := sidx + k
			if idx < len(rchildren) {
				refChild = rchildren[idx]
			}
			child, err := Eval(lc, refChild, env)
			if err != nil {
				return rtree.Node{}, err
			}
			window[k] = child
		}

		prefixEnd := sidx
		if prefixEnd > len(rchildren) {
			prefixEnd = len(rchildren)
		}
		suffixStart := sidx + slen
		if suffixStart > len(rchildren) {
			suffixStart = len(rchildren)
		}

		out := make([]rtree.Node, 0, prefixEnd+len(window)+(len(rchildren)-suffixStart))
		out = append(out, rchildren[:prefixEnd]...)
		out = append(out, window...)
		out = append(out, rchildren[suffixStart:]...)
		return rtree.NewGroup(reference.Symbol(), out), nil

	default:
		// Atom evaluates to itself; Conjunctor/Disjunctor/Negator/
		// SplicePair/NoNode are not valid RHS constructs but pass
		// through unchanged, as the algorithm specifies.
		return template.Clone(), nil
	}
}
