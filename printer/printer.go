// Package printer renders trees for humans: a compact one-line form
// for the CLI's normal-form output, and an indented one-node-per-line
// debug dump for interactive inspection. Both mirror the two printers
// the original implementation shipped side by side (a compact printer
// and a verbose debug printer over the same node model).
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhax/ttrw/rtree"
	"github.com/dhax/ttrw/symtab"
)

// Sprint renders n in the compact form: an Atom as a quoted string, a
// Group(name, children) as name[c1, c2, …], a MatchPoint as <name>, a
// Sequence as <name>[c1, c2, …], a Conjunctor as &[…], a Disjunctor as
// |[…], a Negator as !child, a SplicePair as SPLICE_PAIR(START:s,LEN:l)
// and NoNode as NO_NODE.
func Sprint(n rtree.Node, tab *symtab.Table) string {
	var b strings.Builder
	sprint(&b, n, tab)
	return b.String()
}

func sprint(b *strings.Builder, n rtree.Node, tab *symtab.Table) {
	switch n.Kind() {
	case rtree.Atom:
		b.WriteString(strconv.Quote(tab.Lookup(n.Symbol())))
	case rtree.Group:
		b.WriteString(tab.Lookup(n.Symbol()))
		sprintChildren(b, n.Children(), tab)
	case rtree.MatchPoint:
		b.WriteByte('<')
		b.WriteString(tab.Lookup(n.Symbol()))
		b.WriteByte('>')
	case rtree.Sequence:
		b.WriteByte('<')
		b.WriteString(tab.Lookup(n.Symbol()))
		b.WriteByte('>')
		sprintChildren(b, n.Children(), tab)
	case rtree.Conjunctor:
		b.WriteByte('&')
		sprintChildren(b, n.Children(), tab)
	case rtree.Disjunctor:
		b.WriteByte('|')
		sprintChildren(b, n.Children(), tab)
	case rtree.Negator:
		b.WriteByte('!')
		sprint(b, n.Inner(), tab)
	case rtree.SplicePair:
		start, length := n.Splice()
		fmt.Fprintf(b, "SPLICE_PAIR(START:%d,LEN:%d)", start, length)
	case rtree.NoNode:
		b.WriteString("NO_NODE")
	}
}

func sprintChildren(b *strings.Builder, children []rtree.Node, tab *symtab.Table) {
	b.WriteByte('[')
	for i, c := range children {
		if i > 0 {
			b.WriteString(", ")
		}
		sprint(b, c, tab)
	}
	b.WriteByte(']')
}

// SprintTree renders n as an indented, one-node-per-line dump, useful
// for interactively inspecting intermediate trees — the same role the
// original implementation's debug_print played alongside its compact
// printer.
func SprintTree(n rtree.Node, tab *symtab.Table) string {
	var b strings.Builder
	sprintTree(&b, n, tab, 0)
	return b.String()
}

func sprintTree(b *strings.Builder, n rtree.Node, tab *symtab.Table, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind() {
	case rtree.Atom:
		fmt.Fprintf(b, "%sAtom(%s)\n", indent, strconv.Quote(tab.Lookup(n.Symbol())))
	case rtree.Group:
		fmt.Fprintf(b, "%sGroup(%s)\n", indent, tab.Lookup(n.Symbol()))
		for _, c := range n.Children() {
			sprintTree(b, c, tab, depth+1)
		}
	case rtree.MatchPoint:
		fmt.Fprintf(b, "%sMatchPoint(%s)\n", indent, tab.Lookup(n.Symbol()))
	case rtree.Sequence:
		fmt.Fprintf(b, "%sSequence(%s)\n", indent, tab.Lookup(n.Symbol()))
		for _, c := range n.Children() {
			sprintTree(b, c, tab, depth+1)
		}
	case rtree.Conjunctor:
		fmt.Fprintf(b, "%sConjunctor\n", indent)
		for _, c := range n.Children() {
			sprintTree(b, c, tab, depth+1)
		}
	case rtree.Disjunctor:
		fmt.Fprintf(b, "%sDisjunctor\n", indent)
		for _, c := range n.Children() {
			sprintTree(b, c, tab, depth+1)
		}
	case rtree.Negator:
		fmt.Fprintf(b, "%sNegator\n", indent)
		sprintTree(b, n.Inner(), tab, depth+1)
	case rtree.SplicePair:
		start, length := n.Splice()
		fmt.Fprintf(b, "%sSplicePair(start:%d, len:%d)\n", indent, start, length)
	case rtree.NoNode:
		fmt.Fprintf(b, "%sNoNode\n", indent)
	}
}
