package treeload

import (
	"testing"

	"github.com/dhax/ttrw/lex"
	"github.com/dhax/ttrw/rtree"
	"github.com/dhax/ttrw/symtab"
)

func TestLoadWrapsEachTokenInAOneChildGroup(t *testing.T) {
	tab := symtab.New()
	tz, err := lex.New("foo 1")
	if err != nil {
		t.Fatalf("lex.New: %v", err)
	}
	tree, err := Load(tz, tab)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tree.Kind() != rtree.Group || tree.Symbol() != tab.Intern("document") {
		t.Fatalf("expected a document-named Group root")
	}
	children := tree.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].Symbol() != tab.Intern("ident") {
		t.Fatalf("expected first child kind 'ident'")
	}
	inner := children[0].Children()
	if len(inner) != 1 || inner[0].Kind() != rtree.Atom || inner[0].Symbol() != tab.Intern("foo") {
		t.Fatalf("expected Atom(intern(\"foo\")) inside the ident group")
	}
	if children[1].Symbol() != tab.Intern("num") {
		t.Fatalf("expected second child kind 'num'")
	}
}

func TestLoadOnEmptyInputYieldsEmptyDocument(t *testing.T) {
	tab := symtab.New()
	tz, err := lex.New("")
	if err != nil {
		t.Fatalf("lex.New: %v", err)
	}
	tree, err := Load(tz, tab)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tree.Children()) != 0 {
		t.Fatalf("expected no children for empty input")
	}
}
