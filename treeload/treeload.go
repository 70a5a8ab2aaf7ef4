// Package treeload converts a token stream into the initial document
// tree the rewriting engine works on: a single Group named "document"
// whose children are one-child Groups, one per token.
package treeload

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/dhax/ttrw/lex"
	"github.com/dhax/ttrw/rtree"
	"github.com/dhax/ttrw/symtab"
)

// tracer traces with key 'ttrw.treeload'.
func tracer() tracing.Trace {
	return tracing.Select("ttrw.treeload")
}

// Load drains tz completely and wraps every token it produces in
// Group(intern(kind), [Atom(intern(lexeme))]), all under a root
// Group(intern("document"), children). The kind names match the
// tokenizer's own vocabulary: "string", "oper", "num", "ident".
func Load(tz *lex.Tokenizer, tab *symtab.Table) (rtree.Node, error) {
	var children []rtree.Node
	for {
		tok, err := tz.Next()
		if err != nil {
			return rtree.Node{}, err
		}
		if tok.Kind == lex.EOF {
			break
		}
		kindSym := tab.Intern(kindName(tok.Kind))
		lexSym := tab.Intern(tok.Lexeme)
		children = append(children, rtree.NewGroup(kindSym, []rtree.Node{rtree.NewAtom(lexSym)}))
	}
	tracer().Debugf("loaded document with %d tokens", len(children))
	return rtree.NewGroup(tab.Intern("document"), children), nil
}

func kindName(k lex.Kind) string {
	switch k {
	case lex.String:
		return "string"
	case lex.Operator:
		return "oper"
	case lex.Number:
		return "num"
	case lex.Identifier:
		return "ident"
	default:
		return "?"
	}
}
