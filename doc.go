/*
Package ttrw is a tree term-rewriting engine.

Given an initial tree and an ordered list of rewrite rules, the engine
repeatedly applies the first applicable rule to the tree until no rule
fires, returning the normal form. Package structure:

■ symtab: bijective mapping between strings and compact integer symbols.

■ rtree: the algebraic tree data model (ordinary nodes, pattern nodes,
and the internal splice/placeholder variants).

■ bindings: a persistent binding environment threaded through matching.

■ rewrite: the matcher, evaluator, rule and fixed-point driver — the
core rewriting kernel.

■ lex: a tokenizer for a small C-like input stream.

■ treeload: converts a token stream into an initial document tree.

■ bootstrap: a fixed ruleset that turns a parsed document tree into
pattern trees, bootstrapping a surface syntax for authoring rules.

■ printer: pretty-printing of trees, for the CLI and REPL.

The cmd/ttrw and cmd/ttrepl packages provide, respectively, a
batch CLI and an interactive sandbox built on top of the above.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ttrw
