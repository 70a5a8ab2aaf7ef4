// Command ttrepl is an interactive sandbox for experimenting with
// trees and rulesets, built in the idiom of gorgo's terexlang/trepl:
// a readline loop over small commands, backed by pterm for colored
// status lines and tree rendering.
//
// It is supplemental tooling outside the core engine's spec: it does
// not change rewriting semantics, it just gives a human a place to
// poke at the bootstrap ruleset and ad hoc surface-syntax snippets one
// line at a time.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dhax/ttrw/bootstrap"
	"github.com/dhax/ttrw/lex"
	"github.com/dhax/ttrw/printer"
	"github.com/dhax/ttrw/rewrite"
	"github.com/dhax/ttrw/rtree"
	"github.com/dhax/ttrw/symtab"
	"github.com/dhax/ttrw/treeload"
)

func tracer() tracing.Trace {
	return tracing.Select("ttrw.ttrepl")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load script")
	flag.Parse()
	tracing.Select("ttrw.ttrepl").SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	pterm.Info.Println("Welcome to TTREPL")
	tracer().Infof("Quit with <ctrl>D")

	rl, err := readline.New("ttrepl> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer rl.Close()

	sess := newSession()
	sess.loadInitFile(*initf)
	sess.loop(rl)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// session holds the state one ttrepl invocation threads through its
// commands: a symbol table shared across every tree loaded in the
// session, the bootstrap ruleset, and the current working tree.
type session struct {
	tab   *symtab.Table
	rules rewrite.RuleSet
	tree  rtree.Node
	has   bool
}

func newSession() *session {
	tab := symtab.New()
	return &session{
		tab:   tab,
		rules: bootstrap.Rules(tab),
	}
}

func (s *session) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := s.eval(line); err != nil {
			tracer().Errorf("%v", err)
		}
	}
}

func (s *session) loop(rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if err := s.eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Println("Good bye!")
}

// eval dispatches a single REPL line. Commands:
//
//	load <source>   lex <source> and load it as the working document tree
//	run             run the bootstrap ruleset to quiescence over the working tree
//	print           print the working tree, compact form
//	tree            print the working tree, indented debug form
func (s *session) eval(line string) error {
	cmd, rest := splitCommand(line)
	switch cmd {
	case "load":
		return s.load(rest)
	case "run":
		return s.run()
	case "print":
		if !s.has {
			pterm.Info.Println("no tree loaded")
			return nil
		}
		pterm.Println(printer.Sprint(s.tree, s.tab))
		return nil
	case "tree":
		if !s.has {
			pterm.Info.Println("no tree loaded")
			return nil
		}
		ll := leveledList(s.tree, s.tab, nil, 0)
		root := pterm.NewTreeFromLeveledList(ll)
		return pterm.DefaultTree.WithRoot(root).Render()
	default:
		// Bare input with no recognized command is treated as "load"
		// followed immediately by "run", the common case of pasting a
		// surface-syntax snippet and wanting its normal form at once.
		if err := s.load(line); err != nil {
			return err
		}
		return s.run()
	}
}

func splitCommand(line string) (cmd, rest string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func (s *session) load(source string) error {
	tz, err := lex.New(source)
	if err != nil {
		return err
	}
	doc, err := treeload.Load(tz, s.tab)
	if err != nil {
		return err
	}
	s.tree = doc
	s.has = true
	return nil
}

func (s *session) run() error {
	if !s.has {
		pterm.Info.Println("no tree loaded")
		return nil
	}
	final, iterations, err := rewrite.Run(s.tree, s.rules)
	if err != nil {
		return err
	}
	s.tree = final
	pterm.Info.Println(fmt.Sprintf("%d iters", iterations))
	pterm.Println(printer.Sprint(s.tree, s.tab))
	return nil
}

// leveledList flattens n into a pterm.LeveledList for pterm.NewTreeFromLeveledList,
// the same recursive flattening trepl's leveledElem does for a GCons AST —
// here walking an rtree.Node's Kind-tagged child/inner slots instead of a
// cons cell's Car/Cdr.
func leveledList(n rtree.Node, tab *symtab.Table, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch n.Kind() {
	case rtree.Atom:
		return append(ll, pterm.LeveledListItem{Level: level, Text: printer.Sprint(n, tab)})
	case rtree.Group, rtree.Sequence:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: tab.Lookup(n.Symbol())})
		for _, c := range n.Children() {
			ll = leveledList(c, tab, ll, level+1)
		}
		return ll
	case rtree.MatchPoint:
		return append(ll, pterm.LeveledListItem{Level: level, Text: "<" + tab.Lookup(n.Symbol()) + ">"})
	case rtree.Conjunctor, rtree.Disjunctor:
		label := "&"
		if n.Kind() == rtree.Disjunctor {
			label = "|"
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
		for _, c := range n.Children() {
			ll = leveledList(c, tab, ll, level+1)
		}
		return ll
	case rtree.Negator:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "!"})
		return leveledList(n.Inner(), tab, ll, level+1)
	default:
		return append(ll, pterm.LeveledListItem{Level: level, Text: printer.Sprint(n, tab)})
	}
}
