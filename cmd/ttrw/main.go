// Command ttrw is the batch CLI described in §6.4: read a character
// stream from standard input, lex it, load it into a document tree,
// run the bootstrap ruleset on the document, print the iteration
// count followed by the pretty-printed normal form.
//
// With no flags the output matches §6.4 byte-for-byte; -trace adds an
// optional diagnostic stream on stderr and does not otherwise change
// behavior, mirroring how gorgo's trepl adds a -trace flag on top of
// its own no-flags-required default.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dhax/ttrw/bootstrap"
	"github.com/dhax/ttrw/lex"
	"github.com/dhax/ttrw/printer"
	"github.com/dhax/ttrw/rewrite"
	"github.com/dhax/ttrw/symtab"
	"github.com/dhax/ttrw/treeload"
)

func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*tlevel)
	tracing.Select("ttrw.rewrite").SetTraceLevel(level)
	tracing.Select("ttrw.lex").SetTraceLevel(level)
	tracing.Select("ttrw.treeload").SetTraceLevel(level)
	tracing.Select("ttrw.symtab").SetTraceLevel(level)

	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	tab := symtab.New()
	tz, err := lex.New(string(input))
	if err != nil {
		return err
	}
	doc, err := treeload.Load(tz, tab)
	if err != nil {
		return err
	}

	rules := bootstrap.Rules(tab)
	result, iterations, err := rewrite.Run(doc, rules)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d iters:\n", iterations)
	fmt.Fprintln(out, printer.Sprint(result, tab))
	return nil
}
