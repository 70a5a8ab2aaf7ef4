// Package symtab implements the engine's symbol table: a bijective
// mapping between strings and compact integer symbols, stable for the
// lifetime of the process.
package symtab

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttrw.symtab'.
func tracer() tracing.Trace {
	return tracing.Select("ttrw.symtab")
}

// Symbol is an opaque, non-negative integer identifier interned from a
// string. Structural tree equality reduces to integer equality by
// comparing symbols rather than their underlying strings.
type Symbol int

// NoSymbol is a sentinel for "no symbol"; it is never produced by
// Intern.
const NoSymbol Symbol = -1

// Table is a process-lifetime, bijective string<->Symbol mapping.
//
// A Table is safe for concurrent Intern/Lookup calls, though the
// engine itself is single-threaded; symbols are minted only while
// constructing rules and the initial tree, both of which happen before
// rewriting begins.
type Table struct {
	mu      sync.RWMutex
	strToID map[string]Symbol
	idToStr []string
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{
		strToID: make(map[string]Symbol),
	}
}

// Intern assigns a string a successive integer symbol in first-seen
// order. Interning the same string twice returns the same symbol
// (idempotent).
func (t *Table) Intern(s string) Symbol {
	t.mu.RLock()
	if id, ok := t.strToID[s]; ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.strToID[s]; ok { // re-check under write lock
		return id
	}
	id := Symbol(len(t.idToStr))
	t.strToID[s] = id
	t.idToStr = append(t.idToStr, s)
	tracer().Debugf("interned %q as symbol %d", s, id)
	return id
}

// Lookup is total on previously interned symbols; it panics on an
// out-of-range symbol, since that indicates a symbol minted by a
// different table or outright corruption.
func (t *Table) Lookup(sym Symbol) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if sym < 0 || int(sym) >= len(t.idToStr) {
		panic(fmt.Sprintf("symtab: symbol %d was never interned", sym))
	}
	return t.idToStr[sym]
}

// Len returns the number of interned symbols.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.idToStr)
}

// SortedNames returns every interned name in lexical order, useful for
// deterministic debug dumps. It is built from a treeset rather than
// sorting a freshly allocated slice by hand, mirroring the teacher's
// use of emirpasic/gods sets for deterministic table dumps.
func (t *Table) SortedNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	set := treeset.NewWith(utils.StringComparator)
	for _, s := range t.idToStr {
		set.Add(s)
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}
