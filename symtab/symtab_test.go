package symtab

import "testing"

func TestInternIsIdempotent(t *testing.T) {
	tab := New()
	a := tab.Intern("foo")
	b := tab.Intern("bar")
	c := tab.Intern("foo")
	if a != c {
		t.Fatalf("interning %q twice gave different symbols: %d vs %d", "foo", a, c)
	}
	if a == b {
		t.Fatalf("distinct strings interned to the same symbol")
	}
}

func TestInternFirstSeenOrder(t *testing.T) {
	tab := New()
	first := tab.Intern("alpha")
	second := tab.Intern("beta")
	if first != 0 || second != 1 {
		t.Fatalf("expected successive ids starting at 0, got %d, %d", first, second)
	}
}

func TestLookupIsTotal(t *testing.T) {
	tab := New()
	sym := tab.Intern("hello")
	if got := tab.Lookup(sym); got != "hello" {
		t.Fatalf("Lookup(%d) = %q, want %q", sym, got, "hello")
	}
}

func TestLookupUninternedPanics(t *testing.T) {
	tab := New()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic looking up an uninterned symbol")
		}
	}()
	tab.Lookup(42)
}

func TestSortedNames(t *testing.T) {
	tab := New()
	tab.Intern("zeta")
	tab.Intern("alpha")
	tab.Intern("mu")
	names := tab.SortedNames()
	want := []string{"alpha", "mu", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}
