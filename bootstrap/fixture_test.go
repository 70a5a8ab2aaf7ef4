package bootstrap

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/dhax/ttrw/lex"
	"github.com/dhax/ttrw/printer"
	"github.com/dhax/ttrw/rewrite"
	"github.com/dhax/ttrw/symtab"
	"github.com/dhax/ttrw/treeload"
)

// TestFixtures drives every testdata/*.txtar archive through the full
// surface-syntax pipeline (lex, load, bootstrap, run) and compares the
// compact printed normal form against the archive's "want" section —
// the same golden-archive harness cuelang.org/go's tutorial tests use
// over .txtar fixtures.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no fixtures found under testdata/")
	}
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			a, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("ParseFile: %v", err)
			}
			source := fixtureSection(t, a, "source")
			want := strings.TrimSpace(fixtureSection(t, a, "want"))

			tab := symtab.New()
			tz, err := lex.New(source)
			if err != nil {
				t.Fatalf("lex.New: %v", err)
			}
			doc, err := treeload.Load(tz, tab)
			if err != nil {
				t.Fatalf("treeload.Load: %v", err)
			}
			final, _, err := rewrite.Run(doc, Rules(tab))
			if err != nil {
				t.Fatalf("rewrite.Run: %v", err)
			}
			got := printer.Sprint(final, tab)
			if got != want {
				t.Fatalf("got  %s\nwant %s", got, want)
			}
		})
	}
}

func fixtureSection(t *testing.T, a *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range a.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("archive has no %q section", name)
	return ""
}
