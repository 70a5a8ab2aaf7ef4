package lex

import "testing"

func allTokens(t *testing.T, input string) []Token {
	t.Helper()
	tz, err := New(input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out []Token
	for {
		tok, err := tz.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if tok.Kind == EOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestIdentifiersNumbersOperators(t *testing.T) {
	toks := allTokens(t, "foo 42 + bar_1")
	want := []Token{
		{Identifier, "foo"}, {Number, "42"}, {Operator, "+"}, {Identifier, "bar_1"},
	}
	assertTokens(t, toks, want)
}

func TestStringWithEscapes(t *testing.T) {
	toks := allTokens(t, `"a\nb\tc\x41\061"`)
	if len(toks) != 1 || toks[0].Kind != String {
		t.Fatalf("expected a single string token, got %v", toks)
	}
	want := "a\nb\tc\x41\061"
	if toks[0].Lexeme != want {
		t.Fatalf("got %q, want %q", toks[0].Lexeme, want)
	}
}

func TestBlockCommentDiscarded(t *testing.T) {
	toks := allTokens(t, "a /* comment with * and stuff */ b")
	want := []Token{{Identifier, "a"}, {Identifier, "b"}}
	assertTokens(t, toks, want)
}

func TestUnterminatedBlockCommentIsSilentEOF(t *testing.T) {
	tz, err := New("a /* never closed")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tok, err := tz.Next()
	if err != nil || tok.Kind != Identifier || tok.Lexeme != "a" {
		t.Fatalf("expected leading identifier token, got %v err=%v", tok, err)
	}
	tok, err = tz.Next()
	if err != nil {
		t.Fatalf("unterminated comment must not be a LexError, got %v", err)
	}
	if tok.Kind != EOF {
		t.Fatalf("expected EOF after unterminated comment, got %v", tok)
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	tz, err := New(`"never closed`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = tz.Next()
	if err == nil {
		t.Fatalf("expected a LexError for an unterminated string")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
}

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
