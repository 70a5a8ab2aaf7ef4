// Package lex tokenizes a small C-like character stream into the four
// token kinds the rest of the pipeline expects: strings, operators,
// numbers and identifiers, plus an end-of-stream sentinel.
//
// The teacher's own surface-language tokenizer (terex/terexlang/scan.go)
// builds on a lexmachine DFA rather than a hand-rolled character-by-
// character scanner; this package follows the same approach. The one
// piece of hand-rolled logic the DFA cannot express is the distinction
// between "ordinary end of input" and "end of input inside an
// unterminated /* */ comment", which the specification requires to be
// silently treated as end-of-stream rather than an error — that check
// is done directly against the remaining input bytes, whenever
// lexmachine yields a lone "/" operator or reports it can't consume
// any more.
package lex

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttrw.lex'.
func tracer() tracing.Trace {
	return tracing.Select("ttrw.lex")
}

// Kind classifies a Token.
type Kind int

const (
	String Kind = iota
	Operator
	Number
	Identifier
	EOF
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Operator:
		return "oper"
	case Number:
		return "num"
	case Identifier:
		return "ident"
	case EOF:
		return "eof"
	default:
		return "?"
	}
}

// Token is one scanned lexeme.
type Token struct {
	Kind   Kind
	Lexeme string
}

// LexError reports a tokenization failure: an unterminated string, a
// malformed escape, or a character no rule recognizes. It is always
// fatal, matching the specification's error taxonomy.
type LexError struct {
	Reason string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: %s", e.Reason)
}

const punctuation = "`~!@#$%^&*()+-=[]\\{}|;:,./<>?"

var (
	compileOnce sync.Once
	compiled    *lexmachine.Lexer
	compileErr  error
)

type tokValue struct {
	kind   Kind
	lexeme string
}

func regexLiteral(ch byte) string {
	return "\\" + string(ch)
}

func buildLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()

	lexer.Add([]byte(`( |\t|\r|\n)+`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	})

	lexer.Add([]byte(`/\*([^*]|\*+[^*/])*\*+/`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	})

	lexer.Add([]byte(`[A-Za-z_][A-Za-z_0-9]*`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return tokValue{Identifier, string(m.Bytes)}, nil
	})

	lexer.Add([]byte(`[0-9]+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return tokValue{Number, string(m.Bytes)}, nil
	})

	lexer.Add([]byte(`"([^"\\]|\\x[0-9a-fA-F]+|\\0[0-7]+|\\.)*"`),
		func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			decoded, err := decodeEscapes(string(m.Bytes))
			if err != nil {
				return nil, err
			}
			return tokValue{String, decoded}, nil
		})
	lexer.Add([]byte(`'([^'\\]|\\x[0-9a-fA-F]+|\\0[0-7]+|\\.)*'`),
		func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			decoded, err := decodeEscapes(string(m.Bytes))
			if err != nil {
				return nil, err
			}
			return tokValue{String, decoded}, nil
		})

	for i := 0; i < len(punctuation); i++ {
		ch := punctuation[i]
		lexeme := string(ch)
		lexer.Add([]byte(regexLiteral(ch)), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return tokValue{Operator, lexeme}, nil
		})
	}

	if err := lexer.Compile(); err != nil {
		return nil, err
	}
	return lexer, nil
}

// decodeEscapes strips the surrounding quote characters and resolves
// escapes: n, t, r, ", ', \xHH… (hex, as many digits as the DFA
// matched) and \0ooo… (octal) map to their usual values; any other
// escaped byte passes through as itself, matching ctok.rs's
// ESCAPES.get(&ty).unwrap_or(&ty) fallback.
func decodeEscapes(raw string) (string, error) {
	body := raw[1 : len(raw)-1]
	var out strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", &LexError{Reason: "unterminated escape at end of string"}
		}
		switch body[i] {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case '"':
			out.WriteByte('"')
		case '\'':
			out.WriteByte('\'')
		case '\\':
			out.WriteByte('\\')
		case 'x':
			j := i + 1
			for j < len(body) && isHexDigit(body[j]) {
				j++
			}
			if j == i+1 {
				return "", &LexError{Reason: "malformed hex escape constant"}
			}
			v, err := strconv.ParseUint(body[i+1:j], 16, 32)
			if err != nil {
				return "", &LexError{Reason: "malformed hex escape constant: " + err.Error()}
			}
			out.WriteRune(rune(v))
			i = j - 1
		case '0':
			j := i + 1
			for j < len(body) && isOctDigit(body[j]) {
				j++
			}
			v, err := strconv.ParseUint(body[i:j], 8, 32)
			if err != nil {
				return "", &LexError{Reason: "malformed octal escape constant: " + err.Error()}
			}
			out.WriteRune(rune(v))
			i = j - 1
		default:
			out.WriteByte(body[i])
		}
	}
	return out.String(), nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// Tokenizer scans one input stream into a sequence of Tokens.
type Tokenizer struct {
	input   []byte
	scanner *lexmachine.Scanner
}

// New builds a Tokenizer over the given input. The underlying DFA is
// compiled once per process and reused across Tokenizer instances.
func New(input string) (*Tokenizer, error) {
	compileOnce.Do(func() {
		compiled, compileErr = buildLexer()
	})
	if compileErr != nil {
		return nil, compileErr
	}
	raw := []byte(input)
	s, err := compiled.Scanner(raw)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{input: raw, scanner: s}, nil
}

// Next returns the next token. At end of input it returns a Token of
// Kind EOF with no error. An unterminated /* */ comment that runs to
// end of input is also reported as a plain EOF token — the
// specification treats that case as silent, non-fatal termination,
// not as a LexError.
func (tz *Tokenizer) Next() (Token, error) {
	for {
		tok, err, eof := tz.scanner.Next()
		if eof {
			return Token{Kind: EOF}, nil
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				if tz.looksLikeUnterminatedComment(ui.FailTC) {
					tracer().Debugf("unterminated block comment at byte %d treated as end of input", ui.FailTC)
					return Token{Kind: EOF}, nil
				}
				return Token{}, &LexError{
					Reason: fmt.Sprintf("no tokenizer rule applies at byte %d (%q)", ui.FailTC, remainingPreview(tz.input, ui.FailTC)),
				}
			}
			if le, ok := err.(*LexError); ok {
				return Token{}, le
			}
			return Token{}, &LexError{Reason: err.Error()}
		}
		v, ok := tok.(tokValue)
		if !ok {
			// A skip rule (whitespace, block comment) fired; keep scanning.
			continue
		}
		// An unterminated "/*" leaves lexmachine falling back to its
		// longest match, the single "/" operator.
		if v.kind == Operator && v.lexeme == "/" && tz.looksLikeUnterminatedComment(tz.scanner.TC-1) {
			tracer().Debugf("unterminated block comment at byte %d treated as end of input", tz.scanner.TC-1)
			return Token{Kind: EOF}, nil
		}
		return Token{Kind: v.kind, Lexeme: v.lexeme}, nil
	}
}

func (tz *Tokenizer) looksLikeUnterminatedComment(at int) bool {
	rest := tz.input[at:]
	if !strings.HasPrefix(string(rest), "/*") {
		return false
	}
	return !strings.Contains(string(rest), "*/")
}

func remainingPreview(input []byte, at int) string {
	end := at + 8
	if end > len(input) {
		end = len(input)
	}
	return string(input[at:end])
}
