package ebnflex

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/combo/ebnf/grammar"
	"github.com/google/go-cmp/cmp"
)

const tokenGrammar = `
	Tokens = { ident | number | space | op } .
	ident  = letter { letter | digit } .
	number = digit { digit } .
	space  = " " | "\n" .
	op     = "==" | "=" | "+" .
	letter = "a" … "z" .
	digit  = "0" … "9" .
`

func compileTokens(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Parse("tokens.ebnf", strings.NewReader(tokenGrammar))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	compiled, err := grammar.Compile(g, "Tokens")
	if err != nil {
		t.Fatalf("compile grammar: %v", err)
	}
	return compiled
}

func TestTokenize(t *testing.T) {
	g := compileTokens(t)
	lexer := NewLexer(g, []byte("ab1 = 42\n+x?"), "")

	tokens, err := lexer.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []Token{
		{Kind: "ident", Literal: "ab1", Position: Position{Offset: 0, Line: 1, Column: 1}},
		{Kind: "space", Literal: " ", Position: Position{Offset: 3, Line: 1, Column: 4}},
		{Kind: "op", Literal: "=", Position: Position{Offset: 4, Line: 1, Column: 5}},
		{Kind: "space", Literal: " ", Position: Position{Offset: 5, Line: 1, Column: 6}},
		{Kind: "number", Literal: "42", Position: Position{Offset: 6, Line: 1, Column: 7}},
		{Kind: "space", Literal: "\n", Position: Position{Offset: 8, Line: 1, Column: 9}},
		{Kind: "op", Literal: "+", Position: Position{Offset: 9, Line: 2, Column: 1}},
		{Kind: "ident", Literal: "x", Position: Position{Offset: 10, Line: 2, Column: 2}},
		{Kind: "ERROR", Literal: "?", Position: Position{Offset: 11, Line: 2, Column: 3}},
		{Kind: "EOF", Position: Position{Offset: 12, Line: 2, Column: 4}},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLongestMatchWins(t *testing.T) {
	g := compileTokens(t)

	tests := []struct {
		input   string
		kind    string
		literal string
	}{
		{"==", "op", "=="},
		{"abc", "ident", "abc"},
		{"123", "number", "123"},
		// digit and number both match one byte; digit sorts first.
		{"7", "digit", "7"},
		// ident and letter tie on a single letter.
		{"q", "ident", "q"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, err := NewLexer(g, []byte(tt.input), "").NextToken()
			if err != nil {
				t.Fatalf("NextToken: %v", err)
			}
			if tok.Kind != tt.kind || tok.Literal != tt.literal {
				t.Errorf("NextToken = %s %q, want %s %q", tok.Kind, tok.Literal, tt.kind, tt.literal)
			}
		})
	}
}

func TestUnmatchedRuneIsOneErrorToken(t *testing.T) {
	g := compileTokens(t)
	tokens, err := NewLexer(g, []byte("€a"), "").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []Token{
		{Kind: "ERROR", Literal: "€", Position: Position{Offset: 0, Line: 1, Column: 1}},
		{Kind: "ident", Literal: "a", Position: Position{Offset: 3, Line: 1, Column: 2}},
		{Kind: "EOF", Position: Position{Offset: 4, Line: 1, Column: 3}},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestNextTokenAtEOF(t *testing.T) {
	g := compileTokens(t)
	lexer := NewLexer(g, nil, "empty.txt")

	tok, err := lexer.NextToken()
	if err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if tok.Kind != "EOF" {
		t.Errorf("Kind = %q, want EOF", tok.Kind)
	}
	if got := tok.Position.String(); got != "empty.txt:1:1" {
		t.Errorf("Position = %q, want %q", got, "empty.txt:1:1")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: "ident", Literal: "x", Position: Position{Line: 2, Column: 5}}
	if got, want := tok.String(), `2:5 ident "x"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLoadGrammar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.ebnf")
	if err := os.WriteFile(path, []byte(tokenGrammar), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadGrammar(path, "Tokens")
	if err != nil {
		t.Fatalf("LoadGrammar: %v", err)
	}
	if g.Start() != "Tokens" {
		t.Errorf("Start = %q, want Tokens", g.Start())
	}

	if _, err := LoadGrammar(path, "nothing"); err == nil {
		t.Errorf("LoadGrammar with a missing start production succeeded")
	}
}
