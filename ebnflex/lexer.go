// Package ebnflex provides lexical scanning based on EBNF grammars.
package ebnflex

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dhamidi/combo/combinator"
	"github.com/dhamidi/combo/ebnf/grammar"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("combo.ebnflex")

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

type rule struct {
	name    string
	matcher combinator.Parser[combinator.View]
}

// Lexer tokenizes input with the lexical productions of a compiled grammar.
type Lexer struct {
	rules    []rule
	rest     combinator.View
	filename string
	line     int
	column   int
}

// NewLexer creates a lexer for the given grammar and input. Every lexical
// production, i.e. one whose name does not start with an upper case letter,
// is a token kind.
func NewLexer(g *grammar.Grammar, input []byte, filename string) *Lexer {
	var rules []rule
	for _, name := range g.Productions() {
		if !grammar.IsLexical(name) {
			continue
		}
		m, err := g.Matcher(name)
		if err != nil {
			continue
		}
		rules = append(rules, rule{name: name, matcher: m})
	}
	return &Lexer{
		rules:    rules,
		rest:     combinator.NewView(string(input)),
		filename: filename,
		line:     1,
		column:   1,
	}
}

// LoadGrammar loads and compiles an EBNF grammar from a file, verifying it
// from the start production.
func LoadGrammar(filename, start string) (*grammar.Grammar, error) {
	g, err := grammar.Load(filename)
	if err != nil {
		return nil, err
	}
	compiled, err := grammar.Compile(g, start)
	if err != nil {
		return nil, fmt.Errorf("compile grammar: %w", err)
	}
	return compiled, nil
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.rest.Offset(),
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance(n int) combinator.View {
	text := l.rest.Take(n)
	for _, ch := range text.String() {
		if ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.rest = l.rest.Advance(n)
	return text
}

// NextToken returns the next token from the input.
// It tries every lexical production and returns the longest match; on a tie
// the production whose name sorts first wins.
func (l *Lexer) NextToken() (Token, error) {
	if l.rest.Empty() {
		return Token{Kind: "EOF", Position: l.Position()}, io.EOF
	}

	startPos := l.Position()

	var bestKind string
	var bestLen int
	for _, r := range l.rules {
		res, ok := r.matcher.Parse(l.rest)
		if !ok {
			continue
		}
		if n := l.rest.Consumed(res.Remainder).Len(); n > bestLen {
			bestLen = n
			bestKind = r.name
		}
	}

	if bestLen == 0 {
		// No match - emit single character as error token
		_, size := utf8.DecodeRuneInString(l.rest.String())
		text := l.advance(size)
		log.Debugf("%s: no token matches %q", startPos, text.String())
		return Token{
			Kind:     "ERROR",
			Literal:  text.String(),
			Position: startPos,
		}, nil
	}

	return Token{
		Kind:     bestKind,
		Literal:  l.advance(bestLen).String(),
		Position: startPos,
	}, nil
}

// Tokenize reads all tokens from input.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
