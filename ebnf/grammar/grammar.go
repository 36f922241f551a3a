// Package grammar compiles EBNF grammars into combinator parsers.
//
// Grammars use the notation of golang.org/x/exp/ebnf:
//
//	Production  = name "=" [ Expression ] "." .
//	Expression  = Alternative { "|" Alternative } .
//	Alternative = Term { Term } .
//	Term        = name | token [ "…" token ] | Group | Option | Repetition .
//	Group       = "(" Expression ")" .
//	Option      = "[" Expression "]" .
//	Repetition  = "{" Expression "}" .
//
// Each construct maps onto one combinator: tokens become Literal, ranges
// become Predicate, sequences Seq, alternatives an ordered Choice (the first
// alternative that matches wins), options OptionalView and repetitions Star.
// Matching is scannerless; whitespace must be spelled out in the grammar.
//
// Following golang.org/x/exp/ebnf, a production whose name does not start
// with an upper case letter is lexical: it is a token, may only refer to
// other lexical productions, and becomes a leaf in syntax trees. Productions
// starting with an upper case letter are syntactic and become interior nodes.
package grammar

import (
	"io"
	"os"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/combo/combinator"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"
)

var log = commonlog.GetLogger("combo.grammar")

// Parse reads an EBNF grammar from r. filename is used in error positions.
func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrapf(err, "parse grammar %s", filename)
	}
	return g, nil
}

// Load reads an EBNF grammar from a file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open grammar")
	}
	defer f.Close()

	return Parse(filename, f)
}

// IsLexical reports whether name is a lexical production, i.e. does not
// start with an upper case letter.
func IsLexical(name string) bool {
	if name == "" {
		return false
	}
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// Grammar is a compiled EBNF grammar. It is immutable and its parsers may be
// used concurrently.
type Grammar struct {
	source   ebnf.Grammar
	start    string
	matchers map[string]combinator.Parser[combinator.View]
	trees    map[string]combinator.Parser[*Node]
}

// Compile verifies g starting at start and builds a matcher and a tree parser
// for every production.
//
// Compile rejects grammars that fail ebnf.Verify and grammars with a
// left-recursive production.
func Compile(g ebnf.Grammar, start string) (*Grammar, error) {
	if err := ebnf.Verify(g, start); err != nil {
		return nil, errors.Wrapf(err, "verify grammar from %s", start)
	}

	null := nullable(g)
	if err := checkLeftRecursion(g, null); err != nil {
		return nil, err
	}
	for name, n := range nullableRepetitions(g, null) {
		log.Warningf("production %s has %d repetition(s) that can match empty input", name, n)
	}

	c := &compiler{
		source:   g,
		matchers: make(map[string]combinator.Parser[combinator.View], len(g)),
		trees:    make(map[string]combinator.Parser[*Node], len(g)),
	}
	if err := c.compile(); err != nil {
		return nil, err
	}

	log.Debugf("compiled %d productions, start %s", len(g), start)
	return &Grammar{
		source:   g,
		start:    start,
		matchers: c.matchers,
		trees:    c.trees,
	}, nil
}

// Start returns the start production the grammar was verified from.
func (g *Grammar) Start() string {
	return g.start
}

// Productions returns the production names in sorted order.
func (g *Grammar) Productions() []string {
	names := make([]string, 0, len(g.source))
	for name := range g.source {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Matcher returns a parser that matches the production name and yields the
// view it consumed.
func (g *Grammar) Matcher(name string) (combinator.Parser[combinator.View], error) {
	p, ok := g.matchers[name]
	if !ok {
		return nil, errors.Errorf("production %q not found in grammar", name)
	}
	return p, nil
}

// Tree returns a parser that matches the production name and yields its
// concrete syntax tree.
func (g *Grammar) Tree(name string) (combinator.Parser[*Node], error) {
	p, ok := g.trees[name]
	if !ok {
		return nil, errors.Errorf("production %q not found in grammar", name)
	}
	return p, nil
}

// Match runs the production name over input.
func (g *Grammar) Match(name, input string) (combinator.Result[combinator.View], bool, error) {
	p, err := g.Matcher(name)
	if err != nil {
		return combinator.Result[combinator.View]{}, false, err
	}
	r, ok := combinator.Parse(p, input)
	return r, ok, nil
}
