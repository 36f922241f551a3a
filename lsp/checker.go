package lsp

import (
	"fmt"

	"github.com/dhamidi/combo/combinator"
	"github.com/dhamidi/combo/ebnf/grammar"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Checker matches whole documents against one production of a grammar.
type Checker struct {
	start   string
	matcher combinator.Parser[combinator.View]
}

func NewChecker(g *grammar.Grammar, start string) (*Checker, error) {
	if start == "" {
		start = g.Start()
	}
	m, err := g.Matcher(start)
	if err != nil {
		return nil, err
	}
	return &Checker{start: start, matcher: m}, nil
}

// Start returns the production documents are checked against.
func (c *Checker) Start() string {
	return c.start
}

// Check returns the diagnostics for text. A document that the production
// matches completely yields an empty, non-nil slice.
func (c *Checker) Check(text string) []protocol.Diagnostic {
	r, ok := combinator.Parse(c.matcher, text)
	if !ok {
		origin := protocol.Position{}
		return []protocol.Diagnostic{
			newDiagnostic(protocol.Range{Start: origin, End: origin}, fmt.Sprintf("does not match %s", c.start)),
		}
	}
	if r.Remainder.Empty() {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{
		newDiagnostic(protocol.Range{
			Start: position(r.Remainder),
			End:   position(r.Remainder.Advance(r.Remainder.Len())),
		}, "unexpected input"),
	}
}

func newDiagnostic(rng protocol.Range, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// position returns the zero-based line and UTF-16 column at which v starts
// in its source.
func position(v combinator.View) protocol.Position {
	var line, col protocol.UInteger
	for _, r := range v.Source()[:v.Offset()] {
		switch {
		case r == '\n':
			line++
			col = 0
		case r >= 0x10000:
			col += 2
		default:
			col++
		}
	}
	return protocol.Position{Line: line, Character: col}
}
