package combinator

import "testing"

// viewParsers is a mixed bag of grammars used to check the properties every
// parser shares.
func viewParsers() map[string]Parser[View] {
	digit := Predicate(IsDigit)
	return map[string]Parser[View]{
		"literal":  Literal("ab"),
		"digit":    digit,
		"plus":     Plus(digit),
		"star":     Star(Literal("a")),
		"seq":      Seq(Literal("a"), Star(Literal("b")), Literal("a")),
		"choice":   Choice(Literal("ab"), Literal("a"), Plus(digit)),
		"nested":   nested(),
		"identish": Seq(Predicate(IsLetter), Star(Choice(Predicate(IsLetter), digit))),
		"optional": Transform(func(m Maybe[View]) View { return m.Or(View{}) }, Optional(Literal("x"))),
		"spanned":  Transform(func(s Span[[]View]) View { return s.Text }, Spanned(StarList(digit))),
	}
}

var propertyInputs = []string{
	"", "a", "ab", "aba", "abba", "abbbac", "x", "xy", "0", "123", "12a",
	"(())", "(()", "a1b2 c", "  ", "abab",
}

func TestRemainderIsSuffix(t *testing.T) {
	for name, p := range viewParsers() {
		for _, input := range propertyInputs {
			in := NewView(input)
			r, ok := p.Parse(in)
			if !ok {
				continue
			}
			if !r.Remainder.IsSuffixOf(in) {
				t.Errorf("%s(%q): remainder %+v is not a suffix of %+v", name, input, r.Remainder, in)
			}
			if r.Remainder.Len() > in.Len() {
				t.Errorf("%s(%q): remainder grew", name, input)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for name, p := range viewParsers() {
		for _, input := range propertyInputs {
			in := NewView("#" + input).Advance(1)
			r, ok := p.Parse(in)
			if !ok {
				continue
			}
			if got := in.Consumed(r.Remainder).String() + r.Remainder.String(); got != input {
				t.Errorf("%s(%q): consumed + remainder = %q", name, input, got)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for name, p := range viewParsers() {
		for _, input := range propertyInputs {
			in := NewView(input)
			r1, ok1 := p.Parse(in)
			r2, ok2 := p.Parse(in)
			if ok1 != ok2 || r1 != r2 {
				t.Errorf("%s(%q): (%+v, %v) then (%+v, %v)", name, input, r1, ok1, r2, ok2)
			}
		}
	}
}

func TestCollapsedValueIsConsumedPrefix(t *testing.T) {
	collapsing := []string{"literal", "digit", "plus", "star", "seq", "choice", "nested", "identish"}
	parsers := viewParsers()
	for _, name := range collapsing {
		p := parsers[name]
		for _, input := range propertyInputs {
			in := NewView(input)
			r, ok := p.Parse(in)
			if !ok {
				continue
			}
			if r.Value != in.Consumed(r.Remainder) {
				t.Errorf("%s(%q): value %+v, consumed %+v", name, input, r.Value, in.Consumed(r.Remainder))
			}
		}
	}
}
