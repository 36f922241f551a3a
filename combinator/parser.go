// Package combinator provides composable, side-effect-free parsers over an
// in-memory string.
//
// Every parser exposes the same operation: given the remaining input as a
// View it either fails, or succeeds with a typed value and the View left
// unconsumed. Composite parsers call their sub-parsers directly, in order,
// handing each one the remainder of the previous step. Parsers hold no mutable
// state after construction and may be shared between goroutines.
//
// Parsers whose result is a raw View (Literal, Predicate, Seq, Plus, Star and
// Choice over views) collapse adjacent matches into one contiguous View.
// Parsers that have passed through Transform carry their own types, and the
// structured constructors (Seq2..Seq5, SeqList, PlusList, StarList, Choice2,
// Choice3) keep each sub-result individually.
//
// Failure carries no payload. A failed parse never consumes input, so Optional
// and Choice can always retry from the position they were given.
package combinator

// Result is the outcome of a successful parse: the parsed value and the
// unconsumed remainder of the input.
type Result[T any] struct {
	Value     T
	Remainder View
}

// Parser is implemented by every primitive and composite parser.
//
// Parse returns ok == false if the input does not match. On success the
// returned Remainder is a suffix of in.
type Parser[T any] interface {
	Parse(in View) (r Result[T], ok bool)
}

// Func adapts a plain function to the Parser interface.
type Func[T any] func(in View) (Result[T], bool)

// Parse calls f(in).
func (f Func[T]) Parse(in View) (Result[T], bool) {
	return f(in)
}

// Parse runs p over all of s.
func Parse[T any](p Parser[T], s string) (Result[T], bool) {
	return p.Parse(NewView(s))
}

func success[T any](v T, rest View) (Result[T], bool) {
	return Result[T]{Value: v, Remainder: rest}, true
}

func failure[T any]() (Result[T], bool) {
	return Result[T]{}, false
}

func mustParser[T any](p Parser[T], who string) {
	if p == nil {
		panic("combinator: nil parser passed to " + who)
	}
}
