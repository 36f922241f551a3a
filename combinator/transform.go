package combinator

type transform[T, U any] struct {
	f func(T) U
	p Parser[T]
}

// Transform maps the value of a successful parse of p through f. The
// remainder is p's remainder. f is called at most once per parse and never
// when p fails.
func Transform[T, U any](f func(T) U, p Parser[T]) Parser[U] {
	mustParser(p, "Transform")
	if f == nil {
		panic("combinator: Transform requires a mapping function")
	}
	return transform[T, U]{f: f, p: p}
}

func (t transform[T, U]) Parse(in View) (Result[U], bool) {
	r, ok := t.p.Parse(in)
	if !ok {
		return failure[U]()
	}
	return success(t.f(r.Value), r.Remainder)
}

// Span is a parsed value together with the input it consumed.
type Span[T any] struct {
	Value T
	Text  View
}

type spanned[T any] struct {
	p Parser[T]
}

// Spanned wraps p so that its value is paired with the view p consumed.
func Spanned[T any](p Parser[T]) Parser[Span[T]] {
	mustParser(p, "Spanned")
	return spanned[T]{p: p}
}

func (s spanned[T]) Parse(in View) (Result[Span[T]], bool) {
	r, ok := s.p.Parse(in)
	if !ok {
		return failure[Span[T]]()
	}
	return success(Span[T]{Value: r.Value, Text: in.Consumed(r.Remainder)}, r.Remainder)
}
