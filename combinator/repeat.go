package combinator

// repeat applies p to in until it fails and calls each with every value in
// match order. It reports the remainder after the last success, and false if
// the first application failed.
//
// p must not succeed without consuming input. Repetition stops at the first
// application after the first one that consumes nothing; that application's
// value is dropped.
func repeat[T any](p Parser[T], in View, each func(T)) (View, bool) {
	r, ok := p.Parse(in)
	if !ok {
		return in, false
	}
	each(r.Value)
	rest := r.Remainder
	for {
		r, ok := p.Parse(rest)
		if !ok || r.Remainder.Len() >= rest.Len() {
			return rest, true
		}
		each(r.Value)
		rest = r.Remainder
	}
}

type plus struct {
	p Parser[View]
}

// Plus matches p one or more times and yields the contiguous view spanning
// every repetition. It fails only if the first application of p fails.
func Plus(p Parser[View]) Parser[View] {
	mustParser(p, "Plus")
	return plus{p: p}
}

func (pl plus) Parse(in View) (Result[View], bool) {
	rest, ok := repeat(pl.p, in, func(View) {})
	if !ok {
		return failure[View]()
	}
	return success(in.Consumed(rest), rest)
}

type plusList[T any] struct {
	p Parser[T]
}

// PlusList matches p one or more times and yields each result in match order.
func PlusList[T any](p Parser[T]) Parser[[]T] {
	mustParser(p, "PlusList")
	return plusList[T]{p: p}
}

func (pl plusList[T]) Parse(in View) (Result[[]T], bool) {
	var out []T
	rest, ok := repeat(pl.p, in, func(v T) { out = append(out, v) })
	if !ok {
		return failure[[]T]()
	}
	return success(out, rest)
}

// Star matches p zero or more times. It never fails; with no repetition the
// value is the empty view at the start of the input.
func Star(p Parser[View]) Parser[View] {
	return OptionalView(Plus(p))
}

// StarList matches p zero or more times and yields each result in match
// order. It never fails; with no repetition the value is an empty slice.
func StarList[T any](p Parser[T]) Parser[[]T] {
	return Transform(func(m Maybe[[]T]) []T {
		return m.Or([]T{})
	}, Optional(PlusList(p)))
}
