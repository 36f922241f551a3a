package combinator

import "fmt"

type choice[T any] struct {
	alts []Parser[T]
}

// Choice tries each alternative in order on the same input and returns the
// first success unchanged. It fails only if every alternative fails. Once an
// alternative succeeds no other alternative is tried.
func Choice[T any](alts ...Parser[T]) Parser[T] {
	if len(alts) == 0 {
		panic("combinator: Choice requires at least one alternative")
	}
	for _, p := range alts {
		mustParser(p, "Choice")
	}
	return choice[T]{alts: alts}
}

func (c choice[T]) Parse(in View) (Result[T], bool) {
	for _, p := range c.alts {
		if r, ok := p.Parse(in); ok {
			return r, true
		}
	}
	return failure[T]()
}

// Either2 is the result of Choice2: exactly one of two alternatives, tagged by
// its position.
type Either2[A, B any] struct {
	index int
	a     A
	b     B
}

// Index returns the position (0 or 1) of the alternative that matched.
func (e Either2[A, B]) Index() int { return e.index }

// First returns the value of the first alternative, if it matched.
func (e Either2[A, B]) First() (A, bool) { return e.a, e.index == 0 }

// Second returns the value of the second alternative, if it matched.
func (e Either2[A, B]) Second() (B, bool) { return e.b, e.index == 1 }

// Value returns the matched value, whichever alternative it came from.
func (e Either2[A, B]) Value() any {
	if e.index == 0 {
		return e.a
	}
	return e.b
}

func (e Either2[A, B]) String() string {
	return fmt.Sprintf("#%d(%v)", e.index, e.Value())
}

// Either3 is the result of Choice3: exactly one of three alternatives, tagged
// by its position.
type Either3[A, B, C any] struct {
	index int
	a     A
	b     B
	c     C
}

// Index returns the position (0, 1 or 2) of the alternative that matched.
func (e Either3[A, B, C]) Index() int { return e.index }

// First returns the value of the first alternative, if it matched.
func (e Either3[A, B, C]) First() (A, bool) { return e.a, e.index == 0 }

// Second returns the value of the second alternative, if it matched.
func (e Either3[A, B, C]) Second() (B, bool) { return e.b, e.index == 1 }

// Third returns the value of the third alternative, if it matched.
func (e Either3[A, B, C]) Third() (C, bool) { return e.c, e.index == 2 }

// Value returns the matched value, whichever alternative it came from.
func (e Either3[A, B, C]) Value() any {
	switch e.index {
	case 0:
		return e.a
	case 1:
		return e.b
	}
	return e.c
}

func (e Either3[A, B, C]) String() string {
	return fmt.Sprintf("#%d(%v)", e.index, e.Value())
}

// Choice2 is Choice over two alternatives of different result types.
func Choice2[A, B any](a Parser[A], b Parser[B]) Parser[Either2[A, B]] {
	mustParser(a, "Choice2")
	mustParser(b, "Choice2")
	return Func[Either2[A, B]](func(in View) (Result[Either2[A, B]], bool) {
		if r, ok := a.Parse(in); ok {
			return success(Either2[A, B]{index: 0, a: r.Value}, r.Remainder)
		}
		if r, ok := b.Parse(in); ok {
			return success(Either2[A, B]{index: 1, b: r.Value}, r.Remainder)
		}
		return failure[Either2[A, B]]()
	})
}

// Choice3 is Choice over three alternatives of different result types.
func Choice3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Either3[A, B, C]] {
	mustParser(a, "Choice3")
	mustParser(b, "Choice3")
	mustParser(c, "Choice3")
	return Func[Either3[A, B, C]](func(in View) (Result[Either3[A, B, C]], bool) {
		if r, ok := a.Parse(in); ok {
			return success(Either3[A, B, C]{index: 0, a: r.Value}, r.Remainder)
		}
		if r, ok := b.Parse(in); ok {
			return success(Either3[A, B, C]{index: 1, b: r.Value}, r.Remainder)
		}
		if r, ok := c.Parse(in); ok {
			return success(Either3[A, B, C]{index: 2, c: r.Value}, r.Remainder)
		}
		return failure[Either3[A, B, C]]()
	})
}

// Either4 is the result of Choice4: exactly one of four alternatives, tagged
// by its position.
type Either4[A, B, C, D any] struct {
	index int
	a     A
	b     B
	c     C
	d     D
}

// Index returns the position (0 to 3) of the alternative that matched.
func (e Either4[A, B, C, D]) Index() int { return e.index }

// First returns the value of the first alternative, if it matched.
func (e Either4[A, B, C, D]) First() (A, bool) { return e.a, e.index == 0 }

// Second returns the value of the second alternative, if it matched.
func (e Either4[A, B, C, D]) Second() (B, bool) { return e.b, e.index == 1 }

// Third returns the value of the third alternative, if it matched.
func (e Either4[A, B, C, D]) Third() (C, bool) { return e.c, e.index == 2 }

// Fourth returns the value of the fourth alternative, if it matched.
func (e Either4[A, B, C, D]) Fourth() (D, bool) { return e.d, e.index == 3 }

// Value returns the matched value, whichever alternative it came from.
func (e Either4[A, B, C, D]) Value() any {
	switch e.index {
	case 0:
		return e.a
	case 1:
		return e.b
	case 2:
		return e.c
	}
	return e.d
}

func (e Either4[A, B, C, D]) String() string {
	return fmt.Sprintf("#%d(%v)", e.index, e.Value())
}

// Either5 is the result of Choice5: exactly one of five alternatives, tagged
// by its position.
type Either5[A, B, C, D, E any] struct {
	index int
	a     A
	b     B
	c     C
	d     D
	e     E
}

// Index returns the position (0 to 4) of the alternative that matched.
func (e Either5[A, B, C, D, E]) Index() int { return e.index }

// First returns the value of the first alternative, if it matched.
func (e Either5[A, B, C, D, E]) First() (A, bool) { return e.a, e.index == 0 }

// Second returns the value of the second alternative, if it matched.
func (e Either5[A, B, C, D, E]) Second() (B, bool) { return e.b, e.index == 1 }

// Third returns the value of the third alternative, if it matched.
func (e Either5[A, B, C, D, E]) Third() (C, bool) { return e.c, e.index == 2 }

// Fourth returns the value of the fourth alternative, if it matched.
func (e Either5[A, B, C, D, E]) Fourth() (D, bool) { return e.d, e.index == 3 }

// Fifth returns the value of the fifth alternative, if it matched.
func (e Either5[A, B, C, D, E]) Fifth() (E, bool) { return e.e, e.index == 4 }

// Value returns the matched value, whichever alternative it came from.
func (e Either5[A, B, C, D, E]) Value() any {
	switch e.index {
	case 0:
		return e.a
	case 1:
		return e.b
	case 2:
		return e.c
	case 3:
		return e.d
	}
	return e.e
}

func (e Either5[A, B, C, D, E]) String() string {
	return fmt.Sprintf("#%d(%v)", e.index, e.Value())
}

// Choice4 is Choice over four alternatives of different result types.
func Choice4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Either4[A, B, C, D]] {
	mustParser(a, "Choice4")
	mustParser(b, "Choice4")
	mustParser(c, "Choice4")
	mustParser(d, "Choice4")
	return Func[Either4[A, B, C, D]](func(in View) (Result[Either4[A, B, C, D]], bool) {
		if r, ok := a.Parse(in); ok {
			return success(Either4[A, B, C, D]{index: 0, a: r.Value}, r.Remainder)
		}
		if r, ok := b.Parse(in); ok {
			return success(Either4[A, B, C, D]{index: 1, b: r.Value}, r.Remainder)
		}
		if r, ok := c.Parse(in); ok {
			return success(Either4[A, B, C, D]{index: 2, c: r.Value}, r.Remainder)
		}
		if r, ok := d.Parse(in); ok {
			return success(Either4[A, B, C, D]{index: 3, d: r.Value}, r.Remainder)
		}
		return failure[Either4[A, B, C, D]]()
	})
}

// Choice5 is Choice over five alternatives of different result types.
func Choice5[A, B, C, D, E any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E]) Parser[Either5[A, B, C, D, E]] {
	mustParser(a, "Choice5")
	mustParser(b, "Choice5")
	mustParser(c, "Choice5")
	mustParser(d, "Choice5")
	mustParser(e, "Choice5")
	return Func[Either5[A, B, C, D, E]](func(in View) (Result[Either5[A, B, C, D, E]], bool) {
		if r, ok := a.Parse(in); ok {
			return success(Either5[A, B, C, D, E]{index: 0, a: r.Value}, r.Remainder)
		}
		if r, ok := b.Parse(in); ok {
			return success(Either5[A, B, C, D, E]{index: 1, b: r.Value}, r.Remainder)
		}
		if r, ok := c.Parse(in); ok {
			return success(Either5[A, B, C, D, E]{index: 2, c: r.Value}, r.Remainder)
		}
		if r, ok := d.Parse(in); ok {
			return success(Either5[A, B, C, D, E]{index: 3, d: r.Value}, r.Remainder)
		}
		if r, ok := e.Parse(in); ok {
			return success(Either5[A, B, C, D, E]{index: 4, e: r.Value}, r.Remainder)
		}
		return failure[Either5[A, B, C, D, E]]()
	})
}
