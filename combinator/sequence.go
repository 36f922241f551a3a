package combinator

type seq struct {
	ps []Parser[View]
}

// Seq matches each parser in order, each one starting where the previous one
// stopped. The result is the single contiguous view spanning every match.
// Seq fails at the first parser that fails and keeps no partial result.
// With no parsers Seq matches the empty prefix of any input.
func Seq(ps ...Parser[View]) Parser[View] {
	for _, p := range ps {
		mustParser(p, "Seq")
	}
	return seq{ps: ps}
}

func (s seq) Parse(in View) (Result[View], bool) {
	rest := in
	for _, p := range s.ps {
		r, ok := p.Parse(rest)
		if !ok {
			return failure[View]()
		}
		rest = r.Remainder
	}
	return success(in.Consumed(rest), rest)
}

type seqList[T any] struct {
	ps []Parser[T]
}

// SeqList is like Seq but keeps every sub-result, in order.
func SeqList[T any](ps ...Parser[T]) Parser[[]T] {
	for _, p := range ps {
		mustParser(p, "SeqList")
	}
	return seqList[T]{ps: ps}
}

func (s seqList[T]) Parse(in View) (Result[[]T], bool) {
	out := make([]T, 0, len(s.ps))
	rest := in
	for _, p := range s.ps {
		r, ok := p.Parse(rest)
		if !ok {
			return failure[[]T]()
		}
		out = append(out, r.Value)
		rest = r.Remainder
	}
	return success(out, rest)
}

// Tuple2 holds the results of Seq2.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds the results of Seq3.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds the results of Seq4.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds the results of Seq5.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Seq2 matches a then b and keeps both typed results.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Tuple2[A, B]] {
	mustParser(a, "Seq2")
	mustParser(b, "Seq2")
	return Func[Tuple2[A, B]](func(in View) (Result[Tuple2[A, B]], bool) {
		ra, ok := a.Parse(in)
		if !ok {
			return failure[Tuple2[A, B]]()
		}
		rb, ok := b.Parse(ra.Remainder)
		if !ok {
			return failure[Tuple2[A, B]]()
		}
		return success(Tuple2[A, B]{ra.Value, rb.Value}, rb.Remainder)
	})
}

// Seq3 matches a, b then c and keeps each typed result.
func Seq3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Tuple3[A, B, C]] {
	ab := Seq2(a, b)
	mustParser(c, "Seq3")
	return Func[Tuple3[A, B, C]](func(in View) (Result[Tuple3[A, B, C]], bool) {
		r, ok := ab.Parse(in)
		if !ok {
			return failure[Tuple3[A, B, C]]()
		}
		rc, ok := c.Parse(r.Remainder)
		if !ok {
			return failure[Tuple3[A, B, C]]()
		}
		return success(Tuple3[A, B, C]{r.Value.V1, r.Value.V2, rc.Value}, rc.Remainder)
	})
}

// Seq4 matches a, b, c then d and keeps each typed result.
func Seq4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Tuple4[A, B, C, D]] {
	abc := Seq3(a, b, c)
	mustParser(d, "Seq4")
	return Func[Tuple4[A, B, C, D]](func(in View) (Result[Tuple4[A, B, C, D]], bool) {
		r, ok := abc.Parse(in)
		if !ok {
			return failure[Tuple4[A, B, C, D]]()
		}
		rd, ok := d.Parse(r.Remainder)
		if !ok {
			return failure[Tuple4[A, B, C, D]]()
		}
		v := r.Value
		return success(Tuple4[A, B, C, D]{v.V1, v.V2, v.V3, rd.Value}, rd.Remainder)
	})
}

// Seq5 matches a, b, c, d then e and keeps each typed result.
func Seq5[A, B, C, D, E any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	abcd := Seq4(a, b, c, d)
	mustParser(e, "Seq5")
	return Func[Tuple5[A, B, C, D, E]](func(in View) (Result[Tuple5[A, B, C, D, E]], bool) {
		r, ok := abcd.Parse(in)
		if !ok {
			return failure[Tuple5[A, B, C, D, E]]()
		}
		re, ok := e.Parse(r.Remainder)
		if !ok {
			return failure[Tuple5[A, B, C, D, E]]()
		}
		v := r.Value
		return success(Tuple5[A, B, C, D, E]{v.V1, v.V2, v.V3, v.V4, re.Value}, re.Remainder)
	})
}
