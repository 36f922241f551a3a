package combinator

// Maybe is the result of Optional: either a present value or absent.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some returns a present Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// None returns an absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// IsPresent reports whether m holds a value.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// Or returns the value if present and def otherwise.
func (m Maybe[T]) Or(def T) T {
	if m.present {
		return m.value
	}
	return def
}

type optional[T any] struct {
	p Parser[T]
}

// Optional tries p. If p fails Optional still succeeds, with an absent value
// and the input unchanged as remainder.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	mustParser(p, "Optional")
	return optional[T]{p: p}
}

func (o optional[T]) Parse(in View) (Result[Maybe[T]], bool) {
	if r, ok := o.p.Parse(in); ok {
		return success(Some(r.Value), r.Remainder)
	}
	return success(None[T](), in)
}

type optionalView struct {
	opt Parser[Maybe[View]]
}

// OptionalView is Optional for parsers of raw views with the absent case
// flattened: when p fails the value is the empty view at the start of the
// input.
func OptionalView(p Parser[View]) Parser[View] {
	return optionalView{opt: Optional(p)}
}

func (o optionalView) Parse(in View) (Result[View], bool) {
	r, _ := o.opt.Parse(in)
	return success(r.Value.Or(in.Take(0)), r.Remainder)
}
