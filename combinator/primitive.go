package combinator

type literal struct {
	target string
}

// Literal matches target exactly and yields the matched view. It panics if
// target is empty.
func Literal(target string) Parser[View] {
	if target == "" {
		panic("combinator: Literal requires a non-empty target")
	}
	return literal{target: target}
}

func (l literal) Parse(in View) (Result[View], bool) {
	if !in.HasPrefix(l.target) {
		return failure[View]()
	}
	n := len(l.target)
	return success(in.Take(n), in.Advance(n))
}

type predicate struct {
	test func(byte) bool
}

// Predicate matches a single byte for which test returns true. It fails on
// empty input.
func Predicate(test func(byte) bool) Parser[View] {
	if test == nil {
		panic("combinator: Predicate requires a test function")
	}
	return predicate{test: test}
}

func (p predicate) Parse(in View) (Result[View], bool) {
	c, ok := in.First()
	if !ok || !p.test(c) {
		return failure[View]()
	}
	return success(in.Take(1), in.Advance(1))
}

// Char matches the byte c.
func Char(c byte) Parser[View] {
	return Predicate(func(b byte) bool { return b == c })
}

// Range matches a single byte in [lo, hi].
func Range(lo, hi byte) Parser[View] {
	return Predicate(func(b byte) bool { return b >= lo && b <= hi })
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsSpace reports whether c is ASCII whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
