package combinator

import "sync"

type lazy[T any] struct {
	get func() Parser[T]
}

// Lazy defers building a parser until its first use, which lets a grammar
// refer to parsers that are defined later, including itself. build is called
// at most once; the parser it returns is used for every later parse.
//
// A recursive reference must be preceded by at least one consuming step.
// Left recursion does not terminate.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	if build == nil {
		panic("combinator: Lazy requires a build function")
	}
	return lazy[T]{get: sync.OnceValue(func() Parser[T] {
		p := build()
		mustParser(p, "Lazy")
		return p
	})}
}

func (l lazy[T]) Parse(in View) (Result[T], bool) {
	return l.get().Parse(in)
}
