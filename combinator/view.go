package combinator

import (
	"fmt"
	"strings"
)

// View is a window over an immutable source string. Parsers never mutate a
// View; every step returns a new View over the same source describing the
// unconsumed suffix.
type View struct {
	src   string
	start int
	end   int
}

// NewView returns a View covering all of s.
func NewView(s string) View {
	return View{src: s, start: 0, end: len(s)}
}

// String returns the characters covered by the view.
func (v View) String() string {
	return v.src[v.start:v.end]
}

// Len returns the number of bytes covered by the view.
func (v View) Len() int {
	return v.end - v.start
}

// Empty reports whether the view covers no input.
func (v View) Empty() bool {
	return v.start >= v.end
}

// Offset returns the start of the view within its source.
func (v View) Offset() int {
	return v.start
}

// End returns one past the last byte of the view within its source.
func (v View) End() int {
	return v.end
}

// Source returns the full string the view is a window of.
func (v View) Source() string {
	return v.src
}

// HasPrefix reports whether the view begins with s.
func (v View) HasPrefix(s string) bool {
	return strings.HasPrefix(v.String(), s)
}

// First returns the first byte of the view. ok is false if the view is empty.
func (v View) First() (c byte, ok bool) {
	if v.Empty() {
		return 0, false
	}
	return v.src[v.start], true
}

// Take returns the first n bytes of v. n is clamped to [0, v.Len()].
func (v View) Take(n int) View {
	n = v.clamp(n)
	return View{src: v.src, start: v.start, end: v.start + n}
}

// Advance returns v without its first n bytes. n is clamped to [0, v.Len()].
func (v View) Advance(n int) View {
	n = v.clamp(n)
	return View{src: v.src, start: v.start + n, end: v.end}
}

// Consumed returns the prefix of v that rest no longer covers. rest must be a
// suffix of v, as returned by a successful parse of v.
//
//	v.Consumed(rest).String() + rest.String() == v.String()
func (v View) Consumed(rest View) View {
	return v.Take(v.Len() - rest.Len())
}

// IsSuffixOf reports whether v is a suffix of outer over the same source.
func (v View) IsSuffixOf(outer View) bool {
	return v.src == outer.src && v.end == outer.end && v.start >= outer.start && v.start <= outer.end
}

// Format implements fmt.Formatter. %v and %s print the covered text, %q quotes
// it and %+v adds the byte range.
func (v View) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", v.String())
	case 'v':
		if f.Flag('+') {
			fmt.Fprintf(f, "%d:%d:%s", v.start, v.end, v.String())
			return
		}
		fmt.Fprint(f, v.String())
	default:
		fmt.Fprint(f, v.String())
	}
}

func (v View) clamp(n int) int {
	if n < 0 {
		return 0
	}
	if l := v.Len(); n > l {
		return l
	}
	return n
}
