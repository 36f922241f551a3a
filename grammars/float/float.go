// Package float is a floating point grammar built from combinators.
//
//	digit   = "0" … "9" .
//	number  = digit { digit } .
//	decimal = digit { digit } .                 (read as a fraction)
//	frac    = number "." [ decimal ] | "." decimal .
//	sign    = [ "-" ] .
//	exp     = ( "e" | "E" ) sign number .
//	float   = sign frac [ exp ] | sign number exp .
//
// A bare integer such as "12" is not a float: it needs a fraction or an
// exponent.
package float

import (
	"math"
	"strconv"

	c "github.com/dhamidi/combo/combinator"
)

var digits = c.Plus(c.Predicate(c.IsDigit))

// Number matches one or more digits and yields their integer value.
func Number() c.Parser[float64] {
	return c.Transform(func(v c.View) float64 {
		n, _ := strconv.ParseFloat(v.String(), 64)
		return n
	}, digits)
}

// Decimal matches one or more digits and yields them as the fractional part
// of a number, so "25" yields 0.25.
func Decimal() c.Parser[float64] {
	return c.Transform(func(v c.View) float64 {
		n, _ := strconv.ParseFloat("0."+v.String(), 64)
		return n
	}, digits)
}

// Sign matches an optional minus and yields -1 or 1.
func Sign() c.Parser[float64] {
	return c.Transform(func(m c.Maybe[c.View]) float64 {
		if m.IsPresent() {
			return -1
		}
		return 1
	}, c.Optional(c.Literal("-")))
}

// Fraction matches "12.5", "12." or ".5".
func Fraction() c.Parser[float64] {
	point := c.Literal(".")
	return c.Choice(
		c.Transform(func(t c.Tuple3[float64, c.View, c.Maybe[float64]]) float64 {
			return t.V1 + t.V3.Or(0)
		}, c.Seq3(Number(), point, c.Optional(Decimal()))),
		c.Transform(func(t c.Tuple2[c.View, float64]) float64 {
			return t.V2
		}, c.Seq2(point, Decimal())),
	)
}

// Exponent matches "e10", "E-3" and yields the signed power of ten.
func Exponent() c.Parser[float64] {
	return c.Transform(func(t c.Tuple3[c.View, float64, float64]) float64 {
		return t.V2 * t.V3
	}, c.Seq3(c.Choice(c.Literal("e"), c.Literal("E")), Sign(), Number()))
}

// Parser returns the float grammar.
func Parser() c.Parser[float64] {
	return c.Choice(
		c.Transform(func(t c.Tuple3[float64, float64, c.Maybe[float64]]) float64 {
			return t.V1 * t.V2 * math.Pow(10, t.V3.Or(0))
		}, c.Seq3(Sign(), Fraction(), c.Optional(Exponent()))),
		c.Transform(func(t c.Tuple3[float64, float64, float64]) float64 {
			return t.V1 * t.V2 * math.Pow(10, t.V3)
		}, c.Seq3(Sign(), Number(), Exponent())),
	)
}

// Parse parses a float from the start of s and returns it with the
// unconsumed rest of s.
func Parse(s string) (value float64, rest string, ok bool) {
	r, ok := c.Parse(Parser(), s)
	if !ok {
		return 0, s, false
	}
	return r.Value, r.Remainder.String(), true
}
