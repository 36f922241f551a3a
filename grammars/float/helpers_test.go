package float

import c "github.com/dhamidi/combo/combinator"

func parseWith(p c.Parser[float64], s string) (float64, string, bool) {
	r, ok := c.Parse(p, s)
	if !ok {
		return 0, s, false
	}
	return r.Value, r.Remainder.String(), true
}
