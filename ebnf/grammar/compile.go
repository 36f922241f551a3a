package grammar

import (
	"sort"

	c "github.com/dhamidi/combo/combinator"
	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"
)

type compiler struct {
	source   ebnf.Grammar
	matchers map[string]c.Parser[c.View]
	trees    map[string]c.Parser[*Node]
}

// compile builds every production. References between productions go through
// c.Lazy, so they resolve against the finished maps on first use.
func (cc *compiler) compile() error {
	names := make([]string, 0, len(cc.source))
	for name := range cc.source {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prod := cc.source[name]

		m, err := cc.matcher(prod.Expr)
		if err != nil {
			return errors.Wrapf(err, "production %s", name)
		}
		cc.matchers[name] = m

		if IsLexical(name) {
			cc.trees[name] = c.Transform(func(v c.View) *Node {
				return &Node{Name: name, Text: v}
			}, m)
			continue
		}
		t, err := cc.tree(prod.Expr)
		if err != nil {
			return errors.Wrapf(err, "production %s", name)
		}
		cc.trees[name] = c.Transform(func(s c.Span[[]*Node]) *Node {
			return &Node{Name: name, Text: s.Text, Children: s.Value}
		}, c.Spanned(t))
	}
	return nil
}

func (cc *compiler) matcher(expr ebnf.Expression) (c.Parser[c.View], error) {
	switch e := expr.(type) {
	case nil:
		return c.Seq(), nil

	case *ebnf.Token:
		if e.String == "" {
			return c.Seq(), nil
		}
		return c.Literal(e.String), nil

	case *ebnf.Range:
		lo, hi, err := byteRange(e)
		if err != nil {
			return nil, err
		}
		return c.Range(lo, hi), nil

	case ebnf.Sequence:
		items, err := cc.matcherList(e)
		if err != nil {
			return nil, err
		}
		return c.Seq(items...), nil

	case ebnf.Alternative:
		alts, err := cc.matcherList(e)
		if err != nil {
			return nil, err
		}
		return c.Choice(alts...), nil

	case *ebnf.Group:
		return cc.matcher(e.Body)

	case *ebnf.Option:
		body, err := cc.matcher(e.Body)
		if err != nil {
			return nil, err
		}
		return c.OptionalView(body), nil

	case *ebnf.Repetition:
		body, err := cc.matcher(e.Body)
		if err != nil {
			return nil, err
		}
		return c.Star(body), nil

	case *ebnf.Name:
		ref := e.String
		return c.Lazy(func() c.Parser[c.View] { return cc.matchers[ref] }), nil

	case *ebnf.Bad:
		return nil, errors.Errorf("%s: %s", e.TokPos, e.Error)

	default:
		return nil, errors.Errorf("unsupported expression %T", expr)
	}
}

func (cc *compiler) matcherList(exprs []ebnf.Expression) ([]c.Parser[c.View], error) {
	out := make([]c.Parser[c.View], 0, len(exprs))
	for _, expr := range exprs {
		p, err := cc.matcher(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (cc *compiler) tree(expr ebnf.Expression) (c.Parser[[]*Node], error) {
	switch e := expr.(type) {
	case nil:
		return c.Transform(func(c.View) []*Node { return nil }, c.Seq()), nil

	case *ebnf.Token, *ebnf.Range:
		m, err := cc.matcher(e)
		if err != nil {
			return nil, err
		}
		return c.Transform(leaf, m), nil

	case ebnf.Sequence:
		items, err := cc.treeList(e)
		if err != nil {
			return nil, err
		}
		return c.Transform(flatten, c.SeqList(items...)), nil

	case ebnf.Alternative:
		alts, err := cc.treeList(e)
		if err != nil {
			return nil, err
		}
		return c.Choice(alts...), nil

	case *ebnf.Group:
		return cc.tree(e.Body)

	case *ebnf.Option:
		body, err := cc.tree(e.Body)
		if err != nil {
			return nil, err
		}
		return c.Transform(func(m c.Maybe[[]*Node]) []*Node {
			return m.Or(nil)
		}, c.Optional(body)), nil

	case *ebnf.Repetition:
		body, err := cc.tree(e.Body)
		if err != nil {
			return nil, err
		}
		return c.Transform(flatten, c.StarList(body)), nil

	case *ebnf.Name:
		ref := e.String
		return c.Transform(func(n *Node) []*Node {
			return []*Node{n}
		}, c.Lazy(func() c.Parser[*Node] { return cc.trees[ref] })), nil

	case *ebnf.Bad:
		return nil, errors.Errorf("%s: %s", e.TokPos, e.Error)

	default:
		return nil, errors.Errorf("unsupported expression %T", expr)
	}
}

func (cc *compiler) treeList(exprs []ebnf.Expression) ([]c.Parser[[]*Node], error) {
	out := make([]c.Parser[[]*Node], 0, len(exprs))
	for _, expr := range exprs {
		p, err := cc.tree(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func leaf(v c.View) []*Node {
	if v.Empty() {
		return nil
	}
	return []*Node{{Text: v}}
}

func flatten(groups [][]*Node) []*Node {
	var out []*Node
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// byteRange returns the bounds of a "a" … "z" range. Ranges are limited to
// single bytes.
func byteRange(r *ebnf.Range) (lo, hi byte, err error) {
	if len(r.Begin.String) != 1 || len(r.End.String) != 1 {
		return 0, 0, errors.Errorf("%s: range bounds must be single ASCII characters", r.Pos())
	}
	lo, hi = r.Begin.String[0], r.End.String[0]
	if lo > hi {
		return 0, 0, errors.Errorf("%s: empty range %q … %q", r.Pos(), r.Begin.String, r.End.String)
	}
	return lo, hi, nil
}
