package grammar

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"
)

// nullable computes which productions can match the empty input.
func nullable(g ebnf.Grammar) map[string]bool {
	result := make(map[string]bool, len(g))
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if result[name] {
				continue
			}
			if exprNullable(prod.Expr, result) {
				result[name] = true
				changed = true
			}
		}
	}
	return result
}

func exprNullable(expr ebnf.Expression, names map[string]bool) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case *ebnf.Token:
		return e.String == ""
	case *ebnf.Range:
		return false
	case ebnf.Sequence:
		for _, item := range e {
			if !exprNullable(item, names) {
				return false
			}
		}
		return true
	case ebnf.Alternative:
		for _, alt := range e {
			if exprNullable(alt, names) {
				return true
			}
		}
		return false
	case *ebnf.Option, *ebnf.Repetition:
		return true
	case *ebnf.Group:
		return exprNullable(e.Body, names)
	case *ebnf.Name:
		return names[e.String]
	default:
		return false
	}
}

// leftmost returns the names that expr may call before consuming any input.
func leftmost(expr ebnf.Expression, null map[string]bool, out map[string]bool) {
	switch e := expr.(type) {
	case ebnf.Sequence:
		for _, item := range e {
			leftmost(item, null, out)
			if !exprNullable(item, null) {
				return
			}
		}
	case ebnf.Alternative:
		for _, alt := range e {
			leftmost(alt, null, out)
		}
	case *ebnf.Group:
		leftmost(e.Body, null, out)
	case *ebnf.Option:
		leftmost(e.Body, null, out)
	case *ebnf.Repetition:
		leftmost(e.Body, null, out)
	case *ebnf.Name:
		out[e.String] = true
	}
}

// checkLeftRecursion returns an error naming a production that can reach
// itself without consuming input. Such a production would recurse forever.
func checkLeftRecursion(g ebnf.Grammar, null map[string]bool) error {
	edges := make(map[string][]string, len(g))
	for name, prod := range g {
		out := make(map[string]bool)
		leftmost(prod.Expr, null, out)
		for callee := range out {
			edges[name] = append(edges[name], callee)
		}
		sort.Strings(edges[name])
	}

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int, len(g))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case active:
			return errors.Errorf("production %s is left-recursive: %v", name, append(path, name))
		case done:
			return nil
		}
		state[name] = active
		for _, callee := range edges[name] {
			if err := visit(callee, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// nullableRepetitions lists, per production, the repetitions whose body can
// match the empty input.
func nullableRepetitions(g ebnf.Grammar, null map[string]bool) map[string]int {
	found := make(map[string]int)
	for name, prod := range g {
		var walk func(ebnf.Expression)
		walk = func(expr ebnf.Expression) {
			switch e := expr.(type) {
			case ebnf.Sequence:
				for _, item := range e {
					walk(item)
				}
			case ebnf.Alternative:
				for _, alt := range e {
					walk(alt)
				}
			case *ebnf.Group:
				walk(e.Body)
			case *ebnf.Option:
				walk(e.Body)
			case *ebnf.Repetition:
				if exprNullable(e.Body, null) {
					found[name]++
				}
				walk(e.Body)
			}
		}
		walk(prod.Expr)
	}
	return found
}
