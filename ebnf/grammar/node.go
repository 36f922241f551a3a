package grammar

import (
	"fmt"
	"strings"

	"github.com/dhamidi/combo/combinator"
)

// Node is a node in the concrete syntax tree built by Grammar.Tree.
// Named productions become interior nodes; literal tokens become terminals
// with an empty Name. Lexical productions are terminals too.
type Node struct {
	Name     string          // Production name, empty for literal tokens
	Text     combinator.View // Input covered by this node
	Children []*Node         // Named sub-productions and tokens, in order
}

// IsTerminal returns true if the node has no children.
func (n *Node) IsTerminal() bool {
	return len(n.Children) == 0
}

// Find returns the first node named name in a pre-order walk of n.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and each of its descendants in pre-order. It stops
// descending into a node when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// String renders the tree as an indented outline, one node per line.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case n.Name == "":
		fmt.Fprintf(b, "%s%q\n", indent, n.Text.String())
	case n.IsTerminal():
		fmt.Fprintf(b, "%s%s %q\n", indent, n.Name, n.Text.String())
	default:
		fmt.Fprintf(b, "%s%s\n", indent, n.Name)
		for _, c := range n.Children {
			c.write(b, depth+1)
		}
	}
}
