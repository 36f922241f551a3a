package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/combo/ebnf/grammar"
)

type JSONEncoder struct {
	w    io.Writer
	node *grammar.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *grammar.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.node == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(nodeToJSON(e.node), "", "  ")
}

type jsonNode struct {
	Name     string      `json:"name,omitempty"`
	Span     jsonSpan    `json:"span"`
	Text     *string     `json:"text,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func nodeToJSON(n *grammar.Node) *jsonNode {
	jn := &jsonNode{
		Name: n.Name,
		Span: jsonSpan{Start: n.Text.Offset(), End: n.Text.End()},
	}

	if n.IsTerminal() {
		text := n.Text.String()
		jn.Text = &text
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
