// Package format encodes concrete syntax trees for output.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/combo/ebnf/grammar"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(node *grammar.Node) error
}

// New returns the encoder registered under name: "text" or "json".
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

// TextEncoder writes the indented outline produced by Node.String.
type TextEncoder struct {
	w    io.Writer
	node *grammar.Node
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(node *grammar.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	if e.node == nil {
		return nil, nil
	}
	return []byte(e.node.String()), nil
}
