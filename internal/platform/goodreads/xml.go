package goodreads

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// ErrEmptyDocument is returned when the payload has no root element.
var ErrEmptyDocument = errors.New("goodreads: empty xml document")

// ParseXML converts a GoodReads XML payload into the raw tree. The root
// element is returned as the single occurrence under its own tag, e.g.
// Node{"GoodreadsResponse": {Node{...}}}.
func ParseXML(r io.Reader) (Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("goodreads: parse xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return Node{root.Tag: {convertElement(root)}}, nil
}

// Leaves keep their attributes; attributes on elements with children are
// dropped.
func convertElement(el *etree.Element) Value {
	children := el.ChildElements()
	if len(children) == 0 {
		if len(el.Attr) == 0 {
			return Scalar(el.Text())
		}
		attrs := make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			attrs[a.Key] = a.Value
		}
		return Attributed{Value: el.Text(), Attributes: attrs}
	}

	node := make(Node, len(children))
	for _, child := range children {
		node[child.Tag] = append(node[child.Tag], convertElement(child))
	}
	return node
}
