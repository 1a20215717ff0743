package goodreads

import "strings"

// Value is one occurrence of an XML tag in the raw tree. It is one of
// Scalar, Attributed or Node.
type Value interface {
	isValue()
}

// Scalar is a leaf element without attributes.
type Scalar string

// Attributed is a leaf element that carried attributes, for example
// <ratings_count type="integer">100</ratings_count>.
type Attributed struct {
	Value      string
	Attributes map[string]string
}

// Node is an element with child elements. Every child tag maps to the
// ordered list of its occurrences, so a tag that appears once is still a
// list of length one and a missing tag is simply absent.
type Node map[string][]Value

func (Scalar) isValue()     {}
func (Attributed) isValue() {}
func (Node) isValue()       {}

// First returns the first occurrence of key, or nil when the tag is absent
// or empty.
func (n Node) First(key string) Value {
	values := n[key]
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// Child returns the first occurrence of key as a Node. Anything that is not
// a Node yields an empty Node, so lookups can keep descending.
func (n Node) Child(key string) Node {
	if child, ok := n.First(key).(Node); ok && child != nil {
		return child
	}
	return Node{}
}

// Descend follows keys, taking the first occurrence at every level.
func (n Node) Descend(keys ...string) Node {
	current := n
	for _, key := range keys {
		current = current.Child(key)
	}
	return current
}

// Nodes returns every occurrence of key that is a Node, in document order.
func (n Node) Nodes(key string) []Node {
	var out []Node
	for _, v := range n[key] {
		if child, ok := v.(Node); ok {
			out = append(out, child)
		}
	}
	return out
}

// Text returns the first occurrence of key when it is a plain leaf.
func (n Node) Text(key string) string {
	return TextOf(n.First(key))
}

// AttrText returns the value of the first occurrence of key when it is an
// attributed leaf.
func (n Node) AttrText(key string) string {
	return AttrTextOf(n.First(key))
}

// TextOf returns the string of a plain leaf and "" for every other shape.
func TextOf(v Value) string {
	if s, ok := v.(Scalar); ok {
		return string(s)
	}
	return ""
}

// AttrTextOf returns the value of an attributed leaf and "" for every other
// shape.
func AttrTextOf(v Value) string {
	if a, ok := v.(Attributed); ok {
		return a.Value
	}
	return ""
}

// joinText concatenates every leaf occurrence of key with sep. Attributed
// leaves contribute their value, nested nodes contribute nothing.
func (n Node) joinText(key, sep string) string {
	values := n[key]
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case Scalar:
			parts = append(parts, string(t))
		case Attributed:
			parts = append(parts, t.Value)
		default:
			parts = append(parts, "")
		}
	}
	return strings.Join(parts, sep)
}
