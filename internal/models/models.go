package models

import (
	"bytes"
	"encoding/json"
)

// Node is one node of the generic XML-derived tree produced by the parser.
// It is either a Scalar (bare text content) or an *Element.
type Node interface {
	node()
}

// Scalar is leaf text content.
type Scalar string

func (Scalar) node() {}

// Attribute is a single XML attribute, kept in the order the decoder
// reported it.
type Attribute struct {
	Name  string
	Value string
}

// ChildGroup holds all sibling elements sharing a tag name, in document
// order. Repeated sibling tags collapse into one group; a group of length
// one still represents a single child, not an array.
type ChildGroup struct {
	Name  string
	Nodes []Node
}

// Element is a parsed XML element. Children preserve document order among
// distinct tag names. Declaration holds the raw content of the <?xml ...?>
// instruction when present (only ever set on the document node); the
// normalizer checks presence only and never emits it.
type Element struct {
	Attributes  []Attribute
	Text        string
	Declaration string
	Children    []ChildGroup
}

func (*Element) node() {}

// AddChild appends n under name, collapsing into an existing group when the
// name repeats among siblings.
func (e *Element) AddChild(name string, n Node) {
	for i := range e.Children {
		if e.Children[i].Name == name {
			e.Children[i].Nodes = append(e.Children[i].Nodes, n)
			return
		}
	}
	e.Children = append(e.Children, ChildGroup{Name: name, Nodes: []Node{n}})
}

// IsTextOnly reports whether text is the element's sole content, which is
// the condition for collapsing the element to a bare string.
func (e *Element) IsTextOnly() bool {
	return e.Text != "" && len(e.Attributes) == 0 && len(e.Children) == 0 && e.Declaration == ""
}

// Value is a normalized JSON-compatible value: a string, an *Object, or an
// Array. The normalizer produces a fresh tree with no references back into
// the input.
type Value interface{}

// Array is an ordered sequence of normalized values.
type Array []Value

// Object is a JSON object that preserves key insertion order, which
// encoding/json maps cannot do (they marshal with sorted keys). Setting an
// existing key overwrites its value in place, keeping the original position.
type Object struct {
	members []member
	index   map[string]int
}

type member struct {
	key   string
	value Value
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or overwrites key.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, member{key: key, value: v})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].value, true
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}
	return keys
}

// MarshalJSON writes the members in insertion order without HTML escaping.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape is json.Marshal with HTML escaping off, so that text like
// "a<b" survives as written. json.Marshal has no knob for this; an Encoder
// does.
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
