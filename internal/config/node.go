package config

import "strings"

// sigils are the leading characters that mark object and reference nodes in
// a configuration document. They are never part of a display name.
const sigils = "+$"

// StripSigil removes one leading object (`+`) or reference (`$`) marker from
// a raw node name. Any other leading character is passed through.
func StripSigil(name string) string {
	if name != "" && strings.IndexByte(sigils, name[0]) >= 0 {
		return name[1:]
	}
	return name
}

// Attribute is a leaf value of a node: either a scalar or a one-dimensional
// array of strings.
type Attribute struct {
	Name    string
	Values  []string
	IsArray bool
}

// Value returns the scalar value of the attribute, or the first element of
// an array attribute.
func (a *Attribute) Value() string {
	if a == nil || len(a.Values) == 0 {
		return ""
	}
	return a.Values[0]
}

// Node is a single object in the configuration tree. Names are kept raw,
// including any sigil; attributes and children keep declaration order.
type Node struct {
	Name     string
	Attrs    []*Attribute
	Children []*Node
}

// LocalName returns the node name with its sigil stripped.
func (n *Node) LocalName() string {
	return StripSigil(n.Name)
}

// Attr returns the first attribute with the given name.
func (n *Node) Attr(name string) (*Attribute, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Child returns the first child whose raw name equals name. When there is no
// exact match, the first child whose sigil-stripped name equals the
// sigil-stripped name is returned instead.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	local := StripSigil(name)
	for _, c := range n.Children {
		if c.LocalName() == local {
			return c, true
		}
	}
	return nil, false
}

// SetScalar appends a scalar attribute. Loaders use it while building a tree.
func (n *Node) SetScalar(name, value string) *Attribute {
	a := &Attribute{Name: name, Values: []string{value}}
	n.Attrs = append(n.Attrs, a)
	return a
}

// SetArray appends an array attribute.
func (n *Node) SetArray(name string, values []string) *Attribute {
	if values == nil {
		values = []string{}
	}
	a := &Attribute{Name: name, Values: values, IsArray: true}
	n.Attrs = append(n.Attrs, a)
	return a
}

// AddChild appends a new, empty child node and returns it.
func (n *Node) AddChild(name string) *Node {
	c := &Node{Name: name}
	n.Children = append(n.Children, c)
	return c
}

// Document is a fully parsed configuration document. Root is unnamed; its
// children are the top-level objects.
type Document struct {
	// Source describes where the document came from, e.g. a file path.
	Source string
	Root   *Node
}

// NewDocument returns an empty document for the given source.
func NewDocument(source string) *Document {
	return &Document{Source: source, Root: &Node{}}
}

// Cursor returns a cursor positioned at the document root.
func (d *Document) Cursor() Cursor {
	return NewCursor(d.Root)
}
