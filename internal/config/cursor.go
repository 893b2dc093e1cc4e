package config

import (
	"strings"
)

// Cursor is an immutable position in the configuration tree. It holds the
// full path from the root so that ancestors stay reachable; every move
// returns a new Cursor and leaves the receiver untouched.
type Cursor struct {
	path []*Node
}

// NewCursor returns a cursor positioned at root.
func NewCursor(root *Node) Cursor {
	return Cursor{path: []*Node{root}}
}

// Node returns the node under the cursor.
func (c Cursor) Node() *Node {
	if len(c.path) == 0 {
		return nil
	}
	return c.path[len(c.path)-1]
}

// Name returns the raw name of the current node.
func (c Cursor) Name() string {
	if n := c.Node(); n != nil {
		return n.Name
	}
	return ""
}

// LocalName returns the sigil-stripped name of the current node.
func (c Cursor) LocalName() string {
	return StripSigil(c.Name())
}

// Depth is the number of moves from the root to the current node.
func (c Cursor) Depth() int {
	return len(c.path) - 1
}

// IsRoot reports whether the cursor sits on the document root.
func (c Cursor) IsRoot() bool {
	return len(c.path) <= 1
}

// Location renders the raw names from the root to the current node, dot
// separated. It is meant for error messages and logs.
func (c Cursor) Location() string {
	if len(c.path) <= 1 {
		return ""
	}
	names := make([]string, 0, len(c.path)-1)
	for _, n := range c.path[1:] {
		names = append(names, n.Name)
	}
	return strings.Join(names, ".")
}

func (c Cursor) descend(n *Node) Cursor {
	next := make([]*Node, len(c.path), len(c.path)+1)
	copy(next, c.path)
	return Cursor{path: append(next, n)}
}

// Child moves to the named child. See Node.Child for the matching rules.
func (c Cursor) Child(name string) (Cursor, error) {
	n := c.Node()
	if n == nil {
		return Cursor{}, Errorf(ErrNavigation, "", "cursor is not positioned")
	}
	child, ok := n.Child(name)
	if !ok {
		return Cursor{}, Errorf(ErrNavigation, c.Location(), "no child named %q", name)
	}
	return c.descend(child), nil
}

// Path moves along a dot-separated sequence of child names.
func (c Cursor) Path(dotted string) (Cursor, error) {
	if dotted == "" {
		return Cursor{}, Errorf(ErrNavigation, c.Location(), "empty path")
	}
	cur := c
	for _, segment := range strings.Split(dotted, ".") {
		if segment == "" {
			return Cursor{}, Errorf(ErrNavigation, c.Location(), "path %q contains an empty segment", dotted)
		}
		next, err := cur.Child(segment)
		if err != nil {
			return Cursor{}, err
		}
		cur = next
	}
	return cur, nil
}

// ChildAt moves to the i-th child in declaration order.
func (c Cursor) ChildAt(i int) (Cursor, error) {
	n := c.Node()
	if n == nil || i < 0 || i >= len(n.Children) {
		return Cursor{}, Errorf(ErrNavigation, c.Location(), "child index %d out of range", i)
	}
	return c.descend(n.Children[i]), nil
}

// NumChildren returns the number of child nodes.
func (c Cursor) NumChildren() int {
	if n := c.Node(); n != nil {
		return len(n.Children)
	}
	return 0
}

// Children returns a cursor for every child, in declaration order.
func (c Cursor) Children() []Cursor {
	n := c.Node()
	if n == nil {
		return nil
	}
	out := make([]Cursor, 0, len(n.Children))
	for _, child := range n.Children {
		out = append(out, c.descend(child))
	}
	return out
}

// Parent moves one level up.
func (c Cursor) Parent() (Cursor, error) {
	if c.IsRoot() {
		return Cursor{}, Errorf(ErrNavigation, "", "root has no parent")
	}
	return Cursor{path: c.path[:len(c.path)-1]}, nil
}

// Has reports whether the current node carries the named attribute.
func (c Cursor) Has(attr string) bool {
	n := c.Node()
	if n == nil {
		return false
	}
	_, ok := n.Attr(attr)
	return ok
}

// Read returns the scalar value of the named attribute.
func (c Cursor) Read(attr string) (string, error) {
	n := c.Node()
	if n == nil {
		return "", Errorf(ErrMissingAttribute, "", "cursor is not positioned")
	}
	a, ok := n.Attr(attr)
	if !ok {
		return "", Errorf(ErrMissingAttribute, c.Location(), "attribute %q not found", attr)
	}
	if a.IsArray {
		return "", Errorf(ErrMissingAttribute, c.Location(), "attribute %q is an array, expected a scalar", attr)
	}
	return a.Value(), nil
}

// ReadArray returns the values of the named attribute. A scalar attribute
// reads as a single-element array.
func (c Cursor) ReadArray(attr string) ([]string, error) {
	n := c.Node()
	if n == nil {
		return nil, Errorf(ErrMissingAttribute, "", "cursor is not positioned")
	}
	a, ok := n.Attr(attr)
	if !ok {
		return nil, Errorf(ErrMissingAttribute, c.Location(), "attribute %q not found", attr)
	}
	out := make([]string, len(a.Values))
	copy(out, a.Values)
	return out, nil
}

// ChildrenWithClass returns the children whose class attribute equals class.
// Children without a readable class are skipped.
func (c Cursor) ChildrenWithClass(classAttr, class string) []Cursor {
	var out []Cursor
	for _, child := range c.Children() {
		v, err := child.Read(classAttr)
		if err == nil && v == class {
			out = append(out, child)
		}
	}
	return out
}
