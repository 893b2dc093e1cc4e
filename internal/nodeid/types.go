// internal/nodeid/types.go
package nodeid

// Address is the structured representation of a qualified name. It is
// modeled as a path from the modules root, broken into segments.
type Address struct {
	Path []string
}

// New creates an address from already sigil-stripped segments.
func New(segments ...string) *Address {
	path := make([]string, len(segments))
	copy(path, segments)
	return &Address{Path: path}
}

// Len returns the number of segments.
func (a *Address) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Path)
}

// Last returns the final segment, or "" for an empty address.
func (a *Address) Last() string {
	if a.Len() == 0 {
		return ""
	}
	return a.Path[len(a.Path)-1]
}
