// internal/nodeid/address.go
package nodeid

import (
	"slices"
	"strings"

	"github.com/vk/cfgdot/internal/config"
)

// String serializes the Address into its canonical dotted form.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return strings.Join(a.Path, ".")
}

// Equal checks for deep equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return slices.Equal(a.Path, other.Path)
}

// Child returns a new address extended with the sigil-stripped form of name.
// The receiver is not modified, so one prefix can be shared by siblings.
func (a *Address) Child(name string) *Address {
	n := a.Len()
	path := make([]string, n, n+1)
	if a != nil {
		copy(path, a.Path)
	}
	return &Address{Path: append(path, config.StripSigil(name))}
}

// Occurrence identifies one appearance of a function inside a thread of a
// state. A function shared by several threads gets one occurrence per thread.
func Occurrence(state, thread, qualifiedName string) string {
	return state + "." + thread + "." + qualifiedName
}

// objectReplacer maps the characters reserved by the object view to `_`.
var objectReplacer = strings.NewReplacer(":", "_", "-", "_")

// ObjectPath extends a parent object identifier with a node name for the
// generic tree view. The name is sigil-stripped and `:`/`-` become `_`.
func ObjectPath(parent, name string) string {
	local := objectReplacer.Replace(config.StripSigil(name))
	switch {
	case parent == "":
		return local
	case local == "":
		return parent
	default:
		return parent + "." + local
	}
}
