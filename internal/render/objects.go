package render

import (
	"io"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/nodeid"
)

// ObjectsOptions tunes the generic object-tree view.
type ObjectsOptions struct {
	Style          Style
	ClassAttribute string
	// MaxDepth bounds the recursion below the exported node. Zero or less
	// selects config.DefaultMaxDepth.
	MaxDepth int
}

// WriteObjects renders the subtree under top. A node with at least one
// classed child becomes a cluster labeled with its name and class; a classed
// node without classed children becomes a leaf. Unclassed nodes are only
// walked through.
func WriteObjects(w io.Writer, top config.Cursor, opts ObjectsOptions) error {
	d := newDotWriter(w, opts.Style)
	d.line("digraph G {")
	d.line("bgcolor=white")
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = config.DefaultMaxDepth
	}
	if err := d.object(top, "", top.Depth(), opts); err != nil {
		return err
	}
	d.line("}")
	return d.err
}

func (d *dotWriter) object(cur config.Cursor, parentID string, base int, opts ObjectsOptions) error {
	if cur.Depth()-base > opts.MaxDepth {
		return config.Errorf(config.ErrMaxDepth, cur.Location(), "limit is %d", opts.MaxDepth)
	}

	class := classOf(cur, opts.ClassAttribute)
	id := nodeid.ObjectPath(parentID, cur.Name())
	children := cur.Children()

	cluster := false
	for _, child := range children {
		if classOf(child, opts.ClassAttribute) != "" {
			cluster = true
			break
		}
	}

	if cluster {
		d.printf("subgraph %s {\n", quote("cluster_"+id))
		d.printf("label=%s\n", d.nameClassLabel(cur.LocalName(), class))
	}
	for _, child := range children {
		if err := d.object(child, id, base, opts); err != nil {
			return err
		}
	}
	if cluster {
		d.line("}")
	} else if class != "" {
		d.recordNode(quote(id), cur.LocalName(), class, d.style.ObjectColor)
	}
	return nil
}

func classOf(cur config.Cursor, attr string) string {
	class, err := cur.Read(attr)
	if err != nil {
		return ""
	}
	return class
}
