package render

import (
	"io"

	"github.com/vk/cfgdot/internal/model"
	"github.com/vk/cfgdot/internal/nodeid"
)

// WriteState renders the view of a single state: its clusters, one edge per
// signal binding of every function occurrence (data source to function for
// inputs, function to data source for outputs), and declarations of the data
// sources those edges reference.
func WriteState(w io.Writer, st *model.State, style Style) error {
	d := newDotWriter(w, style)
	d.header()
	d.functionNodes(st)
	d.stateCluster(st)
	for _, th := range st.Threads {
		for _, fn := range th.Functions {
			occurrence := quote(nodeid.Occurrence(st.Name, th.Name, fn.QualifiedName))
			for _, ds := range fn.Inputs() {
				d.printf("%s->%s\n", quote(ds.Name), occurrence)
			}
			for _, ds := range fn.Outputs() {
				d.printf("%s->%s\n", occurrence, quote(ds.Name))
			}
		}
	}
	d.dataSourceNodes(st.ReferencedDataSources())
	d.line("}")
	return d.err
}
