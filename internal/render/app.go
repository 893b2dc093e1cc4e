package render

import (
	"io"
	"strings"

	"github.com/vk/cfgdot/internal/model"
	"github.com/vk/cfgdot/internal/nodeid"
)

func (d *dotWriter) header() {
	d.line("digraph G {")
	d.line("rankdir=LR")
	d.line("concentrate=true")
}

// functionNodes declares one node per function occurrence of the state.
func (d *dotWriter) functionNodes(st *model.State) {
	for _, th := range st.Threads {
		for _, fn := range th.Functions {
			id := quote(nodeid.Occurrence(st.Name, th.Name, fn.QualifiedName))
			d.recordNode(id, fn.QualifiedName, fn.Class, d.style.FunctionColor)
		}
	}
}

// stateCluster groups the state's threads, each thread chaining its
// function occurrences in execution order.
func (d *dotWriter) stateCluster(st *model.State) {
	d.printf("subgraph cluster_%s {\n", clusterID(st.Name))
	d.printf("label = %s\n", quote("State: "+st.Name))
	for _, th := range st.Threads {
		d.printf("subgraph cluster_%s {\n", clusterID(st.Name, th.Name))
		d.printf("label = %s\n", quote("Thread: "+th.Name))
		d.printf("color= %s\n", quote(d.style.ThreadColor))
		if len(th.Functions) > 0 {
			chain := make([]string, len(th.Functions))
			for i, fn := range th.Functions {
				chain[i] = quote(nodeid.Occurrence(st.Name, th.Name, fn.QualifiedName))
			}
			d.line(strings.Join(chain, "->"))
		}
		d.line("}")
	}
	d.line("}")
}

func (d *dotWriter) dataSourceNodes(list []*model.DataSource) {
	for _, ds := range list {
		d.recordNode(quote(ds.Name), ds.Name, ds.Class, d.style.DataSourceColor)
	}
}

// WriteApplication renders the whole-application view. Signal edges are
// left out; the data sources form a separate, unconnected cluster.
func WriteApplication(w io.Writer, app *model.Application, style Style) error {
	d := newDotWriter(w, style)
	d.header()
	for _, st := range app.States {
		d.functionNodes(st)
	}
	for _, st := range app.States {
		d.stateCluster(st)
	}
	d.line("subgraph cluster_DataSources {")
	d.line(`label = "Data Sources"`)
	d.dataSourceNodes(app.DataSources.All())
	d.line("}")
	d.line("}")
	return d.err
}
