package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/formats/dot"
	"gonum.org/v1/gonum/graph/formats/dot/ast"
)

// parsedGraph is the part of a DOT file the tests care about.
type parsedGraph struct {
	edges    [][2]string
	nodes    map[string]map[string]string
	clusters []string
	// members maps a subgraph id to the node ids declared or chained in it.
	members map[string][]string
	attrs   map[string]string
}

func unquote(id string) string {
	return strings.Trim(id, `"`)
}

// parseDOT parses src with gonum's DOT parser and flattens the statements.
func parseDOT(t *testing.T, src string) *parsedGraph {
	t.Helper()
	file, err := dot.ParseString(src)
	require.NoError(t, err, "output is not valid DOT:\n%s", src)
	require.Len(t, file.Graphs, 1)
	require.True(t, file.Graphs[0].Directed)

	g := &parsedGraph{
		nodes:   map[string]map[string]string{},
		members: map[string][]string{},
		attrs:   map[string]string{},
	}
	g.walk(file.Graphs[0].Stmts, "")
	return g
}

func (g *parsedGraph) walk(stmts []ast.Stmt, scope string) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.NodeStmt:
			id := unquote(s.Node.ID)
			attrs := map[string]string{}
			for _, a := range s.Attrs {
				attrs[a.Key] = a.Val
			}
			g.nodes[id] = attrs
			if scope != "" {
				g.members[scope] = append(g.members[scope], id)
			}
		case *ast.EdgeStmt:
			from := g.vertex(s.From, scope)
			for e := s.To; e != nil; e = e.To {
				to := g.vertex(e.Vertex, scope)
				g.edges = append(g.edges, [2]string{from, to})
				from = to
			}
		case *ast.Subgraph:
			id := unquote(s.ID)
			g.clusters = append(g.clusters, id)
			g.walk(s.Stmts, id)
		case *ast.Attr:
			key := s.Key
			if scope != "" {
				key = scope + "." + key
			}
			g.attrs[key] = s.Val
		}
	}
}

func (g *parsedGraph) vertex(v ast.Vertex, scope string) string {
	n, ok := v.(*ast.Node)
	if !ok {
		return ""
	}
	id := unquote(n.ID)
	if scope != "" {
		g.members[scope] = append(g.members[scope], id)
	}
	return id
}

func (g *parsedGraph) hasEdge(from, to string) bool {
	for _, e := range g.edges {
		if e[0] == from && e[1] == to {
			return true
		}
	}
	return false
}
