package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/cfgdot/internal/config"
)

const sampleHCL = `
node "+App" {
  Class = "RealTimeApplication"

  node "+Functions" {
    Class = ReferenceContainer

    node "+M1" {
      Class = "TypeA"
      node "InputSignals" {
        node "Sig1" {
          DataSource = "DS1"
          Type = uint32
        }
      }
    }
  }

  node "+States" {
    Class = "ReferenceContainer"
    node "+S1" {
      Class = "RealTimeState"
      node "+Threads" {
        Class = "ReferenceContainer"
        node "+T1" {
          Class     = "RealTimeThread"
          Functions = [M1, G1.M2, "M3"]
          CPUs      = 1
          Gains     = [[1, 2], [3.5]]
        }
      }
    }
  }
}
`

func TestParse_TranslatesBlocksAndAttributes(t *testing.T) {
	doc, err := Parse(context.Background(), "app.hcl", []byte(sampleHCL))
	require.NoError(t, err)
	assert.Equal(t, "app.hcl", doc.Source)

	require.Len(t, doc.Root.Children, 1)
	app := doc.Root.Children[0]
	assert.Equal(t, "+App", app.Name)

	cur := doc.Cursor()
	thread, err := cur.Path("App.States.S1.Threads.T1")
	require.NoError(t, err)

	want := []*config.Attribute{
		{Name: "Class", Values: []string{"RealTimeThread"}},
		{Name: "Functions", Values: []string{"M1", "G1.M2", "M3"}, IsArray: true},
		{Name: "CPUs", Values: []string{"1"}},
		{Name: "Gains", Values: []string{"1", "2", "3.5"}, IsArray: true},
	}
	if diff := cmp.Diff(want, thread.Node().Attrs); diff != "" {
		t.Errorf("thread attributes mismatch (-want +got):\n%s", diff)
	}

	class, err := cur.Path("App.Functions")
	require.NoError(t, err)
	v, err := class.Read("Class")
	require.NoError(t, err)
	assert.Equal(t, "ReferenceContainer", v)

	sig, err := cur.Path("App.Functions.M1.InputSignals.Sig1")
	require.NoError(t, err)
	ds, err := sig.Read("DataSource")
	require.NoError(t, err)
	assert.Equal(t, "DS1", ds)
	typ, err := sig.Read("Type")
	require.NoError(t, err)
	assert.Equal(t, "uint32", typ)
}

func TestParse_BlockOrderIsPreserved(t *testing.T) {
	src := `
node "+B" { Class = "X" }
node "+A" { Class = "Y" }
node "+C" { Class = "Z" }
`
	doc, err := Parse(context.Background(), "order.hcl", []byte(src))
	require.NoError(t, err)

	var names []string
	for _, c := range doc.Root.Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"+B", "+A", "+C"}, names)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "syntax error", src: `node "+A" {`},
		{name: "unknown block type", src: `step "+A" {}`},
		{name: "missing label", src: `node {}`},
		{name: "two labels", src: `node "a" "b" {}`},
		{name: "function call", src: `node "+A" { Class = upper("x") }`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(context.Background(), "bad.hcl", []byte(tc.src))
			require.Error(t, err)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleHCL), 0o644))

	doc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	assert.Len(t, doc.Root.Children, 1)

	_, err = NewLoader().Load(context.Background(), filepath.Join(dir, "missing.hcl"))
	require.Error(t, err)
}
