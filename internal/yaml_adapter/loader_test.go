package yaml_adapter

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

const sampleYAML = `
+App:
  Class: RealTimeApplication
  +Functions:
    Class: ReferenceContainer
    +M1: &gam
      Class: TypeA
      Gains: [1, 2, [3, 4]]
    +M2: *gam
  +Data:
    Class: ReferenceContainer
    +DS1:
      Class: StoreA
      Note: ~
`

const sampleJSON = `{
  "+App": {
    "Class": "RealTimeApplication",
    "+States": {
      "Class": "ReferenceContainer",
      "+S1": {
        "Class": "RealTimeState",
        "+Threads": {
          "+T1": {"Class": "RealTimeThread", "Functions": ["M1", "G1.M2"]}
        }
      }
    }
  }
}`

func TestParse_YAML(t *testing.T) {
	doc, err := Parse(context.Background(), "app.yaml", []byte(sampleYAML))
	require.NoError(t, err)

	cur := doc.Cursor()
	m1, err := cur.Path("App.Functions.M1")
	require.NoError(t, err)
	want := []*config.Attribute{
		{Name: "Class", Values: []string{"TypeA"}},
		{Name: "Gains", Values: []string{"1", "2", "3", "4"}, IsArray: true},
	}
	if diff := cmp.Diff(want, m1.Node().Attrs); diff != "" {
		t.Errorf("M1 attributes mismatch (-want +got):\n%s", diff)
	}

	m2, err := cur.Path("App.Functions.+M2")
	require.NoError(t, err)
	class, err := m2.Read("Class")
	require.NoError(t, err)
	assert.Equal(t, "TypeA", class, "aliases resolve to their anchor")

	ds, err := cur.Path("App.Data.DS1")
	require.NoError(t, err)
	note, err := ds.Read("Note")
	require.NoError(t, err)
	assert.Equal(t, "", note)

	var names []string
	for _, c := range doc.Root.Children[0].Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"+Functions", "+Data"}, names)
}

func TestParse_JSON(t *testing.T) {
	doc, err := Parse(context.Background(), "app.json", []byte(sampleJSON))
	require.NoError(t, err)

	thread, err := doc.Cursor().Path("App.States.S1.Threads.T1")
	require.NoError(t, err)
	fns, err := thread.ReadArray("Functions")
	require.NoError(t, err)
	assert.Equal(t, []string{"M1", "G1.M2"}, fns)
}

func TestParse_EmptyDocument(t *testing.T) {
	for _, src := range []string{"", "~\n"} {
		doc, err := Parse(context.Background(), "empty.yaml", []byte(src))
		require.NoError(t, err)
		assert.Empty(t, doc.Root.Children)
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "top level sequence", src: "- a\n- b\n"},
		{name: "top level scalar", src: "hello\n"},
		{name: "mapping inside sequence", src: "A:\n  L:\n    - x: 1\n"},
		{name: "malformed", src: "A: [1, 2\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(context.Background(), "bad.yaml", []byte(tc.src))
			require.Error(t, err)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	doc, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	require.Len(t, doc.Root.Children, 1)
	assert.Equal(t, "+App", doc.Root.Children[0].Name)
}
