// Package toml_adapter loads TOML configuration documents.
//
// Tables become nodes and key/value pairs become attributes. Node names that
// carry a sigil must be quoted, e.g. `["+App"."+Functions"]`. Arrays of
// tables have no counterpart in the configuration tree and are rejected.
package toml_adapter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
)

// Loader is the TOML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates a single TOML file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read TOML file %s: %w", path, err)
	}
	return Parse(ctx, path, src)
}

// Parse translates TOML source into a configuration document. Decoding into a
// map loses key order, so the tree is rebuilt from MetaData.Keys, which lists
// keys in the order they were defined.
func Parse(ctx context.Context, filename string, src []byte) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "file", filename)

	var raw map[string]any
	md, err := toml.Decode(string(src), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML file %s: %w", filename, err)
	}

	doc := config.NewDocument(filename)
	b := &treeBuilder{root: doc.Root, nodes: map[string]*config.Node{}}
	for _, key := range md.Keys() {
		if err := b.add(raw, key); err != nil {
			return nil, fmt.Errorf("failed to decode TOML file %s: key %q: %w", filename, key.String(), err)
		}
	}

	logger.Debug("TOML loading complete.", "file", filename, "top_level_nodes", len(doc.Root.Children))
	return doc, nil
}

type treeBuilder struct {
	root  *config.Node
	nodes map[string]*config.Node
}

// node returns the node for a table path, creating missing ancestors.
func (b *treeBuilder) node(path []string) *config.Node {
	if len(path) == 0 {
		return b.root
	}
	id := strings.Join(path, "\x00")
	if n, ok := b.nodes[id]; ok {
		return n
	}
	n := b.node(path[:len(path)-1]).AddChild(path[len(path)-1])
	b.nodes[id] = n
	return n
}

func (b *treeBuilder) add(raw map[string]any, key toml.Key) error {
	value, ok := lookup(raw, key)
	if !ok {
		return fmt.Errorf("value not found")
	}

	switch v := value.(type) {
	case map[string]any:
		b.node(key)
		return nil
	case []map[string]any:
		return fmt.Errorf("arrays of tables are not supported")
	case []any:
		values, err := flatten(v)
		if err != nil {
			return err
		}
		b.node(key[:len(key)-1]).SetArray(key[len(key)-1], values)
		return nil
	default:
		b.node(key[:len(key)-1]).SetScalar(key[len(key)-1], fmt.Sprint(v))
		return nil
	}
}

// lookup walks the decoded tables along key. Keys nested in arrays of tables
// report false.
func lookup(raw map[string]any, key toml.Key) (any, bool) {
	var cur any = raw
	for _, part := range key {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func flatten(items []any) ([]string, error) {
	values := []string{}
	for _, item := range items {
		switch v := item.(type) {
		case []any:
			nested, err := flatten(v)
			if err != nil {
				return nil, err
			}
			values = append(values, nested...)
		case map[string]any:
			return nil, fmt.Errorf("arrays may only contain scalars")
		default:
			values = append(values, fmt.Sprint(v))
		}
	}
	return values, nil
}
