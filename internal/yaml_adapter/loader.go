// Package yaml_adapter loads YAML and JSON configuration documents.
//
// Mappings become nodes, scalars become scalar attributes and sequences of
// scalars become array attributes. The document is walked through the
// yaml.Node API rather than decoded into Go maps so declaration order
// survives; JSON is read by the same decoder as a YAML subset.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML/JSON implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates a single YAML or JSON file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	return Parse(ctx, path, src)
}

// Parse translates YAML source into a configuration document. Only the first
// document of a multi-document stream is read.
func Parse(ctx context.Context, filename string, src []byte) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file", filename)

	doc := config.NewDocument(filename)

	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(src)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			logger.Warn("YAML document is empty.", "file", filename)
			return doc, nil
		}
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	top := resolve(&root)
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = resolve(top.Content[0])
	}
	if top.Kind == yaml.ScalarNode && top.ShortTag() == "!!null" {
		return doc, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to decode YAML file %s: line %d: top level must be a mapping", filename, top.Line)
	}

	if err := translateMapping(top, doc.Root); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	logger.Debug("YAML loading complete.", "file", filename, "top_level_nodes", len(doc.Root.Children))
	return doc, nil
}

// resolve follows alias nodes to their anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func translateMapping(m *yaml.Node, n *config.Node) error {
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], resolve(m.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
		}

		switch value.Kind {
		case yaml.MappingNode:
			if err := translateMapping(value, n.AddChild(key.Value)); err != nil {
				return err
			}
		case yaml.SequenceNode:
			values, err := flatten(value)
			if err != nil {
				return fmt.Errorf("key %q: %w", key.Value, err)
			}
			n.SetArray(key.Value, values)
		case yaml.ScalarNode:
			n.SetScalar(key.Value, scalarValue(value))
		default:
			return fmt.Errorf("line %d: unsupported value for key %q", value.Line, key.Value)
		}
	}
	return nil
}

// flatten collects the scalars of a possibly nested sequence.
func flatten(seq *yaml.Node) ([]string, error) {
	values := []string{}
	for _, item := range seq.Content {
		item = resolve(item)
		switch item.Kind {
		case yaml.ScalarNode:
			values = append(values, scalarValue(item))
		case yaml.SequenceNode:
			nested, err := flatten(item)
			if err != nil {
				return nil, err
			}
			values = append(values, nested...)
		default:
			return nil, fmt.Errorf("line %d: sequences may only contain scalars", item.Line)
		}
	}
	return values, nil
}

func scalarValue(n *yaml.Node) string {
	if n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}
