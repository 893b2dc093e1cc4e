// Package marte_adapter loads documents written in the native MARTe2
// configuration syntax:
//
//	+App = {
//	    Class = RealTimeApplication
//	    +Functions = {
//	        Class = ReferenceContainer
//	        +GAM1 = {
//	            Class = IOGAM
//	            Gains = { 1.0, 2.0 }
//	        }
//	    }
//	}
//
// A brace block is an object when its first entry is a `name =` definition
// and an array otherwise. Nested arrays are flattened. Line (`//`) and block
// (`/* */`) comments are ignored, as are commas and `(type)` prefixes.
package marte_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
)

// Loader is the MARTe2 implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new MARTe2 configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates a single .cfg file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	return Parse(ctx, path, string(src))
}

// Parse translates MARTe2 source into a configuration document.
func Parse(ctx context.Context, filename string, src string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("MARTe loader started.", "file", filename)

	toks, err := tokenize(filename, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", filename, err)
	}

	doc := config.NewDocument(filename)
	p := &parser{toks: toks}
	if err := p.parseBody(doc.Root, false); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", filename, err)
	}

	logger.Debug("MARTe loading complete.", "file", filename, "tokens", len(toks), "top_level_nodes", len(doc.Root.Children))
	return doc, nil
}
