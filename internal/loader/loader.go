// Package loader picks the document loader for an input file, either from an
// explicit format name or from the file extension.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"github.com/vk/cfgdot/internal/hcl_adapter"
	"github.com/vk/cfgdot/internal/marte_adapter"
	"github.com/vk/cfgdot/internal/toml_adapter"
	"github.com/vk/cfgdot/internal/yaml_adapter"
)

// Supported format names.
const (
	FormatAuto  = "auto"
	FormatMARTe = "cfg"
	FormatHCL   = "hcl"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTOML  = "toml"
)

// ErrUnknownFormat is returned when no loader matches the requested format
// or the file extension.
var ErrUnknownFormat = errors.New("unknown configuration format")

var aliases = map[string]string{
	"cfg":   FormatMARTe,
	"marte": FormatMARTe,
	"hcl":   FormatHCL,
	"yaml":  FormatYAML,
	"yml":   FormatYAML,
	"json":  FormatJSON,
	"toml":  FormatTOML,
}

// Formats lists the accepted values of an explicit format, auto included.
func Formats() []string {
	return []string{FormatAuto, FormatMARTe, FormatHCL, FormatYAML, FormatJSON, FormatTOML}
}

// Detect resolves the effective format. An empty or "auto" format falls back
// to the extension of path.
func Detect(path, format string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "" || name == FormatAuto {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if name == "" {
			return "", fmt.Errorf("%w: %s has no extension, set the format explicitly", ErrUnknownFormat, path)
		}
	}
	resolved, ok := aliases[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return resolved, nil
}

// ForFormat returns the loader of a resolved format.
func ForFormat(format string) (config.Loader, error) {
	switch format {
	case FormatMARTe:
		return marte_adapter.NewLoader(), nil
	case FormatHCL:
		return hcl_adapter.NewLoader(), nil
	case FormatYAML, FormatJSON:
		return yaml_adapter.NewLoader(), nil
	case FormatTOML:
		return toml_adapter.NewLoader(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load detects the format of path and reads it into a document.
func Load(ctx context.Context, path, format string) (*config.Document, error) {
	resolved, err := Detect(path, format)
	if err != nil {
		return nil, err
	}
	l, err := ForFormat(resolved)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Loading configuration document.", "path", path, "format", resolved)
	return l.Load(ctx, path)
}
