// This file maps HCL bodies onto configuration nodes.

package hcl_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
)

// translateBody copies the attributes and `node` blocks of body into n.
// hclsyntax keeps attributes in a map, so they are sorted back into source
// order before being appended.
func translateBody(ctx context.Context, body *hclsyntax.Body, n *config.Node) error {
	logger := ctxlog.FromContext(ctx)

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	for _, attr := range attrs {
		values, isArray, err := exprToValues(attr.Expr)
		if err != nil {
			return fmt.Errorf("attribute '%s' at %s: %w", attr.Name, attr.SrcRange.String(), err)
		}
		if isArray {
			n.SetArray(attr.Name, values)
		} else {
			n.SetScalar(attr.Name, values[0])
		}
	}

	for _, block := range body.Blocks {
		if block.Type != BlockType {
			return blockError(block, fmt.Sprintf("unsupported block type %q, expected %q", block.Type, BlockType))
		}
		if len(block.Labels) != 1 {
			return blockError(block, fmt.Sprintf("a %q block needs exactly one label, got %d", BlockType, len(block.Labels)))
		}
		logger.Debug("Translating HCL node block.", "name", block.Labels[0])
		child := n.AddChild(block.Labels[0])
		if err := translateBody(ctx, block.Body, child); err != nil {
			return err
		}
	}
	return nil
}

func blockError(block *hclsyntax.Block, detail string) error {
	rng := block.DefRange()
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid block",
		Detail:   detail,
		Subject:  &rng,
	}}
}
