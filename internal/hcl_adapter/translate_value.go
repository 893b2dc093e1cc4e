// This file converts HCL attribute expressions into the string values stored
// in the configuration tree.

package hcl_adapter

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// exprToValues evaluates expr without variables. Bare words such as
// `Class = IOGAM` or `DataSource = DDB1` are references in HCL terms, so they
// are taken verbatim from the traversal instead of being evaluated. Tuples
// become arrays; nested tuples are flattened.
func exprToValues(expr hclsyntax.Expression) ([]string, bool, error) {
	if tuple, ok := expr.(*hclsyntax.TupleConsExpr); ok {
		values := []string{}
		for _, elem := range tuple.Exprs {
			vals, _, err := exprToValues(elem)
			if err != nil {
				return nil, false, err
			}
			values = append(values, vals...)
		}
		return values, true, nil
	}

	if word, ok := bareWord(expr); ok {
		return []string{word}, false, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, false, diags
	}
	return ctyToValues(val)
}

// bareWord returns the dotted source text of a variable-free traversal.
func bareWord(expr hcl.Expression) (string, bool) {
	if _, ok := expr.(*hclsyntax.ScopeTraversalExpr); !ok {
		return "", false
	}
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return "", false
	}
	parts := make([]string, 0, len(traversal))
	for _, step := range traversal {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			parts = append(parts, s.Name)
		case hcl.TraverseAttr:
			parts = append(parts, s.Name)
		default:
			return "", false
		}
	}
	return strings.Join(parts, "."), true
}

func ctyToValues(val cty.Value) ([]string, bool, error) {
	if !val.IsKnown() {
		return nil, false, fmt.Errorf("value is not known")
	}
	if val.IsNull() {
		return []string{""}, false, nil
	}

	ty := val.Type()
	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		values := []string{}
		it := val.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			vals, _, err := ctyToValues(elem)
			if err != nil {
				return nil, false, err
			}
			values = append(values, vals...)
		}
		return values, true, nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, false, fmt.Errorf("cannot convert %s to a string: %w", ty.FriendlyName(), err)
	}
	return []string{str.AsString()}, false, nil
}
