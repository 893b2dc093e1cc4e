package builder

import (
	"context"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"github.com/vk/cfgdot/internal/model"
	"github.com/vk/cfgdot/internal/nodeid"
)

// resolve expands one execution-list entry into Functions appended to thread.
// A dotted entry such as `G1.M2` is navigated segment by segment below the
// modules root; the segments before the last one become the qualified-name
// prefix of whatever the final node expands to.
func (b *builder) resolve(ctx context.Context, modules config.Cursor, ref string, thread *model.Thread) error {
	addr, err := nodeid.Parse(ref)
	if err != nil {
		return config.Errorf(config.ErrNavigation, modules.Location(), "invalid function reference %q: %v", ref, err)
	}

	cur := modules
	var prefix *nodeid.Address
	for i, segment := range addr.Path {
		cur, err = cur.Child(segment)
		if err != nil {
			return err
		}
		if i < addr.Len()-1 {
			prefix = prefix.Child(segment)
		}
	}
	return b.expand(ctx, modules.Depth(), cur, prefix, thread)
}

// expand turns the node under cur into Functions. Group nodes recurse into
// their children in declaration order with their own name appended to the
// prefix; any other node is a leaf Function.
func (b *builder) expand(ctx context.Context, base int, cur config.Cursor, prefix *nodeid.Address, thread *model.Thread) error {
	if cur.Depth()-base > b.maxDepth {
		return config.Errorf(config.ErrMaxDepth, cur.Location(), "limit is %d", b.maxDepth)
	}

	class, err := cur.Read(b.conv.ClassAttribute)
	if err != nil {
		return err
	}

	addr := prefix.Child(cur.Name())
	if class == b.conv.GroupClass {
		ctxlog.FromContext(ctx).Debug("Expanding function group.", "group", addr.String(), "children", cur.NumChildren())
		for _, child := range cur.Children() {
			if err := b.expand(ctx, base, child, addr, thread); err != nil {
				return err
			}
		}
		return nil
	}

	qualifiedName := addr.String()
	fn, created := b.app.Functions.Ensure(qualifiedName, func() *model.Function {
		return &model.Function{
			Name:          cur.LocalName(),
			QualifiedName: qualifiedName,
			Class:         class,
		}
	})
	if created {
		ctxlog.FromContext(ctx).Debug("Registered function.", "function", qualifiedName, "class", class)
	}
	thread.Append(fn)
	return nil
}
