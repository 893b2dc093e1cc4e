package builder

import (
	"context"
	"fmt"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"github.com/vk/cfgdot/internal/model"
)

// linkSignals binds the signals of every registered Function to DataSources.
// It visits each Function once, however many threads schedule it.
func (b *builder) linkSignals(ctx context.Context, appCur config.Cursor) error {
	if b.app.Functions.Len() == 0 {
		return nil
	}
	modules, err := appCur.Child(b.conv.FunctionsRoot)
	if err != nil {
		return fmt.Errorf("failed to locate functions: %w", err)
	}

	for _, fn := range b.app.Functions.All() {
		fnCur, err := modules.Path(fn.QualifiedName)
		if err != nil {
			return fmt.Errorf("failed to locate function '%s': %w", fn.QualifiedName, err)
		}
		fnCtx, _ := ctxlog.With(ctx, "function", fn.QualifiedName)
		b.linkDirection(fnCtx, fnCur, b.conv.InputSignals, fn.AddInput)
		b.linkDirection(fnCtx, fnCur, b.conv.OutputSignals, fn.AddOutput)
	}
	return nil
}

// linkDirection reads the signals under the named container and hands each
// resolved DataSource to add. A missing container, a signal without a data
// source and an unknown data source are all skipped.
func (b *builder) linkDirection(ctx context.Context, fnCur config.Cursor, container string, add func(*model.DataSource)) {
	logger := ctxlog.FromContext(ctx)

	signals, err := fnCur.Child(container)
	if err != nil {
		return
	}
	for _, sig := range signals.Children() {
		if !sig.Has(b.conv.DataSourceAttribute) {
			continue
		}
		ref, err := sig.Read(b.conv.DataSourceAttribute)
		if err != nil {
			logger.Debug("Ignoring unreadable signal binding.", "signal", sig.Location(), "error", err)
			continue
		}
		name := config.StripSigil(ref)
		ds, ok := b.app.DataSources.Get(name)
		if !ok {
			logger.Debug("Dropping signal bound to an unknown data source.",
				"error", config.Errorf(config.ErrUnresolvedReference, sig.Location(), "data source %q", name))
			continue
		}
		add(ds)
	}
}
