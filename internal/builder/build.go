package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"github.com/vk/cfgdot/internal/model"
)

// DefaultMaxDepth bounds group nesting under the modules root.
const DefaultMaxDepth = config.DefaultMaxDepth

// Options tunes a build.
type Options struct {
	Conventions config.Conventions
	// MaxDepth is the deepest group nesting accepted below the modules root.
	// Zero or less selects DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns the MARTe2 conventions and the default depth limit.
func DefaultOptions() Options {
	return Options{
		Conventions: config.DefaultConventions(),
		MaxDepth:    DefaultMaxDepth,
	}
}

type builder struct {
	conv     config.Conventions
	maxDepth int
	app      *model.Application
}

// Build constructs the resolved application from a configuration document.
func Build(ctx context.Context, doc *config.Document, opts Options) (*model.Application, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting application resolution.", "source", doc.Source)

	b := &builder{conv: opts.Conventions, maxDepth: opts.MaxDepth}
	if b.maxDepth <= 0 {
		b.maxDepth = DefaultMaxDepth
	}

	appCur, err := LocateApplication(doc.Cursor(), b.conv)
	if err != nil {
		return nil, err
	}
	b.app = model.NewApplication(appCur.LocalName())
	ctx, logger = ctxlog.With(ctx, "application", b.app.Name)

	if err := b.buildStates(ctx, appCur); err != nil {
		return nil, err
	}
	logger.Debug("Build: State construction complete.", "states", len(b.app.States), "functions", b.app.Functions.Len())

	if err := b.buildDataSources(ctx, appCur); err != nil {
		return nil, err
	}
	logger.Debug("Build: Data source registry complete.", "data_sources", b.app.DataSources.Len())

	if err := b.linkSignals(ctx, appCur); err != nil {
		return nil, err
	}
	logger.Debug("Build: Signal linking complete.")

	logger.Info("Build: Application resolved.", "states", len(b.app.States), "functions", b.app.Functions.Len(), "data_sources", b.app.DataSources.Len())
	return b.app, nil
}

// LocateApplication returns the single top-level node tagged with the
// application marker. Top-level nodes without a class are ignored.
func LocateApplication(root config.Cursor, conv config.Conventions) (config.Cursor, error) {
	matches := root.ChildrenWithClass(conv.ClassAttribute, conv.ApplicationClass)
	switch len(matches) {
	case 0:
		return config.Cursor{}, config.Errorf(config.ErrNavigation, root.Location(), "no top-level node with %s = %s", conv.ClassAttribute, conv.ApplicationClass)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name()
		}
		return config.Cursor{}, config.Errorf(config.ErrAmbiguous, root.Location(), "%d top-level nodes with %s = %s: %s", len(matches), conv.ClassAttribute, conv.ApplicationClass, strings.Join(names, ", "))
	}
}

// buildStates creates every State and Thread and resolves execution lists.
// The modules root is looked up on the first non-empty execution list, so an
// application without scheduled functions does not need one.
func (b *builder) buildStates(ctx context.Context, appCur config.Cursor) error {
	statesCur, err := appCur.Child(b.conv.StatesRoot)
	if err != nil {
		return fmt.Errorf("failed to locate states: %w", err)
	}

	var modules *config.Cursor
	for _, stateCur := range statesCur.Children() {
		state := b.app.AddState(stateCur.LocalName())
		stateCtx, logger := ctxlog.With(ctx, "state", state.Name)
		logger.Debug("Building state.")

		threadsCur, err := stateCur.Child(b.conv.ThreadsRoot)
		if err != nil {
			return fmt.Errorf("failed to locate threads of state '%s': %w", state.Name, err)
		}

		for _, threadCur := range threadsCur.Children() {
			thread := state.AddThread(threadCur.LocalName())
			threadCtx, threadLogger := ctxlog.With(stateCtx, "thread", thread.Name)

			refs, err := threadCur.ReadArray(b.conv.ExecutionList)
			if err != nil {
				return fmt.Errorf("failed to read execution list of thread '%s.%s': %w", state.Name, thread.Name, err)
			}
			threadLogger.Debug("Resolving execution list.", "entries", len(refs))

			if len(refs) > 0 && modules == nil {
				m, err := appCur.Child(b.conv.FunctionsRoot)
				if err != nil {
					return fmt.Errorf("failed to locate functions: %w", err)
				}
				modules = &m
			}
			for _, ref := range refs {
				if err := b.resolve(threadCtx, *modules, ref, thread); err != nil {
					return fmt.Errorf("failed to resolve '%s' in thread '%s.%s': %w", ref, state.Name, thread.Name, err)
				}
			}
		}
	}
	return nil
}
