package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/cfgdot/internal/builder"
	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"github.com/vk/cfgdot/internal/fsutil"
	"github.com/vk/cfgdot/internal/loader"
	"github.com/vk/cfgdot/internal/model"
	"github.com/vk/cfgdot/internal/render"
	"github.com/vk/cfgdot/internal/statemachine"
)

// ArtifactExt is the extension of every generated file.
const ArtifactExt = ".gv"

// Run loads the input document and writes the selected views. The first
// failing phase stops the run; artifacts of earlier phases stay in place.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "views", a.config.Views)
	a.artifacts = nil

	doc, err := loader.Load(ctx, a.config.InputPath, a.config.Format)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration document loaded.", "top_level_nodes", doc.Cursor().NumChildren())

	if a.config.wants(ViewApplication) || a.config.wants(ViewStates) {
		rtApp, err := builder.Build(ctx, doc, builder.Options{
			Conventions: a.conventions,
			MaxDepth:    a.config.MaxDepth,
		})
		if err != nil {
			return fmt.Errorf("failed to build application: %w", err)
		}
		if err := a.writeApplicationViews(ctx, rtApp); err != nil {
			return err
		}
	}

	if a.config.wants(ViewStateMachine) {
		if err := a.writeStateMachine(ctx, doc); err != nil {
			return err
		}
	}

	if a.config.wants(ViewObjects) {
		if err := a.writeObjects(ctx, doc); err != nil {
			return err
		}
	}

	a.logger.Info("🏁 Views generated.", "artifacts", len(a.artifacts))
	return nil
}

func (a *App) writeApplicationViews(ctx context.Context, rtApp *model.Application) error {
	if a.config.wants(ViewApplication) {
		err := a.write(ctx, "RTApp", func(w io.Writer) error {
			return render.WriteApplication(w, rtApp, a.style)
		})
		if err != nil {
			return err
		}
	}
	if a.config.wants(ViewStates) {
		for _, st := range rtApp.States {
			err := a.write(ctx, "State"+st.Name, func(w io.Writer) error {
				return render.WriteState(w, st, a.style)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *App) writeStateMachine(ctx context.Context, doc *config.Document) error {
	sm, err := statemachine.Extract(ctx, doc, a.conventions)
	if errors.Is(err, statemachine.ErrNotFound) {
		a.logger.Warn("No state machine defined, skipping its view.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to extract state machine: %w", err)
	}
	return a.write(ctx, "StateMachine", func(w io.Writer) error {
		return render.WriteStateMachine(w, sm, render.StateMachineOptions{
			Style:                a.style,
			Conventions:          a.conventions,
			ShowErrorTransitions: a.config.ShowErrorTransitions,
		})
	})
}

// writeObjects exports one object tree per top-level node.
func (a *App) writeObjects(ctx context.Context, doc *config.Document) error {
	for i, top := range doc.Cursor().Children() {
		err := a.write(ctx, fmt.Sprintf("Objects_%d", i), func(w io.Writer) error {
			return render.WriteObjects(w, top, render.ObjectsOptions{
				Style:          a.style,
				ClassAttribute: a.conventions.ClassAttribute,
				MaxDepth:       a.config.MaxDepth,
			})
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *App) write(ctx context.Context, name string, emit func(io.Writer) error) error {
	path := a.config.OutputPrefix + name + ArtifactExt
	if err := fsutil.ReplaceFile(path, emit); err != nil {
		return fmt.Errorf("failed to write view '%s': %w", name, err)
	}
	a.artifacts = append(a.artifacts, path)
	ctxlog.FromContext(ctx).Debug("Artifact written.", "path", path)
	return nil
}
