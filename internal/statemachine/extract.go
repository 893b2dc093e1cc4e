// Package statemachine extracts the optional state machine of a configuration
// document. Its shape is independent of the real-time application: states
// hold events, and events hold the actions they trigger.
package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/ctxlog"
	"github.com/vk/cfgdot/internal/model"
)

// ErrNotFound is returned when no top-level node is tagged as a state
// machine. Callers treat it as an expected condition.
var ErrNotFound = errors.New("no state machine defined")

// Locate returns the first top-level node tagged as a state machine.
func Locate(ctx context.Context, root config.Cursor, conv config.Conventions) (config.Cursor, error) {
	matches := root.ChildrenWithClass(conv.ClassAttribute, conv.StateMachineClass)
	if len(matches) == 0 {
		return config.Cursor{}, ErrNotFound
	}
	if len(matches) > 1 {
		ctxlog.FromContext(ctx).Warn("Several state machines defined, using the first one.", "count", len(matches), "used", matches[0].Name())
	}
	return matches[0], nil
}

// Extract reads the state machine of doc.
func Extract(ctx context.Context, doc *config.Document, conv config.Conventions) (*model.StateMachine, error) {
	smCur, err := Locate(ctx, doc.Cursor(), conv)
	if err != nil {
		return nil, err
	}
	ctx, logger := ctxlog.With(ctx, "state_machine", smCur.LocalName())

	sm := &model.StateMachine{Name: smCur.LocalName()}
	for _, stateCur := range smCur.Children() {
		state := &model.SMState{Name: stateCur.LocalName()}
		for _, evCur := range stateCur.Children() {
			ev, err := extractEvent(evCur, conv)
			if err != nil {
				return nil, fmt.Errorf("failed to read event of state '%s': %w", state.Name, err)
			}
			state.Events = append(state.Events, ev)
		}
		sm.States = append(sm.States, state)
	}

	logger.Debug("State machine extracted.", "states", len(sm.States))
	return sm, nil
}

// extractEvent reads one event. Entry events need no target state; every
// other event does.
func extractEvent(evCur config.Cursor, conv config.Conventions) (*model.SMEvent, error) {
	ev := &model.SMEvent{Name: evCur.LocalName()}

	if evCur.Has(conv.NextState) || !conv.IsEntryEvent(ev.Name) {
		next, err := evCur.Read(conv.NextState)
		if err != nil {
			return nil, err
		}
		ev.NextState = config.StripSigil(next)
	}
	if evCur.Has(conv.NextStateError) {
		next, err := evCur.Read(conv.NextStateError)
		if err != nil {
			return nil, err
		}
		ev.NextStateError = config.StripSigil(next)
	}

	for _, action := range evCur.Children() {
		ev.Actions = append(ev.Actions, action.LocalName())
	}
	return ev, nil
}
