// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file models the application's state machine.
//
// Why model the state machine apart from Application?
//
// The state machine lives in its own top-level node, is optional, and does not
// reference Functions or DataSources by identity. Extracting it separately
// means its absence never affects the application views.
package model

// StateMachine is the transition table of the application.
type StateMachine struct {
	Name   string
	States []*SMState
}

// SMState is one state of the state machine with its events in declaration order.
type SMState struct {
	Name   string
	Events []*SMEvent
}

// SMEvent is an event handled by a state. Entry events carry only actions;
// every other event has a NextState.
type SMEvent struct {
	Name           string
	NextState      string
	NextStateError string
	Actions        []string
}

// Event finds an event of the state by name.
func (s *SMState) Event(name string) (*SMEvent, bool) {
	for _, ev := range s.Events {
		if ev.Name == name {
			return ev, true
		}
	}
	return nil, false
}
