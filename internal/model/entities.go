// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the entities of a resolved real-time application.
//
// Why pointers everywhere?
//
// A Function is resolved once but may be scheduled by many threads, and its
// signal links are attached after every thread has been resolved. Threads
// therefore hold pointers into the registry, so links added later are visible
// from every execution list without a second pass.
package model

// DataSource is a named data store. Name is the node name with its sigil
// removed.
type DataSource struct {
	Name  string
	Class string
}

// Function is an executable module of the application.
type Function struct {
	// Name is the local, sigil-stripped node name.
	Name string
	// QualifiedName is the dot-joined path from the modules root, e.g. `G1.M2`.
	// It is the identity of the function.
	QualifiedName string
	Class         string

	inputs  []*DataSource
	outputs []*DataSource
}

// Inputs returns the data sources the function reads from, in the order
// they were first linked.
func (f *Function) Inputs() []*DataSource { return f.inputs }

// Outputs returns the data sources the function writes to.
func (f *Function) Outputs() []*DataSource { return f.outputs }

// AddInput links ds as an input. Linking the same data source twice is a no-op.
func (f *Function) AddInput(ds *DataSource) {
	f.inputs = appendUnique(f.inputs, ds)
}

// AddOutput links ds as an output. Linking the same data source twice is a no-op.
func (f *Function) AddOutput(ds *DataSource) {
	f.outputs = appendUnique(f.outputs, ds)
}

func appendUnique(list []*DataSource, ds *DataSource) []*DataSource {
	for _, existing := range list {
		if existing.Name == ds.Name {
			return list
		}
	}
	return append(list, ds)
}

// Thread is an ordered execution list.
type Thread struct {
	Name      string
	Functions []*Function
}

// Append adds fn to the end of the execution list. Duplicates are kept since
// a thread may legitimately run the same module twice.
func (t *Thread) Append(fn *Function) {
	t.Functions = append(t.Functions, fn)
}

// State is one operating mode of the application.
type State struct {
	Name    string
	Threads []*Thread
}

// AddThread appends a new, empty thread and returns it.
func (s *State) AddThread(name string) *Thread {
	th := &Thread{Name: name}
	s.Threads = append(s.Threads, th)
	return th
}

// ReferencedDataSources returns every data source linked to a function of
// the state, inputs before outputs per function, deduplicated by name in
// first-seen order.
func (s *State) ReferencedDataSources() []*DataSource {
	var out []*DataSource
	for _, th := range s.Threads {
		for _, fn := range th.Functions {
			for _, ds := range fn.inputs {
				out = appendUnique(out, ds)
			}
			for _, ds := range fn.outputs {
				out = appendUnique(out, ds)
			}
		}
	}
	return out
}

// Application is the resolved real-time application.
type Application struct {
	Name        string
	States      []*State
	Functions   *Registry[*Function]
	DataSources *Registry[*DataSource]
}

// NewApplication creates and returns an initialized Application.
func NewApplication(name string) *Application {
	return &Application{
		Name:        name,
		States:      []*State{},
		Functions:   NewRegistry[*Function](),
		DataSources: NewRegistry[*DataSource](),
	}
}

// AddState appends a new, empty state and returns it.
func (a *Application) AddState(name string) *State {
	st := &State{Name: name}
	a.States = append(a.States, st)
	return st
}
