// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Registry, the name-keyed store behind the application's
// function and data-source sets.
//
// Why a custom registry instead of a map?
//
// Go maps have no iteration order, and every view of the application must be
// reproducible. The registry pairs a slice, which records insertion order,
// with a map, which gives constant-time lookup by name. Entities are never
// removed, so the two can never drift apart.
package model

// Registry is an append-only, insertion-ordered collection keyed by name.
// The zero value is not usable; create one with NewRegistry.
type Registry[T any] struct {
	order []T
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{index: make(map[string]int)}
}

// Add stores item under key unless the key is already taken. It returns the
// entity stored under key and whether item was the one inserted.
func (r *Registry[T]) Add(key string, item T) (T, bool) {
	if i, ok := r.index[key]; ok {
		return r.order[i], false
	}
	r.index[key] = len(r.order)
	r.order = append(r.order, item)
	return item, true
}

// Ensure returns the entity stored under key, calling create to insert a new
// one when the key is not present yet.
func (r *Registry[T]) Ensure(key string, create func() T) (T, bool) {
	if i, ok := r.index[key]; ok {
		return r.order[i], false
	}
	return r.Add(key, create())
}

// Get looks up an entity by key.
func (r *Registry[T]) Get(key string) (T, bool) {
	i, ok := r.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return r.order[i], true
}

// All returns the entities in insertion order. The returned slice is a copy.
func (r *Registry[T]) All() []T {
	out := make([]T, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of stored entities.
func (r *Registry[T]) Len() int {
	return len(r.order)
}
