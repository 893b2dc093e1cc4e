// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a real-time
// application once its configuration tree has been resolved. It is the
// typed, in-memory result of the builder and the only input of the renderers.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Application: The root container. It owns the ordered list of States and
//     the two registries every other entity points into.
//
//   - Function: An executable module. It is identified by its qualified name,
//     the dot-joined path of group names from the modules root down to the
//     module itself, so two modules with the same local name in different
//     groups never collide.
//
//   - DataSource: A named data store that Functions read from and write to.
//
//   - State and Thread: A State owns Threads, and a Thread is an ordered
//     execution list of Functions. The same Function may appear in several
//     Threads and States; it is stored once in the registry and referenced
//     from each list.
//
//   - StateMachine: The optional transition table of the application, kept
//     separate from the Application because it is extracted independently.
//
// Why a separate model package?
//
// The configuration tree is untyped and addresses everything by path. The
// renderers need the opposite: typed entities with stable identities and a
// deterministic order. Keeping that structure here means the builder only
// has to produce it once, and every view walks plain slices.
//
// Nothing in this package is ever removed after insertion. Registries are
// append-only and preserve insertion order, which is what makes the
// generated output byte-for-byte reproducible.
package model
