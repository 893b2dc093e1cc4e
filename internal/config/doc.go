// Package config defines the format-agnostic configuration tree that every
// document loader produces, along with the core interface (Loader) for
// reading documents from various sources.
//
// A `config.Document` is the single source of truth for the `builder`,
// `statemachine` and `render` packages. Concrete loaders, such as the MARTe2
// native parser or the HCL adapter, are provided in separate packages.
//
// Navigation goes through `Cursor`, an immutable value holding the path from
// the document root to the current node. Every move returns a new cursor, so
// recursive traversals never have to restore an ancestor position.
package config
