package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNavigation reports a failed move to a child or along a path.
	ErrNavigation = errors.New("configuration navigation failed")
	// ErrMissingAttribute reports an unreadable type tag or required field.
	ErrMissingAttribute = errors.New("missing attribute")
	// ErrUnresolvedReference reports a name that does not resolve to an
	// entity. Signal bindings tolerate it; everything else treats it as fatal.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrAmbiguous reports several candidates where exactly one is expected.
	ErrAmbiguous = errors.New("ambiguous configuration")
	// ErrMaxDepth reports nesting deeper than the configured maximum.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// PathError ties an error kind to the location in the tree where it occurred.
type PathError struct {
	Kind error
	Path string
	Msg  string
}

func (e *PathError) Error() string {
	if e == nil {
		return ""
	}
	loc := e.Path
	if loc == "" {
		loc = "<root>"
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s at %s", e.Kind.Error(), loc)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind.Error(), loc, e.Msg)
}

func (e *PathError) Unwrap() error { return e.Kind }

// Errorf builds a PathError of the given kind.
func Errorf(kind error, path string, format string, args ...any) error {
	return &PathError{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...)}
}
