// internal/nodeid/doc.go

/*
Package nodeid provides a structured representation for the qualified names
of resolved entities, based on the canonical format `path`.

The format is a dot-separated sequence of sigil-stripped node names, e.g.
`Controllers.Inner.PID1` for a function declared two group levels below the
modules root.

This package centralises the formatting and parsing of those names, plus the
derived identifiers used by the renderers (function occurrences and object
paths).
*/
package nodeid
