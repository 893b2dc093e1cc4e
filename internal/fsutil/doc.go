// Package fsutil provides file system helpers for writing generated
// artifacts.
package fsutil
