package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrIO marks failures to remove, create, or write an artifact.
var ErrIO = errors.New("artifact i/o failed")

// ReplaceFile regenerates the file at path. Any existing file is removed
// first, then render writes into memory and the result is moved into place
// through a temporary file in the same directory. When render fails nothing
// is left at path.
func ReplaceFile(path string, render func(io.Writer) error) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing '%s': %v", ErrIO, path, err)
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory '%s': %v", ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: creating temporary file for '%s': %v", ErrIO, path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(buf.Bytes())
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing '%s': %v", ErrIO, path, werr)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: setting mode of '%s': %v", ErrIO, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming into '%s': %v", ErrIO, path, err)
	}
	return nil
}
