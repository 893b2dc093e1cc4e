package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadArtifact returns the content of the named artifact ("RTApp",
// "StateS1", ...) and fails the test when it was not written.
func ReadArtifact(t *testing.T, result *HarnessResult, name string) string {
	t.Helper()
	data, err := os.ReadFile(result.OutputPrefix + name + ".gv")
	require.NoError(t, err, "artifact %q was not written", name)
	return string(data)
}

// AssertNoArtifact fails the test when the named artifact exists.
func AssertNoArtifact(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	_, err := os.Stat(result.OutputPrefix + name + ".gv")
	require.True(t, errors.Is(err, fs.ErrNotExist), "artifact %q should not exist", name)
}

// ArtifactNames lists the artifacts found under the run's prefix, without
// prefix or extension, sorted.
func ArtifactNames(t *testing.T, result *HarnessResult) []string {
	t.Helper()
	matches, err := filepath.Glob(result.OutputPrefix + "*.gv")
	require.NoError(t, err)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[len(result.OutputPrefix):len(m)-len(".gv")])
	}
	sort.Strings(names)
	return names
}
