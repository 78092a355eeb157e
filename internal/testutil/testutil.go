// Package testutil provides file tree fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeTree creates the given slash-separated paths under root. Paths ending
// in "/" become directories; every file holds "content of <path>".
func MakeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(FileContent(p)), 0o644))
	}
}

// FileContent returns what MakeTree writes to the file at p.
func FileContent(p string) string {
	return "content of " + p
}

// TempRoot returns a fresh temporary directory with symlinks resolved, so it
// compares equal to the canonical roots reported by scans.
func TempRoot(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// Rel converts slash-separated paths to the OS form.
func Rel(paths ...string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.FromSlash(p)
	}
	return out
}
