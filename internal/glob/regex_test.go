package glob

import (
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/wildcard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRegex(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, "a.txt", "b.md", "docs/c.txt", "docs/deep/d.txt")

	tests := []struct {
		name     string
		includes []string
		excludes []string
		want     []string
	}{
		{"everything by default", nil, nil, []string{"a.txt", "b.md", "docs", "docs/c.txt", "docs/deep", "docs/deep/d.txt"}},
		{"any depth", []string{`.*\.txt`}, nil, []string{"a.txt", "docs/c.txt", "docs/deep/d.txt"}},
		{"top level only", []string{`[^/]*\.txt`}, nil, []string{"a.txt"}},
		{"anchored full match", []string{`docs`}, nil, []string{"docs"}},
		{"with exclude", []string{`.*\.txt`}, []string{`docs/deep/.*`}, []string{"a.txt", "docs/c.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ScanRegex(root, tt.includes, tt.excludes)
			require.NoError(t, err)
			assert.Equal(t, testutil.Rel(tt.want...), res.Matches)
		})
	}
}

func TestScanRegexCountsExcluded(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, "keep.go", "drop.log", "also.log")

	res, err := ScanRegex(root, nil, []string{`.*\.log`})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.go"}, res.Matches)
	assert.Equal(t, 2, res.Stats.Excluded)
}

func TestScanRegexErrors(t *testing.T) {
	root := t.TempDir()

	_, err := ScanRegex(root, []string{"("}, nil)
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = ScanRegex(root, nil, []string{"[z-a]"})
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = ScanRegex(filepath.Join(root, "missing"), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRoot)
}
