package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/GriffinCanCode/wildcard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a.go", "a_test.go", "pkg/b.go", "pkg/sub/", "README.md")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"go files", []string{"**/*.go", "!**/*_test.go"}, []string{"a.go", "pkg/b.go"}},
		{"top level", []string{"*.md"}, []string{"README.md"}},
		{"everything", nil, []string{"README.md", "a.go", "a_test.go", "pkg", "pkg/b.go", "pkg/sub"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", root, "--relative"}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)

			want := make([]string, len(tt.want))
			for i, w := range tt.want {
				want[i] = filepath.FromSlash(w)
			}
			assert.Equal(t, strings.Join(want, "\n")+"\n", out)
		})
	}
}

func TestListAbsolutePathsAndDelimiter(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "x.txt", "y.txt")

	out, err := execute(t, "list", root, "*.txt", "--delimiter", ",")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "x.txt")+","+filepath.Join(root, "y.txt")+"\n", out)
}

func TestListPipeForm(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "x.txt", "y.md")

	out, err := execute(t, "list", root+"|*.md", "--relative")
	require.NoError(t, err)
	assert.Equal(t, "y.md\n", out)
}

func TestListViews(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "d/f.txt", "d/e/", "g.txt")

	out, err := execute(t, "list", root, "--files", "--relative")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("d/f.txt")+"\ng.txt\n", out)

	out, err = execute(t, "list", root, "--dirs", "--relative")
	require.NoError(t, err)
	assert.Equal(t, "d\n"+filepath.FromSlash("d/e")+"\n", out)

	out, err = execute(t, "list", root, "--flatten", "--relative")
	require.NoError(t, err)
	assert.Equal(t, "f.txt\ng.txt\n", out)

	_, err = execute(t, "list", root, "--files", "--dirs")
	assert.Error(t, err)
}

func TestListIgnoreCaseAndExclude(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "Notes.TXT", "draft.txt", "keep.txt")

	out, err := execute(t, "list", root, "*.txt", "--ignore-case", "--exclude", "draft.*", "--relative")
	require.NoError(t, err)
	assert.Equal(t, "Notes.TXT\nkeep.txt\n", out)
}

func TestListRegex(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a.yaml", "conf/b.yml", "c.json")

	out, err := execute(t, "list", root, `.*\.ya?ml`, "--regex", "--relative")
	require.NoError(t, err)
	assert.Equal(t, "a.yaml\n"+filepath.FromSlash("conf/b.yml")+"\n", out)
}

func TestListLong(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "notes.txt", "sub/")

	out, err := execute(t, "list", root, "--long", "--relative")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "file"), lines[0])
	assert.Contains(t, lines[0], "text/plain")
	assert.Contains(t, lines[0], "notes.txt")
	assert.True(t, strings.HasPrefix(lines[1], "dir"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "sub"), lines[1])
}

func TestListMissingDirPrintsNothing(t *testing.T) {
	out, err := execute(t, "list", filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, out)
}
