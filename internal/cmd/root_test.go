package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/wildcard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"list", "copy", "delete", "zip", "tar"} {
		assert.Contains(t, names, want)
	}
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	for _, flag := range []string{"config", "exclude", "ignore-case", "log-level", "metrics-out"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootRejectsInvalidConfiguration(t *testing.T) {
	root := testutil.TempRoot(t)

	_, err := execute(t, "list", root, "--log-level", "chatty")
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = execute(t, "list", root, "--config", filepath.Join(root, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigFileSuppliesDefaultExcludes(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "keep.go", "skip.tmp")

	cfgPath := filepath.Join(t.TempDir(), "wildcard.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[scan]\ndefault_excludes = [\"*.tmp\"]\n"), 0o644))

	out, err := execute(t, "list", root, "--config", cfgPath, "--relative")
	require.NoError(t, err)
	assert.Equal(t, "keep.go\n", out)
}

func TestMetricsWrittenOnExit(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a.txt")
	metricsPath := filepath.Join(t.TempDir(), "wildcard.prom")

	_, err := execute(t, "list", root, "--metrics-out", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `wildcard_scans_total{mode="glob",status="success"} 1`)
	assert.Contains(t, string(data), `wildcard_entries_matched_total{mode="glob"} 1`)
}

func TestMetricsWrittenWhenCommandFails(t *testing.T) {
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "file.txt")
	metricsPath := filepath.Join(t.TempDir(), "wildcard.prom")

	_, err := execute(t, "list", filepath.Join(root, "file.txt"), "--metrics-out", metricsPath)
	require.Error(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `wildcard_scans_total{mode="glob",status="error"} 1`)
}

func TestDevelopmentLoggingKeepsStdoutClean(t *testing.T) {
	t.Setenv("WILDCARD_LOG_DEV", "true")
	t.Setenv("WILDCARD_LOG_LEVEL", "debug")
	root := testutil.TempRoot(t)
	testutil.MakeTree(t, root, "a.txt")

	out, err := execute(t, "list", root, "--relative")
	require.NoError(t, err)
	assert.Equal(t, "a.txt\n", out)
}
