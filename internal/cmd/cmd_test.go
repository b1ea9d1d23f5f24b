package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand(t *testing.T) {
	t.Setenv("G1_SITE_CLIENT_DIR", t.TempDir())
	out := t.TempDir()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stderr)
	root.SetOut(&stdout)
	root.SetArgs([]string{"export", out, "--mode", "development", "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, stdout.String(), "Exported")
	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Twitter Feed Preview")
}

func TestExportRequiresDir(t *testing.T) {
	var stderr bytes.Buffer
	err := Execute(context.Background(), []string{"export"}, &stderr)
	assert.Error(t, err)
}

func TestRejectsUnknownMode(t *testing.T) {
	var stderr bytes.Buffer
	err := Execute(context.Background(), []string{"export", t.TempDir(), "--mode", "staging"}, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestRejectsBadEnv(t *testing.T) {
	t.Setenv("G1_SITE_FEED_DELAY", "soon")
	var stderr bytes.Buffer
	err := Execute(context.Background(), []string{"export", t.TempDir()}, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
