package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
}

func TestLoadOverlaysFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_term_size: 42\n"), 0o644))

	opts, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 42, opts.MaxTermSize)
	assert.Equal(t, Default().ColorOutput, opts.ColorOutput)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_term_size: [this is not an int\n"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}
