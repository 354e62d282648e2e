package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaging_RecreateClearsLeftovers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "staging")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.md"), []byte("old"), 0o644))

	s := NewStaging(dir)
	require.NoError(t, s.Recreate())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestStaging_WriteFileAndCleanup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "staging")
	s := NewStaging(dir)
	require.NoError(t, s.Recreate())

	path, err := s.WriteFile("caching-README.md", []byte("# Caching\n"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "caching-README.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# Caching\n", string(data))

	require.NoError(t, s.Cleanup())
	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err))
}
