package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "tutorials", cfg.Corpus.TutorialsDir)
	require.NotEmpty(t, cfg.Corpus.UnitOrder)
	require.NotEmpty(t, cfg.Corpus.FileOrder)
	require.Equal(t, "the-engineers-playbook.epub", cfg.Output.Artifact)
}

func TestLoad_PartialFile_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdpress.yaml")
	content := "book:\n  title: My Book\ncorpus:\n  unit_order:\n    - alpha\n    - beta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "My Book", cfg.Book.Title)
	require.Equal(t, []string{"alpha", "beta"}, cfg.Corpus.UnitOrder)
	// Unspecified fields fall back to defaults.
	require.Equal(t, "tutorials", cfg.Corpus.TutorialsDir)
	require.Equal(t, "en-US", cfg.Book.Language)
	require.NotEmpty(t, cfg.Corpus.FileOrder)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("MDPRESS_TEST_TITLE", "Expanded Title")
	path := filepath.Join(t.TempDir(), "mdpress.yaml")
	require.NoError(t, os.WriteFile(path, []byte("book:\n  title: ${MDPRESS_TEST_TITLE}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Expanded Title", cfg.Book.Title)
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdpress.yaml")
	require.NoError(t, os.WriteFile(path, []byte("book: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestInit_WritesExampleAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdpress.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().Book.Title, cfg.Book.Title)

	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
