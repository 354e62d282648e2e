package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdpress/mdpress/internal/config"
)

func TestResolveOrder_CuratedFirst(t *testing.T) {
	curated := []string{"caching", "batching", "compression"}
	discovered := []string{"batching", "caching", "compression"}

	got := ResolveOrder(curated, discovered)
	require.Equal(t, []string{"caching", "batching", "compression"}, got)
}

func TestResolveOrder_AbsentCuratedEntrySkipped(t *testing.T) {
	curated := []string{"caching", "missing-on-disk", "compression"}
	discovered := []string{"compression", "caching"}

	got := ResolveOrder(curated, discovered)
	require.Equal(t, []string{"caching", "compression"}, got)
}

func TestResolveOrder_UncuratedAppendedInDiscoveryOrder(t *testing.T) {
	curated := []string{"caching"}
	discovered := []string{"zeta-new", "caching", "alpha-new"}

	got := ResolveOrder(curated, discovered)
	require.Equal(t, []string{"caching", "zeta-new", "alpha-new"}, got)
}

func TestResolveOrder_EveryDiscoveredNameAppearsExactlyOnce(t *testing.T) {
	curated := []string{"a", "b", "a"}
	discovered := []string{"c", "a", "b"}

	got := ResolveOrder(curated, discovered)
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testCorpusConfig() config.CorpusConfig {
	return config.CorpusConfig{
		TutorialsDir: "tutorials",
		UnitOrder:    []string{"caching", "batching"},
		FileOrder:    []string{"01-concepts-01-the-core-problem.md", "02-guides-01-getting-started.md"},
	}
}

func TestDiscover_OrdersUnitsAndDocuments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "# The Book\n")
	writeFile(t, filepath.Join(root, "tutorials/batching/README.md"), "# Batching\n")
	writeFile(t, filepath.Join(root, "tutorials/batching/02-guides-01-getting-started.md"), "# Getting Started\n")
	writeFile(t, filepath.Join(root, "tutorials/batching/01-concepts-01-the-core-problem.md"), "# Core Problem\n")
	writeFile(t, filepath.Join(root, "tutorials/batching/99-extra.md"), "extra\n")
	writeFile(t, filepath.Join(root, "tutorials/caching/README.md"), "# Caching\n")

	c, err := Discover(root, testCorpusConfig())
	require.NoError(t, err)

	require.NotNil(t, c.RootReadme)
	require.Equal(t, "README.md", c.RootReadme.Name)

	require.Len(t, c.Units, 2)
	require.Equal(t, "caching", c.Units[0].Name)
	require.Equal(t, "batching", c.Units[1].Name)

	var names []string
	for _, d := range c.Units[1].Documents {
		names = append(names, d.Name)
	}
	require.Equal(t, []string{
		"README.md",
		"01-concepts-01-the-core-problem.md",
		"02-guides-01-getting-started.md",
		"99-extra.md",
	}, names)
}

func TestDiscover_UncuratedUnitAppended(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tutorials/caching/README.md"), "# Caching\n")
	writeFile(t, filepath.Join(root, "tutorials/aaa-brand-new/README.md"), "# Brand New\n")

	c, err := Discover(root, testCorpusConfig())
	require.NoError(t, err)

	require.Len(t, c.Units, 2)
	require.Equal(t, "caching", c.Units[0].Name)
	require.Equal(t, "aaa-brand-new", c.Units[1].Name)
}

func TestDiscover_MissingTutorialsDir(t *testing.T) {
	_, err := Discover(t.TempDir(), testCorpusConfig())
	require.ErrorIs(t, err, ErrTutorialsDirNotFound)
}

func TestDiscover_NoRootReadme(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tutorials/caching/README.md"), "# Caching\n")

	c, err := Discover(root, testCorpusConfig())
	require.NoError(t, err)
	require.Nil(t, c.RootReadme)
	require.Len(t, c.Documents(), 1)
}

func TestDocument_StagedName_NoCollisionsAcrossUnits(t *testing.T) {
	caching := Document{Unit: "caching", Name: "README.md"}
	batching := Document{Unit: "batching", Name: "README.md"}
	root := Document{Name: "README.md"}

	require.Equal(t, "caching-README.md", caching.StagedName())
	require.Equal(t, "batching-README.md", batching.StagedName())
	require.Equal(t, "README.md", root.StagedName())
	require.NotEqual(t, caching.StagedName(), batching.StagedName())
}

func TestUnit_Readme(t *testing.T) {
	u := Unit{Name: "caching", Documents: []Document{
		{Unit: "caching", Name: "README.md"},
		{Unit: "caching", Name: "01-concepts-01-the-core-problem.md"},
	}}
	require.NotNil(t, u.Readme())
	require.Equal(t, "README.md", u.Readme().Name)

	empty := Unit{Name: "bare"}
	require.Nil(t, empty.Readme())
}
