// Package corpus models the tutorial corpus on disk: a root README plus a
// directory of named units, each holding a primary README and a set of
// optionally-present secondary documents. Discovery runs once per build and
// the result is immutable for the run.
package corpus

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/logfields"
)

var (
	// ErrTutorialsDirNotFound indicates the configured tutorials directory does not exist.
	ErrTutorialsDirNotFound = errors.New("tutorials directory not found")

	// ErrUnitReadFailed indicates listing a unit directory failed.
	ErrUnitReadFailed = errors.New("unit directory read failed")
)

// Document is one markdown source file belonging to a unit, or the corpus
// root README when Unit is empty.
type Document struct {
	Unit string // owning unit name, "" for the corpus root
	Name string // file name, e.g. "README.md"
	Path string // absolute source path
}

// IsReadme reports whether the document is its unit's primary README.
func (d Document) IsReadme() bool {
	return d.Name == "README.md"
}

// StagedName returns the collision-free file name the document gets in the
// staging area. The corpus root README keeps its name; per-unit files are
// prefixed with the unit name.
func (d Document) StagedName() string {
	if d.Unit == "" {
		return d.Name
	}
	return d.Unit + "-" + d.Name
}

// Unit is a named tutorial directory with its documents in final order
// (README first, then curated order, then leftovers).
type Unit struct {
	Name      string
	Dir       string
	Documents []Document
}

// Readme returns the unit's primary document, or nil when the unit has none.
func (u *Unit) Readme() *Document {
	for i := range u.Documents {
		if u.Documents[i].IsReadme() {
			return &u.Documents[i]
		}
	}
	return nil
}

// Corpus is the discovered, fully ordered corpus for one run.
type Corpus struct {
	Root       string
	RootReadme *Document // nil when the corpus root has no README
	Units      []Unit
}

// Documents returns every document in final assembly order: the root README
// first, then each unit's documents.
func (c *Corpus) Documents() []Document {
	var docs []Document
	if c.RootReadme != nil {
		docs = append(docs, *c.RootReadme)
	}
	for _, u := range c.Units {
		docs = append(docs, u.Documents...)
	}
	return docs
}

// Discover walks the corpus under root once and returns it with the two-tier
// ordering applied: curated sequence first, anything on disk but uncurated
// appended in directory-listing order. Curated entries missing on disk are
// skipped without error so the curated list can run ahead of the corpus.
func Discover(root string, cfg config.CorpusConfig) (*Corpus, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve corpus root: %w", err)
	}

	c := &Corpus{Root: absRoot}

	rootReadme := filepath.Join(absRoot, "README.md")
	if _, err := os.Stat(rootReadme); err == nil {
		c.RootReadme = &Document{Name: "README.md", Path: rootReadme}
	}

	tutorialsDir := filepath.Join(absRoot, cfg.TutorialsDir)
	entries, err := os.ReadDir(tutorialsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrTutorialsDirNotFound, tutorialsDir)
		}
		return nil, fmt.Errorf("read tutorials directory: %w", err)
	}

	var discovered []string
	for _, entry := range entries {
		if entry.IsDir() {
			discovered = append(discovered, entry.Name())
		}
	}

	for _, name := range ResolveOrder(cfg.UnitOrder, discovered) {
		unit, err := discoverUnit(filepath.Join(tutorialsDir, name), name, cfg.FileOrder)
		if err != nil {
			return nil, err
		}
		c.Units = append(c.Units, *unit)
		slog.Debug("Unit discovered", logfields.Unit(name), logfields.Count(len(unit.Documents)))
	}

	return c, nil
}

func discoverUnit(dir, name string, fileOrder []string) (*Unit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnitReadFailed, name, err)
	}

	var discovered []string
	hasReadme := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if entry.Name() == "README.md" {
			hasReadme = true
			continue
		}
		discovered = append(discovered, entry.Name())
	}

	unit := &Unit{Name: name, Dir: dir}
	if hasReadme {
		unit.Documents = append(unit.Documents, Document{
			Unit: name,
			Name: "README.md",
			Path: filepath.Join(dir, "README.md"),
		})
	}
	for _, filename := range ResolveOrder(fileOrder, discovered) {
		unit.Documents = append(unit.Documents, Document{
			Unit: name,
			Name: filename,
			Path: filepath.Join(dir, filename),
		})
	}
	return unit, nil
}

// ResolveOrder produces a total, deterministic order: curated names that were
// actually discovered, in curated order, followed by discovered names absent
// from the curated list, in discovery order. Every discovered name appears
// exactly once; curated names never found are dropped.
func ResolveOrder(curated, discovered []string) []string {
	present := make(map[string]bool, len(discovered))
	for _, name := range discovered {
		present[name] = true
	}

	ordered := make([]string, 0, len(discovered))
	seen := make(map[string]bool, len(discovered))
	for _, name := range curated {
		if present[name] && !seen[name] {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	for _, name := range discovered {
		if !seen[name] {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	return ordered
}
