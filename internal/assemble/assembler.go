// Package assemble orchestrates the e-book build: discover and order the
// corpus, index every document's anchor, rewrite intra-corpus links, stage
// the rewritten copies, and invoke pandoc once over the ordered file list.
//
// The build is strictly two-pass. The index pass visits every document
// before any rewriting happens, so links pointing at documents not yet
// staged still resolve; a single-pass rewrite would break every forward
// reference.
package assemble

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mdpress/mdpress/internal/anchor"
	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/corpus"
	"github.com/mdpress/mdpress/internal/logfields"
	"github.com/mdpress/mdpress/internal/markdown"
	"github.com/mdpress/mdpress/internal/pandoc"
	"github.com/mdpress/mdpress/internal/rewrite"
	"github.com/mdpress/mdpress/internal/workspace"
)

// Options controls one build run.
type Options struct {
	InputDir    string // corpus root, default "."
	OutputPath  string // artifact path, defaults from config
	KeepStaging bool   // keep the staging directory even on success
}

// Result summarizes a successful build.
type Result struct {
	Artifact     string
	ManifestPath string
	Units        int
	Files        int
	Duration     time.Duration
}

// Assembler builds an EPUB from a tutorial corpus.
type Assembler struct {
	cfg       *config.Config
	converter pandoc.Converter
}

// New creates an Assembler using the given converter. Production callers
// pass a pandoc.Runner; tests pass a stub.
func New(cfg *config.Config, converter pandoc.Converter) *Assembler {
	return &Assembler{cfg: cfg, converter: converter}
}

// index holds the anchor maps built during pass 1.
type index struct {
	unitAnchors map[string]string // unit name -> anchor
	fileAnchors map[string]string // absolute document path -> anchor
	contents    map[string][]byte // absolute document path -> raw content
}

// Build runs the full assembly. The converter is probed before any file I/O
// so a missing pandoc aborts with no partial work. On conversion failure the
// staging directory is left in place for inspection; it is cleaned up only
// after success.
func (a *Assembler) Build(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	if err := a.converter.Probe(ctx); err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = a.cfg.Output.Artifact
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}

	c, err := corpus.Discover(opts.InputDir, a.cfg.Corpus)
	if err != nil {
		return nil, err
	}
	docs := c.Documents()
	slog.Info("Corpus discovered", logfields.Count(len(docs)), slog.Int("units", len(c.Units)))

	idx, err := a.buildIndex(c)
	if err != nil {
		return nil, err
	}
	slog.Info("Anchor index built",
		slog.Int("unit_anchors", len(idx.unitAnchors)),
		slog.Int("file_anchors", len(idx.fileAnchors)))

	staging := workspace.NewStaging(filepath.Join(c.Root, a.cfg.Output.StagingDir))
	if err := staging.Recreate(); err != nil {
		return nil, err
	}

	manifest := newManifest(c.Root, absOutput)
	manifest.PandocVersion = a.converter.Version(ctx)

	rewriter := rewrite.New(a.cfg.Corpus.TutorialsDir, idx.unitAnchors, idx.fileAnchors)
	var stagedFiles []string
	for _, doc := range docs {
		rewritten := rewriter.Rewrite(string(idx.contents[doc.Path]), doc.Path, doc.Unit != "")
		path, err := staging.WriteFile(doc.StagedName(), []byte(rewritten))
		if err != nil {
			return nil, err
		}
		manifest.recordFile(doc.StagedName(), []byte(rewritten))
		stagedFiles = append(stagedFiles, path)
		slog.Debug("Staged document", logfields.Unit(doc.Unit), logfields.Document(doc.StagedName()))
	}

	meta, err := renderMetadata(a.cfg.Book, start)
	if err != nil {
		return nil, err
	}
	metadataPath, err := staging.WriteFile("metadata.yaml", meta)
	if err != nil {
		return nil, err
	}

	slog.Info("Converting to EPUB", logfields.Output(absOutput), logfields.Count(len(stagedFiles)))
	if err := a.converter.Convert(ctx, absOutput, metadataPath, stagedFiles); err != nil {
		slog.Error("Conversion failed, staging left for inspection", logfields.Path(staging.Path()))
		return nil, err
	}

	manifest.Units = len(c.Units)
	manifest.DurationMS = time.Since(start).Milliseconds()
	if err := manifest.Write(); err != nil {
		slog.Warn("Failed to write build manifest", logfields.Error(err))
	}

	if !opts.KeepStaging {
		if err := staging.Cleanup(); err != nil {
			slog.Warn("Failed to cleanup staging", logfields.Error(err))
		}
	}

	return &Result{
		Artifact:     absOutput,
		ManifestPath: manifest.Path(),
		Units:        len(c.Units),
		Files:        len(stagedFiles),
		Duration:     time.Since(start),
	}, nil
}

// buildIndex is pass 1: read every document once and record its anchor. Unit
// anchors come from the unit README's first heading only; a README without a
// heading leaves the unit unaddressable by directory-style links, matching
// what pandoc will actually render. Secondary documents without a heading
// fall back to a filename-derived anchor, a documented weak point since the
// converter derives identifiers from heading text alone.
func (a *Assembler) buildIndex(c *corpus.Corpus) (*index, error) {
	idx := &index{
		unitAnchors: make(map[string]string),
		fileAnchors: make(map[string]string),
		contents:    make(map[string][]byte),
	}

	if c.RootReadme != nil {
		content, err := a.readDocument(idx, *c.RootReadme)
		if err != nil {
			return nil, err
		}
		if title, ok := markdown.Title(content); ok {
			idx.fileAnchors[c.RootReadme.Path] = anchor.Derive(title)
		}
	}

	for _, unit := range c.Units {
		for _, doc := range unit.Documents {
			content, err := a.readDocument(idx, doc)
			if err != nil {
				return nil, err
			}
			title, ok := markdown.Title(content)
			switch {
			case ok && doc.IsReadme():
				id := anchor.Derive(title)
				idx.unitAnchors[unit.Name] = id
				idx.fileAnchors[doc.Path] = id
			case ok:
				idx.fileAnchors[doc.Path] = anchor.Derive(title)
			case !doc.IsReadme():
				idx.fileAnchors[doc.Path] = anchor.DeriveFromFilename(doc.Name)
			}
		}
	}
	return idx, nil
}

// readDocument reads one source file and caches it with any frontmatter block
// already stripped. Staged copies are built from this cache, so no YAML block
// survives to leak into pandoc's merged book metadata.
func (a *Assembler) readDocument(idx *index, doc corpus.Document) ([]byte, error) {
	content, err := os.ReadFile(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", doc.StagedName(), err)
	}
	content = markdown.StripFrontmatter(content)
	idx.contents[doc.Path] = content
	return content, nil
}
