// Package rewrite turns intra-corpus relative links into in-document anchor
// references. It is a pure text transformation: everything that is not a
// resolvable link is preserved byte-for-byte.
package rewrite

import (
	"path/filepath"
	"regexp"

	"github.com/mdpress/mdpress/internal/anchor"
)

var mdLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+\.md)\)`)

// Rewriter rewrites document content using the anchor maps built during the
// index pass. Both maps must be fully populated before Rewrite runs; the
// two-pass design in the assembler guarantees that.
type Rewriter struct {
	unitAnchors map[string]string // unit name -> anchor
	fileAnchors map[string]string // absolute document path -> anchor
	unitLinkRe  *regexp.Regexp
}

// New creates a Rewriter for a corpus whose units live under tutorialsDir
// (the directory name as it appears in link targets, e.g. "tutorials").
func New(tutorialsDir string, unitAnchors, fileAnchors map[string]string) *Rewriter {
	return &Rewriter{
		unitAnchors: unitAnchors,
		fileAnchors: fileAnchors,
		unitLinkRe:  regexp.MustCompile(regexp.QuoteMeta(tutorialsDir) + `/([^/)]+)/?`),
	}
}

// Rewrite rewrites two link shapes in content:
//
//  1. Directory-style unit references ("tutorials/<unit>/") become "#<anchor>"
//     when the unit is known; unknown unit names are left unchanged.
//  2. For documents inside a unit (insideUnit), markdown links to sibling .md
//     files are resolved against the source file's directory and replaced
//     with the indexed anchor. Targets missing from the index get an anchor
//     freshly derived from the link target's filename; that fallback never
//     checks the target's real heading, so it can 404 when filename and
//     heading diverge.
//
// sourcePath is the absolute path of the document being rewritten.
func (r *Rewriter) Rewrite(content, sourcePath string, insideUnit bool) string {
	content = r.unitLinkRe.ReplaceAllStringFunc(content, func(m string) string {
		sub := r.unitLinkRe.FindStringSubmatch(m)
		if a, ok := r.unitAnchors[sub[1]]; ok {
			return "#" + a
		}
		return m
	})

	if !insideUnit {
		return content
	}

	sourceDir := filepath.Dir(sourcePath)
	return mdLinkRe.ReplaceAllStringFunc(content, func(m string) string {
		sub := mdLinkRe.FindStringSubmatch(m)
		text, target := sub[1], sub[2]

		a, ok := r.fileAnchors[filepath.Join(sourceDir, target)]
		if !ok {
			a = anchor.DeriveFromFilename(target)
		}
		return "[" + text + "](#" + a + ")"
	})
}
