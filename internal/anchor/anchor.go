// Package anchor derives in-document heading identifiers that match pandoc's
// auto-identifier scheme. Cross-references generated by the rewriter resolve
// against identifiers pandoc assigns to headings during EPUB conversion, so
// this derivation must track pandoc's algorithm exactly or the generated
// links 404 silently inside the produced book.
package anchor

import (
	"regexp"
	"strings"
)

// The character classes are Unicode-aware on purpose: pandoc keeps Unicode
// letters and digits in identifiers, and Go's \w is ASCII-only.
var (
	dropRe   = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.:]+`)
	spaceRe  = regexp.MustCompile(`[\s:]+`)
	hyphenRe = regexp.MustCompile(`-+`)
)

// Derive converts heading text into a pandoc-style identifier:
// lowercase, keep letters/digits/underscores/hyphens/periods, map runs of
// whitespace and colons to a single hyphen, collapse hyphen runs, and trim
// leading/trailing hyphens. Empty input yields the empty string.
//
// Derive is idempotent: Derive(Derive(s)) == Derive(s).
func Derive(text string) string {
	text = strings.ToLower(text)
	text = dropRe.ReplaceAllString(text, "")
	text = spaceRe.ReplaceAllString(text, "-")
	text = hyphenRe.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// DeriveFromFilename derives an identifier from a markdown filename with the
// extension stripped. This is a fallback for documents without a level-1
// heading; pandoc itself only ever derives identifiers from rendered heading
// text, so a filename-derived anchor can diverge from the real one when the
// filename and heading text differ.
func DeriveFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")
	return Derive(name)
}
