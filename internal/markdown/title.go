// Package markdown extracts document titles for the anchor index. Anchors are
// always derived from the first level-1 heading, the only text the converter
// assigns identifiers to; a frontmatter title is display metadata only.
package markdown

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type docMeta struct {
	Title string `yaml:"title"`
}

// Title returns the first level-1 ATX heading and whether one was found. Any
// frontmatter block is stripped first, and parsing the AST instead of
// scanning lines keeps headings inside fenced code blocks from being picked
// up. This is the anchor source: identifiers in the produced book exist only
// for rendered heading text, so nothing else may feed the anchor index.
func Title(content []byte) (string, bool) {
	body := StripFrontmatter(content)

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			if t := strings.TrimSpace(inlineText(h, body)); t != "" {
				return t, true
			}
		}
	}
	return "", false
}

// DisplayTitle returns the title to show a human: a frontmatter title field
// when present, otherwise the first level-1 heading. Never used for anchors.
func DisplayTitle(content []byte) (string, bool) {
	var meta docMeta
	if _, err := frontmatter.Parse(bytes.NewReader(content), &meta); err == nil {
		if t := strings.TrimSpace(meta.Title); t != "" {
			return t, true
		}
	}
	return Title(content)
}

// StripFrontmatter returns content with a leading YAML frontmatter block
// removed. Staged copies must not carry one: pandoc would merge it into the
// book metadata. Malformed frontmatter is left in place untouched.
func StripFrontmatter(content []byte) []byte {
	var meta docMeta
	body, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		return content
	}
	return body
}

// inlineText flattens the inline content of a node into plain text.
func inlineText(n gmast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			buf.Write(node.Value(src))
			if node.HardLineBreak() || node.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(node.Value)
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}

var titleCaser = cases.Title(language.English)

// TitleFromFilename derives a display title from a markdown filename for
// documents that carry no heading at all, e.g.
// "04-python-implementation.md" becomes "04 Python Implementation". Display
// only; anchors for such documents come from anchor.DeriveFromFilename.
func TitleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(name)
}
