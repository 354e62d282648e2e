// Package split cuts one large markdown file into per-section files at
// second-level heading boundaries. Each section becomes its own file named
// after the heading, with the heading promoted to a level-1 title.
package split

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrInputNotFound indicates the source document does not exist. No output
// is created in that case.
var ErrInputNotFound = errors.New("input file not found")

const (
	// DefaultInput is the fixed-name source document in the working directory.
	DefaultInput = "INIT.md"
	// DefaultOutputDir is the fixed-name output directory, created if absent.
	DefaultOutputDir = "ideas"
)

// Unicode-aware on purpose: Go's \w is ASCII-only and section titles carry
// decorative glyphs and non-ASCII letters.
var (
	trailingSymbolRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+$`)
	filenameDropRe   = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	collapseRe       = regexp.MustCompile(`[-\s]+`)
)

// Section is a contiguous run of lines between one second-level heading
// (inclusive) and the next (exclusive) or end-of-file.
type Section struct {
	RawTitle string   // heading text with any trailing symbol retained, for display
	Title    string   // normalized title with the trailing symbol stripped
	Filename string   // derived kebab-case file name
	Body     []string // section lines, trailing blank lines trimmed
}

// Parse splits content into sections. Only lines beginning with exactly a
// second-level heading marker ("## ") start or end a section; deeper
// headings belong to the enclosing section's body.
func Parse(content string) []Section {
	lines := strings.Split(content, "\n")

	var sections []Section
	for i := 0; i < len(lines); i++ {
		raw, ok := headingText(lines[i])
		if !ok {
			continue
		}

		var body []string
		for j := i + 1; j < len(lines); j++ {
			if _, next := headingText(lines[j]); next {
				break
			}
			body = append(body, lines[j])
		}
		i += len(body)

		for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
			body = body[:len(body)-1]
		}

		title := strings.TrimSpace(trailingSymbolRe.ReplaceAllString(raw, ""))
		sections = append(sections, Section{
			RawTitle: raw,
			Title:    title,
			Filename: Filename(title),
			Body:     body,
		})
	}
	return sections
}

func headingText(line string) (string, bool) {
	if !strings.HasPrefix(line, "## ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "## ")), true
}

// Filename derives a kebab-case markdown file name from a normalized title:
// keep word characters, whitespace and hyphens; collapse whitespace/hyphen
// runs to single hyphens; lowercase; trim edge hyphens.
func Filename(title string) string {
	name := filenameDropRe.ReplaceAllString(title, "")
	name = collapseRe.ReplaceAllString(name, "-")
	name = strings.ToLower(strings.Trim(name, "-"))
	return name + ".md"
}

// Render produces the section's file content: a level-1 heading reproducing
// the original (un-stripped) title, a blank line, then the body verbatim.
func (s Section) Render() string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(s.RawTitle)
	b.WriteString("\n\n")
	for _, line := range s.Body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Run splits the input file into one file per section under outputDir,
// creating the directory if absent. Two sections normalizing to the same
// filename silently overwrite each other; the last one wins. It returns the
// paths written, one "Created" line printed per file.
func Run(input, outputDir string) ([]string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
		}
		return nil, fmt.Errorf("failed to read %s: %w", input, err)
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, section := range Parse(string(data)) {
		path := filepath.Join(outputDir, section.Filename)
		if err := os.WriteFile(path, []byte(section.Render()), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("Created: %s\n", path)
		written = append(written, path)
	}
	return written, nil
}
