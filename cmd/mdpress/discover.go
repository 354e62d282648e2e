package main

import (
	"fmt"
	"os"

	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/corpus"
	"github.com/mdpress/mdpress/internal/markdown"
)

// runDiscover prints the resolved corpus order with per-document titles, so
// the curated ordering can be reviewed before an actual build.
func runDiscover() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}

	c, err := corpus.Discover(CLI.Discover.Input, cfg.Corpus)
	if err != nil {
		return err
	}

	if c.RootReadme != nil {
		fmt.Printf("root: %s (%s)\n", c.RootReadme.Name, documentTitle(*c.RootReadme))
	}
	for i, unit := range c.Units {
		fmt.Printf("%3d. %s\n", i+1, unit.Name)
		for _, doc := range unit.Documents {
			fmt.Printf("     - %s (%s)\n", doc.Name, documentTitle(doc))
		}
	}

	total := len(c.Documents())
	fmt.Printf("\n%d units, %d documents\n", len(c.Units), total)
	return nil
}

// documentTitle reads the document's title, falling back to a
// filename-derived display title for documents without a heading.
func documentTitle(doc corpus.Document) string {
	content, err := os.ReadFile(doc.Path)
	if err != nil {
		return "unreadable: " + err.Error()
	}
	if title, ok := markdown.DisplayTitle(content); ok {
		return title
	}
	return markdown.TitleFromFilename(doc.Name)
}
