package assemble

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mdpress/mdpress/internal/config"
)

// metadata mirrors the pandoc YAML metadata block field names.
type metadata struct {
	Title       string   `yaml:"title"`
	Author      []string `yaml:"author,omitempty"`
	Rights      string   `yaml:"rights,omitempty"`
	Language    string   `yaml:"language,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Subject     []string `yaml:"subject,omitempty"`
	Publisher   string   `yaml:"publisher,omitempty"`
	Date        string   `yaml:"date,omitempty"`
}

// renderMetadata produces the pandoc metadata preamble passed as the first
// input file of the conversion. The block is delimited "---" ... "..." as
// pandoc expects.
func renderMetadata(book config.BookConfig, now time.Time) ([]byte, error) {
	m := metadata{
		Title:       book.Title,
		Author:      book.Authors,
		Rights:      book.Rights,
		Language:    book.Language,
		Description: book.Description,
		Subject:     book.Subjects,
		Publisher:   book.Publisher,
		Date:        book.Date,
	}
	if m.Date == "" {
		m.Date = strconv.Itoa(now.Year())
	}

	body, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return append(append([]byte("---\n"), body...), []byte("...\n")...), nil
}
