// Package config loads and defaults the mdpress configuration: the curated
// reading order for the corpus and the metadata embedded into the produced
// EPUB. The curated sequences are configuration, not code, so corpora other
// than the default one can supply their own ordering.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus"`
	Book   BookConfig   `yaml:"book"`
	Output OutputConfig `yaml:"output"`
}

// CorpusConfig describes the corpus layout and the curated ordering.
type CorpusConfig struct {
	// TutorialsDir is the directory under the input root that holds the
	// tutorial units. Defaults to "tutorials".
	TutorialsDir string `yaml:"tutorials_dir,omitempty"`
	// UnitOrder is the curated ordering of tutorial units. Units present on
	// disk but absent here are appended in filesystem order.
	UnitOrder []string `yaml:"unit_order,omitempty"`
	// FileOrder is the curated per-unit ordering of secondary documents.
	// The unit README always comes first and is not listed here.
	FileOrder []string `yaml:"file_order,omitempty"`
}

// BookConfig carries the metadata fields written into the pandoc preamble.
type BookConfig struct {
	Title       string   `yaml:"title"`
	Authors     []string `yaml:"authors,omitempty"`
	Rights      string   `yaml:"rights,omitempty"`
	Language    string   `yaml:"language,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Subjects    []string `yaml:"subjects,omitempty"`
	Publisher   string   `yaml:"publisher,omitempty"`
	Date        string   `yaml:"date,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	// Artifact is the default output EPUB path, overridable with -o.
	Artifact string `yaml:"artifact,omitempty"`
	// StagingDir is the scratch directory for rewritten copies.
	StagingDir string `yaml:"staging_dir,omitempty"`
}

// Load loads configuration from the specified file. A missing file is not an
// error: the tool is expected to work out of the box, so defaults are
// returned instead.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Corpus.TutorialsDir == "" {
		c.Corpus.TutorialsDir = "tutorials"
	}
	if len(c.Corpus.UnitOrder) == 0 {
		c.Corpus.UnitOrder = defaultUnitOrder()
	}
	if len(c.Corpus.FileOrder) == 0 {
		c.Corpus.FileOrder = defaultFileOrder()
	}
	if c.Book.Title == "" {
		c.Book.Title = "The Engineer's Playbook: Fundamental Data Structures and Algorithms"
	}
	if len(c.Book.Authors) == 0 {
		c.Book.Authors = []string{"Quan Hua"}
	}
	if c.Book.Language == "" {
		c.Book.Language = "en-US"
	}
	if c.Book.Description == "" {
		c.Book.Description = "Deep, intuitive understanding of the core data structures and algorithms that power modern software systems."
	}
	if len(c.Book.Subjects) == 0 {
		c.Book.Subjects = []string{"Computer Science", "Data Structures", "Algorithms", "System Design", "Programming"}
	}
	if c.Output.Artifact == "" {
		c.Output.Artifact = "the-engineers-playbook.epub"
	}
	if c.Output.StagingDir == "" {
		c.Output.StagingDir = "temp_epub_pandoc"
	}
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
