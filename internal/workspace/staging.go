// Package workspace manages the staging area: a scratch directory holding
// rewritten, renamed copies of every document immediately before conversion.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mdpress/mdpress/internal/logfields"
)

// Staging is the scratch directory for one assembler run. It is recreated
// from scratch at the start of every run and removed again only after a
// successful conversion, so failed runs leave their artifacts behind for
// inspection.
type Staging struct {
	dir string
}

// NewStaging creates a staging manager rooted at dir.
func NewStaging(dir string) *Staging {
	return &Staging{dir: dir}
}

// Path returns the staging directory path.
func (s *Staging) Path() string {
	return s.dir
}

// Recreate deletes any leftover staging directory and creates a fresh one,
// guaranteeing a clean slate for the run.
func (s *Staging) Recreate() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to clear staging directory: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	slog.Debug("Created staging directory", logfields.Path(s.dir))
	return nil
}

// WriteFile writes data to name inside the staging directory and returns the
// full path of the written file.
func (s *Staging) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write staged file %s: %w", name, err)
	}
	return path, nil
}

// Cleanup removes the staging directory. Callers invoke it only on success.
func (s *Staging) Cleanup() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to cleanup staging directory: %w", err)
	}
	slog.Debug("Cleaned up staging directory", logfields.Path(s.dir))
	return nil
}
