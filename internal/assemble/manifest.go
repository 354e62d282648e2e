package assemble

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Manifest is a record of one successful build: its inputs, the converter
// used, and a content hash per staged file. It is written next to the
// artifact so repeated builds can be compared without re-running pandoc.
type Manifest struct {
	ID            string            `json:"id"`
	Timestamp     time.Time         `json:"timestamp"`
	Input         string            `json:"input"`
	Artifact      string            `json:"artifact"`
	PandocVersion string            `json:"pandoc_version,omitempty"`
	Units         int               `json:"units"`
	Files         int               `json:"files"`
	DurationMS    int64             `json:"duration_ms"`
	FileHashes    map[string]string `json:"file_hashes"`
}

// newManifest creates a manifest with a fresh build ID.
func newManifest(input, artifact string) *Manifest {
	return &Manifest{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Input:      input,
		Artifact:   artifact,
		FileHashes: make(map[string]string),
	}
}

// recordFile stores the content hash of one staged file keyed by its staged
// name.
func (m *Manifest) recordFile(stagedName string, content []byte) {
	m.FileHashes[stagedName] = fmt.Sprintf("%x", sha256.Sum256(content))
	m.Files = len(m.FileHashes)
}

// Path returns where the manifest is written for a given artifact.
func (m *Manifest) Path() string {
	return m.Artifact + ".manifest.json"
}

// Write serializes the manifest next to the artifact.
func (m *Manifest) Write() error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(m.Path(), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
