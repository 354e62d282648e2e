// Package pandoc wraps the external pandoc binary. Pandoc is an opaque
// collaborator: this package probes for its presence, detects its version,
// and runs one conversion over an ordered file list. The heading-identifier
// scheme pandoc applies during conversion is the contract the anchor package
// reproduces.
package pandoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotFound indicates the pandoc binary is not installed or not on PATH.
var ErrNotFound = errors.New("pandoc not found in PATH (install it, e.g. 'apt install pandoc' or 'brew install pandoc')")

// Converter abstracts the external document converter so the assembler can be
// exercised in tests without pandoc installed.
type Converter interface {
	// Probe checks that the converter is invocable. It runs before any file
	// I/O so a missing binary aborts the build with no partial work done.
	Probe(ctx context.Context) error
	// Version returns the converter version, best effort ("" when unknown).
	Version(ctx context.Context) string
	// Convert produces outputPath from the metadata file followed by the
	// staged content files, in order.
	Convert(ctx context.Context, outputPath, metadataFile string, files []string) error
}

// ConvertError carries the captured diagnostic streams of a failed
// invocation so callers can surface them verbatim.
type ConvertError struct {
	Stdout string
	Stderr string
	Err    error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("pandoc invocation failed: %v\nstdout: %s\nstderr: %s", e.Err, e.Stdout, e.Stderr)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// Runner is the production Converter backed by the pandoc binary.
type Runner struct {
	// WorkDir is the working directory for the invocation; empty means the
	// current directory.
	WorkDir string
}

// NewRunner creates a Runner that invokes pandoc from workDir.
func NewRunner(workDir string) *Runner {
	return &Runner{WorkDir: workDir}
}

// Probe verifies pandoc is present by running a version query.
func (r *Runner) Probe(ctx context.Context) error {
	path, err := exec.LookPath("pandoc")
	if err != nil {
		return ErrNotFound
	}
	// #nosec G204 -- path is from exec.LookPath, not user-controlled
	if err := exec.CommandContext(ctx, path, "--version").Run(); err != nil {
		return fmt.Errorf("pandoc version query failed: %w", err)
	}
	return nil
}

// Version returns the detected pandoc version, or "" when detection fails.
func (r *Runner) Version(ctx context.Context) string {
	path, err := exec.LookPath("pandoc")
	if err != nil {
		return ""
	}
	// #nosec G204 -- path is from exec.LookPath, not user-controlled
	output, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return ""
	}
	return parseVersion(string(output))
}

// Convert runs pandoc once: -o <outputPath> <metadataFile> <files...>.
// Diagnostic streams are captured and returned inside a *ConvertError on
// non-zero exit.
func (r *Runner) Convert(ctx context.Context, outputPath, metadataFile string, files []string) error {
	args := append([]string{"-o", outputPath, metadataFile}, files...)
	cmd := exec.CommandContext(ctx, "pandoc", args...)
	cmd.Dir = r.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &ConvertError{
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    err,
		}
	}
	return nil
}
