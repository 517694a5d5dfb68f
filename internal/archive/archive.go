// Package archive extracts zip archives into a scratch directory and tears
// the scratch directory down after classification.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks every member of the zip archive at zipPath into scratchDir,
// preserving relative paths so nested files stay discoverable at any depth.
// Members that would escape scratchDir are rejected.
func Extract(zipPath, scratchDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", zipPath, err)
	}
	defer func() { _ = r.Close() }()

	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return fmt.Errorf("creating scratch dir: %w", err)
	}

	for _, member := range r.File {
		if err := extractMember(member, scratchDir); err != nil {
			return fmt.Errorf("extracting %s: %w", member.Name, err)
		}
	}
	return nil
}

func extractMember(member *zip.File, scratchDir string) error {
	dest := filepath.Join(scratchDir, filepath.FromSlash(member.Name))

	// Guard against zip-slip: the joined path must stay inside scratchDir.
	rel, err := filepath.Rel(scratchDir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("illegal member path %q", member.Name)
	}

	if member.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	src, err := member.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Cleanup recursively deletes the scratch directory. A scratch directory
// that is already absent is a no-op, not an error.
func Cleanup(scratchDir string) error {
	if err := os.RemoveAll(scratchDir); err != nil {
		return fmt.Errorf("removing scratch dir: %w", err)
	}
	return nil
}
