// Package annotex provides a public API for exploring zip archives of
// object-detection datasets: it detects the annotation format in use and
// reorganizes images and annotation files into a predictable layout.
//
// This is the library entry point. For the CLI tool, see cmd/annotex/.
package annotex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hamedhamzeh/annotex/internal/archive"
	"github.com/hamedhamzeh/annotex/internal/classify"
	"github.com/hamedhamzeh/annotex/internal/sniff"
	"github.com/hamedhamzeh/annotex/internal/types"
	"github.com/hamedhamzeh/annotex/internal/workspace"
)

// Re-export core types from internal/types so consumers don't need to
// import internal packages.
type (
	Format        = types.Format
	FileClass     = types.FileClass
	Result        = types.Result
	ManifestEntry = types.ManifestEntry
)

const (
	FormatUnknown   = types.FormatUnknown
	FormatPascalVOC = types.FormatPascalVOC
	FormatYOLO      = types.FormatYOLO
	FormatCOCO      = types.FormatCOCO
)

// FormatInfo provides summary metadata about a supported annotation format.
type FormatInfo struct {
	Name      string `json:"name"`
	Literal   string `json:"literal"`
	Extension string `json:"extension"`
}

// Explore extracts the archive at archivePath, classifies every extracted
// file, routes images and matching annotation files into a freshly created
// workspace, and removes the extraction scratch area. The returned Result
// carries the detected format and routing counts.
func Explore(ctx context.Context, archivePath string, opts ...Option) (*Result, error) {
	cfg := applyOpts(opts)

	archiveName := filepath.Base(archivePath)
	ws, err := workspace.Create(cfg.outputDir, archiveName)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	scratch := cfg.scratchDir
	if scratch == "" {
		scratch, err = os.MkdirTemp("", "annotex-extract-")
		if err != nil {
			return nil, fmt.Errorf("creating scratch dir: %w", err)
		}
	}
	defer func() { _ = archive.Cleanup(scratch) }()

	start := time.Now()
	if err := archive.Extract(archivePath, scratch); err != nil {
		return nil, err
	}

	c := classify.New(classify.OSFS{}, ws, cfg.imageExts, cfg.exif)
	out, err := c.Run(ctx, scratch)
	if err != nil {
		return nil, err
	}

	if err := ws.WriteManifest(out.Manifest); err != nil {
		return nil, err
	}
	if err := archive.Cleanup(scratch); err != nil {
		return nil, err
	}

	return &Result{
		ArchiveName: archiveName,
		Format:      out.Format,
		Images:      out.Images,
		Annotations: out.Annotations,
		Workspace:   ws.Root,
		Manifest:    out.Manifest,
		Duration:    time.Since(start),
	}, nil
}

// Formats returns metadata for every supported annotation format.
func Formats() []FormatInfo {
	var infos []FormatInfo
	for _, s := range sniff.All() {
		var ext string
		switch s.Format() {
		case types.FormatPascalVOC:
			ext = ".xml"
		case types.FormatYOLO:
			ext = ".txt"
		default:
			ext = ".json"
		}
		infos = append(infos, FormatInfo{
			Name:      s.Name(),
			Literal:   s.Format().String(),
			Extension: ext,
		})
	}
	return infos
}
