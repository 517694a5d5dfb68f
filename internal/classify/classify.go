// Package classify walks an extracted archive tree, decides a class for
// every file through extension gating and content sniffing, and routes
// classified files into the workspace layout.
package classify

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hamedhamzeh/annotex/internal/imagemeta"
	"github.com/hamedhamzeh/annotex/internal/sniff"
	"github.com/hamedhamzeh/annotex/internal/types"
	"github.com/hamedhamzeh/annotex/internal/workspace"
)

// defaultImageExts are the image extensions routed without content checks.
// Matching is case-insensitive.
var defaultImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Outcome accumulates the results of one classification pass.
type Outcome struct {
	Format      types.Format
	Images      int
	Annotations int
	Manifest    []types.ManifestEntry
}

// Classifier routes files from a scratch tree into a workspace.
type Classifier struct {
	fs        FS
	ws        *workspace.Workspace
	imageExts map[string]bool
	exif      bool
}

// New creates a Classifier targeting the given workspace. extraImageExts
// extends the default image extension set; entries are normalized to
// lowercase with a leading dot.
func New(fs FS, ws *workspace.Workspace, extraImageExts []string, exif bool) *Classifier {
	exts := make(map[string]bool, len(defaultImageExts)+len(extraImageExts))
	for ext := range defaultImageExts {
		exts[ext] = true
	}
	for _, ext := range extraImageExts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = true
	}
	return &Classifier{fs: fs, ws: ws, imageExts: exts, exif: exif}
}

// Run visits every file under scratchDir exactly once and routes each to at
// most one destination bucket. Files that match nothing are left in place.
// The recorded format is the last annotation match observed during the walk.
func (c *Classifier) Run(ctx context.Context, scratchDir string) (*Outcome, error) {
	out := &Outcome{}
	err := c.fs.Walk(scratchDir, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		class := c.dispatch(path)
		if class == types.ClassUnclassified {
			return nil
		}
		return c.route(path, class, out)
	})
	if err != nil {
		return nil, fmt.Errorf("classifying %s: %w", scratchDir, err)
	}
	return out, nil
}

// dispatch decides the class of a single file. Images are authoritative by
// extension alone; annotation extensions gate exactly one content sniffer.
func (c *Classifier) dispatch(path string) types.FileClass {
	ext := filepath.Ext(path)
	if c.imageExts[strings.ToLower(ext)] {
		return types.ClassImage
	}

	s := sniff.ForExtension(ext)
	if s == nil {
		return types.ClassUnclassified
	}
	content, err := c.fs.ReadFile(path)
	if err != nil {
		// Unreadable candidates are left unclassified, not failed.
		return types.ClassUnclassified
	}
	if !s.Match(content) {
		return types.ClassUnclassified
	}

	switch s.Format() {
	case types.FormatPascalVOC:
		return types.ClassAnnotationXML
	case types.FormatYOLO:
		return types.ClassAnnotationYOLO
	default:
		return types.ClassAnnotationCOCO
	}
}

func (c *Classifier) route(path string, class types.FileClass, out *Outcome) error {
	var destDir string
	if class == types.ClassImage {
		destDir = c.ws.TrainImages()
	} else {
		destDir = c.ws.AnnotationBucket(class.Format())
	}
	if err := c.fs.MkdirAll(destDir); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}

	name := filepath.Base(path)
	dest := filepath.Join(destDir, name)
	if err := c.fs.Move(path, dest); err != nil {
		return fmt.Errorf("moving %s: %w", name, err)
	}

	entry := types.ManifestEntry{Name: name, Class: class, Dest: destDir}
	if class == types.ClassImage {
		out.Images++
		if c.exif {
			if captured, ok := imagemeta.CaptureDate(dest); ok {
				entry.CapturedAt = captured
			}
		}
	} else {
		out.Annotations++
		out.Format = class.Format()
	}
	out.Manifest = append(out.Manifest, entry)
	return nil
}
