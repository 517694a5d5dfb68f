// Package workspace creates and manages the organized output directory tree:
// a uniquely named converted_<archive> root with image folders, seeded COCO
// documents, and per-format annotation buckets.
package workspace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// Subdirectory and seed-file names inside a workspace.
const (
	TrainImagesDir      = "train_images"
	ValidationImagesDir = "validation_images"
	CocosDir            = "cocos"
	AnnotationsDir      = "annotations"
	ManifestFile        = "manifest.csv"
)

// cocoSeeds are the summary documents seeded into cocos/ at creation time.
var cocoSeeds = []string{"val_coco.json", "test_coco.json"}

// cocoSkeleton is the empty schema every seeded COCO document starts with.
type cocoSkeleton struct {
	Info                 map[string]any `json:"info"`
	Images               []any          `json:"images"`
	Categories           []any          `json:"categories"`
	Licenses             []any          `json:"licenses"`
	Errors               []any          `json:"errors"`
	Annotations          []any          `json:"annotations"`
	Labels               []any          `json:"labels"`
	Classifications      []any          `json:"classifications"`
	AugmentationSettings map[string]any `json:"augmentation_settings"`
	TileSettings         map[string]any `json:"tile_settings"`
	FalsePositive        map[string]any `json:"False_positive"`
}

func emptySkeleton() cocoSkeleton {
	return cocoSkeleton{
		Info:                 map[string]any{},
		Images:               []any{},
		Categories:           []any{},
		Licenses:             []any{},
		Errors:               []any{},
		Annotations:          []any{},
		Labels:               []any{},
		Classifications:      []any{},
		AugmentationSettings: map[string]any{},
		TileSettings:         map[string]any{},
		FalsePositive:        map[string]any{},
	}
}

// Workspace is the organized output root for one explore run.
type Workspace struct {
	Root string
}

// Create builds a workspace for the given archive file name under parentDir.
// The root is named converted_<archiveName>; if that name is taken an
// increasing numeric suffix is appended until a free name is found. The
// fixed subdirectory skeleton and seeded COCO documents are written before
// any classification happens.
func Create(parentDir, archiveName string) (*Workspace, error) {
	root, err := uniqueRoot(parentDir, "converted_"+archiveName)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{Root: root}
	for _, dir := range []string{
		root,
		ws.TrainImages(),
		filepath.Join(root, ValidationImagesDir),
		filepath.Join(root, CocosDir),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating workspace dir %s: %w", dir, err)
		}
	}

	if err := ws.seedCocoFiles(); err != nil {
		return nil, err
	}
	return ws, nil
}

// uniqueRoot finds a directory name under parentDir that does not exist yet.
func uniqueRoot(parentDir, base string) (string, error) {
	candidate := filepath.Join(parentDir, base)
	for counter := 1; ; counter++ {
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("probing workspace name %s: %w", candidate, err)
		}
		candidate = filepath.Join(parentDir, fmt.Sprintf("%s_%d", base, counter))
	}
}

func (ws *Workspace) seedCocoFiles() error {
	data, err := json.MarshalIndent(emptySkeleton(), "", "    ")
	if err != nil {
		return err
	}
	for _, name := range cocoSeeds {
		path := filepath.Join(ws.Root, CocosDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("seeding %s: %w", name, err)
		}
	}
	return nil
}

// TrainImages returns the destination directory for routed images.
func (ws *Workspace) TrainImages() string {
	return filepath.Join(ws.Root, TrainImagesDir)
}

// AnnotationBucket returns the destination directory for a detected format.
func (ws *Workspace) AnnotationBucket(format types.Format) string {
	var bucket string
	switch format {
	case types.FormatPascalVOC:
		bucket = "xml"
	case types.FormatYOLO:
		bucket = "yolo"
	case types.FormatCOCO:
		bucket = "coco"
	default:
		bucket = "unknown"
	}
	return filepath.Join(ws.Root, AnnotationsDir, bucket)
}

// WriteManifest records every routed file as a CSV row. Called once, after
// classification completes.
func (ws *Workspace) WriteManifest(entries []types.ManifestEntry) error {
	f, err := os.Create(filepath.Join(ws.Root, ManifestFile))
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "class", "destination", "captured_at"}); err != nil {
		return err
	}
	for _, e := range entries {
		captured := ""
		if !e.CapturedAt.IsZero() {
			captured = e.CapturedAt.UTC().Format("2006-01-02 15:04:05")
		}
		if err := w.Write([]string{e.Name, e.Class.String(), e.Dest, captured}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
