// Package types defines shared data structures (Format, FileClass, Result)
// used across the archive, classify, and output packages to prevent import
// cycles.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format identifies an annotation encoding detected in an archive.
type Format int

const (
	FormatUnknown Format = iota
	FormatPascalVOC
	FormatYOLO
	FormatCOCO
)

func (f Format) String() string {
	switch f {
	case FormatPascalVOC:
		return "Pascal VOC"
	case FormatYOLO:
		return "YOLO"
	case FormatCOCO:
		return "COCO"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the format literal, or null when no format was detected.
func (f Format) MarshalJSON() ([]byte, error) {
	if f == FormatUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(f.String())
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pascal voc", "pascal-voc", "voc", "xml":
		return FormatPascalVOC, nil
	case "yolo":
		return FormatYOLO, nil
	case "coco":
		return FormatCOCO, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown annotation format: %q", s)
	}
}

// FileClass is the routing decision for a single file in the scratch tree.
// Every file resolves to exactly one class.
type FileClass int

const (
	ClassUnclassified FileClass = iota
	ClassImage
	ClassAnnotationXML
	ClassAnnotationYOLO
	ClassAnnotationCOCO
)

func (c FileClass) String() string {
	switch c {
	case ClassImage:
		return "image"
	case ClassAnnotationXML:
		return "annotation-xml"
	case ClassAnnotationYOLO:
		return "annotation-yolo"
	case ClassAnnotationCOCO:
		return "annotation-coco"
	default:
		return "unclassified"
	}
}

// Format returns the annotation format a class corresponds to, or
// FormatUnknown for images and unclassified files.
func (c FileClass) Format() Format {
	switch c {
	case ClassAnnotationXML:
		return FormatPascalVOC
	case ClassAnnotationYOLO:
		return FormatYOLO
	case ClassAnnotationCOCO:
		return FormatCOCO
	default:
		return FormatUnknown
	}
}

// ManifestEntry records a single routed file for the workspace manifest.
type ManifestEntry struct {
	Name       string    `json:"name"`
	Class      FileClass `json:"class"`
	Dest       string    `json:"dest"`
	CapturedAt time.Time `json:"captured_at,omitzero"`
}

// Result holds the complete summary of an explore run.
type Result struct {
	ArchiveName string          `json:"dataset_name"`
	Format      Format          `json:"annotation_format"`
	Images      int             `json:"num_images"`
	Annotations int             `json:"num_annotations_files"`
	Workspace   string          `json:"workspace"`
	Manifest    []ManifestEntry `json:"-"`
	Duration    time.Duration   `json:"-"`
}

// MarshalJSON implements custom JSON marshaling so Duration serializes as milliseconds.
func (r Result) MarshalJSON() ([]byte, error) {
	type Alias Result
	return json.Marshal(struct {
		Alias
		DurationMS int64 `json:"duration_ms"`
	}{
		Alias:      Alias(r),
		DurationMS: r.Duration.Milliseconds(),
	})
}
