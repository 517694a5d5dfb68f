// Package sniff implements content-based detection of annotation file
// formats. Each sniffer is a cheap single-pass predicate over a file's raw
// bytes; extension gating in the classifier guarantees at most one sniffer
// ever examines a given file, so no tie-breaking is needed.
package sniff

import (
	"github.com/hamedhamzeh/annotex/internal/types"
)

// Sniffer decides whether a file's content matches one annotation format.
// Malformed or unreadable content is a negative match, never an error.
type Sniffer interface {
	Name() string
	Format() types.Format
	Match(content []byte) bool
}

// ForExtension returns the sniffer gated by the given lowercase file
// extension (including the dot), or nil for extensions with no sniffer.
func ForExtension(ext string) Sniffer {
	switch ext {
	case ".xml":
		return PascalVOC{}
	case ".txt":
		return YOLO{}
	case ".json":
		return COCO{}
	default:
		return nil
	}
}

// All returns every registered sniffer, in extension-gate order.
func All() []Sniffer {
	return []Sniffer{PascalVOC{}, YOLO{}, COCO{}}
}
