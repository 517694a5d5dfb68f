// Package imagemeta reads EXIF capture dates from routed image files to
// enrich the workspace manifest. Images without usable EXIF data are simply
// reported as having no capture date.
package imagemeta

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// CaptureDate returns the EXIF capture timestamp of the image at path.
// The second return value is false when the file has no readable EXIF data;
// that is expected for PNGs and stripped JPEGs and is never an error.
func CaptureDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer func() { _ = f.Close() }()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
