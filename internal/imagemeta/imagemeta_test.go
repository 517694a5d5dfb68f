package imagemeta_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamedhamzeh/annotex/internal/imagemeta"
)

func TestCaptureDateMissingFile(t *testing.T) {
	_, ok := imagemeta.CaptureDate(filepath.Join(t.TempDir(), "nope.jpg"))
	require.False(t, ok)
}

func TestCaptureDateNoEXIF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not a real jpeg"), 0o644))

	_, ok := imagemeta.CaptureDate(path)
	require.False(t, ok)
}
