package archive_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamedhamzeh/annotex/internal/archive"
)

// writeZip builds a zip file at path from a name->content map.
func writeZip(t *testing.T, path string, members map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestExtractPreservesNesting(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "dataset.zip")
	writeZip(t, zipPath, map[string]string{
		"img1.jpg":                   "jpegdata",
		"labels/ann1.xml":            "<annotation/>",
		"deep/nested/dir/labels.txt": "0 0.5 0.5 0.2 0.3",
	})

	scratch := filepath.Join(dir, "scratch")
	require.NoError(t, archive.Extract(zipPath, scratch))

	for _, rel := range []string{
		"img1.jpg",
		filepath.Join("labels", "ann1.xml"),
		filepath.Join("deep", "nested", "dir", "labels.txt"),
	} {
		_, err := os.Stat(filepath.Join(scratch, rel))
		require.NoError(t, err, "expected %s to be extracted", rel)
	}
}

func TestExtractMissingArchive(t *testing.T) {
	dir := t.TempDir()
	err := archive.Extract(filepath.Join(dir, "nope.zip"), filepath.Join(dir, "scratch"))
	require.Error(t, err)
}

func TestExtractRejectsEscapingMember(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "evil.zip")
	writeZip(t, zipPath, map[string]string{
		"../escape.txt": "pwned",
	})

	scratch := filepath.Join(dir, "scratch")
	require.Error(t, archive.Extract(zipPath, scratch))
	_, err := os.Stat(filepath.Join(dir, "escape.txt"))
	require.True(t, os.IsNotExist(err))
}

func TestCleanupRemovesScratch(t *testing.T) {
	dir := t.TempDir()
	scratch := filepath.Join(dir, "scratch")
	require.NoError(t, os.MkdirAll(filepath.Join(scratch, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "sub", "left.dat"), []byte("x"), 0o644))

	require.NoError(t, archive.Cleanup(scratch))
	_, err := os.Stat(scratch)
	require.True(t, os.IsNotExist(err))
}

func TestCleanupIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, archive.Cleanup(filepath.Join(dir, "never-existed")))
}
