package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamedhamzeh/annotex/internal/config"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
output_dir: /data/converted
image_extensions:
  - bmp
  - tiff
format: json
exif: true
no_history: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".annotex.yml"), data, 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "/data/converted", cfg.OutputDir)
	require.Equal(t, []string{"bmp", "tiff"}, cfg.ImageExtensions)
	require.Equal(t, "json", cfg.Format)
	require.True(t, cfg.EXIF)
	require.True(t, cfg.NoHistory)
}

func TestLoadConfigYAMLExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".annotex.yaml"), []byte("format: markdown\n"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "markdown", cfg.Format)
}

func TestLoadConfigNextToArchiveFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".annotex.yml"), []byte("exif: true\n"), 0o644))
	archive := filepath.Join(dir, "dataset.zip")
	require.NoError(t, os.WriteFile(archive, []byte("zip"), 0o644))

	cfg, err := config.Load(archive)
	require.NoError(t, err)
	require.True(t, cfg.EXIF)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".annotex.yml"), []byte("output_dir: [broken"), 0o644))

	_, err := config.Load(dir)
	require.Error(t, err)
}
