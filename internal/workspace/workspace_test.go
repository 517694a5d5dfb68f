package workspace_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hamedhamzeh/annotex/internal/types"
	"github.com/hamedhamzeh/annotex/internal/workspace"
)

func TestCreateSkeleton(t *testing.T) {
	dir := t.TempDir()

	ws, err := workspace.Create(dir, "dataset.zip")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "converted_dataset.zip"), ws.Root)

	for _, sub := range []string{"train_images", "validation_images", "cocos"} {
		info, err := os.Stat(filepath.Join(ws.Root, sub))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
}

func TestCreateSeedsCocoDocuments(t *testing.T) {
	dir := t.TempDir()

	ws, err := workspace.Create(dir, "dataset.zip")
	require.NoError(t, err)

	for _, name := range []string{"val_coco.json", "test_coco.json"} {
		data, err := os.ReadFile(filepath.Join(ws.Root, "cocos", name))
		require.NoError(t, err)

		var doc map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &doc))
		for _, key := range []string{
			"info", "images", "categories", "licenses", "errors",
			"annotations", "labels", "classifications",
			"augmentation_settings", "tile_settings", "False_positive",
		} {
			require.Contains(t, doc, key)
		}
	}
}

func TestCreateDisambiguatesOnCollision(t *testing.T) {
	dir := t.TempDir()

	first, err := workspace.Create(dir, "dataset.zip")
	require.NoError(t, err)
	second, err := workspace.Create(dir, "dataset.zip")
	require.NoError(t, err)
	third, err := workspace.Create(dir, "dataset.zip")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, "converted_dataset.zip"), first.Root)
	require.Equal(t, filepath.Join(dir, "converted_dataset.zip_1"), second.Root)
	require.Equal(t, filepath.Join(dir, "converted_dataset.zip_2"), third.Root)
}

func TestAnnotationBuckets(t *testing.T) {
	ws := &workspace.Workspace{Root: "/out/converted_x.zip"}

	require.Equal(t, filepath.Join("/out/converted_x.zip", "annotations", "xml"),
		ws.AnnotationBucket(types.FormatPascalVOC))
	require.Equal(t, filepath.Join("/out/converted_x.zip", "annotations", "yolo"),
		ws.AnnotationBucket(types.FormatYOLO))
	require.Equal(t, filepath.Join("/out/converted_x.zip", "annotations", "coco"),
		ws.AnnotationBucket(types.FormatCOCO))
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	ws, err := workspace.Create(dir, "dataset.zip")
	require.NoError(t, err)

	captured := time.Date(2023, 6, 1, 12, 30, 0, 0, time.UTC)
	entries := []types.ManifestEntry{
		{Name: "img1.jpg", Class: types.ClassImage, Dest: ws.TrainImages(), CapturedAt: captured},
		{Name: "ann1.xml", Class: types.ClassAnnotationXML, Dest: ws.AnnotationBucket(types.FormatPascalVOC)},
	}
	require.NoError(t, ws.WriteManifest(entries))

	data, err := os.ReadFile(filepath.Join(ws.Root, "manifest.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "img1.jpg,image")
	require.Contains(t, string(data), "2023-06-01 12:30:00")
	require.Contains(t, string(data), "ann1.xml,annotation-xml")
}
