package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	resetFlags()
	flagHistoryLimit = 20
	flagHistoryPath = ""

	db := filepath.Join(t.TempDir(), "history.db")
	out := execute(t, "history", "--db", db)
	require.Contains(t, out, "No runs recorded yet.")
}

func TestHistoryAfterExplore(t *testing.T) {
	resetFlags()
	flagHistoryLimit = 20
	flagHistoryPath = ""
	flagHistoryDB = ""

	dir := t.TempDir()
	zipPath := buildArchive(t, dir, map[string]string{
		"labels.txt": "0 0.5 0.5 0.2 0.3",
	})
	db := filepath.Join(dir, "history.db")

	execute(t, "explore", zipPath, "--dest", dir, "--history-db", db)

	out := execute(t, "history", "--db", db)
	require.Contains(t, out, "dataset.zip")
	require.Contains(t, out, "YOLO")
}

func TestVersionCommand(t *testing.T) {
	resetFlags()

	out := execute(t, "version")
	require.Contains(t, out, "annotex")
}
