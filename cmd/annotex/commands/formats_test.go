package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamedhamzeh/annotex"
)

func TestFormatsTable(t *testing.T) {
	resetFlags()

	out := execute(t, "formats")
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "Pascal VOC")
	require.Contains(t, out, "YOLO")
	require.Contains(t, out, "COCO")
	require.Contains(t, out, "3 formats supported")
}

func TestFormatsJSON(t *testing.T) {
	resetFlags()

	out := execute(t, "formats", "--format", "json")

	var infos []annotex.FormatInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
}
