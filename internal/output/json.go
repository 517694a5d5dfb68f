package output

import (
	"encoding/json"
	"io"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// JSONFormatter outputs the result summary as a JSON object.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, result *types.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
