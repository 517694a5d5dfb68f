// Package output formats explore results for terminal (ANSI), JSON, and
// Markdown output.
package output

import (
	"io"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// ToolVersion is stamped into reports; set by the CLI at startup.
var ToolVersion = "dev"

// Formatter is the interface for outputting explore results.
type Formatter interface {
	Format(w io.Writer, result *types.Result) error
}
