package output

import (
	"fmt"
	"io"
	"os"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// ANSI color codes
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"
	green = "\033[32m"
	cyan  = "\033[36m"
)

// TerminalFormatter prints a human-readable run summary.
type TerminalFormatter struct {
	NoColor bool
}

func (f *TerminalFormatter) color(code, text string) string {
	if f.NoColor {
		return text
	}
	return code + text + reset
}

func (f *TerminalFormatter) Format(w io.Writer, result *types.Result) error {
	if os.Getenv("NO_COLOR") != "" {
		f.NoColor = true
	}

	fmt.Fprintf(w, "%s\n", f.color(bold, "annotex: "+result.ArchiveName))

	format := result.Format.String()
	if result.Format == types.FormatUnknown {
		format = "none detected"
	}
	fmt.Fprintf(w, "  %s %s\n", f.color(cyan, "format:"), format)
	fmt.Fprintf(w, "  %s %d\n", f.color(cyan, "images:"), result.Images)
	fmt.Fprintf(w, "  %s %d\n", f.color(cyan, "annotation files:"), result.Annotations)
	fmt.Fprintf(w, "  %s %s\n", f.color(cyan, "workspace:"), result.Workspace)
	fmt.Fprintf(w, "\n%s\n",
		f.color(dim, fmt.Sprintf("%d files routed in %.2fs",
			result.Images+result.Annotations, result.Duration.Seconds())))

	if result.Images > 0 || result.Annotations > 0 {
		fmt.Fprintf(w, "%s archive organized\n", f.color(green, "✔"))
	}
	return nil
}
