package output

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// MarkdownFormatter outputs the result as a Markdown report, suitable for
// sharing or attaching to dataset documentation.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, result *types.Result) error {
	md := markdown.NewMarkdown(w)

	md.H1("Annotation Archive Report")
	md.PlainText("")

	format := result.Format.String()
	if result.Format == types.FormatUnknown {
		format = "none detected"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Archive", "`" + result.ArchiveName + "`"},
			{"Detected format", format},
			{"Images", strconv.Itoa(result.Images)},
			{"Annotation files", strconv.Itoa(result.Annotations)},
			{"Workspace", "`" + result.Workspace + "`"},
		},
	})
	md.PlainText("")

	if len(result.Manifest) > 0 {
		md.H2("Routed files")
		rows := make([][]string, 0, len(result.Manifest))
		for _, e := range result.Manifest {
			captured := ""
			if !e.CapturedAt.IsZero() {
				captured = e.CapturedAt.UTC().Format("2006-01-02 15:04:05")
			}
			rows = append(rows, []string{"`" + e.Name + "`", e.Class.String(), captured})
		}
		md.Table(markdown.TableSet{
			Header: []string{"File", "Class", "Captured"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.PlainText("Generated by annotex " + ToolVersion)
	return md.Build()
}
