// Package formatter renders conversion results for terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/cotlang/cotup/internal/types"
)

var (
	convertedStyle = color.New(color.FgGreen, color.Bold)
	warningStyle   = color.New(color.FgHiYellow, color.Bold)
	errorStyle     = color.New(color.FgRed, color.Bold)
	fileStyle      = color.New(color.FgCyan, color.Bold)
	labelStyle     = color.New(color.FgYellow)
	headerStyle    = color.New(color.FgBlue, color.Bold)
)

// FormatResult renders one per-file line. Unchanged files with no
// diagnostic produce no output.
func FormatResult(r tt.Result) string {
	switch r.Status {
	case tt.Converted:
		return convertedStyle.Sprint("converted: ") + fileStyle.Sprint(r.Path) +
			labelStyle.Sprintf(" (%s)", r.Label) + "\n"
	case tt.Unchanged:
		if r.Err == nil {
			return ""
		}
		return warningStyle.Sprint("warning: ") + fileStyle.Sprint(r.Path) +
			": " + r.Err.Error() + "\n"
	case tt.Failed:
		return errorStyle.Sprint("error: ") + fileStyle.Sprint(r.Path) +
			": " + r.Err.Error() + "\n"
	}
	return ""
}

// FormatResults renders a batch of per-file lines.
func FormatResults(results []tt.Result) string {
	var builder strings.Builder
	for _, r := range results {
		builder.WriteString(FormatResult(r))
	}
	return builder.String()
}

// FormatPreview renders the would-be output of one file for dry-run
// mode, framed by a header naming the file.
func FormatPreview(r tt.Result) string {
	var builder strings.Builder
	builder.WriteString(headerStyle.Sprintf("=== %s ===", r.Path))
	builder.WriteByte('\n')
	builder.WriteString(r.Output)
	if !strings.HasSuffix(r.Output, "\n") {
		builder.WriteByte('\n')
	}
	return builder.String()
}

// FormatSummary renders the batch totals.
func FormatSummary(s tt.Summary) string {
	return fmt.Sprintf("\nConverted: %d, Unchanged: %d, Failed: %d\n",
		s.Converted, s.Unchanged, s.Failed)
}
