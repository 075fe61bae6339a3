package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gomarkup/pkg/markup"
)

// defaultWidth is used when the terminal width cannot be determined.
const defaultWidth = 100

// contextIndent aligns source excerpts under the diagnostic line.
const contextIndent = "        "

// ellipsis marks a trimmed excerpt side.
const ellipsis = "..."

// TerminalWidth returns the column width of the terminal behind
// writer, or a default when writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// RenderDiagnostics formats each diagnostic against the source content
// it points into. Width bounds the source excerpts; pass
// TerminalWidth's result, or zero for the default.
func (s *Styles) RenderDiagnostics(diags []markup.ArgumentDiagnostic, content string, width int) string {
	var builder strings.Builder
	for _, d := range diags {
		builder.WriteString(s.RenderDiagnostic(d, content, width))
	}
	return builder.String()
}

// RenderDiagnostic formats one diagnostic: a location line with the
// message, the source line with a caret under the offending column,
// and a remediation note when one exists.
func (s *Styles) RenderDiagnostic(d markup.ArgumentDiagnostic, content string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var builder strings.Builder

	location := ""
	if d.Location.Line > 0 {
		location = s.Location.Render(d.Location.String()) + "  "
	}
	builder.WriteString("  " + location +
		s.Warning.Render("warning") + "  " +
		s.Message.Render(d.Message()) + "\n")

	if line, ok := lineAt(content, d.Location.Line); ok {
		builder.WriteString(s.sourceContext(line, d.Location.Column, width))
	}

	if note := noteFor(d); note != "" {
		builder.WriteString("    " + s.Dim.Render("note:") + " " +
			s.Note.Render(note) + "\n")
	}
	return builder.String()
}

// sourceContext renders the excerpt line and the caret under column.
func (s *Styles) sourceContext(line string, column, width int) string {
	excerpt, column := excerptWindow(line, column, width-len(contextIndent))

	var builder strings.Builder
	builder.WriteString(contextIndent + s.SourceLine.Render(excerpt) + "\n")
	if column > 0 {
		builder.WriteString(contextIndent + strings.Repeat(" ", column-1) +
			s.Caret.Render("^") + "\n")
	}
	return builder.String()
}

// noteFor derives a remediation hint, empty when there is nothing
// concrete to say.
func noteFor(d markup.ArgumentDiagnostic) string {
	switch d.Kind {
	case markup.DiagnosticDuplicateArgument:
		if d.FirstLocation != nil {
			return fmt.Sprintf("first use of %q is at %s", d.ArgumentName, d.FirstLocation)
		}
	case markup.DiagnosticMissingExpectedCharacter:
		return fmt.Sprintf("insert %q", d.Character)
	}
	return ""
}

// lineAt extracts the 1-based line from content without its
// terminator.
func lineAt(content string, line int) (string, bool) {
	if line <= 0 {
		return "", false
	}
	rest := content
	for i := 1; rest != ""; i++ {
		next := ""
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			next = rest[idx+1:]
			rest = rest[:idx]
		}
		if i == line {
			return strings.TrimSuffix(rest, "\r"), true
		}
		rest = next
	}
	return "", false
}

// excerptWindow trims line to at most width bytes while keeping the
// caret column visible, eliding the trimmed sides. The returned column
// is relative to the trimmed line.
func excerptWindow(line string, column, width int) (string, int) {
	if width <= 2*len(ellipsis)+1 || len(line) <= width {
		return line, column
	}
	keep := width - len(ellipsis)
	if column <= keep {
		return line[:keep] + ellipsis, column
	}
	if start := len(line) - keep; column > start {
		return ellipsis + line[start:], column - start + len(ellipsis)
	}
	keep = width - 2*len(ellipsis)
	start := column - keep
	return ellipsis + line[start:start+keep] + ellipsis, column - start + len(ellipsis)
}
