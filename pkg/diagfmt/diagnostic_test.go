package diagfmt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomarkup/pkg/diagfmt"
	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/parser"
	"github.com/yaklabco/gomarkup/pkg/source"
)

func TestRenderDiagnostic_Duplicate(t *testing.T) {
	content := "@Outer(x: 1, x: 2)\n"
	first := source.NewLocation(1, 8)
	d := markup.ArgumentDiagnostic{
		Kind:          markup.DiagnosticDuplicateArgument,
		ArgumentName:  "x",
		Location:      source.NewLocation(1, 14),
		FirstLocation: &first,
	}

	styles := diagfmt.NewStyles(false)
	got := styles.RenderDiagnostic(d, content, 80)

	want := "  1:14  warning  duplicate argument \"x\"\n" +
		"        @Outer(x: 1, x: 2)\n" +
		"        " + strings.Repeat(" ", 13) + "^\n" +
		"    note: first use of \"x\" is at 1:8\n"
	assert.Equal(t, want, got)
}

func TestRenderDiagnostic_MissingCharacter(t *testing.T) {
	content := "@Image(source png)\n"
	d := markup.ArgumentDiagnostic{
		Kind:      markup.DiagnosticMissingExpectedCharacter,
		Character: ':',
		Location:  source.NewLocation(1, 14),
	}

	styles := diagfmt.NewStyles(false)
	got := styles.RenderDiagnostic(d, content, 80)

	want := "  1:14  warning  expected ':'\n" +
		"        @Image(source png)\n" +
		"        " + strings.Repeat(" ", 13) + "^\n" +
		"    note: insert ':'\n"
	assert.Equal(t, want, got)
}

func TestRenderDiagnostic_UnexpectedCharacter(t *testing.T) {
	content := "@Outer(, x: 1)\n"
	d := markup.ArgumentDiagnostic{
		Kind:      markup.DiagnosticUnexpectedCharacter,
		Character: ',',
		Location:  source.NewLocation(1, 8),
	}

	styles := diagfmt.NewStyles(false)
	got := styles.RenderDiagnostic(d, content, 80)

	// No note line for stray characters.
	want := "  1:8  warning  unexpected character ','\n" +
		"        @Outer(, x: 1)\n" +
		"        " + strings.Repeat(" ", 7) + "^\n"
	assert.Equal(t, want, got)
}

func TestRenderDiagnostic_NoLocation(t *testing.T) {
	// Argument text parsed without recorded ranges leaves the zero
	// Location; the message still renders without an excerpt.
	d := markup.ArgumentDiagnostic{
		Kind:         markup.DiagnosticDuplicateArgument,
		ArgumentName: "x",
	}

	styles := diagfmt.NewStyles(false)
	got := styles.RenderDiagnostic(d, "", 0)

	assert.Equal(t, "  warning  duplicate argument \"x\"\n", got)
}

func TestRenderDiagnostic_WindowsLongLines(t *testing.T) {
	line := strings.Repeat("a", 100)
	d := markup.ArgumentDiagnostic{
		Kind:      markup.DiagnosticUnexpectedCharacter,
		Character: '!',
		Location:  source.NewLocation(1, 95),
	}

	styles := diagfmt.NewStyles(false)
	got := styles.RenderDiagnostic(d, line+"\n", 40)

	// Width 40 leaves 32 excerpt bytes after the indent; the trimmed
	// side is elided and the caret column shifts with the window.
	excerpt := "..." + strings.Repeat("a", 29)
	want := "  1:95  warning  unexpected character '!'\n" +
		"        " + excerpt + "\n" +
		"        " + strings.Repeat(" ", 26) + "^\n"
	assert.Equal(t, want, got)
}

func TestRenderDiagnostics_FromParse(t *testing.T) {
	content := "@Outer(x: 1, x: 2)\n"
	doc, err := parser.ParseString(context.Background(), content, parser.Options{BlockDirectives: true})
	require.NoError(t, err)

	var dir *markup.BlockDirective
	w := &markup.Walker{
		BlockDirective: func(d *markup.BlockDirective) { dir = d },
	}
	w.Walk(doc)
	require.NotNil(t, dir)

	_, diags := dir.ArgumentText().ParseNameValueArgumentsWithDiagnostics()
	require.Len(t, diags, 1)

	styles := diagfmt.NewStyles(false)
	out := styles.RenderDiagnostics(diags, content, 80)

	assert.Contains(t, out, "1:14")
	assert.Contains(t, out, `duplicate argument "x"`)
	assert.Contains(t, out, `first use of "x" is at 1:8`)
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 100, diagfmt.TerminalWidth(&buf))
}
