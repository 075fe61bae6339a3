package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndentationColumns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "none", text: "text", want: 0},
		{name: "spaces", text: "  text", want: 2},
		{name: "tab", text: "\ttext", want: 4},
		{name: "space then tab", text: " \ttext", want: 4},
		{name: "two tabs", text: "\t\ttext", want: 8},
		{name: "tab after stop", text: "    \ttext", want: 8},
		{name: "all whitespace", text: "   ", want: 3},
		{name: "empty", text: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := trackedLine{text: tt.text, number: 1}
			assert.Equal(t, tt.want, line.indentationColumns())
		})
	}
}

func TestTrimIndentationColumns(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want int
	}{
		{name: "exact", text: "  a", max: 2, want: 2},
		{name: "less indented than max", text: " a", max: 4, want: 1},
		{name: "more indented than max", text: "    a", max: 2, want: 2},
		{name: "no indentation", text: "a", max: 2, want: 0},
		{name: "tab within max", text: "\ta", max: 4, want: 1},
		{name: "tab overshoots max", text: "\ta", max: 2, want: 0},
		{name: "zero max", text: "  a", max: 0, want: 0},
		{name: "blank line", text: "  ", max: 4, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimIndentationColumns(tt.text, tt.max))
		})
	}
}

func TestLooksLikeFence(t *testing.T) {
	assert.True(t, trackedLine{text: "```"}.looksLikeFence())
	assert.True(t, trackedLine{text: "```go"}.looksLikeFence())
	assert.True(t, trackedLine{text: "  ~~~"}.looksLikeFence())
	assert.False(t, trackedLine{text: "``not a fence``"}.looksLikeFence())
	assert.False(t, trackedLine{text: "text"}.looksLikeFence())
	assert.False(t, trackedLine{text: ""}.looksLikeFence())
}

func TestTrackedLineLexing(t *testing.T) {
	line := trackedLine{text: "  @Outer(x)", number: 3}

	line.trimWhitespace()
	assert.Equal(t, 2, line.cursor)
	assert.Equal(t, "3:3", line.location().String())

	assert.False(t, line.lex("#"))
	assert.True(t, line.lex("@"))
	assert.Equal(t, "Outer(x)", line.rest())

	assert.False(t, line.isBlank())
	assert.False(t, line.exhausted())

	line.cursor = len(line.text)
	assert.True(t, line.exhausted())
	assert.True(t, line.isBlank())
}

func TestIsBlank(t *testing.T) {
	assert.True(t, trackedLine{text: ""}.isBlank())
	assert.True(t, trackedLine{text: " \t "}.isBlank())
	assert.False(t, trackedLine{text: " x "}.isBlank())

	// Blankness is judged from the cursor, not the line start.
	partial := trackedLine{text: "@Outer {  ", cursor: 8}
	assert.True(t, partial.isBlank())
}
