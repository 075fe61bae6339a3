package parser

import (
	"strings"

	"github.com/yaklabco/gomarkup/pkg/source"
)

// tabStop is the column multiple a tab character advances to when
// measuring indentation.
const tabStop = 4

// trackedLine is one input line moving through container assembly. The
// text carries no line terminator; cursor marks how far the parser has
// consumed it.
type trackedLine struct {
	text   string
	cursor int
	number int
	file   *string
}

// rest returns the unconsumed tail of the line.
func (l trackedLine) rest() string {
	return l.text[l.cursor:]
}

// exhausted reports whether the cursor has reached the end of the line.
func (l trackedLine) exhausted() bool {
	return l.cursor >= len(l.text)
}

// isBlank reports whether only whitespace remains.
func (l trackedLine) isBlank() bool {
	return strings.TrimSpace(l.rest()) == ""
}

// location is the source position of the cursor, one-based.
func (l trackedLine) location() source.Location {
	return source.Location{Line: l.number, Column: l.cursor + 1, File: l.file}
}

// trimWhitespace advances the cursor past spaces and tabs.
func (l *trackedLine) trimWhitespace() {
	for l.cursor < len(l.text) && (l.text[l.cursor] == ' ' || l.text[l.cursor] == '\t') {
		l.cursor++
	}
}

// lex consumes prefix if the unconsumed text starts with it.
func (l *trackedLine) lex(prefix string) bool {
	if !strings.HasPrefix(l.rest(), prefix) {
		return false
	}
	l.cursor += len(prefix)
	return true
}

// indentationColumns measures the line's leading whitespace in
// columns. A space is one column; a tab advances to the next multiple
// of four.
func (l trackedLine) indentationColumns() int {
	columns := 0
	for i := l.cursor; i < len(l.text); i++ {
		switch l.text[i] {
		case ' ':
			columns++
		case '\t':
			columns = (columns/tabStop + 1) * tabStop
		default:
			return columns
		}
	}
	return columns
}

// looksLikeFence reports whether the line opens or closes a backtick
// or tilde code fence.
func (l trackedLine) looksLikeFence() bool {
	content := strings.TrimLeft(l.rest(), " \t")
	return strings.HasPrefix(content, "```") || strings.HasPrefix(content, "~~~")
}

// trimIndentationColumns returns how many leading characters of s fit
// within max columns of whitespace. A tab that would step past max is
// not consumed.
func trimIndentationColumns(s string, max int) int {
	columns := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			columns++
		case '\t':
			columns = (columns/tabStop + 1) * tabStop
		default:
			return i
		}
		if columns > max {
			return i
		}
	}
	return len(s)
}
