package parser

import "github.com/yaklabco/gomarkup/pkg/source"

// doxygenKind identifies one of the recognized doxygen commands.
type doxygenKind int

const (
	doxygenDiscussion doxygenKind = iota
	doxygenNote
	doxygenAbstract
	doxygenParameter
	doxygenReturns
)

// doxygenCommands is the closed set of recognized command names. brief
// and abstract are synonyms, as are return, returns, and result.
var doxygenCommands = map[string]doxygenKind{
	"discussion": doxygenDiscussion,
	"note":       doxygenNote,
	"brief":      doxygenAbstract,
	"abstract":   doxygenAbstract,
	"param":      doxygenParameter,
	"return":     doxygenReturns,
	"returns":    doxygenReturns,
	"result":     doxygenReturns,
}

func (k doxygenKind) String() string {
	switch k {
	case doxygenDiscussion:
		return "discussion"
	case doxygenNote:
		return "note"
	case doxygenAbstract:
		return "abstract"
	case doxygenParameter:
		return "param"
	case doxygenReturns:
		return "returns"
	default:
		return "unknown"
	}
}

// pendingDoxygen is a doxygen command accumulating description lines.
type pendingDoxygen struct {
	kind          doxygenKind
	parameterName string
	at            source.Location
	end           source.Location
	atIndentation int
	lines         []trackedLine
}

// lexDoxygenCommand recognizes a doxygen command introduced by @ or
// backslash at the cursor. It returns nil when the line opens no known
// command, or when @param lacks its parameter name.
func lexDoxygenCommand(line trackedLine) *pendingDoxygen {
	probe := line
	probe.trimWhitespace()
	at := probe.location()
	if !probe.lex("@") && !probe.lex(`\`) {
		return nil
	}
	kind, ok := doxygenCommands[lexWord(&probe)]
	if !ok {
		return nil
	}

	pending := &pendingDoxygen{
		kind:          kind,
		at:            at,
		atIndentation: line.indentationColumns(),
	}
	if kind == doxygenParameter {
		probe.trimWhitespace()
		pending.parameterName = lexToken(&probe)
		if pending.parameterName == "" {
			return nil
		}
	}
	pending.end = probe.location()

	probe.trimWhitespace()
	if !probe.exhausted() {
		pending.lines = append(pending.lines, probe)
	}
	return pending
}

// lexWord consumes a run of ASCII letters.
func lexWord(line *trackedLine) string {
	start := line.cursor
	for line.cursor < len(line.text) {
		c := line.text[line.cursor]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}
		line.cursor++
	}
	return line.text[start:line.cursor]
}

// lexToken consumes a run of non-whitespace characters.
func lexToken(line *trackedLine) string {
	start := line.cursor
	for line.cursor < len(line.text) {
		c := line.text[line.cursor]
		if c == ' ' || c == '\t' {
			break
		}
		line.cursor++
	}
	return line.text[start:line.cursor]
}
