package parser

import (
	"strings"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/source"
)

// directiveState tracks how much of a block directive's syntax has
// been seen.
type directiveState int

const (
	stateArgumentsStart directiveState = iota // expecting an optional (
	stateArgumentsText                        // accumulating argument text
	stateArgumentsEnd                         // expecting )
	stateContentsStart                        // expecting an optional {
	stateContents                             // accepting child content
	stateDone
)

// pendingDirective is a block directive mid-parse. Lines are fed to
// accept until the directive's syntax completes or an outer rule
// closes it.
type pendingDirective struct {
	name      string
	nameRange source.Range
	at        source.Location
	end       source.Location
	state     directiveState
	arguments []markup.ArgumentTextSegment

	// atIndentation is the indentation of the line the @ appeared on.
	// innerIndentation is the indentation of the first non-blank line
	// inside the contents, -1 until seen.
	atIndentation    int
	innerIndentation int

	// pendingChildLine is content found on the same line as the
	// opening brace. pendingSiblingLine is trailing text that turned
	// out not to belong to the directive.
	pendingChildLine   *trackedLine
	pendingSiblingLine *trackedLine
}

// indentationAdjustment is the column count trimmed from the
// directive's content lines before sub-parsing.
func (d *pendingDirective) indentationAdjustment() int {
	if d.innerIndentation >= 0 {
		return d.innerIndentation
	}
	return d.atIndentation
}

// awaitingChildContent reports whether the directive's content region
// is open.
func (d *pendingDirective) awaitingChildContent() bool {
	return d.state == stateContents
}

// closesOnBlank reports whether a blank line terminates the directive:
// it is still expecting opening punctuation, or its syntax already
// completed.
func (d *pendingDirective) closesOnBlank() bool {
	switch d.state {
	case stateArgumentsStart, stateContentsStart, stateDone:
		return true
	default:
		return false
	}
}

// touch records the cursor as the directive's current end position.
func (d *pendingDirective) touch(line trackedLine) {
	d.end = line.location()
}

// finishAtBrace completes the directive at a closing brace the stack
// consumed.
func (d *pendingDirective) finishAtBrace(line trackedLine) {
	d.state = stateDone
	d.touch(line)
}

// accept feeds one line to the state machine, consuming as much of it
// as the current state allows.
func (d *pendingDirective) accept(line *trackedLine) {
	for {
		switch d.state {
		case stateArgumentsStart:
			line.trimWhitespace()
			if line.exhausted() {
				return
			}
			if line.lex("(") {
				d.touch(*line)
				d.state = stateArgumentsText
				continue
			}
			d.state = stateContentsStart

		case stateArgumentsText:
			stop, closed := scanArgumentsText(*line)
			d.appendArgumentSegment(*line, stop)
			line.cursor = stop
			d.touch(*line)
			if !closed {
				return
			}
			d.state = stateArgumentsEnd

		case stateArgumentsEnd:
			if !line.lex(")") {
				return
			}
			d.touch(*line)
			d.state = stateContentsStart

		case stateContentsStart:
			line.trimWhitespace()
			if line.exhausted() {
				return
			}
			if line.lex("{") {
				d.touch(*line)
				d.state = stateContents
				continue
			}
			d.state = stateDone
			d.holdSibling(*line)
			return

		case stateContents:
			if line.isBlank() {
				return
			}
			d.acceptContents(*line)
			return

		case stateDone:
			d.holdSibling(*line)
			return
		}
	}
}

// acceptContents handles content sharing the opening line. A trailing
// close brace makes the directive single-line; otherwise the rest of
// the line becomes its first child content.
func (d *pendingDirective) acceptContents(line trackedLine) {
	trimmed := strings.TrimRight(line.rest(), " \t")
	if strings.HasSuffix(trimmed, "}") {
		braceAt := line.cursor + len(trimmed) - 1
		content := line
		content.text = line.text[:braceAt]
		if !content.isBlank() {
			d.pendingChildLine = &content
		}
		d.state = stateDone
		d.end = source.Location{Line: line.number, Column: braceAt + 2, File: line.file}
		return
	}
	d.pendingChildLine = &line
}

func (d *pendingDirective) holdSibling(line trackedLine) {
	if line.isBlank() {
		return
	}
	d.pendingSiblingLine = &line
}

// appendArgumentSegment captures argument text ending at stop. The
// segment keeps the full line text so diagnostics can report positions
// in original coordinates.
func (d *pendingDirective) appendArgumentSegment(line trackedLine, stop int) {
	seg := markup.ArgumentTextSegment{
		Text:        line.text[:stop],
		ParseOffset: line.cursor,
		Range: &source.Range{
			Start: line.location(),
			End:   source.Location{Line: line.number, Column: stop + 1, File: line.file},
		},
	}
	d.arguments = append(d.arguments, seg)
}

// scanArgumentsText finds the index of the parenthesis closing an
// argument list, honoring backslash escapes and double-quoted strings.
func scanArgumentsText(line trackedLine) (stop int, closed bool) {
	inQuotes := false
	escaped := false
	for i := line.cursor; i < len(line.text); i++ {
		switch c := line.text[i]; {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case c == ')' && !inQuotes:
			return i, true
		}
	}
	return len(line.text), false
}

// lexDirectiveOpen recognizes @Name at the cursor and runs the rest of
// the line through the new directive's state machine. It returns nil
// when the line opens no directive.
func lexDirectiveOpen(line trackedLine) *pendingDirective {
	probe := line
	probe.trimWhitespace()
	at := probe.location()
	if !probe.lex("@") {
		return nil
	}
	nameStart := probe.location()
	name := lexDirectiveName(&probe)
	if name == "" {
		return nil
	}
	pending := &pendingDirective{
		name:             name,
		nameRange:        source.Range{Start: nameStart, End: probe.location()},
		at:               at,
		end:              probe.location(),
		atIndentation:    line.indentationColumns(),
		innerIndentation: -1,
	}
	pending.accept(&probe)
	return pending
}

// lexDirectiveName consumes the directive name: everything up to
// whitespace, parentheses, or braces.
func lexDirectiveName(line *trackedLine) string {
	start := line.cursor
	for line.cursor < len(line.text) {
		switch line.text[line.cursor] {
		case ' ', '\t', '(', ')', '{', '}':
			return line.text[start:line.cursor]
		}
		line.cursor++
	}
	return line.text[start:]
}
