package markup

import (
	"fmt"

	"github.com/yaklabco/gomarkup/pkg/source"
)

// DirectiveArgument is one name-value pair parsed from a directive's
// argument text.
type DirectiveArgument struct {
	// Name is the argument's label, empty for unlabeled arguments.
	Name string

	// NameRange locates the label in source. It is nil for unlabeled
	// arguments and for argument text without recorded ranges.
	NameRange *source.Range

	// Value is the argument's value with any quoting removed.
	Value string

	// ValueRange locates the value in source, nil when unknown.
	ValueRange *source.Range
}

// ArgumentDiagnosticKind classifies a problem found while parsing
// directive argument text.
type ArgumentDiagnosticKind uint8

// Argument diagnostic kinds.
const (
	// DiagnosticDuplicateArgument reports an argument name that was
	// already used. Both occurrences stay in the parsed list.
	DiagnosticDuplicateArgument ArgumentDiagnosticKind = iota

	// DiagnosticMissingExpectedCharacter reports a character, such as
	// a colon after an argument name, that should have appeared at
	// Location but did not.
	DiagnosticMissingExpectedCharacter

	// DiagnosticUnexpectedCharacter reports a stray character the
	// parser skipped.
	DiagnosticUnexpectedCharacter
)

// ArgumentDiagnostic is one recoverable problem found in directive
// argument text. Diagnostics never abort parsing; the argument list is
// still produced on a best-effort basis.
type ArgumentDiagnostic struct {
	// Kind classifies the problem.
	Kind ArgumentDiagnosticKind

	// ArgumentName is the duplicated name, set for duplicate-argument
	// diagnostics only.
	ArgumentName string

	// Character is the missing or unexpected character, set for the
	// character diagnostics only.
	Character rune

	// Location is where the problem was found, or where the missing
	// character was expected. It is the zero Location when the
	// argument text carried no source ranges.
	Location source.Location

	// FirstLocation is the original occurrence of a duplicated
	// argument name, set for duplicate-argument diagnostics only.
	FirstLocation *source.Location
}

// Message renders the diagnostic as a short human-readable sentence.
func (d ArgumentDiagnostic) Message() string {
	switch d.Kind {
	case DiagnosticDuplicateArgument:
		return fmt.Sprintf("duplicate argument %q", d.ArgumentName)
	case DiagnosticMissingExpectedCharacter:
		return fmt.Sprintf("expected %q", d.Character)
	case DiagnosticUnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q", d.Character)
	default:
		return "invalid argument diagnostic"
	}
}

// ParseNameValueArguments parses the argument text as a comma-separated
// name-value list, discarding diagnostics.
func (t ArgumentText) ParseNameValueArguments() []DirectiveArgument {
	args, _ := t.ParseNameValueArgumentsWithDiagnostics()
	return args
}

// ParseNameValueArgumentsWithDiagnostics parses the argument text as a
// comma-separated name-value list. Problems are accumulated as
// diagnostics while parsing recovers at the next comma or line end, so
// the returned list holds every argument that could be extracted.
func (t ArgumentText) ParseNameValueArgumentsWithDiagnostics() ([]DirectiveArgument, []ArgumentDiagnostic) {
	p := &argumentParser{seen: make(map[string]source.Location)}
	for _, seg := range t.Segments {
		p.parseSegment(seg)
	}
	return p.args, p.diags
}

type argumentParser struct {
	args  []DirectiveArgument
	diags []ArgumentDiagnostic
	seen  map[string]source.Location
}

// isArgBoundary reports whether c ends a bare name or value token.
func isArgBoundary(c byte) bool {
	return c == ':' || c == ',' || c == '"' || c == ' ' || c == '\t'
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// parseSegment parses one argument line. Line boundaries act as
// argument separators, so the parser restarts cleanly per segment.
func (p *argumentParser) parseSegment(seg ArgumentTextSegment) {
	s := seg.Content()
	i := 0
	for {
		i = skipSpaces(s, i)
		if i >= len(s) {
			return
		}
		switch s[i] {
		case ',':
			p.unexpected(seg, i)
			i++
		case '"':
			value, start, end, next := p.scanQuoted(seg, s, i)
			p.addArgument("", nil, value, seg.rangeAt(start, end))
			i = p.expectComma(seg, s, next)
		default:
			i = p.parseBare(seg, s, i)
		}
	}
}

// parseBare parses an argument beginning with a bare token, which is
// either a name followed by a colon and a value, or an unlabeled
// value.
func (p *argumentParser) parseBare(seg ArgumentTextSegment, s string, i int) int {
	tokenStart := i
	for i < len(s) && !isArgBoundary(s[i]) {
		i++
	}
	token := s[tokenStart:i]
	tokenEnd := i

	afterSpaces := skipSpaces(s, i)
	colonAt := -1
	if i < len(s) && s[i] == ':' {
		colonAt = i
	} else if afterSpaces < len(s) && s[afterSpaces] == ':' {
		colonAt = afterSpaces
	}

	if colonAt >= 0 {
		valueStart := skipSpaces(s, colonAt+1)
		value, start, end, next := p.scanValue(seg, s, valueStart)
		p.addArgument(token, seg.rangeAt(tokenStart, tokenEnd), value, seg.rangeAt(start, end))
		return p.expectComma(seg, s, next)
	}

	if afterSpaces >= len(s) || s[afterSpaces] == ',' {
		// A lone token is an unlabeled value.
		p.addArgument("", nil, token, seg.rangeAt(tokenStart, tokenEnd))
		if afterSpaces < len(s) {
			return afterSpaces + 1
		}
		return afterSpaces
	}

	// Another token follows without a colon: recover as if the colon
	// were present, reporting it missing right after the name.
	p.missing(seg, ':', tokenEnd)
	value, start, end, next := p.scanValue(seg, s, afterSpaces)
	p.addArgument(token, seg.rangeAt(tokenStart, tokenEnd), value, seg.rangeAt(start, end))
	return p.expectComma(seg, s, next)
}

// scanValue scans a quoted or bare value starting at i. It returns the
// value with quoting removed, the content's start and end offsets, and
// the offset to resume parsing at.
func (p *argumentParser) scanValue(seg ArgumentTextSegment, s string, i int) (string, int, int, int) {
	if i < len(s) && s[i] == '"' {
		return p.scanQuoted(seg, s, i)
	}
	start := i
	for i < len(s) && !isArgBoundary(s[i]) {
		i++
	}
	return s[start:i], start, i, i
}

// scanQuoted scans a double-quoted value starting at the opening
// quote. Backslash escapes the next character. A missing closing quote
// is reported and the rest of the line is taken as the value.
func (p *argumentParser) scanQuoted(seg ArgumentTextSegment, s string, i int) (string, int, int, int) {
	i++
	start := i
	var value []byte
	for i < len(s) {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				value = append(value, s[i+1])
				i += 2
				continue
			}
			value = append(value, s[i])
			i++
		case '"':
			return string(value), start, i, i + 1
		default:
			value = append(value, s[i])
			i++
		}
	}
	p.missing(seg, '"', len(s))
	return string(value), start, len(s), len(s)
}

// expectComma consumes the separator after an argument. A stray
// character is reported once and parsing resumes at the next comma or
// the end of the line.
func (p *argumentParser) expectComma(seg ArgumentTextSegment, s string, i int) int {
	i = skipSpaces(s, i)
	if i >= len(s) {
		return i
	}
	if s[i] == ',' {
		return i + 1
	}
	p.unexpected(seg, i)
	for i < len(s) && s[i] != ',' {
		i++
	}
	if i < len(s) {
		i++
	}
	return i
}

func (p *argumentParser) addArgument(name string, nameRange *source.Range, value string, valueRange *source.Range) {
	if name != "" {
		var loc source.Location
		if nameRange != nil {
			loc = nameRange.Start
		}
		if first, dup := p.seen[name]; dup {
			firstLoc := first
			p.diags = append(p.diags, ArgumentDiagnostic{
				Kind:          DiagnosticDuplicateArgument,
				ArgumentName:  name,
				Location:      loc,
				FirstLocation: &firstLoc,
			})
		} else {
			p.seen[name] = loc
		}
	}
	p.args = append(p.args, DirectiveArgument{
		Name:       name,
		NameRange:  nameRange,
		Value:      value,
		ValueRange: valueRange,
	})
}

func (p *argumentParser) missing(seg ArgumentTextSegment, c rune, offset int) {
	p.diags = append(p.diags, ArgumentDiagnostic{
		Kind:      DiagnosticMissingExpectedCharacter,
		Character: c,
		Location:  seg.locationAt(offset),
	})
}

func (p *argumentParser) unexpected(seg ArgumentTextSegment, offset int) {
	p.diags = append(p.diags, ArgumentDiagnostic{
		Kind:      DiagnosticUnexpectedCharacter,
		Character: rune(seg.Content()[offset]),
		Location:  seg.locationAt(offset),
	})
}
