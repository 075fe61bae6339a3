// Package source defines positions and ranges in markup source text.
//
// Positions are 1-based: the first character of a document is line 1,
// column 1. Columns count bytes, not display cells, so multi-byte UTF-8
// sequences advance the column by their encoded length.
package source

import (
	"fmt"
	"strings"
)

// Location identifies a single position in a source file.
type Location struct {
	// Line is the 1-based line number.
	Line int

	// Column is the 1-based byte column within the line.
	Column int

	// File optionally names the file the location belongs to.
	// A nil File means the source has no file association.
	File *string
}

// NewLocation returns a location without a file association.
func NewLocation(line, column int) Location {
	return Location{Line: line, Column: column}
}

// IsValid returns true if the location has positive line and column values.
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}

// Before returns true if l is strictly before other in reading order.
// File associations are not compared.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// After returns true if l is strictly after other in reading order.
func (l Location) After(other Location) bool {
	return other.Before(l)
}

// String renders the location as "file:line:column", omitting the file
// part when no file is associated.
func (l Location) String() string {
	if l.File != nil {
		return fmt.Sprintf("%s:%d:%d", *l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Range is a half-open span of source text: Start is inclusive, End is
// exclusive.
type Range struct {
	// Start is the first position covered by the range.
	Start Location

	// End is the position one past the last covered character.
	End Location
}

// NewRange returns a range without a file association.
func NewRange(startLine, startColumn, endLine, endColumn int) Range {
	return Range{
		Start: Location{Line: startLine, Column: startColumn},
		End:   Location{Line: endLine, Column: endColumn},
	}
}

// IsValid returns true if both endpoints are valid and Start does not
// come after End.
func (r Range) IsValid() bool {
	return r.Start.IsValid() && r.End.IsValid() && !r.End.Before(r.Start)
}

// IsEmpty returns true if the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsSingleLine returns true if the range starts and ends on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Contains returns true if loc falls within the range.
func (r Range) Contains(loc Location) bool {
	return !loc.Before(r.Start) && loc.Before(r.End)
}

// ExtendToInclude widens the range just enough to cover other.
// A zero receiver adopts other outright so a running union can start
// from the zero value.
func (r Range) ExtendToInclude(other Range) Range {
	if !r.IsValid() {
		return other
	}
	if !other.IsValid() {
		return r
	}
	out := r
	if other.Start.Before(out.Start) {
		out.Start = other.Start
	}
	if other.End.After(out.End) {
		out.End = other.End
	}
	return out
}

// String renders the range as "start-end", collapsing the file and line
// parts when they repeat.
func (r Range) String() string {
	var b strings.Builder
	b.WriteString(r.Start.String())
	b.WriteByte('-')
	if r.IsSingleLine() && locationFilesEqual(r.Start, r.End) {
		fmt.Fprintf(&b, "%d", r.End.Column)
	} else {
		fmt.Fprintf(&b, "%d:%d", r.End.Line, r.End.Column)
	}
	return b.String()
}

func locationFilesEqual(a, b Location) bool {
	if a.File == nil || b.File == nil {
		return a.File == b.File
	}
	return *a.File == *b.File
}
