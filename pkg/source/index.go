package source

import "sort"

// lineInfo records the byte extent of one line.
type lineInfo struct {
	// startOffset is the byte index of the first character of the line.
	startOffset int

	// newlineStart is the byte index where the line terminator begins,
	// or the end of content for the final line.
	newlineStart int

	// endOffset is the byte index just past the line terminator.
	endOffset int
}

// Index maps byte offsets in a piece of source text to locations.
// It handles both LF and CRLF line endings.
type Index struct {
	content []byte
	lines   []lineInfo
	file    *string
}

// NewIndex builds a line index over content. The file association, which
// may be nil, is stamped onto every location the index produces.
func NewIndex(content []byte, file *string) *Index {
	idx := &Index{content: content, file: file}

	lineStart := 0
	for i, c := range content {
		if c == '\n' {
			newlineStart := i
			if i > 0 && content[i-1] == '\r' {
				newlineStart = i - 1
			}
			idx.lines = append(idx.lines, lineInfo{
				startOffset:  lineStart,
				newlineStart: newlineStart,
				endOffset:    i + 1,
			})
			lineStart = i + 1
		}
	}
	if lineStart <= len(content) {
		idx.lines = append(idx.lines, lineInfo{
			startOffset:  lineStart,
			newlineStart: len(content),
			endOffset:    len(content),
		})
	}

	return idx
}

// LineCount returns the number of lines in the indexed content.
func (x *Index) LineCount() int {
	return len(x.lines)
}

// LocationAt converts a byte offset to a location. Offsets at or past the
// end of content clamp to a position on the final line.
func (x *Index) LocationAt(offset int) Location {
	if offset < 0 || len(x.lines) == 0 {
		return Location{File: x.file}
	}

	if offset >= len(x.content) {
		last := x.lines[len(x.lines)-1]
		return Location{
			Line:   len(x.lines),
			Column: offset - last.startOffset + 1,
			File:   x.file,
		}
	}

	li := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].endOffset > offset
	})
	if li >= len(x.lines) {
		li = len(x.lines) - 1
	}

	return Location{
		Line:   li + 1,
		Column: offset - x.lines[li].startOffset + 1,
		File:   x.file,
	}
}

// RangeBetween converts a half-open byte span to a range.
func (x *Index) RangeBetween(startOffset, endOffset int) Range {
	return Range{
		Start: x.LocationAt(startOffset),
		End:   x.LocationAt(endOffset),
	}
}

// LineContent returns the bytes of a 1-based line, excluding the
// terminator. It returns nil when the line number is out of range.
func (x *Index) LineContent(line int) []byte {
	if line < 1 || line > len(x.lines) {
		return nil
	}
	li := x.lines[line-1]
	return x.content[li.startOffset:li.newlineStart]
}
