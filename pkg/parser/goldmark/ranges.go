package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// byteSpan is a half-open byte interval in the parsed content.
type byteSpan struct {
	start int
	stop  int
}

func invalidSpan() byteSpan {
	return byteSpan{start: -1, stop: -1}
}

func (s byteSpan) valid() bool {
	return s.start >= 0 && s.stop >= s.start
}

// merge widens the span to cover other. Invalid spans contribute
// nothing.
func (s byteSpan) merge(other byteSpan) byteSpan {
	if !other.valid() {
		return s
	}
	if !s.valid() {
		return other
	}
	if other.start < s.start {
		s.start = other.start
	}
	if other.stop > s.stop {
		s.stop = other.stop
	}
	return s
}

// spanOf extracts the byte extent of a goldmark node.
//
// goldmark records line segments on leaf blocks only. Container
// blocks such as lists and block quotes keep no segments of their
// own, so their extent is the union of their children's, widened back
// over the syntax the segments exclude: list markers, block quote
// markers, heading hashes, code fences, emphasis delimiters. The
// widening compounds as the recursion unwinds, which is what lets a
// nested block quote start at its outermost > marker.
func spanOf(gmNode ast.Node, content []byte) byteSpan {
	if gmNode.Type() == ast.TypeInline {
		return inlineSpan(gmNode, content)
	}

	span := invalidSpan()
	if lines := gmNode.Lines(); lines.Len() > 0 {
		span = byteSpan{
			start: lines.At(0).Start,
			stop:  lines.At(lines.Len() - 1).Stop,
		}
	} else {
		span = unionSpan(gmNode, content)
	}
	if !span.valid() {
		return span
	}
	span.stop = trimLineEnd(content, span.start, span.stop)

	switch gmn := gmNode.(type) {
	case *ast.ListItem:
		span.start = widenToItemMarker(content, span.start)
	case *ast.Blockquote:
		span.start = widenToQuoteMarker(content, span.start)
	case *ast.Heading:
		span.start = widenToHeadingMarker(content, span.start)
	case *ast.FencedCodeBlock:
		span.start = widenToOpeningFence(content, span.start)
		span.stop = widenOverClosingFence(content, span.stop)
	case *ast.HTMLBlock:
		if gmn.HasClosure() {
			closure := gmn.ClosureLine
			span = span.merge(byteSpan{
				start: closure.Start,
				stop:  trimLineEnd(content, closure.Start, closure.Stop),
			})
		}
	}

	return span
}

// unionSpan merges the extents of a node's children.
func unionSpan(gmNode ast.Node, content []byte) byteSpan {
	span := invalidSpan()
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		span = span.merge(spanOf(child, content))
	}
	return span
}

// inlineSpan extracts the byte extent of an inline node. Inline
// segments cover content only, so delimited constructs widen back
// over their markers to report the full written form.
func inlineSpan(gmNode ast.Node, content []byte) byteSpan {
	switch gmn := gmNode.(type) {
	case *ast.Text:
		return byteSpan{start: gmn.Segment.Start, stop: gmn.Segment.Stop}

	case *ast.RawHTML:
		return segmentsSpan(gmn.Segments)

	case *ast.CodeSpan:
		inner := unionSpan(gmn, content)
		if !inner.valid() {
			return inner
		}
		span, _ := widenOverBackticks(content, inner)
		return span

	case *ast.Emphasis:
		span := unionSpan(gmn, content)
		if !span.valid() {
			return span
		}
		return widenOverDelimiters(content, span, "*_", gmn.Level)

	case *east.Strikethrough:
		span := unionSpan(gmn, content)
		if !span.valid() {
			return span
		}
		if widened := widenOverDelimiters(content, span, "~", 2); widened != span {
			return widened
		}
		return widenOverDelimiters(content, span, "~", 1)

	case *ast.Link:
		return linkSpan(content, unionSpan(gmn, content), false)

	case *ast.Image:
		return linkSpan(content, unionSpan(gmn, content), true)

	case *attributesNode:
		return byteSpan{start: gmn.whole.Start, stop: gmn.whole.Stop}

	case *ast.AutoLink, *ast.String:
		// Neither keeps a source segment.
		return invalidSpan()
	}

	return unionSpan(gmNode, content)
}

// segmentsSpan merges a raw segment list into one extent.
func segmentsSpan(segments *text.Segments) byteSpan {
	span := invalidSpan()
	for i := range segments.Len() {
		seg := segments.At(i)
		span = span.merge(byteSpan{start: seg.Start, stop: seg.Stop})
	}
	return span
}

// lineStart walks back from offset to the first byte of its line.
func lineStart(content []byte, offset int) int {
	for offset > 0 && content[offset-1] != '\n' {
		offset--
	}
	return offset
}

// trimLineEnd drops trailing line terminator bytes from a span's
// stop. Line segments include their terminators, which would
// otherwise push end locations onto the next line.
func trimLineEnd(content []byte, start, stop int) int {
	if stop > len(content) {
		stop = len(content)
	}
	for stop > start && (content[stop-1] == '\n' || content[stop-1] == '\r') {
		stop--
	}
	return stop
}

// widenToItemMarker walks left from an item's first content byte over
// the list marker, so the item's extent starts at the - or 1. that
// introduced it. When the first content sits on a later line than the
// marker, the content position stands.
func widenToItemMarker(content []byte, start int) int {
	ls := lineStart(content, start)
	p := start
	for p > ls && (content[p-1] == ' ' || content[p-1] == '\t') {
		p--
	}
	if p == ls {
		return start
	}

	switch content[p-1] {
	case '-', '+', '*':
		return p - 1
	case '.', ')':
		q := p - 1
		for q > ls && isASCIIDigit(content[q-1]) {
			q--
		}
		if q < p-1 {
			return q
		}
	}
	return start
}

// widenToQuoteMarker walks left from a quote's first content byte
// over one > marker and its padding. Nested quotes widen one marker
// per nesting level as the recursion unwinds.
func widenToQuoteMarker(content []byte, start int) int {
	ls := lineStart(content, start)
	p := start
	for p > ls && content[p-1] == ' ' {
		p--
	}
	if p > ls && content[p-1] == '>' {
		return p - 1
	}
	return start
}

// widenToHeadingMarker walks left from a heading's text over the ATX
// hash run. Setext headings have no leading marker and keep their
// text position.
func widenToHeadingMarker(content []byte, start int) int {
	ls := lineStart(content, start)
	p := start
	for p > ls && content[p-1] == ' ' {
		p--
	}
	q := p
	for q > ls && content[q-1] == '#' {
		q--
	}
	if q == p {
		return start
	}
	return q
}

// widenToOpeningFence walks from a fenced block's first content line
// up to the start of the fence character run on the line before it.
func widenToOpeningFence(content []byte, start int) int {
	ls := lineStart(content, start)
	if ls == 0 {
		return start
	}
	fenceLine := lineStart(content, ls-1)

	p := fenceLine
	for p < ls-1 && content[p] == ' ' {
		p++
	}
	if p < ls-1 && (content[p] == '`' || content[p] == '~') {
		return p
	}
	return start
}

// widenOverClosingFence walks from a fenced block's last content byte
// past the closing fence run on the following line. An unterminated
// fence keeps its content extent.
func widenOverClosingFence(content []byte, stop int) int {
	nl := stop
	for nl < len(content) && content[nl] != '\n' {
		nl++
	}
	if nl >= len(content) {
		return stop
	}

	p := nl + 1
	for p < len(content) && content[p] == ' ' {
		p++
	}
	fences := 0
	for p < len(content) && (content[p] == '`' || content[p] == '~') {
		fences++
		p++
	}
	if fences < 3 {
		return stop
	}
	return p
}

// widenOverDelimiters grows a span outward over width delimiter bytes
// on each side when they are present. The growth is all or nothing;
// a span whose neighbors are not the expected delimiters is returned
// unchanged.
func widenOverDelimiters(content []byte, span byteSpan, delimiters string, width int) byteSpan {
	start, stop := span.start, span.stop
	for range width {
		if start == 0 || !strings.ContainsRune(delimiters, rune(content[start-1])) {
			return span
		}
		if stop >= len(content) || !strings.ContainsRune(delimiters, rune(content[stop])) {
			return span
		}
		start--
		stop++
	}
	return byteSpan{start: start, stop: stop}
}

// widenOverBackticks grows a code span's content extent over its
// backtick runs and reports the opening run length.
func widenOverBackticks(content []byte, inner byteSpan) (byteSpan, int) {
	start := inner.start
	opening := 0
	for start > 0 && content[start-1] == '`' {
		start--
		opening++
	}

	stop := inner.stop
	closing := 0
	for stop < len(content) && content[stop] == '`' && closing < opening {
		stop++
		closing++
	}

	return byteSpan{start: start, stop: stop}, opening
}

// linkSpan widens a link label's extent over the surrounding
// brackets and, best effort, the destination or reference that
// follows. Images widen one byte further for the leading bang.
func linkSpan(content []byte, label byteSpan, image bool) byteSpan {
	if !label.valid() {
		return label
	}

	span := label
	if span.start > 0 && content[span.start-1] == '[' {
		span.start--
		if image && span.start > 0 && content[span.start-1] == '!' {
			span.start--
		}
	}
	if span.stop < len(content) && content[span.stop] == ']' {
		span.stop = linkStop(content, span.stop)
	}
	return span
}

// linkStop walks forward from a link label's closing bracket over the
// (destination) or [reference] part that follows it, if any.
func linkStop(content []byte, stop int) int {
	p := stop + 1
	if p >= len(content) {
		return p
	}

	switch content[p] {
	case '(':
		depth := 1
		for q := p + 1; q < len(content); q++ {
			switch content[q] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return q + 1
				}
			}
		}
		return p

	case '[':
		for q := p + 1; q < len(content); q++ {
			if content[q] == ']' {
				return q + 1
			}
			if content[q] == '\n' {
				break
			}
		}
		return p
	}

	return p
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
