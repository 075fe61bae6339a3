package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// attributesNode is the goldmark-side form of an ^[text](attributes)
// span before mapping.
type attributesNode struct {
	ast.BaseInline

	label      text.Segment
	attributes text.Segment
	whole      text.Segment
}

var kindAttributes = ast.NewNodeKind("InlineAttributes")

// Kind implements ast.Node.
func (n *attributesNode) Kind() ast.NodeKind {
	return kindAttributes
}

// Dump implements ast.Node.
func (n *attributesNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Attributes": string(n.attributes.Value(source)),
	}, nil)
}

// attributesParser parses ^[text](attributes) spans on a single line.
type attributesParser struct{}

// Trigger implements parser.InlineParser.
func (p *attributesParser) Trigger() []byte {
	return []byte{'^'}
}

// Parse implements parser.InlineParser.
func (p *attributesParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, segment := block.PeekLine()
	if len(line) < 2 || line[1] != '[' {
		return nil
	}

	labelEnd := scanBalanced(line, 2, '[', ']')
	if labelEnd < 0 || labelEnd+1 >= len(line) || line[labelEnd+1] != '(' {
		return nil
	}

	attrEnd := scanBalanced(line, labelEnd+2, '(', ')')
	if attrEnd < 0 {
		return nil
	}

	node := &attributesNode{
		label:      text.NewSegment(segment.Start+2, segment.Start+labelEnd),
		attributes: text.NewSegment(segment.Start+labelEnd+2, segment.Start+attrEnd),
		whole:      text.NewSegment(segment.Start, segment.Start+attrEnd+1),
	}
	block.Advance(attrEnd + 1)
	return node
}

// scanBalanced finds the closer matching an already-open bracket
// pair, honoring nesting and backslash escapes. It returns the
// closer's index in line, or -1.
func scanBalanced(line []byte, from int, opener, closer byte) int {
	depth := 0
	for i := from; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case opener:
			depth++
		case closer:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// attributesExtension wires the attributes parser into goldmark.
type attributesExtension struct{}

// Extend implements goldmark.Extender.
func (e *attributesExtension) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&attributesParser{}, 200),
	))
}
