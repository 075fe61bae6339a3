// Package format writes markup trees back out as Markdown.
//
// Formatting a parsed document produces source that parses back to a
// structurally identical tree under the same parser options. Layout
// the tree does not record, such as list tightness or the original
// emphasis delimiter, is normalized to the formatter's options on the
// way through.
package format

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomarkup/pkg/markup"
)

// Format writes m as Markdown with default options. The result
// carries no trailing newline.
func Format(m markup.Markup) string {
	return FormatWithOptions(m, Options{})
}

// FormatWithOptions writes m as Markdown.
func FormatWithOptions(m markup.Markup, opts Options) string {
	return strings.Join(newFormatter(opts).blocks.Visit(m), "\n")
}

// formatter renders block elements to lines and inline elements to
// strings. Block containers prefix or indent their children's lines,
// so nesting composes without any shared column state.
type formatter struct {
	opts   Options
	blocks *markup.Visitor[[]string]
	inline *markup.Visitor[string]
}

func newFormatter(opts Options) *formatter {
	f := &formatter{opts: opts}
	f.blocks = &markup.Visitor[[]string]{
		Document:    func(d *markup.Document) []string { return f.separatedBlocks(d) },
		CustomBlock: func(b *markup.CustomBlock) []string { return f.separatedBlocks(b) },
		BlockQuote:  func(q *markup.BlockQuote) []string { return f.blockQuote(q) },
		Heading:     func(h *markup.Heading) []string { return f.heading(h) },
		Paragraph:   func(p *markup.Paragraph) []string { return f.paragraph(p) },
		CodeBlock:   func(c *markup.CodeBlock) []string { return f.codeBlock(c) },
		HTMLBlock:   func(h *markup.HTMLBlock) []string { return literalLines(h.HTML()) },
		ThematicBreak: func(*markup.ThematicBreak) []string {
			return []string{strings.Repeat(f.opts.effectiveThematicBreakCharacter(), f.opts.effectiveThematicBreakWidth())}
		},
		UnorderedList:  func(l *markup.UnorderedList) []string { return f.unorderedList(l) },
		OrderedList:    func(l *markup.OrderedList) []string { return f.orderedList(l) },
		ListItem:       func(li *markup.ListItem) []string { return f.listItem(li, "- ") },
		BlockDirective: func(d *markup.BlockDirective) []string { return f.blockDirective(d) },
		Table:          func(t *markup.Table) []string { return f.table(t) },
		DoxygenDiscussion: func(d *markup.DoxygenDiscussion) []string {
			return f.doxygen("@discussion ", d)
		},
		DoxygenNote: func(n *markup.DoxygenNote) []string {
			return f.doxygen("@note ", n)
		},
		DoxygenAbstract: func(a *markup.DoxygenAbstract) []string {
			return f.doxygen("@abstract ", a)
		},
		DoxygenReturns: func(r *markup.DoxygenReturns) []string {
			return f.doxygen("@returns ", r)
		},
		DoxygenParameter: func(p *markup.DoxygenParameter) []string {
			return f.doxygen("@param "+p.Name()+" ", p)
		},

		// Inline elements formatted directly become a single line.
		Default: func(m markup.Markup) []string { return []string{f.inline.Visit(m)} },
	}
	f.inline = newInlineVisitor(f)
	return f
}

// separatedBlocks renders m's children with a blank line between
// consecutive blocks.
func (f *formatter) separatedBlocks(m markup.Markup) []string {
	var out []string
	first := true
	for child := range m.Children() {
		lines := f.blocks.Visit(child)
		if len(lines) == 0 {
			continue
		}
		if !first {
			out = append(out, "")
		}
		out = append(out, lines...)
		first = false
	}
	return out
}

func (f *formatter) blockQuote(q *markup.BlockQuote) []string {
	lines := f.separatedBlocks(q)
	if len(lines) == 0 {
		return []string{">"}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, ">")
		} else {
			out = append(out, "> "+line)
		}
	}
	return out
}

func (f *formatter) heading(h *markup.Heading) []string {
	content := f.renderInlineChildren(h)
	content = strings.ReplaceAll(content, "\\\n", " ")
	content = strings.ReplaceAll(content, "\n", " ")
	content = guardHeadingTail(content)

	level := min(max(h.Level(), 1), 6)
	prefix := strings.Repeat("#", level)
	if content == "" {
		return []string{prefix}
	}
	return []string{prefix + " " + content}
}

// guardHeadingTail escapes a trailing run of # characters so it does
// not read back as an ATX closing sequence.
func guardHeadingTail(content string) string {
	if !strings.HasSuffix(content, "#") {
		return content
	}
	j := len(content)
	for j > 0 && content[j-1] == '#' {
		j--
	}
	return content[:j] + `\` + content[j:]
}

func (f *formatter) paragraph(p *markup.Paragraph) []string {
	content := f.renderInlineChildren(p)
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return lines
}

// escapeLineStart guards a paragraph line whose first characters
// would read back as block syntax. Only characters that can open a
// line of literal text need guarding; emitted inline markers never
// collide with this set.
func escapeLineStart(line string) string {
	if line == "" {
		return line
	}
	switch line[0] {
	case '#', '>', '-', '+', '=':
		return `\` + line
	}
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return line[:i] + `\` + line[i:]
	}
	return line
}

func (f *formatter) codeBlock(c *markup.CodeBlock) []string {
	code := c.Code()
	lang, hasLang := c.Language()

	fenceChar := f.opts.effectiveCodeFenceCharacter()
	if hasLang && fenceChar == "`" && strings.Contains(lang, "`") {
		fenceChar = "~"
	}
	width := 3
	if run := longestRun(code, fenceChar[0]); run >= width {
		width = run + 1
	}
	fence := strings.Repeat(fenceChar, width)

	open := fence
	if hasLang {
		open += lang
	}
	out := []string{open}
	if code != "" {
		out = append(out, strings.Split(strings.TrimSuffix(code, "\n"), "\n")...)
	}
	return append(out, fence)
}

// longestRun returns the length of the longest run of c in s.
func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}

// literalLines splits a raw block literal into its lines.
func literalLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (f *formatter) unorderedList(list *markup.UnorderedList) []string {
	marker := f.opts.effectiveUnorderedListMarker() + " "
	var out []string
	for child := range list.Children() {
		if item, ok := child.(*markup.ListItem); ok {
			out = append(out, f.listItem(item, marker)...)
		}
	}
	return out
}

func (f *formatter) orderedList(list *markup.OrderedList) []string {
	style := f.opts.effectiveOrderedListStyle()
	number := list.StartIndex()
	var out []string
	for child := range list.Children() {
		item, ok := child.(*markup.ListItem)
		if !ok {
			continue
		}
		out = append(out, f.listItem(item, fmt.Sprintf("%d. ", number))...)
		if style == OrderedListIncrementing {
			number++
		}
	}
	return out
}

func (f *formatter) listItem(item *markup.ListItem, marker string) []string {
	head := marker
	switch item.Checkbox() {
	case markup.CheckboxChecked:
		head += "[x] "
	case markup.CheckboxUnchecked:
		head += "[ ] "
	}

	lines := f.separatedBlocks(item)
	if len(lines) == 0 {
		return []string{strings.TrimRight(head, " ")}
	}

	// Continuation lines align to the column after the list marker;
	// a checkbox is part of the item's content, not the marker.
	indent := strings.Repeat(" ", len(marker))
	out := []string{head + lines[0]}
	for _, line := range lines[1:] {
		if line == "" {
			out = append(out, "")
		} else {
			out = append(out, indent+line)
		}
	}
	return out
}

func (f *formatter) table(t *markup.Table) []string {
	alignments := t.Alignments()
	head := t.Head()

	columns := len(alignments)
	if columns == 0 && head != nil {
		for range head.Children() {
			columns++
		}
	}

	var out []string
	if head != nil {
		out = append(out, f.tableRow(head))
	}
	out = append(out, delimiterRow(alignments, columns))
	if body := t.Body(); body != nil {
		for child := range body.Children() {
			if row, ok := child.(*markup.TableRow); ok {
				out = append(out, f.tableRow(row))
			}
		}
	}
	return out
}

func delimiterRow(alignments []markup.TableAlignment, columns int) string {
	cells := make([]string, 0, columns)
	for i := 0; i < columns; i++ {
		alignment := markup.AlignNone
		if i < len(alignments) {
			alignment = alignments[i]
		}
		switch alignment {
		case markup.AlignLeft:
			cells = append(cells, ":---")
		case markup.AlignRight:
			cells = append(cells, "---:")
		case markup.AlignCenter:
			cells = append(cells, ":---:")
		default:
			cells = append(cells, "---")
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// tableRow renders the cells of a head or body row. Span-folded
// cells come back out as their source placeholders: an empty cell
// for a column fold, a lone ^ for a row fold.
func (f *formatter) tableRow(row markup.Markup) string {
	var cells []string
	for child := range row.Children() {
		cell, ok := child.(*markup.TableCell)
		if !ok {
			continue
		}
		switch {
		case cell.Rowspan() == 0:
			cells = append(cells, "^")
		case cell.Colspan() == 0:
			cells = append(cells, "")
		default:
			content := f.renderInlineChildren(cell)
			cells = append(cells, strings.ReplaceAll(content, "\n", " "))
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func (f *formatter) blockDirective(d *markup.BlockDirective) []string {
	head := "@" + d.Name()
	segments := d.ArgumentText().Segments

	// Argument text is re-emitted one line per captured segment so
	// the argument structure survives a round trip.
	var lines []string
	switch {
	case len(segments) == 0:
		lines = []string{head}
	case len(segments) == 1:
		lines = []string{head + "(" + segments[0].Content() + ")"}
	default:
		lines = []string{head + "(" + segments[0].Content()}
		for _, seg := range segments[1 : len(segments)-1] {
			lines = append(lines, seg.Content())
		}
		lines = append(lines, segments[len(segments)-1].Content()+")")
	}

	children := f.separatedBlocks(d)
	if len(children) == 0 {
		return lines
	}
	lines[len(lines)-1] += " {"
	for _, line := range children {
		if line == "" {
			lines = append(lines, "")
		} else {
			lines = append(lines, "  "+line)
		}
	}
	return append(lines, "}")
}

// doxygen renders a Doxygen container as its command line followed by
// any continuation lines. Children are not blank-separated because a
// blank line would end the container on the way back in.
func (f *formatter) doxygen(prefix string, m markup.Markup) []string {
	var lines []string
	for child := range m.Children() {
		lines = append(lines, f.blocks.Visit(child)...)
	}
	if len(lines) == 0 {
		return []string{strings.TrimRight(prefix, " ")}
	}
	out := []string{prefix + lines[0]}
	return append(out, lines[1:]...)
}

func (f *formatter) renderInlineChildren(m markup.Markup) string {
	var sb strings.Builder
	for child := range m.Children() {
		sb.WriteString(f.inline.Visit(child))
	}
	return sb.String()
}
