package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/source"
)

// mapper converts a goldmark AST into a markup tree, bottom-up.
type mapper struct {
	content []byte
	index   *source.Index
	opts    Options
}

// newMapper creates a mapper for one parse of content.
func newMapper(content []byte, file *string, opts Options) *mapper {
	return &mapper{
		content: content,
		index:   source.NewIndex(content, file),
		opts:    opts,
	}
}

// mapDocument converts the goldmark document node into a markup tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *markup.Document {
	doc := markup.NewDocument(m.mapChildren(gmDoc)...)
	return attachSpan(m, doc, gmDoc)
}

// mapChildren maps every child of a goldmark node, flattening the
// occasional one-to-many expansion such as a text run that also
// carries a trailing line break.
func (m *mapper) mapChildren(gmParent ast.Node) []markup.Markup {
	var children []markup.Markup
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		children = append(children, m.mapNode(child)...)
	}
	return coalesceTexts(children)
}

// coalesceTexts merges runs of adjacent text nodes into maximal
// literals and resolves backslash escapes in the merged content.
// goldmark keeps escape sequences in its text segments and strips
// them in its own renderer; markup text carries the literal
// characters, so the stripping happens here instead.
func coalesceTexts(children []markup.Markup) []markup.Markup {
	out := make([]markup.Markup, 0, len(children))
	for i := 0; i < len(children); i++ {
		t, ok := children[i].(*markup.Text)
		if !ok {
			out = append(out, children[i])
			continue
		}

		content := t.Content()
		rng := t.Range()
		merged := false
		for i+1 < len(children) {
			next, ok := children[i+1].(*markup.Text)
			if !ok {
				break
			}
			content += next.Content()
			if rng != nil && next.Range() != nil {
				r := rng.ExtendToInclude(*next.Range())
				rng = &r
			} else {
				rng = nil
			}
			merged = true
			i++
		}

		resolved := resolveEscapes(content)
		if !merged && resolved == content {
			out = append(out, t)
			continue
		}
		nt := markup.NewText(resolved)
		if rng != nil {
			nt = markup.Ranged(nt, *rng)
		}
		out = append(out, nt)
	}
	return out
}

// resolveEscapes drops the backslash from backslash-escaped ASCII
// punctuation. A backslash before anything else stays literal.
func resolveEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isASCIIPunctuation(s[i+1]) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func isASCIIPunctuation(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}

// mapNode converts a single goldmark node. Most nodes map one to one;
// a few map to nothing or to a pair, so the result is a slice.
func (m *mapper) mapNode(gmNode ast.Node) []markup.Markup {
	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Heading:
		return single(m.mapHeading(gmn))

	// Tight list items hold their inline content in text blocks;
	// both lower to paragraphs.
	case *ast.Paragraph, *ast.TextBlock:
		return single(attachSpan(m, markup.NewParagraph(m.mapChildren(gmn)...), gmn))

	case *ast.List:
		return single(m.mapList(gmn))

	case *ast.ListItem:
		return single(m.mapListItem(gmn))

	case *ast.Blockquote:
		return single(attachSpan(m, markup.NewBlockQuote(m.mapChildren(gmn)...), gmn))

	case *ast.FencedCodeBlock:
		return single(m.mapFencedCodeBlock(gmn))

	case *ast.CodeBlock:
		return single(attachSpan(m, markup.NewCodeBlock(m.blockLiteral(gmn)), gmn))

	case *ast.ThematicBreak:
		return single(markup.NewThematicBreak())

	case *ast.HTMLBlock:
		return single(m.mapHTMLBlock(gmn))

	// Inline-level nodes.
	case *ast.Text:
		return m.mapText(gmn)

	case *ast.String:
		return single(markup.NewText(string(gmn.Value)))

	case *ast.CodeSpan:
		return single(m.mapCodeSpan(gmn))

	case *ast.Emphasis:
		return single(m.mapEmphasis(gmn))

	case *ast.Link:
		return single(m.mapLink(gmn))

	case *ast.Image:
		return single(m.mapImage(gmn))

	case *ast.AutoLink:
		return single(m.mapAutoLink(gmn))

	case *ast.RawHTML:
		return single(m.mapRawHTML(gmn))

	// GFM extension nodes.
	case *east.Strikethrough:
		return single(attachSpan(m, markup.NewStrikethrough(m.mapChildren(gmn)...), gmn))

	case *east.Table:
		return single(m.mapTable(gmn))

	case *east.TableHeader, *east.TableRow, *east.TableCell:
		// Handled inside mapTable.
		return nil

	case *east.TaskCheckBox:
		// Consumed by mapListItem.
		return nil

	// Bridge extension nodes.
	case *attributesNode:
		return single(m.mapAttributes(gmn))
	}

	// Unknown nodes keep their children under a custom wrapper.
	children := m.mapChildren(gmNode)
	if gmNode.Type() == ast.TypeInline {
		return single(markup.NewCustomInline("", children...))
	}
	return single(attachSpan(m, markup.NewCustomBlock(children...), gmNode))
}

func (m *mapper) mapHeading(h *ast.Heading) markup.Markup {
	return attachSpan(m, markup.NewHeading(h.Level, m.mapChildren(h)...), h)
}

func (m *mapper) mapList(list *ast.List) markup.Markup {
	items := m.mapChildren(list)
	if !list.IsOrdered() {
		return attachSpan(m, markup.NewUnorderedList(items...), list)
	}

	ordered := markup.NewOrderedList(items...)
	if list.Start > 0 && list.Start != 1 {
		ordered = ordered.WithStartIndex(uint(list.Start))
	}
	return attachSpan(m, ordered, list)
}

func (m *mapper) mapListItem(item *ast.ListItem) markup.Markup {
	checkbox := m.consumeTaskCheckbox(item)
	children := m.mapChildren(item)

	var li *markup.ListItem
	if checkbox == markup.CheckboxNone {
		li = markup.NewListItem(children...)
	} else {
		li = markup.NewListItemWithCheckbox(checkbox, children...)
	}
	return attachSpan(m, li, item)
}

// consumeTaskCheckbox detaches the task-list checkbox goldmark leaves
// as the first inline of an item's first block, together with the
// separator space after it, and reports its state.
func (m *mapper) consumeTaskCheckbox(item *ast.ListItem) markup.Checkbox {
	first := item.FirstChild()
	if first == nil {
		return markup.CheckboxNone
	}
	checkbox, ok := first.FirstChild().(*east.TaskCheckBox)
	if !ok {
		return markup.CheckboxNone
	}

	if t, ok := checkbox.NextSibling().(*ast.Text); ok {
		seg := t.Segment
		if seg.Start < seg.Stop && seg.Start < len(m.content) && m.content[seg.Start] == ' ' {
			t.Segment = seg.WithStart(seg.Start + 1)
		}
	}
	first.RemoveChild(first, checkbox)

	if checkbox.IsChecked {
		return markup.CheckboxChecked
	}
	return markup.CheckboxUnchecked
}

func (m *mapper) mapFencedCodeBlock(codeBlock *ast.FencedCodeBlock) markup.Markup {
	code := m.blockLiteral(codeBlock)

	var block *markup.CodeBlock
	if codeBlock.Info != nil {
		if info := string(codeBlock.Info.Value(m.content)); info != "" {
			block = markup.NewCodeBlockWithLanguage(info, code)
		}
	}
	if block == nil {
		block = markup.NewCodeBlock(code)
	}
	return attachSpan(m, block, codeBlock)
}

func (m *mapper) mapHTMLBlock(htmlBlock *ast.HTMLBlock) markup.Markup {
	var sb strings.Builder
	lines := htmlBlock.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		sb.Write(line.Value(m.content))
	}
	if htmlBlock.HasClosure() {
		sb.Write(htmlBlock.ClosureLine.Value(m.content))
	}
	return attachSpan(m, markup.NewHTMLBlock(sb.String()), htmlBlock)
}

// blockLiteral joins a leaf block's line segments verbatim.
func (m *mapper) blockLiteral(gmNode ast.Node) string {
	var sb strings.Builder
	lines := gmNode.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		sb.Write(line.Value(m.content))
	}
	return sb.String()
}

func (m *mapper) mapText(textNode *ast.Text) []markup.Markup {
	var out []markup.Markup

	seg := textNode.Segment
	if seg.Len() > 0 {
		t := markup.NewText(string(seg.Value(m.content)))
		out = append(out, markup.Ranged(t, m.index.RangeBetween(seg.Start, seg.Stop)))
	}

	switch {
	case textNode.HardLineBreak():
		out = append(out, markup.NewLineBreak())
	case textNode.SoftLineBreak():
		out = append(out, markup.NewSoftBreak())
	}
	return out
}

func (m *mapper) mapCodeSpan(codeSpan *ast.CodeSpan) markup.Markup {
	var sb strings.Builder
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(m.content))
		}
	}
	code := normalizeCodeSpanText(sb.String())

	opening := 0
	if inner := unionSpan(codeSpan, m.content); inner.valid() {
		_, opening = widenOverBackticks(m.content, inner)
	}

	if m.opts.SymbolLinks && opening >= 2 {
		return attachSpan(m, markup.NewSymbolLink(code), codeSpan)
	}
	return attachSpan(m, markup.NewInlineCode(code), codeSpan)
}

// normalizeCodeSpanText applies the CommonMark code span cleanup:
// line endings become spaces, and one space of padding is stripped
// when both ends carry it and the content is not all spaces.
func normalizeCodeSpanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) >= 2 && s[0] == ' ' && s[len(s)-1] == ' ' && strings.TrimSpace(s) != "" {
		s = s[1 : len(s)-1]
	}
	return s
}

func (m *mapper) mapEmphasis(emphasis *ast.Emphasis) markup.Markup {
	children := m.mapChildren(emphasis)
	if emphasis.Level == 2 {
		return attachSpan(m, markup.NewStrong(children...), emphasis)
	}
	return attachSpan(m, markup.NewEmphasis(children...), emphasis)
}

// mapLink converts a goldmark Link. goldmark resolves reference-style
// links during parsing, so the original reference syntax is not
// recoverable here.
func (m *mapper) mapLink(link *ast.Link) markup.Markup {
	ml := markup.NewLink(string(link.Destination), m.mapChildren(link)...)
	if title := string(link.Title); title != "" {
		ml = ml.WithTitle(title)
	}
	return attachSpan(m, ml, link)
}

func (m *mapper) mapImage(img *ast.Image) markup.Markup {
	mi := markup.NewImage(string(img.Destination), m.mapChildren(img)...)
	if title := string(img.Title); title != "" {
		mi = mi.WithTitle(title)
	}
	return attachSpan(m, mi, img)
}

// mapAutoLink converts a goldmark AutoLink. goldmark keeps no source
// segment for autolinks, so they stay unranged.
func (m *mapper) mapAutoLink(autoLink *ast.AutoLink) markup.Markup {
	url := string(autoLink.URL(m.content))
	if autoLink.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
		url = "mailto:" + url
	}
	return markup.NewLink(url, markup.NewText(string(autoLink.Label(m.content))))
}

func (m *mapper) mapRawHTML(raw *ast.RawHTML) markup.Markup {
	var sb strings.Builder
	for i := range raw.Segments.Len() {
		seg := raw.Segments.At(i)
		sb.Write(seg.Value(m.content))
	}
	return attachSpan(m, markup.NewInlineHTML(sb.String()), raw)
}

func (m *mapper) mapAttributes(attrs *attributesNode) markup.Markup {
	label := markup.Ranged(
		markup.NewText(string(attrs.label.Value(m.content))),
		m.index.RangeBetween(attrs.label.Start, attrs.label.Stop),
	)
	node := markup.NewInlineAttributes(string(attrs.attributes.Value(m.content)), label)
	return attachSpan(m, node, attrs)
}

func (m *mapper) mapTable(table *east.Table) markup.Markup {
	var headerNode ast.Node
	var headerCells []*pendingCell
	var bodyRows []*pendingRow

	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch gmn := child.(type) {
		case *east.TableHeader:
			headerNode = gmn
			headerCells = m.mapCells(gmn)
		case *east.TableRow:
			bodyRows = append(bodyRows, &pendingRow{node: gmn, cells: m.mapCells(gmn)})
		}
	}

	if m.opts.TableSpans {
		resolveColumnSpans(headerCells)
		for _, row := range bodyRows {
			resolveColumnSpans(row.cells)
		}
		resolveRowSpans(bodyRows)
	}

	head := markup.NewTableHead(buildCells(headerCells)...)
	if headerNode != nil {
		head = attachSpan(m, head, headerNode)
	}

	rows := make([]markup.Markup, 0, len(bodyRows))
	bodySpan := invalidSpan()
	for _, row := range bodyRows {
		rows = append(rows, attachSpan(m, markup.NewTableRow(buildCells(row.cells)...), row.node))
		bodySpan = bodySpan.merge(spanOf(row.node, m.content))
	}
	body := markup.NewTableBody(rows...)
	if bodySpan.valid() {
		body = markup.Ranged(body, m.index.RangeBetween(bodySpan.start, bodySpan.stop))
	}

	return attachSpan(m, markup.NewTable(tableAlignments(table), head, body), table)
}

// mapCells maps the cells of one header or body row into pending
// cells, leaving construction to the span resolution pass.
func (m *mapper) mapCells(gmRow ast.Node) []*pendingCell {
	var cells []*pendingCell
	for child := gmRow.FirstChild(); child != nil; child = child.NextSibling() {
		gmCell, ok := child.(*east.TableCell)
		if !ok {
			continue
		}

		cell := &pendingCell{
			children: m.mapChildren(gmCell),
			colspan:  1,
			rowspan:  1,
		}
		if span := spanOf(gmCell, m.content); span.valid() {
			rng := m.index.RangeBetween(span.start, span.stop)
			cell.rng = &rng
		}
		cells = append(cells, cell)
	}
	return cells
}

func tableAlignments(table *east.Table) []markup.TableAlignment {
	alignments := make([]markup.TableAlignment, 0, len(table.Alignments))
	for _, a := range table.Alignments {
		alignments = append(alignments, tableAlignment(a))
	}
	return alignments
}

func tableAlignment(a east.Alignment) markup.TableAlignment {
	switch a {
	case east.AlignLeft:
		return markup.AlignLeft
	case east.AlignRight:
		return markup.AlignRight
	case east.AlignCenter:
		return markup.AlignCenter
	default:
		return markup.AlignNone
	}
}

// attachSpan records gmNode's source extent on ml when one is known.
func attachSpan[T markup.Markup](m *mapper, ml T, gmNode ast.Node) T {
	span := spanOf(gmNode, m.content)
	if !span.valid() {
		return ml
	}
	return markup.Ranged(ml, m.index.RangeBetween(span.start, span.stop))
}

func single(m markup.Markup) []markup.Markup {
	return []markup.Markup{m}
}
