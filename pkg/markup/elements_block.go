package markup

import "fmt"

// newDetached builds a fresh root occurrence around raw and wraps it.
func newDetached(raw *rawNode) Markup {
	return wrap(newRootNode(raw))
}

// Document is the root element of a parsed or built markup tree.
type Document struct{ element }

// NewDocument builds a document over the given block children.
func NewDocument(children ...Markup) *Document {
	raw := newRawNode(&rawNode{kind: KindDocument, children: rawsOf(children)})
	return newDetached(raw).(*Document)
}

// BlockQuote is a quoted group of block elements.
type BlockQuote struct{ element }

// NewBlockQuote builds a block quote over the given block children.
func NewBlockQuote(children ...Markup) *BlockQuote {
	raw := newRawNode(&rawNode{kind: KindBlockQuote, children: rawsOf(children)})
	return newDetached(raw).(*BlockQuote)
}

// CodeBlock is a literal block of code with an optional language tag.
type CodeBlock struct{ element }

// NewCodeBlock builds a code block with no language tag.
func NewCodeBlock(code string) *CodeBlock {
	raw := newRawNode(&rawNode{kind: KindCodeBlock, literal: code})
	return newDetached(raw).(*CodeBlock)
}

// NewCodeBlockWithLanguage builds a code block tagged with a language.
func NewCodeBlockWithLanguage(language, code string) *CodeBlock {
	raw := newRawNode(&rawNode{kind: KindCodeBlock, literal: code, language: &language})
	return newDetached(raw).(*CodeBlock)
}

// Code returns the block's literal content.
func (c *CodeBlock) Code() string { return c.n.raw.literal }

// Language returns the block's language tag and whether one is present.
func (c *CodeBlock) Language() (string, bool) {
	if c.n.raw.language == nil {
		return "", false
	}
	return *c.n.raw.language, true
}

// WithCode returns this block's occurrence in a new tree with the
// literal content changed.
func (c *CodeBlock) WithCode(code string) *CodeBlock {
	newRaw := c.n.raw.shallowCopy()
	newRaw.literal = code
	return c.replacingSelf(newRaw).(*CodeBlock)
}

// WithLanguage returns this block's occurrence in a new tree with the
// language tag changed.
func (c *CodeBlock) WithLanguage(language string) *CodeBlock {
	newRaw := c.n.raw.shallowCopy()
	newRaw.language = &language
	return c.replacingSelf(newRaw).(*CodeBlock)
}

// CustomBlock is an extension point for block content outside the
// standard vocabulary.
type CustomBlock struct{ element }

// NewCustomBlock builds a custom block over the given children.
func NewCustomBlock(children ...Markup) *CustomBlock {
	raw := newRawNode(&rawNode{kind: KindCustomBlock, children: rawsOf(children)})
	return newDetached(raw).(*CustomBlock)
}

// Heading is a section heading at levels 1 through 6.
type Heading struct{ element }

// NewHeading builds a heading. The level must be between 1 and 6.
func NewHeading(level int, children ...Markup) *Heading {
	requireHeadingLevel(level)
	raw := newRawNode(&rawNode{kind: KindHeading, level: level, children: rawsOf(children)})
	return newDetached(raw).(*Heading)
}

func requireHeadingLevel(level int) {
	if level < 1 || level > 6 {
		panic(fmt.Sprintf("markup: heading level %d outside 1-6", level))
	}
}

// Level returns the heading level.
func (h *Heading) Level() int { return h.n.raw.level }

// WithLevel returns this heading's occurrence in a new tree with the
// level changed.
func (h *Heading) WithLevel(level int) *Heading {
	requireHeadingLevel(level)
	newRaw := h.n.raw.shallowCopy()
	newRaw.level = level
	return h.replacingSelf(newRaw).(*Heading)
}

// ThematicBreak is a horizontal rule between blocks.
type ThematicBreak struct{ element }

// NewThematicBreak builds a thematic break.
func NewThematicBreak() *ThematicBreak {
	raw := newRawNode(&rawNode{kind: KindThematicBreak})
	return newDetached(raw).(*ThematicBreak)
}

// HTMLBlock is a verbatim block of raw HTML.
type HTMLBlock struct{ element }

// NewHTMLBlock builds an HTML block with the given raw content.
func NewHTMLBlock(html string) *HTMLBlock {
	raw := newRawNode(&rawNode{kind: KindHTMLBlock, literal: html})
	return newDetached(raw).(*HTMLBlock)
}

// HTML returns the block's raw content.
func (h *HTMLBlock) HTML() string { return h.n.raw.literal }

// WithHTML returns this block's occurrence in a new tree with the raw
// content changed.
func (h *HTMLBlock) WithHTML(html string) *HTMLBlock {
	newRaw := h.n.raw.shallowCopy()
	newRaw.literal = html
	return h.replacingSelf(newRaw).(*HTMLBlock)
}

// OrderedList is a numbered list. All children are list items.
type OrderedList struct{ element }

// NewOrderedList builds an ordered list starting at 1. Every child
// must be a ListItem.
func NewOrderedList(items ...Markup) *OrderedList {
	raw := newRawNode(&rawNode{kind: KindOrderedList, startIndex: 1, children: rawsOf(items)})
	return newDetached(raw).(*OrderedList)
}

// StartIndex returns the ordinal of the first item.
func (l *OrderedList) StartIndex() uint { return l.n.raw.startIndex }

// WithStartIndex returns this list's occurrence in a new tree with the
// first ordinal changed.
func (l *OrderedList) WithStartIndex(start uint) *OrderedList {
	newRaw := l.n.raw.shallowCopy()
	newRaw.startIndex = start
	return l.replacingSelf(newRaw).(*OrderedList)
}

// UnorderedList is a bulleted list. All children are list items.
type UnorderedList struct{ element }

// NewUnorderedList builds an unordered list. Every child must be a
// ListItem.
func NewUnorderedList(items ...Markup) *UnorderedList {
	raw := newRawNode(&rawNode{kind: KindUnorderedList, children: rawsOf(items)})
	return newDetached(raw).(*UnorderedList)
}

// ListItem is a single item of an ordered or unordered list, with an
// optional task-list checkbox.
type ListItem struct{ element }

// NewListItem builds a list item with no checkbox.
func NewListItem(children ...Markup) *ListItem {
	raw := newRawNode(&rawNode{kind: KindListItem, children: rawsOf(children)})
	return newDetached(raw).(*ListItem)
}

// NewListItemWithCheckbox builds a task-list item.
func NewListItemWithCheckbox(checkbox Checkbox, children ...Markup) *ListItem {
	raw := newRawNode(&rawNode{kind: KindListItem, checkbox: checkbox, children: rawsOf(children)})
	return newDetached(raw).(*ListItem)
}

// Checkbox returns the item's task-list state.
func (i *ListItem) Checkbox() Checkbox { return i.n.raw.checkbox }

// WithCheckbox returns this item's occurrence in a new tree with the
// task-list state changed.
func (i *ListItem) WithCheckbox(checkbox Checkbox) *ListItem {
	newRaw := i.n.raw.shallowCopy()
	newRaw.checkbox = checkbox
	return i.replacingSelf(newRaw).(*ListItem)
}

// Paragraph is a block of inline content.
type Paragraph struct{ element }

// NewParagraph builds a paragraph over the given inline children.
func NewParagraph(children ...Markup) *Paragraph {
	raw := newRawNode(&rawNode{kind: KindParagraph, children: rawsOf(children)})
	return newDetached(raw).(*Paragraph)
}

// Table is a GFM table. Its children are exactly one TableHead
// followed by one TableBody.
type Table struct{ element }

// NewTable builds a table with per-column alignments, a head row, and
// a body.
func NewTable(alignments []TableAlignment, head *TableHead, body *TableBody) *Table {
	raw := newRawNode(&rawNode{
		kind:       KindTable,
		alignments: append([]TableAlignment(nil), alignments...),
		children:   []*rawNode{head.backing().raw, body.backing().raw},
	})
	return newDetached(raw).(*Table)
}

// Alignments returns a copy of the table's per-column alignments.
func (t *Table) Alignments() []TableAlignment {
	return append([]TableAlignment(nil), t.n.raw.alignments...)
}

// Head returns the table's header row.
func (t *Table) Head() *TableHead {
	return t.Child(0).(*TableHead)
}

// Body returns the table's body.
func (t *Table) Body() *TableBody {
	return t.Child(1).(*TableBody)
}

// WithAlignments returns this table's occurrence in a new tree with
// the column alignments changed.
func (t *Table) WithAlignments(alignments []TableAlignment) *Table {
	newRaw := t.n.raw.shallowCopy()
	newRaw.alignments = append([]TableAlignment(nil), alignments...)
	return t.replacingSelf(newRaw).(*Table)
}

// TableHead is a table's header row. All children are cells.
type TableHead struct{ element }

// NewTableHead builds a header row. Every child must be a TableCell.
func NewTableHead(cells ...Markup) *TableHead {
	raw := newRawNode(&rawNode{kind: KindTableHead, children: rawsOf(cells)})
	return newDetached(raw).(*TableHead)
}

// TableBody holds a table's data rows. All children are rows.
type TableBody struct{ element }

// NewTableBody builds a table body. Every child must be a TableRow.
func NewTableBody(rows ...Markup) *TableBody {
	raw := newRawNode(&rawNode{kind: KindTableBody, children: rawsOf(rows)})
	return newDetached(raw).(*TableBody)
}

// TableRow is one data row of a table. All children are cells.
type TableRow struct{ element }

// NewTableRow builds a table row. Every child must be a TableCell.
func NewTableRow(cells ...Markup) *TableRow {
	raw := newRawNode(&rawNode{kind: KindTableRow, children: rawsOf(cells)})
	return newDetached(raw).(*TableRow)
}

// TableCell is one cell of a table row, with span counts for merged
// cells. A span of 1 is a plain cell; 0 marks a cell absorbed by a
// neighboring cell's span.
type TableCell struct{ element }

// NewTableCell builds a plain cell spanning one column and one row.
func NewTableCell(children ...Markup) *TableCell {
	raw := newRawNode(&rawNode{kind: KindTableCell, colspan: 1, rowspan: 1, children: rawsOf(children)})
	return newDetached(raw).(*TableCell)
}

// NewSpanningTableCell builds a cell with explicit span counts.
func NewSpanningTableCell(colspan, rowspan uint, children ...Markup) *TableCell {
	raw := newRawNode(&rawNode{kind: KindTableCell, colspan: colspan, rowspan: rowspan, children: rawsOf(children)})
	return newDetached(raw).(*TableCell)
}

// Colspan returns how many columns the cell spans.
func (c *TableCell) Colspan() uint { return c.n.raw.colspan }

// Rowspan returns how many rows the cell spans.
func (c *TableCell) Rowspan() uint { return c.n.raw.rowspan }

// WithColspan returns this cell's occurrence in a new tree with the
// column span changed.
func (c *TableCell) WithColspan(colspan uint) *TableCell {
	newRaw := c.n.raw.shallowCopy()
	newRaw.colspan = colspan
	return c.replacingSelf(newRaw).(*TableCell)
}

// WithRowspan returns this cell's occurrence in a new tree with the
// row span changed.
func (c *TableCell) WithRowspan(rowspan uint) *TableCell {
	newRaw := c.n.raw.shallowCopy()
	newRaw.rowspan = rowspan
	return c.replacingSelf(newRaw).(*TableCell)
}
