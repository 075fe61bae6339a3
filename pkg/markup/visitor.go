package markup

// Walker visits a tree read-only. Each hook field handles one element
// kind; a nil hook falls back to Default, and a nil Default descends
// into children. Traversal is explicit: a hook that wants to continue
// below its element must call Descend itself, so any hook can skip a
// subtree by simply not descending. The zero Walker visits everything.
type Walker struct {
	Document          func(*Document)
	BlockQuote        func(*BlockQuote)
	CodeBlock         func(*CodeBlock)
	CustomBlock       func(*CustomBlock)
	Heading           func(*Heading)
	ThematicBreak     func(*ThematicBreak)
	HTMLBlock         func(*HTMLBlock)
	OrderedList       func(*OrderedList)
	UnorderedList     func(*UnorderedList)
	ListItem          func(*ListItem)
	Paragraph         func(*Paragraph)
	BlockDirective    func(*BlockDirective)
	Table             func(*Table)
	TableHead         func(*TableHead)
	TableBody         func(*TableBody)
	TableRow          func(*TableRow)
	TableCell         func(*TableCell)
	DoxygenDiscussion func(*DoxygenDiscussion)
	DoxygenNote       func(*DoxygenNote)
	DoxygenAbstract   func(*DoxygenAbstract)
	DoxygenParameter  func(*DoxygenParameter)
	DoxygenReturns    func(*DoxygenReturns)
	Text              func(*Text)
	Emphasis          func(*Emphasis)
	Strong            func(*Strong)
	InlineCode        func(*InlineCode)
	CustomInline      func(*CustomInline)
	Link              func(*Link)
	Image             func(*Image)
	LineBreak         func(*LineBreak)
	SoftBreak         func(*SoftBreak)
	InlineHTML        func(*InlineHTML)
	Strikethrough     func(*Strikethrough)
	SymbolLink        func(*SymbolLink)
	InlineAttributes  func(*InlineAttributes)

	// Default handles elements whose kind hook is nil.
	Default func(Markup)
}

// Walk dispatches m to its kind hook.
func (w *Walker) Walk(m Markup) {
	if m == nil {
		return
	}
	switch t := m.(type) {
	case *Document:
		if w.Document != nil {
			w.Document(t)
			return
		}
	case *BlockQuote:
		if w.BlockQuote != nil {
			w.BlockQuote(t)
			return
		}
	case *CodeBlock:
		if w.CodeBlock != nil {
			w.CodeBlock(t)
			return
		}
	case *CustomBlock:
		if w.CustomBlock != nil {
			w.CustomBlock(t)
			return
		}
	case *Heading:
		if w.Heading != nil {
			w.Heading(t)
			return
		}
	case *ThematicBreak:
		if w.ThematicBreak != nil {
			w.ThematicBreak(t)
			return
		}
	case *HTMLBlock:
		if w.HTMLBlock != nil {
			w.HTMLBlock(t)
			return
		}
	case *OrderedList:
		if w.OrderedList != nil {
			w.OrderedList(t)
			return
		}
	case *UnorderedList:
		if w.UnorderedList != nil {
			w.UnorderedList(t)
			return
		}
	case *ListItem:
		if w.ListItem != nil {
			w.ListItem(t)
			return
		}
	case *Paragraph:
		if w.Paragraph != nil {
			w.Paragraph(t)
			return
		}
	case *BlockDirective:
		if w.BlockDirective != nil {
			w.BlockDirective(t)
			return
		}
	case *Table:
		if w.Table != nil {
			w.Table(t)
			return
		}
	case *TableHead:
		if w.TableHead != nil {
			w.TableHead(t)
			return
		}
	case *TableBody:
		if w.TableBody != nil {
			w.TableBody(t)
			return
		}
	case *TableRow:
		if w.TableRow != nil {
			w.TableRow(t)
			return
		}
	case *TableCell:
		if w.TableCell != nil {
			w.TableCell(t)
			return
		}
	case *DoxygenDiscussion:
		if w.DoxygenDiscussion != nil {
			w.DoxygenDiscussion(t)
			return
		}
	case *DoxygenNote:
		if w.DoxygenNote != nil {
			w.DoxygenNote(t)
			return
		}
	case *DoxygenAbstract:
		if w.DoxygenAbstract != nil {
			w.DoxygenAbstract(t)
			return
		}
	case *DoxygenParameter:
		if w.DoxygenParameter != nil {
			w.DoxygenParameter(t)
			return
		}
	case *DoxygenReturns:
		if w.DoxygenReturns != nil {
			w.DoxygenReturns(t)
			return
		}
	case *Text:
		if w.Text != nil {
			w.Text(t)
			return
		}
	case *Emphasis:
		if w.Emphasis != nil {
			w.Emphasis(t)
			return
		}
	case *Strong:
		if w.Strong != nil {
			w.Strong(t)
			return
		}
	case *InlineCode:
		if w.InlineCode != nil {
			w.InlineCode(t)
			return
		}
	case *CustomInline:
		if w.CustomInline != nil {
			w.CustomInline(t)
			return
		}
	case *Link:
		if w.Link != nil {
			w.Link(t)
			return
		}
	case *Image:
		if w.Image != nil {
			w.Image(t)
			return
		}
	case *LineBreak:
		if w.LineBreak != nil {
			w.LineBreak(t)
			return
		}
	case *SoftBreak:
		if w.SoftBreak != nil {
			w.SoftBreak(t)
			return
		}
	case *InlineHTML:
		if w.InlineHTML != nil {
			w.InlineHTML(t)
			return
		}
	case *Strikethrough:
		if w.Strikethrough != nil {
			w.Strikethrough(t)
			return
		}
	case *SymbolLink:
		if w.SymbolLink != nil {
			w.SymbolLink(t)
			return
		}
	case *InlineAttributes:
		if w.InlineAttributes != nil {
			w.InlineAttributes(t)
			return
		}
	}
	if w.Default != nil {
		w.Default(m)
		return
	}
	w.Descend(m)
}

// Descend walks each of m's children in order.
func (w *Walker) Descend(m Markup) {
	for child := range m.Children() {
		w.Walk(child)
	}
}

// Rewriter produces a transformed tree. Each hook returns the
// replacement for the element it is given; returning nil deletes the
// element from its parent. A nil hook falls back to Default, and a nil
// Default rewrites the element's children via RewriteChildren. Hooks
// that want child rewriting must call RewriteChildren themselves.
type Rewriter struct {
	Document          func(*Document) Markup
	BlockQuote        func(*BlockQuote) Markup
	CodeBlock         func(*CodeBlock) Markup
	CustomBlock       func(*CustomBlock) Markup
	Heading           func(*Heading) Markup
	ThematicBreak     func(*ThematicBreak) Markup
	HTMLBlock         func(*HTMLBlock) Markup
	OrderedList       func(*OrderedList) Markup
	UnorderedList     func(*UnorderedList) Markup
	ListItem          func(*ListItem) Markup
	Paragraph         func(*Paragraph) Markup
	BlockDirective    func(*BlockDirective) Markup
	Table             func(*Table) Markup
	TableHead         func(*TableHead) Markup
	TableBody         func(*TableBody) Markup
	TableRow          func(*TableRow) Markup
	TableCell         func(*TableCell) Markup
	DoxygenDiscussion func(*DoxygenDiscussion) Markup
	DoxygenNote       func(*DoxygenNote) Markup
	DoxygenAbstract   func(*DoxygenAbstract) Markup
	DoxygenParameter  func(*DoxygenParameter) Markup
	DoxygenReturns    func(*DoxygenReturns) Markup
	Text              func(*Text) Markup
	Emphasis          func(*Emphasis) Markup
	Strong            func(*Strong) Markup
	InlineCode        func(*InlineCode) Markup
	CustomInline      func(*CustomInline) Markup
	Link              func(*Link) Markup
	Image             func(*Image) Markup
	LineBreak         func(*LineBreak) Markup
	SoftBreak         func(*SoftBreak) Markup
	InlineHTML        func(*InlineHTML) Markup
	Strikethrough     func(*Strikethrough) Markup
	SymbolLink        func(*SymbolLink) Markup
	InlineAttributes  func(*InlineAttributes) Markup

	// Default handles elements whose kind hook is nil.
	Default func(Markup) Markup
}

// Rewrite dispatches m to its kind hook and returns the replacement,
// nil meaning m was deleted.
func (r *Rewriter) Rewrite(m Markup) Markup {
	if m == nil {
		return nil
	}
	if hook := r.hookFor(m); hook != nil {
		return hook(m)
	}
	if r.Default != nil {
		return r.Default(m)
	}
	return r.RewriteChildren(m)
}

// RewriteChildren rewrites each of m's children, drops deletions, and
// returns m's occurrence over the surviving children. When no child
// changes, m is returned as is.
func (r *Rewriter) RewriteChildren(m Markup) Markup {
	var rewritten []Markup
	changed := false
	for child := range m.Children() {
		replacement := r.Rewrite(child)
		if replacement == nil {
			changed = true
			continue
		}
		if !changed && replacement.backing().raw != child.backing().raw {
			changed = true
		}
		rewritten = append(rewritten, replacement)
	}
	if !changed {
		return m
	}
	return m.WithUncheckedChildren(rewritten...)
}

// hookFor adapts the typed hook for m's kind into the untyped shape
// Rewrite dispatches through.
func (r *Rewriter) hookFor(m Markup) func(Markup) Markup {
	switch t := m.(type) {
	case *Document:
		if r.Document != nil {
			return func(Markup) Markup { return r.Document(t) }
		}
	case *BlockQuote:
		if r.BlockQuote != nil {
			return func(Markup) Markup { return r.BlockQuote(t) }
		}
	case *CodeBlock:
		if r.CodeBlock != nil {
			return func(Markup) Markup { return r.CodeBlock(t) }
		}
	case *CustomBlock:
		if r.CustomBlock != nil {
			return func(Markup) Markup { return r.CustomBlock(t) }
		}
	case *Heading:
		if r.Heading != nil {
			return func(Markup) Markup { return r.Heading(t) }
		}
	case *ThematicBreak:
		if r.ThematicBreak != nil {
			return func(Markup) Markup { return r.ThematicBreak(t) }
		}
	case *HTMLBlock:
		if r.HTMLBlock != nil {
			return func(Markup) Markup { return r.HTMLBlock(t) }
		}
	case *OrderedList:
		if r.OrderedList != nil {
			return func(Markup) Markup { return r.OrderedList(t) }
		}
	case *UnorderedList:
		if r.UnorderedList != nil {
			return func(Markup) Markup { return r.UnorderedList(t) }
		}
	case *ListItem:
		if r.ListItem != nil {
			return func(Markup) Markup { return r.ListItem(t) }
		}
	case *Paragraph:
		if r.Paragraph != nil {
			return func(Markup) Markup { return r.Paragraph(t) }
		}
	case *BlockDirective:
		if r.BlockDirective != nil {
			return func(Markup) Markup { return r.BlockDirective(t) }
		}
	case *Table:
		if r.Table != nil {
			return func(Markup) Markup { return r.Table(t) }
		}
	case *TableHead:
		if r.TableHead != nil {
			return func(Markup) Markup { return r.TableHead(t) }
		}
	case *TableBody:
		if r.TableBody != nil {
			return func(Markup) Markup { return r.TableBody(t) }
		}
	case *TableRow:
		if r.TableRow != nil {
			return func(Markup) Markup { return r.TableRow(t) }
		}
	case *TableCell:
		if r.TableCell != nil {
			return func(Markup) Markup { return r.TableCell(t) }
		}
	case *DoxygenDiscussion:
		if r.DoxygenDiscussion != nil {
			return func(Markup) Markup { return r.DoxygenDiscussion(t) }
		}
	case *DoxygenNote:
		if r.DoxygenNote != nil {
			return func(Markup) Markup { return r.DoxygenNote(t) }
		}
	case *DoxygenAbstract:
		if r.DoxygenAbstract != nil {
			return func(Markup) Markup { return r.DoxygenAbstract(t) }
		}
	case *DoxygenParameter:
		if r.DoxygenParameter != nil {
			return func(Markup) Markup { return r.DoxygenParameter(t) }
		}
	case *DoxygenReturns:
		if r.DoxygenReturns != nil {
			return func(Markup) Markup { return r.DoxygenReturns(t) }
		}
	case *Text:
		if r.Text != nil {
			return func(Markup) Markup { return r.Text(t) }
		}
	case *Emphasis:
		if r.Emphasis != nil {
			return func(Markup) Markup { return r.Emphasis(t) }
		}
	case *Strong:
		if r.Strong != nil {
			return func(Markup) Markup { return r.Strong(t) }
		}
	case *InlineCode:
		if r.InlineCode != nil {
			return func(Markup) Markup { return r.InlineCode(t) }
		}
	case *CustomInline:
		if r.CustomInline != nil {
			return func(Markup) Markup { return r.CustomInline(t) }
		}
	case *Link:
		if r.Link != nil {
			return func(Markup) Markup { return r.Link(t) }
		}
	case *Image:
		if r.Image != nil {
			return func(Markup) Markup { return r.Image(t) }
		}
	case *LineBreak:
		if r.LineBreak != nil {
			return func(Markup) Markup { return r.LineBreak(t) }
		}
	case *SoftBreak:
		if r.SoftBreak != nil {
			return func(Markup) Markup { return r.SoftBreak(t) }
		}
	case *InlineHTML:
		if r.InlineHTML != nil {
			return func(Markup) Markup { return r.InlineHTML(t) }
		}
	case *Strikethrough:
		if r.Strikethrough != nil {
			return func(Markup) Markup { return r.Strikethrough(t) }
		}
	case *SymbolLink:
		if r.SymbolLink != nil {
			return func(Markup) Markup { return r.SymbolLink(t) }
		}
	case *InlineAttributes:
		if r.InlineAttributes != nil {
			return func(Markup) Markup { return r.InlineAttributes(t) }
		}
	}
	return nil
}

// Visitor computes a value of type R from a tree. Each hook returns
// the result for its element; a nil hook falls back to Default, and a
// nil Default returns the zero R. Hooks recurse by calling Visit on
// children themselves.
type Visitor[R any] struct {
	Document          func(*Document) R
	BlockQuote        func(*BlockQuote) R
	CodeBlock         func(*CodeBlock) R
	CustomBlock       func(*CustomBlock) R
	Heading           func(*Heading) R
	ThematicBreak     func(*ThematicBreak) R
	HTMLBlock         func(*HTMLBlock) R
	OrderedList       func(*OrderedList) R
	UnorderedList     func(*UnorderedList) R
	ListItem          func(*ListItem) R
	Paragraph         func(*Paragraph) R
	BlockDirective    func(*BlockDirective) R
	Table             func(*Table) R
	TableHead         func(*TableHead) R
	TableBody         func(*TableBody) R
	TableRow          func(*TableRow) R
	TableCell         func(*TableCell) R
	DoxygenDiscussion func(*DoxygenDiscussion) R
	DoxygenNote       func(*DoxygenNote) R
	DoxygenAbstract   func(*DoxygenAbstract) R
	DoxygenParameter  func(*DoxygenParameter) R
	DoxygenReturns    func(*DoxygenReturns) R
	Text              func(*Text) R
	Emphasis          func(*Emphasis) R
	Strong            func(*Strong) R
	InlineCode        func(*InlineCode) R
	CustomInline      func(*CustomInline) R
	Link              func(*Link) R
	Image             func(*Image) R
	LineBreak         func(*LineBreak) R
	SoftBreak         func(*SoftBreak) R
	InlineHTML        func(*InlineHTML) R
	Strikethrough     func(*Strikethrough) R
	SymbolLink        func(*SymbolLink) R
	InlineAttributes  func(*InlineAttributes) R

	// Default handles elements whose kind hook is nil.
	Default func(Markup) R
}

// Visit dispatches m to its kind hook and returns the hook's result.
func (v *Visitor[R]) Visit(m Markup) R {
	var zero R
	if m == nil {
		return zero
	}
	switch t := m.(type) {
	case *Document:
		if v.Document != nil {
			return v.Document(t)
		}
	case *BlockQuote:
		if v.BlockQuote != nil {
			return v.BlockQuote(t)
		}
	case *CodeBlock:
		if v.CodeBlock != nil {
			return v.CodeBlock(t)
		}
	case *CustomBlock:
		if v.CustomBlock != nil {
			return v.CustomBlock(t)
		}
	case *Heading:
		if v.Heading != nil {
			return v.Heading(t)
		}
	case *ThematicBreak:
		if v.ThematicBreak != nil {
			return v.ThematicBreak(t)
		}
	case *HTMLBlock:
		if v.HTMLBlock != nil {
			return v.HTMLBlock(t)
		}
	case *OrderedList:
		if v.OrderedList != nil {
			return v.OrderedList(t)
		}
	case *UnorderedList:
		if v.UnorderedList != nil {
			return v.UnorderedList(t)
		}
	case *ListItem:
		if v.ListItem != nil {
			return v.ListItem(t)
		}
	case *Paragraph:
		if v.Paragraph != nil {
			return v.Paragraph(t)
		}
	case *BlockDirective:
		if v.BlockDirective != nil {
			return v.BlockDirective(t)
		}
	case *Table:
		if v.Table != nil {
			return v.Table(t)
		}
	case *TableHead:
		if v.TableHead != nil {
			return v.TableHead(t)
		}
	case *TableBody:
		if v.TableBody != nil {
			return v.TableBody(t)
		}
	case *TableRow:
		if v.TableRow != nil {
			return v.TableRow(t)
		}
	case *TableCell:
		if v.TableCell != nil {
			return v.TableCell(t)
		}
	case *DoxygenDiscussion:
		if v.DoxygenDiscussion != nil {
			return v.DoxygenDiscussion(t)
		}
	case *DoxygenNote:
		if v.DoxygenNote != nil {
			return v.DoxygenNote(t)
		}
	case *DoxygenAbstract:
		if v.DoxygenAbstract != nil {
			return v.DoxygenAbstract(t)
		}
	case *DoxygenParameter:
		if v.DoxygenParameter != nil {
			return v.DoxygenParameter(t)
		}
	case *DoxygenReturns:
		if v.DoxygenReturns != nil {
			return v.DoxygenReturns(t)
		}
	case *Text:
		if v.Text != nil {
			return v.Text(t)
		}
	case *Emphasis:
		if v.Emphasis != nil {
			return v.Emphasis(t)
		}
	case *Strong:
		if v.Strong != nil {
			return v.Strong(t)
		}
	case *InlineCode:
		if v.InlineCode != nil {
			return v.InlineCode(t)
		}
	case *CustomInline:
		if v.CustomInline != nil {
			return v.CustomInline(t)
		}
	case *Link:
		if v.Link != nil {
			return v.Link(t)
		}
	case *Image:
		if v.Image != nil {
			return v.Image(t)
		}
	case *LineBreak:
		if v.LineBreak != nil {
			return v.LineBreak(t)
		}
	case *SoftBreak:
		if v.SoftBreak != nil {
			return v.SoftBreak(t)
		}
	case *InlineHTML:
		if v.InlineHTML != nil {
			return v.InlineHTML(t)
		}
	case *Strikethrough:
		if v.Strikethrough != nil {
			return v.Strikethrough(t)
		}
	case *SymbolLink:
		if v.SymbolLink != nil {
			return v.SymbolLink(t)
		}
	case *InlineAttributes:
		if v.InlineAttributes != nil {
			return v.InlineAttributes(t)
		}
	}
	if v.Default != nil {
		return v.Default(m)
	}
	return zero
}
