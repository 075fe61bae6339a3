package markup

// Text is a run of plain text.
type Text struct{ element }

// NewText builds a text run.
func NewText(content string) *Text {
	raw := newRawNode(&rawNode{kind: KindText, literal: content})
	return newDetached(raw).(*Text)
}

// Content returns the text run's characters.
func (t *Text) Content() string { return t.n.raw.literal }

// WithContent returns this text run's occurrence in a new tree with
// its characters changed.
func (t *Text) WithContent(content string) *Text {
	newRaw := t.n.raw.shallowCopy()
	newRaw.literal = content
	return t.replacingSelf(newRaw).(*Text)
}

// Emphasis is emphasized inline content.
type Emphasis struct{ element }

// NewEmphasis builds an emphasis span over the given inline children.
func NewEmphasis(children ...Markup) *Emphasis {
	raw := newRawNode(&rawNode{kind: KindEmphasis, children: rawsOf(children)})
	return newDetached(raw).(*Emphasis)
}

// Strong is strongly emphasized inline content.
type Strong struct{ element }

// NewStrong builds a strong span over the given inline children.
func NewStrong(children ...Markup) *Strong {
	raw := newRawNode(&rawNode{kind: KindStrong, children: rawsOf(children)})
	return newDetached(raw).(*Strong)
}

// InlineCode is a literal code span.
type InlineCode struct{ element }

// NewInlineCode builds a code span.
func NewInlineCode(code string) *InlineCode {
	raw := newRawNode(&rawNode{kind: KindInlineCode, literal: code})
	return newDetached(raw).(*InlineCode)
}

// Code returns the span's literal content.
func (c *InlineCode) Code() string { return c.n.raw.literal }

// WithCode returns this span's occurrence in a new tree with the
// literal content changed.
func (c *InlineCode) WithCode(code string) *InlineCode {
	newRaw := c.n.raw.shallowCopy()
	newRaw.literal = code
	return c.replacingSelf(newRaw).(*InlineCode)
}

// CustomInline is an extension point for inline content outside the
// standard vocabulary.
type CustomInline struct{ element }

// NewCustomInline builds a custom inline span carrying raw text.
func NewCustomInline(text string, children ...Markup) *CustomInline {
	raw := newRawNode(&rawNode{kind: KindCustomInline, literal: text, children: rawsOf(children)})
	return newDetached(raw).(*CustomInline)
}

// Text returns the span's raw text.
func (c *CustomInline) Text() string { return c.n.raw.literal }

// Link is an inline link around its label content.
type Link struct{ element }

// NewLink builds a link to destination over the given label children.
func NewLink(destination string, children ...Markup) *Link {
	raw := newRawNode(&rawNode{kind: KindLink, destination: &destination, children: rawsOf(children)})
	return newDetached(raw).(*Link)
}

// Destination returns the link target and whether one is present.
func (l *Link) Destination() (string, bool) {
	if l.n.raw.destination == nil {
		return "", false
	}
	return *l.n.raw.destination, true
}

// Title returns the link's optional title.
func (l *Link) Title() (string, bool) {
	if l.n.raw.title == nil {
		return "", false
	}
	return *l.n.raw.title, true
}

// WithDestination returns this link's occurrence in a new tree with
// the target changed.
func (l *Link) WithDestination(destination string) *Link {
	newRaw := l.n.raw.shallowCopy()
	newRaw.destination = &destination
	return l.replacingSelf(newRaw).(*Link)
}

// WithTitle returns this link's occurrence in a new tree with the
// title changed.
func (l *Link) WithTitle(title string) *Link {
	newRaw := l.n.raw.shallowCopy()
	newRaw.title = &title
	return l.replacingSelf(newRaw).(*Link)
}

// Image is an inline image with its alt content as children.
type Image struct{ element }

// NewImage builds an image pointing at src over the given alt
// children.
func NewImage(src string, children ...Markup) *Image {
	raw := newRawNode(&rawNode{kind: KindImage, destination: &src, children: rawsOf(children)})
	return newDetached(raw).(*Image)
}

// Source returns the image location and whether one is present.
func (i *Image) Source() (string, bool) {
	if i.n.raw.destination == nil {
		return "", false
	}
	return *i.n.raw.destination, true
}

// Title returns the image's optional title.
func (i *Image) Title() (string, bool) {
	if i.n.raw.title == nil {
		return "", false
	}
	return *i.n.raw.title, true
}

// WithSource returns this image's occurrence in a new tree with the
// location changed.
func (i *Image) WithSource(src string) *Image {
	newRaw := i.n.raw.shallowCopy()
	newRaw.destination = &src
	return i.replacingSelf(newRaw).(*Image)
}

// WithTitle returns this image's occurrence in a new tree with the
// title changed.
func (i *Image) WithTitle(title string) *Image {
	newRaw := i.n.raw.shallowCopy()
	newRaw.title = &title
	return i.replacingSelf(newRaw).(*Image)
}

// LineBreak is a hard line break.
type LineBreak struct{ element }

// NewLineBreak builds a hard line break.
func NewLineBreak() *LineBreak {
	raw := newRawNode(&rawNode{kind: KindLineBreak})
	return newDetached(raw).(*LineBreak)
}

// SoftBreak is a soft line break.
type SoftBreak struct{ element }

// NewSoftBreak builds a soft line break.
func NewSoftBreak() *SoftBreak {
	raw := newRawNode(&rawNode{kind: KindSoftBreak})
	return newDetached(raw).(*SoftBreak)
}

// InlineHTML is a verbatim run of raw HTML inside inline content.
type InlineHTML struct{ element }

// NewInlineHTML builds an inline HTML run.
func NewInlineHTML(html string) *InlineHTML {
	raw := newRawNode(&rawNode{kind: KindInlineHTML, literal: html})
	return newDetached(raw).(*InlineHTML)
}

// HTML returns the run's raw content.
func (h *InlineHTML) HTML() string { return h.n.raw.literal }

// Strikethrough is struck-through inline content.
type Strikethrough struct{ element }

// NewStrikethrough builds a strikethrough span over the given inline
// children.
func NewStrikethrough(children ...Markup) *Strikethrough {
	raw := newRawNode(&rawNode{kind: KindStrikethrough, children: rawsOf(children)})
	return newDetached(raw).(*Strikethrough)
}

// SymbolLink is a reference to a code symbol, written as a
// double-backtick code span.
type SymbolLink struct{ element }

// NewSymbolLink builds a symbol link to destination.
func NewSymbolLink(destination string) *SymbolLink {
	raw := newRawNode(&rawNode{kind: KindSymbolLink, destination: &destination})
	return newDetached(raw).(*SymbolLink)
}

// Destination returns the symbol path the link refers to.
func (s *SymbolLink) Destination() string {
	if s.n.raw.destination == nil {
		return ""
	}
	return *s.n.raw.destination
}

// WithDestination returns this link's occurrence in a new tree with
// the symbol path changed.
func (s *SymbolLink) WithDestination(destination string) *SymbolLink {
	newRaw := s.n.raw.shallowCopy()
	newRaw.destination = &destination
	return s.replacingSelf(newRaw).(*SymbolLink)
}

// InlineAttributes attaches an attribute list to a span of inline
// content, written as ^[content](attributes).
type InlineAttributes struct{ element }

// NewInlineAttributes builds an attributed span over the given inline
// children.
func NewInlineAttributes(attributes string, children ...Markup) *InlineAttributes {
	raw := newRawNode(&rawNode{kind: KindInlineAttributes, attributes: attributes, children: rawsOf(children)})
	return newDetached(raw).(*InlineAttributes)
}

// Attributes returns the span's raw attribute text.
func (a *InlineAttributes) Attributes() string { return a.n.raw.attributes }

// WithAttributes returns this span's occurrence in a new tree with the
// attribute text changed.
func (a *InlineAttributes) WithAttributes(attributes string) *InlineAttributes {
	newRaw := a.n.raw.shallowCopy()
	newRaw.attributes = attributes
	return a.replacingSelf(newRaw).(*InlineAttributes)
}
