package markup

import (
	"strings"

	"github.com/yaklabco/gomarkup/pkg/source"
)

// BlockDirective is a custom @Name(arguments) { content } construct
// layered on top of the base markup grammar. Its children are the
// block elements parsed from the directive's content region; its
// argument text is kept raw and parsed on demand.
type BlockDirective struct{ element }

// NewBlockDirective builds a directive with no argument text.
func NewBlockDirective(name string, children ...Markup) *BlockDirective {
	raw := newRawNode(&rawNode{kind: KindBlockDirective, name: name, children: rawsOf(children)})
	return newDetached(raw).(*BlockDirective)
}

// NewBlockDirectiveWithArguments builds a directive carrying raw
// argument text.
func NewBlockDirectiveWithArguments(name string, argumentText ArgumentText, children ...Markup) *BlockDirective {
	raw := newRawNode(&rawNode{
		kind:         KindBlockDirective,
		name:         name,
		argumentText: append([]ArgumentTextSegment(nil), argumentText.Segments...),
		children:     rawsOf(children),
	})
	return newDetached(raw).(*BlockDirective)
}

// Name returns the directive's name.
func (d *BlockDirective) Name() string { return d.n.raw.name }

// NameRange returns where the directive's name appeared in source, or
// nil for built trees.
func (d *BlockDirective) NameRange() *source.Range { return d.n.raw.nameRange }

// ArgumentText returns the directive's raw argument lines.
func (d *BlockDirective) ArgumentText() ArgumentText {
	return ArgumentText{Segments: append([]ArgumentTextSegment(nil), d.n.raw.argumentText...)}
}

// WithName returns this directive's occurrence in a new tree with the
// name changed.
func (d *BlockDirective) WithName(name string) *BlockDirective {
	newRaw := d.n.raw.shallowCopy()
	newRaw.name = name
	newRaw.nameRange = nil
	return d.replacingSelf(newRaw).(*BlockDirective)
}

// RangedDirectiveName returns d's occurrence in a tree where the
// directive records where its name appeared. Like Ranged, it exists
// for parser internals; edits clear the recorded range.
func RangedDirectiveName(d *BlockDirective, rng source.Range) *BlockDirective {
	newRaw := *d.n.raw
	newRaw.nameRange = &rng
	return wrap(d.n.replacingSelf(&newRaw)).(*BlockDirective)
}

// ArgumentTextSegment is one line of a directive's argument text as it
// was captured from source. Text preserves the line's whitespace;
// ParseOffset marks where argument content begins within Text.
type ArgumentTextSegment struct {
	// Text is the captured argument text of the line.
	Text string

	// ParseOffset is the byte offset in Text where parsing starts.
	ParseOffset int

	// Range locates Text[ParseOffset:] in source, nil when unknown.
	Range *source.Range
}

// Content returns the parseable portion of the segment.
func (s ArgumentTextSegment) Content() string {
	if s.ParseOffset < 0 || s.ParseOffset > len(s.Text) {
		return s.Text
	}
	return s.Text[s.ParseOffset:]
}

// locationAt returns the source location of the byte at the given
// offset into Content. Segments never span lines, so the lookup is
// plain column arithmetic.
func (s ArgumentTextSegment) locationAt(offset int) source.Location {
	if s.Range == nil {
		return source.Location{}
	}
	loc := s.Range.Start
	loc.Column += offset
	return loc
}

// rangeAt returns the source range covering Content()[start:end].
func (s ArgumentTextSegment) rangeAt(start, end int) *source.Range {
	if s.Range == nil {
		return nil
	}
	return &source.Range{Start: s.locationAt(start), End: s.locationAt(end)}
}

// ArgumentText is the raw text of a directive's argument list, kept as
// the original source lines so diagnostics can point back into them.
type ArgumentText struct {
	// Segments are the argument lines in order.
	Segments []ArgumentTextSegment
}

// IsEmpty reports whether the argument text contains no parseable
// content.
func (t ArgumentText) IsEmpty() bool {
	for _, seg := range t.Segments {
		if strings.TrimSpace(seg.Content()) != "" {
			return false
		}
	}
	return true
}

// String joins the segments' parseable content with newlines.
func (t ArgumentText) String() string {
	contents := make([]string, len(t.Segments))
	for i, seg := range t.Segments {
		contents[i] = seg.Content()
	}
	return strings.Join(contents, "\n")
}
